package proxy

import "github.com/yourusername/shadowproxy/pkg/shadowhttp/http11"

// ComparisonRecord is the analyzer's output: the decode of the request
// and both responses, plus a unique ID stamped at hand-off time. Any
// Decoded field may be its zero value with the matching Err set when that
// slot's decode failed — a failure in one slot never prevents the others
// from being reported.
type ComparisonRecord struct {
	ID string

	DecodedRequest http11.DecodedRequest
	RequestErr     error
	DecodedPrimary http11.DecodedResponse
	PrimaryErr     error
	DecodedShadow  http11.DecodedResponse
	ShadowErr      error
	ShadowCallErr  error
}

// Sink receives completed comparison records. The core's contract ends at
// "emit exactly one record per request that entered the analyzer" —
// storage, forwarding, or further analysis is the sink's business.
type Sink interface {
	Emit(ComparisonRecord)
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(ComparisonRecord)

// Emit calls f(r).
func (f SinkFunc) Emit(r ComparisonRecord) { f(r) }
