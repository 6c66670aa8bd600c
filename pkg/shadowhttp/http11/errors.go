package http11

import "errors"

// Parse errors. These are sentinel values — callers compare with errors.Is,
// they carry no per-call context because none is needed at the codec
// boundary (the failing bytes are still held by the caller).
var (
	// ErrBadFormat indicates the request or response bytes do not match
	// the framing contract (missing separators, non-UTF8 target, etc).
	ErrBadFormat = errors.New("http11: bad format")

	// ErrUnknownVersion indicates the HTTP version token was not
	// recognized at all (not even as HTTP/2 or HTTP/3).
	ErrUnknownVersion = errors.New("http11: unknown version")
)
