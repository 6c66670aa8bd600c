package proxy

import (
	"errors"
	"io"
	"net"
	"time"

	"github.com/yourusername/shadowproxy/internal/nettune"
)

// defaultBufSize is the fallback read-buffer size when a caller builds an
// OriginClient without specifying one (BufferSize <= 0). A read shorter
// than this is taken to mean the origin has finished writing — the same
// short-read heuristic the connection handler uses against the client, and
// the same known sharp edge: a response that happens to land exactly on a
// buffer boundary, or that streams a body across several full reads, is
// read past its end or cut short. Replacing it means parsing the status
// line and headers incrementally and honoring Content-Length — out of
// scope for the core as specified.
const defaultBufSize = 1500

// OriginClient performs single-shot request/response exchanges against an
// origin: connect, write the raw request, drain the raw response. It never
// pools or reuses connections and never retries; apart from DialTimeout on
// the connect step it sets no timeouts, so a caller that wants retries or
// a read/write timeout wraps this.
type OriginClient struct {
	// DialTimeout bounds the connect step. Zero means no timeout.
	DialTimeout time.Duration
	// BufferSize is the fixed local read buffer used while draining a
	// response; see the short-read heuristic documented on defaultBufSize.
	// Zero or negative falls back to defaultBufSize.
	BufferSize int
}

// NewOriginClient returns an OriginClient with the given connect timeout
// and per-read buffer size.
func NewOriginClient(dialTimeout time.Duration, bufferSize int) *OriginClient {
	if bufferSize <= 0 {
		bufferSize = defaultBufSize
	}
	return &OriginClient{DialTimeout: dialTimeout, BufferSize: bufferSize}
}

// Call connects to target, writes raw in full, reads the response using
// the short-read-means-done heuristic, and returns the accumulated bytes.
// The connection is always closed before returning, on every path.
func (c *OriginClient) Call(target string, raw []byte) ([]byte, error) {
	conn, err := net.DialTimeout("tcp", target, c.DialTimeout)
	if err != nil {
		return nil, &Unresponsive{Target: target, Cause: err}
	}
	defer conn.Close()

	_ = nettune.Apply(conn)

	if err := writeFull(conn, raw); err != nil {
		return nil, &ServerWriteError{Target: target, Cause: err}
	}

	resp, err := readUntilShortRead(conn, c.BufferSize)
	if err != nil {
		return nil, &ServerReadError{Target: target, Cause: err}
	}
	return resp, nil
}

// writeFull writes buf to conn in full, looping on partial writes. A
// partial write is not itself an error on a TCP stream socket; what
// matters is that every byte eventually lands or an error surfaces.
func writeFull(conn net.Conn, buf []byte) error {
	for len(buf) > 0 {
		n, err := conn.Write(buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}

// readUntilShortRead accumulates reads from conn into a growing buffer,
// stopping as soon as a read returns fewer bytes than bufSize (or zero).
// This is the heuristic documented on defaultBufSize: correct for the common
// case of a small, single-segment response, wrong for a response that
// tiles the buffer exactly or arrives as a stream.
func readUntilShortRead(conn net.Conn, bufSize int) ([]byte, error) {
	if bufSize <= 0 {
		bufSize = defaultBufSize
	}
	var out []byte
	tmp := make([]byte, bufSize)
	for {
		n, err := conn.Read(tmp)
		if n > 0 {
			out = append(out, tmp[:n]...)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, err
		}
		if n == 0 || n < bufSize {
			return out, nil
		}
	}
}
