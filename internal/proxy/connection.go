package proxy

import (
	"errors"
	"net"
	"sync"
	"sync/atomic"

	"github.com/yourusername/shadowproxy/internal/logging"
	"github.com/yourusername/shadowproxy/internal/metrics"
	"github.com/yourusername/shadowproxy/internal/nettune"
)

var (
	respUnavailable = []byte("HTTP/1.1 503 Service Unavailable")
	respInternal    = []byte("HTTP/1.1 500 Internal Server Error")
)

// Server is the accept-loop supervisor: it owns the listener, spawns one
// connection task per accepted client, and forwards completed
// (raw request, raw primary response) pairs to the pipeline.
type Server struct {
	Primary      string
	ServingLimit int
	// BufferSize is the fixed per-connection read buffer on the
	// client-facing side. A read shorter than this is taken as the end of
	// the request — see the warning on defaultBufSize in origin.go; the
	// same heuristic and the same caveat apply here. Zero or negative
	// falls back to defaultBufSize.
	BufferSize int

	origin   *OriginClient
	pipeline *Pipeline

	listener net.Listener
	connSem  chan struct{}

	shutdown atomic.Bool
	done     chan struct{}
	wg       sync.WaitGroup
}

// NewServer builds a Server. servingLimit bounds concurrent connection
// handlers; 0 means unlimited. bufferSize is the per-connection read
// buffer; 0 or negative falls back to defaultBufSize.
func NewServer(primary string, servingLimit, bufferSize int, origin *OriginClient, pipeline *Pipeline) *Server {
	if bufferSize <= 0 {
		bufferSize = defaultBufSize
	}
	s := &Server{
		Primary:      primary,
		ServingLimit: servingLimit,
		BufferSize:   bufferSize,
		origin:       origin,
		pipeline:     pipeline,
		done:         make(chan struct{}),
	}
	if servingLimit > 0 {
		s.connSem = make(chan struct{}, servingLimit)
	}
	return s
}

// Serve runs the accept loop until the listener is closed or Shutdown is
// called. It never returns a non-nil error from a clean shutdown.
func (s *Server) Serve(l net.Listener) error {
	s.listener = l
	defer l.Close()

	for {
		if s.shutdown.Load() {
			return nil
		}

		if s.connSem != nil {
			select {
			case s.connSem <- struct{}{}:
			case <-s.done:
				return nil
			}
		}

		conn, err := l.Accept()
		if err != nil {
			if s.shutdown.Load() {
				return nil
			}
			if s.connSem != nil {
				<-s.connSem
			}
			logging.TimedMsg("accept error: " + err.Error())
			continue
		}

		s.wg.Add(1)
		go s.handleConnection(conn)
	}
}

// Shutdown stops accepting new connections and waits for in-flight
// handlers to finish.
func (s *Server) Shutdown() {
	if !s.shutdown.CompareAndSwap(false, true) {
		return
	}
	if s.listener != nil {
		s.listener.Close()
	}
	close(s.done)
	s.wg.Wait()
}

// handleConnection implements C7: read until the request boundary, call
// the primary origin, write the response to the client, shut down the
// client stream, then hand the pair off to the pipeline. These steps are
// strictly sequenced — the hand-off never happens before the client
// write has been attempted.
func (s *Server) handleConnection(conn net.Conn) {
	defer s.wg.Done()
	defer func() {
		if s.connSem != nil {
			<-s.connSem
		}
	}()
	defer conn.Close()

	_ = nettune.Apply(conn)
	metrics.PrimaryRequestsTotal.Inc()

	raw, err := readUntilShortRead(conn, s.BufferSize)
	if err != nil {
		logging.TimedMsg("client read error: " + err.Error())
		metrics.PrimaryErrorsTotal.Inc()
		return
	}

	primaryResp, callErr := s.origin.Call(s.Primary, raw)
	if callErr != nil {
		writeSyntheticError(conn, callErr)
		logging.TimedMsg("primary call failed: " + callErr.Error())
		metrics.PrimaryErrorsTotal.Inc()
		return
	}

	if err := writeFull(conn, primaryResp); err != nil {
		logging.TimedMsg("client write error: " + err.Error())
		metrics.PrimaryErrorsTotal.Inc()
		return
	}

	shutdownWrite(conn)

	id := s.pipeline.Submit(raw, primaryResp)
	logging.TimedMsg("handed off " + id + " to analyzer")
}

// writeSyntheticError writes the literal 5xx response the client sees
// when the primary origin could not be reached or talked to. The choice
// between 503 and 500 follows the error kind, not its wrapped cause.
func writeSyntheticError(conn net.Conn, err error) {
	var unresponsive *Unresponsive
	if errors.As(err, &unresponsive) {
		_ = writeFull(conn, respUnavailable)
		return
	}
	_ = writeFull(conn, respInternal)
}

// shutdownWrite half-closes the write side of conn when the underlying
// type supports it (plain net.Conn does not expose CloseWrite).
func shutdownWrite(conn net.Conn) {
	type writeCloser interface {
		CloseWrite() error
	}
	if wc, ok := conn.(writeCloser); ok {
		_ = wc.CloseWrite()
	}
}
