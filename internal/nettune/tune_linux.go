//go:build linux
// +build linux

// Package nettune applies socket-level tuning to connections the proxy
// opens toward origins. The core's one-shot connect/write/drain shape
// makes most throughput tuning (buffer sizing, keepalive) moot — a
// connection this short-lived never gets far enough to benefit — so
// this package is reduced to the one option that matters on the first
// RTT: TCP_NODELAY.
package nettune

import (
	"net"

	"golang.org/x/sys/unix"
)

// Apply disables Nagle's algorithm on conn if it is a TCP connection.
// Non-TCP connections are left untouched. Failure to
// set the option is non-critical: it's a latency optimization, not a
// correctness requirement, so the error is returned for logging but
// callers are free to ignore it.
func Apply(conn net.Conn) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return nil
	}

	rawConn, err := tcpConn.SyscallConn()
	if err != nil {
		return err
	}

	var sockErr error
	ctrlErr := rawConn.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.IPPROTO_TCP, unix.TCP_NODELAY, 1)
	})
	if ctrlErr != nil {
		return ctrlErr
	}
	return sockErr
}
