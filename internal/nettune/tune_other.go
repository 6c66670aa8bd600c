//go:build !linux
// +build !linux

// Package nettune applies socket-level tuning to connections the proxy
// opens toward origins. See tune_linux.go for the Linux implementation;
// this file is the portable fallback everywhere TCP_NODELAY can't be set
// through golang.org/x/sys/unix.
package nettune

import "net"

// Apply is a no-op outside Linux. Nagle's algorithm stays on; this never
// affects correctness, only first-byte latency.
func Apply(conn net.Conn) error {
	return nil
}
