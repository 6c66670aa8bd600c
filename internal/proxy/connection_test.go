package proxy

import (
	"io"
	"net"
	"testing"
	"time"
)

func TestServeClientDeterminism(t *testing.T) {
	primaryResp := []byte("HTTP/1.1 200 OK\r\nContent-Length: 5\r\n\r\nhello")
	primary := startEchoOrigin(t, primaryResp)
	defer primary.Close()

	shadow := startEchoOrigin(t, []byte("HTTP/1.1 200 OK\r\nContent-Length: 2\r\n\r\nhi"))
	defer shadow.Close()

	origin := NewOriginClient(2*time.Second, 1500)
	recorded := make(chan ComparisonRecord, 1)
	pipeline := NewPipeline(shadow.Addr().String(), origin, SinkFunc(func(r ComparisonRecord) {
		recorded <- r
	}), 1000, 2)
	go pipeline.Run()
	defer pipeline.Stop()

	server := NewServer(primary.Addr().String(), 0, 1500, origin, pipeline)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go server.Serve(ln)
	defer server.Shutdown()

	conn, err := net.Dial("tcp", ln.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("GET /x HTTP/1.1\n\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(primaryResp) {
		t.Errorf("client got %q, want %q (client determinism)", got, primaryResp)
	}

	select {
	case rec := <-recorded:
		if rec.ID == "" {
			t.Error("expected a non-empty comparison record ID")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for comparison record")
	}
}

func TestServeUnresponsivePrimaryYields503(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	unreachable := ln.Addr().String()
	ln.Close()

	shadow := startEchoOrigin(t, []byte("HTTP/1.1 200 OK\r\n\r\n"))
	defer shadow.Close()

	origin := NewOriginClient(300*time.Millisecond, 1500)
	pipeline := NewPipeline(shadow.Addr().String(), origin, nil, 1000, 2)
	go pipeline.Run()
	defer pipeline.Stop()

	server := NewServer(unreachable, 0, 1500, origin, pipeline)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go server.Serve(listener)
	defer server.Shutdown()

	conn, err := net.Dial("tcp", listener.Addr().String())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("GET /x HTTP/1.1\n\n")); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := io.ReadAll(conn)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "HTTP/1.1 503 Service Unavailable" {
		t.Errorf("client got %q, want literal 503 bytes", got)
	}
}
