package http11

import "testing"

func TestDecodeResponseStatusOnly(t *testing.T) {
	resp, err := DecodeResponse([]byte("HTTP/1.1 200"))
	if err != nil {
		t.Fatalf("DecodeResponse returned error: %v", err)
	}
	if resp.Version != Version11 {
		t.Errorf("version = %v, want HTTP/1.1", resp.Version)
	}
	if resp.Status != StatusOk200 {
		t.Errorf("status = %v, want Ok200", resp.Status)
	}
	if len(resp.Headers) != 0 {
		t.Errorf("headers = %v, want empty", resp.Headers)
	}
	if resp.ContentLength == nil || *resp.ContentLength != 0 {
		t.Errorf("content length = %v, want 0", resp.ContentLength)
	}
}

func TestDecodeResponseContentLength(t *testing.T) {
	resp, err := DecodeResponse([]byte("HTTP/1.1 200 OK\r\nContent-Length: 42\r\n\r\n"))
	if err != nil {
		t.Fatalf("DecodeResponse returned error: %v", err)
	}
	if resp.ContentLength == nil || *resp.ContentLength != 42 {
		t.Errorf("content length = %v, want 42", resp.ContentLength)
	}
	found := false
	for _, h := range resp.Headers {
		if h.Kind == HeaderContentLength && h.Value == "42" {
			found = true
		}
	}
	if !found {
		t.Errorf("headers = %v, want (ContentLength, 42)", resp.Headers)
	}
}

func TestDecodeResponseUnknownHeaderSkipped(t *testing.T) {
	resp, err := DecodeResponse([]byte("HTTP/1.1 200 OK\r\nX-Weird: yes\r\nDate: now\r\n\r\n"))
	if err != nil {
		t.Fatalf("DecodeResponse returned error: %v", err)
	}
	var dateValue string
	for _, h := range resp.Headers {
		if h.Kind == HeaderXPoweredBy || h.Kind == HeaderUnknown {
			t.Errorf("unexpected header entry leaked through: %v", h)
		}
		if h.Kind == HeaderDate {
			dateValue = h.Value
		}
	}
	if dateValue != "now" {
		t.Errorf("Date value = %q, want now", dateValue)
	}
}

func TestDecodeResponseDuplicateContentLengthLastWins(t *testing.T) {
	resp, err := DecodeResponse([]byte("HTTP/1.1 200 OK\r\nContent-Length: 1\r\nContent-Length: 2\r\n\r\n"))
	if err != nil {
		t.Fatalf("DecodeResponse returned error: %v", err)
	}
	if resp.ContentLength == nil || *resp.ContentLength != 2 {
		t.Errorf("content length = %v, want 2 (last write wins)", resp.ContentLength)
	}
}

func TestDecodeResponseNoSpace(t *testing.T) {
	if _, err := DecodeResponse([]byte("garbage")); err != ErrBadFormat {
		t.Errorf("err = %v, want ErrBadFormat", err)
	}
}
