package http11

import "testing"

func TestParseStatus3(t *testing.T) {
	if got := parseStatus3([]byte("200")); got != StatusOk200 {
		t.Errorf("parseStatus3(200) = %v, want Ok200", got)
	}
	if got := parseStatus3([]byte("404")); got != StatusUnknown {
		t.Errorf("parseStatus3(404) = %v, want Unknown", got)
	}
	if got := parseStatus3([]byte("20")); got != StatusUnknown {
		t.Errorf("parseStatus3(20) = %v, want Unknown", got)
	}
}
