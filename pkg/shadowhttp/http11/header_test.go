package http11

import "testing"

var allRecognizedHeaders = []struct {
	name string
	kind HeaderKind
}{
	{"Accept", HeaderAccept},
	{"Accept-Patch", HeaderAcceptPatch},
	{"Accept-Ranges", HeaderAcceptRanges},
	{"Access-Control-Allow-Origin", HeaderAccessControlAllowOrigin},
	{"Access-Control-Allow-Credentials", HeaderAccessControlAllowCredentials},
	{"Access-Control-Allow-Methods", HeaderAccessControlAllowMethods},
	{"Access-Control-Allow-Headers", HeaderAccessControlAllowHeaders},
	{"Access-Control-Expose-Headers", HeaderAccessControlExposeHeaders},
	{"Access-Control-Max-Age", HeaderAccessControlMaxAge},
	{"Age", HeaderAge},
	{"Allow", HeaderAllow},
	{"Alt-Svc", HeaderAltSvc},
	{"Cache-Control", HeaderCacheControl},
	{"Connection", HeaderConnection},
	{"Content-Disposition", HeaderContentDisposition},
	{"Content-Encoding", HeaderContentEncoding},
	{"Content-Language", HeaderContentLanguage},
	{"Content-Length", HeaderContentLength},
	{"Content-Location", HeaderContentLocation},
	{"Content-Range", HeaderContentRange},
	{"Content-Type", HeaderContentType},
	{"Content-Security-Policy", HeaderContentSecurityPolicy},
	{"Date", HeaderDate},
	{"Delta-Base", HeaderDeltaBase},
	{"ETag", HeaderETag},
	{"Expires", HeaderExpires},
	{"IM", HeaderIM},
	{"Last-Modified", HeaderLastModified},
	{"Link", HeaderLink},
	{"Location", HeaderLocation},
	{"Pragma", HeaderPragma},
	{"Proxy-Authenticate", HeaderProxyAuthenticate},
	{"Public-Key-Pins", HeaderPublicKeyPins},
	{"Retry-After", HeaderRetryAfter},
	{"Refresh", HeaderRefresh},
	{"Server", HeaderServer},
	{"Set-Cookie", HeaderSetCookie},
	{"Strict-Transport-Security", HeaderStrictTransportSecurity},
	{"Trailer", HeaderTrailer},
	{"Transfer-Encoding", HeaderTransferEncoding},
	{"Tk", HeaderTk},
	{"Upgrade", HeaderUpgrade},
	{"Vary", HeaderVary},
	{"Via", HeaderVia},
	{"Warning", HeaderWarning},
	{"WWW-Authenticate", HeaderWWWAuthenticate},
	{"X-Powered-By", HeaderXPoweredBy},
	{"X-Request-ID", HeaderXRequestID},
	{"X-UA-Compatible", HeaderXUACompatible},
	{"X-XSS-Protection", HeaderXXSSProtection},
}

func TestDecodeHeaderLineRecognizesEverything(t *testing.T) {
	for _, h := range allRecognizedHeaders {
		line := []byte(h.name + ": value\n")
		kind, value, ok := DecodeHeaderLine(line, 0, len(line)-1)
		if !ok {
			t.Errorf("%s: not recognized", h.name)
			continue
		}
		if kind != h.kind {
			t.Errorf("%s: kind = %v, want %v", h.name, kind, h.kind)
		}
		if value != "value" {
			t.Errorf("%s: value = %q, want value", h.name, value)
		}
	}
}

func TestDecodeHeaderLineUnknownDropped(t *testing.T) {
	line := []byte("X-Totally-Unknown: yes\n")
	_, _, ok := DecodeHeaderLine(line, 0, len(line)-1)
	if ok {
		t.Error("expected unrecognized header to be dropped")
	}
}

func TestDecodeHeaderLineEmptyValueDropped(t *testing.T) {
	line := []byte("Date:   \n")
	_, _, ok := DecodeHeaderLine(line, 0, len(line)-1)
	if ok {
		t.Error("expected empty trimmed value to be dropped")
	}
}

func TestDecodeHeaderLineTrimsWhitespace(t *testing.T) {
	line := []byte("Server:   nginx  \n")
	kind, value, ok := DecodeHeaderLine(line, 0, len(line)-1)
	if !ok || kind != HeaderServer {
		t.Fatalf("kind = %v, ok = %v, want Server/true", kind, ok)
	}
	if value != "nginx" {
		t.Errorf("value = %q, want nginx", value)
	}
}

func TestDecodeHeaderLineCRLF(t *testing.T) {
	line := []byte("ETag: \"abc\"\r\n")
	kind, value, ok := DecodeHeaderLine(line, 0, len(line)-1)
	if !ok || kind != HeaderETag {
		t.Fatalf("kind = %v, ok = %v, want ETag/true", kind, ok)
	}
	if value != "\"abc\"" {
		t.Errorf("value = %q, want \"abc\"", value)
	}
}
