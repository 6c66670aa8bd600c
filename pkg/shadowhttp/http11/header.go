package http11

// HeaderKind is the closed enumeration of header names the codec
// recognizes. A header line whose name is not in this set is silently
// dropped by the decoder — it never surfaces as an error.
type HeaderKind uint8

const (
	HeaderUnknown HeaderKind = iota
	HeaderAccept
	HeaderAcceptPatch
	HeaderAcceptRanges
	HeaderAccessControlAllowOrigin
	HeaderAccessControlAllowCredentials
	HeaderAccessControlAllowMethods
	HeaderAccessControlAllowHeaders
	HeaderAccessControlExposeHeaders
	HeaderAccessControlMaxAge
	HeaderAge
	HeaderAllow
	HeaderAltSvc
	HeaderCacheControl
	HeaderConnection
	HeaderContentDisposition
	HeaderContentEncoding
	HeaderContentLanguage
	HeaderContentLength
	HeaderContentLocation
	HeaderContentRange
	HeaderContentType
	HeaderContentSecurityPolicy
	HeaderDate
	HeaderDeltaBase
	HeaderETag
	HeaderExpires
	HeaderIM
	HeaderLastModified
	HeaderLink
	HeaderLocation
	HeaderPragma
	HeaderProxyAuthenticate
	HeaderPublicKeyPins
	HeaderRetryAfter
	HeaderRefresh
	HeaderServer
	HeaderSetCookie
	HeaderStrictTransportSecurity
	HeaderTrailer
	HeaderTransferEncoding
	HeaderTk
	HeaderUpgrade
	HeaderVary
	HeaderVia
	HeaderWarning
	HeaderWWWAuthenticate
	HeaderXPoweredBy
	HeaderXRequestID
	HeaderXUACompatible
	HeaderXXSSProtection
)

// String maps a HeaderKind back to its canonical wire name. Used by
// tests and by anything that needs to re-serialize a decoded header.
func (k HeaderKind) String() string {
	switch k {
	case HeaderAccept:
		return "Accept"
	case HeaderAcceptPatch:
		return "Accept-Patch"
	case HeaderAcceptRanges:
		return "Accept-Ranges"
	case HeaderAccessControlAllowOrigin:
		return "Access-Control-Allow-Origin"
	case HeaderAccessControlAllowCredentials:
		return "Access-Control-Allow-Credentials"
	case HeaderAccessControlAllowMethods:
		return "Access-Control-Allow-Methods"
	case HeaderAccessControlAllowHeaders:
		return "Access-Control-Allow-Headers"
	case HeaderAccessControlExposeHeaders:
		return "Access-Control-Expose-Headers"
	case HeaderAccessControlMaxAge:
		return "Access-Control-Max-Age"
	case HeaderAge:
		return "Age"
	case HeaderAllow:
		return "Allow"
	case HeaderAltSvc:
		return "Alt-Svc"
	case HeaderCacheControl:
		return "Cache-Control"
	case HeaderConnection:
		return "Connection"
	case HeaderContentDisposition:
		return "Content-Disposition"
	case HeaderContentEncoding:
		return "Content-Encoding"
	case HeaderContentLanguage:
		return "Content-Language"
	case HeaderContentLength:
		return "Content-Length"
	case HeaderContentLocation:
		return "Content-Location"
	case HeaderContentRange:
		return "Content-Range"
	case HeaderContentType:
		return "Content-Type"
	case HeaderContentSecurityPolicy:
		return "Content-Security-Policy"
	case HeaderDate:
		return "Date"
	case HeaderDeltaBase:
		return "Delta-Base"
	case HeaderETag:
		return "ETag"
	case HeaderExpires:
		return "Expires"
	case HeaderIM:
		return "IM"
	case HeaderLastModified:
		return "Last-Modified"
	case HeaderLink:
		return "Link"
	case HeaderLocation:
		return "Location"
	case HeaderPragma:
		return "Pragma"
	case HeaderProxyAuthenticate:
		return "Proxy-Authenticate"
	case HeaderPublicKeyPins:
		return "Public-Key-Pins"
	case HeaderRetryAfter:
		return "Retry-After"
	case HeaderRefresh:
		return "Refresh"
	case HeaderServer:
		return "Server"
	case HeaderSetCookie:
		return "Set-Cookie"
	case HeaderStrictTransportSecurity:
		return "Strict-Transport-Security"
	case HeaderTrailer:
		return "Trailer"
	case HeaderTransferEncoding:
		return "Transfer-Encoding"
	case HeaderTk:
		return "Tk"
	case HeaderUpgrade:
		return "Upgrade"
	case HeaderVary:
		return "Vary"
	case HeaderVia:
		return "Via"
	case HeaderWarning:
		return "Warning"
	case HeaderWWWAuthenticate:
		return "WWW-Authenticate"
	case HeaderXPoweredBy:
		return "X-Powered-By"
	case HeaderXRequestID:
		return "X-Request-ID"
	case HeaderXUACompatible:
		return "X-UA-Compatible"
	case HeaderXXSSProtection:
		return "X-XSS-Protection"
	default:
		return ""
	}
}

// lenMatch verifies that the byte at s+offset (the expected colon position
// for a header of the given name length) is ':' and that it falls before
// e. buf may run past one header line (it's a view into the whole header
// block), so this also guards against a longer header whose name happens
// to share a prefix with a shorter one.
func lenMatch(buf []byte, s, e, offset int) bool {
	return s+offset < e && buf[s+offset] == ':'
}

// nameMatches confirms the candidate header name occupies buf[s:s+len(name)]
// exactly. The discriminator tree below uses leading-byte dispatch to reach
// a narrow candidate set in O(1); this is the final, cheap confirmation at
// the leaf — for the handful of header families that share a prefix (the
// Content-L*, Access-Control-Allow-*, etc.) it is what tells them apart
// without drifting into a full hash-map lookup.
func nameMatches(buf []byte, s int, name string) bool {
	if s+len(name) > len(buf) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if buf[s+i] != name[i] {
			return false
		}
	}
	return true
}

// buildHeaderPair trims ASCII whitespace from both ends of buf[l:r] and
// returns it as a string. An empty trimmed value yields ok=false.
func buildHeaderPair(buf []byte, l, r int) (string, bool) {
	for l < r && isSpace(buf[l]) {
		l++
	}
	for r > l && isSpace(buf[r-1]) {
		r--
	}
	if l >= r {
		return "", false
	}
	return string(buf[l:r]), true
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n' || b == '\v' || b == '\f'
}

// leaf checks the colon position for a candidate name, confirms the name
// bytes, and builds the trimmed value. e points at the line's terminating
// '\n', so the value slice ends there; a trailing '\r' from a CRLF line is
// removed by buildHeaderPair's whitespace trim, and a bare-LF line keeps
// every value byte.
func leaf(buf []byte, s, e int, name string, kind HeaderKind) (HeaderKind, string, bool) {
	off := len(name)
	if !lenMatch(buf, s, e, off) || !nameMatches(buf, s, name) {
		return HeaderUnknown, "", false
	}
	val, ok := buildHeaderPair(buf, s+off+1, e)
	if !ok {
		return HeaderUnknown, "", false
	}
	return kind, val, true
}

// DecodeHeaderLine recognizes a single header line buf[s:e) (e pointing at
// the terminating '\n') against the fixed, curated header set. It dispatches
// on the leading bytes of the name — a decision tree, not a hash map — and
// falls through to ok=false for any name outside the set or any recognized
// name whose trimmed value is empty.
func DecodeHeaderLine(buf []byte, s, e int) (HeaderKind, string, bool) {
	if s >= e || s >= len(buf) {
		return HeaderUnknown, "", false
	}

	switch buf[s] {
	case 'A':
		if s+1 >= len(buf) {
			return HeaderUnknown, "", false
		}
		switch buf[s+1] {
		case 'c':
			if k, v, ok := leaf(buf, s, e, "Accept", HeaderAccept); ok {
				return k, v, ok
			}
			if k, v, ok := leaf(buf, s, e, "Accept-Patch", HeaderAcceptPatch); ok {
				return k, v, ok
			}
			if k, v, ok := leaf(buf, s, e, "Accept-Ranges", HeaderAcceptRanges); ok {
				return k, v, ok
			}
			if k, v, ok := leaf(buf, s, e, "Access-Control-Allow-Origin", HeaderAccessControlAllowOrigin); ok {
				return k, v, ok
			}
			if k, v, ok := leaf(buf, s, e, "Access-Control-Allow-Credentials", HeaderAccessControlAllowCredentials); ok {
				return k, v, ok
			}
			if k, v, ok := leaf(buf, s, e, "Access-Control-Allow-Methods", HeaderAccessControlAllowMethods); ok {
				return k, v, ok
			}
			if k, v, ok := leaf(buf, s, e, "Access-Control-Allow-Headers", HeaderAccessControlAllowHeaders); ok {
				return k, v, ok
			}
			if k, v, ok := leaf(buf, s, e, "Access-Control-Expose-Headers", HeaderAccessControlExposeHeaders); ok {
				return k, v, ok
			}
			if k, v, ok := leaf(buf, s, e, "Access-Control-Max-Age", HeaderAccessControlMaxAge); ok {
				return k, v, ok
			}
		case 'g':
			return leaf(buf, s, e, "Age", HeaderAge)
		case 'l':
			if k, v, ok := leaf(buf, s, e, "Allow", HeaderAllow); ok {
				return k, v, ok
			}
			return leaf(buf, s, e, "Alt-Svc", HeaderAltSvc)
		}
	case 'C':
		if k, v, ok := leaf(buf, s, e, "Cache-Control", HeaderCacheControl); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Connection", HeaderConnection); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Content-Disposition", HeaderContentDisposition); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Content-Encoding", HeaderContentEncoding); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Content-Language", HeaderContentLanguage); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Content-Length", HeaderContentLength); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Content-Location", HeaderContentLocation); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Content-Range", HeaderContentRange); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Content-Type", HeaderContentType); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Content-Security-Policy", HeaderContentSecurityPolicy); ok {
			return k, v, ok
		}
	case 'D':
		if k, v, ok := leaf(buf, s, e, "Date", HeaderDate); ok {
			return k, v, ok
		}
		return leaf(buf, s, e, "Delta-Base", HeaderDeltaBase)
	case 'E':
		if k, v, ok := leaf(buf, s, e, "ETag", HeaderETag); ok {
			return k, v, ok
		}
		return leaf(buf, s, e, "Expires", HeaderExpires)
	case 'I':
		return leaf(buf, s, e, "IM", HeaderIM)
	case 'L':
		if k, v, ok := leaf(buf, s, e, "Last-Modified", HeaderLastModified); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Link", HeaderLink); ok {
			return k, v, ok
		}
		return leaf(buf, s, e, "Location", HeaderLocation)
	case 'P':
		if k, v, ok := leaf(buf, s, e, "Pragma", HeaderPragma); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Proxy-Authenticate", HeaderProxyAuthenticate); ok {
			return k, v, ok
		}
		return leaf(buf, s, e, "Public-Key-Pins", HeaderPublicKeyPins)
	case 'R':
		if k, v, ok := leaf(buf, s, e, "Retry-After", HeaderRetryAfter); ok {
			return k, v, ok
		}
		return leaf(buf, s, e, "Refresh", HeaderRefresh)
	case 'S':
		if k, v, ok := leaf(buf, s, e, "Server", HeaderServer); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Set-Cookie", HeaderSetCookie); ok {
			return k, v, ok
		}
		return leaf(buf, s, e, "Strict-Transport-Security", HeaderStrictTransportSecurity)
	case 'T':
		if k, v, ok := leaf(buf, s, e, "Trailer", HeaderTrailer); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "Transfer-Encoding", HeaderTransferEncoding); ok {
			return k, v, ok
		}
		return leaf(buf, s, e, "Tk", HeaderTk)
	case 'U':
		return leaf(buf, s, e, "Upgrade", HeaderUpgrade)
	case 'V':
		if k, v, ok := leaf(buf, s, e, "Vary", HeaderVary); ok {
			return k, v, ok
		}
		return leaf(buf, s, e, "Via", HeaderVia)
	case 'W':
		if k, v, ok := leaf(buf, s, e, "Warning", HeaderWarning); ok {
			return k, v, ok
		}
		return leaf(buf, s, e, "WWW-Authenticate", HeaderWWWAuthenticate)
	case 'X':
		if k, v, ok := leaf(buf, s, e, "X-Powered-By", HeaderXPoweredBy); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "X-Request-ID", HeaderXRequestID); ok {
			return k, v, ok
		}
		if k, v, ok := leaf(buf, s, e, "X-UA-Compatible", HeaderXUACompatible); ok {
			return k, v, ok
		}
		return leaf(buf, s, e, "X-XSS-Protection", HeaderXXSSProtection)
	}

	return HeaderUnknown, "", false
}
