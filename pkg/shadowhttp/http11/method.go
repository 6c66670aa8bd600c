package http11

// Method is a closed enumeration of the HTTP methods the codec recognizes.
// Equality is the only operation callers need; order is irrelevant.
type Method uint8

const (
	MethodUnknown Method = iota
	MethodOPTIONS
	MethodGET
	MethodHEAD
	MethodPOST
	MethodPUT
	MethodDELETE
	MethodTRACE
	MethodCONNECT
	MethodPATCH
)

func (m Method) String() string {
	switch m {
	case MethodOPTIONS:
		return "OPTIONS"
	case MethodGET:
		return "GET"
	case MethodHEAD:
		return "HEAD"
	case MethodPOST:
		return "POST"
	case MethodPUT:
		return "PUT"
	case MethodDELETE:
		return "DELETE"
	case MethodTRACE:
		return "TRACE"
	case MethodCONNECT:
		return "CONNECT"
	case MethodPATCH:
		return "PATCH"
	default:
		return ""
	}
}

// parseMethod identifies a method by a discriminator on the first (and for
// 'P', the second) byte of the request line, per the wire contract: the
// codec does not re-validate the remaining letters of the token. A client
// that sends "PX /x HTTP/1.0" is rejected at the second byte; one that sends
// a misspelled-but-discriminator-matching token is accepted, matching the
// lenient, non-RFC-strict framing the codec commits to elsewhere.
func parseMethod(tok []byte) Method {
	if len(tok) < 2 {
		return MethodUnknown
	}
	switch tok[0] {
	case 'C':
		return MethodCONNECT
	case 'D':
		return MethodDELETE
	case 'G':
		return MethodGET
	case 'H':
		return MethodHEAD
	case 'O':
		return MethodOPTIONS
	case 'T':
		return MethodTRACE
	case 'P':
		switch tok[1] {
		case 'O':
			return MethodPOST
		case 'U':
			return MethodPUT
		case 'A':
			return MethodPATCH
		default:
			return MethodUnknown
		}
	default:
		return MethodUnknown
	}
}
