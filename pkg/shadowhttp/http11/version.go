package http11

// Version is a closed enumeration of the HTTP version tokens the codec
// recognizes on the wire. VersionUnknown exists only to surface a parse
// failure at the decoder boundary; it never appears in a successfully
// decoded DecodedRequest or DecodedResponse.
type Version uint8

const (
	VersionUnknown Version = iota
	Version10
	Version11
	Version2
	Version3
)

func (v Version) String() string {
	switch v {
	case Version10:
		return "HTTP/1.0"
	case Version11:
		return "HTTP/1.1"
	case Version2:
		return "HTTP/2"
	case Version3:
		return "HTTP/3"
	default:
		return ""
	}
}

var httpSlash = [5]byte{'H', 'T', 'T', 'P', '/'}

// parseVersion accepts exactly the tokens HTTP/1.0, HTTP/1.1, HTTP/2 and
// HTTP/3. The major byte at offset 5 selects the branch; for 1.x the next
// two bytes must be ".0" or ".1". For 2 and 3 any trailing minor byte is
// ignored — the codec treats those versions as non-error passthroughs,
// framing still assumes 1.x semantics.
func parseVersion(tok []byte) Version {
	if len(tok) < 6 {
		return VersionUnknown
	}
	for i := 0; i < 5; i++ {
		if tok[i] != httpSlash[i] {
			return VersionUnknown
		}
	}
	switch tok[5] {
	case '1':
		if len(tok) >= 8 && tok[6] == '.' && (tok[7] == '0' || tok[7] == '1') {
			if tok[7] == '0' {
				return Version10
			}
			return Version11
		}
		return VersionUnknown
	case '2':
		return Version2
	case '3':
		return Version3
	default:
		return VersionUnknown
	}
}
