package weburl

// EncodeSet selects which bytes must be percent-encoded when writing a
// given URL component. Each set is a strict superset of the previous one,
// except None, which encodes every byte.
type EncodeSet int

const (
	EncodeNone EncodeSet = iota
	EncodeC0Control
	EncodeFragment
	EncodePath
	EncodeUserinfo
)

// byteSet is a 256-bit membership bitmap.
type byteSet [4]uint64

func (s *byteSet) has(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

func (s *byteSet) set(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

func (s *byteSet) merge(bytes string) {
	for i := 0; i < len(bytes); i++ {
		s.set(bytes[i])
	}
}

var (
	c0ControlSet byteSet
	fragmentSet  byteSet
	pathSet      byteSet
	userinfoSet  byteSet
)

func init() {
	for c := 0; c < 256; c++ {
		if c <= 0x1f || c > 0x7e {
			c0ControlSet.set(byte(c))
		}
	}
	fragmentSet = c0ControlSet
	fragmentSet.merge(" \"<>`")
	pathSet = fragmentSet
	pathSet.merge("#?{}")
	userinfoSet = pathSet
	userinfoSet.merge("/:;=@[\\]^|")
}

// InSet reports whether byte b must be percent-encoded under set.
// EncodeNone admits no byte at all: everything is encoded.
func InSet(b byte, set EncodeSet) bool {
	switch set {
	case EncodeC0Control:
		return c0ControlSet.has(b)
	case EncodeFragment:
		return fragmentSet.has(b)
	case EncodePath:
		return pathSet.has(b)
	case EncodeUserinfo:
		return userinfoSet.has(b)
	default:
		return true
	}
}

const upperhex = "0123456789ABCDEF"

// appendEncodedByte appends b to dst either verbatim or as an uppercase
// %HH triple, depending on set membership.
func appendEncodedByte(dst []byte, b byte, set EncodeSet) []byte {
	if !InSet(b, set) {
		return append(dst, b)
	}
	return append(dst, '%', upperhex[b>>4], upperhex[b&0x0f])
}

// EncodeByte returns the serialized form of a single byte under set:
// either the byte itself or its three-byte percent-encoded form.
func EncodeByte(b byte, set EncodeSet) string {
	return string(appendEncodedByte(nil, b, set))
}

// PercentEncode percent-encodes every byte of s that is in set.
// It does not re-escape existing triples: no named set contains '%',
// so a '%' in s stays a '%'. EncodeNone is the exception and encodes
// '%' like every other byte.
func PercentEncode(s string, set EncodeSet) string {
	var dst []byte
	for i := 0; i < len(s); i++ {
		dst = appendEncodedByte(dst, s[i], set)
	}
	return string(dst)
}

func isHexDigit(b byte) bool {
	return b >= '0' && b <= '9' || b >= 'a' && b <= 'f' || b >= 'A' && b <= 'F'
}

func unhex(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}

func upperHexByte(b byte) byte {
	if b >= 'a' && b <= 'f' {
		return b - ('a' - 'A')
	}
	return b
}

// encodeComponent percent-encodes raw component bytes for output,
// copying existing %HH triples through with their hex uppercased
// rather than double-encoding the '%'.
func encodeComponent(s string, set EncodeSet) string {
	var dst []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			dst = append(dst, '%', upperHexByte(s[i+1]), upperHexByte(s[i+2]))
			i += 2
			continue
		}
		dst = appendEncodedByte(dst, s[i], set)
	}
	return string(dst)
}

// IsPercentEncoded reports whether s is exactly one percent-encoded
// triple: '%' followed by two hex digits of either case.
func IsPercentEncoded(s string) bool {
	return len(s) == 3 && s[0] == '%' && isHexDigit(s[1]) && isHexDigit(s[2])
}

// PercentDecode replaces every valid %HH triple in s with the byte it
// encodes. Stray '%' bytes and malformed triples pass through untouched.
func PercentDecode(s string) string {
	var dst []byte
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) && isHexDigit(s[i+1]) && isHexDigit(s[i+2]) {
			dst = append(dst, unhex(s[i+1])<<4|unhex(s[i+2]))
			i += 2
			continue
		}
		dst = append(dst, s[i])
	}
	return string(dst)
}
