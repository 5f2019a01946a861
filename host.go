package weburl

import (
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// HostKind discriminates the variants a parsed host can take.
type HostKind int

const (
	HostNone HostKind = iota
	HostDomain
	HostIPv4
	HostIPv6
	HostOpaque
	HostEmpty
)

// Host is the value produced by host parsing: an ASCII domain, an IPv4
// address, an IPv6 address, an opaque string, or the empty host.
type Host struct {
	kind   HostKind
	domain string
	opaque string
	ipv4   uint32
	ipv6   [8]uint16
}

func (h Host) Kind() HostKind { return h.kind }

// String serializes the host the way it appears inside an href. IPv6
// addresses come back bracketed.
func (h Host) String() string {
	switch h.kind {
	case HostDomain:
		return h.domain
	case HostIPv4:
		return serializeIPv4(h.ipv4)
	case HostIPv6:
		return "[" + serializeIPv6(h.ipv6) + "]"
	case HostOpaque:
		return h.opaque
	default:
		return ""
	}
}

// forbiddenHostSet holds the forbidden host code points. '%' is carved
// out separately because opaque hosts tolerate it.
var forbiddenHostSet byteSet

func init() {
	forbiddenHostSet.merge("\x00\t\n\r #%/:<>?@[\\]^")
}

func isForbiddenHostByte(b byte) bool {
	return forbiddenHostSet.has(b)
}

// parseHost maps accumulated host bytes to a Host variant. Bracketed
// input must be a well-formed IPv6 literal. Special schemes get domain
// processing (percent-decode, IDNA, then the IPv4 interpretation);
// everything else becomes an opaque host. Empty input is the empty
// host, which callers reject for special non-file schemes.
func parseHost(input string, isSpecial bool, diag *diagnostics) (Host, DiagCode) {
	if input == "" {
		return Host{kind: HostEmpty}, 0
	}

	if input[0] == '[' {
		if input[len(input)-1] != ']' {
			diag.report(DiagIPv6InvalidCodePoint)
			return Host{}, DiagIPv6Unclosed
		}
		addr, code := parseIPv6(input[1:len(input)-1], diag)
		if code != 0 {
			return Host{}, code
		}
		return Host{kind: HostIPv6, ipv6: addr}, 0
	}

	if !isSpecial {
		return parseOpaqueHost(input, diag)
	}

	domain, err := domainToASCII(PercentDecode(input))
	if err != nil {
		return Host{}, DiagDomainToASCII
	}
	for i := 0; i < len(domain); i++ {
		if isForbiddenHostByte(domain[i]) {
			diag.report(DiagHostInvalidCodePoint)
			return Host{}, DiagHostInvalidCodePoint
		}
	}

	if endsInNumber(domain) {
		addr, code := parseIPv4(domain, diag)
		if code != 0 {
			return Host{}, code
		}
		return Host{kind: HostIPv4, ipv4: addr}, 0
	}
	return Host{kind: HostDomain, domain: domain}, 0
}

func parseOpaqueHost(input string, diag *diagnostics) (Host, DiagCode) {
	for i := 0; i < len(input); i++ {
		if input[i] != '%' && isForbiddenHostByte(input[i]) {
			diag.report(DiagHostInvalidCodePoint)
			return Host{}, DiagHostInvalidCodePoint
		}
	}
	return Host{kind: HostOpaque, opaque: PercentEncode(input, EncodeC0Control)}, 0
}

// domainProfile relaxes idna.Lookup enough to accept hosts browsers
// accept (underscores and other non-LDH ASCII pass through).
var domainProfile = idna.New(
	idna.MapForLookup(),
	idna.StrictDomainName(false),
	idna.Transitional(true),
)

func domainToASCII(domain string) (string, error) {
	if isASCIILower(domain) {
		return domain, nil
	}
	return domainProfile.ToASCII(domain)
}

// DomainToUnicode is the inverse convenience over the same IDNA
// profile, for display purposes.
func DomainToUnicode(domain string) (string, error) {
	return domainProfile.ToUnicode(domain)
}

func isASCIILower(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b >= 0x80 || b >= 'A' && b <= 'Z' {
			return false
		}
	}
	return true
}

// endsInNumber implements the WHATWG "ends in a number" check: the
// last non-empty dot-separated label is all digits or carries a radix
// prefix, which forces the IPv4 interpretation of the whole host.
func endsInNumber(s string) bool {
	parts := strings.Split(s, ".")
	last := parts[len(parts)-1]
	if last == "" {
		if len(parts) == 1 {
			return false
		}
		last = parts[len(parts)-2]
	}
	if last == "" {
		return false
	}
	if len(last) >= 2 && last[0] == '0' && (last[1] == 'x' || last[1] == 'X') {
		return true
	}
	for i := 0; i < len(last); i++ {
		if last[i] < '0' || last[i] > '9' {
			return false
		}
	}
	return true
}

// portString renders a port for serialization.
func portString(p uint16) string {
	return strconv.FormatUint(uint64(p), 10)
}
