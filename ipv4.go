package weburl

import "strings"

// serializeIPv4 writes the dotted-decimal form, most significant octet
// first.
func serializeIPv4(addr uint32) string {
	var dst []byte
	for i := 3; i >= 0; i-- {
		octet := byte(addr >> (uint(i) * 8))
		dst = appendDecimal(dst, uint64(octet))
		if i != 0 {
			dst = append(dst, '.')
		}
	}
	return string(dst)
}

func appendDecimal(dst []byte, n uint64) []byte {
	if n >= 10 {
		dst = appendDecimal(dst, n/10)
	}
	return append(dst, byte('0'+n%10))
}

// parseIPv4Number handles one dotted part. Radix prefixes 0x/0X and a
// leading 0 select hex and octal and are flagged as diagnostics; an
// empty remainder after the prefix is zero.
func parseIPv4Number(part string, diag *diagnostics) (uint64, DiagCode) {
	base := uint64(10)
	if len(part) >= 2 && part[0] == '0' && (part[1] == 'x' || part[1] == 'X') {
		diag.report(DiagIPv4NonDecimalPart)
		part = part[2:]
		base = 16
	} else if len(part) >= 2 && part[0] == '0' {
		diag.report(DiagIPv4NonDecimalPart)
		part = part[1:]
		base = 8
	}
	if part == "" {
		return 0, 0
	}

	var n uint64
	for i := 0; i < len(part); i++ {
		var d uint64
		b := part[i]
		switch {
		case b >= '0' && b <= '9':
			d = uint64(b - '0')
		case base == 16 && b >= 'a' && b <= 'f':
			d = uint64(b - 'a' + 10)
		case base == 16 && b >= 'A' && b <= 'F':
			d = uint64(b - 'A' + 10)
		default:
			return 0, DiagIPv4PartOutOfRange
		}
		if d >= base {
			return 0, DiagIPv4PartOutOfRange
		}
		n = n*base + d
		if n > 1<<40 {
			// Far past any representable address; stop before overflow.
			return n, 0
		}
	}
	return n, 0
}

// parseIPv4 interprets a host that ends in a number as an IPv4
// address. Parts are dot-separated; a lone trailing dot is tolerated
// with a diagnostic. All but the last part must fit one octet; the
// last packs the remaining ones.
func parseIPv4(input string, diag *diagnostics) (uint32, DiagCode) {
	parts := strings.Split(input, ".")
	if parts[len(parts)-1] == "" {
		diag.report(DiagIPv4EmptyPart)
		if len(parts) > 1 {
			parts = parts[:len(parts)-1]
		}
	}
	if len(parts) > 4 {
		diag.report(DiagIPv4TooManyParts)
		return 0, DiagIPv4TooManyParts
	}

	numbers := make([]uint64, 0, 4)
	for _, part := range parts {
		if part == "" {
			diag.report(DiagIPv4EmptyPart)
			return 0, DiagIPv4EmptyPart
		}
		n, code := parseIPv4Number(part, diag)
		if code != 0 {
			diag.report(code)
			return 0, code
		}
		numbers = append(numbers, n)
	}

	for _, n := range numbers[:len(numbers)-1] {
		if n > 255 {
			diag.report(DiagIPv4PartOutOfRange)
			return 0, DiagIPv4OutOfRange
		}
	}
	last := numbers[len(numbers)-1]
	if last >= 1<<(uint(5-len(numbers))*8) {
		diag.report(DiagIPv4PartOutOfRange)
		return 0, DiagIPv4OutOfRange
	}

	addr := uint32(last)
	for i, n := range numbers[:len(numbers)-1] {
		addr += uint32(n) << (uint(3-i) * 8)
	}
	return addr, 0
}
