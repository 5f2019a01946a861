package weburl

// parseIPv6 parses the text between the brackets of an IPv6 literal
// into eight 16-bit pieces, handling '::' compression and a trailing
// embedded IPv4 address.
func parseIPv6(input string, diag *diagnostics) ([8]uint16, DiagCode) {
	var (
		address    [8]uint16
		pieceIndex int
		compress   = -1
		i          int
	)
	fail := func(code DiagCode) ([8]uint16, DiagCode) {
		diag.report(DiagIPv6InvalidCodePoint)
		return [8]uint16{}, code
	}

	if len(input) > 0 && input[0] == ':' {
		if len(input) < 2 || input[1] != ':' {
			return fail(DiagIPv6InvalidCompression)
		}
		i = 2
		pieceIndex = 1
		compress = 1
	}

	for i < len(input) {
		if pieceIndex == 8 {
			return fail(DiagIPv6TooManyPieces)
		}
		if input[i] == ':' {
			if compress != -1 {
				return fail(DiagIPv6MultipleCompression)
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}

		value, length := 0, 0
		for length < 4 && i < len(input) && isHexDigit(input[i]) {
			value = value*16 + int(unhex(input[i]))
			i++
			length++
		}

		if i < len(input) && input[i] == '.' {
			if length == 0 {
				return fail(DiagIPv4EmptyPart)
			}
			i -= length
			if pieceIndex > 6 {
				return fail(DiagIPv6TooManyPieces)
			}
			var code DiagCode
			i, code = parseEmbeddedIPv4(input, i, &address, &pieceIndex)
			if code != 0 {
				return fail(code)
			}
			continue
		}

		address[pieceIndex] = uint16(value)
		pieceIndex++
		if i < len(input) {
			if input[i] != ':' {
				return fail(DiagIPv6InvalidCodePoint)
			}
			i++
			if i == len(input) {
				return fail(DiagIPv6InvalidCodePoint)
			}
		}
	}

	if compress != -1 {
		swaps := pieceIndex - compress
		for pieceIndex = 7; pieceIndex != 0 && swaps > 0; {
			address[pieceIndex], address[compress+swaps-1] =
				address[compress+swaps-1], address[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		return fail(DiagIPv6TooFewPieces)
	}
	return address, 0
}

// parseEmbeddedIPv4 consumes the dotted-decimal tail of a mixed
// address, filling two pieces starting at *pieceIndex.
func parseEmbeddedIPv4(input string, i int, address *[8]uint16, pieceIndex *int) (int, DiagCode) {
	numbersSeen := 0
	for i < len(input) {
		value := -1
		if numbersSeen > 0 {
			if input[i] != '.' || numbersSeen >= 4 {
				return i, DiagIPv4TooManyParts
			}
			i++
		}
		if i == len(input) || input[i] < '0' || input[i] > '9' {
			return i, DiagIPv4EmptyPart
		}
		for i < len(input) && input[i] >= '0' && input[i] <= '9' {
			d := int(input[i] - '0')
			switch {
			case value == -1:
				value = d
			case value == 0:
				return i, DiagIPv4NonDecimalPart
			default:
				value = value*10 + d
			}
			if value > 255 {
				return i, DiagIPv4PartOutOfRange
			}
			i++
		}
		address[*pieceIndex] = address[*pieceIndex]*0x100 + uint16(value)
		numbersSeen++
		if numbersSeen == 2 || numbersSeen == 4 {
			*pieceIndex++
		}
	}
	if numbersSeen != 4 {
		return i, DiagIPv4TooManyParts
	}
	return i, 0
}

// serializeIPv6 writes the canonical text form: lowercase hex pieces,
// the single longest run of zero pieces (length >= 2) compressed to
// '::'.
func serializeIPv6(address [8]uint16) string {
	compress, compressLen := -1, 1
	for i := 0; i < 8; i++ {
		if address[i] != 0 {
			continue
		}
		n := 0
		for j := i; j < 8 && address[j] == 0; j++ {
			n++
		}
		if n > compressLen {
			compress, compressLen = i, n
		}
	}

	var dst []byte
	ignore0 := false
	for i := 0; i < 8; i++ {
		if ignore0 {
			if address[i] == 0 {
				continue
			}
			ignore0 = false
		}
		if i == compress {
			if i == 0 {
				dst = append(dst, ':')
			}
			dst = append(dst, ':')
			ignore0 = true
			continue
		}
		dst = appendLowerHex(dst, address[i])
		if i != 7 {
			dst = append(dst, ':')
		}
	}
	return string(dst)
}

const lowerhex = "0123456789abcdef"

func appendLowerHex(dst []byte, v uint16) []byte {
	if v == 0 {
		return append(dst, '0')
	}
	started := false
	for shift := 12; shift >= 0; shift -= 4 {
		d := (v >> uint(shift)) & 0x0f
		if d != 0 || started {
			dst = append(dst, lowerhex[d])
			started = true
		}
	}
	return dst
}
