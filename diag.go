package weburl

// DiagCode identifies a validation error observed while parsing. The
// names follow the WHATWG URL standard's validation-error table.
// Diagnostics never abort a parse; the fatal conditions surface as
// ParseError instead.
type DiagCode int

const (
	DiagInvalidURLUnit DiagCode = iota + 1
	DiagLeadingTrailingControlOrSpace
	DiagTabOrNewlineRemoved
	DiagSpecialSchemeMissingFollowingSolidus
	DiagInvalidReverseSolidus
	DiagInvalidCredentials
	DiagUnexpectedPercent
	DiagUnexpectedAtSign
	DiagFileInvalidWindowsDriveLetter
	DiagFileInvalidWindowsDriveLetterHost
	DiagIPv4NonDecimalPart
	DiagIPv4PartOutOfRange
	DiagIPv4EmptyPart
	DiagIPv6InvalidCodePoint

	// Codes below mark conditions that are fatal when reached; they
	// appear inside ParseError rather than in the diagnostics log.
	DiagMissingSchemeNonRelativeURL
	DiagHostMissing
	DiagHostInvalidCodePoint
	DiagDomainToASCII
	DiagPortInvalid
	DiagPortOutOfRange
	DiagIPv4TooManyParts
	DiagIPv4OutOfRange
	DiagIPv6Unclosed
	DiagIPv6TooManyPieces
	DiagIPv6InvalidCompression
	DiagIPv6TooFewPieces
	DiagIPv6MultipleCompression
)

var diagNames = map[DiagCode]string{
	DiagInvalidURLUnit:                       "invalid-URL-unit",
	DiagLeadingTrailingControlOrSpace:        "leading-or-trailing-control-or-space",
	DiagTabOrNewlineRemoved:                  "tab-or-newline-removed",
	DiagSpecialSchemeMissingFollowingSolidus: "special-scheme-missing-following-solidus",
	DiagInvalidReverseSolidus:                "invalid-reverse-solidus",
	DiagInvalidCredentials:                   "invalid-credentials",
	DiagUnexpectedPercent:                    "unexpected-percent",
	DiagUnexpectedAtSign:                     "unexpected-at-sign",
	DiagFileInvalidWindowsDriveLetter:        "file-invalid-windows-drive-letter",
	DiagFileInvalidWindowsDriveLetterHost:    "file-invalid-windows-drive-letter-host",
	DiagIPv4NonDecimalPart:                   "ipv4-non-decimal-part",
	DiagIPv4PartOutOfRange:                   "ipv4-part-out-of-range",
	DiagIPv4EmptyPart:                        "ipv4-empty-part",
	DiagIPv6InvalidCodePoint:                 "ipv6-invalid-code-point",
	DiagMissingSchemeNonRelativeURL:          "missing-scheme-non-relative-URL",
	DiagHostMissing:                          "host-missing",
	DiagHostInvalidCodePoint:                 "host-invalid-code-point",
	DiagDomainToASCII:                        "domain-to-ASCII",
	DiagPortInvalid:                          "port-invalid",
	DiagPortOutOfRange:                       "port-out-of-range",
	DiagIPv4TooManyParts:                     "ipv4-too-many-parts",
	DiagIPv4OutOfRange:                       "ipv4-out-of-range",
	DiagIPv6Unclosed:                         "ipv6-unclosed",
	DiagIPv6TooManyPieces:                    "ipv6-too-many-pieces",
	DiagIPv6InvalidCompression:               "ipv6-invalid-compression",
	DiagIPv6TooFewPieces:                     "ipv6-too-few-pieces",
	DiagIPv6MultipleCompression:              "ipv6-multiple-compression",
}

func (c DiagCode) String() string {
	if s, ok := diagNames[c]; ok {
		return s
	}
	return "unknown-validation-error"
}

// diagnostics is the ordered collector threaded through a parse. The
// public entry points allocate one per call, so parses share no state.
type diagnostics struct {
	codes []DiagCode
}

func (d *diagnostics) report(c DiagCode) {
	d.codes = append(d.codes, c)
}
