package weburl

import "strings"

// State names a parser state. The zero value means "no state"; it is
// what callers pass when they do not want an override.
type State int

const (
	StateNone State = iota
	StateSchemeStart
	StateScheme
	StateNoScheme
	StateSpecialRelativeOrAuthority
	StatePathOrAuthority
	StateRelative
	StateRelativeSlash
	StateSpecialAuthoritySlashes
	StateSpecialAuthorityIgnoreSlashes
	StateAuthority
	StateHost
	StateHostname
	StatePort
	StateFile
	StateFileSlash
	StateFileHost
	StatePathStart
	StatePath
	StateOpaquePath
	StateQuery
	StateFragment
)

var stateNames = [...]string{
	StateNone:                          "none",
	StateSchemeStart:                   "scheme-start",
	StateScheme:                        "scheme",
	StateNoScheme:                      "no-scheme",
	StateSpecialRelativeOrAuthority:    "special-relative-or-authority",
	StatePathOrAuthority:               "path-or-authority",
	StateRelative:                      "relative",
	StateRelativeSlash:                 "relative-slash",
	StateSpecialAuthoritySlashes:       "special-authority-slashes",
	StateSpecialAuthorityIgnoreSlashes: "special-authority-ignore-slashes",
	StateAuthority:                     "authority",
	StateHost:                          "host",
	StateHostname:                      "hostname",
	StatePort:                          "port",
	StateFile:                          "file",
	StateFileSlash:                     "file-slash",
	StateFileHost:                      "file-host",
	StatePathStart:                     "path-start",
	StatePath:                          "path",
	StateOpaquePath:                    "opaque-path",
	StateQuery:                         "query",
	StateFragment:                      "fragment",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return "invalid"
}

// parser drives the byte-at-a-time state machine over a preprocessed
// input. Reconsumption is modeled with the advance flag: a state that
// wants the current byte re-dispatched under the new state clears it.
type parser struct {
	input    string
	i        int
	state    State
	buffer   []byte
	url      *record
	base     *record
	override State

	advance           bool
	atFlag            bool
	insideBrackets    bool
	passwordTokenSeen bool
	hexLeft           int

	diag *diagnostics
}

// appendComponentByte encodes one input byte for a component. A '%'
// opening a valid triple passes through and the two hex bytes that
// follow are uppercased instead of re-encoded.
func (p *parser) appendComponentByte(dst []byte, c byte, set EncodeSet) []byte {
	if p.hexLeft > 0 && isHexDigit(c) {
		p.hexLeft--
		return append(dst, upperHexByte(c))
	}
	p.hexLeft = 0
	if c == '%' && p.i+2 < len(p.input) && isHexDigit(p.input[p.i+1]) && isHexDigit(p.input[p.i+2]) {
		p.hexLeft = 2
		return append(dst, '%')
	}
	return appendEncodedByte(dst, c, set)
}

func isASCIIAlpha(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isASCIIAlphanumeric(b byte) bool {
	return isASCIIAlpha(b) || isASCIIDigit(b)
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// urlUnitSet holds the ASCII bytes allowed verbatim in URL components.
// Bytes >= 0x80 are UTF-8 continuation material and always allowed.
var urlUnitSet byteSet

func init() {
	for c := byte('a'); c <= 'z'; c++ {
		urlUnitSet.set(c)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		urlUnitSet.set(c)
	}
	for c := byte('0'); c <= '9'; c++ {
		urlUnitSet.set(c)
	}
	urlUnitSet.merge("!$&'()*+,-./:;=?@_~%")
}

func isURLUnit(b byte) bool {
	return b >= 0x80 || urlUnitSet.has(b)
}

// checkURLUnit emits the invalid-URL-unit diagnostics the standard
// asks for while writing component bytes: disallowed bytes, and '%'
// not followed by two hex digits.
func (p *parser) checkURLUnit(c byte) {
	if !isURLUnit(c) {
		p.diag.report(DiagInvalidURLUnit)
		return
	}
	if c == '%' && !(p.i+2 < len(p.input) && isHexDigit(p.input[p.i+1]) && isHexDigit(p.input[p.i+2])) {
		p.diag.report(DiagUnexpectedPercent)
	}
}

func isDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(s[0]) && (s[1] == ':' || s[1] == '|')
}

func isNormalizedDriveLetter(s string) bool {
	return len(s) == 2 && isASCIIAlpha(s[0]) && s[1] == ':'
}

// startsWithDriveLetter applies the "starts with a Windows drive
// letter" check to the remaining input.
func startsWithDriveLetter(s string) bool {
	if len(s) < 2 || !isDriveLetter(s[:2]) {
		return false
	}
	if len(s) == 2 {
		return true
	}
	switch s[2] {
	case '/', '\\', '?', '#':
		return true
	}
	return false
}

// remaining returns the input after the current byte.
func (p *parser) remaining() string {
	if p.i+1 >= len(p.input) {
		return ""
	}
	return p.input[p.i+1:]
}

func (p *parser) fail(code DiagCode) *ParseError {
	return failure(p.state, p.i, code)
}

// stripControlsAndSpace trims leading/trailing C0 controls and spaces
// and removes interior tab, LF and CR, reporting a diagnostic for each
// kind of surgery.
func stripControlsAndSpace(input string, diag *diagnostics) string {
	start, end := 0, len(input)
	for start < end && input[start] <= 0x20 {
		start++
	}
	for end > start && input[end-1] <= 0x20 {
		end--
	}
	if start != 0 || end != len(input) {
		diag.report(DiagLeadingTrailingControlOrSpace)
	}
	input = input[start:end]

	stripped := false
	for i := 0; i < len(input); i++ {
		if input[i] == 0x09 || input[i] == 0x0a || input[i] == 0x0d {
			stripped = true
			break
		}
	}
	if !stripped {
		return input
	}
	diag.report(DiagTabOrNewlineRemoved)
	dst := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		switch input[i] {
		case 0x09, 0x0a, 0x0d:
		default:
			dst = append(dst, input[i])
		}
	}
	return string(dst)
}

// parseInto runs the state machine. When override is a real state the
// machine starts there, never ascends to earlier states, and returns
// as soon as the targeted component has been re-parsed. url is the
// record being built (possibly pre-populated under override).
func parseInto(input string, base *record, url *record, override State, diag *diagnostics) *ParseError {
	p := &parser{
		input:    stripControlsAndSpace(input, diag),
		state:    StateSchemeStart,
		url:      url,
		base:     base,
		override: override,
		diag:     diag,
	}
	if override != StateNone {
		p.state = override
	}

	for p.i <= len(p.input) {
		eof := p.i == len(p.input)
		var c byte
		if !eof {
			c = p.input[p.i]
		}
		p.advance = true
		stop, err := p.step(c, eof)
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
		if p.advance {
			p.i++
		}
	}
	return nil
}

func (p *parser) step(c byte, eof bool) (stop bool, err *ParseError) {
	switch p.state {
	case StateSchemeStart:
		return p.stepSchemeStart(c, eof)
	case StateScheme:
		return p.stepScheme(c, eof)
	case StateNoScheme:
		return p.stepNoScheme(c, eof)
	case StateSpecialRelativeOrAuthority:
		return p.stepSpecialRelativeOrAuthority(c, eof)
	case StatePathOrAuthority:
		return p.stepPathOrAuthority(c, eof)
	case StateRelative:
		return p.stepRelative(c, eof)
	case StateRelativeSlash:
		return p.stepRelativeSlash(c, eof)
	case StateSpecialAuthoritySlashes:
		return p.stepSpecialAuthoritySlashes(c, eof)
	case StateSpecialAuthorityIgnoreSlashes:
		return p.stepSpecialAuthorityIgnoreSlashes(c, eof)
	case StateAuthority:
		return p.stepAuthority(c, eof)
	case StateHost, StateHostname:
		return p.stepHost(c, eof)
	case StatePort:
		return p.stepPort(c, eof)
	case StateFile:
		return p.stepFile(c, eof)
	case StateFileSlash:
		return p.stepFileSlash(c, eof)
	case StateFileHost:
		return p.stepFileHost(c, eof)
	case StatePathStart:
		return p.stepPathStart(c, eof)
	case StatePath:
		return p.stepPath(c, eof)
	case StateOpaquePath:
		return p.stepOpaquePath(c, eof)
	case StateQuery:
		return p.stepQuery(c, eof)
	case StateFragment:
		return p.stepFragment(c, eof)
	}
	return false, p.fail(DiagInvalidURLUnit)
}

func (p *parser) stepSchemeStart(c byte, eof bool) (bool, *ParseError) {
	if !eof && isASCIIAlpha(c) {
		p.buffer = append(p.buffer, lowerByte(c))
		p.state = StateScheme
		return false, nil
	}
	if p.override == StateNone {
		p.state = StateNoScheme
		p.advance = false
		return false, nil
	}
	return false, p.fail(DiagInvalidURLUnit)
}

func (p *parser) stepScheme(c byte, eof bool) (bool, *ParseError) {
	if !eof && (isASCIIAlphanumeric(c) || c == '+' || c == '-' || c == '.') {
		p.buffer = append(p.buffer, lowerByte(c))
		return false, nil
	}
	if !eof && c == ':' {
		buf := string(p.buffer)
		if p.override != StateNone {
			if p.url.isSpecial() != isSpecialScheme(buf) {
				return true, nil
			}
			if (p.url.includesCredentials() || p.url.port != nil) && buf == "file" {
				return true, nil
			}
			if p.url.scheme == "file" && p.url.host.kind == HostEmpty {
				return true, nil
			}
		}
		p.url.setScheme(buf)
		if p.override != StateNone {
			if p.url.port != nil && isDefaultPort(p.url.scheme, *p.url.port) {
				p.url.port = nil
			}
			return true, nil
		}
		p.buffer = p.buffer[:0]

		switch {
		case p.url.scheme == "file":
			if !strings.HasPrefix(p.remaining(), "//") {
				p.diag.report(DiagSpecialSchemeMissingFollowingSolidus)
			}
			p.state = StateFile
		case p.url.isSpecial() && p.base != nil && p.base.scheme == p.url.scheme:
			p.state = StateSpecialRelativeOrAuthority
		case p.url.isSpecial():
			p.state = StateSpecialAuthoritySlashes
		case strings.HasPrefix(p.remaining(), "/"):
			p.state = StatePathOrAuthority
			p.i++
		default:
			p.url.cannotBeABase = true
			p.url.opaquePath = ""
			p.state = StateOpaquePath
		}
		return false, nil
	}
	if p.override == StateNone {
		p.buffer = p.buffer[:0]
		p.state = StateNoScheme
		p.i = 0
		p.advance = false
		return false, nil
	}
	return false, p.fail(DiagInvalidURLUnit)
}

func (p *parser) stepNoScheme(c byte, eof bool) (bool, *ParseError) {
	if p.base == nil || (p.base.cannotBeABase && (eof || c != '#')) {
		return false, p.fail(DiagMissingSchemeNonRelativeURL)
	}
	if p.base.cannotBeABase && c == '#' {
		p.url.setScheme(p.base.scheme)
		p.url.cannotBeABase = true
		p.url.opaquePath = p.base.opaquePath
		p.url.query = cloneStrptr(p.base.query)
		p.url.fragment = strptr("")
		p.state = StateFragment
		return false, nil
	}
	if p.base.scheme != "file" {
		p.state = StateRelative
	} else {
		p.state = StateFile
	}
	p.advance = false
	return false, nil
}

func (p *parser) stepSpecialRelativeOrAuthority(c byte, eof bool) (bool, *ParseError) {
	if !eof && c == '/' && strings.HasPrefix(p.remaining(), "/") {
		p.state = StateSpecialAuthorityIgnoreSlashes
		p.i++
		return false, nil
	}
	p.diag.report(DiagSpecialSchemeMissingFollowingSolidus)
	p.state = StateRelative
	p.advance = false
	return false, nil
}

func (p *parser) stepPathOrAuthority(c byte, eof bool) (bool, *ParseError) {
	if !eof && c == '/' {
		p.state = StateAuthority
		return false, nil
	}
	p.state = StatePath
	p.advance = false
	return false, nil
}

func (p *parser) stepRelative(c byte, eof bool) (bool, *ParseError) {
	p.url.setScheme(p.base.scheme)
	switch {
	case !eof && c == '/':
		p.state = StateRelativeSlash
	case !eof && c == '\\' && p.url.isSpecial():
		p.diag.report(DiagInvalidReverseSolidus)
		p.state = StateRelativeSlash
	default:
		p.url.username = p.base.username
		p.url.password = p.base.password
		p.url.host = p.base.host
		p.url.port = cloneUint16ptr(p.base.port)
		p.url.path = p.base.clonePath()
		p.url.query = cloneStrptr(p.base.query)
		switch {
		case !eof && c == '?':
			p.url.query = strptr("")
			p.state = StateQuery
		case !eof && c == '#':
			p.url.fragment = strptr("")
			p.state = StateFragment
		case !eof:
			p.url.query = nil
			p.url.shortenPath()
			p.state = StatePath
			p.advance = false
		}
	}
	return false, nil
}

func (p *parser) stepRelativeSlash(c byte, eof bool) (bool, *ParseError) {
	switch {
	case p.url.isSpecial() && !eof && (c == '/' || c == '\\'):
		if c == '\\' {
			p.diag.report(DiagInvalidReverseSolidus)
		}
		p.state = StateSpecialAuthorityIgnoreSlashes
	case !eof && c == '/':
		p.state = StateAuthority
	default:
		p.url.username = p.base.username
		p.url.password = p.base.password
		p.url.host = p.base.host
		p.url.port = cloneUint16ptr(p.base.port)
		p.state = StatePath
		p.advance = false
	}
	return false, nil
}

func (p *parser) stepSpecialAuthoritySlashes(c byte, eof bool) (bool, *ParseError) {
	if !eof && c == '/' && strings.HasPrefix(p.remaining(), "/") {
		p.state = StateSpecialAuthorityIgnoreSlashes
		p.i++
		return false, nil
	}
	p.diag.report(DiagSpecialSchemeMissingFollowingSolidus)
	p.state = StateSpecialAuthorityIgnoreSlashes
	p.advance = false
	return false, nil
}

func (p *parser) stepSpecialAuthorityIgnoreSlashes(c byte, eof bool) (bool, *ParseError) {
	if eof || (c != '/' && c != '\\') {
		p.state = StateAuthority
		p.advance = false
		return false, nil
	}
	p.diag.report(DiagSpecialSchemeMissingFollowingSolidus)
	return false, nil
}

func (p *parser) stepAuthority(c byte, eof bool) (bool, *ParseError) {
	switch {
	case !eof && c == '@':
		p.diag.report(DiagInvalidCredentials)
		if p.atFlag {
			p.diag.report(DiagUnexpectedAtSign)
			p.buffer = append([]byte("%40"), p.buffer...)
		}
		p.atFlag = true
		var user, pass []byte
		for _, b := range p.buffer {
			if b == ':' && !p.passwordTokenSeen {
				p.passwordTokenSeen = true
				continue
			}
			if p.passwordTokenSeen {
				pass = append(pass, b)
			} else {
				user = append(user, b)
			}
		}
		p.url.username += encodeComponent(string(user), EncodeUserinfo)
		p.url.password += encodeComponent(string(pass), EncodeUserinfo)
		p.buffer = p.buffer[:0]
	case eof || c == '/' || c == '?' || c == '#' || (c == '\\' && p.url.isSpecial()):
		if p.atFlag && len(p.buffer) == 0 {
			return false, p.fail(DiagHostMissing)
		}
		// Rewind behind the buffered bytes; the loop's advance lands
		// on the first of them under the host state.
		p.i -= len(p.buffer) + 1
		p.buffer = p.buffer[:0]
		p.state = StateHost
	default:
		p.buffer = append(p.buffer, c)
	}
	return false, nil
}

func (p *parser) stepHost(c byte, eof bool) (bool, *ParseError) {
	if p.override != StateNone && p.url.scheme == "file" {
		p.state = StateFileHost
		p.advance = false
		return false, nil
	}
	switch {
	case !eof && c == ':' && !p.insideBrackets:
		if len(p.buffer) == 0 {
			return false, p.fail(DiagHostMissing)
		}
		if p.override == StateHostname {
			return true, nil
		}
		host, code := parseHost(string(p.buffer), p.url.isSpecial(), p.diag)
		if code != 0 {
			return false, p.fail(code)
		}
		p.url.host = host
		p.buffer = p.buffer[:0]
		p.state = StatePort
	case eof || c == '/' || c == '?' || c == '#' || (c == '\\' && p.url.isSpecial()):
		p.advance = false
		if p.url.isSpecial() && len(p.buffer) == 0 {
			return false, p.fail(DiagHostMissing)
		}
		if p.override != StateNone && len(p.buffer) == 0 &&
			(p.url.includesCredentials() || p.url.port != nil) {
			return true, nil
		}
		host, code := parseHost(string(p.buffer), p.url.isSpecial(), p.diag)
		if code != 0 {
			return false, p.fail(code)
		}
		p.url.host = host
		p.buffer = p.buffer[:0]
		p.state = StatePathStart
		if p.override != StateNone {
			return true, nil
		}
	default:
		if c == '[' {
			p.insideBrackets = true
		}
		if c == ']' {
			p.insideBrackets = false
		}
		p.buffer = append(p.buffer, c)
	}
	return false, nil
}

func (p *parser) stepPort(c byte, eof bool) (bool, *ParseError) {
	switch {
	case !eof && isASCIIDigit(c):
		p.buffer = append(p.buffer, c)
	case eof || c == '/' || c == '?' || c == '#' ||
		(c == '\\' && p.url.isSpecial()) || p.override != StateNone:
		if len(p.buffer) > 0 {
			port := 0
			for _, b := range p.buffer {
				port = port*10 + int(b-'0')
				if port > 65535 {
					return false, p.fail(DiagPortOutOfRange)
				}
			}
			v := uint16(port)
			if isDefaultPort(p.url.scheme, v) {
				p.url.port = nil
			} else {
				p.url.port = &v
			}
			p.buffer = p.buffer[:0]
		}
		if p.override != StateNone {
			return true, nil
		}
		p.state = StatePathStart
		p.advance = false
	default:
		return false, p.fail(DiagPortInvalid)
	}
	return false, nil
}

func (p *parser) stepFile(c byte, eof bool) (bool, *ParseError) {
	p.url.setScheme("file")
	p.url.host = Host{kind: HostEmpty}
	switch {
	case !eof && (c == '/' || c == '\\'):
		if c == '\\' {
			p.diag.report(DiagInvalidReverseSolidus)
		}
		p.state = StateFileSlash
	case p.base != nil && p.base.scheme == "file":
		p.url.host = p.base.host
		p.url.path = p.base.clonePath()
		p.url.query = cloneStrptr(p.base.query)
		switch {
		case !eof && c == '?':
			p.url.query = strptr("")
			p.state = StateQuery
		case !eof && c == '#':
			p.url.fragment = strptr("")
			p.state = StateFragment
		case !eof:
			p.url.query = nil
			if !startsWithDriveLetter(p.input[p.i:]) {
				p.url.shortenPath()
			} else {
				p.diag.report(DiagFileInvalidWindowsDriveLetter)
				p.url.path = nil
			}
			p.state = StatePath
			p.advance = false
		}
	default:
		p.state = StatePath
		p.advance = false
	}
	return false, nil
}

func (p *parser) stepFileSlash(c byte, eof bool) (bool, *ParseError) {
	if !eof && (c == '/' || c == '\\') {
		if c == '\\' {
			p.diag.report(DiagInvalidReverseSolidus)
		}
		p.state = StateFileHost
		return false, nil
	}
	if p.base != nil && p.base.scheme == "file" {
		p.url.host = p.base.host
		if !startsWithDriveLetter(p.input[p.i:]) &&
			len(p.base.path) > 0 && isNormalizedDriveLetter(p.base.path[0]) {
			p.url.path = append(p.url.path, p.base.path[0])
		}
	}
	p.state = StatePath
	p.advance = false
	return false, nil
}

func (p *parser) stepFileHost(c byte, eof bool) (bool, *ParseError) {
	if eof || c == '/' || c == '\\' || c == '?' || c == '#' {
		p.advance = false
		switch {
		case p.override == StateNone && isDriveLetter(string(p.buffer)):
			p.diag.report(DiagFileInvalidWindowsDriveLetterHost)
			p.state = StatePath
		case len(p.buffer) == 0:
			p.url.host = Host{kind: HostEmpty}
			if p.override != StateNone {
				return true, nil
			}
			p.state = StatePathStart
		default:
			host, code := parseHost(string(p.buffer), true, p.diag)
			if code != 0 {
				return false, p.fail(code)
			}
			if host.kind == HostDomain && host.domain == "localhost" {
				host = Host{kind: HostEmpty}
			}
			p.url.host = host
			if p.override != StateNone {
				return true, nil
			}
			p.buffer = p.buffer[:0]
			p.state = StatePathStart
		}
		return false, nil
	}
	p.buffer = append(p.buffer, c)
	return false, nil
}

func (p *parser) stepPathStart(c byte, eof bool) (bool, *ParseError) {
	switch {
	case p.url.isSpecial():
		if !eof && c == '\\' {
			p.diag.report(DiagInvalidReverseSolidus)
		}
		p.state = StatePath
		if eof || (c != '/' && c != '\\') {
			p.advance = false
		}
	case p.override == StateNone && !eof && c == '?':
		p.url.query = strptr("")
		p.state = StateQuery
	case p.override == StateNone && !eof && c == '#':
		p.url.fragment = strptr("")
		p.state = StateFragment
	case !eof:
		p.state = StatePath
		if c != '/' {
			p.advance = false
		}
	case p.override != StateNone && p.url.host.kind == HostNone:
		p.url.path = append(p.url.path, "")
	}
	return false, nil
}

func isDotSegment(s string) bool {
	return s == "." || strings.EqualFold(s, "%2e")
}

func isDoubleDotSegment(s string) bool {
	switch len(s) {
	case 2:
		return s == ".."
	case 4:
		return strings.EqualFold(s, ".%2e") || strings.EqualFold(s, "%2e.")
	case 6:
		return strings.EqualFold(s, "%2e%2e")
	}
	return false
}

func (p *parser) stepPath(c byte, eof bool) (bool, *ParseError) {
	terminator := eof || c == '/' || (c == '\\' && p.url.isSpecial()) ||
		(p.override == StateNone && (c == '?' || c == '#'))
	if !terminator {
		p.checkURLUnit(c)
		p.buffer = p.appendComponentByte(p.buffer, c, EncodePath)
		return false, nil
	}

	if !eof && c == '\\' {
		p.diag.report(DiagInvalidReverseSolidus)
	}
	buf := string(p.buffer)
	slash := !eof && (c == '/' || (c == '\\' && p.url.isSpecial()))
	switch {
	case isDoubleDotSegment(buf):
		p.url.shortenPath()
		if !slash {
			p.url.path = append(p.url.path, "")
		}
	case isDotSegment(buf):
		if !slash {
			p.url.path = append(p.url.path, "")
		}
	default:
		if p.url.scheme == "file" && len(p.url.path) == 0 && isDriveLetter(buf) {
			buf = buf[:1] + ":"
		}
		p.url.path = append(p.url.path, buf)
	}
	p.buffer = p.buffer[:0]
	switch {
	case !eof && c == '?':
		p.url.query = strptr("")
		p.state = StateQuery
	case !eof && c == '#':
		p.url.fragment = strptr("")
		p.state = StateFragment
	}
	return false, nil
}

func (p *parser) stepOpaquePath(c byte, eof bool) (bool, *ParseError) {
	switch {
	case !eof && c == '?' && p.override == StateNone:
		p.url.query = strptr("")
		p.state = StateQuery
	case !eof && c == '#' && p.override == StateNone:
		p.url.fragment = strptr("")
		p.state = StateFragment
	case !eof:
		p.checkURLUnit(c)
		p.url.opaquePath += string(p.appendComponentByte(nil, c, EncodeC0Control))
	}
	return false, nil
}

func (p *parser) stepQuery(c byte, eof bool) (bool, *ParseError) {
	if eof || (p.override == StateNone && c == '#') {
		q := ""
		if p.url.query != nil {
			q = *p.url.query
		}
		special := p.url.isSpecial()
		buf := p.buffer
		for i := 0; i < len(buf); i++ {
			b := buf[i]
			switch {
			case b == '%' && i+2 < len(buf) && isHexDigit(buf[i+1]) && isHexDigit(buf[i+2]):
				q += string([]byte{'%', upperHexByte(buf[i+1]), upperHexByte(buf[i+2])})
				i += 2
			case special && b == '\'':
				q += "%27"
			default:
				q += EncodeByte(b, EncodePath)
			}
		}
		p.url.query = &q
		p.buffer = p.buffer[:0]
		if !eof {
			p.url.fragment = strptr("")
			p.state = StateFragment
		}
		return false, nil
	}
	p.checkURLUnit(c)
	p.buffer = append(p.buffer, c)
	return false, nil
}

func (p *parser) stepFragment(c byte, eof bool) (bool, *ParseError) {
	if !eof {
		p.checkURLUnit(c)
		f := ""
		if p.url.fragment != nil {
			f = *p.url.fragment
		}
		f += string(p.appendComponentByte(nil, c, EncodeFragment))
		p.url.fragment = &f
	}
	return false, nil
}
