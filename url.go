package weburl

import (
	"hash/fnv"
	"strconv"
)

// URL is a parsed, immutable WHATWG URL. The zero value is not useful;
// obtain one through Parse, ParseRef, or a Builder. Accessors return
// views into the canonical serialized form, so a URL shares no mutable
// state and is safe for concurrent readers.
type URL struct {
	href  string
	rec   record
	parts parts
	diags []DiagCode
}

// Parse parses an absolute URL string.
func Parse(input string) (*URL, error) {
	return parseURL(input, nil)
}

// ParseRef parses input against base, which supplies the scheme and
// any inherited components when input is a relative reference.
func ParseRef(base *URL, input string) (*URL, error) {
	if base == nil {
		return Parse(input)
	}
	return parseURL(input, &base.rec)
}

func parseURL(input string, base *record) (*URL, error) {
	diag := &diagnostics{}
	u := &URL{}
	if err := parseInto(input, base, &u.rec, StateNone, diag); err != nil {
		return nil, err
	}
	u.commit(diag)
	return u, nil
}

// commit freezes the record: serializes the href and re-anchors every
// component span against it.
func (u *URL) commit(diag *diagnostics) {
	u.href, u.parts = u.rec.serialize()
	u.diags = diag.codes
}

// Href returns the canonical serialized URL.
func (u *URL) Href() string { return u.href }

func (u *URL) String() string { return u.href }

// Scheme returns the lowercased scheme without the trailing colon.
func (u *URL) Scheme() string { return u.parts.scheme.slice(u.href) }

// Username returns the percent-encoded username, empty when absent.
func (u *URL) Username() string { return u.parts.username.slice(u.href) }

// Password returns the percent-encoded password, empty when absent.
func (u *URL) Password() string { return u.parts.password.slice(u.href) }

// Host returns the serialized host and port, "host" or "host:port".
func (u *URL) Host() string {
	if !u.parts.host.present() {
		return ""
	}
	if u.parts.port.present() {
		return u.href[u.parts.host.off : u.parts.port.off+u.parts.port.n]
	}
	return u.parts.host.slice(u.href)
}

// Hostname returns the serialized host without the port.
func (u *URL) Hostname() string { return u.parts.host.slice(u.href) }

// HostKind reports which variant the host took.
func (u *URL) HostKind() HostKind { return u.rec.host.kind }

// Port returns the port as a decimal string, empty when absent or
// equal to the scheme's default.
func (u *URL) Port() string { return u.parts.port.slice(u.href) }

// PortNumber returns the port value and whether one is present.
func (u *URL) PortNumber() (uint16, bool) {
	if u.rec.port == nil {
		return 0, false
	}
	return *u.rec.port, true
}

// Path returns the serialized path: "/"-joined segments, or the opaque
// path for cannot-be-a-base URLs.
func (u *URL) Path() string { return u.parts.path.slice(u.href) }

// Query returns the percent-encoded query without the leading '?'.
func (u *URL) Query() string { return u.parts.query.slice(u.href) }

func (u *URL) HasQuery() bool { return u.rec.query != nil }

// Fragment returns the percent-encoded fragment without the leading '#'.
func (u *URL) Fragment() string { return u.parts.fragment.slice(u.href) }

func (u *URL) HasFragment() bool { return u.rec.fragment != nil }

// IsSpecial reports whether the scheme is one of ftp, file, http,
// https, ws, wss.
func (u *URL) IsSpecial() bool { return u.rec.isSpecial() }

// CannotBeABase reports whether the URL carries an opaque path and no
// authority, like mailto:a@b.
func (u *URL) CannotBeABase() bool { return u.rec.cannotBeABase }

// ValidationErrors returns the ordered diagnostics the parse emitted.
// An empty log means the input was already in ideal form.
func (u *URL) ValidationErrors() []DiagCode {
	return append([]DiagCode(nil), u.diags...)
}

// Origin returns the serialized origin. Tuple origins exist for the
// special network schemes and for blob: URLs wrapping one; everything
// else is the opaque origin, serialized as "null".
func (u *URL) Origin() string {
	switch u.Scheme() {
	case "http", "https", "ws", "wss", "ftp":
		o := u.Scheme() + "://" + u.Hostname()
		if u.rec.port != nil {
			o += ":" + strconv.Itoa(int(*u.rec.port))
		}
		return o
	case "blob":
		if inner, err := Parse(u.Path()); err == nil {
			return inner.Origin()
		}
		return "null"
	default:
		return "null"
	}
}

// Resolve parses ref against u as base and returns the resulting URL.
func (u *URL) Resolve(ref string) (*URL, error) {
	return ParseRef(u, ref)
}

// Equal reports whether a and b serialize identically.
func Equal(a, b *URL) bool {
	return a.href == b.href
}

// EqualExcludingFragment compares everything before the fragment.
func EqualExcludingFragment(a, b *URL) bool {
	return a.withoutFragment() == b.withoutFragment()
}

func (u *URL) withoutFragment() string {
	if u.rec.fragment == nil {
		return u.href
	}
	return u.href[:u.parts.fragment.off-1]
}

// Hash returns an FNV-1a hash of the serialized URL, usable as a map
// discriminator for deduplication.
func (u *URL) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(u.href))
	return h.Sum64()
}

func (u *URL) MarshalText() ([]byte, error) {
	return []byte(u.href), nil
}

func (u *URL) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*u = *parsed
	return nil
}
