package weburl

import "errors"

var (
	errOpaqueURL   = errors.New("weburl: component cannot be set on a cannot-be-a-base URL")
	errNoAuthority = errors.New("weburl: URL cannot carry credentials or a port")
	errEmptyHref   = errors.New("weburl: builder has no URL to build from")
)

// Builder derives new URL values from an existing one. Setters re-run
// the parser over the given component in override mode; the source URL
// is never mutated. The first failure sticks and URL() reports it.
type Builder struct {
	rec record
	err error
}

// Build starts a builder from u.
func (u *URL) Build() *Builder {
	return &Builder{rec: u.rec.clone()}
}

// NewBuilder starts a builder by parsing href.
func NewBuilder(href string) *Builder {
	u, err := Parse(href)
	if err != nil {
		return &Builder{err: err}
	}
	return &Builder{rec: u.rec.clone()}
}

// URL commits the accumulated edits into a fresh URL value.
func (b *Builder) URL() (*URL, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !b.rec.hasScheme {
		return nil, errEmptyHref
	}
	u := &URL{rec: b.rec.clone()}
	u.commit(&diagnostics{})
	return u, nil
}

func (b *Builder) override(input string, st State) *Builder {
	if b.err != nil {
		return b
	}
	if err := parseInto(input, nil, &b.rec, st, &diagnostics{}); err != nil {
		b.err = err
	}
	return b
}

// cannotHaveCredentialsOrPort mirrors the WHATWG setter guard: URLs
// without a meaningful authority reject credentials and ports.
func (b *Builder) cannotHaveCredentialsOrPort() bool {
	return b.rec.host.kind == HostNone || b.rec.host.kind == HostEmpty ||
		b.rec.scheme == "file" || b.rec.cannotBeABase
}

// WithScheme replaces the scheme. A change between a special and a
// non-special scheme, or to a scheme the current authority cannot
// support, leaves the URL unchanged and is not reported as an error.
func (b *Builder) WithScheme(scheme string) *Builder {
	return b.override(scheme+":", StateSchemeStart)
}

// WithUsername replaces the username, percent-encoding as needed.
func (b *Builder) WithUsername(username string) *Builder {
	if b.err != nil {
		return b
	}
	if b.cannotHaveCredentialsOrPort() {
		b.err = errNoAuthority
		return b
	}
	b.rec.username = PercentEncode(username, EncodeUserinfo)
	return b
}

// WithPassword replaces the password, percent-encoding as needed.
func (b *Builder) WithPassword(password string) *Builder {
	if b.err != nil {
		return b
	}
	if b.cannotHaveCredentialsOrPort() {
		b.err = errNoAuthority
		return b
	}
	b.rec.password = PercentEncode(password, EncodeUserinfo)
	return b
}

// WithHost replaces host and, when input carries one, the port.
func (b *Builder) WithHost(host string) *Builder {
	if b.err == nil && b.rec.cannotBeABase {
		b.err = errOpaqueURL
		return b
	}
	return b.override(host, StateHost)
}

// WithHostname replaces the host, leaving the port alone.
func (b *Builder) WithHostname(hostname string) *Builder {
	if b.err == nil && b.rec.cannotBeABase {
		b.err = errOpaqueURL
		return b
	}
	return b.override(hostname, StateHostname)
}

// WithPort replaces the port; the empty string clears it.
func (b *Builder) WithPort(port string) *Builder {
	if b.err != nil {
		return b
	}
	if b.cannotHaveCredentialsOrPort() {
		b.err = errNoAuthority
		return b
	}
	if port == "" {
		b.rec.port = nil
		return b
	}
	return b.override(port, StatePort)
}

// WithPath replaces the path.
func (b *Builder) WithPath(path string) *Builder {
	if b.err == nil && b.rec.cannotBeABase {
		b.err = errOpaqueURL
		return b
	}
	if b.err == nil {
		b.rec.path = nil
	}
	return b.override(path, StatePathStart)
}

// WithQuery replaces the query; the empty string clears it. A leading
// '?' is tolerated and dropped.
func (b *Builder) WithQuery(query string) *Builder {
	if b.err != nil {
		return b
	}
	if query == "" {
		b.rec.query = nil
		return b
	}
	if query[0] == '?' {
		query = query[1:]
	}
	b.rec.query = strptr("")
	return b.override(query, StateQuery)
}

// WithFragment replaces the fragment; the empty string clears it. A
// leading '#' is tolerated and dropped.
func (b *Builder) WithFragment(fragment string) *Builder {
	if b.err != nil {
		return b
	}
	if fragment == "" {
		b.rec.fragment = nil
		return b
	}
	if fragment[0] == '#' {
		fragment = fragment[1:]
	}
	b.rec.fragment = strptr("")
	return b.override(fragment, StateFragment)
}
