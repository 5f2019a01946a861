package weburl

// span is a half-open [off, off+len) window into a URL's serialized
// form. A negative offset marks an absent component.
type span struct {
	off, n int
}

var noSpan = span{off: -1}

func (s span) present() bool { return s.off >= 0 }

func (s span) slice(href string) string {
	if !s.present() {
		return ""
	}
	return href[s.off : s.off+s.n]
}

// record is the working component model the parser builds. Optional
// components are pointers; nil means absent. Strings held here are
// already in their serialized (percent-encoded, canonicalized) form.
type record struct {
	scheme        string
	hasScheme     bool
	username      string
	password      string
	host          Host
	port          *uint16
	path          []string
	opaquePath    string
	cannotBeABase bool
	query         *string
	fragment      *string
}

func (r *record) includesCredentials() bool {
	return r.username != "" || r.password != ""
}

func (r *record) isSpecial() bool {
	return r.hasScheme && isSpecialScheme(r.scheme)
}

func (r *record) setScheme(s string) {
	r.scheme = s
	r.hasScheme = true
}

func (r *record) clonePath() []string {
	if r.path == nil {
		return nil
	}
	return append([]string(nil), r.path...)
}

// shortenPath drops the last path segment, except that a file URL's
// lone normalized drive letter stays put.
func (r *record) shortenPath() {
	if r.scheme == "file" && len(r.path) == 1 && isNormalizedDriveLetter(r.path[0]) {
		return
	}
	if len(r.path) > 0 {
		r.path = r.path[:len(r.path)-1]
	}
}

func strptr(s string) *string { return &s }

func cloneStrptr(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}

func cloneUint16ptr(p *uint16) *uint16 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// parts indexes the components of a serialized URL. Every present span
// slices the href the record serialized to.
type parts struct {
	scheme   span
	username span
	password span
	host     span
	port     span
	path     span
	query    span
	fragment span
}

func emptyParts() parts {
	return parts{
		scheme:   noSpan,
		username: noSpan,
		password: noSpan,
		host:     noSpan,
		port:     noSpan,
		path:     noSpan,
		query:    noSpan,
		fragment: noSpan,
	}
}

// serialize writes the canonical href per the WHATWG serializer and
// records the span of every component it writes.
func (r *record) serialize() (string, parts) {
	var dst []byte
	ps := emptyParts()
	mark := func() int { return len(dst) }
	commit := func(from int) span { return span{off: from, n: len(dst) - from} }

	if r.hasScheme {
		at := mark()
		dst = append(dst, r.scheme...)
		ps.scheme = commit(at)
		dst = append(dst, ':')
	}

	if r.host.kind != HostNone {
		dst = append(dst, '/', '/')
		if r.includesCredentials() {
			at := mark()
			dst = append(dst, r.username...)
			ps.username = commit(at)
			if r.password != "" {
				dst = append(dst, ':')
				at = mark()
				dst = append(dst, r.password...)
				ps.password = commit(at)
			}
			dst = append(dst, '@')
		}
		at := mark()
		dst = append(dst, r.host.String()...)
		ps.host = commit(at)
		if r.port != nil {
			dst = append(dst, ':')
			at = mark()
			dst = append(dst, portString(*r.port)...)
			ps.port = commit(at)
		}
	}

	if r.cannotBeABase {
		at := mark()
		dst = append(dst, r.opaquePath...)
		ps.path = commit(at)
	} else {
		// A host-less URL whose path starts with an empty segment
		// would serialize ambiguously as "//..."; guard with "/.".
		if r.host.kind == HostNone && len(r.path) > 1 && r.path[0] == "" {
			dst = append(dst, '/', '.')
		}
		at := mark()
		for _, seg := range r.path {
			dst = append(dst, '/')
			dst = append(dst, seg...)
		}
		ps.path = commit(at)
	}

	if r.query != nil {
		dst = append(dst, '?')
		at := mark()
		dst = append(dst, *r.query...)
		ps.query = commit(at)
	}
	if r.fragment != nil {
		dst = append(dst, '#')
		at := mark()
		dst = append(dst, *r.fragment...)
		ps.fragment = commit(at)
	}
	return string(dst), ps
}

func (r *record) clone() record {
	c := *r
	c.path = r.clonePath()
	c.port = cloneUint16ptr(r.port)
	c.query = cloneStrptr(r.query)
	c.fragment = cloneStrptr(r.fragment)
	return c
}
