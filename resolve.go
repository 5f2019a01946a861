package weburl

// ResolveReference resolves ref against base u following RFC 3986
// §5.2 transformed onto parsed records. Resolve is the WHATWG-parser
// counterpart; this entry point merges two already-parsed URLs
// without reparsing ref's serialization.
func (u *URL) ResolveReference(ref *URL) *URL {
	t := &URL{}
	r, b := &ref.rec, &u.rec

	switch {
	case r.hasScheme:
		t.rec = r.clone()
		if !t.rec.cannotBeABase {
			t.rec.path = removeDotSegments(t.rec.path)
		}
	case r.host.kind != HostNone:
		t.rec = r.clone()
		t.rec.scheme, t.rec.hasScheme = b.scheme, b.hasScheme
		t.rec.path = removeDotSegments(t.rec.path)
	case len(r.path) == 0 && !r.cannotBeABase:
		t.rec = b.clone()
		if r.query != nil {
			t.rec.query = cloneStrptr(r.query)
		}
		t.rec.fragment = cloneStrptr(r.fragment)
	case r.path[0] == "":
		// Absolute-path reference: keep base's authority, take ref's
		// path. A parsed absolute path leads with an empty segment
		// only on records built without an authority.
		t.rec = b.clone()
		t.rec.path = removeDotSegments(r.clonePath())
		t.rec.query = cloneStrptr(r.query)
		t.rec.fragment = cloneStrptr(r.fragment)
	default:
		t.rec = b.clone()
		t.rec.path = removeDotSegments(mergePaths(b, r))
		t.rec.query = cloneStrptr(r.query)
		t.rec.fragment = cloneStrptr(r.fragment)
	}
	if r.fragment != nil {
		t.rec.fragment = cloneStrptr(r.fragment)
	}

	diag := &diagnostics{}
	t.commit(diag)
	return t
}

// mergePaths implements RFC 3986 §5.3: the reference's path replaces
// the last segment of the base's.
func mergePaths(b, r *record) []string {
	if b.host.kind != HostNone && len(b.path) == 0 {
		return append([]string{""}, r.path...)
	}
	merged := b.clonePath()
	if len(merged) > 0 {
		merged = merged[:len(merged)-1]
	}
	return append(merged, r.path...)
}
