package weburl

import "testing"

// The normal and abnormal examples of RFC 3986 §5.4, driven through
// the parser-backed Resolve.
func TestResolveAgainstRFCBase(t *testing.T) {
	base := mustParse(t, "http://a/b/c/d;p?q")
	expectations := []struct {
		in  string
		out string
	}{
		{"g", "http://a/b/c/g"},
		{"./g", "http://a/b/c/g"},
		{"g/", "http://a/b/c/g/"},
		{"/g", "http://a/g"},
		{"//g", "http://g/"},
		{"?y", "http://a/b/c/d;p?y"},
		{"g?y", "http://a/b/c/g?y"},
		{"#s", "http://a/b/c/d;p?q#s"},
		{"g#s", "http://a/b/c/g#s"},
		{"g?y#s", "http://a/b/c/g?y#s"},
		{";x", "http://a/b/c/;x"},
		{"g;x", "http://a/b/c/g;x"},
		{"g;x?y#s", "http://a/b/c/g;x?y#s"},
		{"", "http://a/b/c/d;p?q"},
		{".", "http://a/b/c/"},
		{"./", "http://a/b/c/"},
		{"..", "http://a/b/"},
		{"../", "http://a/b/"},
		{"../g", "http://a/b/g"},
		{"../..", "http://a/"},
		{"../../", "http://a/"},
		{"../../g", "http://a/g"},
		{"../../../g", "http://a/g"},
		{"../../../../g", "http://a/g"},
		{"/./g", "http://a/g"},
		{"/../g", "http://a/g"},
		{"g.", "http://a/b/c/g."},
		{".g", "http://a/b/c/.g"},
		{"g..", "http://a/b/c/g.."},
		{"..g", "http://a/b/c/..g"},
		{"./../g", "http://a/b/g"},
		{"./g/.", "http://a/b/c/g/"},
		{"g/./h", "http://a/b/c/g/h"},
		{"g/../h", "http://a/b/c/h"},
		{"g;x=1/./y", "http://a/b/c/g;x=1/y"},
		{"g;x=1/../y", "http://a/b/c/y"},
	}
	for _, e := range expectations {
		u, err := base.Resolve(e.in)
		if err != nil {
			t.Errorf("Resolve(%q) failed: %v", e.in, err)
			continue
		}
		if u.Href() != e.out {
			t.Errorf("Resolve(%q): expected %q, but got %q", e.in, e.out, u.Href())
		}
	}
}

func TestResolveAbsoluteReference(t *testing.T) {
	base := mustParse(t, "http://a/b/c/d;p?q")
	u, err := base.Resolve("https://other.example/x/../y")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if u.Href() != "https://other.example/y" {
		t.Errorf("Expected \"https://other.example/y\", but got %q", u.Href())
	}
}

func TestResolveReferenceMerge(t *testing.T) {
	base := mustParse(t, "http://a/b/c/d;p?q")
	ref := mustParse(t, "https://other.example/x/y?z")
	u := base.ResolveReference(ref)
	if u.Href() != "https://other.example/x/y?z" {
		t.Errorf("Expected the reference itself, but got %q", u.Href())
	}

	queryOnly := mustParseRef(t, base, "?y")
	if got := base.ResolveReference(queryOnly).Href(); got != queryOnly.Href() {
		t.Errorf("Expected %q, but got %q", queryOnly.Href(), got)
	}
}

func TestResolveFragmentAlwaysFromReference(t *testing.T) {
	base := mustParse(t, "http://a/b?q#basefrag")
	u, err := base.Resolve("c")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if u.HasFragment() {
		t.Errorf("Expected no fragment, but got %q", u.Fragment())
	}
}
