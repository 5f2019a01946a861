/*
Package weburl parses, resolves and manipulates URLs following the
WHATWG URL living standard.

Parsing runs a single-pass byte-driven state machine over the input
and produces an immutable URL value whose accessors are views into the
canonical serialized form:

	u, err := weburl.Parse("HTTP://Example.COM:80/a/../b?q=1#f")
	// u.Href() == "http://example.com/b?q=1#f"

Relative references resolve against a base:

	base, _ := weburl.Parse("http://example.com/a/b")
	u, _ := base.Resolve("../c")

Deviations from the ideal URL form never abort a parse; they are
collected in order and available through ValidationErrors. Only the
conditions the standard declares fatal return a *ParseError.

Derived URLs are built, not mutated:

	v, err := u.Build().WithScheme("https").WithPort("8443").URL()

The package also exposes the percent-encoding primitives underneath
the parser (EncodeByte, PercentEncode, PercentDecode and the named
encode sets) and an RFC 3986 syntax normalizer (Normalize).
*/
package weburl
