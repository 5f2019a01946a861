package weburl

import "strings"

// Pair is one name/value entry of a query string.
type Pair struct {
	Name  string
	Value string
}

// QueryPairs splits the query into its pairs in order. Both '&' and
// ';' delimit pairs, '=' separates name from value, and a pair with no
// '=' gets the empty value. Names and values come back percent-decoded
// with '+' read as space.
func (u *URL) QueryPairs() []Pair {
	return SplitQuery(u.Query())
}

// SplitQuery implements the pair iteration over any raw query string.
func SplitQuery(query string) []Pair {
	if query == "" {
		return nil
	}
	var pairs []Pair
	for query != "" {
		var chunk string
		if i := strings.IndexAny(query, "&;"); i >= 0 {
			chunk, query = query[:i], query[i+1:]
		} else {
			chunk, query = query, ""
		}
		if chunk == "" {
			continue
		}
		name, value := chunk, ""
		if i := strings.IndexByte(chunk, '='); i >= 0 {
			name, value = chunk[:i], chunk[i+1:]
		}
		pairs = append(pairs, Pair{
			Name:  decodeQueryComponent(name),
			Value: decodeQueryComponent(value),
		})
	}
	return pairs
}

func decodeQueryComponent(s string) string {
	if strings.IndexByte(s, '+') >= 0 {
		s = strings.ReplaceAll(s, "+", " ")
	}
	return PercentDecode(s)
}

// QueryValue returns the value of the first pair named name.
func (u *URL) QueryValue(name string) (string, bool) {
	for _, p := range u.QueryPairs() {
		if p.Name == name {
			return p.Value, true
		}
	}
	return "", false
}

// PathSegments returns the path as its segment list. Opaque paths come
// back as a single segment; the root path "/" is one empty segment.
func (u *URL) PathSegments() []string {
	if u.rec.cannotBeABase {
		if u.rec.opaquePath == "" {
			return nil
		}
		return []string{u.rec.opaquePath}
	}
	return u.rec.clonePath()
}
