package weburl

import "golang.org/x/text/unicode/norm"

// DisplayString renders u for human consumption: the host comes back
// in Unicode via IDNA, percent triples decode, and the result is NFC
// normalized. The output is lossy and must never be fed back into
// Parse as a substitute for the href.
func (u *URL) DisplayString() string {
	if u.rec.cannotBeABase {
		return u.Scheme() + ":" + norm.NFC.String(PercentDecode(u.rec.opaquePath))
	}

	out := u.Scheme() + "://"
	if u.rec.includesCredentials() {
		out += PercentDecode(u.rec.username)
		if u.rec.password != "" {
			out += ":" + PercentDecode(u.rec.password)
		}
		out += "@"
	}
	host := u.Hostname()
	if u.rec.host.kind == HostDomain {
		if unicodeHost, err := DomainToUnicode(host); err == nil {
			host = unicodeHost
		}
	}
	out += host
	if u.rec.port != nil {
		out += ":" + portString(*u.rec.port)
	}
	out += PercentDecode(u.Path())
	if u.rec.query != nil {
		out += "?" + PercentDecode(*u.rec.query)
	}
	if u.rec.fragment != nil {
		out += "#" + PercentDecode(*u.rec.fragment)
	}
	return norm.NFC.String(out)
}
