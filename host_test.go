package weburl

import "testing"

func TestParseHostVariants(t *testing.T) {
	expectations := []struct {
		in      string
		special bool
		kind    HostKind
		out     string
	}{
		{"example.com", true, HostDomain, "example.com"},
		{"EXAMPLE.com", true, HostDomain, "example.com"},
		{"b%C3%BCcher.de", true, HostDomain, "xn--bcher-kva.de"},
		{"127.0.0.1", true, HostIPv4, "127.0.0.1"},
		{"0x7f.0.0.1", true, HostIPv4, "127.0.0.1"},
		{"0177.0.0.1", true, HostIPv4, "127.0.0.1"},
		{"16843009", true, HostIPv4, "1.1.1.1"},
		{"[::1]", true, HostIPv6, "[::1]"},
		{"[1:2:3:4:5:6:7:8]", true, HostIPv6, "[1:2:3:4:5:6:7:8]"},
		{"example.com", false, HostOpaque, "example.com"},
		{"a%20b", false, HostOpaque, "a%20b"},
		{"", true, HostEmpty, ""},
	}
	for _, e := range expectations {
		diag := &diagnostics{}
		h, code := parseHost(e.in, e.special, diag)
		if code != 0 {
			t.Errorf("parseHost(%q, %v) failed with %v", e.in, e.special, code)
			continue
		}
		if h.Kind() != e.kind {
			t.Errorf("parseHost(%q, %v): expected kind %v, but got %v", e.in, e.special, e.kind, h.Kind())
		}
		if h.String() != e.out {
			t.Errorf("parseHost(%q, %v): expected %q, but got %q", e.in, e.special, e.out, h.String())
		}
	}
}

func TestParseHostFailures(t *testing.T) {
	expectations := []struct {
		in      string
		special bool
	}{
		{"exa mple.com", true},
		{"exa<mple.com", true},
		{"[::1", true},
		{"[v1.x]", true},
		{"1.2.3.4.5", true},
		{"0x100000000", true},
		{"a b", false},
		{"a#b", false},
	}
	for _, e := range expectations {
		diag := &diagnostics{}
		if _, code := parseHost(e.in, e.special, diag); code == 0 {
			t.Errorf("parseHost(%q, %v): expected failure, but it succeeded", e.in, e.special)
		}
	}
}

func TestEndsInNumber(t *testing.T) {
	expectations := []struct {
		in  string
		out bool
	}{
		{"example.com", false},
		{"127.0.0.1", true},
		{"example.0x1f", true},
		{"example.1.", true},
		{"1examle.com", false},
		{"8", true},
		{"", false},
		{".", false},
	}
	for _, e := range expectations {
		if actual := endsInNumber(e.in); actual != e.out {
			t.Errorf("endsInNumber(%q): expected %v, but got %v", e.in, e.out, actual)
		}
	}
}

func TestSerializeIPv4(t *testing.T) {
	expectations := []struct {
		in  uint32
		out string
	}{
		{0, "0.0.0.0"},
		{0x7f000001, "127.0.0.1"},
		{0xffffffff, "255.255.255.255"},
		{0x01020304, "1.2.3.4"},
	}
	for _, e := range expectations {
		if actual := serializeIPv4(e.in); actual != e.out {
			t.Errorf("serializeIPv4(%#x): expected %q, but got %q", e.in, e.out, actual)
		}
	}
}

func TestSerializeIPv6(t *testing.T) {
	expectations := []struct {
		in  [8]uint16
		out string
	}{
		{[8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, "::1"},
		{[8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, "::"},
		{[8]uint16{1, 0, 0, 0, 2, 0, 0, 0}, "1::2:0:0:0"},
		{[8]uint16{1, 2, 3, 4, 5, 6, 7, 8}, "1:2:3:4:5:6:7:8"},
		{[8]uint16{0x2001, 0xdb8, 0, 0, 1, 0, 0, 1}, "2001:db8::1:0:0:1"},
		{[8]uint16{0xfe80, 0, 0, 0, 0, 0, 0, 0}, "fe80::"},
	}
	for _, e := range expectations {
		if actual := serializeIPv6(e.in); actual != e.out {
			t.Errorf("serializeIPv6(%v): expected %q, but got %q", e.in, e.out, actual)
		}
	}
}

func TestIPv6RoundTrips(t *testing.T) {
	inputs := []string{"::1", "::", "1:2:3:4:5:6:7:8", "2001:db8::8:800:200c:417a", "::ffff:102:304"}
	for _, in := range inputs {
		diag := &diagnostics{}
		addr, code := parseIPv6(in, diag)
		if code != 0 {
			t.Errorf("parseIPv6(%q) failed with %v", in, code)
			continue
		}
		if actual := serializeIPv6(addr); actual != in {
			t.Errorf("parseIPv6(%q): expected round trip, but got %q", in, actual)
		}
	}
}

func TestDomainToUnicode(t *testing.T) {
	got, err := DomainToUnicode("xn--bcher-kva.de")
	if err != nil {
		t.Fatalf("DomainToUnicode failed: %v", err)
	}
	if got != "bücher.de" {
		t.Errorf("Expected \"bücher.de\", but got %q", got)
	}
}
