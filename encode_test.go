package weburl

import "testing"

func TestEncodeSetsAreNested(t *testing.T) {
	sets := []EncodeSet{EncodeC0Control, EncodeFragment, EncodePath, EncodeUserinfo}
	for i := 1; i < len(sets); i++ {
		narrower, wider := sets[i-1], sets[i]
		for c := 0; c < 256; c++ {
			if InSet(byte(c), narrower) && !InSet(byte(c), wider) {
				t.Errorf("byte %#02x is in set %v but not in superset %v", c, narrower, wider)
			}
		}
	}
	for c := 0; c < 256; c++ {
		if !InSet(byte(c), EncodeNone) {
			t.Errorf("EncodeNone should contain every byte, missing %#02x", c)
		}
	}
}

func TestEncodeSetMembers(t *testing.T) {
	expectations := []struct {
		b   byte
		set EncodeSet
		in  bool
	}{
		{0x00, EncodeC0Control, true},
		{0x1f, EncodeC0Control, true},
		{0x20, EncodeC0Control, false},
		{0x7e, EncodeC0Control, false},
		{0x7f, EncodeC0Control, true},
		{0xff, EncodeC0Control, true},
		{' ', EncodeFragment, true},
		{'"', EncodeFragment, true},
		{'<', EncodeFragment, true},
		{'>', EncodeFragment, true},
		{'`', EncodeFragment, true},
		{'#', EncodeFragment, false},
		{'#', EncodePath, true},
		{'?', EncodePath, true},
		{'{', EncodePath, true},
		{'}', EncodePath, true},
		{'/', EncodePath, false},
		{'/', EncodeUserinfo, true},
		{':', EncodeUserinfo, true},
		{';', EncodeUserinfo, true},
		{'=', EncodeUserinfo, true},
		{'@', EncodeUserinfo, true},
		{'[', EncodeUserinfo, true},
		{'\\', EncodeUserinfo, true},
		{']', EncodeUserinfo, true},
		{'^', EncodeUserinfo, true},
		{'|', EncodeUserinfo, true},
		{'~', EncodeUserinfo, false},
		{'a', EncodeUserinfo, false},
	}
	for _, e := range expectations {
		if actual := InSet(e.b, e.set); actual != e.in {
			t.Errorf("InSet(%#02x, %v): expected %v, but got %v", e.b, e.set, e.in, actual)
		}
	}
}

func TestEncodeByte(t *testing.T) {
	expectations := []struct {
		b   byte
		set EncodeSet
		out string
	}{
		{0x20, EncodePath, "%20"},
		{0x20, EncodeNone, "%20"},
		{0x7e, EncodeUserinfo, "~"},
		{'a', EncodePath, "a"},
		{0x00, EncodeC0Control, "%00"},
		{0xab, EncodeFragment, "%AB"},
		{'%', EncodePath, "%"},
	}
	for _, e := range expectations {
		if actual := EncodeByte(e.b, e.set); actual != e.out {
			t.Errorf("EncodeByte(%#02x, %v): expected %q, but got %q", e.b, e.set, e.out, actual)
		}
	}
}

func TestEncodeByteLengthLaw(t *testing.T) {
	sets := []EncodeSet{EncodeNone, EncodeC0Control, EncodeFragment, EncodePath, EncodeUserinfo}
	for _, set := range sets {
		for c := 0; c < 256; c++ {
			b := byte(c)
			enc := EncodeByte(b, set)
			if InSet(b, set) {
				if len(enc) != 3 {
					t.Errorf("EncodeByte(%#02x, %v): expected a triple, but got %q", c, set, enc)
					continue
				}
				for _, h := range enc[1:] {
					if !(h >= '0' && h <= '9' || h >= 'A' && h <= 'F') {
						t.Errorf("EncodeByte(%#02x, %v) produced non-uppercase hex %q", c, set, enc)
					}
				}
				if decoded := PercentDecode(enc); decoded != string([]byte{b}) {
					t.Errorf("PercentDecode(%q): expected %q, but got %q", enc, string([]byte{b}), decoded)
				}
			} else if len(enc) != 1 || enc[0] != b {
				t.Errorf("EncodeByte(%#02x, %v): expected identity, but got %q", c, set, enc)
			}
		}
	}
}

func TestPercentEncodeIsNotIdempotentOnPercent(t *testing.T) {
	in := "100%"
	once := PercentEncode(in, EncodeUserinfo)
	twice := PercentEncode(once, EncodeUserinfo)
	if once != "100%" {
		t.Errorf("Expected \"100%%\", but got %q", once)
	}
	if once != twice {
		// '%' passes through unencoded, so a second pass is stable
		// here; the non-idempotence shows on pre-encoded input.
		t.Errorf("Expected %q, but got %q", once, twice)
	}
	if enc := PercentEncode("%41", EncodeNone); enc != "%25%34%31" {
		t.Errorf("Expected \"%%25%%34%%31\", but got %q", enc)
	}
}

func TestIsPercentEncoded(t *testing.T) {
	expectations := []struct {
		in  string
		out bool
	}{
		{"%41", true},
		{"%4a", true},
		{"%4A", true},
		{"%G1", false},
		{"%4", false},
		{"%411", false},
		{"x41", false},
		{"", false},
	}
	for _, e := range expectations {
		if actual := IsPercentEncoded(e.in); actual != e.out {
			t.Errorf("IsPercentEncoded(%q): expected %v, but got %v", e.in, e.out, actual)
		}
	}
}

func TestPercentDecode(t *testing.T) {
	expectations := []struct {
		in  string
		out string
	}{
		{"abc", "abc"},
		{"%41%42%43", "ABC"},
		{"%4a%4B", "JK"},
		{"100%", "100%"},
		{"%zz", "%zz"},
		{"%4", "%4"},
		{"a%20b", "a b"},
	}
	for _, e := range expectations {
		if actual := PercentDecode(e.in); actual != e.out {
			t.Errorf("PercentDecode(%q): expected %q, but got %q", e.in, e.out, actual)
		}
	}
}
