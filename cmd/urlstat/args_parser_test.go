package main

import (
	"reflect"
	"testing"
	"time"
)

const (
	programName = "urlstat"
)

func TestInvalidArgsParsing(t *testing.T) {
	expectations := []struct {
		in  []string
		out string
	}{
		{
			[]string{programName},
			"required argument 'input' not provided",
		},
		{
			[]string{programName, "urls.txt", "more.txt"},
			"unexpected more.txt",
		},
	}
	for _, e := range expectations {
		p := newKingpinParser()
		if _, err := p.parse(e.in); err == nil ||
			err.Error() != e.out {
			t.Error(err, e.out)
		}
	}
}

func TestUnspecifiedArgParsing(t *testing.T) {
	p := newKingpinParser()
	args := []string{programName, "--someunspecifiedflag"}
	_, err := p.parse(args)
	if err == nil {
		t.Fail()
	}
}

func TestArgsParsing(t *testing.T) {
	ten := uint64(10)
	defaultsWith := func(edit func(*config)) config {
		c := config{
			numWorkers:    defaultNumberOfWorkers,
			timeout:       defaultTimeout,
			headers:       new(headersList),
			inputPath:     "urls.txt",
			printIntro:    true,
			printProgress: true,
			printResult:   true,
			format:        knownFormat("plain-text"),
		}
		if edit != nil {
			edit(&c)
		}
		return c
	}
	expectations := []struct {
		in  [][]string
		out config
	}{
		{
			[][]string{{programName, "urls.txt"}},
			defaultsWith(nil),
		},
		{
			[][]string{
				{programName, "-w", "100", "urls.txt"},
				{programName, "--workers", "100", "urls.txt"},
			},
			defaultsWith(func(c *config) { c.numWorkers = 100 }),
		},
		{
			[][]string{
				{programName, "-b", "http://base.example/", "urls.txt"},
				{programName, "--base", "http://base.example/", "urls.txt"},
			},
			defaultsWith(func(c *config) { c.base = "http://base.example/" }),
		},
		{
			[][]string{
				{programName, "-n", "-l", "urls.txt"},
				{programName, "--normalize", "--live", "urls.txt"},
			},
			defaultsWith(func(c *config) { c.normalize = true; c.live = true }),
		},
		{
			[][]string{
				{programName, "-l", "-r", "10", "urls.txt"},
				{programName, "--live", "--rate", "10", "urls.txt"},
			},
			defaultsWith(func(c *config) { c.live = true; c.rate = &ten }),
		},
		{
			[][]string{
				{programName, "-t", "5s", "urls.txt"},
				{programName, "--timeout", "5s", "urls.txt"},
			},
			defaultsWith(func(c *config) { c.timeout = 5 * time.Second }),
		},
		{
			[][]string{
				{programName, "-q", "urls.txt"},
				{programName, "--no-print", "urls.txt"},
			},
			defaultsWith(func(c *config) {
				c.printIntro = false
				c.printProgress = false
				c.printResult = false
			}),
		},
		{
			[][]string{
				{programName, "-p", "r", "urls.txt"},
				{programName, "--print", "result", "urls.txt"},
			},
			defaultsWith(func(c *config) {
				c.printIntro = false
				c.printProgress = false
			}),
		},
		{
			[][]string{
				{programName, "-o", "json", "urls.txt"},
				{programName, "--format", "j", "urls.txt"},
			},
			defaultsWith(func(c *config) { c.format = knownFormat("json") }),
		},
		{
			[][]string{
				{programName, "-o", "path:/a/b/tmpl", "urls.txt"},
			},
			defaultsWith(func(c *config) {
				c.format = userDefinedTemplate("/a/b/tmpl")
			}),
		},
		{
			[][]string{
				{programName, "-", "-H", "One: Value one", "-H", "Two: Value two"},
			},
			defaultsWith(func(c *config) {
				c.inputPath = "-"
				*c.headers = append(*c.headers,
					header{"One", "Value one"},
					header{"Two", "Value two"})
			}),
		},
	}
	for _, e := range expectations {
		for _, args := range e.in {
			p := newKingpinParser()
			cfg, err := p.parse(args)
			if err != nil {
				t.Error(err)
				continue
			}
			if !reflect.DeepEqual(cfg, e.out) {
				t.Logf("Expected: %#v", e.out)
				t.Logf("Got: %#v", cfg)
				t.Fail()
			}
		}
	}
}

func TestParsePrintSpec(t *testing.T) {
	expectations := []struct {
		in      string
		out     [3]bool
		wantErr bool
	}{
		{"i,p,r", [3]bool{true, true, true}, false},
		{"intro,progress,result", [3]bool{true, true, true}, false},
		{"r", [3]bool{false, false, true}, false},
		{"i", [3]bool{true, false, false}, false},
		{"", [3]bool{}, true},
		{"bogus", [3]bool{}, true},
	}
	for _, e := range expectations {
		i, p, r, err := parsePrintSpec(e.in)
		if (err != nil) != e.wantErr {
			t.Errorf("parsePrintSpec(%q): unexpected error state %v", e.in, err)
			continue
		}
		if !e.wantErr && [3]bool{i, p, r} != e.out {
			t.Errorf("parsePrintSpec(%q): expected %v, but got %v",
				e.in, e.out, [3]bool{i, p, r})
		}
	}
}

func TestFormatFromString(t *testing.T) {
	if f := formatFromString("bogus"); f != nil {
		t.Errorf("Expected nil for an unknown format, but got %v", f)
	}
	if f := formatFromString("pt"); f != knownFormat("plain-text") {
		t.Errorf("Expected plain-text, but got %v", f)
	}
}
