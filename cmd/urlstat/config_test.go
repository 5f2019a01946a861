package main

import (
	"testing"
	"time"
)

func validConfig() config {
	return config{
		numWorkers: defaultNumberOfWorkers,
		inputPath:  "urls.txt",
		timeout:    defaultTimeout,
		headers:    new(headersList),
		format:     knownFormat("plain-text"),
	}
}

func TestCheckArgs(t *testing.T) {
	zero := uint64(0)
	ten := uint64(10)
	expectations := []struct {
		name string
		edit func(*config)
		out  error
	}{
		{"missing input", func(c *config) { c.inputPath = "" }, errNoInput},
		{"zero workers", func(c *config) { c.numWorkers = 0 }, errInvalidNumberOfWorkers},
		{"negative timeout", func(c *config) { c.timeout = -time.Second }, errNegativeTimeout},
		{"zero rate", func(c *config) { c.live = true; c.rate = &zero }, errZeroRate},
		{"rate without live", func(c *config) { c.rate = &ten }, errRateWithoutLive},
		{"headers without live", func(c *config) {
			*c.headers = append(*c.headers, header{"K", "V"})
		}, errHeadersWithoutLive},
		{"cert without key", func(c *config) { c.certPath = "cert.pem" }, errNoPathToKey},
		{"key without cert", func(c *config) { c.keyPath = "key.pem" }, errNoPathToCert},
	}
	for _, e := range expectations {
		c := validConfig()
		e.edit(&c)
		if err := c.checkArgs(); err != e.out {
			t.Errorf("%v: expected %v, but got %v", e.name, e.out, err)
		}
	}
	c := validConfig()
	if err := c.checkArgs(); err != nil {
		t.Errorf("Expected the valid config to pass, but got %v", err)
	}
}

func TestCheckArgsParsesBase(t *testing.T) {
	c := validConfig()
	c.base = "http://example.com/dir/"
	if err := c.checkArgs(); err != nil {
		t.Fatalf("checkArgs failed: %v", err)
	}
	if c.baseURL == nil || c.baseURL.Href() != "http://example.com/dir/" {
		t.Errorf("Expected the base URL to be parsed, but got %v", c.baseURL)
	}

	c = validConfig()
	c.base = "http://exa mple.com/"
	if err := c.checkArgs(); err == nil {
		t.Error("Expected an invalid base URL to be rejected")
	}
}
