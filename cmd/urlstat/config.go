package main

import (
	"time"

	"github.com/codesenberg/weburl"
)

type config struct {
	numWorkers uint64
	inputPath  string
	base       string
	baseURL    *weburl.URL

	normalize bool
	live      bool
	rate      *uint64
	timeout   time.Duration
	headers   *headersList

	certPath string
	keyPath  string
	insecure bool

	printIntro, printProgress, printResult bool
	format                                 format
}

func (c *config) checkArgs() error {
	if c.inputPath == "" {
		return errNoInput
	}
	if c.numWorkers < uint64(1) {
		return errInvalidNumberOfWorkers
	}
	if c.base != "" {
		base, err := weburl.Parse(c.base)
		if err != nil {
			return err
		}
		c.baseURL = base
	}
	if c.timeout < 0 {
		return errNegativeTimeout
	}
	if c.rate != nil {
		if *c.rate < 1 {
			return errZeroRate
		}
		if !c.live {
			return errRateWithoutLive
		}
	}
	if c.headers != nil && len(*c.headers) > 0 && !c.live {
		return errHeadersWithoutLive
	}
	if c.certPath != "" && c.keyPath == "" {
		return errNoPathToKey
	}
	if c.certPath == "" && c.keyPath != "" {
		return errNoPathToCert
	}
	return nil
}
