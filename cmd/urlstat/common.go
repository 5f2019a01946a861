package main

import (
	"errors"
	"time"
)

const (
	decBase = 10

	rateLimitInterval = 10 * time.Millisecond
	rateMeterInterval = 20 * time.Millisecond
	oneSecond         = 1 * time.Second

	exitFailure = 1
)

var (
	version = "unspecified"

	emptyConf = config{}
	parser    = newKingpinParser()

	defaultNumberOfWorkers = uint64(16)
	defaultTimeout         = 2 * time.Second

	errInvalidNumberOfWorkers = errors.New(
		"invalid number of workers(must be > 0)")
	errNegativeTimeout = errors.New(
		"timeout can't be negative")
	errNoPathToCert = errors.New(
		"no Path to TLS Client Certificate")
	errNoPathToKey = errors.New(
		"no Path to TLS Client Certificate Private Key")
	errZeroRate = errors.New(
		"rate can't be less than 1")
	errRateWithoutLive = errors.New(
		"rate limiting only applies to --live probing")
	errHeadersWithoutLive = errors.New(
		"probe headers only apply to --live probing")
	errNoInput = errors.New(
		"no input file with URLs to audit")

	errInvalidHeaderFormat = errors.New("invalid header format")
	errEmptyPrintSpec      = errors.New(
		"empty print spec is not a valid print spec")
)
