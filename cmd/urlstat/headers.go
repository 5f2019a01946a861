package main

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"
)

type header struct {
	key, value string
}

// headersList collects repeated --header flags for live probes.
type headersList []header

func (h *headersList) String() string {
	return fmt.Sprint(*h)
}

func (h *headersList) IsCumulative() bool {
	return true
}

func (h *headersList) Set(value string) error {
	res := strings.SplitN(value, ":", 2)
	if len(res) != 2 {
		return errInvalidHeaderFormat
	}
	*h = append(*h, header{
		res[0], strings.Trim(res[1], " "),
	})
	return nil
}

func (h *headersList) writeToRequest(req *fasthttp.Request) {
	for _, header := range *h {
		req.Header.Set(header.key, header.value)
	}
}
