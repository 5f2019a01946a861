// Command probetarget runs a tiny HTTP server answering every request
// with a fixed status code. It exists to exercise urlstat --live runs
// locally.
package main

import (
	"log"

	"github.com/alecthomas/kingpin"
	"github.com/valyala/fasthttp"
)

var serverPort = kingpin.Flag("port", "port to listen on").
	Default("8080").
	Short('p').
	String()
var statusCode = kingpin.Flag("status", "status code to answer with").
	Default("200").
	Short('s').
	Int()

func main() {
	kingpin.Parse()
	addr := "localhost:" + *serverPort
	log.Println("Starting HTTP server on:", addr)
	err := fasthttp.ListenAndServe(addr, func(c *fasthttp.RequestCtx) {
		c.SetStatusCode(*statusCode)
	})
	if err != nil {
		log.Println(err)
	}
}
