/*
Command line utility urlstat audits lists of URLs with the weburl
parser: it reports which inputs parse, which fail and why, which carry
validation errors, and (optionally) whether the parsed URLs answer a
HEAD request.

Installation:

	go install github.com/codesenberg/weburl/cmd/urlstat@latest

Usage:

	urlstat [<flags>] <input>

Flags:

	    --help                  Show context-sensitive help (also try --help-long
	                            and --help-man).
	    --version               Show application version.
	-w, --workers=16            Number of concurrent workers
	-b, --base=""               Base URL for relative references
	-n, --normalize             Print the normalized href of every valid URL
	-l, --live                  Probe every valid URL with a HEAD request
	-r, --rate=[pos. int.]      Probe rate limit in requests per second
	-t, --timeout=2s            Probe socket/request timeout
	-H, --header="K: V" ...     HTTP headers to use on probes(can be repeated)
	    --cert=""               Path to the client's TLS Certificate
	    --key=""                Path to the client's TLS Certificate Private Key
	-k, --insecure              Controls whether a client verifies the server's
	                            certificate chain and host name
	-p, --print=<spec>          Specifies what to output. Comma-separated list of
	                            values 'intro' (short: 'i'), 'progress' (short:
	                            'p'), 'result' (short: 'r'). Examples:

	                              * i,p,r (prints everything)
	                              * intro,result (intro & result)
	                              * r (result only)
	                              * result (same as above)
	-q, --no-print              Don't output anything
	-o, --format=<spec>         Which format to use to output the result. <spec>
	                            is either a name (or its shorthand) of some format
	                            understood by urlstat or a path to the
	                            user-defined template, which uses Go's
	                            text/template syntax, prefixed with 'path:' string
	                            (without single quotes), i.e.
	                            "path:/some/path/to/your.template". Formats
	                            understood by urlstat are:

	                              * plain-text (short: pt)
	                              * json (short: j)

Args:

	<input>  File with URLs to audit, one per line('-' for stdin)

For detailed documentation on user-defined templates see
documentation for package github.com/codesenberg/weburl/template.
*/
package main
