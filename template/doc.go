/*
Package template documents the way user-defined output templates are
ment to be used with urlstat.

User-defined templates use Go's text/template package, so you might
want to check its documentation first.
There are a bunch of helper methods available inside a template
besides those described in aforementioned documentation, namely:
  - WithLive()
    Tells whether --live probing was activated.
  - FormatBinary(numberOfBytes float64) string
    Converts bytes to kilo-, mega-, giga-, etc.- bytes, and
    appends appropriate suffix "KB", "MB", "GB", etc.
  - FormatTimeUs(us float64) string
    Converts microseconds to milliseconds, seconds, minutes or
    hours and appends appropriate suffix.
  - FormatTimeUsUint64(us uint64) string
    Same as above, but for uint64, since type conversions are
    not available in templates.
  - FloatsToArray(ps ...float64) []float64
    Converts a bunch of floats into array, since, again,
    type conversions are not available in templates.
  - Multiply(num, coeff float64) float64
    Arithmetics are not available inside of templates either.
  - UUIDV1() (UUID, error)
    Generates UUID Version 1, based on timestamp and
    MAC address (RFC 4122)
  - UUIDV4() (UUID, error)
    Generates UUID Version 4, based on random numbers (RFC 4122)

The structure that gets passed to the template is documented in
the package github.com/codesenberg/weburl/internal. The structure
of interest is RunInfo. It basically consists of Spec and Result
fields, the former contains various information about the audit
(number of workers, input path, base URL, probe settings, etc.)
performed, while the latter contains results obtained during its
execution (parse counts, validation-error frequencies, latency and
rate statistics, probe outcomes, etc.).

Examples of templates can be found in:
https://github.com/codesenberg/weburl/blob/master/cmd/urlstat/templates.go
*/
package template
