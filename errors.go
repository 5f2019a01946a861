package weburl

import "strconv"

// ParseError reports the single terminal condition of a parse: the
// machine state it occurred in, the byte offset into the (whitespace
// stripped) input, and the diagnostic that triggered it.
type ParseError struct {
	State  State
	Offset int
	Code   DiagCode
}

func (e *ParseError) Error() string {
	return "weburl: parse failed in state " + e.State.String() +
		" at offset " + strconv.Itoa(e.Offset) + ": " + e.Code.String()
}

func failure(st State, off int, code DiagCode) *ParseError {
	return &ParseError{State: st, Offset: off, Code: code}
}
