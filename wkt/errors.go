package wkt

import (
	"fmt"
	"strings"
)

// ParseError is returned for any WKT input that cannot be read. It unwraps
// to common.ErrMalformedInput for grammar violations and to
// common.ErrUnsupportedShape for recognized but unsupported content such as
// measures.
type ParseError struct {
	Problem string
	Token   string
	Pos     int

	input string
	cause error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s at pos %d", e.Problem, e.Pos)
	if e.Token != "" {
		msg += fmt.Sprintf(" near %q", e.Token)
	}
	msg += fmt.Sprintf(": %v", e.cause)
	// the caret only lines up on single-line input
	if e.input != "" && !strings.ContainsRune(e.input, '\n') {
		msg += fmt.Sprintf("\n%s\n%s^", e.input, strings.Repeat(" ", e.Pos))
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.cause }
