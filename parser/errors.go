package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/utlx-lang/utlx/lexer"
)

// ErrSyntax is the sentinel wrapped by every [SyntaxError].
var ErrSyntax = errors.New("syntax error")

// SyntaxError is raised when the token stream does not match the
// grammar. Expected names a short set of token kinds the parser would
// have accepted instead.
type SyntaxError struct {
	Message  string
	Span     lexer.Span
	Expected []lexer.Kind
}

func (e *SyntaxError) Error() string {
	if len(e.Expected) == 0 {
		return fmt.Sprintf("%s: %s", e.Span, e.Message)
	}

	names := make([]string, len(e.Expected))
	for i, k := range e.Expected {
		names[i] = k.String()
	}

	return fmt.Sprintf("%s: %s (expected one of: %s)", e.Span, e.Message, strings.Join(names, ", "))
}

func (e *SyntaxError) Unwrap() error { return ErrSyntax }
