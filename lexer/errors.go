package lexer

import (
	"errors"
	"fmt"
)

// ErrLexical is the sentinel wrapped by every [LexError].
var ErrLexical = errors.New("lexical error")

// LexError is raised for an unterminated string or an unrecognized
// character, carrying the span where scanning failed.
type LexError struct {
	Message string
	Span    Span
}

func (e *LexError) Error() string {
	return fmt.Sprintf("%s: %s", e.Span, e.Message)
}

func (e *LexError) Unwrap() error { return ErrLexical }
