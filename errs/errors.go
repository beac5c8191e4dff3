// Package errs holds the structured error type shared by the
// interpreter, standard library, format adapters, and engine façade.
// Every error category is represented
// as a [Kind] value carried by a single [Error] struct, so callers can
// both pattern-match on [Kind] and unwrap to an underlying cause.
package errs

import (
	"fmt"

	"github.com/utlx-lang/utlx/lexer"
)

// Kind distinguishes the error categories surfaced to embedders.
type Kind int

const (
	// KindTypeOrArgument marks a wrong UDM shape for an operation, or
	// wrong arity/shape for a stdlib call.
	KindTypeOrArgument Kind = iota
	// KindPath marks an attempt to use a structural keyword
	// (`properties`, `attributes`, `metadata`) as a path segment.
	KindPath
	// KindFormatParse marks an adapter failing to parse source bytes.
	KindFormatParse
	// KindFormatSerialize marks an adapter unable to render a UDM value.
	KindFormatSerialize
	// KindCompression marks a compression/decompression failure.
	KindCompression
	// KindUnknownFunction marks a call to an unregistered function name.
	KindUnknownFunction
	// KindStackOverflow marks the interpreter's recursion-depth guard
	// tripping.
	KindStackOverflow
	// KindArity marks a lambda or user function called with the wrong
	// number of arguments.
	KindArity
	// KindCancelled marks a transformation cancelled via its context.
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindTypeOrArgument:
		return "TypeOrArgumentError"
	case KindPath:
		return "PathError"
	case KindFormatParse:
		return "FormatParseError"
	case KindFormatSerialize:
		return "FormatSerializeError"
	case KindCompression:
		return "CompressionError"
	case KindUnknownFunction:
		return "UnknownFunctionError"
	case KindStackOverflow:
		return "StackOverflowError"
	case KindArity:
		return "ArityError"
	case KindCancelled:
		return "CancelledError"
	default:
		return "Error"
	}
}

// Error is the single structured error type propagated to the engine
// façade: kind, message, span, and an optional chain of causes.
// Func and Adapter are populated when relevant to the kind;
// either may be empty.
type Error struct {
	Kind    Kind
	Message string
	Span    lexer.Span
	HasSpan bool
	Func    string
	Adapter string
	Cause   error
}

func (e *Error) Error() string {
	loc := ""
	if e.HasSpan {
		loc = e.Span.String() + ": "
	}

	switch {
	case e.Func != "":
		return fmt.Sprintf("%s%s: %s (in %s)", loc, e.Kind, e.Message, e.Func)
	case e.Adapter != "":
		return fmt.Sprintf("%s%s: %s (%s adapter)", loc, e.Kind, e.Message, e.Adapter)
	default:
		return fmt.Sprintf("%s%s: %s", loc, e.Kind, e.Message)
	}
}

func (e *Error) Unwrap() error { return e.Cause }

// TypeOrArgument builds a TypeOrArgumentError carrying the offending
// function name and a remedial hint; it is the standard error path
// for a function called with the wrong argument shape.
func TypeOrArgument(fn, hint string) *Error {
	return &Error{Kind: KindTypeOrArgument, Message: hint, Func: fn}
}

// TypeOrArgumentAt is TypeOrArgument with a source span attached.
func TypeOrArgumentAt(fn, hint string, span lexer.Span) *Error {
	return &Error{Kind: KindTypeOrArgument, Message: hint, Func: fn, Span: span, HasSpan: true}
}

// Path builds a PathError for a path expression that names a
// structural keyword.
func Path(msg string, span lexer.Span) *Error {
	return &Error{Kind: KindPath, Message: msg, Span: span, HasSpan: true}
}

// FormatParse builds a FormatParseError for adapter, with an optional
// cause (e.g. the underlying encoding/xml or encoding/csv error).
func FormatParse(adapter, msg string, cause error) *Error {
	return &Error{Kind: KindFormatParse, Message: msg, Adapter: adapter, Cause: cause}
}

// FormatSerialize builds a FormatSerializeError for adapter.
func FormatSerialize(adapter, msg string) *Error {
	return &Error{Kind: KindFormatSerialize, Message: msg, Adapter: adapter}
}

// Compression builds a CompressionError.
func Compression(msg string, cause error) *Error {
	return &Error{Kind: KindCompression, Message: msg, Cause: cause}
}

// UnknownFunction builds an UnknownFunctionError naming the
// unregistered identifier.
func UnknownFunction(name string, span lexer.Span) *Error {
	return &Error{Kind: KindUnknownFunction, Message: "no such function or bound lambda: " + name, Func: name, Span: span, HasSpan: true}
}

// Arity builds an ArityError for a call with the wrong argument count.
func Arity(fn string, min, max, got int, span lexer.Span) *Error {
	msg := fmt.Sprintf("expects %d", min)
	if max < 0 {
		msg = fmt.Sprintf("expects at least %d", min)
	} else if max != min {
		msg = fmt.Sprintf("expects %d to %d", min, max)
	}

	return &Error{
		Kind:    KindArity,
		Message: fmt.Sprintf("%s argument(s), got %d", msg, got),
		Func:    fn,
		Span:    span,
		HasSpan: true,
	}
}

// StackOverflow builds a StackOverflowError once the interpreter's
// recursion-depth guard trips.
func StackOverflow(maxDepth int, span lexer.Span) *Error {
	return &Error{
		Kind:    KindStackOverflow,
		Message: fmt.Sprintf("exceeded max evaluation depth (%d)", maxDepth),
		Span:    span,
		HasSpan: true,
	}
}

// Cancelled builds a CancelledError for a context cancellation
// observed mid-transformation.
func Cancelled(cause error) *Error {
	return &Error{Kind: KindCancelled, Message: "transformation cancelled", Cause: cause}
}
