package lexer

import "fmt"

// Position identifies a single byte offset in source, along with its
// 1-based line and column for error messages.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Span is a half-open [Start, End) source range, carried by every AST
// node and every token for error reporting.
type Span struct {
	Start Position
	End   Position
}

// String renders a span as "line:col" for its start position.
func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start.Line, s.Start.Column)
}

// Merge returns the smallest span covering both s and other.
func (s Span) Merge(other Span) Span {
	start, end := s.Start, s.End

	if other.Start.Offset < start.Offset {
		start = other.Start
	}

	if other.End.Offset > end.Offset {
		end = other.End
	}

	return Span{Start: start, End: end}
}

// Kind distinguishes token types.
type Kind int

const (
	EOF Kind = iota
	Ident
	Int
	Float
	String

	// Pragma is the literal `%utlx` header token.
	Pragma

	// Keywords.
	KwInput
	KwOutput
	KwLet
	KwIf
	KwElse
	KwMatch
	KwTemplate
	KwApply
	KwTrue
	KwFalse
	KwNull

	// Punctuation.
	LBrace    // {
	RBrace    // }
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	Comma     // ,
	Semicolon // ;
	Colon     // :
	Dot       // .
	DotDot    // ..
	At        // @
	Star      // * (also wildcard path segment)
	Assign    // =
	HeaderSep // ---

	// Operators.
	Plus     // +
	Minus    // -
	Slash    // /
	Percent  // %
	EqEq     // ==
	NotEq    // !=
	Lt       // <
	Lte      // <=
	Gt       // >
	Gte      // >=
	AndAnd   // &&
	OrOr     // ||
	Not      // !
	PipeGT   // |>
	FatArrow // =>
)

var kindNames = map[Kind]string{
	EOF: "EOF", Ident: "identifier", Int: "integer", Float: "float", String: "string",
	Pragma:     "%utlx",
	KwInput:    "input", KwOutput: "output", KwLet: "let", KwIf: "if", KwElse: "else",
	KwMatch:    "match", KwTemplate: "template", KwApply: "apply",
	KwTrue:     "true", KwFalse: "false", KwNull: "null",
	LBrace:     "{", RBrace: "}", LBracket: "[", RBracket: "]", LParen: "(", RParen: ")",
	Comma:      ",", Semicolon: ";", Colon: ":", Dot: ".", DotDot: "..", At: "@",
	Star:       "*", Assign: "=", HeaderSep: "---",
	Plus:       "+", Minus: "-", Slash: "/", Percent: "%",
	EqEq:       "==", NotEq: "!=", Lt: "<", Lte: "<=", Gt: ">", Gte: ">=",
	AndAnd:     "&&", OrOr: "||", Not: "!", PipeGT: "|>", FatArrow: "=>",
}

// String renders a human-readable name for a token kind, used in
// syntax error messages ("expected ',' or '}'").
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

var keywords = map[string]Kind{
	"input": KwInput, "output": KwOutput, "let": KwLet, "if": KwIf, "else": KwElse,
	"match": KwMatch, "template": KwTemplate, "apply": KwApply,
	"true": KwTrue, "false": KwFalse, "null": KwNull,
}

// Token is a single lexical token with its source span.
type Token struct {
	Kind    Kind
	Literal string // raw text for Ident/operators; decoded text for String
	Int     int64
	Float   float64
	Span    Span
}

// IsKeyword reports whether ident names a reserved keyword, and if so,
// returns its token kind.
func IsKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]

	return k, ok
}
