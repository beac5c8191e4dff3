// Package lexer tokenizes UTL-X script source.
// It produces a flat token stream with source spans;
// whitespace and comments (`//` line comments, `/* ... */` block
// comments) are skipped and never appear as tokens. Unterminated
// strings and unrecognized characters are reported as a [LexError]
// carrying the offending [Span].
package lexer
