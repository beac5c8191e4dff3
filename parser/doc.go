// Package parser turns a token stream from [github.com/utlx-lang/utlx/lexer]
// into a [Program]: an ordered [Header] (version pragma, input/output
// directives) followed by zero or more [TemplateDecl] declarations and
// a single body [Expr].
//
// Parsing is recursive-descent with precedence climbing for binary
// operators (highest to lowest: member/index access; unary; `* / %`;
// `+ -`; relational; equality; `&&`; `||`; `|>`). Every node carries a
// [lexer.Span] so the interpreter and engine can attribute runtime
// errors back to source locations.
//
// Two grammar choices are worth calling out:
//
//   - `expr[inner]` is parsed as a single bracket node whose meaning
//     (array index, predicate filter, or computed property/attribute
//     lookup) is resolved by the interpreter from the runtime kind of
//     expr and the syntactic shape of inner, so `e["@name"]` and
//     `$input["xs:element"]` coexist with the predicate-filter
//     syntax `[cond]`.
//   - `let` bindings are separated from the body by `;`:
//     `let a = 1, b = 2; a + b`.
package parser
