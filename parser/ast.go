package parser

import "github.com/utlx-lang/utlx/lexer"

// Node is implemented by every AST node; it exposes the source span
// for error attribution.
type Node interface {
	Span() lexer.Span
}

// Expr is any expression node. The interface exists purely to
// document intent; all Node implementations below are valid Exprs.
type Expr interface {
	Node
	exprNode()
}

type baseNode struct{ span lexer.Span }

func (b baseNode) Span() lexer.Span { return b.span }

// --- Literals -----------------------------------------------------

// ScalarLit is an integer, float, string, boolean, or null literal.
type ScalarLit struct {
	baseNode

	Kind  ScalarLitKind
	Str   string
	Int   int64
	Float float64
	Bool  bool
}

func (*ScalarLit) exprNode() {}

// ScalarLitKind distinguishes the payload a ScalarLit carries.
type ScalarLitKind int

const (
	LitString ScalarLitKind = iota
	LitInt
	LitFloat
	LitBool
	LitNull
)

// ArrayLit is an array constructor `[e1, e2, ...]`.
type ArrayLit struct {
	baseNode

	Elements []Expr
}

func (*ArrayLit) exprNode() {}

// ObjectEntry is one property or attribute entry in an [ObjectLit].
type ObjectEntry struct {
	Key         string
	KeyExpr     Expr // non-nil for computed keys `[expr]: value`
	IsAttribute bool // true for `@name: value` entries
	Value       Expr
}

// ObjectLit is an object constructor `{ k: v, @a: v2, ... }`.
type ObjectLit struct {
	baseNode

	Entries []ObjectEntry
}

func (*ObjectLit) exprNode() {}

// --- Identifiers and input references ------------------------------

// Ident is a bare identifier: a local binding, a lambda parameter, or
// an input reference such as `$input` / `$input-foo`.
type Ident struct {
	baseNode

	Name string
}

func (*Ident) exprNode() {}

// CurrentRef is the bare `@` token, referring to the current context:
// the element bound by an enclosing predicate filter, or the node
// bound by an enclosing template body.
type CurrentRef struct {
	baseNode
}

func (*CurrentRef) exprNode() {}

// --- Path operators --------------------------------------------------

// MemberAccess is `target.name`.
type MemberAccess struct {
	baseNode

	Target Expr
	Name   string
}

func (*MemberAccess) exprNode() {}

// AttrAccess is `target.@name` (or standalone `@name`, modeled as
// an AttrAccess on a [CurrentRef] target). Only valid as the final
// path component (enforced by the parser).
type AttrAccess struct {
	baseNode

	Target Expr
	Name   string
}

func (*AttrAccess) exprNode() {}

// Wildcard is `target.*`: selects every property value (Object) or
// every element (Array).
type Wildcard struct {
	baseNode

	Target Expr
}

func (*Wildcard) exprNode() {}

// Descendant is `target..name`: depth-first collection of every
// Object's `name` property into a new Array, in document order.
type Descendant struct {
	baseNode

	Target Expr
	Name   string
}

func (*Descendant) exprNode() {}

// Bracket is `target[inner]`. Its runtime meaning (array index,
// predicate filter, or computed key lookup) is resolved by the
// interpreter; see package doc.
type Bracket struct {
	baseNode

	Target       Expr
	Inner        Expr
	InnerIsIndex bool // true if Inner syntactically is a bare non-negative integer literal
}

func (*Bracket) exprNode() {}

// --- Operators --------------------------------------------------

// UnaryExpr is `-x` or `!x`.
type UnaryExpr struct {
	baseNode

	Op      lexer.Kind // Minus or Not
	Operand Expr
}

func (*UnaryExpr) exprNode() {}

// BinaryExpr is any arithmetic, comparison, logical, or string-concat
// binary operator.
type BinaryExpr struct {
	baseNode

	Op    lexer.Kind
	Left  Expr
	Right Expr
}

func (*BinaryExpr) exprNode() {}

// Ternary is `if (cond) then else alt`.
type Ternary struct {
	baseNode

	Cond Expr
	Then Expr
	Else Expr
}

func (*Ternary) exprNode() {}

// --- Let, lambda, call, pipeline ------------------------------------

// Binding is one `name = expr` entry in a [LetExpr].
type Binding struct {
	Name  string
	Value Expr
}

// LetExpr is `let b1, b2, ...; body`.
type LetExpr struct {
	baseNode

	Bindings []Binding
	Body     Expr
}

func (*LetExpr) exprNode() {}

// LambdaLit is `param(s) => body`.
type LambdaLit struct {
	baseNode

	Params []string
	Body   Expr
}

func (*LambdaLit) exprNode() {}

// CallExpr is a function call: either a stdlib/user function name or
// a lambda-valued expression, applied to positional arguments.
type CallExpr struct {
	baseNode

	Callee Expr
	Args   []Expr
}

func (*CallExpr) exprNode() {}

// Pipeline is `lhs |> rhs-call`, parsed directly into a [CallExpr]
// with lhs prepended to Args; no distinct pipeline node is ever
// constructed.

// --- match -----------------------------------------------------------

// MatchArm is one `pattern => expr` arm. Pattern is nil for the `_`
// wildcard arm.
type MatchArm struct {
	Pattern Expr
	Body    Expr
}

// MatchExpr is `match (expr) { arms }`.
type MatchExpr struct {
	baseNode

	Subject Expr
	Arms    []MatchArm
}

func (*MatchExpr) exprNode() {}

// --- templates ---------------------------------------------------------

// TemplateDecl registers a handler for `apply`. MatchName is set for
// name-keyed templates (`template match="Item" {...}`); MatchPred is
// set for predicate-keyed templates (`template match=(cond) {...}`).
// Exactly one of the two is set.
type TemplateDecl struct {
	baseNode

	MatchName string
	MatchPred Expr
	Body      Expr
	// Priority breaks ties between declarations: predicate templates
	// outrank name templates, and later declarations outrank earlier
	// ones on a tie. Order records declaration order.
	Order int
}

func (*TemplateDecl) exprNode() {}

// ApplyExpr is `apply(path)`.
type ApplyExpr struct {
	baseNode

	Path Expr
}

func (*ApplyExpr) exprNode() {}

// --- Program ------------------------------------------------------------

// Program is a fully parsed script body: zero or more template
// declarations (in declaration order) followed by the final body
// expression that produces the script's output value.
type Program struct {
	Templates []*TemplateDecl
	Body      Expr
}
