// Package interp is the tree-walking evaluator over the AST produced
// by [github.com/utlx-lang/utlx/parser]. It is single-threaded,
// strict, and eager: no suspension points, no concurrency at
// expression level.
package interp

import (
	"context"
	"log/slog"
	"strings"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/lexer"
	"github.com/utlx-lang/utlx/parser"
	"github.com/utlx-lang/utlx/stdlib"
	"github.com/utlx-lang/utlx/udm"
)

// discardLogger is used when no [WithLogger] option is supplied.
var discardLogger = slog.New(slog.DiscardHandler)

// DefaultMaxDepth is the interpreter's default recursion-depth guard,
// standing in for an OS stack overflow with a typed [errs.Error] of
// kind [errs.KindStackOverflow].
const DefaultMaxDepth = 2000

// Interpreter evaluates one compiled [parser.Program] against a bound
// [Env]. It holds no state that must outlive a single Run call except
// the template table, which is immutable once built.
type Interpreter struct {
	maxDepth  int
	ctx       context.Context
	templates []*parser.TemplateDecl
	logger    *slog.Logger
}

// Option configures an [Interpreter] at construction.
type Option func(*Interpreter)

// WithMaxDepth overrides [DefaultMaxDepth].
func WithMaxDepth(n int) Option {
	return func(ip *Interpreter) { ip.maxDepth = n }
}

// WithContext attaches a cancellation context, checked at each AST
// node entry and stdlib call boundary.
func WithContext(ctx context.Context) Option {
	return func(ip *Interpreter) { ip.ctx = ctx }
}

// WithLogger attaches a [*slog.Logger] that the interpreter uses to
// log template dispatch at [slog.LevelDebug]. With no WithLogger
// option, logging is a no-op.
func WithLogger(logger *slog.Logger) Option {
	return func(ip *Interpreter) {
		if logger != nil {
			ip.logger = logger
		}
	}
}

// New builds an Interpreter ready to run prog. Template declarations
// are registered once; they never change for the life of the
// Interpreter.
func New(prog *parser.Program, opts ...Option) *Interpreter {
	ip := &Interpreter{maxDepth: DefaultMaxDepth, ctx: context.Background(), templates: prog.Templates, logger: discardLogger}
	for _, o := range opts {
		o(ip)
	}

	return ip
}

// Run evaluates prog's body expression in env.
func (ip *Interpreter) Run(prog *parser.Program, env *Env) (*udm.Value, error) {
	ip.logger.Debug("run start", "templates", len(ip.templates))

	v, err := ip.eval(prog.Body, env, 0)
	if err != nil {
		return nil, err
	}

	ip.logger.Debug("run complete")

	return v, nil
}

func (ip *Interpreter) checkBudget(depth int, span lexer.Span) error {
	if depth > ip.maxDepth {
		return errs.StackOverflow(ip.maxDepth, span)
	}

	if err := ip.ctx.Err(); err != nil {
		return errs.Cancelled(err)
	}

	return nil
}

// eval is the single recursive-descent dispatch over every AST node
// kind. depth tracks recursion for the stack-depth guard.
func (ip *Interpreter) eval(e parser.Expr, env *Env, depth int) (*udm.Value, error) {
	if err := ip.checkBudget(depth, e.Span()); err != nil {
		return nil, err
	}

	depth++

	switch n := e.(type) {
	case *parser.ScalarLit:
		return ip.evalScalarLit(n), nil
	case *parser.ArrayLit:
		return ip.evalArrayLit(n, env, depth)
	case *parser.ObjectLit:
		return ip.evalObjectLit(n, env, depth)
	case *parser.Ident:
		return ip.evalIdent(n, env)
	case *parser.CurrentRef:
		if v, ok := env.Current(); ok {
			return v, nil
		}

		return udm.Null(), nil
	case *parser.MemberAccess:
		target, err := ip.eval(n.Target, env, depth)
		if err != nil {
			return nil, err
		}

		return ip.memberAccess(target, n.Name, n.Span())
	case *parser.AttrAccess:
		target, err := ip.eval(n.Target, env, depth)
		if err != nil {
			return nil, err
		}

		return ip.attrAccess(target, n.Name), nil
	case *parser.Wildcard:
		target, err := ip.eval(n.Target, env, depth)
		if err != nil {
			return nil, err
		}

		return ip.wildcard(target), nil
	case *parser.Descendant:
		target, err := ip.eval(n.Target, env, depth)
		if err != nil {
			return nil, err
		}

		return ip.descendant(target, n.Name, n.Span())
	case *parser.Bracket:
		return ip.evalBracket(n, env, depth)
	case *parser.UnaryExpr:
		return ip.evalUnary(n, env, depth)
	case *parser.BinaryExpr:
		return ip.evalBinary(n, env, depth)
	case *parser.Ternary:
		cond, err := ip.eval(n.Cond, env, depth)
		if err != nil {
			return nil, err
		}

		if udm.Truthy(cond) {
			return ip.eval(n.Then, env, depth)
		}

		return ip.eval(n.Else, env, depth)
	case *parser.LetExpr:
		return ip.evalLet(n, env, depth)
	case *parser.LambdaLit:
		return udm.NewLambda(&closure{ip: ip, env: env, params: n.Params, body: n.Body}), nil
	case *parser.CallExpr:
		return ip.evalCall(n, env, depth)
	case *parser.MatchExpr:
		return ip.evalMatch(n, env, depth)
	case *parser.TemplateDecl:
		// Declarations carry no runtime value; apply() dispatches to
		// them directly. Evaluating one as a bare expression (never
		// produced by the parser's body grammar) yields null.
		return udm.Null(), nil
	case *parser.ApplyExpr:
		return ip.evalApply(n, env, depth)
	default:
		return udm.Null(), nil
	}
}

func (ip *Interpreter) evalScalarLit(n *parser.ScalarLit) *udm.Value {
	switch n.Kind {
	case parser.LitString:
		return udm.String(n.Str)
	case parser.LitInt:
		return udm.Int(n.Int)
	case parser.LitFloat:
		return udm.Float(n.Float)
	case parser.LitBool:
		return udm.Bool(n.Bool)
	default:
		return udm.Null()
	}
}

func (ip *Interpreter) evalArrayLit(n *parser.ArrayLit, env *Env, depth int) (*udm.Value, error) {
	items := make([]*udm.Value, len(n.Elements))

	for i, elem := range n.Elements {
		v, err := ip.eval(elem, env, depth)
		if err != nil {
			return nil, err
		}

		items[i] = v
	}

	return udm.ArrayOf(items), nil
}

func (ip *Interpreter) evalObjectLit(n *parser.ObjectLit, env *Env, depth int) (*udm.Value, error) {
	obj := udm.Object()

	for _, entry := range n.Entries {
		val, err := ip.eval(entry.Value, env, depth)
		if err != nil {
			return nil, err
		}

		key := entry.Key

		if entry.KeyExpr != nil {
			keyVal, err := ip.eval(entry.KeyExpr, env, depth)
			if err != nil {
				return nil, err
			}

			key = udm.CoerceToString(keyVal)
		}

		if entry.IsAttribute {
			obj.SetAttribute(key, udm.CoerceToString(val))
		} else {
			obj.SetProperty(key, val)
		}
	}

	return obj, nil
}

func (ip *Interpreter) evalIdent(n *parser.Ident, env *Env) (*udm.Value, error) {
	if v, ok := env.Get(n.Name); ok {
		return v, nil
	}

	// A bare identifier that isn't bound falls back to an implicit
	// relative path segment off the current context, when one is
	// bound. This is what lets a template body write `apply(Item)`
	// instead of `apply(@.Item)`.
	if cur, ok := env.Current(); ok {
		return ip.memberAccess(cur, n.Name, n.Span())
	}

	return udm.Null(), nil
}

func (ip *Interpreter) evalLet(n *parser.LetExpr, env *Env, depth int) (*udm.Value, error) {
	child := env.Child()

	for _, b := range n.Bindings {
		v, err := ip.eval(b.Value, child, depth)
		if err != nil {
			return nil, err
		}

		child.Set(b.Name, v)
	}

	return ip.eval(n.Body, child, depth)
}

func (ip *Interpreter) evalMatch(n *parser.MatchExpr, env *Env, depth int) (*udm.Value, error) {
	subject, err := ip.eval(n.Subject, env, depth)
	if err != nil {
		return nil, err
	}

	for _, arm := range n.Arms {
		if arm.Pattern == nil {
			return ip.eval(arm.Body, env, depth)
		}

		patVal, err := ip.eval(arm.Pattern, env, depth)
		if err != nil {
			return nil, err
		}

		if udm.Equal(subject, patVal) {
			return ip.eval(arm.Body, env, depth)
		}
	}

	return udm.Null(), nil
}

// --- path operators --------------------------------------------------------

func (ip *Interpreter) memberAccess(target *udm.Value, name string, span lexer.Span) (*udm.Value, error) {
	if udm.IsStructuralKeyword(name) {
		return nil, errs.Path("'"+name+"' is a structural keyword and cannot be used as a path segment", span)
	}

	switch target.Kind() {
	case udm.KindObject:
		return target.GetProperty(name), nil
	case udm.KindArray:
		items := target.Items()
		out := make([]*udm.Value, len(items))

		for i, it := range items {
			v, err := ip.memberAccess(it, name, span)
			if err != nil {
				return nil, err
			}

			out[i] = v
		}

		return udm.ArrayOf(out), nil
	default:
		return udm.Null(), nil
	}
}

func (ip *Interpreter) attrAccess(target *udm.Value, name string) *udm.Value {
	if target.Kind() != udm.KindObject {
		return udm.Null()
	}

	return target.GetAttribute(name)
}

func (ip *Interpreter) wildcard(target *udm.Value) *udm.Value {
	switch target.Kind() {
	case udm.KindObject:
		props := target.Properties()
		out := make([]*udm.Value, len(props))

		for i, kv := range props {
			out[i] = kv.Value
		}

		return udm.ArrayOf(out)
	case udm.KindArray:
		return target
	default:
		return udm.Null()
	}
}

func (ip *Interpreter) descendant(target *udm.Value, name string, span lexer.Span) (*udm.Value, error) {
	if udm.IsStructuralKeyword(name) {
		return nil, errs.Path("'"+name+"' is a structural keyword and cannot be used as a path segment", span)
	}

	var out []*udm.Value

	var walk func(v *udm.Value)

	walk = func(v *udm.Value) {
		switch v.Kind() {
		case udm.KindObject:
			if v.HasProperty(name) {
				out = append(out, v.GetProperty(name))
			}

			for _, kv := range v.Properties() {
				walk(kv.Value)
			}
		case udm.KindArray:
			for _, it := range v.Items() {
				walk(it)
			}
		}
	}

	walk(target)

	return udm.ArrayOf(out), nil
}

func (ip *Interpreter) evalBracket(n *parser.Bracket, env *Env, depth int) (*udm.Value, error) {
	target, err := ip.eval(n.Target, env, depth)
	if err != nil {
		return nil, err
	}

	switch target.Kind() {
	case udm.KindArray:
		items := target.Items()

		if n.InnerIsIndex {
			lit, _ := n.Inner.(*parser.ScalarLit)
			idx := int(lit.Int)

			if idx < 0 || idx >= len(items) {
				return udm.Null(), nil
			}

			return items[idx], nil
		}

		out := make([]*udm.Value, 0, len(items))

		for _, elem := range items {
			child := env.WithCurrent(elem)

			cond, err := ip.eval(n.Inner, child, depth)
			if err != nil {
				return nil, err
			}

			if udm.Truthy(cond) {
				out = append(out, elem)
			}
		}

		return udm.ArrayOf(out), nil
	case udm.KindObject:
		keyVal, err := ip.eval(n.Inner, env, depth)
		if err != nil {
			return nil, err
		}

		key := udm.CoerceToString(keyVal)

		if strings.HasPrefix(key, "@") {
			return ip.attrAccess(target, strings.TrimPrefix(key, "@")), nil
		}

		return ip.memberAccess(target, key, n.Span())
	default:
		return udm.Null(), nil
	}
}

// --- operators ---------------------------------------------------------------

func (ip *Interpreter) evalUnary(n *parser.UnaryExpr, env *Env, depth int) (*udm.Value, error) {
	v, err := ip.eval(n.Operand, env, depth)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case lexer.Minus:
		r, err := udm.Neg(v)
		if err != nil {
			return nil, errs.TypeOrArgumentAt("-", "unary minus requires a numeric operand", n.Span())
		}

		return r, nil
	case lexer.Not:
		return udm.Bool(!udm.Truthy(v)), nil
	default:
		return udm.Null(), nil
	}
}

func (ip *Interpreter) evalBinary(n *parser.BinaryExpr, env *Env, depth int) (*udm.Value, error) {
	// Logical operators short-circuit; evaluate the right side lazily.
	switch n.Op {
	case lexer.AndAnd:
		left, err := ip.eval(n.Left, env, depth)
		if err != nil {
			return nil, err
		}

		if !udm.Truthy(left) {
			return udm.Bool(false), nil
		}

		right, err := ip.eval(n.Right, env, depth)
		if err != nil {
			return nil, err
		}

		return udm.Bool(udm.Truthy(right)), nil
	case lexer.OrOr:
		left, err := ip.eval(n.Left, env, depth)
		if err != nil {
			return nil, err
		}

		if udm.Truthy(left) {
			return udm.Bool(true), nil
		}

		right, err := ip.eval(n.Right, env, depth)
		if err != nil {
			return nil, err
		}

		return udm.Bool(udm.Truthy(right)), nil
	}

	left, err := ip.eval(n.Left, env, depth)
	if err != nil {
		return nil, err
	}

	right, err := ip.eval(n.Right, env, depth)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case lexer.Plus:
		return ip.evalPlus(left, right, n.Span())
	case lexer.Minus:
		r, err := udm.Sub(left, right)
		if err != nil {
			return nil, errs.TypeOrArgumentAt("-", "'-' requires numeric operands", n.Span())
		}

		return r, nil
	case lexer.Star:
		r, err := udm.Mul(left, right)
		if err != nil {
			return nil, errs.TypeOrArgumentAt("*", "'*' requires numeric operands", n.Span())
		}

		return r, nil
	case lexer.Slash:
		r, err := udm.Div(left, right)
		if err != nil {
			return nil, errs.TypeOrArgumentAt("/", err.Error(), n.Span())
		}

		return r, nil
	case lexer.Percent:
		r, err := udm.Mod(left, right)
		if err != nil {
			return nil, errs.TypeOrArgumentAt("%", err.Error(), n.Span())
		}

		return r, nil
	case lexer.EqEq:
		return udm.Bool(udm.Equal(left, right)), nil
	case lexer.NotEq:
		return udm.Bool(!udm.Equal(left, right)), nil
	case lexer.Lt, lexer.Lte, lexer.Gt, lexer.Gte:
		return ip.evalRelational(n.Op, left, right, n.Span())
	default:
		return udm.Null(), nil
	}
}

func (ip *Interpreter) evalPlus(left, right *udm.Value, span lexer.Span) (*udm.Value, error) {
	_, leftIsStr := left.StringValue()
	_, rightIsStr := right.StringValue()

	if leftIsStr || rightIsStr {
		return udm.Concat(left, right), nil
	}

	r, err := udm.Add(left, right)
	if err != nil {
		return nil, errs.TypeOrArgumentAt("+", "'+' requires two numbers or at least one string operand", span)
	}

	return r, nil
}

func (ip *Interpreter) evalRelational(op lexer.Kind, left, right *udm.Value, span lexer.Span) (*udm.Value, error) {
	var cmp int

	switch {
	case left.IsNumeric() && right.IsNumeric():
		lf, _ := left.AsFloat64()
		rf, _ := right.AsFloat64()

		switch {
		case lf < rf:
			cmp = -1
		case lf > rf:
			cmp = 1
		default:
			cmp = 0
		}
	default:
		ls, lok := left.StringValue()
		rs, rok := right.StringValue()

		if !lok || !rok {
			return nil, errs.TypeOrArgumentAt(op.String(), "relational comparison requires two numbers or two strings", span)
		}

		cmp = strings.Compare(ls, rs)
	}

	switch op {
	case lexer.Lt:
		return udm.Bool(cmp < 0), nil
	case lexer.Lte:
		return udm.Bool(cmp <= 0), nil
	case lexer.Gt:
		return udm.Bool(cmp > 0), nil
	case lexer.Gte:
		return udm.Bool(cmp >= 0), nil
	default:
		return udm.Bool(false), nil
	}
}

// --- calls ---------------------------------------------------------------------

func (ip *Interpreter) evalCall(n *parser.CallExpr, env *Env, depth int) (*udm.Value, error) {
	args := make([]*udm.Value, len(n.Args))

	for i, a := range n.Args {
		v, err := ip.eval(a, env, depth)
		if err != nil {
			return nil, err
		}

		args[i] = v
	}

	if id, ok := n.Callee.(*parser.Ident); ok {
		if v, ok := env.Get(id.Name); ok {
			if lam, ok := v.AsLambda(); ok {
				return lam.Call(args)
			}

			return nil, errs.TypeOrArgumentAt(id.Name, "value is not callable", n.Span())
		}

		if fn, ok := stdlib.Lookup(id.Name); ok {
			if err := checkArity(fn, len(args), n.Span()); err != nil {
				return nil, err
			}

			return fn.Call(args)
		}

		return nil, errs.UnknownFunction(id.Name, n.Span())
	}

	calleeVal, err := ip.eval(n.Callee, env, depth)
	if err != nil {
		return nil, err
	}

	lam, ok := calleeVal.AsLambda()
	if !ok {
		return nil, errs.TypeOrArgumentAt("<call>", "callee is not a lambda", n.Span())
	}

	return lam.Call(args)
}

func checkArity(fn *stdlib.Func, got int, span lexer.Span) error {
	if got < fn.MinArity || (fn.MaxArity >= 0 && got > fn.MaxArity) {
		return errs.Arity(fn.Name, fn.MinArity, fn.MaxArity, got, span)
	}

	return nil
}

// --- templates / apply -----------------------------------------------------

func (ip *Interpreter) evalApply(n *parser.ApplyExpr, env *Env, depth int) (*udm.Value, error) {
	pathVal, err := ip.eval(n.Path, env, depth)
	if err != nil {
		return nil, err
	}

	name := pathSelectorName(n.Path)

	if pathVal.IsNull() {
		return udm.Array(), nil
	}

	if pathVal.Kind() == udm.KindArray {
		items := pathVal.Items()
		out := make([]*udm.Value, 0, len(items))

		for _, it := range items {
			res, err := ip.applyOne(it, name, env, depth)
			if err != nil {
				return nil, err
			}

			out = append(out, res)
		}

		return udm.ArrayOf(out), nil
	}

	return ip.applyOne(pathVal, name, env, depth)
}

// applyOne selects the highest-priority template matching node and
// evaluates its body with node bound as `@`. Priority: (a)
// predicate templates before name templates; (b) later declarations
// win ties, searched latest-first. A node with no matching template
// passes through unchanged.
func (ip *Interpreter) applyOne(node *udm.Value, selectorName string, env *Env, depth int) (*udm.Value, error) {
	for i := len(ip.templates) - 1; i >= 0; i-- {
		t := ip.templates[i]
		if t.MatchPred == nil {
			continue
		}

		child := env.WithCurrent(node)

		cond, err := ip.eval(t.MatchPred, child, depth)
		if err != nil {
			return nil, err
		}

		if udm.Truthy(cond) {
			ip.logger.Debug("template dispatch", "kind", "predicate", "index", i)

			return ip.eval(t.Body, child, depth)
		}
	}

	if selectorName != "" {
		for i := len(ip.templates) - 1; i >= 0; i-- {
			t := ip.templates[i]
			if t.MatchPred != nil || t.MatchName != selectorName {
				continue
			}

			ip.logger.Debug("template dispatch", "kind", "name", "match", selectorName, "index", i)

			return ip.eval(t.Body, env.WithCurrent(node), depth)
		}
	}

	ip.logger.Debug("template passthrough", "selector", selectorName)

	return node, nil
}

// pathSelectorName recovers the final static path segment name from a
// simple path expression, used to match `apply(Item)` against
// `template match="Item"` declarations.
func pathSelectorName(e parser.Expr) string {
	switch n := e.(type) {
	case *parser.Ident:
		return n.Name
	case *parser.MemberAccess:
		return n.Name
	case *parser.Descendant:
		return n.Name
	default:
		return ""
	}
}
