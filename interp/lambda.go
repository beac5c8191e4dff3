package interp

import (
	"fmt"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/parser"
	"github.com/utlx-lang/utlx/udm"
)

// closure is the [udm.Lambda] implementation for a user-written
// [parser.LambdaLit]: strict-argument, closure-capturing over the
// environment active at its point of definition.
type closure struct {
	ip     *Interpreter
	env    *Env
	params []string
	body   parser.Expr
}

func (c *closure) Arity() (min, max int) {
	return len(c.params), len(c.params)
}

func (c *closure) String() string {
	return fmt.Sprintf("lambda/%d", len(c.params))
}

func (c *closure) Call(args []*udm.Value) (*udm.Value, error) {
	if len(args) != len(c.params) {
		return nil, errs.Arity(c.String(), len(c.params), len(c.params), len(args), c.body.Span())
	}

	child := c.env.Child()
	for i, p := range c.params {
		child.Set(p, args[i])
	}

	return c.ip.eval(c.body, child, 0)
}
