package interp

import "github.com/utlx-lang/utlx/udm"

// currentKey is the reserved binding name for `@`, the current-context
// value inside a predicate filter or a template body. It can never
// collide with a user identifier: the lexer only ever produces an
// [lexer.At] token for `@`, never an [lexer.Ident] with that text.
const currentKey = "@"

// Env is a lexically scoped frame mapping name to bound [udm.Value].
// Frames chain to an optional parent; lookup walks outward. The
// outermost frame binds the declared inputs.
type Env struct {
	parent *Env
	vars   map[string]*udm.Value
}

// NewEnv creates a root environment with no parent.
func NewEnv() *Env {
	return &Env{vars: make(map[string]*udm.Value)}
}

// Child creates a new frame nested inside e.
func (e *Env) Child() *Env {
	return &Env{parent: e, vars: make(map[string]*udm.Value)}
}

// Get looks up name, walking outward through parent frames.
func (e *Env) Get(name string) (*udm.Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}

	return nil, false
}

// Set binds name to v in this frame only. Bindings are immutable once
// observed by a child scope: a later Set on the same frame is only
// ever used to build up the frame before any child scope reads it.
func (e *Env) Set(name string, v *udm.Value) {
	e.vars[name] = v
}

// Current returns the value bound to `@` in this frame chain, and
// whether one is bound at all.
func (e *Env) Current() (*udm.Value, bool) {
	return e.Get(currentKey)
}

// WithCurrent returns a child frame with `@` bound to v.
func (e *Env) WithCurrent(v *udm.Value) *Env {
	c := e.Child()
	c.Set(currentKey, v)

	return c
}
