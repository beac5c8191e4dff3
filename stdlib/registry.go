// Package stdlib is the standard library registry the interpreter
// calls into for every function name that isn't a bound lambda: a
// sparse static table of name -> function descriptor, populated once
// via package init()s and never mutated afterwards. No reflection, no
// dynamic dispatch tables.
//
// Category groupings (string, array, math, date, object, type,
// encoding, crypto, compression, serialization (including the YAML
// functions), pretty-print, regional-number, timer, tree, coercion)
// are expressed as one file per category; they inform organization
// only, not dispatch.
package stdlib

import "github.com/utlx-lang/utlx/udm"

// Func is a standard library function descriptor: name, arity bounds,
// and implementation. MaxArity of -1 means unbounded.
type Func struct {
	Name     string
	MinArity int
	MaxArity int
	Call     func(args []*udm.Value) (*udm.Value, error)
}

var registry = make(map[string]*Func)

func register(f *Func) {
	if _, exists := registry[f.Name]; exists {
		panic("stdlib: duplicate registration of " + f.Name)
	}

	registry[f.Name] = f
}

// Lookup returns the function descriptor registered under name.
func Lookup(name string) (*Func, bool) {
	f, ok := registry[name]

	return f, ok
}

// Names returns every registered function name, for documentation and
// completion tooling.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}

	return names
}
