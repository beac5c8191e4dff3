package stdlib

import "github.com/utlx-lang/utlx/udm"

func init() {
	register(&Func{Name: "typeOf", MinArity: 1, MaxArity: 1, Call: fnTypeOf})
	register(&Func{Name: "isString", MinArity: 1, MaxArity: 1, Call: isKindFn(udm.ScalarString)})
	register(&Func{Name: "isNumber", MinArity: 1, MaxArity: 1, Call: fnIsNumber})
	register(&Func{Name: "isBoolean", MinArity: 1, MaxArity: 1, Call: isKindFn(udm.ScalarBool)})
	register(&Func{Name: "isNull", MinArity: 1, MaxArity: 1, Call: fnIsNull})
	register(&Func{Name: "isArray", MinArity: 1, MaxArity: 1, Call: fnIsArray})
	register(&Func{Name: "isObject", MinArity: 1, MaxArity: 1, Call: fnIsObject})
}

func fnTypeOf(args []*udm.Value) (*udm.Value, error) {
	return udm.String(args[0].TypeName()), nil
}

func isKindFn(sk udm.ScalarKind) func([]*udm.Value) (*udm.Value, error) {
	return func(args []*udm.Value) (*udm.Value, error) {
		v := args[0]

		return udm.Bool(v.Kind() == udm.KindScalar && v.ScalarKind() == sk), nil
	}
}

func fnIsNumber(args []*udm.Value) (*udm.Value, error) {
	return udm.Bool(args[0].IsNumeric()), nil
}

func fnIsNull(args []*udm.Value) (*udm.Value, error) {
	return udm.Bool(args[0].IsNull()), nil
}

func fnIsArray(args []*udm.Value) (*udm.Value, error) {
	return udm.Bool(args[0].Kind() == udm.KindArray), nil
}

func fnIsObject(args []*udm.Value) (*udm.Value, error) {
	return udm.Bool(args[0].Kind() == udm.KindObject), nil
}
