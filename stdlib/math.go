package stdlib

import (
	"math"

	"github.com/utlx-lang/utlx/udm"
)

func init() {
	register(&Func{Name: "abs", MinArity: 1, MaxArity: 1, Call: fnAbs})
	register(&Func{Name: "ceil", MinArity: 1, MaxArity: 1, Call: fnCeil})
	register(&Func{Name: "floor", MinArity: 1, MaxArity: 1, Call: fnFloor})
	register(&Func{Name: "round", MinArity: 1, MaxArity: 2, Call: fnRound})
	register(&Func{Name: "sqrt", MinArity: 1, MaxArity: 1, Call: fnSqrt})
	register(&Func{Name: "pow", MinArity: 2, MaxArity: 2, Call: fnPow})
	register(&Func{Name: "mod", MinArity: 2, MaxArity: 2, Call: fnMod})
}

func fnAbs(args []*udm.Value) (*udm.Value, error) {
	if i, ok := args[0].IntValue(); ok {
		if i < 0 {
			i = -i
		}

		return udm.Int(i), nil
	}

	f, err := argNumber("abs", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.Float(math.Abs(f)), nil
}

func fnCeil(args []*udm.Value) (*udm.Value, error) {
	f, err := argNumber("ceil", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.Int(int64(math.Ceil(f))), nil
}

func fnFloor(args []*udm.Value) (*udm.Value, error) {
	f, err := argNumber("floor", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.Int(int64(math.Floor(f))), nil
}

func fnRound(args []*udm.Value) (*udm.Value, error) {
	f, err := argNumber("round", args, 0)
	if err != nil {
		return nil, err
	}

	digits := 0

	if len(args) == 2 {
		digits, err = argInt("round", args, 1)
		if err != nil {
			return nil, err
		}
	}

	factor := math.Pow(10, float64(digits))
	rounded := math.Round(f*factor) / factor

	if digits <= 0 {
		return udm.Int(int64(rounded)), nil
	}

	return udm.Float(rounded), nil
}

func fnSqrt(args []*udm.Value) (*udm.Value, error) {
	f, err := argNumber("sqrt", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.Float(math.Sqrt(f)), nil
}

func fnPow(args []*udm.Value) (*udm.Value, error) {
	base, err := argNumber("pow", args, 0)
	if err != nil {
		return nil, err
	}

	exp, err := argNumber("pow", args, 1)
	if err != nil {
		return nil, err
	}

	result := math.Pow(base, exp)

	_, baseIsInt := args[0].IntValue()
	_, expIsInt := args[1].IntValue()

	if baseIsInt && expIsInt && exp >= 0 {
		return udm.Int(int64(result)), nil
	}

	return udm.Float(result), nil
}

func fnMod(args []*udm.Value) (*udm.Value, error) {
	a, err := argNumber("mod", args, 0)
	if err != nil {
		return nil, err
	}

	b, err := argNumber("mod", args, 1)
	if err != nil {
		return nil, err
	}

	ai, aIsInt := args[0].IntValue()
	bi, bIsInt := args[1].IntValue()

	if aIsInt && bIsInt {
		if bi == 0 {
			return udm.Float(math.NaN()), nil
		}

		return udm.Int(ai % bi), nil
	}

	return udm.Float(math.Mod(a, b)), nil
}
