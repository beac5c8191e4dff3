package stdlib

import (
	"strconv"
	"strings"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

func init() {
	register(&Func{Name: "toString", MinArity: 1, MaxArity: 1, Call: fnToString})
	register(&Func{Name: "toNumber", MinArity: 1, MaxArity: 1, Call: fnToNumber})
	register(&Func{Name: "toInt", MinArity: 1, MaxArity: 1, Call: fnToInt})
	register(&Func{Name: "toFloat", MinArity: 1, MaxArity: 1, Call: fnToFloat})
	register(&Func{Name: "toBoolean", MinArity: 1, MaxArity: 1, Call: fnToBoolean})
}

func fnToString(args []*udm.Value) (*udm.Value, error) {
	return udm.String(udm.CoerceToString(args[0])), nil
}

func fnToNumber(args []*udm.Value) (*udm.Value, error) {
	v := args[0]

	if v.IsNumeric() {
		return v, nil
	}

	s, ok := v.StringValue()
	if !ok {
		return nil, errs.TypeOrArgument("toNumber", "argument must be a number or numeric string")
	}

	s = strings.TrimSpace(s)

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return udm.Int(i), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, errs.TypeOrArgument("toNumber", "string is not numeric")
	}

	return udm.Float(f), nil
}

func fnToInt(args []*udm.Value) (*udm.Value, error) {
	v := args[0]

	if i, ok := v.IntValue(); ok {
		return udm.Int(i), nil
	}

	if f, ok := v.FloatValue(); ok {
		return udm.Int(int64(f)), nil
	}

	s, ok := v.StringValue()
	if !ok {
		return nil, errs.TypeOrArgument("toInt", "argument must be a number or numeric string")
	}

	i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		f, ferr := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if ferr != nil {
			return nil, errs.TypeOrArgument("toInt", "string is not numeric")
		}

		return udm.Int(int64(f)), nil
	}

	return udm.Int(i), nil
}

func fnToFloat(args []*udm.Value) (*udm.Value, error) {
	v := args[0]

	if f, ok := v.AsFloat64(); ok {
		return udm.Float(f), nil
	}

	s, ok := v.StringValue()
	if !ok {
		return nil, errs.TypeOrArgument("toFloat", "argument must be a number or numeric string")
	}

	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil, errs.TypeOrArgument("toFloat", "string is not numeric")
	}

	return udm.Float(f), nil
}

func fnToBoolean(args []*udm.Value) (*udm.Value, error) {
	v := args[0]

	if b, ok := v.BoolValue(); ok {
		return udm.Bool(b), nil
	}

	if s, ok := v.StringValue(); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true":
			return udm.Bool(true), nil
		case "false":
			return udm.Bool(false), nil
		}
	}

	return udm.Bool(udm.Truthy(v)), nil
}
