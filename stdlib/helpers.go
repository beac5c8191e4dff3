package stdlib

import (
	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

// argString requires args[i] to be a string scalar, raising the
// standard typed argument error with a hint otherwise.
func argString(fn string, args []*udm.Value, i int) (string, error) {
	s, ok := args[i].StringValue()
	if !ok {
		return "", errs.TypeOrArgument(fn, "argument must be a string")
	}

	return s, nil
}

func argArray(fn string, args []*udm.Value, i int) ([]*udm.Value, error) {
	if args[i].Kind() != udm.KindArray {
		return nil, errs.TypeOrArgument(fn, "argument must be an array")
	}

	return args[i].Items(), nil
}

func argObject(fn string, args []*udm.Value, i int) (*udm.Value, error) {
	if args[i].Kind() != udm.KindObject {
		return nil, errs.TypeOrArgument(fn, "argument must be an object")
	}

	return args[i], nil
}

func argLambda(fn string, args []*udm.Value, i int) (udm.Lambda, error) {
	lam, ok := args[i].AsLambda()
	if !ok {
		return nil, errs.TypeOrArgument(fn, "argument must be a lambda")
	}

	return lam, nil
}

func argNumber(fn string, args []*udm.Value, i int) (float64, error) {
	f, ok := args[i].AsFloat64()
	if !ok {
		return 0, errs.TypeOrArgument(fn, "argument must be numeric")
	}

	return f, nil
}

func argInt(fn string, args []*udm.Value, i int) (int, error) {
	if v, ok := args[i].IntValue(); ok {
		return int(v), nil
	}

	if f, ok := args[i].FloatValue(); ok {
		return int(f), nil
	}

	return 0, errs.TypeOrArgument(fn, "argument must be an integer")
}

func argBytes(fn string, args []*udm.Value, i int) ([]byte, error) {
	v := args[i]
	if v.Kind() == udm.KindBinary {
		return v.Bytes(), nil
	}

	if s, ok := v.StringValue(); ok {
		return []byte(s), nil
	}

	return nil, errs.TypeOrArgument(fn, "argument must be a string or binary value")
}
