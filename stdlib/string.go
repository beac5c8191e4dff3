package stdlib

import (
	"strings"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

func init() {
	register(&Func{Name: "upper", MinArity: 1, MaxArity: 1, Call: fnUpper})
	register(&Func{Name: "lower", MinArity: 1, MaxArity: 1, Call: fnLower})
	register(&Func{Name: "trim", MinArity: 1, MaxArity: 1, Call: fnTrim})
	register(&Func{Name: "trimStart", MinArity: 1, MaxArity: 1, Call: fnTrimStart})
	register(&Func{Name: "trimEnd", MinArity: 1, MaxArity: 1, Call: fnTrimEnd})
	register(&Func{Name: "split", MinArity: 2, MaxArity: 2, Call: fnSplit})
	register(&Func{Name: "join", MinArity: 2, MaxArity: 2, Call: fnJoin})
	register(&Func{Name: "replace", MinArity: 3, MaxArity: 3, Call: fnReplace})
	register(&Func{Name: "contains", MinArity: 2, MaxArity: 2, Call: fnContains})
	register(&Func{Name: "startsWith", MinArity: 2, MaxArity: 2, Call: fnStartsWith})
	register(&Func{Name: "endsWith", MinArity: 2, MaxArity: 2, Call: fnEndsWith})
	register(&Func{Name: "substring", MinArity: 2, MaxArity: 3, Call: fnSubstring})
	register(&Func{Name: "indexOf", MinArity: 2, MaxArity: 2, Call: fnIndexOf})
	register(&Func{Name: "length", MinArity: 1, MaxArity: 1, Call: fnLength})
	register(&Func{Name: "padStart", MinArity: 2, MaxArity: 3, Call: fnPadStart})
	register(&Func{Name: "padEnd", MinArity: 2, MaxArity: 3, Call: fnPadEnd})
	register(&Func{Name: "repeat", MinArity: 2, MaxArity: 2, Call: fnRepeat})
	register(&Func{Name: "concat", MinArity: 0, MaxArity: -1, Call: fnConcatStrings})
}

func fnUpper(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("upper", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.String(strings.ToUpper(s)), nil
}

func fnLower(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("lower", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.String(strings.ToLower(s)), nil
}

func fnTrim(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("trim", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.String(strings.TrimSpace(s)), nil
}

func fnTrimStart(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("trimStart", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.String(strings.TrimLeft(s, " \t\r\n")), nil
}

func fnTrimEnd(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("trimEnd", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.String(strings.TrimRight(s, " \t\r\n")), nil
}

func fnSplit(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("split", args, 0)
	if err != nil {
		return nil, err
	}

	sep, err := argString("split", args, 1)
	if err != nil {
		return nil, err
	}

	parts := strings.Split(s, sep)
	out := make([]*udm.Value, len(parts))

	for i, part := range parts {
		out[i] = udm.String(part)
	}

	return udm.ArrayOf(out), nil
}

func fnJoin(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("join", args, 0)
	if err != nil {
		return nil, err
	}

	sep, err := argString("join", args, 1)
	if err != nil {
		return nil, err
	}

	parts := make([]string, len(items))
	for i, it := range items {
		parts[i] = udm.CoerceToString(it)
	}

	return udm.String(strings.Join(parts, sep)), nil
}

func fnReplace(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("replace", args, 0)
	if err != nil {
		return nil, err
	}

	old, err := argString("replace", args, 1)
	if err != nil {
		return nil, err
	}

	repl, err := argString("replace", args, 2)
	if err != nil {
		return nil, err
	}

	return udm.String(strings.ReplaceAll(s, old, repl)), nil
}

func fnContains(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("contains", args, 0)
	if err != nil {
		return nil, err
	}

	sub, err := argString("contains", args, 1)
	if err != nil {
		return nil, err
	}

	return udm.Bool(strings.Contains(s, sub)), nil
}

func fnStartsWith(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("startsWith", args, 0)
	if err != nil {
		return nil, err
	}

	prefix, err := argString("startsWith", args, 1)
	if err != nil {
		return nil, err
	}

	return udm.Bool(strings.HasPrefix(s, prefix)), nil
}

func fnEndsWith(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("endsWith", args, 0)
	if err != nil {
		return nil, err
	}

	suffix, err := argString("endsWith", args, 1)
	if err != nil {
		return nil, err
	}

	return udm.Bool(strings.HasSuffix(s, suffix)), nil
}

func fnSubstring(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("substring", args, 0)
	if err != nil {
		return nil, err
	}

	start, err := argInt("substring", args, 1)
	if err != nil {
		return nil, err
	}

	runes := []rune(s)
	end := len(runes)

	if len(args) == 3 {
		end, err = argInt("substring", args, 2)
		if err != nil {
			return nil, err
		}
	}

	if start < 0 {
		start = 0
	}

	if end > len(runes) {
		end = len(runes)
	}

	if start >= end {
		return udm.String(""), nil
	}

	return udm.String(string(runes[start:end])), nil
}

func fnIndexOf(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("indexOf", args, 0)
	if err != nil {
		return nil, err
	}

	sub, err := argString("indexOf", args, 1)
	if err != nil {
		return nil, err
	}

	return udm.Int(int64(strings.Index(s, sub))), nil
}

func fnLength(args []*udm.Value) (*udm.Value, error) {
	v := args[0]

	switch v.Kind() {
	case udm.KindArray, udm.KindObject:
		return udm.Int(int64(v.Len())), nil
	default:
		if s, ok := v.StringValue(); ok {
			return udm.Int(int64(len([]rune(s)))), nil
		}

		return nil, errs.TypeOrArgument("length", "argument must be a string, array, or object")
	}
}

func fnPadStart(args []*udm.Value) (*udm.Value, error) {
	return pad(args, true)
}

func fnPadEnd(args []*udm.Value) (*udm.Value, error) {
	return pad(args, false)
}

func pad(args []*udm.Value, start bool) (*udm.Value, error) {
	name := "padEnd"
	if start {
		name = "padStart"
	}

	s, err := argString(name, args, 0)
	if err != nil {
		return nil, err
	}

	width, err := argInt(name, args, 1)
	if err != nil {
		return nil, err
	}

	padChar := " "

	if len(args) == 3 {
		padChar, err = argString(name, args, 2)
		if err != nil {
			return nil, err
		}
	}

	if padChar == "" {
		padChar = " "
	}

	need := width - len([]rune(s))
	if need <= 0 {
		return udm.String(s), nil
	}

	fill := strings.Repeat(padChar, need)
	if len([]rune(fill)) > need {
		fill = string([]rune(fill)[:need])
	}

	if start {
		return udm.String(fill + s), nil
	}

	return udm.String(s + fill), nil
}

func fnRepeat(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("repeat", args, 0)
	if err != nil {
		return nil, err
	}

	n, err := argInt("repeat", args, 1)
	if err != nil {
		return nil, err
	}

	if n < 0 {
		n = 0
	}

	return udm.String(strings.Repeat(s, n)), nil
}

func fnConcatStrings(args []*udm.Value) (*udm.Value, error) {
	var sb strings.Builder
	for _, a := range args {
		sb.WriteString(udm.CoerceToString(a))
	}

	return udm.String(sb.String()), nil
}
