package stdlib

import (
	"sort"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

func init() {
	register(&Func{Name: "map", MinArity: 2, MaxArity: 2, Call: fnMap})
	register(&Func{Name: "filter", MinArity: 2, MaxArity: 2, Call: fnFilter})
	register(&Func{Name: "reduce", MinArity: 3, MaxArity: 3, Call: fnReduce})
	register(&Func{Name: "sortBy", MinArity: 2, MaxArity: 2, Call: fnSortBy})
	register(&Func{Name: "flatten", MinArity: 1, MaxArity: 1, Call: fnFlatten})
	register(&Func{Name: "flatMap", MinArity: 2, MaxArity: 2, Call: fnFlatMap})
	register(&Func{Name: "first", MinArity: 1, MaxArity: 1, Call: fnFirst})
	register(&Func{Name: "last", MinArity: 1, MaxArity: 1, Call: fnLast})
	register(&Func{Name: "reverse", MinArity: 1, MaxArity: 1, Call: fnReverse})
	register(&Func{Name: "distinct", MinArity: 1, MaxArity: 1, Call: fnDistinct})
	register(&Func{Name: "sum", MinArity: 1, MaxArity: 1, Call: fnSum})
	register(&Func{Name: "min", MinArity: 1, MaxArity: 1, Call: fnMin})
	register(&Func{Name: "max", MinArity: 1, MaxArity: 1, Call: fnMax})
	register(&Func{Name: "avg", MinArity: 1, MaxArity: 1, Call: fnAvg})
	register(&Func{Name: "count", MinArity: 1, MaxArity: 1, Call: fnCount})
	register(&Func{Name: "slice", MinArity: 2, MaxArity: 3, Call: fnSlice})
	register(&Func{Name: "concatArrays", MinArity: 0, MaxArity: -1, Call: fnConcatArrays})
	register(&Func{Name: "range", MinArity: 1, MaxArity: 2, Call: fnRange})
	register(&Func{Name: "any", MinArity: 2, MaxArity: 2, Call: fnAny})
	register(&Func{Name: "all", MinArity: 2, MaxArity: 2, Call: fnAll})
	register(&Func{Name: "find", MinArity: 2, MaxArity: 2, Call: fnFind})
}

// callOne invokes lam with a single element, or with (element, index)
// when lam declares a second parameter; this is how `map`/`filter`
// support an optional index argument without a separate arity.
func callOne(lam udm.Lambda, elem *udm.Value, idx int) (*udm.Value, error) {
	min, _ := lam.Arity()
	if min >= 2 {
		return lam.Call([]*udm.Value{elem, udm.Int(int64(idx))})
	}

	return lam.Call([]*udm.Value{elem})
}

func fnMap(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("map", args, 0)
	if err != nil {
		return nil, err
	}

	lam, err := argLambda("map", args, 1)
	if err != nil {
		return nil, err
	}

	out := make([]*udm.Value, len(items))

	for i, it := range items {
		v, err := callOne(lam, it, i)
		if err != nil {
			return nil, err
		}

		out[i] = v
	}

	return udm.ArrayOf(out), nil
}

func fnFilter(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("filter", args, 0)
	if err != nil {
		return nil, err
	}

	lam, err := argLambda("filter", args, 1)
	if err != nil {
		return nil, err
	}

	out := make([]*udm.Value, 0, len(items))

	for i, it := range items {
		v, err := callOne(lam, it, i)
		if err != nil {
			return nil, err
		}

		if udm.Truthy(v) {
			out = append(out, it)
		}
	}

	return udm.ArrayOf(out), nil
}

func fnReduce(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("reduce", args, 0)
	if err != nil {
		return nil, err
	}

	lam, err := argLambda("reduce", args, 1)
	if err != nil {
		return nil, err
	}

	acc := args[2]

	for _, it := range items {
		acc, err = lam.Call([]*udm.Value{acc, it})
		if err != nil {
			return nil, err
		}
	}

	return acc, nil
}

func fnSortBy(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("sortBy", args, 0)
	if err != nil {
		return nil, err
	}

	lam, err := argLambda("sortBy", args, 1)
	if err != nil {
		return nil, err
	}

	keys := make([]*udm.Value, len(items))

	for i, it := range items {
		k, err := lam.Call([]*udm.Value{it})
		if err != nil {
			return nil, err
		}

		keys[i] = k
	}

	idxs := make([]int, len(items))
	for i := range idxs {
		idxs[i] = i
	}

	sort.SliceStable(idxs, func(a, b int) bool {
		return lessValue(keys[idxs[a]], keys[idxs[b]])
	})

	out := make([]*udm.Value, len(items))
	for i, idx := range idxs {
		out[i] = items[idx]
	}

	return udm.ArrayOf(out), nil
}

func lessValue(a, b *udm.Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()

		return af < bf
	}

	as, aok := a.StringValue()
	bs, bok := b.StringValue()

	if aok && bok {
		return as < bs
	}

	return false
}

func fnFlatten(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("flatten", args, 0)
	if err != nil {
		return nil, err
	}

	out := make([]*udm.Value, 0, len(items))

	for _, it := range items {
		if it.Kind() == udm.KindArray {
			out = append(out, it.Items()...)
		} else {
			out = append(out, it)
		}
	}

	return udm.ArrayOf(out), nil
}

func fnFlatMap(args []*udm.Value) (*udm.Value, error) {
	mapped, err := fnMap(args)
	if err != nil {
		return nil, err
	}

	return fnFlatten([]*udm.Value{mapped})
}

func fnFirst(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("first", args, 0)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return udm.Null(), nil
	}

	return items[0], nil
}

func fnLast(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("last", args, 0)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return udm.Null(), nil
	}

	return items[len(items)-1], nil
}

func fnReverse(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("reverse", args, 0)
	if err != nil {
		return nil, err
	}

	out := make([]*udm.Value, len(items))
	for i, it := range items {
		out[len(items)-1-i] = it
	}

	return udm.ArrayOf(out), nil
}

func fnDistinct(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("distinct", args, 0)
	if err != nil {
		return nil, err
	}

	out := make([]*udm.Value, 0, len(items))

	for _, it := range items {
		dup := false

		for _, seen := range out {
			if udm.Equal(seen, it) {
				dup = true

				break
			}
		}

		if !dup {
			out = append(out, it)
		}
	}

	return udm.ArrayOf(out), nil
}

func fnSum(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("sum", args, 0)
	if err != nil {
		return nil, err
	}

	isFloat := false

	var total float64

	var itotal int64

	for _, it := range items {
		if !it.IsNumeric() {
			return nil, errs.TypeOrArgument("sum", "all elements must be numeric")
		}

		if it.ScalarKind() == udm.ScalarFloat {
			isFloat = true
		}

		f, _ := it.AsFloat64()
		total += f

		if i, ok := it.IntValue(); ok {
			itotal += i
		}
	}

	if isFloat {
		return udm.Float(total), nil
	}

	return udm.Int(itotal), nil
}

func fnAvg(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("avg", args, 0)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return udm.Null(), nil
	}

	sum, err := fnSum(args)
	if err != nil {
		return nil, err
	}

	f, _ := sum.AsFloat64()

	return udm.Float(f / float64(len(items))), nil
}

func fnMin(args []*udm.Value) (*udm.Value, error) {
	return extremum(args, true)
}

func fnMax(args []*udm.Value) (*udm.Value, error) {
	return extremum(args, false)
}

func extremum(args []*udm.Value, wantMin bool) (*udm.Value, error) {
	name := "max"
	if wantMin {
		name = "min"
	}

	items, err := argArray(name, args, 0)
	if err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return udm.Null(), nil
	}

	best := items[0]

	for _, it := range items[1:] {
		if wantMin && lessValue(it, best) {
			best = it
		}

		if !wantMin && lessValue(best, it) {
			best = it
		}
	}

	return best, nil
}

func fnCount(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("count", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.Int(int64(len(items))), nil
}

func fnSlice(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("slice", args, 0)
	if err != nil {
		return nil, err
	}

	start, err := argInt("slice", args, 1)
	if err != nil {
		return nil, err
	}

	end := len(items)

	if len(args) == 3 {
		end, err = argInt("slice", args, 2)
		if err != nil {
			return nil, err
		}
	}

	if start < 0 {
		start = 0
	}

	if end > len(items) {
		end = len(items)
	}

	if start >= end {
		return udm.Array(), nil
	}

	return udm.ArrayOf(append([]*udm.Value{}, items[start:end]...)), nil
}

func fnConcatArrays(args []*udm.Value) (*udm.Value, error) {
	out := []*udm.Value{}

	for i := range args {
		items, err := argArray("concatArrays", args, i)
		if err != nil {
			return nil, err
		}

		out = append(out, items...)
	}

	return udm.ArrayOf(out), nil
}

func fnRange(args []*udm.Value) (*udm.Value, error) {
	var start, end int

	var err error

	if len(args) == 1 {
		end, err = argInt("range", args, 0)
	} else {
		start, err = argInt("range", args, 0)
		if err == nil {
			end, err = argInt("range", args, 1)
		}
	}

	if err != nil {
		return nil, err
	}

	if end < start {
		return udm.Array(), nil
	}

	out := make([]*udm.Value, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, udm.Int(int64(i)))
	}

	return udm.ArrayOf(out), nil
}

func fnAny(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("any", args, 0)
	if err != nil {
		return nil, err
	}

	lam, err := argLambda("any", args, 1)
	if err != nil {
		return nil, err
	}

	for i, it := range items {
		v, err := callOne(lam, it, i)
		if err != nil {
			return nil, err
		}

		if udm.Truthy(v) {
			return udm.Bool(true), nil
		}
	}

	return udm.Bool(false), nil
}

func fnAll(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("all", args, 0)
	if err != nil {
		return nil, err
	}

	lam, err := argLambda("all", args, 1)
	if err != nil {
		return nil, err
	}

	for i, it := range items {
		v, err := callOne(lam, it, i)
		if err != nil {
			return nil, err
		}

		if !udm.Truthy(v) {
			return udm.Bool(false), nil
		}
	}

	return udm.Bool(true), nil
}

func fnFind(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("find", args, 0)
	if err != nil {
		return nil, err
	}

	lam, err := argLambda("find", args, 1)
	if err != nil {
		return nil, err
	}

	for i, it := range items {
		v, err := callOne(lam, it, i)
		if err != nil {
			return nil, err
		}

		if udm.Truthy(v) {
			return it, nil
		}
	}

	return udm.Null(), nil
}
