package stdlib

import "github.com/utlx-lang/utlx/udm"

// deepMerge merges objects key-wise, with the second argument winning
// on conflicts; non-object values simply take the winner's side
// wholesale.
func init() {
	register(&Func{Name: "deepMerge", MinArity: 2, MaxArity: 2, Call: fnDeepMerge})
	register(&Func{Name: "pick", MinArity: 2, MaxArity: 2, Call: fnPick})
	register(&Func{Name: "omit", MinArity: 2, MaxArity: 2, Call: fnOmit})
}

func fnDeepMerge(args []*udm.Value) (*udm.Value, error) {
	a, err := argObject("deepMerge", args, 0)
	if err != nil {
		return nil, err
	}

	b, err := argObject("deepMerge", args, 1)
	if err != nil {
		return nil, err
	}

	return deepMergeValues(a, b), nil
}

func deepMergeValues(a, b *udm.Value) *udm.Value {
	if a.Kind() != udm.KindObject || b.Kind() != udm.KindObject {
		return b
	}

	out := udm.Object()

	for _, kv := range a.Properties() {
		out.SetProperty(kv.Key, kv.Value)
	}

	for _, kv := range b.Properties() {
		if existing := out.GetProperty(kv.Key); !existing.IsNull() && existing.Kind() == udm.KindObject && kv.Value.Kind() == udm.KindObject {
			out.SetProperty(kv.Key, deepMergeValues(existing, kv.Value))
		} else {
			out.SetProperty(kv.Key, kv.Value)
		}
	}

	for _, kv := range a.Attributes() {
		out.SetAttribute(kv.Key, kv.Value)
	}

	for _, kv := range b.Attributes() {
		out.SetAttribute(kv.Key, kv.Value)
	}

	return out
}

func fnPick(args []*udm.Value) (*udm.Value, error) {
	obj, err := argObject("pick", args, 0)
	if err != nil {
		return nil, err
	}

	names, err := argArray("pick", args, 1)
	if err != nil {
		return nil, err
	}

	out := udm.Object()

	for _, n := range names {
		key, ok := n.StringValue()
		if !ok {
			continue
		}

		if obj.HasProperty(key) {
			out.SetProperty(key, obj.GetProperty(key))
		}
	}

	return out, nil
}

func fnOmit(args []*udm.Value) (*udm.Value, error) {
	obj, err := argObject("omit", args, 0)
	if err != nil {
		return nil, err
	}

	names, err := argArray("omit", args, 1)
	if err != nil {
		return nil, err
	}

	drop := make(map[string]bool, len(names))

	for _, n := range names {
		if key, ok := n.StringValue(); ok {
			drop[key] = true
		}
	}

	out := udm.Object()

	for _, kv := range obj.Properties() {
		if !drop[kv.Key] {
			out.SetProperty(kv.Key, kv.Value)
		}
	}

	return out, nil
}
