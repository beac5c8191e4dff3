package stdlib

import (
	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

func init() {
	register(&Func{Name: "keys", MinArity: 1, MaxArity: 1, Call: fnKeys})
	register(&Func{Name: "values", MinArity: 1, MaxArity: 1, Call: fnValues})
	register(&Func{Name: "entries", MinArity: 1, MaxArity: 1, Call: fnEntries})
	register(&Func{Name: "fromEntries", MinArity: 1, MaxArity: 1, Call: fnFromEntries})
	register(&Func{Name: "hasKey", MinArity: 2, MaxArity: 2, Call: fnHasKey})
	register(&Func{Name: "merge", MinArity: 0, MaxArity: -1, Call: fnMerge})
}

// keys, values, and entries operate on an Object's properties
// namespace only; attributes and metadata are never part of these
// views.
func fnKeys(args []*udm.Value) (*udm.Value, error) {
	obj, err := argObject("keys", args, 0)
	if err != nil {
		return nil, err
	}

	names := obj.PropertyKeys()
	out := make([]*udm.Value, len(names))

	for i, k := range names {
		out[i] = udm.String(k)
	}

	return udm.ArrayOf(out), nil
}

func fnValues(args []*udm.Value) (*udm.Value, error) {
	obj, err := argObject("values", args, 0)
	if err != nil {
		return nil, err
	}

	props := obj.Properties()
	out := make([]*udm.Value, len(props))

	for i, kv := range props {
		out[i] = kv.Value
	}

	return udm.ArrayOf(out), nil
}

func fnEntries(args []*udm.Value) (*udm.Value, error) {
	obj, err := argObject("entries", args, 0)
	if err != nil {
		return nil, err
	}

	props := obj.Properties()
	out := make([]*udm.Value, len(props))

	for i, kv := range props {
		entry := udm.Object()
		entry.SetProperty("key", udm.String(kv.Key))
		entry.SetProperty("value", kv.Value)
		out[i] = entry
	}

	return udm.ArrayOf(out), nil
}

func fnFromEntries(args []*udm.Value) (*udm.Value, error) {
	items, err := argArray("fromEntries", args, 0)
	if err != nil {
		return nil, err
	}

	out := udm.Object()

	for _, it := range items {
		if it.Kind() != udm.KindObject {
			return nil, errs.TypeOrArgument("fromEntries", "each element must be an object with key/value properties")
		}

		key, ok := it.GetProperty("key").StringValue()
		if !ok {
			return nil, errs.TypeOrArgument("fromEntries", "each element's key property must be a string")
		}

		out.SetProperty(key, it.GetProperty("value"))
	}

	return out, nil
}

func fnHasKey(args []*udm.Value) (*udm.Value, error) {
	obj, err := argObject("hasKey", args, 0)
	if err != nil {
		return nil, err
	}

	key, err := argString("hasKey", args, 1)
	if err != nil {
		return nil, err
	}

	return udm.Bool(obj.HasProperty(key)), nil
}

func fnMerge(args []*udm.Value) (*udm.Value, error) {
	out := udm.Object()

	for i := range args {
		obj, err := argObject("merge", args, i)
		if err != nil {
			return nil, err
		}

		for _, kv := range obj.Properties() {
			out.SetProperty(kv.Key, kv.Value)
		}

		for _, kv := range obj.Attributes() {
			out.SetAttribute(kv.Key, kv.Value)
		}
	}

	return out, nil
}
