package udm

// Equal implements structural deep equality:
// two Objects are equal iff both their properties maps and attributes
// maps are key-wise equal; Arrays are equal iff same length with
// pairwise-equal elements in order; scalars compare by kind and value,
// with integer/float compared numerically so `1 == 1.0`. Lambdas are
// never equal, even to themselves, since they carry no comparable
// identity in the data model.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}

	if a.kind != b.kind {
		// Integer and float scalars may still compare equal numerically.
		if a.kind == KindScalar && b.kind == KindScalar && a.IsNumeric() && b.IsNumeric() {
			af, _ := a.AsFloat64()
			bf, _ := b.AsFloat64()

			return af == bf
		}

		return false
	}

	switch a.kind {
	case KindScalar:
		return scalarEqual(a, b)
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}

		for i := range a.items {
			if !Equal(a.items[i], b.items[i]) {
				return false
			}
		}

		return true
	case KindObject:
		return objectEqual(a, b)
	case KindDate, KindDateTime, KindLocalDateTime, KindTime:
		return a.t.Equal(b.t)
	case KindBinary:
		if len(a.bin) != len(b.bin) {
			return false
		}

		for i := range a.bin {
			if a.bin[i] != b.bin[i] {
				return false
			}
		}

		return true
	case KindLambda:
		return false
	default:
		return false
	}
}

func scalarEqual(a, b *Value) bool {
	if a.IsNumeric() && b.IsNumeric() {
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()

		return af == bf
	}

	if a.scalarKind != b.scalarKind {
		return false
	}

	switch a.scalarKind {
	case ScalarNull:
		return true
	case ScalarString:
		return a.str == b.str
	case ScalarBool:
		return a.boolean == b.boolean
	default:
		return false
	}
}

func objectEqual(a, b *Value) bool {
	if len(a.obj.props) != len(b.obj.props) {
		return false
	}

	for k, av := range a.obj.props {
		bv, ok := b.obj.props[k]
		if !ok || !Equal(av, bv) {
			return false
		}
	}

	if len(a.obj.attrs) != len(b.obj.attrs) {
		return false
	}

	for k, av := range a.obj.attrs {
		bv, ok := b.obj.attrs[k]
		if !ok || av != bv {
			return false
		}
	}

	return true
}
