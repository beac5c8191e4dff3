package udm

// Truthy implements the language's truthiness rule: false, null, 0,
// empty string, empty array, and empty object are falsy; everything
// else (including non-empty arrays/objects, non-zero numbers, Date/
// Time variants, Binary, and Lambda) is truthy.
func Truthy(v *Value) bool {
	if v == nil {
		return false
	}

	switch v.kind {
	case KindScalar:
		switch v.scalarKind {
		case ScalarNull:
			return false
		case ScalarBool:
			return v.boolean
		case ScalarInt:
			return v.i64 != 0
		case ScalarFloat:
			return v.f64 != 0
		case ScalarString:
			return v.str != ""
		}

		return false
	case KindArray:
		return len(v.items) > 0
	case KindObject:
		return len(v.obj.propOrder) > 0 || len(v.obj.attrOrder) > 0
	default:
		return true
	}
}
