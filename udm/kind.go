package udm

// Kind tags the variant a [Value] holds.
type Kind int

const (
	// KindScalar holds a string, integer, float, boolean, or null.
	KindScalar Kind = iota
	// KindArray holds an ordered sequence of [Value].
	KindArray
	// KindObject holds properties, attributes, and metadata maps.
	KindObject
	// KindDate holds a calendar date with no time or zone.
	KindDate
	// KindDateTime holds an instant with a time zone.
	KindDateTime
	// KindLocalDateTime holds a wall-clock date and time with no zone.
	KindLocalDateTime
	// KindTime holds a wall-clock time with no date.
	KindTime
	// KindBinary holds an opaque byte vector.
	KindBinary
	// KindLambda holds a callable; never produced by a parser.
	KindLambda
)

// String returns a lowercase name for the kind.
func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindDate:
		return "date"
	case KindDateTime:
		return "datetime"
	case KindLocalDateTime:
		return "localdatetime"
	case KindTime:
		return "time"
	case KindBinary:
		return "binary"
	case KindLambda:
		return "lambda"
	default:
		return "unknown"
	}
}

// ScalarKind tags which of the five scalar payloads a Scalar [Value] holds.
type ScalarKind int

const (
	// ScalarNull is the null scalar.
	ScalarNull ScalarKind = iota
	// ScalarString is a string scalar.
	ScalarString
	// ScalarInt is an integer scalar, kept distinct from float.
	ScalarInt
	// ScalarFloat is a floating-point scalar.
	ScalarFloat
	// ScalarBool is a boolean scalar.
	ScalarBool
)

// String returns a lowercase name for the scalar kind.
func (s ScalarKind) String() string {
	switch s {
	case ScalarNull:
		return "null"
	case ScalarString:
		return "string"
	case ScalarInt:
		return "integer"
	case ScalarFloat:
		return "float"
	case ScalarBool:
		return "boolean"
	default:
		return "unknown"
	}
}
