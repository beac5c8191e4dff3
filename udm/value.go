package udm

import "time"

// Lambda is a callable UDM value. The interpreter supplies the
// concrete implementation (a closure over its environment); udm only
// needs the call shape so that a Lambda can travel through the value
// tree like any other variant.
type Lambda interface {
	// Arity returns the minimum and maximum accepted argument count.
	// A negative max means unbounded.
	Arity() (min, max int)
	// Call invokes the lambda with the given positional arguments.
	Call(args []*Value) (*Value, error)
	// String returns a short human-readable representation, e.g. for
	// error messages ("lambda/2").
	String() string
}

// Value is the tagged UDM value. The zero Value is not valid; use one
// of the constructors ([Null], [String], [Int], [Object], [NewLambda]
// and the like).
type Value struct {
	kind Kind

	// Scalar payload (kind == KindScalar).
	scalarKind ScalarKind
	str        string
	i64        int64
	f64        float64
	boolean    bool

	// Array payload (kind == KindArray).
	items []*Value

	// Object payload (kind == KindObject).
	obj *objectData

	// Date/DateTime/LocalDateTime/Time payload.
	t time.Time

	// Binary payload (kind == KindBinary).
	bin []byte

	// Lambda payload (kind == KindLambda).
	lambda Lambda
}

// Kind returns the value's variant tag.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null scalar.
func (v *Value) IsNull() bool {
	return v != nil && v.kind == KindScalar && v.scalarKind == ScalarNull
}

// Null returns the null scalar value.
func Null() *Value { return &Value{kind: KindScalar, scalarKind: ScalarNull} }

// String returns a new string scalar.
func String(s string) *Value { return &Value{kind: KindScalar, scalarKind: ScalarString, str: s} }

// Int returns a new integer scalar.
func Int(i int64) *Value { return &Value{kind: KindScalar, scalarKind: ScalarInt, i64: i} }

// Float returns a new floating-point scalar.
func Float(f float64) *Value { return &Value{kind: KindScalar, scalarKind: ScalarFloat, f64: f} }

// Bool returns a new boolean scalar.
func Bool(b bool) *Value { return &Value{kind: KindScalar, scalarKind: ScalarBool, boolean: b} }

// ScalarKind returns the scalar sub-kind. Only meaningful when
// Kind() == KindScalar.
func (v *Value) ScalarKind() ScalarKind { return v.scalarKind }

// StringValue returns the raw string payload and whether v is a string scalar.
func (v *Value) StringValue() (string, bool) {
	if v.kind == KindScalar && v.scalarKind == ScalarString {
		return v.str, true
	}

	return "", false
}

// IntValue returns the raw integer payload and whether v is an integer scalar.
func (v *Value) IntValue() (int64, bool) {
	if v.kind == KindScalar && v.scalarKind == ScalarInt {
		return v.i64, true
	}

	return 0, false
}

// FloatValue returns the raw float payload and whether v is a float scalar.
func (v *Value) FloatValue() (float64, bool) {
	if v.kind == KindScalar && v.scalarKind == ScalarFloat {
		return v.f64, true
	}

	return 0, false
}

// BoolValue returns the raw boolean payload and whether v is a boolean scalar.
func (v *Value) BoolValue() (bool, bool) {
	if v.kind == KindScalar && v.scalarKind == ScalarBool {
		return v.boolean, true
	}

	return false, false
}

// IsNumeric reports whether v is an integer or float scalar.
func (v *Value) IsNumeric() bool {
	return v.kind == KindScalar && (v.scalarKind == ScalarInt || v.scalarKind == ScalarFloat)
}

// AsFloat64 returns the numeric value of an integer or float scalar,
// widening integers. The second return is false for non-numeric values.
func (v *Value) AsFloat64() (float64, bool) {
	switch {
	case v.kind != KindScalar:
		return 0, false
	case v.scalarKind == ScalarInt:
		return float64(v.i64), true
	case v.scalarKind == ScalarFloat:
		return v.f64, true
	default:
		return 0, false
	}
}

// Array returns a new Array value from the given elements (copied).
func Array(items ...*Value) *Value {
	cp := make([]*Value, len(items))
	copy(cp, items)

	return &Value{kind: KindArray, items: cp}
}

// ArrayOf wraps an existing slice without copying; callers must not
// mutate items afterwards.
func ArrayOf(items []*Value) *Value {
	if items == nil {
		items = []*Value{}
	}

	return &Value{kind: KindArray, items: items}
}

// Items returns the array's elements, or nil if v is not an Array.
func (v *Value) Items() []*Value {
	if v.kind != KindArray {
		return nil
	}

	return v.items
}

// Len returns the number of elements in an Array, or properties in an
// Object. Returns 0 for any other kind.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.obj.propOrder)
	default:
		return 0
	}
}

// Date returns a new Date value (calendar date only).
func Date(t time.Time) *Value {
	y, m, d := t.Date()

	return &Value{kind: KindDate, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// DateTime returns a new DateTime value, canonicalized to UTC.
func DateTime(t time.Time) *Value {
	return &Value{kind: KindDateTime, t: t.UTC()}
}

// LocalDateTime returns a new LocalDateTime value (no zone attached).
func LocalDateTime(t time.Time) *Value {
	return &Value{kind: KindLocalDateTime, t: t}
}

// TimeOfDay returns a new Time value (wall-clock time, no date).
func TimeOfDay(t time.Time) *Value {
	return &Value{kind: KindTime, t: t}
}

// Time returns the embedded time.Time payload. Only meaningful for
// Date, DateTime, LocalDateTime, and Time kinds.
func (v *Value) Time() time.Time { return v.t }

// Binary returns a new Binary value wrapping b (copied).
func Binary(b []byte) *Value {
	cp := make([]byte, len(b))
	copy(cp, b)

	return &Value{kind: KindBinary, bin: cp}
}

// Bytes returns the raw bytes of a Binary value, or nil otherwise.
func (v *Value) Bytes() []byte {
	if v.kind != KindBinary {
		return nil
	}

	return v.bin
}

// NewLambda wraps l as a Lambda value.
func NewLambda(l Lambda) *Value {
	return &Value{kind: KindLambda, lambda: l}
}

// AsLambda returns the callable payload and whether v is a Lambda.
func (v *Value) AsLambda() (Lambda, bool) {
	if v.kind != KindLambda {
		return nil, false
	}

	return v.lambda, true
}

// TypeName returns the user-facing type name used in error messages
// and the `typeOf` stdlib function.
func (v *Value) TypeName() string {
	if v.kind == KindScalar {
		return v.scalarKind.String()
	}

	return v.kind.String()
}
