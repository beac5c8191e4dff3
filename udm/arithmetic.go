package udm

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrNotNumeric is returned by the arithmetic helpers when an operand
// is not an integer or float scalar.
var ErrNotNumeric = errors.New("operand is not numeric")

// ErrDivideByZero is returned by Div and Mod when the divisor is zero.
var ErrDivideByZero = errors.New("division by zero")

// promote reports whether either operand is a float, in which case
// the operation promotes to float arithmetic.
func promote(a, b *Value) bool {
	return a.scalarKind == ScalarFloat || b.scalarKind == ScalarFloat
}

// Add implements numeric `+` with float promotion. Integer overflow
// wraps using Go's native int64 semantics; wrapping (not saturating)
// is the documented and tested behavior.
func Add(a, b *Value) (*Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return nil, ErrNotNumeric
	}

	if promote(a, b) {
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()

		return Float(af + bf), nil
	}

	return Int(a.i64 + b.i64), nil
}

// Sub implements numeric `-` with float promotion.
func Sub(a, b *Value) (*Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return nil, ErrNotNumeric
	}

	if promote(a, b) {
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()

		return Float(af - bf), nil
	}

	return Int(a.i64 - b.i64), nil
}

// Mul implements numeric `*` with float promotion.
func Mul(a, b *Value) (*Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return nil, ErrNotNumeric
	}

	if promote(a, b) {
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()

		return Float(af * bf), nil
	}

	return Int(a.i64 * b.i64), nil
}

// Div implements numeric `/`. Integer division that is exact yields an
// integer result; otherwise (including whenever either operand is a
// float) the result is a float.
func Div(a, b *Value) (*Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return nil, ErrNotNumeric
	}

	if promote(a, b) {
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()

		if bf == 0 {
			return nil, ErrDivideByZero
		}

		return Float(af / bf), nil
	}

	if b.i64 == 0 {
		return nil, ErrDivideByZero
	}

	if a.i64%b.i64 == 0 {
		return Int(a.i64 / b.i64), nil
	}

	return Float(float64(a.i64) / float64(b.i64)), nil
}

// Mod implements numeric `%`. Float promotion follows the same rule as
// the other arithmetic operators.
func Mod(a, b *Value) (*Value, error) {
	if !a.IsNumeric() || !b.IsNumeric() {
		return nil, ErrNotNumeric
	}

	if promote(a, b) {
		af, _ := a.AsFloat64()
		bf, _ := b.AsFloat64()

		if bf == 0 {
			return nil, ErrDivideByZero
		}

		return Float(floatMod(af, bf)), nil
	}

	if b.i64 == 0 {
		return nil, ErrDivideByZero
	}

	return Int(a.i64 % b.i64), nil
}

func floatMod(a, b float64) float64 {
	r := a - b*float64(int64(a/b))

	return r
}

// Neg implements unary `-`.
func Neg(a *Value) (*Value, error) {
	if !a.IsNumeric() {
		return nil, ErrNotNumeric
	}

	if a.scalarKind == ScalarFloat {
		return Float(-a.f64), nil
	}

	return Int(-a.i64), nil
}

// Concat implements the non-numeric `+` overloads: string+string
// concatenates; string and non-string concatenates via string
// coercion; number+number is handled by [Add], not Concat.
func Concat(a, b *Value) *Value {
	return String(CoerceToString(a) + CoerceToString(b))
}

// CoerceToString renders v the way `+` string-coercion and string
// interpolation do: scalars render their literal text, null renders
// as the empty string, and structured values fall back to a compact
// debug form (never used for serialization, only for `+` and
// `toString`).
func CoerceToString(v *Value) string {
	if v == nil {
		return ""
	}

	switch v.kind {
	case KindScalar:
		switch v.scalarKind {
		case ScalarNull:
			return ""
		case ScalarString:
			return v.str
		case ScalarBool:
			return strconv.FormatBool(v.boolean)
		case ScalarInt:
			return strconv.FormatInt(v.i64, 10)
		case ScalarFloat:
			return formatFloat(v.f64)
		}

		return ""
	case KindDate:
		return v.t.Format("2006-01-02")
	case KindDateTime:
		return v.t.Format("2006-01-02T15:04:05Z07:00")
	case KindLocalDateTime:
		return v.t.Format("2006-01-02T15:04:05")
	case KindTime:
		return v.t.Format("15:04:05")
	case KindBinary:
		return fmt.Sprintf("<binary:%d bytes>", len(v.bin))
	case KindArray:
		return fmt.Sprintf("<array:%d items>", len(v.items))
	case KindObject:
		return "<object>"
	case KindLambda:
		return "<lambda>"
	default:
		return ""
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
