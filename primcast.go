package primcast

// Unsigned is the set of unsigned integer kinds of fixed and platform width.
type Unsigned interface {
	uint | uint8 | uint16 | uint32 | uint64
}

// Signed is the set of signed integer kinds of fixed and platform width.
type Signed interface {
	int | int8 | int16 | int32 | int64
}

// Integer is the union of all supported integer kinds.
type Integer interface {
	Unsigned | Signed
}

// Float is the set of floating-point kinds.
type Float interface {
	float32 | float64
}

// Numeric is the closed set of kinds [As] converts between in every
// direction.
//
// The constraint elements are exact types, not underlying-type (~) sets:
// the conversion contract covers the predeclared scalar kinds and nothing
// else, and keeping the set closed is what makes unsupported pairs (such as
// a float into [Char]) compile errors instead of runtime surprises.
type Numeric interface {
	Integer | Float
}

// Char is a Unicode code point, kept distinct from int32 at the type level.
// It converts into integers via [FromChar] and is produced from a byte via
// [ToChar]; converting a Char to a Char is the identity. No conversion
// between Char and the floating-point or boolean kinds exists.
type Char rune

// As converts v to the kind To with unchecked-cast semantics: integer
// narrowing wraps, widening preserves the value, integer/float crossings
// round to nearest or truncate toward zero. Out-of-range float sources
// clamp (integers) or become signed infinity (float32); NaN converts to
// zero for integer targets. See the package documentation for the full
// contract.
//
// As never fails and never allocates.
func As[To, From Numeric](v From) To {
	// Integer sources are fully defined by Go's native conversion rules.
	// Float sources go through the explicit range handling in fromFloat.
	switch f := any(v).(type) {
	case float32:
		return fromFloat[To](float64(f))
	case float64:
		return fromFloat[To](f)
	default:
		return To(v)
	}
}

// FromBool converts a bool to 0 or 1 in any integer kind.
func FromBool[To Integer](b bool) To {
	if b {
		return 1
	}
	return 0
}

// FromChar converts a code point to its integer value. Targets too narrow
// for the code point keep its low-order bits, following the integer
// narrowing rule.
func FromChar[To Integer](c Char) To {
	return To(c)
}

// ToChar converts a byte to the code point with the same value.
func ToChar(b byte) Char {
	return Char(b)
}
