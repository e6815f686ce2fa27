package primcast

import "math"

// f32Overflow is the binary32 overflow threshold (2 - 2^-24) * 2^127.
// Round-to-nearest-even sends any magnitude at or beyond it to infinity;
// everything below rounds to a finite float32.
const f32Overflow = 0x1.ffffffp127

// fromFloat converts a float source to any numeric target. The float64
// argument is exact for float32 sources, so both float widths share this
// path.
func fromFloat[To Numeric](f float64) To {
	var to To

	switch any(to).(type) {
	case float64:
		return To(f)
	case float32:
		return To(narrow32(f))
	}

	// Integer target: truncate toward zero, then clamp. NaN has no
	// truncation and maps to zero.
	if math.IsNaN(f) {
		return to
	}
	f = math.Trunc(f)

	switch any(to).(type) {
	case int:
		return To(clampSigned(f, math.MinInt, math.MaxInt))
	case int8:
		return To(clampSigned(f, math.MinInt8, math.MaxInt8))
	case int16:
		return To(clampSigned(f, math.MinInt16, math.MaxInt16))
	case int32:
		return To(clampSigned(f, math.MinInt32, math.MaxInt32))
	case int64:
		return To(clampSigned(f, math.MinInt64, math.MaxInt64))
	case uint:
		return To(clampUnsigned(f, math.MaxUint))
	case uint8:
		return To(clampUnsigned(f, math.MaxUint8))
	case uint16:
		return To(clampUnsigned(f, math.MaxUint16))
	case uint32:
		return To(clampUnsigned(f, math.MaxUint32))
	default: // uint64
		return To(clampUnsigned(f, math.MaxUint64))
	}
}

// narrow32 narrows a float64 to float32 with the overflow region pinned to
// signed infinity. NaN falls through both comparisons and stays NaN.
func narrow32(f float64) float32 {
	switch {
	case f >= f32Overflow:
		return float32(math.Inf(1))
	case f <= -f32Overflow:
		return float32(math.Inf(-1))
	}
	return float32(f)
}

// clampSigned clamps an integer-valued f into [lo, hi] and converts.
//
// float64(hi) may round above hi (hi = 2^63-1 rounds to 2^63), so the upper
// comparison uses >=: every float64 strictly below the rounded bound is
// <= hi, and a source at the rounded bound is out of range anyway. lo is
// always a power of two and therefore exact.
func clampSigned(f float64, lo, hi int64) int64 {
	if f >= float64(hi) {
		return hi
	}
	if f <= float64(lo) {
		return lo
	}
	return int64(f)
}

// clampUnsigned clamps an integer-valued f into [0, hi] and converts. The
// same >= reasoning as clampSigned applies at hi = 2^64-1.
func clampUnsigned(f float64, hi uint64) uint64 {
	if f >= float64(hi) {
		return hi
	}
	if f <= 0 {
		return 0
	}
	return uint64(f)
}
