// Package primcast converts between Go's primitive scalar kinds with the
// semantics of an unchecked narrowing/widening cast.
//
// It is aimed at generic code — numeric kernels, serialization layers,
// quantization pipelines — that must move values between scalar types
// without knowing the concrete types at the call site. The conversion pair
// is chosen through type parameters, so binding is resolved at compile time
// and every supported conversion is total: no error value, no panic, no
// range validation.
//
// # Quick Start
//
//	three := primcast.As[int32](float32(3.14159265)) // 3
//	wide := primcast.As[float64](int8(-1))           // -1.0
//	low := primcast.As[uint8](int16(768))            // 0 (wraps)
//	one := primcast.FromBool[uint64](true)           // 1
//
// # Semantics
//
// The numeric kinds form a closed set: uint8/16/32/64, uint, int8/16/32/64,
// int, float32 and float64. [As] is defined for every ordered pair drawn
// from that set, including a kind converted to itself.
//
//   - Integer to same-or-wider integer preserves the value: signed sources
//     sign-extend, unsigned sources zero-extend, and an equal-width change
//     of signedness keeps the bit pattern.
//   - Integer to narrower integer keeps the low-order bits of the target
//     width. This is a deliberate wraparound conversion, not a checked one.
//   - Integer to float rounds to the nearest representable value
//     (ties-to-even), losing precision beyond the mantissa width.
//   - Float to integer truncates toward zero. Out-of-range results clamp to
//     the target's minimum or maximum, and NaN becomes zero.
//   - float32 to float64 is exact; float64 to float32 rounds to nearest,
//     with magnitudes beyond the binary32 range becoming signed infinity.
//
// The boolean and character kinds convert into integers only: [FromBool]
// yields 0 or 1, [FromChar] yields the code-point value, and [ToChar]
// admits a byte as a code point. Pairs outside the supported set — float to
// bool, float to [Char], [Char] to float, or any bool/[Char] mix — do not
// type-check, so requesting one is a compile error rather than a runtime
// failure.
//
// # Why the clamping is explicit
//
// The Go specification leaves the result of a non-constant float-to-integer
// conversion implementation-dependent when the truncated value does not fit
// the target type. Relying on the native conversion would therefore make
// uint8(1.04e17) mean whatever the platform happens to produce. As branches
// on range before converting, so the contract above holds on every
// platform. The same reasoning applies to float64-to-float32 narrowing of
// out-of-range magnitudes, which As pins to signed infinity.
//
// # Concurrency
//
// Every function here is a pure computation on register-sized values: no
// state, no allocation ([Slice] excepted, which allocates its result), no
// blocking. Unrestricted concurrent use is safe.
package primcast
