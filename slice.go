package primcast

// Convert converts src into dst element-wise with [As] semantics.
// dst must have length >= len(src).
func Convert[To, From Numeric](dst []To, src []From) {
	for i := range src {
		dst[i] = As[To](src[i])
	}
}

// Slice converts src into a freshly allocated slice of To.
func Slice[To, From Numeric](src []From) []To {
	dst := make([]To, len(src))
	Convert(dst, src)
	return dst
}
