package mandelplot

// EscapeTime iterates z = z*z + c from z = 0 for at most limit rounds and
// reports whether c left the circle of radius two around the origin. The
// escape test compares the squared magnitude against 4 so the loop never
// takes a square root. If c escapes at iteration k (0 <= k < limit) the
// result is (k, true); if the limit is reached without escaping, c is taken
// to belong to the set and the result is (0, false).
func EscapeTime(c complex128, limit int) (int, bool) {
	var z complex128
	for i := 0; i < limit; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return i, true
		}
	}
	return 0, false
}

// Intensity maps an EscapeTime result to a grayscale byte. Points in the set
// are black (0). Escaped points fade from white toward dark as the escape
// iteration grows, but never reach 0, so an escaped pixel is always
// distinguishable from an in-set one.
func Intensity(iterations int, escaped bool, limit int) byte {
	if !escaped {
		return 0
	}
	return byte(255 - iterations*255/limit)
}
