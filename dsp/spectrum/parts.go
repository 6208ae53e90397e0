package spectrum

import "github.com/cwbudde/algo-vecmath"

// MagnitudeFromParts computes |X[k]| = sqrt(re[k]^2 + im[k]^2) into dst.
//
// This is the vectorized fast path for callers that hold real and
// imaginary parts in separate slices; SIMD implementations are used when
// available. All three slices must have the same length.
func MagnitudeFromParts(dst, re, im []float64) {
	vecmath.Magnitude(dst, re, im)
}

// PowerFromParts computes |X[k]|^2 = re[k]^2 + im[k]^2 into dst.
//
// This is the vectorized fast path for callers that hold real and
// imaginary parts in separate slices. All three slices must have the same
// length.
func PowerFromParts(dst, re, im []float64) {
	vecmath.Power(dst, re, im)
}
