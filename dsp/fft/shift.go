package fft

import "github.com/cwbudde/algo-spectral/dsp/cplx"

// Shift returns x circularly rotated left by floor(N/2), so out[i] =
// x[(i+floor(N/2)) mod N]. For even N this moves the zero-frequency bin to
// the center index N/2; for odd N it lands at index N-floor(N/2).
func Shift(x []float64) []float64 {
	n := len(x)
	out := make([]float64, n)
	if n == 0 {
		return out
	}

	h := n / 2
	for i := range out {
		out[i] = x[(i+h)%n]
	}

	return out
}

// ShiftComplex returns b circularly rotated by floor(N/2).
func ShiftComplex(b *cplx.Buffer) *cplx.Buffer {
	n := b.Len()
	out := cplx.New(n)
	if n == 0 {
		return out
	}

	h := n / 2
	for i := 0; i < n; i++ {
		j := (i + h) % n
		out.Re[i] = b.Re[j]
		out.Im[i] = b.Im[j]
	}

	return out
}
