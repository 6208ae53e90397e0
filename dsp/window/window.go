package window

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

// Cosine-sum coefficients, evaluated as sum c_k * cos(k * 2*pi*x) over the
// symmetric position x = i/(N-1).
var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

var typeNames = map[Type]string{
	TypeRectangular: "rect",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
}

// String returns the canonical name of the window type.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return fmt.Sprintf("window.Type(%d)", int(t))
}

// Parse maps a window name to its Type. Recognized names are "rect",
// "hann", "hamming", and "blackman".
func Parse(name string) (Type, error) {
	for t, n := range typeNames {
		if n == name {
			return t, nil
		}
	}

	return TypeRectangular, fmt.Errorf("%w: %q", ErrUnknownWindow, name)
}

// Generate returns symmetric window coefficients of the given length.
// A length of 1 yields [1]; lengths <= 0 fail with ErrInvalidSize.
func Generate(t Type, length int) ([]float64, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: length %d", ErrInvalidSize, length)
	}

	if length == 1 {
		return []float64{1}, nil
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = eval(t, samplePosition(i, length))
	}

	return out, nil
}

func eval(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int) float64 {
	if size <= 1 {
		return 0
	}

	return float64(n) / float64(size-1)
}

// Apply multiplies samples with coefficients and returns a new slice.
func Apply(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, ErrLengthMismatch
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyInPlace multiplies samples with coefficients in place.
func ApplyInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return ErrLengthMismatch
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, fmt.Errorf("%w: empty coefficients", ErrInvalidSize)
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}
