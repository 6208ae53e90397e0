package cplx

import "math"

// The write-into forms tolerate dst aliasing one of the inputs: every
// iteration loads the i-th operands before storing the i-th result.
// Offset-aliased slices are not supported.

// Scale returns a * s for a real scalar s.
func Scale(a *Buffer, s float64) *Buffer {
	out := New(a.Len())
	_ = ScaleInto(out, a, s)

	return out
}

// ScaleInto computes dst = a * s for a real scalar s.
func ScaleInto(dst, a *Buffer, s float64) error {
	if dst.Len() != a.Len() {
		return ErrLengthMismatch
	}

	for i := range a.Re {
		dst.Re[i] = a.Re[i] * s
		dst.Im[i] = a.Im[i] * s
	}

	return nil
}

// Add returns the elementwise sum a + b.
func Add(a, b *Buffer) (*Buffer, error) {
	if a.Len() != b.Len() {
		return nil, ErrLengthMismatch
	}

	out := New(a.Len())
	if err := AddInto(out, a, b); err != nil {
		return nil, err
	}

	return out, nil
}

// AddInto computes dst = a + b elementwise.
func AddInto(dst, a, b *Buffer) error {
	if a.Len() != b.Len() || dst.Len() != a.Len() {
		return ErrLengthMismatch
	}

	for i := range a.Re {
		dst.Re[i] = a.Re[i] + b.Re[i]
		dst.Im[i] = a.Im[i] + b.Im[i]
	}

	return nil
}

// Sub returns the elementwise difference a - b.
func Sub(a, b *Buffer) (*Buffer, error) {
	if a.Len() != b.Len() {
		return nil, ErrLengthMismatch
	}

	out := New(a.Len())
	if err := SubInto(out, a, b); err != nil {
		return nil, err
	}

	return out, nil
}

// SubInto computes dst = a - b elementwise.
func SubInto(dst, a, b *Buffer) error {
	if a.Len() != b.Len() || dst.Len() != a.Len() {
		return ErrLengthMismatch
	}

	for i := range a.Re {
		dst.Re[i] = a.Re[i] - b.Re[i]
		dst.Im[i] = a.Im[i] - b.Im[i]
	}

	return nil
}

// Mul returns the Hadamard (elementwise) product a * b.
func Mul(a, b *Buffer) (*Buffer, error) {
	if a.Len() != b.Len() {
		return nil, ErrLengthMismatch
	}

	out := New(a.Len())
	if err := MulInto(out, a, b); err != nil {
		return nil, err
	}

	return out, nil
}

// MulInto computes dst = a * b elementwise.
func MulInto(dst, a, b *Buffer) error {
	if a.Len() != b.Len() || dst.Len() != a.Len() {
		return ErrLengthMismatch
	}

	for i := range a.Re {
		ar, ai := a.Re[i], a.Im[i]
		br, bi := b.Re[i], b.Im[i]
		dst.Re[i] = ar*br - ai*bi
		dst.Im[i] = ar*bi + ai*br
	}

	return nil
}

// MulScalar returns a multiplied by the complex scalar (re, im).
func MulScalar(a *Buffer, re, im float64) *Buffer {
	out := New(a.Len())
	_ = MulScalarInto(out, a, re, im)

	return out
}

// MulScalarInto computes dst = a * (re, im) elementwise.
func MulScalarInto(dst, a *Buffer, re, im float64) error {
	if dst.Len() != a.Len() {
		return ErrLengthMismatch
	}

	for i := range a.Re {
		ar, ai := a.Re[i], a.Im[i]
		dst.Re[i] = ar*re - ai*im
		dst.Im[i] = ar*im + ai*re
	}

	return nil
}

// Div returns the elementwise quotient a / b.
//
// Division by a complex zero is not guarded; it produces Inf or NaN parts
// per IEEE-754 semantics.
func Div(a, b *Buffer) (*Buffer, error) {
	if a.Len() != b.Len() {
		return nil, ErrLengthMismatch
	}

	out := New(a.Len())
	if err := DivInto(out, a, b); err != nil {
		return nil, err
	}

	return out, nil
}

// DivInto computes dst = a / b elementwise.
func DivInto(dst, a, b *Buffer) error {
	if a.Len() != b.Len() || dst.Len() != a.Len() {
		return ErrLengthMismatch
	}

	for i := range a.Re {
		ar, ai := a.Re[i], a.Im[i]
		br, bi := b.Re[i], b.Im[i]
		den := br*br + bi*bi
		dst.Re[i] = (ar*br + ai*bi) / den
		dst.Im[i] = (ai*br - ar*bi) / den
	}

	return nil
}

// DivScalar returns a divided by the complex scalar (re, im).
func DivScalar(a *Buffer, re, im float64) *Buffer {
	out := New(a.Len())
	_ = DivScalarInto(out, a, re, im)

	return out
}

// DivScalarInto computes dst = a / (re, im) elementwise.
func DivScalarInto(dst, a *Buffer, re, im float64) error {
	den := re*re + im*im

	return MulScalarInto(dst, a, re/den, -im/den)
}

// Conj returns the elementwise complex conjugate of a.
func Conj(a *Buffer) *Buffer {
	out := New(a.Len())
	_ = ConjInto(out, a)

	return out
}

// ConjInto computes dst = conj(a) elementwise.
func ConjInto(dst, a *Buffer) error {
	if dst.Len() != a.Len() {
		return ErrLengthMismatch
	}

	for i := range a.Re {
		dst.Re[i] = a.Re[i]
		dst.Im[i] = -a.Im[i]
	}

	return nil
}

// CopyInto copies a into dst.
func CopyInto(dst, a *Buffer) error {
	if dst.Len() != a.Len() {
		return ErrLengthMismatch
	}

	copy(dst.Re, a.Re)
	copy(dst.Im, a.Im)

	return nil
}

// Magnitude returns |a[i]| for every element.
//
// math.Hypot is used so magnitudes near the overflow boundary do not blow
// up through the intermediate squares.
func Magnitude(a *Buffer) []float64 {
	out := make([]float64, a.Len())
	_ = MagnitudeInto(out, a)

	return out
}

// MagnitudeInto computes dst[i] = |a[i]| for every element.
func MagnitudeInto(dst []float64, a *Buffer) error {
	if len(dst) != a.Len() {
		return ErrLengthMismatch
	}

	for i := range a.Re {
		dst[i] = math.Hypot(a.Re[i], a.Im[i])
	}

	return nil
}

// Phase returns arg(a[i]) in radians for every element, in (-pi, pi].
func Phase(a *Buffer) []float64 {
	out := make([]float64, a.Len())
	_ = PhaseInto(out, a)

	return out
}

// PhaseInto computes dst[i] = atan2(Im a[i], Re a[i]) for every element.
func PhaseInto(dst []float64, a *Buffer) error {
	if len(dst) != a.Len() {
		return ErrLengthMismatch
	}

	for i := range a.Re {
		dst[i] = math.Atan2(a.Im[i], a.Re[i])
	}

	return nil
}
