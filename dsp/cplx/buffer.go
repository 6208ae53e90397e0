package cplx

// Buffer holds a complex vector in split form: parallel real and imaginary
// slices of equal length. The split layout keeps pairwise arithmetic
// cache-friendly and lets real-valued projections reuse vector kernels.
type Buffer struct {
	Re []float64
	Im []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}

	return &Buffer{
		Re: make([]float64, length),
		Im: make([]float64, length),
	}
}

// Full returns a Buffer with every element set to the complex value (re, im).
func Full(length int, re, im float64) *Buffer {
	b := New(length)
	for i := range b.Re {
		b.Re[i] = re
		b.Im[i] = im
	}

	return b
}

// FromParts wraps existing real and imaginary slices without copying.
// Both slices must have the same length.
func FromParts(re, im []float64) (*Buffer, error) {
	if len(re) != len(im) {
		return nil, ErrLengthMismatch
	}

	return &Buffer{Re: re, Im: im}, nil
}

// FromReal returns a Buffer whose real part is a copy of re and whose
// imaginary part is zero.
func FromReal(re []float64) *Buffer {
	b := New(len(re))
	copy(b.Re, re)

	return b
}

// FromComplex returns a split Buffer holding the values of in.
func FromComplex(in []complex128) *Buffer {
	b := New(len(in))
	for i, c := range in {
		b.Re[i] = real(c)
		b.Im[i] = imag(c)
	}

	return b
}

// Len returns the number of complex elements.
func (b *Buffer) Len() int {
	return len(b.Re)
}

// At returns the element at index i as a complex128.
func (b *Buffer) At(i int) complex128 {
	return complex(b.Re[i], b.Im[i])
}

// SetAt stores the complex value c at index i.
func (b *Buffer) SetAt(i int, c complex128) {
	b.Re[i] = real(c)
	b.Im[i] = imag(c)
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	out := New(b.Len())
	copy(out.Re, b.Re)
	copy(out.Im, b.Im)

	return out
}

// Zero sets both parts to 0.
func (b *Buffer) Zero() {
	for i := range b.Re {
		b.Re[i] = 0
		b.Im[i] = 0
	}
}

// Complex returns the buffer contents as a freshly allocated []complex128.
func (b *Buffer) Complex() []complex128 {
	out := make([]complex128, b.Len())
	for i := range out {
		out[i] = complex(b.Re[i], b.Im[i])
	}

	return out
}
