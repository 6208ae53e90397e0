package cplx

import (
	"math"
	"testing"
)

func buffersNearlyEqual(t *testing.T, got, want *Buffer, eps float64) {
	t.Helper()

	if got.Len() != want.Len() {
		t.Fatalf("length mismatch: got=%d want=%d", got.Len(), want.Len())
	}

	for i := range want.Re {
		if math.Abs(got.Re[i]-want.Re[i]) > eps || math.Abs(got.Im[i]-want.Im[i]) > eps {
			t.Fatalf("element %d: got=(%g,%g) want=(%g,%g)",
				i, got.Re[i], got.Im[i], want.Re[i], want.Im[i])
		}
	}
}

func TestConstructors(t *testing.T) {
	b := New(4)
	if b.Len() != 4 {
		t.Fatalf("New length: got=%d want=4", b.Len())
	}

	for i := range b.Re {
		if b.Re[i] != 0 || b.Im[i] != 0 {
			t.Fatalf("New not zeroed at %d", i)
		}
	}

	f := Full(3, 1.5, -2.5)
	for i := 0; i < 3; i++ {
		if f.Re[i] != 1.5 || f.Im[i] != -2.5 {
			t.Fatalf("Full element %d: got=(%g,%g)", i, f.Re[i], f.Im[i])
		}
	}

	if _, err := FromParts([]float64{1, 2}, []float64{1}); err != ErrLengthMismatch {
		t.Fatalf("FromParts mismatch: got=%v want=%v", err, ErrLengthMismatch)
	}

	r := FromReal([]float64{1, 2, 3})
	if r.Re[2] != 3 || r.Im[2] != 0 {
		t.Fatalf("FromReal element 2: got=(%g,%g)", r.Re[2], r.Im[2])
	}
}

func TestCopyIsDeep(t *testing.T) {
	a := Full(2, 1, 1)

	c := a.Copy()
	c.Re[0] = 99

	if a.Re[0] != 1 {
		t.Fatalf("Copy aliases source")
	}
}

func TestAddSub(t *testing.T) {
	a := FromComplex([]complex128{1 + 2i, 3 - 1i})
	b := FromComplex([]complex128{-1 + 1i, 2 + 2i})

	sum, err := Add(a, b)
	if err != nil {
		t.Fatalf("Add error: %v", err)
	}

	buffersNearlyEqual(t, sum, FromComplex([]complex128{0 + 3i, 5 + 1i}), 1e-15)

	diff, err := Sub(sum, b)
	if err != nil {
		t.Fatalf("Sub error: %v", err)
	}

	buffersNearlyEqual(t, diff, a, 1e-15)

	if _, err := Add(a, New(3)); err != ErrLengthMismatch {
		t.Fatalf("Add mismatch: got=%v want=%v", err, ErrLengthMismatch)
	}
}

func TestMulMatchesComplexArithmetic(t *testing.T) {
	a := FromComplex([]complex128{1 + 2i, -3 + 0.5i, 0})
	b := FromComplex([]complex128{2 - 1i, 4 + 4i, 5 + 5i})

	got, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul error: %v", err)
	}

	for i := 0; i < a.Len(); i++ {
		want := a.At(i) * b.At(i)
		if math.Abs(got.Re[i]-real(want)) > 1e-14 || math.Abs(got.Im[i]-imag(want)) > 1e-14 {
			t.Fatalf("Mul[%d]: got=%v want=%v", i, got.At(i), want)
		}
	}
}

func TestDivMatchesComplexArithmetic(t *testing.T) {
	a := FromComplex([]complex128{1 + 2i, -3 + 0.5i, 7 - 1i})
	b := FromComplex([]complex128{2 - 1i, 4 + 4i, 0.5 + 0.25i})

	got, err := Div(a, b)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}

	for i := 0; i < a.Len(); i++ {
		want := a.At(i) / b.At(i)
		if math.Abs(got.Re[i]-real(want)) > 1e-12 || math.Abs(got.Im[i]-imag(want)) > 1e-12 {
			t.Fatalf("Div[%d]: got=%v want=%v", i, got.At(i), want)
		}
	}
}

func TestDivByZeroPropagates(t *testing.T) {
	a := FromComplex([]complex128{1 + 1i})
	b := New(1)

	got, err := Div(a, b)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}

	if !math.IsInf(got.Re[0], 0) && !math.IsNaN(got.Re[0]) {
		t.Fatalf("expected Inf/NaN real part, got %g", got.Re[0])
	}
}

func TestScalarOps(t *testing.T) {
	a := FromComplex([]complex128{1 + 2i, -1 - 1i})

	scaled := Scale(a, 2)
	buffersNearlyEqual(t, scaled, FromComplex([]complex128{2 + 4i, -2 - 2i}), 1e-15)

	ms := MulScalar(a, 0, 1) // rotate by i
	buffersNearlyEqual(t, ms, FromComplex([]complex128{-2 + 1i, 1 - 1i}), 1e-15)

	ds := DivScalar(ms, 0, 1)
	buffersNearlyEqual(t, ds, a, 1e-15)
}

func TestConjInvolution(t *testing.T) {
	a := FromComplex([]complex128{1 + 2i, -3 - 4i, 5})

	c := Conj(a)
	for i := range c.Im {
		if c.Im[i] != -a.Im[i] || c.Re[i] != a.Re[i] {
			t.Fatalf("Conj element %d wrong", i)
		}
	}

	buffersNearlyEqual(t, Conj(c), a, 0)
}

func TestMulByScaledOnesEqualsScale(t *testing.T) {
	a := FromComplex([]complex128{1 + 2i, -3 + 0.5i, 7 - 1i})
	ones := Full(a.Len(), 1, 0)

	viaMul, err := Mul(a, Scale(ones, 2.5))
	if err != nil {
		t.Fatalf("Mul error: %v", err)
	}

	buffersNearlyEqual(t, viaMul, Scale(a, 2.5), 1e-14)
}

func TestDivMulRoundTrip(t *testing.T) {
	a := FromComplex([]complex128{1 + 2i, -3 + 0.5i, 7 - 1i})
	b := FromComplex([]complex128{2 - 1i, 1 + 1i, -0.5 + 3i})

	prod, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul error: %v", err)
	}

	back, err := Div(prod, b)
	if err != nil {
		t.Fatalf("Div error: %v", err)
	}

	buffersNearlyEqual(t, back, a, 1e-12)
}

func TestMagnitudeUsesHypot(t *testing.T) {
	a := FromComplex([]complex128{3 + 4i, 0, complex(1e308, 1e308)})

	mag := Magnitude(a)
	if math.Abs(mag[0]-5) > 1e-12 {
		t.Fatalf("Magnitude[0]: got=%g want=5", mag[0])
	}

	if mag[1] != 0 {
		t.Fatalf("Magnitude[1]: got=%g want=0", mag[1])
	}

	// hypot survives where sqrt(re^2+im^2) would overflow
	if math.IsInf(mag[2], 0) {
		t.Fatalf("Magnitude[2] overflowed: %g", mag[2])
	}
}

func TestPhaseQuadrants(t *testing.T) {
	a := FromComplex([]complex128{1, -1, 1i, -1i})

	phase := Phase(a)
	want := []float64{0, math.Pi, math.Pi / 2, -math.Pi / 2}

	for i := range want {
		if math.Abs(phase[i]-want[i]) > 1e-15 {
			t.Fatalf("Phase[%d]: got=%g want=%g", i, phase[i], want[i])
		}
	}
}

func TestIntoFormsAliasing(t *testing.T) {
	src := FromComplex([]complex128{1 + 2i, -3 + 0.5i, 7 - 1i})
	other := FromComplex([]complex128{2 - 1i, 1 + 1i, -0.5 + 3i})

	cases := []struct {
		name      string
		aliased   func(dst *Buffer) error
		reference func() (*Buffer, error)
	}{
		{
			"ScaleInto",
			func(dst *Buffer) error { return ScaleInto(dst, dst, 3) },
			func() (*Buffer, error) { return Scale(src, 3), nil },
		},
		{
			"AddInto",
			func(dst *Buffer) error { return AddInto(dst, dst, other) },
			func() (*Buffer, error) { return Add(src, other) },
		},
		{
			"SubInto",
			func(dst *Buffer) error { return SubInto(dst, dst, other) },
			func() (*Buffer, error) { return Sub(src, other) },
		},
		{
			"MulInto",
			func(dst *Buffer) error { return MulInto(dst, dst, other) },
			func() (*Buffer, error) { return Mul(src, other) },
		},
		{
			"MulScalarInto",
			func(dst *Buffer) error { return MulScalarInto(dst, dst, 2, -1) },
			func() (*Buffer, error) { return MulScalar(src, 2, -1), nil },
		},
		{
			"DivInto",
			func(dst *Buffer) error { return DivInto(dst, dst, other) },
			func() (*Buffer, error) { return Div(src, other) },
		},
		{
			"DivScalarInto",
			func(dst *Buffer) error { return DivScalarInto(dst, dst, 2, -1) },
			func() (*Buffer, error) { return DivScalar(src, 2, -1), nil },
		},
		{
			"ConjInto",
			func(dst *Buffer) error { return ConjInto(dst, dst) },
			func() (*Buffer, error) { return Conj(src), nil },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			want, err := tc.reference()
			if err != nil {
				t.Fatalf("reference error: %v", err)
			}

			dst := src.Copy()
			if err := tc.aliased(dst); err != nil {
				t.Fatalf("aliased error: %v", err)
			}

			buffersNearlyEqual(t, dst, want, 0)
		})
	}
}

func TestIntoLengthMismatch(t *testing.T) {
	a := New(4)
	b := New(4)
	short := New(3)

	if err := AddInto(short, a, b); err != ErrLengthMismatch {
		t.Fatalf("AddInto short dst: got=%v want=%v", err, ErrLengthMismatch)
	}

	if err := MulInto(a, a, short); err != ErrLengthMismatch {
		t.Fatalf("MulInto short operand: got=%v want=%v", err, ErrLengthMismatch)
	}

	if err := MagnitudeInto(make([]float64, 3), a); err != ErrLengthMismatch {
		t.Fatalf("MagnitudeInto short dst: got=%v want=%v", err, ErrLengthMismatch)
	}
}

func TestNaNPropagates(t *testing.T) {
	a := FromComplex([]complex128{complex(math.NaN(), 0), 1 + 1i})
	b := Full(2, 2, 0)

	got, err := Mul(a, b)
	if err != nil {
		t.Fatalf("Mul error: %v", err)
	}

	if !math.IsNaN(got.Re[0]) {
		t.Fatalf("expected NaN to propagate, got %g", got.Re[0])
	}

	if got.Re[1] != 2 || got.Im[1] != 2 {
		t.Fatalf("clean element disturbed: %v", got.At(1))
	}
}
