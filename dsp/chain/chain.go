package chain

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/cplx"
)

// Errors returned by chain evaluation.
var (
	// ErrNotInvertible is returned by Inverse when the chain contains an
	// operation whose inverse is ill-defined, such as multiplication by a
	// vector with zero entries.
	ErrNotInvertible = errors.New("chain: not invertible")
)

// NonZero is a multiplicative factor that is known to be non-zero.
// Construct one with NewNonZero; using it keeps a chain provably
// invertible without a runtime zero scan.
type NonZero struct {
	re, im float64
}

// NewNonZero validates that (re, im) is not the complex zero.
func NewNonZero(re, im float64) (NonZero, error) {
	if re == 0 && im == 0 {
		return NonZero{}, fmt.Errorf("%w: factor must be non-zero", ErrNotInvertible)
	}

	return NonZero{re: re, im: im}, nil
}

// inverse ops are replayed in reverse order by Inverse.
type op struct {
	invert func(*cplx.Buffer) error
}

// Chain applies a sequence of elementwise operations to a working complex
// buffer while tracking whether the accumulated transformation still has a
// well-defined inverse.
//
// Each step mutates the working buffer in place and records its inverse.
// Steps whose inverse cannot be guaranteed, such as multiplication by a
// vector containing zeros, mark the chain as non-invertible; Inverse then
// reports ErrNotInvertible instead of producing poisoned output.
//
// The first length mismatch or other step error sticks: later steps are
// no-ops and Value/Inverse surface the error.
type Chain struct {
	buf        *cplx.Buffer
	ops        []op
	invertible bool
	err        error
}

// From starts a chain over a copy of src; src itself is never mutated.
func From(src *cplx.Buffer) *Chain {
	return &Chain{
		buf:        src.Copy(),
		invertible: true,
	}
}

func (c *Chain) step(apply func(*cplx.Buffer) error, invert func(*cplx.Buffer) error, invertible bool) *Chain {
	if c.err != nil {
		return c
	}

	if err := apply(c.buf); err != nil {
		c.err = err

		return c
	}

	if !invertible {
		c.invertible = false
	}

	c.ops = append(c.ops, op{invert: invert})

	return c
}

// Scale multiplies every element by the real scalar s.
// A zero scalar makes the chain non-invertible.
func (c *Chain) Scale(s float64) *Chain {
	return c.step(
		func(b *cplx.Buffer) error { return cplx.ScaleInto(b, b, s) },
		func(b *cplx.Buffer) error { return cplx.ScaleInto(b, b, 1/s) },
		s != 0,
	)
}

// ScaleNonZero multiplies every element by a factor already proven
// non-zero, preserving invertibility by construction.
func (c *Chain) ScaleNonZero(s NonZero) *Chain {
	return c.step(
		func(b *cplx.Buffer) error { return cplx.MulScalarInto(b, b, s.re, s.im) },
		func(b *cplx.Buffer) error { return cplx.DivScalarInto(b, b, s.re, s.im) },
		true,
	)
}

// MulScalar multiplies every element by the complex scalar (re, im).
// The complex zero makes the chain non-invertible.
func (c *Chain) MulScalar(re, im float64) *Chain {
	return c.step(
		func(b *cplx.Buffer) error { return cplx.MulScalarInto(b, b, re, im) },
		func(b *cplx.Buffer) error { return cplx.DivScalarInto(b, b, re, im) },
		re != 0 || im != 0,
	)
}

// Add adds v elementwise.
func (c *Chain) Add(v *cplx.Buffer) *Chain {
	return c.step(
		func(b *cplx.Buffer) error { return cplx.AddInto(b, b, v) },
		func(b *cplx.Buffer) error { return cplx.SubInto(b, b, v) },
		true,
	)
}

// Sub subtracts v elementwise.
func (c *Chain) Sub(v *cplx.Buffer) *Chain {
	return c.step(
		func(b *cplx.Buffer) error { return cplx.SubInto(b, b, v) },
		func(b *cplx.Buffer) error { return cplx.AddInto(b, b, v) },
		true,
	)
}

// Mul multiplies elementwise by v. If v contains a zero element the chain
// becomes non-invertible.
func (c *Chain) Mul(v *cplx.Buffer) *Chain {
	return c.step(
		func(b *cplx.Buffer) error { return cplx.MulInto(b, b, v) },
		func(b *cplx.Buffer) error { return cplx.DivInto(b, b, v) },
		!hasZero(v),
	)
}

// Div divides elementwise by v. If v contains a zero element the result
// carries NaN at that position and the chain becomes non-invertible.
func (c *Chain) Div(v *cplx.Buffer) *Chain {
	return c.step(
		func(b *cplx.Buffer) error { return cplx.DivInto(b, b, v) },
		func(b *cplx.Buffer) error { return cplx.MulInto(b, b, v) },
		!hasZero(v),
	)
}

// Conj conjugates every element. Conjugation is its own inverse.
func (c *Chain) Conj() *Chain {
	return c.step(
		func(b *cplx.Buffer) error { return cplx.ConjInto(b, b) },
		func(b *cplx.Buffer) error { return cplx.ConjInto(b, b) },
		true,
	)
}

// Err returns the first error encountered by a step, if any.
func (c *Chain) Err() error {
	return c.err
}

// Invertible reports whether every recorded step has a well-defined
// inverse.
func (c *Chain) Invertible() bool {
	return c.err == nil && c.invertible
}

// Value returns a copy of the working buffer.
func (c *Chain) Value() (*cplx.Buffer, error) {
	if c.err != nil {
		return nil, c.err
	}

	return c.buf.Copy(), nil
}

// Inverse undoes the recorded operations on a copy of the working buffer,
// recovering the chain's starting value. It fails with ErrNotInvertible
// when any step's inverse is ill-defined.
func (c *Chain) Inverse() (*cplx.Buffer, error) {
	if c.err != nil {
		return nil, c.err
	}

	if !c.invertible {
		return nil, ErrNotInvertible
	}

	out := c.buf.Copy()
	for i := len(c.ops) - 1; i >= 0; i-- {
		if err := c.ops[i].invert(out); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func hasZero(v *cplx.Buffer) bool {
	for i := range v.Re {
		if v.Re[i] == 0 && v.Im[i] == 0 {
			return true
		}
	}

	return false
}
