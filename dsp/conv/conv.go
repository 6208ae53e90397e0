// Package conv provides linear convolution over the FFT kernel.
//
// Two strategies are offered: Direct time-domain convolution for short
// kernels, and FFT-based convolution that multiplies the zero-padded
// spectra elementwise and transforms back. Auto picks between them based
// on the length of the shorter operand.
package conv

import (
	"errors"

	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/cplx"
	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput  = errors.New("conv: empty input")
	ErrEmptyKernel = errors.New("conv: empty kernel")
)

// Kernels below this length convolve faster directly than through three
// transforms.
const fftThreshold = 32

// Direct performs time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	out := make([]float64, len(a)+len(b)-1)
	temp := make([]float64, len(b))

	for i, v := range a {
		vecmath.ScaleBlock(temp, b, v)
		vecmath.AddBlockInPlace(out[i:i+len(b)], temp)
	}

	return out, nil
}

// FFT performs linear convolution through the frequency domain: both
// inputs are zero-padded to the next power of two covering the full
// result, transformed, multiplied elementwise, and transformed back.
func FFT(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	outLen := len(a) + len(b) - 1
	size := core.NextPowerOfTwo(outLen)

	plan, err := fft.NewPlan(size)
	if err != nil {
		return nil, err
	}

	pa := make([]float64, size)
	copy(pa, a)
	pb := make([]float64, size)
	copy(pb, b)

	specA, err := plan.Forward(pa)
	if err != nil {
		return nil, err
	}

	specB, err := plan.Forward(pb)
	if err != nil {
		return nil, err
	}

	if err := cplx.MulInto(specA, specA, specB); err != nil {
		return nil, err
	}

	if err := plan.InverseInto(specA, specA); err != nil {
		return nil, err
	}

	out := make([]float64, outLen)
	copy(out, specA.Re[:outLen])

	return out, nil
}

// Auto convolves a and b, choosing Direct when the shorter of the two
// operands is below the threshold and FFT otherwise.
func Auto(a, b []float64) ([]float64, error) {
	k := len(b)
	if len(a) < k {
		k = len(a)
	}

	if k < fftThreshold {
		return Direct(a, b)
	}

	return FFT(a, b)
}
