package fft

import (
	"github.com/cwbudde/algo-spectral/dsp/cplx"
)

// Forward computes the unnormalized forward DFT of a real input sequence.
// The input length must equal the plan size.
func (p *Plan) Forward(in []float64) (*cplx.Buffer, error) {
	out := cplx.New(p.size)
	if err := p.ForwardInto(out, in); err != nil {
		return nil, err
	}

	return out, nil
}

// ForwardInto computes the unnormalized forward DFT of a real input
// sequence into dst. dst is overwritten; on error it is left untouched.
func (p *Plan) ForwardInto(dst *cplx.Buffer, in []float64) error {
	if len(in) != p.size {
		return ErrLengthMismatch
	}
	if dst.Len() != p.size {
		return ErrLengthMismatch
	}

	for i, v := range in {
		j := p.rev[i]
		dst.Re[j] = v
		dst.Im[j] = 0
	}

	p.butterflies(dst, false)

	return nil
}

// ForwardComplex computes the unnormalized forward DFT of a complex input.
func (p *Plan) ForwardComplex(in *cplx.Buffer) (*cplx.Buffer, error) {
	out := cplx.New(p.size)
	if err := p.ForwardComplexInto(out, in); err != nil {
		return nil, err
	}

	return out, nil
}

// ForwardComplexInto computes the unnormalized forward DFT of a complex
// input into dst. dst may be the input buffer itself, in which case the
// transform runs fully in place.
func (p *Plan) ForwardComplexInto(dst, in *cplx.Buffer) error {
	if err := p.permute(dst, in); err != nil {
		return err
	}

	p.butterflies(dst, false)

	return nil
}

// Inverse computes the inverse DFT normalized by 1/N, so that
// Inverse(Forward(x)) recovers x up to floating-point error.
func (p *Plan) Inverse(in *cplx.Buffer) (*cplx.Buffer, error) {
	out := cplx.New(p.size)
	if err := p.InverseInto(out, in); err != nil {
		return nil, err
	}

	return out, nil
}

// InverseInto computes the normalized inverse DFT into dst. dst may be the
// input buffer itself, in which case the transform runs fully in place.
func (p *Plan) InverseInto(dst, in *cplx.Buffer) error {
	if err := p.permute(dst, in); err != nil {
		return err
	}

	p.butterflies(dst, true)

	scale := 1 / float64(p.size)
	for i := range dst.Re {
		dst.Re[i] *= scale
		dst.Im[i] *= scale
	}

	return nil
}

// permute scatters in into dst in bit-reversed order. When dst and in are
// the same buffer the permutation is applied via index swaps instead.
func (p *Plan) permute(dst, in *cplx.Buffer) error {
	if in.Len() != p.size || dst.Len() != p.size {
		return ErrLengthMismatch
	}

	if dst == in {
		for i, j := range p.rev {
			if j > i {
				dst.Re[i], dst.Re[j] = dst.Re[j], dst.Re[i]
				dst.Im[i], dst.Im[j] = dst.Im[j], dst.Im[i]
			}
		}

		return nil
	}

	for i, j := range p.rev {
		dst.Re[j] = in.Re[i]
		dst.Im[j] = in.Im[i]
	}

	return nil
}

// butterflies runs the iterative Cooley-Tukey passes over buf. The twiddle
// tables store the forward convention exp(-2*pi*i*k/m); the inverse reuses
// them with the sine sign flipped and leaves normalization to the caller.
func (p *Plan) butterflies(buf *cplx.Buffer, inverse bool) {
	re := buf.Re
	im := buf.Im

	sign := 1.0
	if inverse {
		sign = -1.0
	}

	for s := 1; s <= p.log2n; s++ {
		m := 1 << s
		half := m >> 1
		st := p.stages[s-1]

		for start := 0; start < p.size; start += m {
			for j := 0; j < half; j++ {
				wr := st.cos[j]
				wi := sign * st.sin[j]

				lo := start + j
				hi := lo + half

				tr := wr*re[hi] - wi*im[hi]
				ti := wr*im[hi] + wi*re[hi]

				re[hi] = re[lo] - tr
				im[hi] = im[lo] - ti
				re[lo] += tr
				im[lo] += ti
			}
		}
	}
}
