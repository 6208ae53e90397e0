// Package fft implements the radix-2 iterative Cooley-Tukey transform over
// split complex buffers.
//
// A Plan precomputes the bit-reversal permutation and per-stage twiddle
// tables for one power-of-two size. Forward transforms are unnormalized;
// the inverse applies the single 1/N normalization, so Inverse(Forward(x))
// recovers x up to floating-point error.
//
//	plan, err := fft.NewPlan(1024)
//	spec, err := plan.Forward(samples)
//
// Plans are immutable and may be shared across goroutines. The ...Into
// variants write into caller-supplied buffers; for the complex transforms
// the destination may be the input itself for an in-place transform.
package fft
