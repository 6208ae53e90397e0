package spectrum

import (
	"fmt"

	"github.com/cwbudde/algo-spectral/dsp/buffer"
	"github.com/cwbudde/algo-spectral/dsp/core"
	"github.com/cwbudde/algo-spectral/dsp/cplx"
	"github.com/cwbudde/algo-spectral/dsp/fft"
	"github.com/cwbudde/algo-spectral/dsp/window"
	"github.com/cwbudde/algo-vecmath"
)

// Peak describes the selected spectral peak.
type Peak struct {
	Index     int
	Frequency float64
	Amplitude float64
	Phase     float64
}

// Result bundles the output of a spectrum computation. All slices share
// the same length: N/2+1 bins for one-sided output, N for two-sided.
type Result struct {
	Frequencies []float64
	Amplitude   []float64
	Phase       []float64
	Peak        Peak
}

var framePool = buffer.NewPool()

// Compute runs the full analysis pipeline on a real sample sequence:
// frame assembly (zero-pad or truncate to the FFT size), windowing,
// forward transform, amplitude scaling, phase extraction, frequency axis,
// and peak detection.
//
// Without WithFFTSize the transform size defaults to the next power of two
// >= len(samples), with a minimum of 1.
func Compute(samples []float64, opts ...Option) (*Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if cfg.sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be > 0, got %v", ErrInvalidArgument, cfg.sampleRate)
	}

	size := cfg.fftSize
	if size == 0 {
		size = core.NextPowerOfTwo(len(samples))
	}

	plan, err := fft.NewPlan(size)
	if err != nil {
		return nil, err
	}

	coeffs, err := window.Generate(cfg.window, size)
	if err != nil {
		return nil, err
	}

	frame := framePool.Get(size)
	defer framePool.Put(frame)

	frame.Frame(samples, size)
	if err := window.ApplyInPlace(frame.Samples(), coeffs); err != nil {
		return nil, err
	}

	bins, err := plan.Forward(frame.Samples())
	if err != nil {
		return nil, err
	}

	return Analyze(bins, cfg.sampleRate, cfg.sides)
}

// Analyze projects an already transformed spectrum into amplitude, phase,
// frequency axis, and peak. bins must hold the unnormalized forward DFT of
// a length-N frame.
func Analyze(bins *cplx.Buffer, sampleRate float64, sides Sides) (*Result, error) {
	n := bins.Len()

	freqs, err := BinFrequencies(n, sampleRate, sides)
	if err != nil {
		return nil, err
	}

	amp := Amplitude(bins, sides)

	phase := cplx.Phase(bins)[:len(amp)]

	res := &Result{
		Frequencies: freqs,
		Amplitude:   amp,
		Phase:       phase,
	}
	res.Peak = FindPeak(res.Amplitude, res.Frequencies, res.Phase)

	return res, nil
}

// Amplitude scales raw magnitude bins into amplitude.
//
// One-sided output has N/2+1 bins; every bin is scaled by 1/N and the
// non-DC, non-Nyquist bins are doubled to fold in the energy of their
// negative-frequency mirrors. Two-sided output keeps all N bins at 1/N.
func Amplitude(bins *cplx.Buffer, sides Sides) []float64 {
	n := bins.Len()
	if n == 0 {
		return nil
	}

	mag := cplx.Magnitude(bins)

	if sides == TwoSided {
		out := make([]float64, n)
		vecmath.ScaleBlock(out, mag, 1/float64(n))

		return out
	}

	m := n/2 + 1
	out := make([]float64, m)
	vecmath.ScaleBlock(out, mag[:m], 1/float64(n))

	for k := 1; k < m; k++ {
		if n%2 == 0 && k == n/2 {
			continue
		}

		out[k] *= 2
	}

	return out
}

// BinFrequencies returns the frequency of each output bin,
// freq[k] = k * sampleRate / size. size and sampleRate must be positive.
func BinFrequencies(size int, sampleRate float64, sides Sides) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size must be > 0, got %d", ErrInvalidArgument, size)
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be > 0, got %v", ErrInvalidArgument, sampleRate)
	}

	m := size
	if sides == OneSided {
		m = size/2 + 1
	}

	out := make([]float64, m)
	step := sampleRate / float64(size)
	for k := range out {
		out[k] = float64(k) * step
	}

	return out, nil
}

// FindPeak selects the dominant spectral peak, preferring tonal content
// over DC bias: the largest bin with k >= 1 wins whenever any such bin is
// strictly positive; only zero and pure-DC spectra report bin 0.
func FindPeak(amp, freqs, phase []float64) Peak {
	if len(amp) == 0 {
		return Peak{}
	}

	maxIndex := 0
	maxValue := amp[0]

	nonDCIndex := 0
	nonDCValue := 0.0
	hasNonDC := false

	for k := 1; k < len(amp); k++ {
		v := amp[k]
		if v > maxValue {
			maxIndex = k
			maxValue = v
		}

		if !hasNonDC || v > nonDCValue {
			nonDCIndex = k
			nonDCValue = v
			hasNonDC = nonDCValue > 0
		}
	}

	index := maxIndex
	if hasNonDC {
		index = nonDCIndex
	}

	return Peak{
		Index:     index,
		Frequency: freqs[index],
		Amplitude: amp[index],
		Phase:     phase[index],
	}
}
