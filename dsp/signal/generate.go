package signal

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidArgument is returned for non-positive lengths or sample rates
// and negative amplitudes.
var ErrInvalidArgument = errors.New("signal: invalid argument")

// Generator creates deterministic signals at a fixed sample rate.
type Generator struct {
	sampleRate float64
	seed       int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed used for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the given sample rate.
func NewGenerator(sampleRate float64, opts ...Option) (*Generator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate must be > 0, got %v", ErrInvalidArgument, sampleRate)
	}

	g := &Generator{
		sampleRate: sampleRate,
		seed:       1,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}

	return g, nil
}

// SampleRate returns the configured sample rate.
func (g *Generator) SampleRate() float64 {
	return g.sampleRate
}

// Sine generates a sine wave at freqHz.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: samples must be > 0, got %d", ErrInvalidArgument, samples)
	}

	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}

	return out, nil
}

// Chirp generates a linear frequency sweep from f0 at time zero, rising by
// rate Hz per second.
func (g *Generator) Chirp(f0, rate, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: samples must be > 0, got %d", ErrInvalidArgument, samples)
	}

	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / g.sampleRate
		out[i] = amplitude * math.Sin(2*math.Pi*(f0*t+0.5*rate*t*t))
	}

	return out, nil
}

// Impulse generates a unit impulse at the given offset.
func (g *Generator) Impulse(offset, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: samples must be > 0, got %d", ErrInvalidArgument, samples)
	}

	if offset < 0 || offset >= samples {
		return nil, fmt.Errorf("%w: impulse offset %d outside [0, %d)", ErrInvalidArgument, offset, samples)
	}

	out := make([]float64, samples)
	out[offset] = 1

	return out, nil
}

// WhiteNoise generates seeded uniform noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("%w: samples must be > 0, got %d", ErrInvalidArgument, samples)
	}

	if amplitude < 0 {
		return nil, fmt.Errorf("%w: amplitude must be >= 0, got %v", ErrInvalidArgument, amplitude)
	}

	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}

	return out, nil
}

// Normalize scales data to the target peak amplitude and returns a new
// slice. All-zero input stays zero.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("%w: target peak must be >= 0, got %v", ErrInvalidArgument, targetPeak)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidArgument)
	}

	maxAbs := 0.0
	for _, v := range data {
		if av := math.Abs(v); av > maxAbs {
			maxAbs = av
		}
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}

	return out, nil
}
