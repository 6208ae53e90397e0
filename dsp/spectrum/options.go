package spectrum

import "github.com/cwbudde/algo-spectral/dsp/window"

// Sides selects between the one-sided and two-sided amplitude spectrum.
type Sides int

const (
	// OneSided keeps bins k in [0, N/2], doubling the non-DC/non-Nyquist
	// bins to fold in negative-frequency energy.
	OneSided Sides = iota

	// TwoSided keeps all N bins with uniform 1/N scaling.
	TwoSided
)

type config struct {
	sampleRate float64
	fftSize    int
	window     window.Type
	sides      Sides
}

func defaultConfig() config {
	return config{
		sampleRate: 1,
		window:     window.TypeRectangular,
		sides:      OneSided,
	}
}

// Option configures a spectrum computation.
type Option func(*config)

// WithSampleRate sets the sample rate used for the frequency axis.
func WithSampleRate(sampleRate float64) Option {
	return func(c *config) {
		c.sampleRate = sampleRate
	}
}

// WithFFTSize fixes the transform size instead of deriving it from the
// input length. A positive size must be a power of two, or Compute fails;
// a non-positive size is ignored and the automatic size is used.
func WithFFTSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.fftSize = size
		}
	}
}

// WithWindow selects the analysis window.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// WithSides selects one-sided or two-sided output.
func WithSides(s Sides) Option {
	return func(c *config) {
		c.sides = s
	}
}
