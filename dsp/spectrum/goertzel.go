package spectrum

import (
	"fmt"
	"math"
)

// Goertzel evaluates a single DFT bin without computing a full transform.
//
// The analyzer is stateful: Power and Magnitude reflect every sample
// processed since the last Reset. It is useful when only one or a few
// frequencies matter, such as pilot-tone probing, where a full FFT would
// be wasted work.
//
// Frequencies that do not align with an integer number of cycles in the
// processed block leak into neighboring bins; window the input first to
// trade leakage for main-lobe width.
type Goertzel struct {
	frequency  float64
	sampleRate float64
	coeff      float64
	s0, s1     float64
}

// NewGoertzel creates an analyzer for the target frequency.
// frequency must be between 0 and sampleRate/2.
func NewGoertzel(frequency, sampleRate float64) (*Goertzel, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("%w: goertzel sample rate must be > 0, got %v", ErrInvalidArgument, sampleRate)
	}

	if frequency < 0 || frequency > sampleRate/2 || math.IsNaN(frequency) || math.IsInf(frequency, 0) {
		return nil, fmt.Errorf("%w: goertzel frequency must be between 0 and sampleRate/2, got %v", ErrInvalidArgument, frequency)
	}

	return &Goertzel{
		frequency:  frequency,
		sampleRate: sampleRate,
		coeff:      2 * math.Cos(2*math.Pi*frequency/sampleRate),
	}, nil
}

// Reset clears the internal state.
func (g *Goertzel) Reset() {
	g.s0 = 0
	g.s1 = 0
}

// ProcessSample updates the internal state with a single input sample.
func (g *Goertzel) ProcessSample(input float64) {
	s := input + g.coeff*g.s0 - g.s1
	g.s1 = g.s0
	g.s0 = s
}

// ProcessBlock updates the internal state with a block of samples.
func (g *Goertzel) ProcessBlock(input []float64) {
	s0, s1 := g.s0, g.s1

	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	g.s0, g.s1 = s0, s1
}

// Power returns the squared magnitude of the frequency component,
// equivalent to |X[k]|^2 from a DFT of the processed block length.
func (g *Goertzel) Power() float64 {
	return g.s0*g.s0 + g.s1*g.s1 - g.coeff*g.s0*g.s1
}

// Magnitude returns the magnitude of the frequency component.
func (g *Goertzel) Magnitude() float64 {
	p := g.Power()
	if p <= 0 {
		return 0
	}

	return math.Sqrt(p)
}

// Frequency returns the target frequency.
func (g *Goertzel) Frequency() float64 { return g.frequency }

// SampleRate returns the sample rate.
func (g *Goertzel) SampleRate() float64 { return g.sampleRate }

// BinPower computes the Goertzel power of one frequency over input in a
// single shot.
func BinPower(input []float64, frequency, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(frequency, sampleRate)
	if err != nil {
		return 0, err
	}

	g.ProcessBlock(input)

	return g.Power(), nil
}
