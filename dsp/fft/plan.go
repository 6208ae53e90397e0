package fft

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectral/dsp/core"
)

// stage holds the twiddle factors for one butterfly pass. Stage s operates
// on blocks of size m = 2^s and carries m/2 factors exp(-2*pi*i*k/m).
type stage struct {
	cos []float64
	sin []float64
}

// Plan holds the precomputed state for radix-2 transforms of one size:
// the bit-reversal permutation and per-stage twiddle tables.
//
// A Plan is immutable after construction and safe for concurrent use by
// multiple goroutines. Create one per size and reuse it across transforms.
type Plan struct {
	size   int
	log2n  int
	rev    []int
	stages []stage
}

// NewPlan returns a Plan for transforms of the given size.
// The size must be a positive power of two.
func NewPlan(size int) (*Plan, error) {
	if !core.IsPowerOfTwo(size) {
		return nil, fmt.Errorf("%w: plan size must be a positive power of two, got %d", ErrInvalidSize, size)
	}

	p := &Plan{
		size:  size,
		log2n: core.Log2(size),
	}

	p.rev = bitReversal(size, p.log2n)
	p.stages = twiddleStages(p.log2n)

	return p, nil
}

// Size returns the transform size the plan was built for.
func (p *Plan) Size() int {
	return p.size
}

func bitReversal(size, log2n int) []int {
	rev := make([]int, size)
	for i := range rev {
		r := 0
		v := i
		for b := 0; b < log2n; b++ {
			r = r<<1 | v&1
			v >>= 1
		}

		rev[i] = r
	}

	return rev
}

func twiddleStages(log2n int) []stage {
	stages := make([]stage, log2n)
	for s := 1; s <= log2n; s++ {
		m := 1 << s
		half := m >> 1

		st := stage{
			cos: make([]float64, half),
			sin: make([]float64, half),
		}

		for k := 0; k < half; k++ {
			angle := -2 * math.Pi * float64(k) / float64(m)
			st.cos[k] = math.Cos(angle)
			st.sin[k] = math.Sin(angle)
		}

		stages[s-1] = st
	}

	return stages
}
