package spectrum

import "math"

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities
// removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}

	out := make([]float64, len(phase))
	out[0] = phase[0]

	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}

		out[i] = phase[i] + offset
	}

	return out
}

// WrapPhase reduces an angle into (-pi, pi].
func WrapPhase(angle float64) float64 {
	out := math.Mod(angle, 2*math.Pi)
	if out > math.Pi {
		out -= 2 * math.Pi
	} else if out <= -math.Pi {
		out += 2 * math.Pi
	}

	return out
}
