// Package spectrum turns real sample frames into calibrated amplitude and
// phase spectra.
//
// Compute runs the whole pipeline: the input is zero-padded or truncated
// to the transform size, windowed, transformed, and projected into
// amplitude, phase, frequency axis, and a detected peak. Amplitude
// calibration is sinusoid-referenced: with the default rectangular window
// a full-scale bin-centered sine maps to an amplitude of 1.0 in the
// one-sided spectrum. No window gain correction is applied, so other
// windows scale amplitudes by their coherent gain.
//
// Peak detection prefers tonal content over DC bias. The DC bin is only
// reported as the peak when no other bin carries energy.
package spectrum
