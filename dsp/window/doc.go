// Package window generates analysis window coefficient tables and applies
// them to sample frames.
//
// The symmetric closed forms are used (denominator N-1), matching the
// common textbook definitions: Hann 0.5*(1-cos), Hamming 0.54-0.46*cos,
// Blackman 0.42-0.5*cos+0.08*cos(2f). A window of length 1 is [1].
package window
