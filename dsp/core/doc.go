// Package core provides shared numeric helpers for the spectral packages:
// power-of-two sizing, tolerant float comparison, and dB conversions.
package core
