package window

import "errors"

// Errors returned by window construction and application.
var (
	// ErrInvalidSize is returned for non-positive window lengths.
	ErrInvalidSize = errors.New("window: invalid size")

	// ErrUnknownWindow is returned for unrecognized window names.
	ErrUnknownWindow = errors.New("window: unknown window type")

	// ErrLengthMismatch is returned when samples and coefficients have
	// different lengths.
	ErrLengthMismatch = errors.New("window: samples and coefficients must have same length")

	errZeroCoherentGain = errors.New("window: coherent gain is zero")
)
