package fft

import "errors"

// Errors returned by plan construction and transforms.
var (
	// ErrInvalidSize is returned when a plan size is not a positive power
	// of two.
	ErrInvalidSize = errors.New("fft: invalid size")

	// ErrLengthMismatch is returned when an input or output length does
	// not match the plan size.
	ErrLengthMismatch = errors.New("fft: length mismatch")
)
