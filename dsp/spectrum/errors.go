package spectrum

import "errors"

// Errors returned by spectrum computations.
var (
	// ErrInvalidArgument is returned for non-positive sample rates or
	// sizes.
	ErrInvalidArgument = errors.New("spectrum: invalid argument")
)
