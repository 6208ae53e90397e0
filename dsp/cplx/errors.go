package cplx

import "errors"

// Errors returned by complex vector operations.
var (
	// ErrLengthMismatch is returned when operand or destination buffers do
	// not share the same length.
	ErrLengthMismatch = errors.New("cplx: buffer length mismatch")
)
