// Package cplx provides a split-form complex vector type and elementwise
// arithmetic over it.
//
// Every operation exists in an allocating form and a write-into form. The
// write-into forms accept a destination that aliases one of the inputs,
// which makes fully in-place update chains possible without scratch
// buffers. Length mismatches fail fast with ErrLengthMismatch; numerical
// conditions such as division by zero propagate as IEEE-754 results.
package cplx
