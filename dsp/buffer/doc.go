// Package buffer provides a reusable float64 sample buffer, analysis-frame
// assembly, and a pool for allocation-friendly processing. All analysis
// functions accept raw []float64 slices; Buffer is an optional convenience
// for callers that manage allocation and reuse in hot paths.
package buffer
