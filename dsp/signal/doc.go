// Package signal generates deterministic test signals: tones, sweeps,
// impulses, and seeded noise. It exists mainly to feed the analysis
// pipeline in examples, tools, and measurements.
package signal
