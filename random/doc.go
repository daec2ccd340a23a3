// Package random should be used in preference to math/rand whenever a
// random number must be reproducible across a replayed scheduler timeline.
//
// Random's Intn is seeded from the current timeline position (reported by
// whatever Position source it wraps) plus a process-wide base seed taken
// from the clock at start-up, so within one process it returns the same
// number for the same position, but a new process gives different numbers.
//
// Set ZeroSeed to drop the process-wide base seed and rely solely on the
// timeline position, so that the same sequence of positions gives the same
// numbers on every run — for tests that need fully deterministic output.
package random
