// Package incline holds the domain errors shared by the inclined-plane
// simulation packages.
//
//   - [ErrUnknownPreset]: a height preset index outside the table
//   - [ErrInvalidPresets]: a preset table that breaks L = h / sin(θ)
//   - [ErrDegenerateData]: regression input that cannot be fitted
//   - [ErrNoConvergence]: the power-law solver ran out of iterations
//
// Fit failures are reported as [*FitError], which keeps the stage that failed
// and unwraps to one of the sentinels above.
package incline
