// Package growth implements the growth stage state machine and its
// adaptive feedback loop.
//
// The calculator maps a planting date, a variety timeline and a reference
// date to a discrete growth stage; the progress meter and transition
// estimator are derived views over the same cumulative boundaries. The
// Recalibrator closes the loop: when the user confirms an actual
// transition date it compares the observation against the estimate and
// persists a growth-rate modifier on the plant record.
//
// Calculate, Progress and EstimateTransition are pure and side-effect
// free; they are safe for any number of concurrent callers and never
// fail. Malformed input resolves to a safe default instead of an error,
// so a UI render can never be broken by this package.
package growth
