// Package types defines the Trellis domain model: growth stages and
// timelines, plant and variety records, the Store interfaces, and the
// standard sentinel errors shared across backends.
package types
