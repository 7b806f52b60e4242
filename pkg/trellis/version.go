// Package trellis exposes module-level metadata.
package trellis

// Version is the current trellis release.
const Version = "v0.1.0"
