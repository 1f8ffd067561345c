// Package slew measures glide responses offline.
//
// StepResponse renders a single channel through a voltage step and reports
// how long the glide takes and whether it stayed monotonic. Smoothing
// compares the high-frequency band power of a signal before and after the
// glide, which quantifies the low-pass effect of a ramp law.
package slew
