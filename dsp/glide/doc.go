// Package glide provides a dual-channel slew limiter for control voltages.
//
// Each channel glides its output toward a latched target using one of three
// ramp laws and marks the start and end of every glide with gate and trigger
// outputs:
//   - SampleGate: free-run change detection, clock-debounced sample-and-hold
//     and gate legato bypass.
//   - GlideEngine: HiRate, Rate and Time ramp laws with optional rise/fall
//     link, clamped exactly at the target.
//   - EdgeTrigger: 1 ms one-shot pulses on rise, fall and either arrival.
//
// A Channel is ticked once per sample. TwinGlider owns two independent
// channels and evaluates channel 0 before channel 1. Ticking never allocates,
// locks or blocks. Types are not safe for concurrent use.
package glide
