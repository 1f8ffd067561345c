package glide

import "math"

// PulseGenerator is a one-shot timer counted in ticks.
type PulseGenerator struct {
	remaining int
}

// Trigger arms the pulse for ticks ticks. Re-triggering restarts the count.
func (p *PulseGenerator) Trigger(ticks int) {
	p.remaining = ticks
}

// Process advances the timer by one tick and reports whether the pulse is high.
func (p *PulseGenerator) Process() bool {
	if p.remaining > 0 {
		p.remaining--
		return true
	}

	return false
}

// Remaining returns the number of high ticks left.
func (p *PulseGenerator) Remaining() int { return p.remaining }

// Reset disarms the pulse.
func (p *PulseGenerator) Reset() { p.remaining = 0 }

// PulseTicks returns the length in ticks of a pulse lasting seconds at
// sampleRate. Pulses last at least one tick.
func PulseTicks(sampleRate, seconds float64) int {
	n := int(math.Round(sampleRate * seconds))
	if n < 1 {
		return 1
	}

	return n
}
