package glide

import (
	"math"

	"github.com/cwbudde/algo-glide/dsp/core"
)

// sample decides whether the target follows the raw input this tick and
// applies the gate legato rules. It reports whether gliding is enabled.
func (c *Channel) sample(in Inputs, sampleAndHold bool) bool {
	raw := in.In.Voltage

	c.latched = false
	if math.Abs(raw-c.target) > ChangeThreshold {
		c.pendingLatch = true
	}

	switch {
	case !sampleAndHold:
		if c.pendingLatch {
			c.latch(raw)
		}
	case in.Clock.Connected:
		c.clock(in.Clock.Voltage, raw)
	case c.state == StateIdle && c.pendingLatch:
		// Without a clock a new value is only taken between glides.
		c.latch(raw)
	}

	return c.legato(in.Gate)
}

// clock runs the debounced rising-edge detector. A capture needs more than
// clockArmTicks low ticks followed by a level above ClockHigh.
func (c *Channel) clock(v, raw float64) {
	if c.clockDebounce > clockArmTicks && core.Above(v, ClockHigh) {
		c.latch(raw)
		c.clockDebounce = 0
		return
	}

	if c.clockDebounce < clockDebounceMax && core.Below(v, ClockLow) {
		c.clockDebounce++
	}
}

// latch copies raw into the target. Only a latch that consumes a pending
// change invalidates the cached Time step.
func (c *Channel) latch(raw float64) {
	c.target = raw
	if c.pendingLatch {
		c.latched = true
		c.pendingLatch = false
	}
}

// legato applies the gate. A low gate holds the output on the target, and
// the first open tick after a low period snaps once more before gliding.
func (c *Channel) legato(gate Port) bool {
	if !gate.Connected {
		return true
	}

	if core.Below(gate.Voltage, GateOpen) {
		c.pendingGateOpen = true
		c.output = c.target
		return false
	}

	if c.pendingGateOpen {
		c.output = c.target
		c.pendingGateOpen = false
		return false
	}

	return true
}
