package glide

import (
	"fmt"

	"github.com/cwbudde/algo-glide/dsp/core"
)

// Channel is one slew-limited voltage path.
//
// The zero value is not usable; create channels with [NewChannel].
type Channel struct {
	sampleRate float64
	sampleTime float64
	pulseTicks int

	target float64
	output float64

	riseMode, fallMode           Mode
	riseRate, fallRate           float64
	prevRiseRate, prevFallRate   float64
	riseIncrement, fallIncrement float64

	state State

	pendingLatch    bool
	pendingGateOpen bool
	latched         bool

	riseArrived, fallArrived bool
	clockDebounce            int

	risePulse, fallPulse PulseGenerator
}

// NewChannel creates an idle channel at sampleRate.
//
// Sample rate must be positive and finite.
func NewChannel(sampleRate float64) (*Channel, error) {
	c := &Channel{}
	if err := c.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}

	return c, nil
}

// SetSampleRate updates the sample rate and the trigger width in ticks.
// Glide state is kept. A pulse in flight was counted at the old rate and is
// dropped when the rate changes.
func (c *Channel) SetSampleRate(sampleRate float64) error {
	if !core.IsFinitePositive(sampleRate) {
		return fmt.Errorf("glide sample rate must be positive and finite: %f", sampleRate)
	}

	if sampleRate != c.sampleRate {
		c.risePulse.Reset()
		c.fallPulse.Reset()
	}

	c.sampleRate = sampleRate
	c.sampleTime = 1 / sampleRate
	c.pulseTicks = PulseTicks(sampleRate, TriggerDuration)

	return nil
}

// SampleRate returns the current sample rate in Hz.
func (c *Channel) SampleRate() float64 { return c.sampleRate }

// PulseTicks returns the trigger width in ticks.
func (c *Channel) PulseTicks() int { return c.pulseTicks }

// State returns the glide direction.
func (c *Channel) State() State { return c.state }

// Target returns the latched value the output glides toward.
func (c *Channel) Target() float64 { return c.target }

// Output returns the current glided value.
func (c *Channel) Output() float64 { return c.output }

// Tick processes one sample.
func (c *Channel) Tick(in Inputs, p Params) Outputs {
	if !in.In.Connected {
		return c.disable()
	}

	enabled := c.sample(in, p.SampleAndHold)
	c.updateRates(in, p)
	c.glide(enabled)

	rising := c.state == StateRising
	falling := c.state == StateFalling

	out := Outputs{
		Out:      c.output,
		GateRise: core.GateVoltage(rising),
		GateFall: core.GateVoltage(falling),
		Rising:   rising,
		Falling:  falling,
	}
	c.triggers(&out)

	return out
}

// triggers consumes the arrival flags and renders the pulse outputs.
func (c *Channel) triggers(out *Outputs) {
	if c.riseArrived {
		c.risePulse.Trigger(c.pulseTicks)
		c.riseArrived = false
	}

	if c.fallArrived {
		c.fallPulse.Trigger(c.pulseTicks)
		c.fallArrived = false
	}

	r := c.risePulse.Process()
	f := c.fallPulse.Process()

	out.TrigRise = core.GateVoltage(r)
	out.TrigFall = core.GateVoltage(f)
	out.Trig = core.GateVoltage(r || f)
}

// disable zeroes a channel whose main input is unpatched. Pulse timers are
// left as they are.
func (c *Channel) disable() Outputs {
	c.output = 0
	c.target = 0
	c.pendingGateOpen = false
	c.state = StateIdle

	return Outputs{}
}

// ProcessSample glides x with only the main input connected and returns the
// output voltage.
func (c *Channel) ProcessSample(x float64, p Params) float64 {
	return c.Tick(Inputs{In: Connected(x)}, p).Out
}

// ProcessInPlace glides buf in place with only the main input connected.
func (c *Channel) ProcessInPlace(buf []float64, p Params) {
	in := Inputs{In: Port{Connected: true}}
	for i := range buf {
		in.In.Voltage = buf[i]
		buf[i] = c.Tick(in, p).Out
	}
}

// Reset passes raw straight to the output and stops any glide. The latched
// target and pulse timers are unchanged.
func (c *Channel) Reset(raw float64) Outputs {
	c.output = raw
	c.state = StateIdle

	return Outputs{Out: raw}
}
