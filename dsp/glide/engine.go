package glide

import "math"

// HiRateIncrement returns the per-tick step of the HiRate law.
func HiRateIncrement(rate, sampleRate float64) float64 {
	return 1 / (1 + rate*hiRateScale*sampleRate)
}

// RateIncrement returns the per-tick step of the Rate law.
func RateIncrement(rate, sampleRate float64) float64 {
	return 1 / (1 + rate*rateScale*sampleRate)
}

// TimeIncrement returns the per-tick step that covers distance in
// rate²·10 seconds, floored at TimeFloor.
func TimeIncrement(distance, rate, sampleTime float64) float64 {
	step := math.Abs(distance) * sampleTime / (rate * rate * timeScale)
	if step < TimeFloor {
		return TimeFloor
	}

	return step
}

// TimeSeconds returns the nominal duration of a Time-law glide at rate.
func TimeSeconds(rate float64) float64 {
	return rate * rate * timeScale
}

// rateFrom scales the knob amount by a connected CV, 10 V being full scale.
func rateFrom(cv Port, knob float64) float64 {
	if cv.Connected {
		return cv.Voltage / cvFullScale * knob
	}

	return knob
}

// updateRates computes the rise law for this tick and the fall law, which
// mirrors the rise law while linked.
func (c *Channel) updateRates(in Inputs, p Params) {
	c.riseMode = p.RiseMode.clamped()
	c.riseRate = rateFrom(in.RiseCV, p.Rise)

	if p.Link {
		c.fallMode = c.riseMode
		c.fallRate = c.riseRate
		return
	}

	c.fallMode = p.FallMode.clamped()
	c.fallRate = rateFrom(in.FallCV, p.Fall)
}

// glide advances the output one tick toward the target.
func (c *Channel) glide(enabled bool) {
	switch {
	case !enabled:
		c.state = StateIdle
		c.output = c.target
	case c.target > c.output:
		c.rise()
	case c.target < c.output:
		c.fall()
	default:
		c.state = StateIdle
	}
}

func (c *Channel) rise() {
	if c.riseRate <= 0 {
		c.arrive(&c.riseArrived)
		return
	}

	c.riseIncrement = c.step(c.riseMode, c.riseRate, &c.prevRiseRate, c.riseIncrement, c.target-c.output)
	c.output += c.riseIncrement
	c.state = StateRising

	if c.output >= c.target {
		c.arrive(&c.riseArrived)
	}
}

func (c *Channel) fall() {
	if c.fallRate <= 0 {
		c.arrive(&c.fallArrived)
		return
	}

	c.fallIncrement = c.step(c.fallMode, c.fallRate, &c.prevFallRate, c.fallIncrement, c.output-c.target)
	c.output -= c.fallIncrement
	c.state = StateFalling

	if c.output <= c.target {
		c.arrive(&c.fallArrived)
	}
}

// arrive clamps the output on the target and raises the arrival flag.
func (c *Channel) arrive(flag *bool) {
	c.output = c.target
	c.state = StateIdle
	*flag = true
}

// step returns the per-tick increment of mode. The Time law reuses cached
// unless the rate changed or a new value was latched this tick.
func (c *Channel) step(mode Mode, rate float64, prevRate *float64, cached, distance float64) float64 {
	switch mode {
	case ModeHiRate:
		return HiRateIncrement(rate, c.sampleRate)
	case ModeRate:
		return RateIncrement(rate, c.sampleRate)
	case ModeTime:
		if !c.latched && rate == *prevRate {
			return cached
		}
		*prevRate = rate
		return TimeIncrement(distance, rate, c.sampleTime)
	default:
		return cached
	}
}
