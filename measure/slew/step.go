package slew

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-glide/dsp/glide"
)

// StepResult describes one rendered glide.
type StepResult struct {
	From, To  float64
	Mode      glide.Mode
	Rate      float64
	Ticks     int     // ticks from the step until the output reached To
	Seconds   float64 // Ticks in seconds
	Arrived   bool    // false when MaxSeconds elapsed first
	Overshoot float64 // largest excursion beyond To, in volts
	Monotonic bool
}

// StepResponse glides a single channel from from to to with mode at rate and
// measures the result. Both directions use the same law.
func StepResponse(from, to float64, mode glide.Mode, rate float64, opts ...Option) (StepResult, error) {
	cfg := applyOptions(opts)

	if math.Abs(to-from) <= glide.ChangeThreshold {
		return StepResult{}, fmt.Errorf("step %v -> %v is within the %v V change threshold", from, to, glide.ChangeThreshold)
	}

	ch, err := glide.NewChannel(cfg.SampleRate)
	if err != nil {
		return StepResult{}, fmt.Errorf("step response: %w", err)
	}

	// Settle on from with a zero rate.
	ch.Tick(glide.Inputs{In: glide.Connected(from)}, glide.Params{})

	p := glide.Params{Rise: rate, Fall: rate, RiseMode: mode, FallMode: mode}
	in := glide.Inputs{In: glide.Connected(to)}
	up := to > from

	res := StepResult{From: from, To: to, Mode: mode, Rate: rate, Monotonic: true}
	prev := ch.Output()
	maxTicks := int(cfg.MaxSeconds * cfg.SampleRate)

	for res.Ticks < maxTicks {
		res.Ticks++
		out := ch.Tick(in, p).Out

		if up {
			res.Overshoot = math.Max(res.Overshoot, out-to)
			res.Monotonic = res.Monotonic && out >= prev
		} else {
			res.Overshoot = math.Max(res.Overshoot, to-out)
			res.Monotonic = res.Monotonic && out <= prev
		}
		prev = out

		if out == to && ch.State() == glide.StateIdle {
			res.Arrived = true
			break
		}
	}

	res.Seconds = float64(res.Ticks) / cfg.SampleRate

	return res, nil
}
