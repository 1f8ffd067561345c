package glide

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-glide/dsp/core"
)

// Voltage thresholds of the Eurorack convention used by the module.
const (
	// ChangeThreshold is the minimum input difference that counts as a new
	// value to latch.
	ChangeThreshold = 0.01
	// ClockHigh is the level a clock must exceed to capture a sample.
	ClockHigh = 2.5
	// ClockLow is the level below which a clock counts as low for debouncing.
	ClockLow = 0.01
	// GateOpen is the level at or above which a gate is open.
	GateOpen = 0.5
	// TriggerDuration is the width of arrival pulses in seconds.
	TriggerDuration = 1e-3
	// TimeFloor is the smallest per-tick step of the Time law.
	TimeFloor = 1e-6
)

const (
	clockDebounceMax = 10
	clockArmTicks    = 8

	hiRateScale = 0.005
	rateScale   = 2.0
	timeScale   = 10.0

	cvFullScale = 10.0
)

// ErrUnknownMode is returned by ParseMode for unrecognised names.
var ErrUnknownMode = errors.New("glide: unknown mode")

// Mode selects the ramp law of one glide direction.
type Mode int

const (
	// ModeHiRate is a fast rate law recomputed every tick.
	ModeHiRate Mode = iota
	// ModeRate is a slow rate law recomputed every tick.
	ModeRate
	// ModeTime keeps the glide time constant regardless of distance.
	ModeTime
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeHiRate:
		return "hirate"
	case ModeRate:
		return "rate"
	case ModeTime:
		return "time"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// clamped maps out-of-range modes onto the nearest valid one.
func (m Mode) clamped() Mode {
	if m < ModeHiRate {
		return ModeHiRate
	}
	if m > ModeTime {
		return ModeTime
	}
	return m
}

// ParseMode resolves a mode name as printed by [Mode.String].
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hirate", "hi-rate", "0":
		return ModeHiRate, nil
	case "rate", "1":
		return ModeRate, nil
	case "time", "2":
		return ModeTime, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
	}
}

// ModeFromValue truncates a three-position switch value to a Mode.
func ModeFromValue(v float64) Mode {
	if math.IsNaN(v) {
		return ModeHiRate
	}
	if v >= float64(ModeTime) {
		return ModeTime
	}
	if v < 0 {
		return ModeHiRate
	}
	return Mode(int(v))
}

// State is the direction a channel is gliding in.
type State int

const (
	StateIdle State = iota
	StateRising
	StateFalling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRising:
		return "rising"
	case StateFalling:
		return "falling"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Port is an optional input jack.
type Port struct {
	Voltage   float64
	Connected bool
}

// Connected returns a connected port carrying v.
func Connected(v float64) Port { return Port{Voltage: v, Connected: true} }

// Inputs holds the jack values of one channel for one tick.
type Inputs struct {
	In     Port
	RiseCV Port
	FallCV Port
	Gate   Port
	Clock  Port
}

// Params holds the panel settings of one channel.
//
// Rise and Fall are the knob amounts in [0, 1]. Values outside that range are
// used as given.
type Params struct {
	Rise          float64
	Fall          float64
	Link          bool
	RiseMode      Mode
	FallMode      Mode
	SampleAndHold bool
}

// ParamsFromValues maps raw host parameter values onto Params. Switches
// are on above 0.5; mode values are truncated.
func ParamsFromValues(rise, fall, link, riseMode, fallMode, sampleAndHold float64) Params {
	return Params{
		Rise:          rise,
		Fall:          fall,
		Link:          core.SwitchOn(link),
		RiseMode:      ModeFromValue(riseMode),
		FallMode:      ModeFromValue(fallMode),
		SampleAndHold: core.SwitchOn(sampleAndHold),
	}
}

// Outputs holds the jack and light values of one channel after a tick.
type Outputs struct {
	Out      float64
	GateRise float64
	GateFall float64
	TrigRise float64
	TrigFall float64
	Trig     float64
	Rising   bool
	Falling  bool
}
