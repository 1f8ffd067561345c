package glide

import "fmt"

// Channels is the number of channels of a TwinGlider.
const Channels = 2

// TwinGlider runs two independent glide channels at a shared sample rate.
type TwinGlider struct {
	channels [Channels]Channel
}

// NewTwinGlider creates a dual-channel glider at sampleRate.
func NewTwinGlider(sampleRate float64) (*TwinGlider, error) {
	g := &TwinGlider{}
	if err := g.SetSampleRate(sampleRate); err != nil {
		return nil, err
	}

	return g, nil
}

// SetSampleRate updates the sample rate of both channels.
func (g *TwinGlider) SetSampleRate(sampleRate float64) error {
	for i := range g.channels {
		if err := g.channels[i].SetSampleRate(sampleRate); err != nil {
			return fmt.Errorf("twin glider: %w", err)
		}
	}

	return nil
}

// SampleRate returns the current sample rate in Hz.
func (g *TwinGlider) SampleRate() float64 { return g.channels[0].sampleRate }

// Channel returns channel i, or nil when i is out of range.
func (g *TwinGlider) Channel(i int) *Channel {
	if i < 0 || i >= Channels {
		return nil
	}

	return &g.channels[i]
}

// Tick processes one sample on both channels, channel 0 first.
func (g *TwinGlider) Tick(in [Channels]Inputs, p [Channels]Params) [Channels]Outputs {
	var out [Channels]Outputs
	for i := range g.channels {
		out[i] = g.channels[i].Tick(in[i], p[i])
	}

	return out
}

// Reset passes each channel's main input to its output and stops all glides.
// An unpatched input resets to 0 V.
func (g *TwinGlider) Reset(in [Channels]Inputs) [Channels]Outputs {
	var out [Channels]Outputs
	for i := range g.channels {
		raw := 0.0
		if in[i].In.Connected {
			raw = in[i].In.Voltage
		}
		out[i] = g.channels[i].Reset(raw)
	}

	return out
}

// Randomize leaves the channel state untouched. Panel values are owned by
// the host, which randomises them itself.
func (g *TwinGlider) Randomize() {}
