package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-glide/dsp/core"
)

// Generator creates deterministic control-voltage signals from a shared
// configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// SetSeed changes the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// Sine generates a sine wave, typically used as a modulation CV.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Step holds from until atSeconds and to afterwards.
func (g *Generator) Step(from, to, atSeconds float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("step samples must be > 0: %d", samples)
	}
	if atSeconds < 0 {
		return nil, fmt.Errorf("step time must be >= 0: %f", atSeconds)
	}
	at := int(math.Round(atSeconds * g.cfg.SampleRate))
	out := make([]float64, samples)
	for i := range out {
		if i < at {
			out[i] = from
		} else {
			out[i] = to
		}
	}
	return out, nil
}

// Clock generates a 0/10 V pulse train at freqHz. duty is the high fraction
// of each period in (0, 1).
func (g *Generator) Clock(freqHz, duty float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("clock samples must be > 0: %d", samples)
	}
	if !core.IsFinitePositive(freqHz) {
		return nil, fmt.Errorf("clock frequency must be positive and finite: %f", freqHz)
	}
	if duty <= 0 || duty >= 1 {
		return nil, fmt.Errorf("clock duty must be in (0, 1): %f", duty)
	}
	out := make([]float64, samples)
	inc := freqHz / g.cfg.SampleRate
	phase := 0.0
	for i := range out {
		out[i] = core.GateVoltage(phase < duty)
		phase += inc
		if phase >= 1 {
			phase -= math.Floor(phase)
		}
	}
	return out, nil
}

// Staircase holds each level for stepSeconds, cycling through levels until
// samples values are produced.
func (g *Generator) Staircase(levels []float64, stepSeconds float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("staircase samples must be > 0: %d", samples)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("staircase levels must not be empty")
	}
	hold := int(math.Round(stepSeconds * g.cfg.SampleRate))
	if hold <= 0 {
		return nil, fmt.Errorf("staircase step must last at least one sample: %f s", stepSeconds)
	}
	out := make([]float64, samples)
	for i := range out {
		out[i] = levels[(i/hold)%len(levels)]
	}
	return out, nil
}
