package slew

import (
	"github.com/cwbudde/algo-glide/dsp/core"
	"github.com/cwbudde/algo-glide/dsp/window"
)

const (
	defaultMaxSeconds = 60.0
	defaultFFTSize    = 4096
)

// Config controls rendering and analysis.
type Config struct {
	core.ProcessorConfig

	// MaxSeconds bounds the rendered length of a step response.
	MaxSeconds float64
	// FFTSize is the frame length of band power analysis. Must be a power of two.
	FFTSize int
	// Window weights each analysis frame.
	Window window.Type
}

// Option mutates a Config.
type Option func(*Config)

// WithProcessorOptions applies core options such as the sample rate.
func WithProcessorOptions(opts ...core.ProcessorOption) Option {
	return func(cfg *Config) {
		for _, opt := range opts {
			if opt != nil {
				opt(&cfg.ProcessorConfig)
			}
		}
	}
}

// WithMaxSeconds bounds the length of rendered responses.
func WithMaxSeconds(seconds float64) Option {
	return func(cfg *Config) {
		if core.IsFinitePositive(seconds) {
			cfg.MaxSeconds = seconds
		}
	}
}

// WithFFTSize sets the analysis frame length. Sizes that are not a power of
// two are ignored.
func WithFFTSize(n int) Option {
	return func(cfg *Config) {
		if n >= 2 && n&(n-1) == 0 {
			cfg.FFTSize = n
		}
	}
}

// WithWindow selects the analysis window of band power frames.
func WithWindow(t window.Type) Option {
	return func(cfg *Config) {
		cfg.Window = t
	}
}

func applyOptions(opts []Option) Config {
	cfg := Config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		MaxSeconds:      defaultMaxSeconds,
		FFTSize:         defaultFFTSize,
		Window:          window.TypeHann,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
