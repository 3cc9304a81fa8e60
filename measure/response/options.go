package response

import "github.com/cwbudde/algo-biquad/dsp/core"

const defaultFFTSize = 4096

// Config defines the measurement parameters.
type Config struct {
	core.ProcessorConfig

	// FFTSize is the impulse response length and transform size. It must be
	// a power of two.
	FFTSize int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the defaults: 48 kHz and a 4096-point FFT.
func DefaultConfig() Config {
	return Config{
		ProcessorConfig: core.DefaultProcessorConfig(),
		FFTSize:         defaultFFTSize,
	}
}

// WithSampleRate overrides the sample rate used to label bins. By default
// the filter's configured rate is used.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		core.WithSampleRate(sampleRate)(&cfg.ProcessorConfig)
	}
}

// WithFFTSize sets the FFT size. Values that are not a power of two make
// Measure fail.
func WithFFTSize(size int) Option {
	return func(cfg *Config) {
		cfg.FFTSize = size
	}
}

// ApplyOptions applies zero or more options to base.
func ApplyOptions(base Config, opts ...Option) Config {
	cfg := base
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
