package pipeline

import (
	"github.com/seisaki/bandwave/dsp/bandenergy"
	"github.com/seisaki/bandwave/dsp/smooth"
	"github.com/seisaki/bandwave/dsp/taper"
)

// Config carries the stage parameters for one analysis run.
type Config struct {
	// FilterKind and FilterLen parameterize smoothing.
	FilterKind smooth.Type
	FilterLen  int
	// ResampleInterval is the uniform grid interval in time ticks.
	ResampleInterval int64
	// Spectral parameterizes the band energy decomposition.
	Spectral bandenergy.Config
}

// Option adjusts a Config.
type Option func(*Config)

// WithFilter selects the smoothing filter kind and window length.
func WithFilter(kind smooth.Type, windowLen int) Option {
	return func(c *Config) {
		c.FilterKind = kind
		c.FilterLen = windowLen
	}
}

// WithResampleInterval sets the uniform resampling interval in time ticks.
func WithResampleInterval(dt int64) Option {
	return func(c *Config) {
		c.ResampleInterval = dt
	}
}

// WithSpectral replaces the spectral decomposition configuration.
func WithSpectral(cfg bandenergy.Config) Option {
	return func(c *Config) {
		c.Spectral = cfg
		c.Spectral.Boundaries = append([]float64(nil), cfg.Boundaries...)
	}
}

// WithSampleRate sets the spectral sample rate in Hz.
func WithSampleRate(rate float64) Option {
	return func(c *Config) {
		c.Spectral.SampleRate = rate
	}
}

// WithBoundaries sets the band split frequencies in Hz.
func WithBoundaries(bounds []float64) Option {
	return func(c *Config) {
		c.Spectral.Boundaries = append([]float64(nil), bounds...)
	}
}

// WithAverageLen sets the block-averaging length; 0 disables averaging.
func WithAverageLen(n int) Option {
	return func(c *Config) {
		c.Spectral.AverageLen = n
	}
}

// New assembles a Config starting from Default.
func New(opts ...Option) Config {
	cfg := Default()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Default returns the standard recording setup: length-5 average smoothing,
// a 10-tick resample grid, and a 1024-point Gauss-tapered decomposition of a
// 101 Hz input into the EEG bands with 3600-sample block averaging.
func Default() Config {
	return Config{
		FilterKind:       smooth.TypeAverage,
		FilterLen:        5,
		ResampleInterval: 10,
		Spectral: bandenergy.Config{
			FrameLen:     1024,
			Taper:        taper.TypeGauss,
			TaperHalfLen: 250,
			SampleRate:   101,
			Boundaries:   EEGBoundaries(),
			AverageLen:   3600,
		},
	}
}

// EEGBoundaries returns the delta/theta/alpha/beta band splits in Hz.
func EEGBoundaries() []float64 {
	return []float64{2, 6, 13, 20, 30}
}
