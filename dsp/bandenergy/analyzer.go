package bandenergy

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/seisaki/bandwave/dsp/fft"
	"github.com/seisaki/bandwave/dsp/taper"
)

// Analyzer runs the spectral decomposition described by a Config. It reuses
// internal frame buffers, so an Analyzer is not safe for concurrent use;
// create one per goroutine.
type Analyzer struct {
	cfg    Config
	coeffs []float64
	engine *fft.Engine
	edges  []int
	re     []float64
	im     []float64
	spec   []float64
}

// New validates cfg and precomputes the taper window, the FFT engine, and
// the band-edge table.
func New(cfg Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	coeffs, err := taper.Generate(cfg.Taper, cfg.TaperHalfLen)
	if err != nil {
		return nil, fmt.Errorf("bandenergy: %w", err)
	}

	engine, err := fft.New(cfg.FrameLen)
	if err != nil {
		return nil, fmt.Errorf("bandenergy: %w", err)
	}

	cfg.Boundaries = append([]float64(nil), cfg.Boundaries...)

	return &Analyzer{
		cfg:    cfg,
		coeffs: coeffs,
		engine: engine,
		edges:  cfg.binEdges(),
		re:     make([]float64, cfg.FrameLen),
		im:     make([]float64, cfg.FrameLen),
		spec:   make([]float64, cfg.FrameLen/2),
	}, nil
}

// Config returns a copy of the analyzer's configuration.
func (a *Analyzer) Config() Config {
	cfg := a.cfg
	cfg.Boundaries = append([]float64(nil), cfg.Boundaries...)
	return cfg
}

// Analyze decomposes samples into band energy fractions: one output series
// per band, each of len(samples). The input must be at least as long as the
// taper window so the end-of-series mirror stays in range. A frame with zero
// total energy reports 0.0 for every band rather than NaN.
func (a *Analyzer) Analyze(samples []float64) ([][]float64, error) {
	totalNum := len(samples)
	if totalNum < len(a.coeffs) {
		return nil, fmt.Errorf("%w: %d samples, window %d", ErrShortSeries, totalNum, len(a.coeffs))
	}

	bands := a.cfg.BandCount()
	out := make([][]float64, bands)
	for b := range out {
		out[b] = make([]float64, totalNum)
	}

	half := a.cfg.FrameLen / 2
	for outLoop := 0; outLoop < totalNum; outLoop++ {
		a.fillFrame(samples, outLoop)

		if err := a.engine.Transform(a.re, a.im); err != nil {
			return nil, fmt.Errorf("bandenergy: %w", err)
		}

		vecmath.Power(a.spec, a.re[:half], a.im[:half])

		totalEnergy := 0.0
		for _, p := range a.spec {
			totalEnergy += p
		}
		if totalEnergy == 0 {
			continue
		}

		for b := 0; b < bands; b++ {
			sum := 0.0
			for _, p := range a.spec[a.edges[b]:a.edges[b+1]] {
				sum += p
			}
			out[b][outLoop] = sum / totalEnergy
		}
	}

	if a.cfg.AverageLen > 0 {
		for b := range out {
			avg, err := BlockAverage(out[b], a.cfg.AverageLen)
			if err != nil {
				return nil, err
			}
			out[b] = avg
		}
	}

	return out, nil
}

// Spectrum returns the power spectrum of the analysis frame anchored at the
// first sample: taper, DC removal, transform, then re²+im² for the FrameLen/2
// non-negative-frequency bins. The input length contract matches Analyze.
func (a *Analyzer) Spectrum(samples []float64) ([]float64, error) {
	if len(samples) < len(a.coeffs) {
		return nil, fmt.Errorf("%w: %d samples, window %d", ErrShortSeries, len(samples), len(a.coeffs))
	}

	a.fillFrame(samples, 0)
	if err := a.engine.Transform(a.re, a.im); err != nil {
		return nil, fmt.Errorf("bandenergy: %w", err)
	}

	out := make([]float64, a.cfg.FrameLen/2)
	vecmath.Power(out, a.re[:len(out)], a.im[:len(out)])
	return out, nil
}

// fillFrame builds the tapered, DC-removed frame starting at sample offset.
// Window offsets past the end of the series read the mirrored sample at
// 2*totalNum-offset-ii-2, reflecting the frame off the final sample.
func (a *Analyzer) fillFrame(samples []float64, offset int) {
	totalNum := len(samples)
	winLen := len(a.coeffs)

	for ii := 0; ii < winLen; ii++ {
		src := offset + ii
		if src >= totalNum {
			src = 2*totalNum - offset - ii - 2
		}
		a.re[ii] = samples[src]
	}
	for i := winLen; i < len(a.re); i++ {
		a.re[i] = 0
	}
	for i := range a.im {
		a.im[i] = 0
	}

	vecmath.MulBlockInPlace(a.re[:winLen], a.coeffs)

	// The mean divides by the full frame length, zero padding included, and
	// is removed from the windowed span only.
	mean := 0.0
	for _, v := range a.re[:winLen] {
		mean += v
	}
	mean /= float64(len(a.re))

	for i := range a.re[:winLen] {
		a.re[i] -= mean
	}
}
