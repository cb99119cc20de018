package bandenergy

import (
	"fmt"
	"strconv"

	"github.com/seisaki/bandwave/dsp/taper"
)

// Config describes one spectral decomposition. The K entries in Boundaries
// split the spectrum into K+1 contiguous bands; the last band runs from the
// last boundary to the Nyquist edge SampleRate/2.
type Config struct {
	// FrameLen is the FFT frame length. Must be a power of two.
	FrameLen int
	// Taper selects the window applied to each frame.
	Taper taper.Type
	// TaperHalfLen is the window half-length. The window spans
	// 2*TaperHalfLen+1 samples and must fit inside the frame.
	TaperHalfLen int
	// SampleRate is the input rate in Hz.
	SampleRate float64
	// Boundaries are the band split frequencies in Hz, strictly ascending,
	// positive and below Nyquist.
	Boundaries []float64
	// AverageLen enables block averaging of each output series when > 0.
	AverageLen int
}

// Validate checks the configuration once, before any frame work starts.
func (c Config) Validate() error {
	if c.FrameLen < 2 || c.FrameLen&(c.FrameLen-1) != 0 {
		return fmt.Errorf("%w: frame length %d is not a power of two", ErrInvalidBandConfig, c.FrameLen)
	}

	if c.Taper < taper.TypeRectangle || c.Taper > taper.TypeGauss {
		return fmt.Errorf("%w: unknown taper type %d", ErrInvalidBandConfig, int(c.Taper))
	}

	if c.TaperHalfLen < 1 {
		return fmt.Errorf("%w: taper half-length %d must be positive", ErrInvalidBandConfig, c.TaperHalfLen)
	}

	if winLen := 2*c.TaperHalfLen + 1; winLen > c.FrameLen {
		return fmt.Errorf("%w: window length %d exceeds frame length %d", ErrInvalidBandConfig, winLen, c.FrameLen)
	}

	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: sample rate %v must be positive", ErrInvalidBandConfig, c.SampleRate)
	}

	if len(c.Boundaries) == 0 {
		return fmt.Errorf("%w: no band boundaries", ErrInvalidBandConfig)
	}

	nyquist := c.SampleRate / 2
	prev := 0.0
	for i, b := range c.Boundaries {
		if b <= prev {
			return fmt.Errorf("%w: boundary %v at index %d must be positive and ascending", ErrInvalidBandConfig, b, i)
		}
		if b >= nyquist {
			return fmt.Errorf("%w: boundary %v at index %d not below Nyquist %v", ErrInvalidBandConfig, b, i, nyquist)
		}
		prev = b
	}

	if c.AverageLen < 0 {
		return fmt.Errorf("%w: negative average length %d", ErrInvalidBandConfig, c.AverageLen)
	}

	return nil
}

// BandCount returns the number of output bands, len(Boundaries)+1.
func (c Config) BandCount() int {
	return len(c.Boundaries) + 1
}

// BandEdges returns band b's frequency range in Hz. The first band starts at
// zero and the last ends at Nyquist. b must be in [0, BandCount()).
func (c Config) BandEdges(b int) (lo, hi float64) {
	last := len(c.Boundaries)
	switch {
	case b == 0:
		return 0, c.Boundaries[0]
	case b == last:
		return c.Boundaries[last-1], c.SampleRate / 2
	default:
		return c.Boundaries[b-1], c.Boundaries[b]
	}
}

// BandLabel returns the suffix fragment identifying band b, such as "f0_2",
// "f2_6", or "f30" for the band running to the Nyquist edge. The fragments
// feed the derived-curve naming scheme. b must be in [0, BandCount()).
func (c Config) BandLabel(b int) string {
	last := len(c.Boundaries)
	switch {
	case b == 0:
		return "f0_" + fmtFreq(c.Boundaries[0])
	case b == last:
		return "f" + fmtFreq(c.Boundaries[last-1])
	default:
		return "f" + fmtFreq(c.Boundaries[b-1]) + "_" + fmtFreq(c.Boundaries[b])
	}
}

// binEdges maps the boundaries onto half-open spectrum bin ranges: band b
// covers bins [edges[b], edges[b+1]) with edges[0] = 0 and the final edge at
// FrameLen/2. A boundary at frequency f lands on bin floor(f/df).
func (c Config) binEdges() []int {
	df := c.SampleRate / float64(c.FrameLen)
	edges := make([]int, c.BandCount()+1)
	for i, b := range c.Boundaries {
		edges[i+1] = int(b / df)
	}
	edges[len(edges)-1] = c.FrameLen / 2
	return edges
}

func fmtFreq(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
