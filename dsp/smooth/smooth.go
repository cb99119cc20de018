package smooth

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidWindow reports a window length the input cannot support.
var ErrInvalidWindow = errors.New("smooth: invalid window length")

// Type identifies a sliding-window filter.
type Type int

const (
	TypeAverage Type = iota
	TypeTrimmedMean
)

// String returns the name used in derived-curve suffixes, e.g. "Average".
func (t Type) String() string {
	switch t {
	case TypeAverage:
		return "Average"
	case TypeTrimmedMean:
		return "TrimmedMean"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType resolves a case-insensitive filter name.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "average":
		return TypeAverage, nil
	case "trimmedmean":
		return TypeTrimmedMean, nil
	default:
		return 0, fmt.Errorf("smooth: unknown filter %q (valid: Average, TrimmedMean)", name)
	}
}

// Filter smooths samples with the given window length and returns a new
// slice of the same length. While a full forward window fits
// (i+windowLen <= len(samples)) the window statistic is used; the tail is
// the shrinking mean of the remaining samples.
func Filter(samples []float64, windowLen int, t Type) ([]float64, error) {
	out := make([]float64, len(samples))
	if err := FilterInto(out, samples, windowLen, t); err != nil {
		return nil, err
	}
	return out, nil
}

// FilterInto is the in-place variant of Filter. dst must have the length of
// samples and may alias it: every window is read before its left edge is
// written.
func FilterInto(dst, samples []float64, windowLen int, t Type) error {
	n := len(samples)
	if len(dst) != n {
		return fmt.Errorf("smooth: dst length %d does not match samples length %d", len(dst), n)
	}
	if windowLen <= 0 || windowLen > n {
		return fmt.Errorf("%w: windowLen %d with %d samples", ErrInvalidWindow, windowLen, n)
	}
	if t == TypeTrimmedMean && windowLen < 3 {
		return fmt.Errorf("%w: trimmed mean needs windowLen >= 3, got %d", ErrInvalidWindow, windowLen)
	}

	switch t {
	case TypeAverage:
		for i := 0; i+windowLen <= n; i++ {
			sum := 0.0
			for _, v := range samples[i : i+windowLen] {
				sum += v
			}
			dst[i] = sum / float64(windowLen)
		}
	case TypeTrimmedMean:
		for i := 0; i+windowLen <= n; i++ {
			win := samples[i : i+windowLen]
			sum := win[0]
			maxVal := win[0]
			minVal := win[0]
			for _, v := range win[1:] {
				sum += v
				if v > maxVal {
					maxVal = v
				}
				if v < minVal {
					minVal = v
				}
			}
			dst[i] = (sum - maxVal - minVal) / float64(windowLen-2)
		}
	default:
		return fmt.Errorf("smooth: unknown filter type %d", int(t))
	}

	// Shrinking tail, identical for both kinds.
	for i := n - windowLen + 1; i < n; i++ {
		sum := 0.0
		for _, v := range samples[i:] {
			sum += v
		}
		dst[i] = sum / float64(n-i)
	}

	return nil
}
