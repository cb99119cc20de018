package resample

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidInterval indicates a non-positive grid interval.
	ErrInvalidInterval = errors.New("resample: grid interval must be positive")
	// ErrLengthMismatch indicates times and values of different lengths.
	ErrLengthMismatch = errors.New("resample: times and values lengths differ")
	// ErrTooFewSamples indicates fewer than two input samples.
	ErrTooFewSamples = errors.New("resample: need at least two samples")
	// ErrNonMonotonic indicates a timestamp smaller than its predecessor.
	ErrNonMonotonic = errors.New("resample: times must be non-decreasing")
)

// eps is the coincidence threshold below which two timestamps are treated as
// equal and the interpolation slope falls back to a dt/2-padded denominator.
const eps = 1e-4

// ToGrid resamples an irregular series onto the uniform grid of multiples of
// dt. For each adjacent input pair (t0,y0),(t1,y1) every grid point t with
// t0 <= t <= t1 is emitted using y = y0 + ((y1-y0)/(t1-t0))*(t-t0). A forward
// cursor emits each grid point at most once, so when consecutive pairs share
// a timestamp the earlier pair wins and the output stays strictly increasing.
//
// Coincident timestamps (|t1-t0| < eps) substitute t1-t0+dt/2 as the slope
// denominator, pinning the emitted value to y0 instead of producing NaN.
func ToGrid(times []int64, values []float64, dt int64) ([]int64, []float64, error) {
	if dt <= 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidInterval, dt)
	}

	if len(times) != len(values) {
		return nil, nil, fmt.Errorf("%w: %d times, %d values", ErrLengthMismatch, len(times), len(values))
	}

	if len(times) < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrTooFewSamples, len(times))
	}

	for i := 1; i < len(times); i++ {
		if times[i] < times[i-1] {
			return nil, nil, fmt.Errorf("%w: times[%d]=%d after %d", ErrNonMonotonic, i, times[i], times[i-1])
		}
	}

	capHint := int((times[len(times)-1]-times[0])/dt) + 2
	gridTimes := make([]int64, 0, capHint)
	gridValues := make([]float64, 0, capHint)

	cursor := floorGrid(times[0], dt)
	for i := 0; i+1 < len(times); i++ {
		t0, t1 := times[i], times[i+1]
		for cursor < t0 {
			cursor += dt
		}

		for ; cursor <= t1; cursor += dt {
			gridTimes = append(gridTimes, cursor)
			gridValues = append(gridValues, pointAt(t0, values[i], t1, values[i+1], cursor, dt))
		}
	}

	return gridTimes, gridValues, nil
}

// pointAt evaluates the two-point interpolant through (t0,y0) and (t1,y1) at
// grid point t.
func pointAt(t0 int64, y0 float64, t1 int64, y1 float64, t, dt int64) float64 {
	den := float64(t1 - t0)
	if math.Abs(den) < eps {
		den = float64(t1-t0) + float64(dt)/2
	}

	return y0 + (y1-y0)/den*float64(t-t0)
}

// floorGrid returns the largest multiple of dt not greater than t.
func floorGrid(t, dt int64) int64 {
	q := t / dt
	if t%dt != 0 && t < 0 {
		q--
	}

	return q * dt
}
