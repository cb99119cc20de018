package series

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
)

// Summary describes one series for range selection and display scaling.
type Summary struct {
	Len         int
	Min         float64
	Max         float64
	Mean        float64
	Median      float64
	StdDev      float64
	AbsMax      float64
	AbsMin      float64
	HasNegative bool
}

// Summarize computes descriptive statistics over the series. An empty
// series is an error.
func Summarize(ts *TimeSeries) (Summary, error) {
	data := ts.Samples()
	if len(data) == 0 {
		return Summary{}, fmt.Errorf("series: summarize %q: empty series", ts.Name())
	}

	var (
		s   Summary
		err error
	)
	s.Len = len(data)

	if s.Min, err = stats.Min(data); err != nil {
		return Summary{}, fmt.Errorf("series: summarize %q: %w", ts.Name(), err)
	}
	if s.Max, err = stats.Max(data); err != nil {
		return Summary{}, fmt.Errorf("series: summarize %q: %w", ts.Name(), err)
	}
	if s.Mean, err = stats.Mean(data); err != nil {
		return Summary{}, fmt.Errorf("series: summarize %q: %w", ts.Name(), err)
	}
	if s.Median, err = stats.Median(data); err != nil {
		return Summary{}, fmt.Errorf("series: summarize %q: %w", ts.Name(), err)
	}
	if s.StdDev, err = stats.StandardDeviation(data); err != nil {
		return Summary{}, fmt.Errorf("series: summarize %q: %w", ts.Name(), err)
	}

	abs := make([]float64, len(data))
	for i, v := range data {
		abs[i] = math.Abs(v)
	}
	if s.AbsMax, err = stats.Max(abs); err != nil {
		return Summary{}, fmt.Errorf("series: summarize %q: %w", ts.Name(), err)
	}
	if s.AbsMin, err = stats.Min(abs); err != nil {
		return Summary{}, fmt.Errorf("series: summarize %q: %w", ts.Name(), err)
	}
	s.HasNegative = s.Min < 0

	return s, nil
}
