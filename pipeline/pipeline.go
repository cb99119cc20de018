package pipeline

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/seisaki/bandwave/dsp/bandenergy"
	"github.com/seisaki/bandwave/dsp/resample"
	"github.com/seisaki/bandwave/dsp/smooth"
	"github.com/seisaki/bandwave/series"
	"github.com/seisaki/bandwave/stats/correlation"
)

// SmoothCurve filters ts and returns a derived series named
// <name>_<Kind><windowLen>, e.g. EEG1_Average5.
func SmoothCurve(ts *series.TimeSeries, windowLen int, kind smooth.Type) (*series.TimeSeries, error) {
	out, err := smooth.Filter(ts.Samples(), windowLen, kind)
	if err != nil {
		return nil, fmt.Errorf("pipeline: smooth %s: %w", ts.Name(), err)
	}

	derived := series.NewDerived(fmt.Sprintf("%s_%s%d", ts.Name(), kind, windowLen), ts.Name())
	derived.Append(out...)
	return derived, nil
}

// ResampleCurve interpolates valueTs onto the uniform grid of dt ticks,
// reading timestamps from timeTs rounded to the nearest tick. It returns the
// grid time series, named TIME so a resampled curve set keeps the reserved
// axis name, and the derived value series <name>_Resample<dt>.
func ResampleCurve(timeTs, valueTs *series.TimeSeries, dt int64) (*series.TimeSeries, *series.TimeSeries, error) {
	times := make([]int64, timeTs.Len())
	for i, v := range timeTs.Samples() {
		times[i] = int64(math.Round(v))
	}

	gridTimes, gridValues, err := resample.ToGrid(times, valueTs.Samples(), dt)
	if err != nil {
		return nil, nil, fmt.Errorf("pipeline: resample %s: %w", valueTs.Name(), err)
	}

	gridTime := series.NewDerived(series.TimeAxisName, timeTs.Name())
	for _, t := range gridTimes {
		gridTime.Append(float64(t))
	}

	derived := series.NewDerived(fmt.Sprintf("%s_Resample%d", valueTs.Name(), dt), valueTs.Name())
	derived.Append(gridValues...)
	return gridTime, derived, nil
}

// BandEnergyCurves decomposes ts into band energy fraction series, one per
// configured band, named <name>_<label>, e.g. EEG1_f13_20.
func BandEnergyCurves(ts *series.TimeSeries, spectral bandenergy.Config) ([]*series.TimeSeries, error) {
	analyzer, err := bandenergy.New(spectral)
	if err != nil {
		return nil, fmt.Errorf("pipeline: band energy %s: %w", ts.Name(), err)
	}

	bands, err := analyzer.Analyze(ts.Samples())
	if err != nil {
		return nil, fmt.Errorf("pipeline: band energy %s: %w", ts.Name(), err)
	}

	out := make([]*series.TimeSeries, len(bands))
	for b, samples := range bands {
		derived := series.NewDerived(ts.Name()+"_"+spectral.BandLabel(b), ts.Name())
		derived.Append(samples...)
		out[b] = derived
	}
	return out, nil
}

// SpectrumCurve transforms the first analysis frame of ts into a power
// spectrum series with one sample per frequency bin, named
// <name>_<Taper><HalfLen>, e.g. EEG1_Gauss250.
func SpectrumCurve(ts *series.TimeSeries, spectral bandenergy.Config) (*series.TimeSeries, error) {
	analyzer, err := bandenergy.New(spectral)
	if err != nil {
		return nil, fmt.Errorf("pipeline: spectrum %s: %w", ts.Name(), err)
	}

	spec, err := analyzer.Spectrum(ts.Samples())
	if err != nil {
		return nil, fmt.Errorf("pipeline: spectrum %s: %w", ts.Name(), err)
	}

	derived := series.NewDerived(fmt.Sprintf("%s_%s%d", ts.Name(), spectral.Taper, spectral.TaperHalfLen), ts.Name())
	derived.Append(spec...)
	return derived, nil
}

// AnalyzeSet runs the spectral decomposition for every curve of set except
// the TIME axis, one goroutine and one analyzer per curve, and merges the
// derived band series back into set. On error no series are merged.
func AnalyzeSet(set *series.CurveSet, cfg Config) error {
	var inputs []*series.TimeSeries
	for _, ts := range set.Curves() {
		if ts.Name() == series.TimeAxisName {
			continue
		}
		inputs = append(inputs, ts)
	}

	results := make([][]*series.TimeSeries, len(inputs))
	var grp errgroup.Group
	for i, ts := range inputs {
		grp.Go(func() error {
			bands, err := BandEnergyCurves(ts, cfg.Spectral)
			if err != nil {
				return err
			}
			results[i] = bands
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return err
	}

	for _, bands := range results {
		for _, derived := range bands {
			set.Add(derived)
		}
	}
	return nil
}

// Correlate returns the Pearson correlation of two equal-length curves.
func Correlate(a, b *series.TimeSeries) (float64, error) {
	r, err := correlation.Pearson(a.Samples(), b.Samples())
	if err != nil {
		return 0, fmt.Errorf("pipeline: correlate %s with %s: %w", a.Name(), b.Name(), err)
	}
	return r, nil
}
