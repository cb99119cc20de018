package pipeline

import (
	"errors"
	"testing"

	"github.com/seisaki/bandwave/dsp/bandenergy"
	"github.com/seisaki/bandwave/dsp/resample"
	"github.com/seisaki/bandwave/dsp/smooth"
	"github.com/seisaki/bandwave/dsp/taper"
	"github.com/seisaki/bandwave/internal/testutil"
	"github.com/seisaki/bandwave/series"
	"github.com/seisaki/bandwave/stats/correlation"
)

func smallSpectral() bandenergy.Config {
	return bandenergy.Config{
		FrameLen:     32,
		Taper:        taper.TypeHanning,
		TaperHalfLen: 8,
		SampleRate:   101,
		Boundaries:   []float64{5, 15},
	}
}

func TestSmoothCurveNaming(t *testing.T) {
	ts := series.FromValues("EEG1", []float64{1, 2, 3, 4, 5})

	out, err := SmoothCurve(ts, 5, smooth.TypeAverage)
	if err != nil {
		t.Fatalf("SmoothCurve error: %v", err)
	}
	if out.Name() != "EEG1_Average5" {
		t.Fatalf("got name %q, want %q", out.Name(), "EEG1_Average5")
	}
	if out.Parent() != "EEG1" {
		t.Fatalf("got parent %q, want %q", out.Parent(), "EEG1")
	}
	testutil.RequireSliceNearlyEqual(t, out.Samples(), []float64{3, 3.5, 4, 4.5, 5}, 1e-12)

	trimmed, err := SmoothCurve(ts, 3, smooth.TypeTrimmedMean)
	if err != nil {
		t.Fatalf("SmoothCurve error: %v", err)
	}
	if trimmed.Name() != "EEG1_TrimmedMean3" {
		t.Fatalf("got name %q, want %q", trimmed.Name(), "EEG1_TrimmedMean3")
	}
}

func TestSmoothCurveError(t *testing.T) {
	ts := series.FromValues("EEG1", []float64{1, 2, 3})
	if _, err := SmoothCurve(ts, 9, smooth.TypeAverage); !errors.Is(err, smooth.ErrInvalidWindow) {
		t.Fatalf("got error %v, want %v", err, smooth.ErrInvalidWindow)
	}
}

func TestResampleCurve(t *testing.T) {
	timeTs := series.FromValues(series.TimeAxisName, []float64{0, 10})
	valueTs := series.FromValues("EEG1", []float64{0, 10})

	gridTime, derived, err := ResampleCurve(timeTs, valueTs, 5)
	if err != nil {
		t.Fatalf("ResampleCurve error: %v", err)
	}

	if gridTime.Name() != series.TimeAxisName {
		t.Fatalf("got time name %q, want %q", gridTime.Name(), series.TimeAxisName)
	}
	testutil.RequireSliceNearlyEqual(t, gridTime.Samples(), []float64{0, 5, 10}, 0)

	if derived.Name() != "EEG1_Resample5" {
		t.Fatalf("got name %q, want %q", derived.Name(), "EEG1_Resample5")
	}
	if derived.Parent() != "EEG1" {
		t.Fatalf("got parent %q, want %q", derived.Parent(), "EEG1")
	}
	testutil.RequireSliceNearlyEqual(t, derived.Samples(), []float64{0, 5, 10}, 1e-12)
}

func TestResampleCurveRoundsTimestamps(t *testing.T) {
	timeTs := series.FromValues(series.TimeAxisName, []float64{-0.4, 9.7})
	valueTs := series.FromValues("EEG1", []float64{0, 10})

	gridTime, _, err := ResampleCurve(timeTs, valueTs, 5)
	if err != nil {
		t.Fatalf("ResampleCurve error: %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, gridTime.Samples(), []float64{0, 5, 10}, 0)
}

func TestResampleCurveError(t *testing.T) {
	timeTs := series.FromValues(series.TimeAxisName, []float64{0, 10, 20})
	valueTs := series.FromValues("EEG1", []float64{0, 10})

	if _, _, err := ResampleCurve(timeTs, valueTs, 5); !errors.Is(err, resample.ErrLengthMismatch) {
		t.Fatalf("got error %v, want %v", err, resample.ErrLengthMismatch)
	}
}

func TestBandEnergyCurvesNaming(t *testing.T) {
	ts := series.New("EEG1")
	ts.Append(testutil.DeterministicNoise(4, 1.0, 40)...)

	out, err := BandEnergyCurves(ts, smallSpectral())
	if err != nil {
		t.Fatalf("BandEnergyCurves error: %v", err)
	}

	want := []string{"EEG1_f0_5", "EEG1_f5_15", "EEG1_f15"}
	if len(out) != len(want) {
		t.Fatalf("got %d series, want %d", len(out), len(want))
	}
	for b, w := range want {
		if out[b].Name() != w {
			t.Fatalf("band %d: got name %q, want %q", b, out[b].Name(), w)
		}
		if out[b].Parent() != "EEG1" {
			t.Fatalf("band %d: got parent %q, want %q", b, out[b].Parent(), "EEG1")
		}
		if out[b].Len() != ts.Len() {
			t.Fatalf("band %d: got %d samples, want %d", b, out[b].Len(), ts.Len())
		}
	}
}

func TestBandEnergyCurvesInvalidConfig(t *testing.T) {
	ts := series.FromValues("EEG1", testutil.DeterministicNoise(4, 1.0, 40))
	cfg := smallSpectral()
	cfg.FrameLen = 33

	if _, err := BandEnergyCurves(ts, cfg); !errors.Is(err, bandenergy.ErrInvalidBandConfig) {
		t.Fatalf("got error %v, want %v", err, bandenergy.ErrInvalidBandConfig)
	}
}

func TestSpectrumCurveNaming(t *testing.T) {
	ts := series.FromValues("EEG1", testutil.DeterministicNoise(4, 1.0, 40))

	out, err := SpectrumCurve(ts, smallSpectral())
	if err != nil {
		t.Fatalf("SpectrumCurve error: %v", err)
	}
	if out.Name() != "EEG1_Hanning8" {
		t.Fatalf("got name %q, want %q", out.Name(), "EEG1_Hanning8")
	}
	if out.Parent() != "EEG1" {
		t.Fatalf("got parent %q, want %q", out.Parent(), "EEG1")
	}
	if out.Len() != smallSpectral().FrameLen/2 {
		t.Fatalf("got %d bins, want %d", out.Len(), smallSpectral().FrameLen/2)
	}
}

func TestSpectrumCurveShortInput(t *testing.T) {
	ts := series.FromValues("EEG1", testutil.DeterministicNoise(4, 1.0, 10))

	if _, err := SpectrumCurve(ts, smallSpectral()); !errors.Is(err, bandenergy.ErrShortSeries) {
		t.Fatalf("got error %v, want %v", err, bandenergy.ErrShortSeries)
	}
}

func TestAnalyzeSet(t *testing.T) {
	set := series.NewCurveSet("recording.txt")
	set.Add(series.FromValues(series.TimeAxisName, testutil.Ramp(0, 10, 40)))
	set.Add(series.FromValues("EEG1", testutil.DeterministicNoise(1, 1.0, 40)))
	set.Add(series.FromValues("EEG2", testutil.DeterministicNoise(2, 1.0, 40)))

	cfg := New(WithSpectral(smallSpectral()))
	if err := AnalyzeSet(set, cfg); err != nil {
		t.Fatalf("AnalyzeSet error: %v", err)
	}

	wantNames := []string{
		series.TimeAxisName, "EEG1", "EEG2",
		"EEG1_f0_5", "EEG1_f5_15", "EEG1_f15",
		"EEG2_f0_5", "EEG2_f5_15", "EEG2_f15",
	}
	got := set.Names()
	if len(got) != len(wantNames) {
		t.Fatalf("got %d curves %v, want %d", len(got), got, len(wantNames))
	}
	for i, w := range wantNames {
		if got[i] != w {
			t.Fatalf("curve %d: got %q, want %q", i, got[i], w)
		}
	}

	// The merged band series must match a direct single-curve run.
	ts, _ := set.Curve("EEG1")
	direct, err := BandEnergyCurves(ts, cfg.Spectral)
	if err != nil {
		t.Fatalf("BandEnergyCurves error: %v", err)
	}
	merged, ok := set.Curve("EEG1_f5_15")
	if !ok {
		t.Fatal("EEG1_f5_15 missing from set")
	}
	testutil.RequireSliceNearlyEqual(t, merged.Samples(), direct[1].Samples(), 0)
}

func TestAnalyzeSetShortCurve(t *testing.T) {
	set := series.NewCurveSet("recording.txt")
	set.Add(series.FromValues("EEG1", testutil.DeterministicNoise(1, 1.0, 40)))
	set.Add(series.FromValues("EEG2", testutil.DeterministicNoise(2, 1.0, 10)))

	err := AnalyzeSet(set, New(WithSpectral(smallSpectral())))
	if !errors.Is(err, bandenergy.ErrShortSeries) {
		t.Fatalf("got error %v, want %v", err, bandenergy.ErrShortSeries)
	}
	if set.Len() != 2 {
		t.Fatalf("failed run must not merge series: got %d curves", set.Len())
	}
}

func TestCorrelate(t *testing.T) {
	a := series.FromValues("EEG1", []float64{1, 2, 3})
	b := series.FromValues("EEG2", []float64{2, 4, 6})

	r, err := Correlate(a, b)
	if err != nil {
		t.Fatalf("Correlate error: %v", err)
	}
	if r != 1.0 {
		t.Fatalf("got %v, want 1.0", r)
	}

	short := series.FromValues("EEG3", []float64{1})
	if _, err := Correlate(a, short); !errors.Is(err, correlation.ErrLengthMismatch) {
		t.Fatalf("got error %v, want %v", err, correlation.ErrLengthMismatch)
	}
}
