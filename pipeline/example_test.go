package pipeline_test

import (
	"fmt"

	"github.com/seisaki/bandwave/dsp/smooth"
	"github.com/seisaki/bandwave/pipeline"
	"github.com/seisaki/bandwave/series"
)

func ExampleSmoothCurve() {
	ts := series.FromValues("EEG1", []float64{1, 2, 3, 4, 5})

	out, err := pipeline.SmoothCurve(ts, 3, smooth.TypeAverage)
	if err != nil {
		panic(err)
	}
	fmt.Println(out.Name())
	fmt.Println(out.Values())

	// Output:
	// EEG1_Average3
	// [2 3 4 4.5 5]
}

func ExampleEEGBoundaries() {
	fmt.Println(pipeline.EEGBoundaries())

	// Output:
	// [2 6 13 20 30]
}
