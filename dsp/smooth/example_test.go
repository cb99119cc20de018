package smooth_test

import (
	"fmt"

	"github.com/seisaki/bandwave/dsp/smooth"
)

func ExampleFilter() {
	in := []float64{1, 2, 3, 4, 5}

	out, err := smooth.Filter(in, 3, smooth.TypeAverage)
	if err != nil {
		panic(err)
	}

	fmt.Println(out)

	// Output:
	// [2 3 4 4.5 5]
}
