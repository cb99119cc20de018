package fft_test

import (
	"fmt"

	"github.com/seisaki/bandwave/dsp/fft"
)

func ExampleEngine_Transform() {
	e, err := fft.New(4)
	if err != nil {
		panic(err)
	}

	// Unit impulse: flat spectrum.
	re := []float64{1, 0, 0, 0}
	im := []float64{0, 0, 0, 0}
	if err := e.Transform(re, im); err != nil {
		panic(err)
	}

	fmt.Println(re)
	fmt.Println(im)

	// Output:
	// [1 1 1 1]
	// [0 0 0 0]
}
