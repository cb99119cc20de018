package correlation_test

import (
	"fmt"

	"github.com/seisaki/bandwave/stats/correlation"
)

func ExamplePearson() {
	r, _ := correlation.Pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	fmt.Printf("r=%.2f\n", r)

	// Output:
	// r=1.00
}
