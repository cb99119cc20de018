package correlation

import (
	"errors"
	"math"
)

// ErrLengthMismatch reports inputs that are not equal-length, non-empty
// series.
var ErrLengthMismatch = errors.New("correlation: series must be equal length and non-empty")

// Pearson returns the Pearson correlation coefficient of x and y,
// sum((xi-xm)*(yi-ym)) / sqrt(sum((xi-xm)^2) * sum((yi-ym)^2)).
//
// The result is NaN when either series has zero variance.
func Pearson(x, y []float64) (float64, error) {
	if len(x) != len(y) || len(x) == 0 {
		return 0, ErrLengthMismatch
	}

	xMean := 0.0
	yMean := 0.0
	for i := range x {
		xMean += x[i]
		yMean += y[i]
	}
	xMean /= float64(len(x))
	yMean /= float64(len(y))

	upper := 0.0
	lowerX := 0.0
	lowerY := 0.0
	for i := range x {
		dx := x[i] - xMean
		dy := y[i] - yMean
		upper += dx * dy
		lowerX += dx * dx
		lowerY += dy * dy
	}

	return upper / math.Sqrt(lowerX*lowerY), nil
}
