package taper

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a taper window shape.
type Type int

const (
	TypeRectangle Type = iota
	TypeHamming
	TypeBlackman
	TypeHanning
	TypeGauss
)

// gaussShape fixes the Gaussian window width, exp(-18*t^2) at t = ±0.5
// leaves the edges near 1.1% of the peak.
const gaussShape = 18.0

// String returns the name used in derived-curve suffixes, e.g. "Gauss".
func (t Type) String() string {
	switch t {
	case TypeRectangle:
		return "Rectangle"
	case TypeHamming:
		return "Hamming"
	case TypeBlackman:
		return "Blackman"
	case TypeHanning:
		return "Hanning"
	case TypeGauss:
		return "Gauss"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// ParseType resolves a case-insensitive window name.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangle":
		return TypeRectangle, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	case "hanning":
		return TypeHanning, nil
	case "gauss":
		return TypeGauss, nil
	default:
		return 0, fmt.Errorf("taper: unknown window %q (valid: Rectangle, Hamming, Blackman, Hanning, Gauss)", name)
	}
}

// Generate returns window coefficients of length 2*halfLen+1, symmetric
// about the center sample.
func Generate(t Type, halfLen int) ([]float64, error) {
	if err := validateHalfLen(halfLen); err != nil {
		return nil, err
	}
	if t < TypeRectangle || t > TypeGauss {
		return nil, fmt.Errorf("taper: unknown window type %d", int(t))
	}

	out := make([]float64, 2*halfLen+1)
	for i := range out {
		p := float64(i-halfLen) / float64(halfLen) * 0.5
		out[i] = evalTaper(t, p)
	}
	return out, nil
}

// evalTaper evaluates the window at centered position p in [-0.5, 0.5].
func evalTaper(t Type, p float64) float64 {
	switch t {
	case TypeHamming:
		return 0.54 + 0.46*math.Cos(2*math.Pi*p)
	case TypeBlackman:
		return 0.42 + 0.5*math.Cos(2*math.Pi*p) + 0.08*math.Cos(4*math.Pi*p)
	case TypeHanning:
		c := math.Cos(math.Pi * p)
		return c * c
	case TypeGauss:
		return math.Exp(-gaussShape * p * p)
	default:
		return 1
	}
}

// ApplyCoefficients multiplies samples with coefficients and returns a new
// slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// CoherentGain returns sum(w[n]) / N, the DC response of the window.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs)), nil
}
