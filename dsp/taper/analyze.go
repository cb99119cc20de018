package taper

import "math"

// Analysis holds numerically evaluated spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// MainLobe3dB is the half-power main lobe width in bins.
	MainLobe3dB float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// ScallopLossdB is the worst-case amplitude error for an off-bin signal.
	ScallopLossdB float64
}

// Analyze computes spectral properties of the given window coefficients by
// direct DFT evaluation.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dcRef := responseAt(coeffs, 0)
	if dcRef == 0 {
		return Analysis{}
	}

	sum := 0.0
	sumSq := 0.0
	for _, c := range coeffs {
		sum += c
		sumSq += c * c
	}

	scallop := 0.0
	if halfBin := responseAt(coeffs, 0.5/float64(n)); halfBin > 0 {
		scallop = 10 * math.Log10(halfBin/dcRef)
	}

	return Analysis{
		CoherentGain:      sum / float64(n),
		ENBW:              float64(n) * sumSq / (sum * sum),
		MainLobe3dB:       halfPowerWidth(coeffs, dcRef),
		HighestSidelobedB: highestSidelobe(coeffs, dcRef),
		ScallopLossdB:     scallop,
	}
}

// responseAt evaluates |DFT(freq)|^2 at a normalised frequency in [0, 1).
func responseAt(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq
	for k, c := range coeffs {
		phase := w * float64(k)
		re += c * math.Cos(phase)
		im -= c * math.Sin(phase)
	}
	return re*re + im*im
}

// halfPowerWidth finds the two-sided -3 dB main lobe width in bins by
// bisection on the magnitude response.
func halfPowerWidth(coeffs []float64, dcRef float64) float64 {
	lo, hi := 0.0, 0.5
	for i := 0; i < 80; i++ {
		mid := (lo + hi) / 2
		if responseAt(coeffs, mid)/dcRef > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}
	return 2 * lo * float64(len(coeffs))
}

// highestSidelobe scans past the first spectral null for the largest peak
// relative to DC, in dB.
func highestSidelobe(coeffs []float64, dcRef float64) float64 {
	n := float64(len(coeffs))
	step := 1.0 / (n * 8)

	// Walk down the main lobe to the first local minimum. Require descent
	// below 10% of DC first so a flat main lobe cannot fake a null.
	prev := dcRef
	nullFreq := 0.5
	for freq := step; freq < 0.5; freq += step {
		val := responseAt(coeffs, freq)
		if prev < dcRef*0.1 && val > prev {
			nullFreq = freq - step
			break
		}
		prev = val
	}

	peak := 0.0
	peakFreq := nullFreq
	for freq := nullFreq; freq < 0.5; freq += step {
		if val := responseAt(coeffs, freq); val > peak {
			peak = val
			peakFreq = freq
		}
	}

	// Refine around the coarse peak.
	fine := step / 32
	for freq := peakFreq - step; freq <= peakFreq+step; freq += fine {
		if freq < 0 {
			continue
		}
		if val := responseAt(coeffs, freq); val > peak {
			peak = val
		}
	}

	if peak <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(peak/dcRef)
}
