package bandenergy

import "fmt"

// BlockAverage replaces every full run of blockLen samples with that run's
// mean. Past the last full block each position holds the mean of the samples
// from that position to the end, shrinking toward the final sample.
func BlockAverage(sig []float64, blockLen int) ([]float64, error) {
	if blockLen <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBlockLen, blockLen)
	}

	out := make([]float64, len(sig))
	count := len(sig) / blockLen
	for block := 0; block < count; block++ {
		start := block * blockLen
		sum := 0.0
		for _, v := range sig[start : start+blockLen] {
			sum += v
		}
		mean := sum / float64(blockLen)
		for i := start; i < start+blockLen; i++ {
			out[i] = mean
		}
	}

	for index := count * blockLen; index < len(sig); index++ {
		sum := 0.0
		for _, v := range sig[index:] {
			sum += v
		}
		out[index] = sum / float64(len(sig)-index)
	}

	return out, nil
}
