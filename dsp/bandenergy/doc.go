// Package bandenergy decomposes a series into per-band spectral energy
// fractions.
//
// An Analyzer slides a tapered FFT frame across the input, one frame per
// input sample, reflecting the frame off the end of the series where it
// overruns. Each frame's power spectrum is partitioned at the configured
// frequency boundaries, and every band reports its fraction of the frame's
// total energy, so K boundaries produce K+1 output series of the input's
// length. Optional block averaging flattens each output series over runs of
// AverageLen samples.
package bandenergy
