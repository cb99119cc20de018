// Package resample converts irregularly spaced series onto a uniform time
// grid using two-point linear interpolation.
//
// Timestamps are int64 ticks (typically milliseconds). The output grid is the
// lattice of multiples of the requested interval, anchored at the first input
// timestamp rounded down to a grid point; only grid points covered by an
// adjacent input pair are produced. ToGrid is a pure function of its inputs
// and carries no state between calls.
package resample
