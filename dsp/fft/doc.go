// Package fft provides an in-place radix-2 decimation-in-time FFT over
// split real/imaginary float64 slices.
//
// An Engine is planned once for a fixed power-of-two length and precomputes
// its twiddle tables; Transform then runs allocation-free on caller buffers.
// This keeps per-frame cost low for sliding-frame analysis where the same
// length is transformed thousands of times.
package fft
