// Package smooth provides sliding-window filters over sample slices.
//
// Both filters slide a forward-looking window of fixed length across the
// input and tie off the trailing edge with a progressively shrinking mean,
// so the output always has the input length. TrimmedMean excludes the
// single largest and single smallest value of each full window; it is not a
// median filter.
package smooth
