// Package series provides the in-memory data model for recorded channels:
// TimeSeries (one named channel), CurveSet (all channels of one recording
// file), and Collection (all loaded recordings).
//
// The package holds data only. Parsing recordings into columns and rendering
// curves are left to callers; FromColumns is the hand-off point for parsed
// column data, and (*CurveSet).Rows is the hand-off point for tabular export.
package series
