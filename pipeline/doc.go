// Package pipeline wires the processing stages into named derived curves.
//
// Every operation reads an input series and produces fresh series whose
// names extend the input's name with a stage suffix (EEG1_Average5,
// EEG1_Resample10, EEG1_Gauss250, EEG1_f13_20), keeping the derivation
// chain visible to the presentation layer. Configuration is an explicit value assembled with
// options; nothing is shared between invocations, so independent analyses
// can run concurrently.
package pipeline
