package series

// TimeAxisName is the reserved curve name for the shared time axis of a
// CurveSet.
const TimeAxisName = "TIME"

// TimeSeries is one named channel of float64 samples in recording order.
// The name doubles as the identity within a CurveSet. Derived series carry
// the name of the series they were computed from.
type TimeSeries struct {
	name    string
	parent  string
	samples []float64
}

// New returns an empty series with the given name.
func New(name string) *TimeSeries {
	return &TimeSeries{name: name}
}

// NewDerived returns an empty series that records parent as its origin.
func NewDerived(name, parent string) *TimeSeries {
	return &TimeSeries{name: name, parent: parent}
}

// FromValues returns a series initialized with a copy of values.
func FromValues(name string, values []float64) *TimeSeries {
	s := make([]float64, len(values))
	copy(s, values)
	return &TimeSeries{name: name, samples: s}
}

// Name returns the series name.
func (ts *TimeSeries) Name() string {
	return ts.name
}

// Parent returns the name of the series this one was derived from, or ""
// for ingested series.
func (ts *TimeSeries) Parent() string {
	return ts.parent
}

// Append adds samples to the end of the series.
func (ts *TimeSeries) Append(values ...float64) {
	ts.samples = append(ts.samples, values...)
}

// At returns the sample at index i. Panics if i is out of range.
func (ts *TimeSeries) At(i int) float64 {
	return ts.samples[i]
}

// Len returns the number of samples.
func (ts *TimeSeries) Len() int {
	return len(ts.samples)
}

// Samples returns the underlying slice without copying. Transforms read it;
// callers that need to mutate should work on Values instead.
func (ts *TimeSeries) Samples() []float64 {
	return ts.samples
}

// Values returns a copy of the samples.
func (ts *TimeSeries) Values() []float64 {
	out := make([]float64, len(ts.samples))
	copy(out, ts.samples)
	return out
}

// SetSamples replaces the series content in place, for callers that filter
// a series without renaming it.
func (ts *TimeSeries) SetSamples(values []float64) {
	ts.samples = ts.samples[:0]
	ts.samples = append(ts.samples, values...)
}

// Clear removes all samples, keeping name and parent.
func (ts *TimeSeries) Clear() {
	ts.samples = ts.samples[:0]
}
