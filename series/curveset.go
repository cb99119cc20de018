package series

// CurveSet holds every curve of one recording file. Curves keep their
// first-insertion order for iteration and export; names are unique within a
// set, and adding a curve under an existing name replaces that entry in
// place.
type CurveSet struct {
	file   string
	curves []*TimeSeries
}

// NewCurveSet returns an empty set for the given file name.
func NewCurveSet(file string) *CurveSet {
	return &CurveSet{file: file}
}

// File returns the recording file name the set belongs to.
func (cs *CurveSet) File() string {
	return cs.file
}

// Add inserts ts, replacing any existing curve of the same name at its
// original position.
func (cs *CurveSet) Add(ts *TimeSeries) {
	for i, c := range cs.curves {
		if c.Name() == ts.Name() {
			cs.curves[i] = ts
			return
		}
	}
	cs.curves = append(cs.curves, ts)
}

// Curve returns the curve with the given name.
func (cs *CurveSet) Curve(name string) (*TimeSeries, bool) {
	for _, c := range cs.curves {
		if c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// TimeCurve returns the reserved time-axis curve, if present.
func (cs *CurveSet) TimeCurve() (*TimeSeries, bool) {
	return cs.Curve(TimeAxisName)
}

// Remove deletes the named curve and reports whether it was present.
func (cs *CurveSet) Remove(name string) bool {
	for i, c := range cs.curves {
		if c.Name() == name {
			cs.curves = append(cs.curves[:i], cs.curves[i+1:]...)
			return true
		}
	}
	return false
}

// Names returns the curve names in insertion order.
func (cs *CurveSet) Names() []string {
	out := make([]string, len(cs.curves))
	for i, c := range cs.curves {
		out[i] = c.Name()
	}
	return out
}

// Curves returns the curves in insertion order. The returned slice is a
// copy; the curves themselves are shared.
func (cs *CurveSet) Curves() []*TimeSeries {
	out := make([]*TimeSeries, len(cs.curves))
	copy(out, cs.curves)
	return out
}

// Len returns the number of curves.
func (cs *CurveSet) Len() int {
	return len(cs.curves)
}

// Clear removes all curves.
func (cs *CurveSet) Clear() {
	cs.curves = cs.curves[:0]
}

// Rows returns the set as aligned rows, one column per curve in insertion
// order. Rows are truncated to the shortest curve so that every row is
// fully populated.
func (cs *CurveSet) Rows() [][]float64 {
	if len(cs.curves) == 0 {
		return nil
	}
	n := cs.curves[0].Len()
	for _, c := range cs.curves[1:] {
		if c.Len() < n {
			n = c.Len()
		}
	}
	rows := make([][]float64, n)
	for r := range rows {
		row := make([]float64, len(cs.curves))
		for i, c := range cs.curves {
			row[i] = c.At(r)
		}
		rows[r] = row
	}
	return rows
}
