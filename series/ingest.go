package series

import "fmt"

// FromColumns builds a CurveSet from parsed column data: one curve per
// header name, samples taken column-wise from rows. Every row must be as
// wide as the header. Sentinel filtering and numeric parsing are the
// caller's job; this is the hand-off point from the file reader.
func FromColumns(file string, names []string, rows [][]float64) (*CurveSet, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("series: no column names for %q", file)
	}
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("series: empty column name in %q", file)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("series: duplicate column %q in %q", name, file)
		}
		seen[name] = struct{}{}
	}
	set := NewCurveSet(file)
	curves := make([]*TimeSeries, len(names))
	for i, name := range names {
		curves[i] = New(name)
		set.Add(curves[i])
	}
	for r, row := range rows {
		if len(row) != len(names) {
			return nil, fmt.Errorf("series: row %d of %q has %d values, want %d", r, file, len(row), len(names))
		}
		for i, v := range row {
			curves[i].Append(v)
		}
	}
	return set, nil
}
