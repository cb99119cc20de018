package series

// Collection holds the curve sets of all loaded recording files, in load
// order. File names are unique; merging a set for an already-loaded file
// folds its curves into the existing entry instead of creating a duplicate.
type Collection struct {
	sets []*CurveSet
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Merge adds set to the collection. If a set with the same file name is
// already present, the incoming curves are added to it (replacing curves of
// the same name) and the existing set is returned; otherwise set itself is
// added and returned.
func (col *Collection) Merge(set *CurveSet) *CurveSet {
	if set == nil {
		return nil
	}
	for _, existing := range col.sets {
		if existing.File() == set.File() {
			for _, c := range set.Curves() {
				existing.Add(c)
			}
			return existing
		}
	}
	col.sets = append(col.sets, set)
	return set
}

// Set returns the curve set for the given file name.
func (col *Collection) Set(file string) (*CurveSet, bool) {
	for _, s := range col.sets {
		if s.File() == file {
			return s, true
		}
	}
	return nil, false
}

// Remove deletes the set for the given file name and reports whether it was
// present.
func (col *Collection) Remove(file string) bool {
	for i, s := range col.sets {
		if s.File() == file {
			col.sets = append(col.sets[:i], col.sets[i+1:]...)
			return true
		}
	}
	return false
}

// Files returns the loaded file names in load order.
func (col *Collection) Files() []string {
	out := make([]string, len(col.sets))
	for i, s := range col.sets {
		out[i] = s.File()
	}
	return out
}

// Sets returns the curve sets in load order. The returned slice is a copy;
// the sets themselves are shared.
func (col *Collection) Sets() []*CurveSet {
	out := make([]*CurveSet, len(col.sets))
	copy(out, col.sets)
	return out
}

// Len returns the number of loaded files.
func (col *Collection) Len() int {
	return len(col.sets)
}

// Clear removes all sets.
func (col *Collection) Clear() {
	col.sets = col.sets[:0]
}
