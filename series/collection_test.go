package series

import "testing"

func TestCollectionMergeNewFile(t *testing.T) {
	col := NewCollection()
	cs := NewCurveSet("rec01.txt")
	cs.Add(FromValues("A", []float64{1}))

	got := col.Merge(cs)
	if got != cs {
		t.Fatal("Merge of a new file should return the set itself")
	}
	if col.Len() != 1 {
		t.Fatalf("Len = %d, want 1", col.Len())
	}
}

func TestCollectionMergeExistingFoldsCurves(t *testing.T) {
	col := NewCollection()

	first := NewCurveSet("rec01.txt")
	first.Add(FromValues("TIME", []float64{0, 5}))
	first.Add(FromValues("EEG1", []float64{1, 2}))
	col.Merge(first)

	derived := NewCurveSet("rec01.txt")
	derived.Add(FromValues("EEG1_Average5", []float64{1.5, 1.5}))
	derived.Add(FromValues("EEG1", []float64{9, 9})) // replaces original

	got := col.Merge(derived)
	if got != first {
		t.Fatal("Merge of an existing file should return the existing set")
	}
	if col.Len() != 1 {
		t.Fatalf("Len = %d after merge, want 1 (no duplicate file entries)", col.Len())
	}
	names := first.Names()
	wantNames := []string{"TIME", "EEG1", "EEG1_Average5"}
	if len(names) != len(wantNames) {
		t.Fatalf("Names = %v, want %v", names, wantNames)
	}
	for i := range wantNames {
		if names[i] != wantNames[i] {
			t.Fatalf("Names = %v, want %v", names, wantNames)
		}
	}
	eeg, _ := first.Curve("EEG1")
	if eeg.At(0) != 9 {
		t.Fatalf("EEG1[0] = %v, want 9 (same-name curve replaced on merge)", eeg.At(0))
	}
}

func TestCollectionSetAndRemove(t *testing.T) {
	col := NewCollection()
	col.Merge(NewCurveSet("a.txt"))
	col.Merge(NewCurveSet("b.txt"))

	if _, ok := col.Set("a.txt"); !ok {
		t.Fatal("Set(a.txt) not found")
	}
	if !col.Remove("a.txt") {
		t.Fatal("Remove(a.txt) = false, want true")
	}
	if col.Remove("a.txt") {
		t.Fatal("second Remove(a.txt) = true, want false")
	}
	files := col.Files()
	if len(files) != 1 || files[0] != "b.txt" {
		t.Fatalf("Files = %v, want [b.txt]", files)
	}
}

func TestCollectionMergeNil(t *testing.T) {
	col := NewCollection()
	if got := col.Merge(nil); got != nil {
		t.Fatalf("Merge(nil) = %v, want nil", got)
	}
	if col.Len() != 0 {
		t.Fatalf("Len = %d after nil merge, want 0", col.Len())
	}
}
