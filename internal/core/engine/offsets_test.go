package engine

import (
	"testing"

	"github.com/golang/geo/r2"
)

func TestOffsetIndicesInclusiveBounds(t *testing.T) {
	// Extent 0..100 with spacing 10: both boundary offsets are included.
	got := offsetIndices(squareRings(), 10)
	if len(got) != 11 {
		t.Fatalf("expected 11 indices, got %d: %v", len(got), got)
	}
	if got[0] != 0 || got[len(got)-1] != 10 {
		t.Errorf("indices = %v, want 0..10", got)
	}
}

func TestOffsetIndicesNonAlignedExtent(t *testing.T) {
	got := offsetIndices(squareRings(), 30)
	want := []int{0, 1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("indices = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("indices = %v, want %v", got, want)
		}
	}
}

func TestOffsetIndicesNegativeExtent(t *testing.T) {
	// Area straddling the baseline: extent -55..45.
	r := ring([2]float64{0, -55}, [2]float64{100, -55}, [2]float64{100, 45}, [2]float64{0, 45}, [2]float64{0, -55})
	got := offsetIndices([][]r2.Point{r}, 10)
	if len(got) == 0 || got[0] != -5 || got[len(got)-1] != 4 {
		t.Errorf("indices %v, want -5..4", got)
	}
}

func TestOffsetIndicesEmpty(t *testing.T) {
	if got := offsetIndices(nil, 10); got != nil {
		t.Errorf("expected nil for empty rings, got %v", got)
	}
}
