package engine

import (
	"testing"

	"github.com/fieldrows/rowgen/internal/core/domain"
)

func rowsAt(offsets ...int) []clippedRow {
	rows := make([]clippedRow, len(offsets))
	for i, k := range offsets {
		rows[i] = clippedRow{offsetIndex: k, x1: 100}
	}
	return rows
}

func TestAssignNamesZeroPadded(t *testing.T) {
	rows := rowsAt(2, 0, 1)
	names := assignNames(rows, domain.DefaultRowConfig())

	want := []string{"F01", "F02", "F03"}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("names[%d] = %q, want %q", i, names[i], w)
		}
	}
	// Sorted into ascending offset order alongside naming.
	if rows[0].offsetIndex != 0 || rows[2].offsetIndex != 2 {
		t.Errorf("rows not sorted by offset: %+v", rows)
	}
}

func TestAssignNamesUnpadded(t *testing.T) {
	cfg := domain.DefaultRowConfig()
	cfg.NumberingStyle = domain.NumberingUnpadded
	cfg.StartNumber = 9

	names := assignNames(rowsAt(0, 1, 2), cfg)
	want := []string{"F9", "F10", "F11"}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("names[%d] = %q, want %q", i, names[i], w)
		}
	}
}

func TestAssignNamesUnsetStyleIsZeroPadded(t *testing.T) {
	cfg := domain.DefaultRowConfig()
	cfg.NumberingStyle = ""

	names := assignNames(rowsAt(0, 1), cfg)
	if names[0] != "F01" || names[1] != "F02" {
		t.Errorf("names = %v, want zero-padded defaults", names)
	}
}

func TestAssignNamesDescending(t *testing.T) {
	cfg := domain.DefaultRowConfig()
	cfg.Descending = true

	rows := rowsAt(0, 1, 2)
	names := assignNames(rows, cfg)

	if rows[0].offsetIndex != 2 {
		t.Fatalf("descending should start from the far offset, got %d", rows[0].offsetIndex)
	}
	if names[0] != "F01" {
		t.Errorf("first name = %q, want F01", names[0])
	}
}

func TestAssignNamesSubIndexOrder(t *testing.T) {
	// A concave offset yields two segments; each consumes a name slot.
	rows := []clippedRow{
		{offsetIndex: 1, subIndex: 1},
		{offsetIndex: 1, subIndex: 0},
		{offsetIndex: 0, subIndex: 0},
	}
	names := assignNames(rows, domain.DefaultRowConfig())

	if rows[1].offsetIndex != 1 || rows[1].subIndex != 0 {
		t.Fatalf("expected (1,0) second, got (%d,%d)", rows[1].offsetIndex, rows[1].subIndex)
	}
	want := []string{"F01", "F02", "F03"}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("names[%d] = %q, want %q", i, names[i], w)
		}
	}
}

func TestAssignNamesCycleLetters(t *testing.T) {
	cfg := domain.DefaultRowConfig()
	cfg.CycleLetters = true

	names := assignNames(rowsAt(0, 1, 2), cfg)
	want := []string{"F01", "G02", "H03"}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("names[%d] = %q, want %q", i, names[i], w)
		}
	}
}

func TestAssignNamesCycleLettersWrapsAroundZ(t *testing.T) {
	cfg := domain.DefaultRowConfig()
	cfg.CycleLetters = true
	cfg.StartLetter = "Y"

	names := assignNames(rowsAt(0, 1, 2), cfg)
	want := []string{"Y01", "Z02", "A03"}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("names[%d] = %q, want %q", i, names[i], w)
		}
	}
}

func TestAssignNamesDualZone(t *testing.T) {
	cfg := domain.DefaultRowConfig()
	cfg.DualZone = true

	names := assignNames(rowsAt(0, 1), cfg)
	want := []string{"F01/F02", "F02/F03"}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("names[%d] = %q, want %q", i, names[i], w)
		}
	}
}

func TestAssignNamesLowercaseStartLetter(t *testing.T) {
	cfg := domain.DefaultRowConfig()
	cfg.StartLetter = "b"

	names := assignNames(rowsAt(0), cfg)
	if names[0] != "B01" {
		t.Errorf("name = %q, want B01", names[0])
	}
}

func TestAssignNamesUnique(t *testing.T) {
	offsets := make([]int, 40)
	for i := range offsets {
		offsets[i] = i
	}
	names := assignNames(rowsAt(offsets...), domain.DefaultRowConfig())

	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Fatalf("duplicate name %q", n)
		}
		seen[n] = true
	}
}
