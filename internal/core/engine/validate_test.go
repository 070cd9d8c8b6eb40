package engine

import (
	"errors"
	"testing"

	"github.com/golang/geo/r2"

	"github.com/fieldrows/rowgen/internal/core/domain"
)

func TestValidateAreaAcceptsSquare(t *testing.T) {
	if err := validateArea(squareRings()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateAreaNoRings(t *testing.T) {
	if err := validateArea(nil); !errors.Is(err, domain.ErrGeometry) {
		t.Fatalf("expected ErrGeometry, got %v", err)
	}
}

func TestValidateAreaTooFewPoints(t *testing.T) {
	rings := [][]r2.Point{ring([2]float64{0, 0}, [2]float64{100, 0}, [2]float64{0, 0})}
	if err := validateArea(rings); !errors.Is(err, domain.ErrGeometry) {
		t.Fatalf("expected ErrGeometry, got %v", err)
	}
}

func TestValidateAreaOpenRing(t *testing.T) {
	rings := [][]r2.Point{ring([2]float64{0, 0}, [2]float64{100, 0}, [2]float64{100, 100}, [2]float64{0, 100})}
	if err := validateArea(rings); !errors.Is(err, domain.ErrGeometry) {
		t.Fatalf("expected ErrGeometry, got %v", err)
	}
}

func TestValidateAreaSelfIntersection(t *testing.T) {
	// Bowtie: the two diagonals cross.
	rings := [][]r2.Point{ring(
		[2]float64{0, 0}, [2]float64{100, 100}, [2]float64{100, 0},
		[2]float64{0, 100}, [2]float64{0, 0},
	)}
	if err := validateArea(rings); !errors.Is(err, domain.ErrGeometry) {
		t.Fatalf("expected ErrGeometry for bowtie, got %v", err)
	}
}

func TestValidateAreaClosedWithinTolerance(t *testing.T) {
	// A ring whose closing vertex is off by a few millimeters still
	// counts as closed.
	rings := [][]r2.Point{ring(
		[2]float64{0, 0}, [2]float64{100, 0}, [2]float64{100, 100},
		[2]float64{0, 100}, [2]float64{0.003, 0.003},
	)}
	if err := validateArea(rings); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
