package engine

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"

	"github.com/fieldrows/rowgen/internal/core/domain"
)

// validateArea checks the projected rings for structural problems:
// too few vertices, open rings, and self-intersection. These are caller
// errors, reported before any row is produced.
func validateArea(rings [][]r2.Point) error {
	if len(rings) == 0 {
		return fmt.Errorf("%w: area polygon has no rings", domain.ErrGeometry)
	}
	for i, ring := range rings {
		if len(ring) < 4 {
			return fmt.Errorf("%w: ring %d has %d points, need at least 4", domain.ErrGeometry, i, len(ring))
		}
		first, last := ring[0], ring[len(ring)-1]
		if first.Sub(last).Norm() > snapTol {
			return fmt.Errorf("%w: ring %d is not closed", domain.ErrGeometry, i)
		}
		if err := checkSelfIntersection(ring, i); err != nil {
			return err
		}
	}
	return nil
}

// checkSelfIntersection rejects rings whose non-adjacent edges properly
// cross. Offset counts are small so the quadratic scan is fine.
func checkSelfIntersection(ring []r2.Point, idx int) error {
	n := len(ring) - 1 // closing vertex repeats the first
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue // first and last edge share a vertex
			}
			if segmentsCross(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return fmt.Errorf("%w: ring %d self-intersects (edges %d and %d)", domain.ErrGeometry, idx, i, j)
			}
		}
	}
	return nil
}

// segmentsCross reports a proper crossing between segments pq and rs.
func segmentsCross(p, q, r, s r2.Point) bool {
	d1 := orient(r, s, p)
	d2 := orient(r, s, q)
	d3 := orient(p, q, r)
	d4 := orient(p, q, s)
	return d1*d2 < 0 && d3*d4 < 0
}

// orient returns the sign of the cross product (b-a) × (c-a), snapped to
// zero for near-collinear triples.
func orient(a, b, c r2.Point) float64 {
	v := b.Sub(a).Cross(c.Sub(a))
	if math.Abs(v) < 1e-12 {
		return 0
	}
	return v
}
