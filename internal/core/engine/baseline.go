package engine

import (
	"fmt"

	"github.com/golang/geo/r2"

	"github.com/fieldrows/rowgen/internal/core/domain"
)

// degenerateEps is the minimum baseline length in meters.
const degenerateEps = 1e-6

// frame is the baseline-aligned coordinate system: origin at A, +x along
// the unit direction u toward B, +y along the unit normal n (u rotated
// 90° counter-clockwise, i.e. the left side of A→B). Positive offsets
// therefore move left of the baseline; that left half-plane is the
// B-side, the right one the A-side.
type frame struct {
	origin r2.Point
	u, n   r2.Point
	length float64
}

// newFrame derives the frame from the planar baseline endpoints.
func newFrame(a, b r2.Point) (frame, error) {
	d := b.Sub(a)
	l := d.Norm()
	if l < degenerateEps {
		return frame{}, fmt.Errorf("%w: |AB| = %g m", domain.ErrDegenerateBaseline, l)
	}
	u := d.Mul(1 / l)
	return frame{origin: a, u: u, n: u.Ortho(), length: l}, nil
}

// to converts a planar point to frame coordinates: x is the distance
// along the baseline from A, y the signed perpendicular offset.
func (f frame) to(p r2.Point) r2.Point {
	d := p.Sub(f.origin)
	return r2.Point{X: d.Dot(f.u), Y: d.Dot(f.n)}
}

// from converts frame coordinates back to planar.
func (f frame) from(p r2.Point) r2.Point {
	return f.origin.Add(f.u.Mul(p.X)).Add(f.n.Mul(p.Y))
}

// ringsToFrame maps every ring into frame coordinates.
func (f frame) ringsToFrame(rings [][]r2.Point) [][]r2.Point {
	out := make([][]r2.Point, len(rings))
	for i, ring := range rings {
		fr := make([]r2.Point, len(ring))
		for j, p := range ring {
			fr[j] = f.to(p)
		}
		out[i] = fr
	}
	return out
}
