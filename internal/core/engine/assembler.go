package engine

import (
	"github.com/golang/geo/r2"

	"github.com/fieldrows/rowgen/internal/core/domain"
	"github.com/fieldrows/rowgen/internal/pkg/geospatial"
)

// assemble reprojects the clipped frame segments back to geographic
// coordinates and builds the final rows. This is the only place the
// inverse projection runs, and it uses the exact projection chosen
// during input projection, so round-tripping stays consistent.
//
// Rows are oriented A-end first: in the frame, B lies on +x, so
// ascending x runs from the A end toward the B end.
func assemble(clipped []clippedRow, names []string, fr frame, proj geospatial.Projection) []domain.GeneratedRow {
	rows := make([]domain.GeneratedRow, 0, len(clipped))
	for i, c := range clipped {
		start := toGeographic(fr, proj, r2.Point{X: c.x0, Y: c.offset})
		end := toGeographic(fr, proj, r2.Point{X: c.x1, Y: c.offset})

		rows = append(rows, domain.GeneratedRow{
			Name:        names[i],
			OffsetIndex: c.offsetIndex,
			SubIndex:    c.subIndex,
			Side:        rowSide(c.offsetIndex),
			Geometry:    domain.GeoLineString{Coordinates: []domain.GeoPoint{start, end}},
			LengthM:     c.x1 - c.x0,
		})
	}
	return rows
}

func toGeographic(fr frame, proj geospatial.Projection, p r2.Point) domain.GeoPoint {
	planar := fr.from(p)
	lat, lon := proj.Inverse(planar.X, planar.Y)
	return domain.GeoPoint{Lat: lat, Lon: lon}
}

// rowSide maps the offset index to the baseline half-plane the row lies
// in: positive offsets are the B-side (left of A→B), negative the
// A-side, zero the baseline itself.
func rowSide(k int) domain.Side {
	switch {
	case k > 0:
		return domain.SideB
	case k < 0:
		return domain.SideA
	default:
		return domain.SideBaseline
	}
}
