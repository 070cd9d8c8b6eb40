// Package engine implements the row generation pipeline: project the
// field boundary and AB baseline into a local planar CRS, sweep parallel
// offset lines across the boundary, clip them to the polygon, name the
// surviving segments, and attach destination points. Generation is a
// pure function of its inputs: the same area, baseline, configuration
// and clock always produce an identical RowSet.
package engine

import (
	"fmt"
	"time"

	"github.com/fieldrows/rowgen/internal/core/domain"
	"github.com/fieldrows/rowgen/internal/pkg/geospatial"
)

// snapTol is the geometric tolerance in meters for projected-space
// operations. Clipped segments at or below this length are discarded as
// degenerate.
const snapTol = 0.01

// Generate runs the full pipeline. It returns a complete RowSet or an
// error wrapping one of the domain error kinds; it never returns both.
func Generate(area domain.GeoMultiPolygon, baseline domain.Baseline, cfg domain.RowConfig, now time.Time) (*domain.RowSet, error) {
	if cfg.SpacingMeters <= 0 {
		return nil, fmt.Errorf("%w: spacing must be positive, got %g m", domain.ErrInvalidSpacing, cfg.SpacingMeters)
	}
	if cfg.StartNumber < 0 {
		return nil, fmt.Errorf("%w: start number must be non-negative, got %d", domain.ErrInvalidInput, cfg.StartNumber)
	}
	switch cfg.DestinationSide {
	case domain.SideA, domain.SideB, domain.SideNone, "":
	default:
		return nil, fmt.Errorf("%w: destination side must be A, B or none, got %q", domain.ErrInvalidInput, cfg.DestinationSide)
	}
	switch cfg.NumberingStyle {
	case domain.NumberingZeroPadded, domain.NumberingUnpadded, "":
	default:
		return nil, fmt.Errorf("%w: numbering style must be %q or %q, got %q", domain.ErrInvalidInput, domain.NumberingZeroPadded, domain.NumberingUnpadded, cfg.NumberingStyle)
	}

	in, err := project(area, baseline, cfg)
	if err != nil {
		return nil, err
	}
	if err := validateArea(in.rings); err != nil {
		return nil, err
	}

	fr, err := newFrame(in.a, in.b)
	if err != nil {
		return nil, err
	}
	rings := fr.ringsToFrame(in.rings)

	indices := offsetIndices(rings, cfg.SpacingMeters)

	var clipped []clippedRow
	for _, k := range indices {
		d := float64(k) * cfg.SpacingMeters
		for sub, sp := range clipOffsetLine(rings, d) {
			clipped = append(clipped, clippedRow{
				offsetIndex: k,
				subIndex:    sub,
				offset:      d,
				x0:          sp.x0,
				x1:          sp.x1,
			})
		}
	}

	names := assignNames(clipped, cfg)

	rows := assemble(clipped, names, fr, in.proj)
	dests := attachDestinations(rows, cfg.DestinationSide)

	return &domain.RowSet{
		Rows:         rows,
		Destinations: dests,
		Meta: domain.GenerationMeta{
			SpacingMeters:   cfg.SpacingMeters,
			EPSG:            in.proj.EPSG(),
			RowCount:        len(rows),
			BaselineLengthM: geospatial.Haversine(baseline.A.Lat, baseline.A.Lon, baseline.B.Lat, baseline.B.Lon),
			GeneratedAt:     now,
		},
	}, nil
}

// clippedRow is one boundary-clipped segment in the baseline frame:
// the interval [x0, x1] of the offset line y = offset.
type clippedRow struct {
	offsetIndex int
	subIndex    int
	offset      float64
	x0, x1      float64
}
