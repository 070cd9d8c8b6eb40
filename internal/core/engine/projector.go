package engine

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"

	"github.com/fieldrows/rowgen/internal/core/domain"
	"github.com/fieldrows/rowgen/internal/pkg/geospatial"
)

// projectedInput is the generation input in planar meters. rings holds
// every ring of every polygon part; even-odd clipping treats holes and
// additional parts uniformly.
type projectedInput struct {
	proj  geospatial.Projection
	rings [][]r2.Point
	a, b  r2.Point
}

// project resolves the planar CRS and converts the area and baseline
// into it. Without an EPSG override the UTM zone is derived from the
// polygon centroid, the same selection the interactive tool makes.
func project(area domain.GeoMultiPolygon, baseline domain.Baseline, cfg domain.RowConfig) (*projectedInput, error) {
	var proj geospatial.Projection
	if cfg.EPSG != 0 {
		p, err := geospatial.ForEPSG(cfg.EPSG)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrProjection, err)
		}
		proj = p
	} else {
		lat, lon, err := areaCentroid(area)
		if err != nil {
			return nil, err
		}
		proj = geospatial.UTMZoneFor(lat, lon)
	}

	out := &projectedInput{proj: proj}
	for _, poly := range area.Polygons {
		for _, ring := range poly.Rings {
			pr := make([]r2.Point, len(ring))
			for i, pt := range ring {
				x, y := proj.Forward(pt.Lat, pt.Lon)
				pr[i] = r2.Point{X: x, Y: y}
			}
			out.rings = append(out.rings, pr)
		}
	}

	ax, ay := proj.Forward(baseline.A.Lat, baseline.A.Lon)
	bx, by := proj.Forward(baseline.B.Lat, baseline.B.Lon)
	out.a = r2.Point{X: ax, Y: ay}
	out.b = r2.Point{X: bx, Y: by}
	return out, nil
}

// areaCentroid computes the area-weighted centroid of the outer rings
// via the shoelace formula. Degenerate (empty or zero-area) input leaves
// the centroid undefined, which is a projection failure because no local
// zone can be chosen.
func areaCentroid(area domain.GeoMultiPolygon) (lat, lon float64, err error) {
	var sumA, sumLat, sumLon float64
	for _, poly := range area.Polygons {
		if len(poly.Rings) == 0 {
			continue
		}
		outer := poly.Rings[0]
		for i := 0; i+1 < len(outer); i++ {
			p, q := outer[i], outer[i+1]
			cross := p.Lon*q.Lat - q.Lon*p.Lat
			sumA += cross
			sumLon += (p.Lon + q.Lon) * cross
			sumLat += (p.Lat + q.Lat) * cross
		}
	}
	if math.Abs(sumA) < 1e-16 {
		return 0, 0, fmt.Errorf("%w: cannot compute centroid of empty or zero-area polygon", domain.ErrProjection)
	}
	return sumLat / (3 * sumA), sumLon / (3 * sumA), nil
}
