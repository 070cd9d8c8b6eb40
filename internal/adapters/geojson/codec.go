// Package geojson converts between GeoJSON feature collections and the
// row generation domain types. Decoding enforces the input contract:
// exactly one Polygon or MultiPolygon (the area) and exactly one
// LineString with exactly two coordinates (the A→B baseline).
package geojson

import (
	"fmt"

	"github.com/google/uuid"
	gj "github.com/paulmach/go.geojson"

	"github.com/fieldrows/rowgen/internal/core/domain"
)

// featureNamespace seeds the name-based UUIDs assigned to output
// features. Fixed so identical inputs produce identical documents.
var featureNamespace = uuid.MustParse("8a6e1dcb-3f26-4fbd-9f0c-55f0e30a41a7")

// Feature property values identifying output feature roles.
const (
	TypeRowPath     = "RowPath"
	TypeDestination = "DestinationPoint"
)

// DecodeInput parses a GeoJSON FeatureCollection and extracts the area
// and baseline. Violations of the input contract are reported as
// domain.ErrInvalidInput before any generation work happens.
func DecodeInput(data []byte) (domain.GeoMultiPolygon, domain.Baseline, error) {
	var area domain.GeoMultiPolygon
	var baseline domain.Baseline

	fc, err := gj.UnmarshalFeatureCollection(data)
	if err != nil {
		return area, baseline, fmt.Errorf("%w: not a GeoJSON feature collection: %v", domain.ErrInvalidInput, err)
	}

	var areas, lines []*gj.Geometry
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		switch f.Geometry.Type {
		case gj.GeometryPolygon, gj.GeometryMultiPolygon:
			areas = append(areas, f.Geometry)
		case gj.GeometryLineString:
			lines = append(lines, f.Geometry)
		}
	}

	if len(areas) != 1 {
		return area, baseline, fmt.Errorf("%w: need exactly one Polygon or MultiPolygon feature, got %d", domain.ErrInvalidInput, len(areas))
	}
	if len(lines) != 1 {
		return area, baseline, fmt.Errorf("%w: need exactly one LineString feature, got %d", domain.ErrInvalidInput, len(lines))
	}

	area, err = decodeArea(areas[0])
	if err != nil {
		return area, baseline, err
	}
	if area.Empty() {
		return area, baseline, fmt.Errorf("%w: area polygon has no rings", domain.ErrInvalidInput)
	}

	coords := lines[0].LineString
	if len(coords) != 2 {
		return area, baseline, fmt.Errorf("%w: baseline must have exactly 2 coordinates, got %d", domain.ErrInvalidInput, len(coords))
	}
	a, err := toGeoPoint(coords[0])
	if err != nil {
		return area, baseline, err
	}
	b, err := toGeoPoint(coords[1])
	if err != nil {
		return area, baseline, err
	}
	baseline = domain.Baseline{A: a, B: b}

	return area, baseline, nil
}

func decodeArea(g *gj.Geometry) (domain.GeoMultiPolygon, error) {
	var out domain.GeoMultiPolygon
	if g.Type == gj.GeometryPolygon {
		p, err := decodePolygon(g.Polygon)
		if err != nil {
			return out, err
		}
		out.Polygons = append(out.Polygons, p)
		return out, nil
	}
	for _, poly := range g.MultiPolygon {
		p, err := decodePolygon(poly)
		if err != nil {
			return out, err
		}
		out.Polygons = append(out.Polygons, p)
	}
	return out, nil
}

func decodePolygon(rings [][][]float64) (domain.GeoPolygon, error) {
	var p domain.GeoPolygon
	for _, ring := range rings {
		r := make([]domain.GeoPoint, len(ring))
		for i, c := range ring {
			pt, err := toGeoPoint(c)
			if err != nil {
				return p, err
			}
			r[i] = pt
		}
		p.Rings = append(p.Rings, r)
	}
	return p, nil
}

// toGeoPoint converts one GeoJSON position ([lon, lat, ...]). The
// unmarshaler accepts positions of any length, so the arity is checked
// here rather than assumed.
func toGeoPoint(c []float64) (domain.GeoPoint, error) {
	if len(c) < 2 {
		return domain.GeoPoint{}, fmt.Errorf("%w: position needs [lon, lat], got %d ordinate(s)", domain.ErrInvalidInput, len(c))
	}
	return domain.GeoPoint{Lon: c[0], Lat: c[1]}, nil
}

// Encode builds the output FeatureCollection: LineString row features in
// offset order, then destination Point features. Feature IDs are
// name-based UUIDs so the encoded document is byte-stable across runs.
func Encode(rs *domain.RowSet) *gj.FeatureCollection {
	fc := gj.NewFeatureCollection()

	for _, row := range rs.Rows {
		coords := make([][]float64, len(row.Geometry.Coordinates))
		for i, pt := range row.Geometry.Coordinates {
			coords[i] = []float64{pt.Lon, pt.Lat}
		}
		f := gj.NewLineStringFeature(coords)
		f.ID = featureID("row", row.Name)
		f.SetProperty("type", TypeRowPath)
		f.SetProperty("name", row.Name)
		f.SetProperty("offset_index", row.OffsetIndex)
		f.SetProperty("sub_index", row.SubIndex)
		f.SetProperty("side", string(row.Side))
		f.SetProperty("length_m", row.LengthM)
		fc.AddFeature(f)
	}

	for _, d := range rs.Destinations {
		f := gj.NewPointFeature([]float64{d.Location.Lon, d.Location.Lat})
		f.ID = featureID("destination", d.RowName)
		f.SetProperty("type", TypeDestination)
		f.SetProperty("row_name", d.RowName)
		f.SetProperty("side", string(d.Side))
		fc.AddFeature(f)
	}

	return fc
}

func featureID(kind, name string) string {
	return uuid.NewSHA1(featureNamespace, []byte(kind+":"+name)).String()
}
