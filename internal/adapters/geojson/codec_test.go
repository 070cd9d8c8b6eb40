package geojson_test

import (
	"encoding/json"
	"errors"
	"testing"

	geocodec "github.com/fieldrows/rowgen/internal/adapters/geojson"
	"github.com/fieldrows/rowgen/internal/core/domain"
)

const validInput = `{
	"type": "FeatureCollection",
	"features": [
		{
			"type": "Feature",
			"properties": {},
			"geometry": {
				"type": "Polygon",
				"coordinates": [[[-3.0, 40.0], [-2.999, 40.0], [-2.999, 40.001], [-3.0, 40.001], [-3.0, 40.0]]]
			}
		},
		{
			"type": "Feature",
			"properties": {},
			"geometry": {
				"type": "LineString",
				"coordinates": [[-3.0, 40.0], [-2.999, 40.0]]
			}
		}
	]
}`

func TestDecodeInput(t *testing.T) {
	area, baseline, err := geocodec.DecodeInput([]byte(validInput))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(area.Polygons) != 1 {
		t.Fatalf("expected 1 polygon, got %d", len(area.Polygons))
	}
	ring := area.Polygons[0].Rings[0]
	if len(ring) != 5 {
		t.Fatalf("expected 5 ring points, got %d", len(ring))
	}
	// GeoJSON positions are [lon, lat].
	if ring[0].Lon != -3.0 || ring[0].Lat != 40.0 {
		t.Errorf("ring[0] = %+v, want lon -3 lat 40", ring[0])
	}

	if baseline.A.Lon != -3.0 || baseline.A.Lat != 40.0 {
		t.Errorf("baseline A = %+v", baseline.A)
	}
	if baseline.B.Lon != -2.999 || baseline.B.Lat != 40.0 {
		t.Errorf("baseline B = %+v", baseline.B)
	}
}

func TestDecodeInputMultiPolygon(t *testing.T) {
	input := `{
		"type": "FeatureCollection",
		"features": [
			{
				"type": "Feature",
				"properties": {},
				"geometry": {
					"type": "MultiPolygon",
					"coordinates": [
						[[[-3.0, 40.0], [-2.999, 40.0], [-2.999, 40.001], [-3.0, 40.0]]],
						[[[-2.99, 40.0], [-2.989, 40.0], [-2.989, 40.001], [-2.99, 40.0]]]
					]
				}
			},
			{
				"type": "Feature",
				"properties": {},
				"geometry": {"type": "LineString", "coordinates": [[-3.0, 40.0], [-2.999, 40.0]]}
			}
		]
	}`

	area, _, err := geocodec.DecodeInput([]byte(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(area.Polygons) != 2 {
		t.Errorf("expected 2 polygon parts, got %d", len(area.Polygons))
	}
}

func TestDecodeInputContractViolations(t *testing.T) {
	polygon := `{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[-3, 40], [-2.999, 40], [-2.999, 40.001], [-3, 40]]]}}`
	line := `{"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[-3, 40], [-2.999, 40]]}}`
	longLine := `{"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[-3, 40], [-2.999, 40], [-2.998, 40]]}}`
	shortPosLine := `{"type": "Feature", "properties": {}, "geometry": {"type": "LineString", "coordinates": [[-3.0], [-2.999]]}}`
	shortPosPolygon := `{"type": "Feature", "properties": {}, "geometry": {"type": "Polygon", "coordinates": [[[-3, 40], [-2.999], [-2.999, 40.001], [-3, 40]]]}}`

	fc := func(features ...string) string {
		out := `{"type": "FeatureCollection", "features": [`
		for i, f := range features {
			if i > 0 {
				out += ","
			}
			out += f
		}
		return out + `]}`
	}

	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{`},
		{"empty collection", fc()},
		{"missing baseline", fc(polygon)},
		{"missing area", fc(line)},
		{"two areas", fc(polygon, polygon, line)},
		{"two baselines", fc(polygon, line, line)},
		{"baseline with three points", fc(polygon, longLine)},
		{"baseline position with one ordinate", fc(polygon, shortPosLine)},
		{"ring position with one ordinate", fc(shortPosPolygon, line)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := geocodec.DecodeInput([]byte(tt.data))
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func testRowSet() *domain.RowSet {
	return &domain.RowSet{
		Rows: []domain.GeneratedRow{
			{
				Name:        "F01",
				OffsetIndex: 0,
				Side:        domain.SideBaseline,
				Geometry: domain.GeoLineString{Coordinates: []domain.GeoPoint{
					{Lat: 40.0, Lon: -3.0}, {Lat: 40.0, Lon: -2.999},
				}},
				LengthM: 85.2,
			},
			{
				Name:        "F02",
				OffsetIndex: 1,
				Side:        domain.SideB,
				Geometry: domain.GeoLineString{Coordinates: []domain.GeoPoint{
					{Lat: 40.0001, Lon: -3.0}, {Lat: 40.0001, Lon: -2.999},
				}},
				LengthM: 85.2,
			},
		},
		Destinations: []domain.DestinationPoint{
			{RowName: "F01", Side: domain.SideA, Location: domain.GeoPoint{Lat: 40.0, Lon: -3.0}},
			{RowName: "F02", Side: domain.SideA, Location: domain.GeoPoint{Lat: 40.0001, Lon: -3.0}},
		},
		Meta: domain.GenerationMeta{RowCount: 2},
	}
}

func TestEncode(t *testing.T) {
	fc := geocodec.Encode(testRowSet())

	if len(fc.Features) != 4 {
		t.Fatalf("expected 4 features, got %d", len(fc.Features))
	}

	// Rows come first, then destinations.
	for i, f := range fc.Features[:2] {
		if got := f.PropertyMustString("type"); got != geocodec.TypeRowPath {
			t.Errorf("features[%d] type = %q, want %q", i, got, geocodec.TypeRowPath)
		}
	}
	for i, f := range fc.Features[2:] {
		if got := f.PropertyMustString("type"); got != geocodec.TypeDestination {
			t.Errorf("features[%d] type = %q, want %q", i+2, got, geocodec.TypeDestination)
		}
	}

	row := fc.Features[0]
	if got := row.PropertyMustString("name"); got != "F01" {
		t.Errorf("row name = %q, want F01", got)
	}
	if row.Geometry.LineString[0][0] != -3.0 || row.Geometry.LineString[0][1] != 40.0 {
		t.Errorf("row coordinates = %v, want [lon, lat] ordering", row.Geometry.LineString[0])
	}

	dest := fc.Features[2]
	if got := dest.PropertyMustString("row_name"); got != "F01" {
		t.Errorf("destination row_name = %q, want F01", got)
	}
	if dest.Geometry.Point[0] != -3.0 || dest.Geometry.Point[1] != 40.0 {
		t.Errorf("destination point = %v", dest.Geometry.Point)
	}
}

func TestEncodeDeterministicIDs(t *testing.T) {
	a, _ := json.Marshal(geocodec.Encode(testRowSet()))
	b, _ := json.Marshal(geocodec.Encode(testRowSet()))
	if string(a) != string(b) {
		t.Error("encoding the same row set twice produced different documents")
	}

	fc := geocodec.Encode(testRowSet())
	seen := make(map[interface{}]bool)
	for _, f := range fc.Features {
		if f.ID == nil || f.ID == "" {
			t.Fatal("feature without an ID")
		}
		if seen[f.ID] {
			t.Fatalf("duplicate feature ID %v", f.ID)
		}
		seen[f.ID] = true
	}
}
