package domain

// GeoPoint represents a geographic coordinate (WGS 84).
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GeoLineString represents an ordered sequence of geographic coordinates.
type GeoLineString struct {
	Coordinates []GeoPoint `json:"coordinates"`
}

// GeoPolygon is a polygon as a list of closed rings, outer ring first,
// any following rings are holes.
type GeoPolygon struct {
	Rings [][]GeoPoint `json:"rings"`
}

// GeoMultiPolygon is one or more polygons treated as a single area.
// A plain Polygon input becomes a one-element GeoMultiPolygon.
type GeoMultiPolygon struct {
	Polygons []GeoPolygon `json:"polygons"`
}

// Empty reports whether the area contains no rings at all.
func (m GeoMultiPolygon) Empty() bool {
	for _, p := range m.Polygons {
		if len(p.Rings) > 0 {
			return false
		}
	}
	return true
}
