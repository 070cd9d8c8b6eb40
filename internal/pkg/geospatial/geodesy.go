// Package geospatial holds the planar projection and geodesy math used by
// the row generation engine. Spacing is specified in meters, so all
// geometric work happens in a local projected CRS; this package supplies
// the forward and inverse transforms.
package geospatial

import "math"

const earthRadiusM = 6371000.0

// Haversine calculates the great-circle distance in meters between two
// geographic points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusM * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRad(deg float64) float64 { return deg * math.Pi / 180 }

func toDeg(rad float64) float64 { return rad * 180 / math.Pi }
