package geospatial

import (
	"fmt"
	"math"
)

// WGS 84 ellipsoid.
const (
	wgs84A = 6378137.0
	wgs84F = 1 / 298.257223563

	utmScale        = 0.9996
	utmFalseEasting = 500000.0
	utmFalseNorth   = 10000000.0

	webMercatorR = 6378137.0
)

type projKind int

const (
	projUTM projKind = iota
	projWebMercator
)

// Projection converts between geographic (lat/lon degrees) and planar
// (x/y meters) coordinates. Forward and Inverse are exact inverses of
// each other to well below 1e-6 degrees.
type Projection struct {
	kind  projKind
	epsg  int
	lon0  float64 // central meridian, degrees (UTM only)
	south bool
}

// EPSG returns the EPSG code of the projected CRS.
func (p Projection) EPSG() int { return p.epsg }

// UTMZoneFor picks the UTM zone covering the given point, the same zone
// selection a GIS would make: zone from longitude, hemisphere from
// latitude.
func UTMZoneFor(lat, lon float64) Projection {
	zone := int((lon+180)/6) + 1
	if zone < 1 {
		zone = 1
	}
	if zone > 60 {
		zone = 60
	}
	epsg := 32600 + zone
	south := lat < 0
	if south {
		epsg = 32700 + zone
	}
	return Projection{
		kind:  projUTM,
		epsg:  epsg,
		lon0:  float64(zone)*6 - 183,
		south: south,
	}
}

// ForEPSG resolves an explicit EPSG code. Supported: UTM zones
// (EPSG:32601-32660 north, 32701-32760 south) and Web Mercator
// (EPSG:3857).
func ForEPSG(code int) (Projection, error) {
	switch {
	case code == 3857:
		return Projection{kind: projWebMercator, epsg: 3857}, nil
	case code > 32600 && code <= 32660:
		zone := code - 32600
		return Projection{kind: projUTM, epsg: code, lon0: float64(zone)*6 - 183}, nil
	case code > 32700 && code <= 32760:
		zone := code - 32700
		return Projection{kind: projUTM, epsg: code, lon0: float64(zone)*6 - 183, south: true}, nil
	default:
		return Projection{}, fmt.Errorf("unsupported EPSG code %d", code)
	}
}

// Forward projects geographic degrees to planar meters.
func (p Projection) Forward(lat, lon float64) (x, y float64) {
	if p.kind == projWebMercator {
		x = webMercatorR * toRad(lon)
		y = webMercatorR * math.Log(math.Tan(math.Pi/4+toRad(lat)/2))
		return x, y
	}
	return p.utmForward(lat, lon)
}

// Inverse unprojects planar meters back to geographic degrees.
func (p Projection) Inverse(x, y float64) (lat, lon float64) {
	if p.kind == projWebMercator {
		lon = toDeg(x / webMercatorR)
		lat = toDeg(2*math.Atan(math.Exp(y/webMercatorR)) - math.Pi/2)
		return lat, lon
	}
	return p.utmInverse(x, y)
}

// Transverse Mercator series (Snyder, Map Projections: A Working Manual,
// USGS PP 1395, eqs. 8-9..8-25). Sub-millimeter within a UTM zone.

func (p Projection) utmForward(lat, lon float64) (x, y float64) {
	e2 := wgs84F * (2 - wgs84F)
	ep2 := e2 / (1 - e2)

	phi := toRad(lat)
	sin, cos := math.Sincos(phi)
	tan := sin / cos

	n := wgs84A / math.Sqrt(1-e2*sin*sin)
	t := tan * tan
	c := ep2 * cos * cos
	a := toRad(lon-p.lon0) * cos

	m := meridianArc(phi, e2)

	x = utmScale*n*(a+
		(1-t+c)*a*a*a/6+
		(5-18*t+t*t+72*c-58*ep2)*math.Pow(a, 5)/120) + utmFalseEasting

	y = utmScale * (m + n*tan*(a*a/2+
		(5-t+9*c+4*c*c)*math.Pow(a, 4)/24+
		(61-58*t+t*t+600*c-330*ep2)*math.Pow(a, 6)/720))
	if p.south {
		y += utmFalseNorth
	}
	return x, y
}

func (p Projection) utmInverse(x, y float64) (lat, lon float64) {
	e2 := wgs84F * (2 - wgs84F)
	ep2 := e2 / (1 - e2)

	if p.south {
		y -= utmFalseNorth
	}
	m := y / utmScale
	mu := m / (wgs84A * (1 - e2/4 - 3*e2*e2/64 - 5*e2*e2*e2/256))

	e1 := (1 - math.Sqrt(1-e2)) / (1 + math.Sqrt(1-e2))
	phi1 := mu +
		(3*e1/2-27*math.Pow(e1, 3)/32)*math.Sin(2*mu) +
		(21*e1*e1/16-55*math.Pow(e1, 4)/32)*math.Sin(4*mu) +
		(151*math.Pow(e1, 3)/96)*math.Sin(6*mu) +
		(1097*math.Pow(e1, 4)/512)*math.Sin(8*mu)

	sin1, cos1 := math.Sincos(phi1)
	tan1 := sin1 / cos1

	c1 := ep2 * cos1 * cos1
	t1 := tan1 * tan1
	n1 := wgs84A / math.Sqrt(1-e2*sin1*sin1)
	r1 := wgs84A * (1 - e2) / math.Pow(1-e2*sin1*sin1, 1.5)
	d := (x - utmFalseEasting) / (n1 * utmScale)

	phi := phi1 - (n1*tan1/r1)*(d*d/2-
		(5+3*t1+10*c1-4*c1*c1-9*ep2)*math.Pow(d, 4)/24+
		(61+90*t1+298*c1+45*t1*t1-252*ep2-3*c1*c1)*math.Pow(d, 6)/720)

	lam := (d -
		(1+2*t1+c1)*math.Pow(d, 3)/6 +
		(5-2*c1+28*t1-3*c1*c1+8*ep2+24*t1*t1)*math.Pow(d, 5)/120) / cos1

	return toDeg(phi), p.lon0 + toDeg(lam)
}

// meridianArc is the ellipsoidal arc length from the equator to phi.
func meridianArc(phi, e2 float64) float64 {
	return wgs84A * ((1-e2/4-3*e2*e2/64-5*e2*e2*e2/256)*phi -
		(3*e2/8+3*e2*e2/32+45*e2*e2*e2/1024)*math.Sin(2*phi) +
		(15*e2*e2/256+45*e2*e2*e2/1024)*math.Sin(4*phi) -
		(35*e2*e2*e2/3072)*math.Sin(6*phi))
}
