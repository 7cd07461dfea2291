package geospatial

import (
	"math"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// epsilon is the smallest central angle (radians) that is still divided by.
// Below it the interpolation weights collapse to the origin.
const epsilon = 1e-10

// Interpolate returns steps+1 points evenly spaced along the great circle
// from origin to destination, origin first.
//
// Identical endpoints yield a single-point path. Endpoints count as
// identical when they name the same place: longitudes -180 and 180 are the
// antimeridian, and any longitude at a pole is the pole. When the endpoints are
// closer than epsilon radians every point collapses onto the origin; this
// avoids dividing by a vanishing sin(d) and is an approximation, not an
// exact geometric answer. Coordinates are not validated: NaN in, NaN out.
// A steps value below 1 is treated as 1.
func Interpolate(origin, destination domain.GeoPoint, steps int) domain.GreatCirclePath {
	if samePoint(origin, destination) {
		return domain.GreatCirclePath{origin}
	}
	if steps < 1 {
		steps = 1
	}

	lat1, lon1 := toRad(origin.Lat), toRad(origin.Lon)
	lat2, lon2 := toRad(destination.Lat), toRad(destination.Lon)

	sinHalfLat := math.Sin((lat2 - lat1) / 2)
	sinHalfLon := math.Sin((lon2 - lon1) / 2)
	h := sinHalfLat*sinHalfLat + math.Cos(lat1)*math.Cos(lat2)*sinHalfLon*sinHalfLon
	d := 2 * math.Asin(math.Sqrt(math.Min(h, 1)))
	sinD := math.Sin(d)

	x1, y1, z1 := toCartesian(lat1, lon1)
	x2, y2, z2 := toCartesian(lat2, lon2)

	path := make(domain.GreatCirclePath, 0, steps+1)
	for i := 0; i <= steps; i++ {
		f := float64(i) / float64(steps)

		a, b := 1.0, 0.0
		if math.Abs(d) >= epsilon {
			a = math.Sin((1-f)*d) / sinD
			b = math.Sin(f*d) / sinD
		}

		x := a*x1 + b*x2
		y := a*y1 + b*y2
		z := a*z1 + b*z2

		path = append(path, domain.GeoPoint{
			Lat: toDeg(math.Atan2(z, math.Sqrt(x*x+y*y))),
			Lon: toDeg(math.Atan2(y, x)),
		})
	}
	return path
}

// samePoint reports whether a and b are the same location on the sphere.
func samePoint(a, b domain.GeoPoint) bool {
	if a.Lat != b.Lat {
		return false
	}
	if math.Abs(a.Lat) == 90 {
		return true
	}
	return normalizeLon(a.Lon) == normalizeLon(b.Lon)
}

// normalizeLon folds -180 onto 180.
func normalizeLon(lon float64) float64 {
	if lon == -180 {
		return 180
	}
	return lon
}

// toCartesian maps a latitude/longitude in radians onto the unit sphere.
func toCartesian(lat, lon float64) (x, y, z float64) {
	return math.Cos(lat) * math.Cos(lon), math.Cos(lat) * math.Sin(lon), math.Sin(lat)
}
