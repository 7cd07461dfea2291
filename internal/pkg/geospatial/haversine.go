package geospatial

import (
	"math"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// EarthRadiusKm is the mean Earth radius used by every calculation here.
const EarthRadiusKm = 6371.0

// KmToMiles converts kilometres to statute miles.
const KmToMiles = 0.621371

// DistanceKm calculates the great-circle distance in kilometres between two points.
func DistanceKm(a, b domain.GeoPoint) float64 {
	return EarthRadiusKm * centralAngle(a, b)
}

// centralAngle returns the angle in radians subtended at the Earth's
// centre by a and b, using the haversine formula.
func centralAngle(a, b domain.GeoPoint) float64 {
	dLat := toRad(b.Lat - a.Lat)
	dLon := toRad(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(a.Lat))*math.Cos(toRad(b.Lat))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// PathBounds returns the bounding box of the points of a path.
// Paths crossing the antimeridian yield a box spanning the whole
// longitude range between their extremes.
func PathBounds(path domain.GreatCirclePath) domain.Bounds {
	if len(path) == 0 {
		return domain.Bounds{}
	}
	b := domain.Bounds{
		MinLat: path[0].Lat, MaxLat: path[0].Lat,
		MinLon: path[0].Lon, MaxLon: path[0].Lon,
	}
	for _, p := range path[1:] {
		b.MinLat = math.Min(b.MinLat, p.Lat)
		b.MaxLat = math.Max(b.MaxLat, p.Lat)
		b.MinLon = math.Min(b.MinLon, p.Lon)
		b.MaxLon = math.Max(b.MaxLon, p.Lon)
	}
	return b
}

// Midpoint returns the middle element of a path, used to centre a map on it.
func Midpoint(path domain.GreatCirclePath) domain.GeoPoint {
	if len(path) == 0 {
		return domain.GeoPoint{}
	}
	return path[len(path)/2]
}

func toRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func toDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}
