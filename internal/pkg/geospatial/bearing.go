package geospatial

import (
	"math"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// Bearing returns the initial great-circle heading from one point toward
// another, clockwise from true north, in radians within (-π, π].
func Bearing(from, to domain.GeoPoint) float64 {
	lat1, lat2 := toRad(from.Lat), toRad(to.Lat)
	dLon := toRad(to.Lon - from.Lon)

	x := math.Sin(dLon) * math.Cos(lat2)
	y := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	theta := math.Atan2(x, y)
	if theta <= -math.Pi {
		theta = math.Pi
	}
	return theta
}

// BearingDegrees returns Bearing as a compass heading in [0, 360).
func BearingDegrees(from, to domain.GeoPoint) float64 {
	return CompassDegrees(Bearing(from, to))
}

// CompassDegrees converts a signed bearing in radians to [0, 360) degrees.
func CompassDegrees(rad float64) float64 {
	deg := math.Mod(toDeg(rad)+360, 360)
	if deg >= 360 {
		deg = 0
	}
	return deg
}

// PathBearings returns the bearing of every consecutive pair of a path,
// so the result has one element fewer than the path.
func PathBearings(path domain.GreatCirclePath) []float64 {
	if len(path) < 2 {
		return nil
	}
	out := make([]float64, len(path)-1)
	for i := range out {
		out[i] = Bearing(path[i], path[i+1])
	}
	return out
}
