package domain

// GeoPoint represents a geographic coordinate (WGS 84) in degrees.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GreatCirclePath is an ordered sequence of points from an origin to a
// destination along the great circle joining them.
type GreatCirclePath []GeoPoint

// Origin returns the first point of the path.
func (p GreatCirclePath) Origin() GeoPoint {
	if len(p) == 0 {
		return GeoPoint{}
	}
	return p[0]
}

// Destination returns the last point of the path.
func (p GreatCirclePath) Destination() GeoPoint {
	if len(p) == 0 {
		return GeoPoint{}
	}
	return p[len(p)-1]
}

// Bounds represents a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Frame is one step of a flight animation: where the marker sits and
// which way it points.
type Frame struct {
	Index      int     `json:"index"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	BearingRad float64 `json:"bearing_rad"`
	HeadingDeg float64 `json:"heading_deg"`
	Done       bool    `json:"done"`
}
