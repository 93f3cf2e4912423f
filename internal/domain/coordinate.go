package domain

import (
	"fmt"
	"math"
)

// Immutable WGS84 point (latitude, longitude) in decimal degrees.
type Coordinate struct {
	Lat float64
	Lon float64
}

// NewCoordinate validates the WGS84 ranges: latitude in [-90, 90],
// longitude in [-180, 180). An out-of-range value is a caller contract
// violation and is rejected before any computation.
func NewCoordinate(lat, lon float64) (Coordinate, error) {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return Coordinate{}, fmt.Errorf("new coordinate: lat/lon must be real numbers, got (%v, %v)", lat, lon)
	}
	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("new coordinate: latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon >= 180 {
		return Coordinate{}, fmt.Errorf("new coordinate: longitude %v out of range [-180, 180)", lon)
	}

	return Coordinate{Lat: lat, Lon: lon}, nil
}

// Render as "lat, lon" with six decimal places.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f, %.6f", c.Lat, c.Lon)
}
