// Package geodesy provides closed-form spherical-earth geometry between
// WGS84 coordinates: great-circle distance and initial bearing.
package geodesy

import (
	"math"

	"route-summary-service/internal/domain"
)

// Mean Earth radius in kilometers used by the haversine formula.
const EarthRadiusKm = 6371.0

// Distance returns the great-circle distance between a and b in kilometers
// using the haversine formula.
//
// The atan2 form is used instead of asin so the result stays well-defined
// for near-antipodal points. For any in-range inputs the result is finite,
// non-negative and symmetric in its arguments.
func Distance(a, b domain.Coordinate) float64 {
	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	deltaLat := radians(b.Lat - a.Lat)
	deltaLon := radians(b.Lon - a.Lon)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// Bearing returns the initial forward azimuth at a pointing toward b, in
// degrees clockwise from true north, normalized to [0, 360).
//
// Coincident points have no defined azimuth; Bearing returns 0 in that case
// by convention (an explicit special case, not a property of the formula).
// The reverse bearing is in general not the forward bearing offset by 180°,
// so callers needing both directions must compute each independently.
func Bearing(a, b domain.Coordinate) float64 {
	if a == b {
		return 0
	}

	lat1 := radians(a.Lat)
	lat2 := radians(b.Lat)
	deltaLon := radians(b.Lon - a.Lon)

	y := math.Sin(deltaLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(deltaLon)

	return math.Mod(math.Atan2(y, x)*180/math.Pi+360, 360)
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
