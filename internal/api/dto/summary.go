package dto

import "route-summary-service/internal/presentation"

// Destination is null while the device has not reported a location yet.
type SummaryRequest struct {
	Destination *CoordinateRequest `json:"destination"`
}

type CoordinateRequest struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type SideResponse struct {
	Lat        float64  `json:"lat"`
	Lon        float64  `json:"lon"`
	ElevationM *float64 `json:"elevation_m"`
	Address    *string  `json:"address"`
}

type RouteResponse struct {
	DistanceKm                 float64 `json:"distance_km"`
	BearingOriginToDestination float64 `json:"bearing_origin_to_destination"`
	BearingDestinationToOrigin float64 `json:"bearing_destination_to_origin"`
}

type SummaryResponse struct {
	Origin      SideResponse         `json:"origin"`
	Destination *SideResponse        `json:"destination"`
	Route       *RouteResponse       `json:"route"`
	Display     presentation.Summary `json:"display"`
}
