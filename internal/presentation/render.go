// Package presentation renders a RouteSummary into the display strings the
// summary panel shows: fixed decimal precision, "N/A" for absent values,
// and a waiting message while no destination is known.
package presentation

import (
	"fmt"

	"route-summary-service/internal/domain"
)

const absent = "N/A"

// Shown while the destination coordinate is not available yet. Not an
// error: it is the valid state before the device reports a location.
const WaitingMessage = "waiting for destination coordinates"

type Side struct {
	Coordinates string `json:"coordinates"`
	Elevation   string `json:"elevation"`
	Address     string `json:"address"`
}

type Route struct {
	Distance                   string `json:"distance"`
	BearingOriginToDestination string `json:"bearing_origin_to_destination"`
	BearingDestinationToOrigin string `json:"bearing_destination_to_origin"`
}

type Summary struct {
	Status      string `json:"status"`
	Origin      Side   `json:"origin"`
	Destination *Side  `json:"destination,omitempty"`
	Route       *Route `json:"route,omitempty"`
}

// Render builds the display view for s. Coordinates use six decimal places,
// distance three, elevation and bearings one.
func Render(s domain.RouteSummary) Summary {
	out := Summary{
		Status: WaitingMessage,
		Origin: renderSide(s.Origin, s.OriginElevationM, s.OriginAddress),
	}

	if s.Destination == nil {
		return out
	}

	out.Status = "ok"
	dest := renderSide(*s.Destination, s.DestinationElevationM, s.DestinationAddress)
	out.Destination = &dest

	if s.DistanceKm != nil && s.BearingOriginToDestination != nil && s.BearingDestinationToOrigin != nil {
		out.Route = &Route{
			Distance:                   fmt.Sprintf("%.3f km", *s.DistanceKm),
			BearingOriginToDestination: fmt.Sprintf("%.1f°", *s.BearingOriginToDestination),
			BearingDestinationToOrigin: fmt.Sprintf("%.1f°", *s.BearingDestinationToOrigin),
		}
	}

	return out
}

func renderSide(c domain.Coordinate, elevationM *float64, address *string) Side {
	side := Side{
		Coordinates: c.String(),
		Elevation:   absent,
		Address:     absent,
	}

	if elevationM != nil {
		side.Elevation = fmt.Sprintf("%.1f m", *elevationM)
	}
	if address != nil {
		side.Address = *address
	}

	return side
}
