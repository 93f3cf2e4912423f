package services

import (
	"context"

	"route-summary-service/internal/domain"
	"route-summary-service/internal/geodesy"
	"route-summary-service/internal/ports"
)

// ComputeSummary runs one full derivation cycle for an origin/destination
// pair.
//
// With a nil destination it returns a waiting-state summary: route fields
// stay absent but origin enrichment is still attempted. With a destination
// present it computes the distance and both initial bearings, then enriches
// each side with elevation and address. The four lookups are independent: a
// failed lookup leaves only its own field absent and never blocks the
// geometric fields or the other lookups.
//
// A nil provider skips its lookups entirely. The cycle is synchronous and
// keeps no state between calls; latency is bounded by the providers' own
// timeouts.
func ComputeSummary(
	ctx context.Context,
	origin domain.Coordinate,
	destination *domain.Coordinate,
	elevation ports.ElevationProvider,
	address ports.AddressProvider,
) domain.RouteSummary {
	summary := domain.RouteSummary{Origin: origin}

	if destination != nil {
		dest := *destination
		summary.Destination = &dest

		distanceKm := geodesy.Distance(origin, dest)
		bearingOD := geodesy.Bearing(origin, dest)
		bearingDO := geodesy.Bearing(dest, origin)

		summary.DistanceKm = &distanceKm
		summary.BearingOriginToDestination = &bearingOD
		summary.BearingDestinationToOrigin = &bearingDO
	}

	if elevation != nil {
		if m, ok := elevation.Elevation(ctx, origin); ok {
			summary.OriginElevationM = &m
		}
		if summary.Destination != nil {
			if m, ok := elevation.Elevation(ctx, *summary.Destination); ok {
				summary.DestinationElevationM = &m
			}
		}
	}

	if address != nil {
		if a, ok := address.ReverseGeocode(ctx, origin); ok {
			summary.OriginAddress = &a
		}
		if summary.Destination != nil {
			if a, ok := address.ReverseGeocode(ctx, *summary.Destination); ok {
				summary.DestinationAddress = &a
			}
		}
	}

	return summary
}
