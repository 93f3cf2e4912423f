package ports

import (
	"context"
	"route-summary-service/internal/domain"
)

// Contract for reverse-geocoding a coordinate into a human-readable address.
//
// Same best-effort semantics as ElevationProvider: implementations apply
// their own timeout and absorb every failure into ok=false.
type AddressProvider interface {
	// Return the address text for c.
	ReverseGeocode(ctx context.Context, c domain.Coordinate) (address string, ok bool)
}
