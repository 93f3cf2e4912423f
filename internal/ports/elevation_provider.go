package ports

import (
	"context"
	"route-summary-service/internal/domain"
)

// Contract for resolving ground elevation at a coordinate.
//
// Lookups are best-effort: implementations apply their own timeout and
// report any transport or parse failure as ok=false instead of propagating
// it. ok=false means only that this one value is unavailable.
type ElevationProvider interface {
	// Return the elevation at c in meters above sea level.
	Elevation(ctx context.Context, c domain.Coordinate) (meters float64, ok bool)
}
