package domain

// Derived record for a single origin/destination pair.
//
// A RouteSummary is rebuilt from scratch on every computation cycle and is
// never partially mutated. Pointer fields are nil when the value is absent:
// either the destination is not known yet, or a best-effort enrichment
// lookup failed. An absent enrichment value never invalidates the geometric
// fields.
type RouteSummary struct {
	Origin      Coordinate
	Destination *Coordinate

	DistanceKm                 *float64
	BearingOriginToDestination *float64
	BearingDestinationToOrigin *float64

	OriginElevationM      *float64
	DestinationElevationM *float64

	OriginAddress      *string
	DestinationAddress *string
}

// HasDestination reports whether a destination coordinate was available when
// the summary was computed. False means the route fields are all absent and
// the summary represents the waiting state.
func (s RouteSummary) HasDestination() bool {
	return s.Destination != nil
}
