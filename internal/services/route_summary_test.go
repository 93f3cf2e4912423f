package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-summary-service/internal/domain"
)

var (
	origin = domain.Coordinate{Lat: 14.64171, Lon: 121.05078}
	dest   = domain.Coordinate{Lat: 14.5995, Lon: 120.9842}
)

// fakeElevation maps coordinates to fixed elevations; unknown coordinates
// report absent.
type fakeElevation struct {
	byCoord map[domain.Coordinate]float64
	calls   int
}

func (f *fakeElevation) Elevation(_ context.Context, c domain.Coordinate) (float64, bool) {
	f.calls++
	m, ok := f.byCoord[c]
	return m, ok
}

type fakeAddress struct {
	byCoord map[domain.Coordinate]string
	calls   int
}

func (f *fakeAddress) ReverseGeocode(_ context.Context, c domain.Coordinate) (string, bool) {
	f.calls++
	a, ok := f.byCoord[c]
	return a, ok
}

type failingElevation struct{}

func (failingElevation) Elevation(context.Context, domain.Coordinate) (float64, bool) {
	return 0, false
}

func TestComputeSummaryFullCycle(t *testing.T) {
	elev := &fakeElevation{byCoord: map[domain.Coordinate]float64{
		origin: 100.0,
		dest:   50.0,
	}}
	addr := &fakeAddress{byCoord: map[domain.Coordinate]string{
		origin: "Origin Address",
		dest:   "Dest Address",
	}}

	s := ComputeSummary(context.Background(), origin, &dest, elev, addr)

	assert.Equal(t, origin, s.Origin)
	require.NotNil(t, s.Destination)
	assert.Equal(t, dest, *s.Destination)

	require.NotNil(t, s.DistanceKm)
	assert.InDelta(t, 8.564, *s.DistanceKm, 0.01)

	require.NotNil(t, s.BearingOriginToDestination)
	require.NotNil(t, s.BearingDestinationToOrigin)
	assert.GreaterOrEqual(t, *s.BearingOriginToDestination, 0.0)
	assert.Less(t, *s.BearingOriginToDestination, 360.0)
	assert.InDelta(t, 236.776, *s.BearingOriginToDestination, 0.01)
	assert.InDelta(t, 56.759, *s.BearingDestinationToOrigin, 0.01)

	require.NotNil(t, s.OriginElevationM)
	assert.Equal(t, 100.0, *s.OriginElevationM)
	require.NotNil(t, s.DestinationElevationM)
	assert.Equal(t, 50.0, *s.DestinationElevationM)

	require.NotNil(t, s.OriginAddress)
	assert.Equal(t, "Origin Address", *s.OriginAddress)
	require.NotNil(t, s.DestinationAddress)
	assert.Equal(t, "Dest Address", *s.DestinationAddress)

	// One elevation and one address lookup per side.
	assert.Equal(t, 2, elev.calls)
	assert.Equal(t, 2, addr.calls)
}

func TestComputeSummaryWithoutDestination(t *testing.T) {
	elev := &fakeElevation{byCoord: map[domain.Coordinate]float64{origin: 12.5}}
	addr := &fakeAddress{byCoord: map[domain.Coordinate]string{origin: "Origin Address"}}

	s := ComputeSummary(context.Background(), origin, nil, elev, addr)

	assert.False(t, s.HasDestination())
	assert.Nil(t, s.Destination)
	assert.Nil(t, s.DistanceKm)
	assert.Nil(t, s.BearingOriginToDestination)
	assert.Nil(t, s.BearingDestinationToOrigin)
	assert.Nil(t, s.DestinationElevationM)
	assert.Nil(t, s.DestinationAddress)

	// Origin enrichment is still attempted in the waiting state.
	require.NotNil(t, s.OriginElevationM)
	assert.Equal(t, 12.5, *s.OriginElevationM)
	require.NotNil(t, s.OriginAddress)
	assert.Equal(t, "Origin Address", *s.OriginAddress)

	assert.Equal(t, 1, elev.calls)
	assert.Equal(t, 1, addr.calls)
}

func TestComputeSummaryElevationFailureDoesNotBlockGeometry(t *testing.T) {
	addr := &fakeAddress{byCoord: map[domain.Coordinate]string{
		origin: "Origin Address",
		dest:   "Dest Address",
	}}

	s := ComputeSummary(context.Background(), origin, &dest, failingElevation{}, addr)

	assert.Nil(t, s.OriginElevationM)
	assert.Nil(t, s.DestinationElevationM)

	// Geometry and the other lookup are unaffected.
	require.NotNil(t, s.DistanceKm)
	assert.Greater(t, *s.DistanceKm, 0.0)
	require.NotNil(t, s.BearingOriginToDestination)
	require.NotNil(t, s.BearingDestinationToOrigin)
	require.NotNil(t, s.OriginAddress)
	require.NotNil(t, s.DestinationAddress)
}

func TestComputeSummaryNilProvidersSkipLookups(t *testing.T) {
	s := ComputeSummary(context.Background(), origin, &dest, nil, nil)

	assert.Nil(t, s.OriginElevationM)
	assert.Nil(t, s.DestinationElevationM)
	assert.Nil(t, s.OriginAddress)
	assert.Nil(t, s.DestinationAddress)
	require.NotNil(t, s.DistanceKm)
}

func TestComputeSummaryCoincidentPoints(t *testing.T) {
	same := origin
	s := ComputeSummary(context.Background(), origin, &same, nil, nil)

	require.NotNil(t, s.DistanceKm)
	assert.Zero(t, *s.DistanceKm)
	require.NotNil(t, s.BearingOriginToDestination)
	assert.Zero(t, *s.BearingOriginToDestination)
	require.NotNil(t, s.BearingDestinationToOrigin)
	assert.Zero(t, *s.BearingDestinationToOrigin)
}
