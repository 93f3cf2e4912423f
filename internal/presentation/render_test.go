package presentation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"route-summary-service/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func TestRenderFullSummary(t *testing.T) {
	dest := domain.Coordinate{Lat: 14.5995, Lon: 120.9842}
	s := domain.RouteSummary{
		Origin:                     domain.Coordinate{Lat: 14.64171, Lon: 121.05078},
		Destination:                &dest,
		DistanceKm:                 ptr(8.5642765),
		BearingOriginToDestination: ptr(236.776),
		BearingDestinationToOrigin: ptr(56.759),
		OriginElevationM:           ptr(100.0),
		DestinationElevationM:      ptr(50.25),
		OriginAddress:              ptr("Origin Address"),
		DestinationAddress:         ptr("Dest Address"),
	}

	view := Render(s)

	assert.Equal(t, "ok", view.Status)
	assert.Equal(t, "14.641710, 121.050780", view.Origin.Coordinates)
	assert.Equal(t, "100.0 m", view.Origin.Elevation)
	assert.Equal(t, "Origin Address", view.Origin.Address)

	require.NotNil(t, view.Destination)
	assert.Equal(t, "14.599500, 120.984200", view.Destination.Coordinates)
	assert.Equal(t, "50.2 m", view.Destination.Elevation)
	assert.Equal(t, "Dest Address", view.Destination.Address)

	require.NotNil(t, view.Route)
	assert.Equal(t, "8.564 km", view.Route.Distance)
	assert.Equal(t, "236.8°", view.Route.BearingOriginToDestination)
	assert.Equal(t, "56.8°", view.Route.BearingDestinationToOrigin)
}

func TestRenderAbsentEnrichment(t *testing.T) {
	dest := domain.Coordinate{Lat: 14.5995, Lon: 120.9842}
	s := domain.RouteSummary{
		Origin:                     domain.Coordinate{Lat: 14.64171, Lon: 121.05078},
		Destination:                &dest,
		DistanceKm:                 ptr(8.564),
		BearingOriginToDestination: ptr(236.776),
		BearingDestinationToOrigin: ptr(56.759),
	}

	view := Render(s)

	assert.Equal(t, "N/A", view.Origin.Elevation)
	assert.Equal(t, "N/A", view.Origin.Address)
	require.NotNil(t, view.Destination)
	assert.Equal(t, "N/A", view.Destination.Elevation)
	assert.Equal(t, "N/A", view.Destination.Address)
	require.NotNil(t, view.Route)
}

func TestRenderWaitingState(t *testing.T) {
	s := domain.RouteSummary{
		Origin: domain.Coordinate{Lat: 14.64171, Lon: 121.05078},
	}

	view := Render(s)

	assert.Equal(t, WaitingMessage, view.Status)
	assert.Nil(t, view.Destination)
	assert.Nil(t, view.Route)
	assert.Equal(t, "14.641710, 121.050780", view.Origin.Coordinates)
}
