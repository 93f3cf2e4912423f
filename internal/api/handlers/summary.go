package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"route-summary-service/internal/api/dto"
	"route-summary-service/internal/domain"
	"route-summary-service/internal/ports"
	"route-summary-service/internal/presentation"
	"route-summary-service/internal/services"
)

// SummaryHandler exposes the route summary computation for the configured
// origin. The destination comes from the client (the device's geolocation),
// or null while the user has not granted location access.
type SummaryHandler struct {
	Origin    domain.Coordinate
	Elevation ports.ElevationProvider
	Address   ports.AddressProvider
}

// Summarize runs one computation cycle and returns the full summary.
// An out-of-range destination is a contract violation and fails fast;
// enrichment failures never surface here, they render as absent fields.
func (h *SummaryHandler) Summarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.SummaryRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	var destination *domain.Coordinate
	if req.Destination != nil {
		c, err := domain.NewCoordinate(req.Destination.Lat, req.Destination.Lon)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		destination = &c
	}

	summary := services.ComputeSummary(r.Context(), h.Origin, destination, h.Elevation, h.Address)

	writeJSON(w, r, http.StatusOK, toResponse(summary))
}

func toResponse(s domain.RouteSummary) dto.SummaryResponse {
	res := dto.SummaryResponse{
		Origin: dto.SideResponse{
			Lat:        s.Origin.Lat,
			Lon:        s.Origin.Lon,
			ElevationM: s.OriginElevationM,
			Address:    s.OriginAddress,
		},
		Display: presentation.Render(s),
	}

	if s.Destination != nil {
		res.Destination = &dto.SideResponse{
			Lat:        s.Destination.Lat,
			Lon:        s.Destination.Lon,
			ElevationM: s.DestinationElevationM,
			Address:    s.DestinationAddress,
		}
	}

	if s.DistanceKm != nil && s.BearingOriginToDestination != nil && s.BearingDestinationToOrigin != nil {
		res.Route = &dto.RouteResponse{
			DistanceKm:                 *s.DistanceKm,
			BearingOriginToDestination: *s.BearingOriginToDestination,
			BearingDestinationToOrigin: *s.BearingDestinationToOrigin,
		}
	}

	return res
}
