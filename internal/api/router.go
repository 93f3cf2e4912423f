package api

import (
	"net/http"

	"route-summary-service/internal/api/handlers"
	"route-summary-service/internal/domain"
	"route-summary-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay unaware of
// concrete adapters).
func NewRouter(origin domain.Coordinate, elevation ports.ElevationProvider, address ports.AddressProvider) http.Handler {
	mux := http.NewServeMux()

	summaryHandler := &handlers.SummaryHandler{
		Origin:    origin,
		Elevation: elevation,
		Address:   address,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/summary", summaryHandler.Summarize)

	return requestIDMiddleware(loggingMiddleware(mux))
}
