package api

import (
	"net/http"

	"park-itinerary-service/internal/api/handlers"
	"park-itinerary-service/internal/config"
	"park-itinerary-service/internal/domain"
	"park-itinerary-service/internal/ports"
	"park-itinerary-service/internal/scheduler"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	repo ports.AttractionRepository,
	forecast ports.ForecastProvider,
	venue domain.Venue,
	venueCfg *config.VenueFile,
	zones *scheduler.ZoneMap,
	engine scheduler.Config,
) http.Handler {
	mux := http.NewServeMux()

	attractionHandler := &handlers.AttractionHandler{Repo: repo}
	itineraryHandler := &handlers.ItineraryHandler{
		Repo:     repo,
		Forecast: forecast,
		Venue:    venue,
		VenueCfg: venueCfg,
		Zones:    zones,
		Engine:   engine,
	}
	tripHandler := &handlers.TripHandler{
		Repo:     repo,
		Forecast: forecast,
		Venue:    venue,
		VenueCfg: venueCfg,
		Zones:    zones,
		Engine:   engine,
	}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/attractions", attractionHandler.List)
	mux.HandleFunc("/itineraries", itineraryHandler.Plan)
	mux.HandleFunc("/trips", tripHandler.Plan)

	return loggingMiddleware(mux)
}
