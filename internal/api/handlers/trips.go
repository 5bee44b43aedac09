package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"park-itinerary-service/internal/api/dto"
	"park-itinerary-service/internal/config"
	"park-itinerary-service/internal/domain"
	"park-itinerary-service/internal/ports"
	"park-itinerary-service/internal/scheduler"
	"park-itinerary-service/internal/services"
)

// TripHandler builds multi-day trip plans.
type TripHandler struct {
	Repo     ports.AttractionRepository
	Forecast ports.ForecastProvider
	Venue    domain.Venue
	VenueCfg *config.VenueFile
	Zones    *scheduler.ZoneMap
	Engine   scheduler.Config
}

func (h *TripHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.TripRequest

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

	if len(req.Days) == 0 {
		writeError(w, r, http.StatusBadRequest, "days is required")
		return
	}
	if len(req.Days) > 14 {
		writeError(w, r, http.StatusBadRequest, "at most 14 days per trip")
		return
	}
	if len(req.AttractionIDs) == 0 {
		writeError(w, r, http.StatusBadRequest, "attraction_ids is required")
		return
	}

	days := make([]scheduler.TripDay, 0, len(req.Days))
	for _, d := range req.Days {
		class, err := parseDayClass(d.DayClass)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		events, err := parseEvents(d.Events)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}

		hours := h.Venue.HoursFor(class)
		days = append(days, scheduler.TripDay{
			Class:          class,
			OpenMin:        hours.OpenMin,
			CloseMin:       hours.CloseMin,
			CloseBufferMin: h.VenueCfg.Venue.CloseBufferMin,
			Events:         events,
		})
	}

	prefs, err := parsePreferences(req.Preferences, h.VenueCfg)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	svcReq := services.PlanTripRequest{
		VenueID:       h.Venue.ID,
		Days:          days,
		AttractionIDs: req.AttractionIDs,
		Prefs:         prefs,
		AllowRerides:  req.AllowRerides,
	}

	trip, err := services.PlanTrip(r.Context(), svcReq, h.Repo, h.Forecast, h.Engine, h.Zones)
	if err != nil {
		if isPreconditionError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.TripResponse{
		Days:     make([]dto.ItineraryResponse, 0, len(trip.Days)),
		Insights: trip.Insights,
	}
	for _, day := range trip.Days {
		res.Days = append(res.Days, toItineraryResponse(day))
	}

	writeJSON(w, r, http.StatusOK, res)
}
