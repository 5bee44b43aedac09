package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
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

// ItineraryHandler orchestrates single-day plan building: it shapes the
// request, resolves catalog and forecast data through the ports, and runs
// the scheduling engine in-process.
type ItineraryHandler struct {
	Repo     ports.AttractionRepository
	Forecast ports.ForecastProvider
	Venue    domain.Venue
	VenueCfg *config.VenueFile
	Zones    *scheduler.ZoneMap
	Engine   scheduler.Config
}

func (h *ItineraryHandler) Plan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.ItineraryRequest

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

	class, err := parseDayClass(req.DayClass)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if len(req.AttractionIDs) == 0 {
		writeError(w, r, http.StatusBadRequest, "attraction_ids is required")
		return
	}
	if len(req.AttractionIDs) > 30 {
		writeError(w, r, http.StatusBadRequest, "at most 30 attractions per request")
		return
	}

	events, err := parseEvents(req.Events)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	prefs, err := parsePreferences(req.Preferences, h.VenueCfg)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	hours := h.Venue.HoursFor(class)
	svcReq := services.PlanItineraryRequest{
		Day:            1,
		VenueID:        h.Venue.ID,
		Class:          class,
		OpenMin:        hours.OpenMin,
		CloseMin:       hours.CloseMin,
		CloseBufferMin: h.VenueCfg.Venue.CloseBufferMin,
		AttractionIDs:  req.AttractionIDs,
		Events:         events,
		Prefs:          prefs,
	}

	sched, err := services.PlanItinerary(r.Context(), svcReq, h.Repo, h.Forecast, h.Engine, h.Zones)
	if err != nil {
		if isPreconditionError(err) {
			writeError(w, r, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("plan itinerary failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, toItineraryResponse(sched))
}

func parseDayClass(s string) (domain.DayClass, error) {
	switch domain.DayClass(s) {
	case "":
		return domain.DayRegular, nil
	case domain.DayRegular, domain.DayElevated, domain.DayPeak:
		return domain.DayClass(s), nil
	default:
		return "", fmt.Errorf("day_class must be regular, elevated, or peak")
	}
}

func parseEvents(in []dto.EventRequest) ([]scheduler.EventInput, error) {
	events := make([]scheduler.EventInput, 0, len(in))
	for _, ev := range in {
		start, err := scheduler.ParseClock(ev.Start)
		if err != nil {
			return nil, fmt.Errorf("event %q: %v", ev.Name, err)
		}
		end, err := scheduler.ParseClock(ev.End)
		if err != nil {
			return nil, fmt.Errorf("event %q: %v", ev.Name, err)
		}

		kind := domain.AnchorKind(ev.Kind)
		switch kind {
		case domain.AnchorShow, domain.AnchorMeal, domain.AnchorBreak:
		case "":
			kind = domain.AnchorShow
		default:
			return nil, fmt.Errorf("event %q: kind must be show, meal, or break", ev.Name)
		}

		events = append(events, scheduler.EventInput{
			Name:     ev.Name,
			Kind:     kind,
			StartMin: start,
			EndMin:   end,
		})
	}
	return events, nil
}

func parsePreferences(in dto.PreferencesRequest, venueCfg *config.VenueFile) (scheduler.Preferences, error) {
	prefs := scheduler.Preferences{
		RopeDropIDs:    in.RopeDrop,
		AutoMeals:      in.AutoMeals,
		IncludeBreak:   in.IncludeBreak,
		MaxItemsPerDay: in.MaxItemsPerDay,
	}

	if in.Arrival != "" {
		arrival, err := scheduler.ParseClock(in.Arrival)
		if err != nil {
			return scheduler.Preferences{}, fmt.Errorf("preferences.arrival: %v", err)
		}
		prefs.ArrivalMin = arrival
	}

	if in.Hop != nil {
		if in.Hop.ToVenue == "" {
			return scheduler.Preferences{}, fmt.Errorf("preferences.hop.to_venue is required")
		}
		requested := 0
		if in.Hop.RequestedAt != "" {
			m, err := scheduler.ParseClock(in.Hop.RequestedAt)
			if err != nil {
				return scheduler.Preferences{}, fmt.Errorf("preferences.hop.requested_at: %v", err)
			}
			requested = m
		}

		hop, err := venueCfg.HopConfig(in.Hop.ToVenue, requested)
		if err != nil {
			return scheduler.Preferences{}, fmt.Errorf("preferences.hop: %v", err)
		}
		prefs.Hop = hop
	}

	return prefs, nil
}

// isPreconditionError distinguishes caller misuse from engine failures.
func isPreconditionError(err error) bool {
	return errors.Is(err, scheduler.ErrNoItems) ||
		errors.Is(err, scheduler.ErrInvalidDuration) ||
		errors.Is(err, scheduler.ErrInvalidHours) ||
		errors.Is(err, scheduler.ErrNoDays) ||
		errors.Is(err, services.ErrUnknownAttraction)
}

func toItineraryResponse(s *domain.DaySchedule) dto.ItineraryResponse {
	res := dto.ItineraryResponse{
		Day:      s.Day,
		DayClass: string(s.Class),
		Open:     scheduler.FormatClock(s.OpenMin),
		Close:    scheduler.FormatClock(s.CloseMin),
		Entries:  make([]dto.EntryResponse, 0, len(s.Entries)),
		Stats: dto.StatsResponse{
			TotalWaitMin:    s.Stats.TotalWaitMin,
			TotalWalkMin:    s.Stats.TotalWalkMin,
			ItemsScheduled:  s.Stats.ItemsScheduled,
			ItemsOverflowed: s.Stats.ItemsOverflowed,
		},
		Insights: s.Insights,
		Overflow: make([]dto.OverflowResponse, 0, len(s.Overflow)),
	}

	for _, e := range s.Entries {
		res.Entries = append(res.Entries, dto.EntryResponse{
			Time:            scheduler.FormatClock(e.StartMin),
			Kind:            string(e.Kind),
			Name:            e.Name,
			ExpectedWaitMin: e.ExpectedWait,
			DurationMin:     e.EndMin - e.StartMin,
			WalkMin:         e.WalkMin,
			Reason:          e.Reason,
		})
	}
	for _, o := range s.Overflow {
		res.Overflow = append(res.Overflow, dto.OverflowResponse{
			AttractionID: o.AttractionID,
			Name:         o.Name,
			Reason:       string(o.Reason),
			Suggestion:   o.Suggestion,
		})
	}

	return res
}
