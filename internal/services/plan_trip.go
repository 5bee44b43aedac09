package services

import (
	"context"
	"fmt"

	"park-itinerary-service/internal/domain"
	"park-itinerary-service/internal/ports"
	"park-itinerary-service/internal/scheduler"
)

// PlanTripRequest carries everything needed to build a multi-day trip plan.
type PlanTripRequest struct {
	VenueID       string
	Days          []scheduler.TripDay
	AttractionIDs []string
	Prefs         scheduler.Preferences
	AllowRerides  bool
}

// PlanTrip resolves metadata and per-day-class forecasts, then invokes the
// trip orchestrator. Curves are fetched once per day class appearing in the
// trip, not once per day.
func PlanTrip(
	ctx context.Context,
	req PlanTripRequest,
	repo ports.AttractionRepository,
	forecast ports.ForecastProvider,
	cfg scheduler.Config,
	zones *scheduler.ZoneMap,
) (*domain.TripSchedule, error) {
	attractions, err := resolveAttractions(ctx, repo, req.AttractionIDs)
	if err != nil {
		return nil, fmt.Errorf("plan trip: %w", err)
	}

	classes := make(map[domain.DayClass]struct{}, len(req.Days))
	for _, day := range req.Days {
		classes[day.Class] = struct{}{}
	}

	curvesByClass := make(map[domain.DayClass]map[string]domain.WaitCurve, len(classes))
	for class := range classes {
		curves, err := resolveCurves(ctx, forecast, req.AttractionIDs, class)
		if err != nil {
			return nil, fmt.Errorf("plan trip: class %s: %w", class, err)
		}
		curvesByClass[class] = curves
	}

	items := make([]scheduler.TripItem, 0, len(req.AttractionIDs))
	for _, id := range req.AttractionIDs {
		curves := make(map[domain.DayClass]domain.WaitCurve, len(classes))
		for class, byID := range curvesByClass {
			if c, ok := byID[id]; ok {
				curves[class] = c
			}
		}
		items = append(items, scheduler.TripItem{
			Attraction: *attractions[id],
			Curves:     curves,
		})
	}

	trip, err := scheduler.BuildTripSchedule(cfg, zones, scheduler.TripRequest{
		VenueID:      req.VenueID,
		Days:         req.Days,
		Items:        items,
		Prefs:        req.Prefs,
		AllowRerides: req.AllowRerides,
	})
	if err != nil {
		return nil, fmt.Errorf("plan trip: build schedule: %w", err)
	}
	return trip, nil
}
