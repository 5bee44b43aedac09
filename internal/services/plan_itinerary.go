package services

import (
	"context"
	"errors"
	"fmt"

	"park-itinerary-service/internal/domain"
	"park-itinerary-service/internal/ports"
	"park-itinerary-service/internal/scheduler"
)

// ErrUnknownAttraction marks a requested id with no catalog entry. Callers
// treat it as a bad request rather than an internal failure.
var ErrUnknownAttraction = errors.New("unknown attraction")

// PlanItineraryRequest carries everything needed to build one day's plan.
type PlanItineraryRequest struct {
	Day            int
	VenueID        string
	Class          domain.DayClass
	OpenMin        int
	CloseMin       int
	CloseBufferMin int
	AttractionIDs  []string
	Events         []scheduler.EventInput
	Prefs          scheduler.Preferences
}

// PlanItinerary resolves attraction metadata and wait forecasts through the
// ports, then invokes the pure scheduling engine. All external data is
// gathered up front; the engine never fetches mid-computation.
func PlanItinerary(
	ctx context.Context,
	req PlanItineraryRequest,
	repo ports.AttractionRepository,
	forecast ports.ForecastProvider,
	cfg scheduler.Config,
	zones *scheduler.ZoneMap,
) (*domain.DaySchedule, error) {
	attractions, err := resolveAttractions(ctx, repo, req.AttractionIDs)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	curves, err := resolveCurves(ctx, forecast, req.AttractionIDs, req.Class)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	items := make([]scheduler.Item, 0, len(attractions))
	for _, id := range req.AttractionIDs {
		items = append(items, scheduler.Item{
			Attraction: *attractions[id],
			Curve:      curves[id],
		})
	}

	sched, err := scheduler.BuildDaySchedule(cfg, zones, scheduler.DayRequest{
		Day:            req.Day,
		VenueID:        req.VenueID,
		Class:          req.Class,
		OpenMin:        req.OpenMin,
		CloseMin:       req.CloseMin,
		CloseBufferMin: req.CloseBufferMin,
		Items:          items,
		Events:         req.Events,
		Prefs:          req.Prefs,
	})
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: build schedule: %w", err)
	}
	return sched, nil
}

// resolveAttractions fetches metadata for the requested ids and fails fast
// on unknown ids, which indicate caller misuse.
func resolveAttractions(
	ctx context.Context,
	repo ports.AttractionRepository,
	ids []string,
) (map[string]*domain.Attraction, error) {
	attractions, err := repo.GetAttractions(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get attractions: %w", err)
	}

	for _, id := range ids {
		if _, ok := attractions[id]; !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownAttraction, id)
		}
	}
	return attractions, nil
}

// resolveCurves gathers wait forecasts, preferring a single batched lookup
// when the provider supports it. A missing forecast is degraded data, not an
// error: the engine substitutes a neutral curve and notes it.
func resolveCurves(
	ctx context.Context,
	forecast ports.ForecastProvider,
	ids []string,
	class domain.DayClass,
) (map[string]domain.WaitCurve, error) {
	if bp, ok := forecast.(ports.ForecastBatchProvider); ok {
		curves, err := bp.GetCurves(ctx, ids, class)
		if err != nil {
			return nil, fmt.Errorf("get curves: %w", err)
		}
		return curves, nil
	}

	curves := make(map[string]domain.WaitCurve, len(ids))
	for _, id := range ids {
		c, err := forecast.GetCurve(ctx, id, class)
		if err != nil {
			if errors.Is(err, ports.ErrNoForecast) {
				continue
			}
			return nil, fmt.Errorf("get curve for %q: %w", id, err)
		}
		curves[id] = c
	}
	return curves, nil
}
