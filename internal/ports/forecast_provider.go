package ports

import (
	"context"
	"errors"

	"park-itinerary-service/internal/domain"
)

// ErrNoForecast signals that no wait curve exists for an attraction and day
// class. Callers recover locally by substituting a neutral curve.
var ErrNoForecast = errors.New("forecast: no wait curve available")

// Contract for retrieving the hourly wait-time forecast of one attraction
// for a class of day.
type ForecastProvider interface {
	// Return the predicted hourly wait curve for an attraction on the given
	// day class. Returns ErrNoForecast when none exists.
	GetCurve(ctx context.Context, attractionID string, class domain.DayClass) (domain.WaitCurve, error)
}

// Optional extension of ForecastProvider that supports batched lookups.
type ForecastBatchProvider interface {
	ForecastProvider

	// Return curves for many attractions at once, keyed by attraction id.
	// Attractions without a forecast are absent from the result.
	GetCurves(ctx context.Context, attractionIDs []string, class domain.DayClass) (map[string]domain.WaitCurve, error)
}
