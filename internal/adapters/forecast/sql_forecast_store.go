package forecast

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"park-itinerary-service/internal/domain"
	"park-itinerary-service/internal/platform/obs"
	"park-itinerary-service/internal/ports"
)

// SQLForecastStore is the Postgres flavor of the forecast store, using
// positional parameters and array binding.
type SQLForecastStore struct{ DB *sql.DB }

func NewSQLForecastStore(db *sql.DB) *SQLForecastStore {
	return &SQLForecastStore{DB: db}
}

// Return the hourly wait curve for one attraction and day class.
func (s *SQLForecastStore) GetCurve(
	ctx context.Context,
	attractionID string,
	class domain.DayClass,
) (domain.WaitCurve, error) {
	curves, err := s.GetCurves(ctx, []string{attractionID}, class)
	if err != nil {
		return domain.WaitCurve{}, err
	}

	c, ok := curves[attractionID]
	if !ok {
		return domain.WaitCurve{}, fmt.Errorf("get curve %q/%s: %w", attractionID, class, ports.ErrNoForecast)
	}
	return c, nil
}

// Return curves for many attractions at once, keyed by attraction id.
func (s *SQLForecastStore) GetCurves(
	ctx context.Context,
	attractionIDs []string,
	class domain.DayClass,
) (_ map[string]domain.WaitCurve, err error) {
	defer obs.Time(ctx, "forecast.sql.GetCurves")(&err)

	if s.DB == nil {
		return nil, errors.New("forecast store: db is nil")
	}

	if len(attractionIDs) == 0 {
		return map[string]domain.WaitCurve{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(attractionIDs))
	for _, id := range attractionIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		uniq = append(uniq, id)
	}

	if len(uniq) == 0 {
		return map[string]domain.WaitCurve{}, nil
	}

	q := `
	SELECT attraction_id, hour, wait_min
	FROM wait_forecasts
	WHERE day_class = $1
		AND attraction_id = ANY($2::text[])
	ORDER BY attraction_id, hour;
	`

	rows, err := s.DB.QueryContext(ctx, q, string(class), uniq)
	if err != nil {
		return nil, fmt.Errorf("get curves: query wait_forecasts table: %w", err)
	}
	defer rows.Close()

	return collectCurves(rows)
}
