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

// SQLite-backed store of historical hourly wait forecasts, one row per
// (attraction, day class, hour). Implements the ForecastBatchProvider port.
type SqliteForecastStore struct{ DB *sql.DB }

func NewSqliteForecastStore(db *sql.DB) *SqliteForecastStore {
	return &SqliteForecastStore{DB: db}
}

// Return the hourly wait curve for one attraction and day class.
func (s *SqliteForecastStore) GetCurve(
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
func (s *SqliteForecastStore) GetCurves(
	ctx context.Context,
	attractionIDs []string,
	class domain.DayClass,
) (_ map[string]domain.WaitCurve, err error) {
	defer obs.Time(ctx, "forecast.sqlite.GetCurves")(&err)

	if s.DB == nil {
		return nil, errors.New("forecast store: db is nil")
	}

	if len(attractionIDs) == 0 {
		return map[string]domain.WaitCurve{}, nil
	}

	seen := map[string]struct{}{}
	uniq := make([]string, 0, len(attractionIDs))
	ph := make([]string, 0, len(attractionIDs))
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
		ph = append(ph, "?")
	}

	if len(uniq) == 0 {
		return map[string]domain.WaitCurve{}, nil
	}

	// SQLite does not support binding slices directly in an IN (...) clause.
	// Only the placeholder structure is interpolated; all values remain parameterized.
	q := fmt.Sprintf(`
	SELECT
		attraction_id,
		hour,
		wait_min
	FROM wait_forecasts
	WHERE day_class = ?
		AND attraction_id IN (%s)
	ORDER BY attraction_id, hour;
	`, strings.Join(ph, ","))

	args := make([]any, 0, 1+len(uniq))
	args = append(args, string(class))
	for _, id := range uniq {
		args = append(args, id)
	}

	rows, err := s.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("get curves: query wait_forecasts table: %w", err)
	}
	defer rows.Close()

	return collectCurves(rows)
}

// collectCurves folds (attraction, hour, wait) rows ordered by attraction
// and hour into per-attraction curves.
func collectCurves(rows *sql.Rows) (map[string]domain.WaitCurve, error) {
	out := make(map[string]domain.WaitCurve)
	for rows.Next() {
		var id string
		var hour int
		var wait float64
		if err := rows.Scan(&id, &hour, &wait); err != nil {
			return nil, fmt.Errorf("get curves: scan rows: %w", err)
		}

		c := out[id]
		if c.IsZero() {
			c.StartHour = hour
		}
		c.Values = append(c.Values, wait)
		out[id] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get curves: row iteration: %w", err)
	}

	return out, nil
}
