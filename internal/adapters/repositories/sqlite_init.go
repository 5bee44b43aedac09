package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"park-itinerary-service/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createAttractionsQuery := `
	CREATE TABLE IF NOT EXISTS attractions (
		attraction_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		zone TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		tier TEXT NOT NULL
	);
	`

	createForecastsQuery := `
	CREATE TABLE IF NOT EXISTS wait_forecasts (
		attraction_id TEXT NOT NULL,
		day_class TEXT NOT NULL,
		hour INTEGER NOT NULL,
		wait_min REAL NOT NULL,
		PRIMARY KEY (attraction_id, day_class, hour)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_wait_forecasts_class_attraction
	ON wait_forecasts(day_class, attraction_id);
	`

	statements := []string{
		createAttractionsQuery,
		createForecastsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type ForecastSeed struct {
	StartHour int       `json:"start_hour"`
	Waits     []float64 `json:"waits"`
}

type AttractionSeed struct {
	AttractionID string                  `json:"attraction_id"`
	Name         string                  `json:"name"`
	Zone         string                  `json:"zone"`
	DurationMin  int                     `json:"duration_min"`
	Tier         string                  `json:"tier"`
	Forecasts    map[string]ForecastSeed `json:"forecasts"`
}

// Populate the database with attraction and forecast data from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed attractions: read %q: %w", jsonPath, err)
	}

	var data []AttractionSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed attractions: parse json: %w", err)
	}

	for i, item := range data {
		if strings.TrimSpace(item.AttractionID) == "" {
			return fmt.Errorf("seed attractions: empty attraction_id at index %d", i+1)
		}
		if item.DurationMin <= 0 {
			return fmt.Errorf("seed attractions: %q: duration_min must be positive", item.AttractionID)
		}
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed attractions: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	attractionStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO attractions (
		attraction_id,
		name,
		zone,
		duration_min,
		tier
	)
	VALUES (?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed attractions: prepare insert: %w", err)
	}
	defer attractionStmt.Close()

	forecastStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO wait_forecasts (
		attraction_id,
		day_class,
		hour,
		wait_min
	)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed attractions: prepare forecast insert: %w", err)
	}
	defer forecastStmt.Close()

	for _, a := range data {
		tier := domain.ParseTier(a.Tier).String()
		if _, err := attractionStmt.Exec(a.AttractionID, a.Name, a.Zone, a.DurationMin, tier); err != nil {
			return fmt.Errorf("seed attractions: insert %q: %w", a.AttractionID, err)
		}

		for class, f := range a.Forecasts {
			for i, wait := range f.Waits {
				hour := f.StartHour + i
				if _, err := forecastStmt.Exec(a.AttractionID, class, hour, wait); err != nil {
					return fmt.Errorf("seed attractions: insert forecast %q/%s hour %d: %w",
						a.AttractionID, class, hour, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed attractions: commit tx: %w", err)
	}

	return nil
}
