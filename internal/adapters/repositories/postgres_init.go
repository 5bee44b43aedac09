package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"park-itinerary-service/internal/domain"
)

// Initialize the Postgres database schema.
func InitSchemaPostgres(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		`
	CREATE TABLE IF NOT EXISTS attractions (
		attraction_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		zone TEXT NOT NULL,
		duration_min INTEGER NOT NULL,
		tier TEXT NOT NULL
	);
	`,
		`
	CREATE TABLE IF NOT EXISTS wait_forecasts (
		attraction_id TEXT NOT NULL,
		day_class TEXT NOT NULL,
		hour INTEGER NOT NULL,
		wait_min DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (attraction_id, day_class, hour)
	);
	`,
		`
	CREATE INDEX IF NOT EXISTS idx_wait_forecasts_class_attraction
	ON wait_forecasts(day_class, attraction_id);
	`,
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

// Populate a Postgres database with attraction and forecast data from a
// JSON file.
func SeedFromJSONPostgres(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed attractions: read %q: %w", jsonPath, err)
	}

	var data []AttractionSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed attractions: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed attractions: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	attractionStmt, err := tx.Prepare(`
	INSERT INTO attractions (attraction_id, name, zone, duration_min, tier)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (attraction_id) DO UPDATE SET
		name = EXCLUDED.name,
		zone = EXCLUDED.zone,
		duration_min = EXCLUDED.duration_min,
		tier = EXCLUDED.tier;
	`)
	if err != nil {
		return fmt.Errorf("seed attractions: prepare insert: %w", err)
	}
	defer attractionStmt.Close()

	forecastStmt, err := tx.Prepare(`
	INSERT INTO wait_forecasts (attraction_id, day_class, hour, wait_min)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (attraction_id, day_class, hour) DO UPDATE SET
		wait_min = EXCLUDED.wait_min;
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
				if _, err := forecastStmt.Exec(a.AttractionID, class, f.StartHour+i, wait); err != nil {
					return fmt.Errorf("seed attractions: insert forecast %q/%s: %w", a.AttractionID, class, err)
				}
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed attractions: commit tx: %w", err)
	}

	return nil
}
