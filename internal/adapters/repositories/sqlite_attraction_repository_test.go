package repositories

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"park-itinerary-service/internal/domain"
)

const seedJSON = `[
  {
    "attraction_id": "falcon-run",
    "name": "Falcon Run",
    "zone": "frontier falls",
    "duration_min": 35,
    "tier": "flagship",
    "forecasts": {
      "regular": { "start_hour": 9, "waits": [20, 45, 70] }
    }
  },
  {
    "attraction_id": "timber-flume",
    "name": "Timber Flume",
    "zone": "frontier falls",
    "duration_min": 20,
    "tier": "standard",
    "forecasts": {}
  }
]`

func seededDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(seedJSON), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := SeedFromJSON(db, path); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return db
}

func TestSqliteAttractionRepositoryListAttractions(t *testing.T) {
	repo := NewSqliteAttractionRepository(seededDB(t))

	attractions, err := repo.ListAttractions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(attractions) != 2 {
		t.Fatalf("expected 2 attractions, got %d", len(attractions))
	}
	if attractions[0].ID != "falcon-run" {
		t.Fatalf("expected falcon-run first, got %q", attractions[0].ID)
	}
	if attractions[0].Tier != domain.TierFlagship {
		t.Fatalf("tier = %v, want flagship", attractions[0].Tier)
	}
	if attractions[1].DurationMin != 20 {
		t.Fatalf("duration = %d, want 20", attractions[1].DurationMin)
	}
}

func TestSqliteAttractionRepositoryGetAttractions(t *testing.T) {
	repo := NewSqliteAttractionRepository(seededDB(t))

	got, err := repo.GetAttractions(context.Background(), []string{"falcon-run", "missing", "falcon-run", " "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(got) != 1 {
		t.Fatalf("expected 1 attraction, got %d", len(got))
	}
	a, ok := got["falcon-run"]
	if !ok {
		t.Fatal("falcon-run missing from result")
	}
	if a.Zone != "frontier falls" {
		t.Fatalf("zone = %q, want frontier falls", a.Zone)
	}
	if _, ok := got["missing"]; ok {
		t.Fatal("unknown ids must be absent, not present")
	}
}

func TestSqliteAttractionRepositoryGetAttractionsEmptyInput(t *testing.T) {
	repo := NewSqliteAttractionRepository(seededDB(t))

	got, err := repo.GetAttractions(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty map, got %d entries", len(got))
	}
}

func TestSeedFromJSONIsIdempotent(t *testing.T) {
	db := seededDB(t)

	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(seedJSON), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	if err := SeedFromJSON(db, path); err != nil {
		t.Fatalf("reseed: %v", err)
	}

	repo := NewSqliteAttractionRepository(db)
	attractions, err := repo.ListAttractions(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attractions) != 2 {
		t.Fatalf("expected 2 attractions after reseed, got %d", len(attractions))
	}
}

func TestSeedFromJSONRejectsBadRows(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	path := filepath.Join(t.TempDir(), "bad.json")
	bad := `[{"attraction_id": "x", "name": "X", "zone": "z", "duration_min": 0, "tier": "minor"}]`
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}

	if err := SeedFromJSON(db, path); err == nil {
		t.Fatal("expected error for non-positive duration")
	}
}
