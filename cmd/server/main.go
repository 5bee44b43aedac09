package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	_ "modernc.org/sqlite"

	"park-itinerary-service/internal/adapters/cache"
	"park-itinerary-service/internal/adapters/forecast"
	"park-itinerary-service/internal/adapters/repositories"
	"park-itinerary-service/internal/api"
	"park-itinerary-service/internal/config"
	"park-itinerary-service/internal/ports"
	"park-itinerary-service/internal/scheduler"
)

// main is the application composition root.
// It wires concrete adapters (SQLite, Redis) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	cfg := config.FromEnv()

	venueCfg, err := config.LoadVenueFile(cfg.VenuePath)
	if err != nil {
		log.Fatal(err)
	}
	venue, err := venueCfg.DomainVenue()
	if err != nil {
		log.Fatal(err)
	}

	db, err := openDB(cfg.DBPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(db, cfg.SeedPath); err != nil {
		log.Fatal(err)
	}

	repo := repositories.NewSqliteAttractionRepository(db)

	// Forecast curves come from the historical store, optionally fronted by
	// a Redis read-through cache when REDIS_ADDR is set.
	var provider ports.ForecastProvider = forecast.NewSqliteForecastStore(db)
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		provider = cache.NewRedisCurveCache(client, provider, 6*time.Hour)
		log.Printf("curve cache enabled addr=%s", cfg.RedisAddr)
	}

	router := api.NewRouter(repo, provider, venue, venueCfg, venueCfg.ZoneMap(), scheduler.DefaultConfig())

	log.Printf("Server listening addr=:%s venue=%s", cfg.Port, venue.ID)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

func initAndSeed(db *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(db); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	if err := repositories.SeedFromJSON(db, seedPath); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	return nil
}
