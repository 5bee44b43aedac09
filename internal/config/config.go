package config

import "os"

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Config holds the server process configuration resolved from the
// environment.
type Config struct {
	Port      string
	DBPath    string
	SeedPath  string
	VenuePath string
	RedisAddr string
}

// FromEnv resolves the server configuration with local-run defaults.
// RedisAddr is optional; empty disables the curve cache.
func FromEnv() Config {
	return Config{
		Port:      Get("PORT", "8080"),
		DBPath:    Get("DB_PATH", "data/app.db"),
		SeedPath:  Get("SEED_PATH", "data/seeds/attractions.json"),
		VenuePath: Get("VENUE_PATH", "data/venues/adventure-park.yaml"),
		RedisAddr: os.Getenv("REDIS_ADDR"),
	}
}
