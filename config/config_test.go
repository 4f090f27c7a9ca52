package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("MEALWEEK_SERVER_PORT")
		os.Unsetenv("MEALWEEK_SERVER_ENVIRONMENT")
		os.Unsetenv("MEALWEEK_DATABASE_PATH")
		os.Unsetenv("MEALWEEK_CACHE_TTL")
		os.Unsetenv("MEALWEEK_RATELIMIT_PER_IP")
		os.Unsetenv("MEALWEEK_ENGINE_DEBUG_LOGGING")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if cfg.Database.Path != "mealweek.db" {
			t.Errorf("Database.Path = %s, want mealweek.db", cfg.Database.Path)
		}
		if cfg.Cache.TTL != 24*time.Hour {
			t.Errorf("Cache.TTL = %v, want 24h", cfg.Cache.TTL)
		}
		if cfg.RateLimit.PerIP != 100 {
			t.Errorf("RateLimit.PerIP = %d, want 100", cfg.RateLimit.PerIP)
		}
		if cfg.Engine.DebugLogging {
			t.Error("Engine.DebugLogging = true, want false")
		}
	})

	t.Run("environment variables override defaults", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("MEALWEEK_SERVER_PORT", "9090")
		os.Setenv("MEALWEEK_DATABASE_PATH", "/tmp/test.db")
		os.Setenv("MEALWEEK_CACHE_TTL", "1h")
		os.Setenv("MEALWEEK_ENGINE_DEBUG_LOGGING", "true")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Database.Path != "/tmp/test.db" {
			t.Errorf("Database.Path = %s, want /tmp/test.db", cfg.Database.Path)
		}
		if cfg.Cache.TTL != time.Hour {
			t.Errorf("Cache.TTL = %v, want 1h", cfg.Cache.TTL)
		}
		if !cfg.Engine.DebugLogging {
			t.Error("Engine.DebugLogging = false, want true")
		}
	})

	t.Run("rejects empty database path", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		os.Setenv("MEALWEEK_DATABASE_PATH", "")
		// An explicitly empty path still falls back to the default through
		// viper, so drive validation directly.
		cfg := &Config{
			Server:    ServerConfig{Port: "8080"},
			Database:  DatabaseConfig{Path: ""},
			Cache:     CacheConfig{TTL: time.Hour},
			RateLimit: RateLimitConfig{PerIP: 100},
		}
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for empty database path")
		}
	})

	t.Run("rejects non-positive rate limit", func(t *testing.T) {
		cfg := &Config{
			Database:  DatabaseConfig{Path: "x.db"},
			Cache:     CacheConfig{TTL: time.Hour},
			RateLimit: RateLimitConfig{PerIP: 0},
		}
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero rate limit")
		}
	})

	t.Run("rejects non-positive cache ttl", func(t *testing.T) {
		cfg := &Config{
			Database:  DatabaseConfig{Path: "x.db"},
			Cache:     CacheConfig{TTL: 0},
			RateLimit: RateLimitConfig{PerIP: 100},
		}
		if err := validate(cfg); err == nil {
			t.Error("validate() error = nil, want error for zero cache ttl")
		}
	})
}
