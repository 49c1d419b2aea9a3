package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries everything the server needs from the environment.
// Admin credentials are injected here rather than read where they are
// checked, so tests can substitute their own pair.
type Config struct {
	DatabaseURL   string
	Port          string
	AdminUsername string
	AdminPassword string
	JWTSecret     string
	SlotCount     int
	RatePerHour   int
	// ReconcileSpec is a cron spec for the orphaned-booking sweep.
	ReconcileSpec string
}

func Load() (*Config, error) {
	cfg := &Config{
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		Port:          getEnv("PORT", "8080"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ReconcileSpec: getEnv("RECONCILE_SPEC", "@every 5m"),
	}
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET not set")
	}

	var err error
	if cfg.SlotCount, err = getEnvInt("SLOT_COUNT", 20); err != nil {
		return nil, err
	}
	if cfg.SlotCount <= 0 {
		return nil, fmt.Errorf("SLOT_COUNT must be positive")
	}
	if cfg.RatePerHour, err = getEnvInt("RATE_PER_HOUR", 10); err != nil {
		return nil, err
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return n, nil
}
