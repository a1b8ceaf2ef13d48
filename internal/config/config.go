package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port          string
	Env           string
	DatabaseDSN   string
	SessionSecret string
	SessionTTL    time.Duration
	GuestTTL      time.Duration
	SweepInterval time.Duration
}

func Load() Config {
	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("ENV", "development"),
		DatabaseDSN:   getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/pantrypal?parseTime=true"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret-change-in-production"),
		SessionTTL:    7 * 24 * time.Hour,
		GuestTTL:      7 * 24 * time.Hour,
		SweepInterval: time.Hour,
	}

	if cfg.Env == "production" && cfg.SessionSecret == "dev-secret-change-in-production" {
		slog.Error("SESSION_SECRET must be set in production environment")
		os.Exit(1)
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
