package config

import (
	"fmt"
	"os"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// RetailCRM
	RetailCRMURL    string
	RetailCRMAPIKey string

	// Redis
	RedisAddr string
	RedisPass string
}

// Load loads environment variables into AppConfig. RetailCRM credentials
// are mandatory; a missing value prevents startup.
func Load() (AppConfig, error) {
	cfg := AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8000"),

		RetailCRMURL:    os.Getenv("RETAILCRM_URL"),
		RetailCRMAPIKey: os.Getenv("RETAILCRM_API_KEY"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),
	}

	if cfg.RetailCRMURL == "" {
		return AppConfig{}, fmt.Errorf("RETAILCRM_URL is required")
	}
	if cfg.RetailCRMAPIKey == "" {
		return AppConfig{}, fmt.Errorf("RETAILCRM_API_KEY is required")
	}

	return cfg, nil
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
