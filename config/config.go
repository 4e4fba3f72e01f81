package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	Environment  string
	Port         string
	DatabasePath string
	// LedgerSlot is the slot name under which the registration ledger is
	// persisted.
	LedgerSlot string
}

// Load loads configuration from environment variables.
// It attempts to load from a .env file if not in production.
func Load() (*Config, error) {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// In production the .env file usually does not exist; we rely on system
	// environment variables there.
	if env != "production" {
		if err := godotenv.Load(); err != nil {
			log.Printf("Warning: .env file not found or couldn't be loaded: %v", err)
		}
	}

	cfg := &Config{
		Environment:  env,
		Port:         os.Getenv("PORT"),
		DatabasePath: os.Getenv("DATABASE_PATH"),
		LedgerSlot:   os.Getenv("LEDGER_SLOT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "guestlist.db"
	}
	if cfg.LedgerSlot == "" {
		cfg.LedgerSlot = "registrations"
	}

	return cfg, nil
}
