package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/erenfn/climate-compare/internal/climate"
)

type AppConfig struct {
	// DatasetDir holds the actual and predicted CSV files of every city.
	DatasetDir string
	// OutputDir receives charts and workbooks.
	OutputDir string
	// TableFormat is "ascii" or "markdown".
	TableFormat string

	// RefreshInterval controls how often serve mode re-runs the batch.
	RefreshInterval time.Duration
	// DefaultYear is the year the scheduled batch snapshots.
	DefaultYear int

	// In-memory store retention.
	StoreMaxYears int           // max number of years of snapshots (0 = unlimited)
	StoreMaxAge   time.Duration // max age of served reports (0 = unlimited)

	Port string
}

// Load reads configuration from environment with sensible defaults.
func Load() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Printf("INFO: No .env file found or error loading it: %v", err)
	}
	cfg := &AppConfig{}

	cfg.DatasetDir = getenvDefault("DATASET_DIR", "datasets")
	cfg.OutputDir = getenvDefault("OUTPUT_DIR", "out")
	cfg.TableFormat = getenvDefault("TABLE_FORMAT", "ascii")

	interval, err := time.ParseDuration(getenvDefault("REFRESH_INTERVAL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid REFRESH_INTERVAL: %w", err)
	}
	cfg.RefreshInterval = interval

	year, err := strconv.Atoi(getenvDefault("DEFAULT_YEAR", strconv.Itoa(climate.MaxYear)))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_YEAR: %w", err)
	}
	if err := climate.ValidateYear(year); err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_YEAR: %w", err)
	}
	cfg.DefaultYear = year

	// One entry per year of the window by default.
	cfg.StoreMaxYears = getenvInt("STORE_MAX_YEARS", climate.MaxYear-climate.MinYear+1)

	maxAge, err := time.ParseDuration(getenvDefault("STORE_MAX_AGE", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid STORE_MAX_AGE: %w", err)
	}
	cfg.StoreMaxAge = maxAge
	cfg.Port = getenvDefault("PORT", "8080")

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return def
}
