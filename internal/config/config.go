package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	CatalogPath   string
	StartingCoins int

	// Engine rules
	MaxSelection           int
	MinMergeSelection      int
	DefaultSellPrice       int
	ClearSelectionOnMarket bool

	MetricsPort int // 0 disables the metrics server

	// JournalRetentionDays is how many finished days the trade journal keeps; 0 keeps all
	JournalRetentionDays int
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv(EnvLogLevel, "info"),
		LogFormat:   getEnv(EnvLogFormat, "text"),
		Environment: getEnv(EnvEnvironment, "dev"),
		ServiceName: getEnv(EnvServiceName, "potionshop"),
		Version:     getEnv(EnvVersion, "dev"),
		CatalogPath: getEnv(EnvCatalogPath, ConfigPathCatalog),
	}

	var err error
	if cfg.StartingCoins, err = getEnvAsInt(EnvStartingCoins, DefaultStartingCoins); err != nil {
		return nil, err
	}
	if cfg.StartingCoins < 0 {
		return nil, fmt.Errorf("%s must not be negative (got %d)", EnvStartingCoins, cfg.StartingCoins)
	}
	if cfg.MaxSelection, err = getEnvAsInt(EnvMaxSelection, DefaultMaxSelection); err != nil {
		return nil, err
	}
	if cfg.MinMergeSelection, err = getEnvAsInt(EnvMinMergeSelection, DefaultMinMergeSelection); err != nil {
		return nil, err
	}
	if cfg.DefaultSellPrice, err = getEnvAsInt(EnvDefaultSellPrice, DefaultSellPrice); err != nil {
		return nil, err
	}
	if cfg.ClearSelectionOnMarket, err = getEnvAsBool(EnvClearSelectionOnMarket, false); err != nil {
		return nil, err
	}
	if cfg.MetricsPort, err = getEnvAsInt(EnvMetricsPort, 0); err != nil {
		return nil, err
	}
	if cfg.JournalRetentionDays, err = getEnvAsInt(EnvJournalRetentionDays, DefaultJournalRetention); err != nil {
		return nil, err
	}
	if cfg.JournalRetentionDays < 0 {
		return nil, fmt.Errorf("%s must not be negative (got %d)", EnvJournalRetentionDays, cfg.JournalRetentionDays)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer environment variable. Unset or empty means default.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return n, nil
}

// getEnvAsBool parses a boolean environment variable. Unset or empty means default.
func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, value, err)
	}
	return b, nil
}

// IsDevelopment reports whether the app runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
