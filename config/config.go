// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import "os"

// Config holds all application configuration.
type Config struct {
	App     AppConfig
	Catalog CatalogConfig
}

// AppConfig holds process-level settings.
type AppConfig struct {
	Environment string
	LogLevel    string
}

// CatalogConfig holds catalog ingestion settings.
type CatalogConfig struct {
	File string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
		},
		Catalog: CatalogConfig{
			File: getEnv("CATALOG_FILE", "testdata/products.json"),
		},
	}
}

// getEnv returns the environment variable value or a default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
