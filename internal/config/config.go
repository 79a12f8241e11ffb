package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port         int
	DevMode      bool
	DatabasePath string
	LogLevel     string

	// Default rebalancing knobs applied when a calculation request
	// does not override them.
	RebalanceThreshold float64
	MinimumTradingUnit int
	Commission         float64
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnvAsInt("PORT", 8080),
		DevMode:            getEnvAsBool("DEV_MODE", false),
		DatabasePath:       getEnv("DATABASE_PATH", "./data/dashboard.db"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RebalanceThreshold: getEnvAsFloat("REBALANCE_THRESHOLD", 5.0),
		MinimumTradingUnit: getEnvAsInt("MINIMUM_TRADING_UNIT", 1),
		Commission:         getEnvAsFloat("COMMISSION", 0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if required configuration is present
func (c *Config) Validate() error {
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH is required")
	}
	if c.RebalanceThreshold < 0 {
		return fmt.Errorf("REBALANCE_THRESHOLD must not be negative")
	}
	if c.MinimumTradingUnit < 1 {
		return fmt.Errorf("MINIMUM_TRADING_UNIT must be at least 1")
	}
	if c.Commission < 0 {
		return fmt.Errorf("COMMISSION must not be negative")
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
