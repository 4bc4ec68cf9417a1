// Package config loads server settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the mazed server configuration values.
type Config struct {
	Addr         string        // Address to listen on
	BaseURL      string        // Base URL for API routes
	GinMode      string        // Mode for the Gin framework (release, debug, test)
	StepInterval time.Duration // Default tick of the websocket step stream
	MaxMazes     int           // Stored mazes before the oldest is evicted
	MaxCells     int           // Upper bound on rows*cols per maze
}

// Load reads an optional .env file from files (default ".env") and then
// the environment. Unset keys take their defaults; malformed values are errors.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	interval, err := getEnvAsDuration("MAZED_STEP_INTERVAL", 25*time.Millisecond)
	if err != nil {
		return Config{}, err
	}
	maxMazes, err := getEnvAsInt("MAZED_MAX_MAZES", 64)
	if err != nil {
		return Config{}, err
	}
	maxCells, err := getEnvAsInt("MAZED_MAX_CELLS", 10000)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Addr:         getEnvWithDefault("MAZED_ADDR", ":8080"),
		BaseURL:      getEnvWithDefault("MAZED_BASE_URL", "/api"),
		GinMode:      getEnvWithDefault("GIN_MODE", "release"),
		StepInterval: interval,
		MaxMazes:     maxMazes,
		MaxCells:     maxCells,
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses a positive integer variable, falling back to defaultValue when unset.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be an integer: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %d", key, value)
	}
	return value, nil
}

// getEnvAsDuration parses a positive time.Duration variable, falling back to defaultValue when unset.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, fmt.Errorf("config: %s must be a duration: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("config: %s must be positive, got %s", key, value)
	}
	return value, nil
}
