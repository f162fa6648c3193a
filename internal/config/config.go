// Package config loads folio configuration from the environment, reading a
// .env file first when one exists.
package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Record store backends.
const (
	StorePostgres = "postgres"
	StoreMemory   = "memory"
)

// FX modes for filling usd_equivalent on create.
const (
	FXModeMultiplier = "multiplier"
	FXModeStatic     = "static"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string
	Env  string

	// Database; Store selects postgres or the seeded in-memory demo store.
	Store      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTExpirationDur time.Duration

	// Projection ingestion; empty disables the pipeline endpoint.
	PipelineAPIKey string

	// Dashboard
	ReferenceYear        int
	ProjectionWindowFrom int
	ProjectionWindowTo   int

	// FX
	FXMode           string
	FXMockMultiplier float64
}

var appConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	config := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Store:      strings.ToLower(getEnv("STORE", StorePostgres)),
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "folio"),
		DBPassword: getEnv("DB_PASSWORD", "folio"),
		DBName:     getEnv("DB_NAME", "folio"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:      getEnv("JWT_SECRET", "fallback-secret-key-for-dev-only"),
		PipelineAPIKey: os.Getenv("PIPELINE_API_KEY"),
		FXMode:         strings.ToLower(getEnv("FX_MODE", FXModeMultiplier)),
	}

	expStr := getEnv("JWT_EXPIRES_IN", "24h")
	expDur, err := time.ParseDuration(expStr)
	if err != nil {
		log.Printf("Warning: invalid JWT_EXPIRES_IN value '%s', falling back to 24h\n", expStr)
		expDur = 24 * time.Hour
	}
	config.JWTExpirationDur = expDur

	if config.ReferenceYear, err = parseInt("REFERENCE_YEAR", 2026); err != nil {
		return nil, err
	}
	if config.ProjectionWindowFrom, err = parseInt("PROJECTION_WINDOW_FROM", 2025); err != nil {
		return nil, err
	}
	if config.ProjectionWindowTo, err = parseInt("PROJECTION_WINDOW_TO", 2029); err != nil {
		return nil, err
	}
	if config.ProjectionWindowFrom > config.ProjectionWindowTo {
		return nil, fmt.Errorf("PROJECTION_WINDOW_FROM (%d) must not be after PROJECTION_WINDOW_TO (%d)",
			config.ProjectionWindowFrom, config.ProjectionWindowTo)
	}

	if config.FXMockMultiplier, err = parseFloat("FX_MOCK_MULTIPLIER", 1.2); err != nil {
		return nil, err
	}
	if config.FXMockMultiplier <= 0 || math.IsInf(config.FXMockMultiplier, 0) || math.IsNaN(config.FXMockMultiplier) {
		return nil, fmt.Errorf("FX_MOCK_MULTIPLIER must be a positive finite number, got %v", config.FXMockMultiplier)
	}
	switch config.Store {
	case StorePostgres, StoreMemory:
	default:
		return nil, fmt.Errorf("invalid STORE %q: must be postgres or memory", config.Store)
	}
	switch config.FXMode {
	case FXModeMultiplier, FXModeStatic:
	default:
		return nil, fmt.Errorf("invalid FX_MODE %q: must be multiplier or static", config.FXMode)
	}

	appConfig = config
	return config, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return n, nil
}

func parseFloat(key string, def float64) (float64, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, s, err)
	}
	return f, nil
}
