// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	LedgerAPI LedgerAPIConfig
	Ledger    LedgerConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	LogLevel  slog.Level
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// LedgerAPIConfig holds the remote ledger service configuration.
type LedgerAPIConfig struct {
	BaseURL  string
	Timeout  time.Duration
	Secret   string        // Signs service tokens; requests are unauthenticated when empty
	TokenTTL time.Duration // Lifetime of a service token
}

// LedgerConfig holds the behaviour of the local ledger view.
type LedgerConfig struct {
	EditWindowHours int
	Location        *time.Location // Period windows and chart buckets are computed here
	RefreshInterval time.Duration  // 0 disables the background refresh worker
	RecentCount     int
	SyncOnStartup   bool
}

// RedisConfig holds Redis configuration. The in-flight mutation guard falls
// back to process memory when URL is empty.
type RedisConfig struct {
	URL      string
	Password string
	DB       int
	GuardTTL time.Duration
}

// RateLimitConfig holds per-client limits for mutation routes.
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 8080),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		LedgerAPI: LedgerAPIConfig{
			BaseURL:  strings.TrimRight(getEnv("LEDGER_API_URL", "http://localhost:5000/api"), "/"),
			Timeout:  getEnvAsDuration("LEDGER_API_TIMEOUT", 10*time.Second),
			Secret:   getEnv("LEDGER_API_SECRET", ""),
			TokenTTL: getEnvAsDuration("LEDGER_API_TOKEN_TTL", 5*time.Minute),
		},
		Ledger: LedgerConfig{
			EditWindowHours: getEnvAsInt("LEDGER_EDIT_WINDOW_HOURS", 12),
			Location:        getEnvAsLocation("LEDGER_TIMEZONE", time.Local),
			RefreshInterval: getEnvAsDuration("LEDGER_REFRESH_INTERVAL", 0),
			RecentCount:     getEnvAsInt("LEDGER_RECENT_COUNT", 5),
			SyncOnStartup:   getEnvAsBool("LEDGER_SYNC_ON_STARTUP", true),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			GuardTTL: getEnvAsDuration("MUTATION_GUARD_TTL", 30*time.Second),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getEnvAsFloat("RATE_LIMIT_RPS", 5),
			Burst:             getEnvAsInt("RATE_LIMIT_BURST", 10),
		},
		LogLevel: getEnvAsLogLevel("LOG_LEVEL", slog.LevelInfo),
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getEnvAsLocation(key string, defaultValue *time.Location) *time.Location {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		if loc, err := time.LoadLocation(value); err == nil {
			return loc
		}
	}
	return defaultValue
}

func getEnvAsLogLevel(key string, defaultValue slog.Level) slog.Level {
	if value, exists := os.LookupEnv(key); exists {
		var level slog.Level
		if err := level.UnmarshalText([]byte(value)); err == nil {
			return level
		}
	}
	return defaultValue
}
