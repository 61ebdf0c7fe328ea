package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var (
	ErrInvalidPort     = errors.New("invalid port")
	ErrInvalidLogLevel = errors.New("invalid log level")
)

const (
	DefaultPort    uint16 = 3030
	DefaultEnvFile        = ".env"
)

// Config holds all configuration for the application
// Values come from the environment, optionally seeded from a local .env file
type Config struct {
	Server   ServerConfig
	Metrics  MetricsConfig
	LogLevel string
}

type ServerConfig struct {
	Port            uint16
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MetricsConfig configures the optional ops listener serving /metrics and /health
type MetricsConfig struct {
	Enabled bool
	Port    uint16
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	loadEnvFile(getEnv("ENV_FILE", DefaultEnvFile))

	port, err := getEnvAsPort("PORT", DefaultPort)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	metrics := MetricsConfig{}
	if _, ok := os.LookupEnv("METRICS_PORT"); ok {
		metricsPort, err := getEnvAsPort("METRICS_PORT", 0)
		if err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		metrics = MetricsConfig{Enabled: true, Port: metricsPort}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            port,
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Metrics:  metrics,
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("%w: %s (must be debug, info, warn, or error)", ErrInvalidLogLevel, c.LogLevel)
	}

	if c.Metrics.Enabled && c.Metrics.Port != 0 && c.Metrics.Port == c.Server.Port {
		return fmt.Errorf("%w: METRICS_PORT must differ from PORT (%d)", ErrInvalidPort, c.Server.Port)
	}

	return nil
}

// loadEnvFile seeds the environment from a dotenv file without overriding
// variables that are already set. A missing file is skipped; an unreadable
// or malformed one is logged and skipped.
func loadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("ignoring env file", "path", path, "error", err)
	}
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsPort defaults only when key is absent; a set but empty value is invalid
func getEnvAsPort(key string, defaultValue uint16) (uint16, error) {
	valueStr, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue, nil
	}
	value, err := strconv.ParseUint(valueStr, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q must be an integer between 0 and 65535", ErrInvalidPort, key, valueStr)
	}
	return uint16(value), nil
}
