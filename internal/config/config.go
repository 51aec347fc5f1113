package config

import (
	"fmt"
	"log"
	"os"
	"slices"
	"strconv"

	"github.com/mongodb/mcp/internal/logger"
)

type TransportMode string

const (
	// DefaultSchemaSampleSize is the default number of documents sampled
	// per collection when inferring a schema.
	DefaultSchemaSampleSize int64 = 100

	TransportModeStdio TransportMode = "stdio"
	TransportModeHTTP  TransportMode = "http"

	// DefaultHTTPPath is the endpoint path served in HTTP transport mode.
	DefaultHTTPPath = "/mcp"
)

// ValidTransportModes defines the allowed transport mode values
var ValidTransportModes = []TransportMode{TransportModeStdio, TransportModeHTTP}

// Config holds the application configuration
type Config struct {
	URI                string
	Database           string
	Telemetry          bool // If false, disables telemetry
	LogLevel           string
	LogFormat          string
	SchemaSampleSize   int64
	TransportMode      TransportMode // MCP transport mode ("stdio" or "http")
	HTTPHost           string        // HTTP server host (default: "127.0.0.1")
	HTTPPort           string        // HTTP server port (default: "8080")
	HTTPPath           string        // HTTP endpoint path (default: "/mcp")
	HTTPAllowedOrigins string        // Comma-separated list of allowed CORS origins ("*" for all)
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("configuration is required but was nil")
	}

	if c.URI == "" {
		return fmt.Errorf("MongoDB URI is required but was empty")
	}
	if c.Database == "" {
		return fmt.Errorf("MongoDB database name is required but was empty")
	}

	// Default to stdio if not provided (tests may construct Config directly)
	if c.TransportMode == "" {
		c.TransportMode = TransportModeStdio
	}
	if !slices.Contains(ValidTransportModes, c.TransportMode) {
		return fmt.Errorf("invalid transport mode '%s', must be one of %v", c.TransportMode, ValidTransportModes)
	}

	if c.SchemaSampleSize <= 0 {
		return fmt.Errorf("schema sample size must be positive, got %d", c.SchemaSampleSize)
	}

	return nil
}

// CLIOverrides holds optional configuration values from CLI flags
type CLIOverrides struct {
	URI           string
	Database      string
	Telemetry     string
	TransportMode string
	Host          string
	Port          string
}

// LoadConfig loads configuration from environment variables, applies CLI overrides, and validates.
// CLI flag values take precedence over environment variables.
// Returns an error if required configuration is missing or invalid.
func LoadConfig(cliOverrides *CLIOverrides) (*Config, error) {
	logLevel := GetEnvWithDefault("MONGODB_LOG_LEVEL", "info")
	logFormat := GetEnvWithDefault("MONGODB_LOG_FORMAT", "text")

	// Validate log level and use default if invalid
	if !slices.Contains(logger.ValidLogLevels, logLevel) {
		fmt.Fprintf(os.Stderr, "Warning: invalid MONGODB_LOG_LEVEL '%s', using default 'info'. Valid values: %v\n", logLevel, logger.ValidLogLevels)
		logLevel = "info"
	}
	if !slices.Contains(logger.ValidLogFormats, logFormat) {
		fmt.Fprintf(os.Stderr, "Warning: invalid MONGODB_LOG_FORMAT '%s', using default 'text'. Valid values: %v\n", logFormat, logger.ValidLogFormats)
		logFormat = "text"
	}

	cfg := &Config{
		URI:                GetEnv("MONGODB_URI"),
		Database:           GetEnv("MONGODB_DATABASE"),
		Telemetry:          ParseBool(GetEnv("MONGODB_TELEMETRY"), true),
		LogLevel:           logLevel,
		LogFormat:          logFormat,
		SchemaSampleSize:   ParseInt64(GetEnv("MONGODB_SCHEMA_SAMPLE_SIZE"), DefaultSchemaSampleSize),
		TransportMode:      GetTransportModeWithDefault("MONGODB_MCP_TRANSPORT", TransportModeStdio),
		HTTPHost:           GetEnvWithDefault("MONGODB_MCP_HTTP_HOST", "127.0.0.1"),
		HTTPPort:           GetEnvWithDefault("MONGODB_MCP_HTTP_PORT", "8080"),
		HTTPPath:           GetEnvWithDefault("MONGODB_MCP_HTTP_PATH", DefaultHTTPPath),
		HTTPAllowedOrigins: GetEnv("MONGODB_MCP_HTTP_ALLOWED_ORIGINS"),
	}

	// Apply CLI overrides if provided
	if cliOverrides != nil {
		if cliOverrides.URI != "" {
			cfg.URI = cliOverrides.URI
		}
		if cliOverrides.Database != "" {
			cfg.Database = cliOverrides.Database
		}
		if cliOverrides.Telemetry != "" {
			cfg.Telemetry = ParseBool(cliOverrides.Telemetry, true)
		}
		if cliOverrides.TransportMode != "" {
			cfg.TransportMode = TransportMode(cliOverrides.TransportMode)
		}
		if cliOverrides.Host != "" {
			cfg.HTTPHost = cliOverrides.Host
		}
		if cliOverrides.Port != "" {
			cfg.HTTPPort = cliOverrides.Port
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// GetEnv returns the value of an environment variable or empty string if not set
func GetEnv(key string) string {
	return os.Getenv(key)
}

// GetEnvWithDefault returns the value of an environment variable or a default value
func GetEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetTransportModeWithDefault returns the value of an environment variable or a default value
func GetTransportModeWithDefault(key string, defaultValue TransportMode) TransportMode {
	if value := os.Getenv(key); value != "" {
		return TransportMode(value)
	}
	return defaultValue
}

// ParseBool parses a string to bool using strconv.ParseBool.
// Returns the default value if the string is empty or invalid.
// Logs a warning if the value is non-empty but invalid.
func ParseBool(value string, defaultValue bool) bool {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("Warning: Invalid boolean value %q, using default: %v", value, defaultValue)
		return defaultValue
	}
	return parsed
}

// ParseInt64 parses a string to int64.
// Returns the default value if the string is empty or invalid.
func ParseInt64(value string, defaultValue int64) int64 {
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		log.Printf("Warning: Invalid integer value %q, using default: %v", value, defaultValue)
		return defaultValue
	}
	return parsed
}
