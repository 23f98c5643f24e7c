package config

import (
	"fmt"
	"os"

	"github.com/digiti/google-ads-mcp/internal/ads"
)

// Config holds all configuration for the MCP server
type Config struct {
	// Server configuration
	Mode     string // "stdio" or "http"
	LogLevel string // "debug", "info", "warn", "error"

	// HTTP server configuration (for bearer-token mode)
	HTTPPort int

	// Google Ads credentials from the environment; the credentials file is a
	// fallback resolved lazily by the ads resolver.
	AdsCredentials  ads.Credentials
	CredentialsFile string
}

// Load loads configuration from environment variables
// Priority: environment variables > defaults
func Load() (*Config, error) {
	cfg := &Config{
		Mode:            getEnv("MCP_MODE", "stdio"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		HTTPPort:        getIntEnv("PORT", 8080),
		AdsCredentials:  ads.CredentialsFromEnv(),
		CredentialsFile: getEnv("GOOGLE_ADS_CREDENTIALS", ads.DefaultCredentialsFile),
	}

	if cfg.Mode != "stdio" && cfg.Mode != "http" {
		return nil, fmt.Errorf("invalid MCP_MODE: %s (must be 'stdio' or 'http')", cfg.Mode)
	}

	return cfg, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug":   true,
		"info":    true,
		"warn":    true,
		"warning": true,
		"error":   true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.LogLevel)
	}
	return nil
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getIntEnv gets an integer environment variable
func getIntEnv(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var intValue int
	_, err := fmt.Sscanf(value, "%d", &intValue)
	if err != nil {
		return defaultValue
	}
	return intValue
}
