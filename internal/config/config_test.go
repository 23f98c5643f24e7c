package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digiti/google-ads-mcp/internal/ads"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("MCP_MODE", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("PORT", "")
		t.Setenv("GOOGLE_ADS_CREDENTIALS", "")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "stdio", cfg.Mode)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, 8080, cfg.HTTPPort)
		assert.Equal(t, ads.DefaultCredentialsFile, cfg.CredentialsFile)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("MCP_MODE", "http")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("PORT", "9090")
		t.Setenv("GOOGLE_ADS_CREDENTIALS", "/etc/ads/google-ads.yaml")
		t.Setenv("GOOGLE_ADS_DEVELOPER_TOKEN", "dev-token")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "http", cfg.Mode)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 9090, cfg.HTTPPort)
		assert.Equal(t, "/etc/ads/google-ads.yaml", cfg.CredentialsFile)
		assert.Equal(t, "dev-token", cfg.AdsCredentials.DeveloperToken)
	})

	t.Run("invalid mode", func(t *testing.T) {
		t.Setenv("MCP_MODE", "websocket")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid MCP_MODE")
	})

	t.Run("non-numeric port falls back", func(t *testing.T) {
		t.Setenv("MCP_MODE", "")
		t.Setenv("PORT", "not-a-port")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 8080, cfg.HTTPPort)
	})
}

func TestValidate(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "warning", "error"} {
		cfg := &Config{LogLevel: level}
		assert.NoError(t, cfg.Validate(), level)
	}

	cfg := &Config{LogLevel: "verbose"}
	assert.Error(t, cfg.Validate())
}
