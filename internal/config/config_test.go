package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "http://127.0.0.1:8000", cfg.BaseURL)
	require.False(t, cfg.Discover)
	require.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	require.Equal(t, 200, cfg.SurfaceHeight)
	require.Equal(t, 2*time.Second, cfg.PollInterval)
	require.Equal(t, 5*time.Second, cfg.StatusTimeout)
	require.Equal(t, 9, cfg.PageSize)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SIGNDESK_API_BASE_URL", "https://contracts.example.com")
	t.Setenv("SIGNDESK_HTTP_TIMEOUT", "15s")
	t.Setenv("SIGNDESK_DISCOVER", "true")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "https://contracts.example.com", cfg.BaseURL)
	require.Equal(t, 15*time.Second, cfg.HTTPTimeout)
	require.True(t, cfg.Discover)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("SIGNDESK_PAGE_SIZE", "nine")

	var cfg Config
	err := ParseEnv(&cfg)
	require.Error(t, err)
	require.True(t, strings.HasPrefix(err.Error(), "parse env:"))
}

func TestValidateRejectsBadURL(t *testing.T) {
	t.Setenv("SIGNDESK_API_BASE_URL", "not a url")

	_, err := Load()
	require.ErrorContains(t, err, "SIGNDESK_API_BASE_URL")
}
