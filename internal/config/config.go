package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the desktop client.
type Config struct {
	BaseURL         string        `env:"SIGNDESK_API_BASE_URL" envDefault:"http://127.0.0.1:8000"`
	Discover        bool          `env:"SIGNDESK_DISCOVER" envDefault:"false"`
	DiscoverTimeout time.Duration `env:"SIGNDESK_DISCOVER_TIMEOUT" envDefault:"3s"`
	HTTPTimeout     time.Duration `env:"SIGNDESK_HTTP_TIMEOUT" envDefault:"0s"`

	SurfaceWidth  int `env:"SIGNDESK_SURFACE_WIDTH" envDefault:"600"`
	SurfaceHeight int `env:"SIGNDESK_SURFACE_HEIGHT" envDefault:"200"`

	PollInterval  time.Duration `env:"SIGNDESK_POLL_INTERVAL" envDefault:"2s"`
	StatusTimeout time.Duration `env:"SIGNDESK_STATUS_TIMEOUT" envDefault:"5s"`
	PageSize      int           `env:"SIGNDESK_PAGE_SIZE" envDefault:"9"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid SIGNDESK_API_BASE_URL %q", c.BaseURL)
	}
	if c.SurfaceWidth <= 0 || c.SurfaceHeight <= 0 {
		return fmt.Errorf("surface size must be positive, got %dx%d", c.SurfaceWidth, c.SurfaceHeight)
	}
	if c.PageSize <= 0 {
		return fmt.Errorf("page size must be positive, got %d", c.PageSize)
	}
	if c.HTTPTimeout < 0 {
		return fmt.Errorf("http timeout must not be negative")
	}
	return nil
}
