package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

type Mode string

const (
	ModeLocal      Mode = "local"
	ModeProduction Mode = "production"
)

type Config struct {
	Mode Mode `env:"MOODLENS_MODE" envDefault:"local"`

	Port string `env:"MOODLENS_PORT" envDefault:"8000"`
	// PlatformPort is the PORT injected by most hosting platforms; it wins over Port.
	PlatformPort string `env:"PORT"`

	ServiceName     string        `env:"MOODLENS_SERVICE_NAME" envDefault:"MoodLens"`
	ShutdownTimeout time.Duration `env:"MOODLENS_SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// Logging
	LogLevel  string `env:"MOODLENS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"MOODLENS_LOG_FORMAT" envDefault:"json"`
}

// Load reads all env vars and builds the config
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.PlatformPort != "" {
		cfg.Port = cfg.PlatformPort
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) IsProduction() bool {
	return c.Mode == ModeProduction
}

func (c *Config) validate() error {
	switch c.Mode {
	case ModeLocal, ModeProduction:
	default:
		return fmt.Errorf("MOODLENS_MODE must be %q or %q, got %q", ModeLocal, ModeProduction, c.Mode)
	}

	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("port must not be empty")
	}
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("MOODLENS_SERVICE_NAME must not be empty")
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("MOODLENS_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("MOODLENS_LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("MOODLENS_SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}

	return nil
}
