package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, loaded from the environment
type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DataDir    string `env:"DATA_DIR" envDefault:"data"`
	ImageDir   string `env:"IMAGE_DIR" envDefault:"data/images"`
	BaseURL    string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	ChromePath string `env:"CHROME_PATH"`
	Env        string `env:"ENV" envDefault:"development"`
}

// Load parses the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}
	// PORT values copied from hosting dashboards sometimes carry the colon
	if len(cfg.Port) > 0 && cfg.Port[0] == ':' {
		cfg.Port = cfg.Port[1:]
	}
	return cfg, nil
}

// Addr is the listen address, bound on all interfaces for containers
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

// IsProduction reports whether the process runs with production settings
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
