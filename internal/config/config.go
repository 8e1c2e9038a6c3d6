// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config tunes the user directory client and the initial screen.
type Config struct {
	APIURL     string        `env:"TRIPTYCH_API_URL" envDefault:"https://jsonplaceholder.typicode.com"`
	APITimeout time.Duration `env:"TRIPTYCH_API_TIMEOUT" envDefault:"10s"`
	UserID     int64         `env:"TRIPTYCH_USER_ID" envDefault:"1"`
	Screen     string        `env:"TRIPTYCH_SCREEN" envDefault:"counter"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
