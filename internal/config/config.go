// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime settings for the credential service.
//
// JWTSecret has no default on purpose: a missing secret is a startup error,
// never a silent fallback to a well-known value.
type Config struct {
	Port        string        `env:"PORT" envDefault:"5000"`
	DatabaseURL string        `env:"DATABASE_URL,notEmpty"`
	JWTSecret   string        `env:"JWT_SECRET,notEmpty"`
	TokenTTL    time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	BcryptCost  int           `env:"BCRYPT_COST" envDefault:"10"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
