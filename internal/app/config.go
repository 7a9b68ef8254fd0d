package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// DataDir is where the JSON documents live, e.g. $HOME/.socialcosmos.
	// Empty means the per-user default.
	DataDir string `env:"COSMOS_DATA_DIR"`

	// Addr is the HTTP API listen address.
	Addr string `env:"COSMOS_ADDR" envDefault:":8080"`

	// JWTSecret signs access tokens. Empty means an ephemeral random secret,
	// which invalidates outstanding access tokens on restart.
	JWTSecret string `env:"COSMOS_JWT_SECRET"`

	// AccessTokenTTL bounds transient (non-remembered) logins.
	AccessTokenTTL time.Duration `env:"COSMOS_ACCESS_TOKEN_TTL" envDefault:"15m"`

	// SessionTTL bounds remembered sessions.
	SessionTTL time.Duration `env:"COSMOS_SESSION_TTL" envDefault:"720h"`
}

// FromEnv loads configuration from environment variables.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
