// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Identity modes.
const (
	IdentityTokenInfo = "tokeninfo"
	IdentityJWT       = "jwt"
)

// Config holds all server settings. Values come from the environment with
// defaults; command-line flags override them.
type Config struct {
	Addr          string        `env:"CATALOG_ADDR"           env-default:":8080"`
	DBPath        string        `env:"CATALOG_DB"             env-default:"catalog.sqlite3"`
	IdentityMode  string        `env:"CATALOG_IDENTITY"       env-default:"tokeninfo"`
	TokenInfoURL  string        `env:"CATALOG_TOKENINFO_URL"  env-default:"https://oauth2.googleapis.com/tokeninfo"`
	JWTSecret     string        `env:"CATALOG_JWT_SECRET"`
	OracleTimeout time.Duration `env:"CATALOG_ORACLE_TIMEOUT" env-default:"5s"`
	LogPath       string        `env:"CATALOG_LOG"`
}

// Load reads configuration from the environment. Validation is separate so
// command-line flags can override values before they are checked.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	return &cfg, nil
}

// Validate checks settings that cleanenv tags cannot express.
func (c *Config) Validate() error {
	switch c.IdentityMode {
	case IdentityTokenInfo:
		if c.TokenInfoURL == "" {
			return fmt.Errorf("tokeninfo identity mode requires a tokeninfo URL")
		}
	case IdentityJWT:
		if c.JWTSecret == "" {
			return fmt.Errorf("jwt identity mode requires a signing secret")
		}
	default:
		return fmt.Errorf("unknown identity mode %q", c.IdentityMode)
	}
	if c.OracleTimeout <= 0 {
		return fmt.Errorf("oracle timeout must be positive")
	}
	return nil
}
