package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds server configuration, populated from the environment
type Config struct {
	Host string `env:"WORDGUESS_HOST" envDefault:""`
	Port int    `env:"WORDGUESS_PORT" envDefault:"8080"`

	// StorageType selects the storage backend ("memory" or "redis")
	StorageType string `env:"WORDGUESS_STORAGE" envDefault:"memory"`
	RedisURL    string `env:"WORDGUESS_REDIS_URL" envDefault:"redis://localhost:6379"`

	// WordsPath optionally points at a word-pool file (one word per line).
	// The built-in default list seeds an empty pool either way.
	WordsPath string `env:"WORDGUESS_WORDS_PATH"`

	// QuotaMaxPerDay is the number of sessions an account may complete
	// per calendar day
	QuotaMaxPerDay int `env:"WORDGUESS_QUOTA_MAX" envDefault:"3"`

	// CredentialTTL is how long issued credentials stay valid
	// (revocation can end them earlier)
	CredentialTTL time.Duration `env:"WORDGUESS_CREDENTIAL_TTL" envDefault:"24h"`

	// Bootstrap admin account
	AdminUsername string `env:"WORDGUESS_ADMIN_USERNAME" envDefault:"AdminUser"`
	AdminPassword string `env:"WORDGUESS_ADMIN_PASSWORD" envDefault:"Adm1n$*"`
}

// Load parses configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
