package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// CredentialTTL bounds how long issued credential records are kept.
	// It should be at least the credential expiry; revocation records
	// share the same TTL so a denylist entry outlives its token.
	CredentialTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:           "redis://localhost:6379",
		PoolSize:      10,
		MinIdleConns:  2,
		CredentialTTL: 48 * time.Hour,
	}
}
