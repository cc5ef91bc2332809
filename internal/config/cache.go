package config

import (
	"time"
)

// CacheConfig defines settings for the response cache middleware that sits
// in front of the public room catalog endpoint.  When Enabled is false or no
// Redis client is configured, caching is disabled.  TTL defines the lifetime
// of cache entries, Prefix controls key namespacing and MaxBodyBytes caps the
// size of responses worth caching.
type CacheConfig struct {
	Enabled      bool
	TTL          time.Duration
	Prefix       string
	MaxBodyBytes int
}

// LoadCacheConfig reads the CACHE_* environment variables to build a
// CacheConfig.  Defaults are used when variables are not set.
func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		Enabled:      envBool("CACHE_ENABLED", true),
		TTL:          envDur("CACHE_TTL", 30*time.Second),
		Prefix:       envStr("CACHE_PREFIX", "cache"),
		MaxBodyBytes: envInt("CACHE_MAX_BODY_BYTES", 1<<20),
	}
}
