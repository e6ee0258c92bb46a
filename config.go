package secretcache

import "time"

// Default configuration values for a SecretCache.
const (
	// DefaultMaxCacheSize is the default maximum number of secrets held in
	// the cache before least-recently-used eviction kicks in.
	DefaultMaxCacheSize = 1024

	// DefaultCacheItemTTL is the default duration a cached secret is served
	// before the next read refreshes it.
	DefaultCacheItemTTL = time.Hour

	// DefaultVersionStage is the default staging label requested from
	// Secrets Manager.
	DefaultVersionStage = "AWSCURRENT"
)

// Config holds the caching policy for a SecretCache. It is a value object:
// the With* methods return updated copies, and the configuration is
// immutable once a cache is constructed from it.
type Config struct {
	// MaxCacheSize is the maximum number of secrets to maintain in the
	// cache. The least recently used entry is evicted once the cache holds
	// this many secrets. A value below 1 is raised to 1 at cache
	// construction.
	//
	// Default: 1024
	MaxCacheSize int

	// CacheItemTTL is how long a cached secret is considered valid before
	// the value must be refreshed. Refreshing happens synchronously with
	// the read that finds the entry expired. A zero TTL makes every entry
	// immediately stale, effectively disabling caching.
	//
	// Default: 1 hour
	CacheItemTTL time.Duration

	// VersionStage is the staging label used when requesting secrets from
	// Secrets Manager, passed through verbatim.
	//
	// Default: "AWSCURRENT"
	VersionStage string
}

// NewConfig returns a Config with default values set.
func NewConfig() Config {
	return Config{
		MaxCacheSize: DefaultMaxCacheSize,
		CacheItemTTL: DefaultCacheItemTTL,
		VersionStage: DefaultVersionStage,
	}
}

// WithMaxCacheSize returns a copy of the config with MaxCacheSize set to n.
func (c Config) WithMaxCacheSize(n int) Config {
	c.MaxCacheSize = n
	return c
}

// WithCacheItemTTL returns a copy of the config with CacheItemTTL set to d.
func (c Config) WithCacheItemTTL(d time.Duration) Config {
	c.CacheItemTTL = d
	return c
}

// WithVersionStage returns a copy of the config with VersionStage set to
// stage.
func (c Config) WithVersionStage(stage string) Config {
	c.VersionStage = stage
	return c
}
