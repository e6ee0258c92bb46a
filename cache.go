// Package secretcache provides in-process, read-through caching of secret
// values from AWS Secrets Manager.
//
// A SecretCache holds secret strings in a bounded LRU cache and refreshes
// them lazily: a cached value is served until its TTL elapses, after which
// the next read fetches a fresh value from Secrets Manager. Capacity is
// enforced with least-recently-used eviction, giving O(1) insertions and
// O(1) lookups.
//
// # Basic Usage
//
//	cfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache := secretcache.New(secretsmanager.NewFromConfig(cfg))
//
//	value, err := cache.GetSecretString("service/secret").Send(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Handling Rotation
//
// A secret can be rotated at Secrets Manager before the cached entry's TTL
// elapses. ForceRefresh bypasses the freshness check for a single request
// and writes the fetched value back under the normal TTL:
//
//	value, err := cache.GetSecretString("service/secret").ForceRefresh().Send(ctx)
//
// # Error Handling
//
// Fetch failures are returned to the caller verbatim; the cache never
// retries and never drops a previously cached value on failure. Use the
// classification helpers to branch on failure modes:
//
//	value, err := cache.GetSecretString("service/secret").Send(ctx)
//	if secretcache.IsSecretNotFound(err) {
//	    // Handle missing secret
//	} else if secretcache.IsAccessDenied(err) {
//	    // Handle permission issues
//	}
package secretcache

import (
	"sync"

	"github.com/adamjq/aws-secretsmanager-cache-go/internal/lru"
)

// SecretCache is a read-through cache in front of an AWS Secrets Manager
// client. It is long-lived: construct one per process and reuse it across
// requests.
//
// SecretCache is safe for concurrent use by multiple goroutines. Concurrent
// requests for the same missing or expired secret are not deduplicated; each
// performs its own fetch and the last write wins by completion order.
type SecretCache struct {
	// client is the AWS Secrets Manager client used for cache refreshes
	client SecretsManagerAPI

	// config holds the caching policy; immutable after construction
	config Config

	// mu serializes access to store
	mu sync.Mutex

	// store holds the cached secret values with LRU eviction
	store *lru.Cache[cacheItem]
}

// New returns a SecretCache with the default configuration: 1024 entries,
// a one hour TTL, and the AWSCURRENT version stage.
func New(client SecretsManagerAPI) *SecretCache {
	return NewWithConfig(client, NewConfig())
}

// NewWithConfig returns a SecretCache with the provided configuration.
// A MaxCacheSize below 1 is raised to 1, and an empty VersionStage falls
// back to DefaultVersionStage.
func NewWithConfig(client SecretsManagerAPI, config Config) *SecretCache {
	if config.VersionStage == "" {
		config.VersionStage = DefaultVersionStage
	}
	return &SecretCache{
		client: client,
		config: config,
		store:  lru.New[cacheItem](config.MaxCacheSize),
	}
}

// GetSecretString begins a request for the secret identified by secretID.
// Complete the request with Send, optionally setting ForceRefresh first.
func (c *SecretCache) GetSecretString(secretID string) *GetSecretStringRequest {
	return &GetSecretStringRequest{
		cache:    c,
		secretID: secretID,
	}
}

// lookup returns the cached value for secretID if one is present and fresh.
// The lookup itself promotes the key to most recently used, even when the
// entry turns out to be expired.
func (c *SecretCache) lookup(secretID string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.store.Get(secretID)
	if !ok || item.isExpired() {
		return "", false
	}
	return item.value, true
}

// write stores a freshly fetched value under secretID with the configured
// TTL. This is the only path that can evict another key.
func (c *SecretCache) write(secretID, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.Put(secretID, newCacheItem(value, c.config.CacheItemTTL))
}
