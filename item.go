package secretcache

import "time"

// cacheItem pairs a secret value with an absolute expiry instant. The expiry
// is fixed at construction and never mutated; staleness is detected lazily
// on lookup, never by background work.
type cacheItem struct {
	// value is the cached secret payload
	value string

	// expiresAt is the wall-clock instant after which the item is stale
	expiresAt time.Time
}

// newCacheItem returns an item expiring ttl from now. A zero ttl produces an
// item that is immediately stale.
func newCacheItem(value string, ttl time.Duration) cacheItem {
	return cacheItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

// isExpired reports whether the item's TTL has elapsed. It compares against
// the wall clock, so clock adjustments during the process lifetime can cause
// premature or delayed expiry; this is an accepted approximation.
func (i cacheItem) isExpired() bool {
	return time.Now().After(i.expiresAt)
}
