package api

import "time"

/*
Cache is the contract the request gateway relies on.

It is a transient, process-lifetime key/value store with time-based expiry.
Nothing is persisted and nothing survives a restart. Every operation is total:
there are no error returns.
*/
type Cache interface {

	/*
		Get returns the value stored under key.

		If the key is absent, or present but past its expiry, Get returns
		(nil, false). An expired entry found this way is removed as a side
		effect (lazy eviction); there is no background sweep.
	*/
	Get(key string) (any, bool)

	// Set stores value under key with the cache's default TTL.
	Set(key string, value any)

	/*
		SetWithTTL stores value under key, expiring ttl from now.
		A ttl <= 0 means the default TTL.

		Writes are unconditional: if the key already exists it is overwritten,
		so when two overlapping fetches write the same key the last write wins.
	*/
	SetWithTTL(key string, value any, ttl time.Duration)

	// Has reports whether Get would succeed, and evicts exactly like Get.
	Has(key string) bool

	// Clear removes one key. Clearing a missing key is a no-op.
	Clear(key string)

	// ClearAll empties the cache.
	ClearAll()

	// Len counts stored entries, including expired ones not yet read.
	Len() int
}
