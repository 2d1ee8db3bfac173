package types

import "time"

/*
CacheEntry is one stored value plus the timestamps the expiration rules look at.

Entries never leave the cache: callers only ever see Value. ExpireAt is
evaluated lazily when the entry is read, there is no background sweep.
*/
type CacheEntry struct {
	Key            string
	Value          any
	CreatedAt      time.Time
	LastAccessedAt time.Time
	ExpireAt       time.Time // zero => never expires
}

// Expired reports whether the entry has a deadline and now is past it.
func (e *CacheEntry) Expired(now time.Time) bool {
	return !e.ExpireAt.IsZero() && now.After(e.ExpireAt)
}
