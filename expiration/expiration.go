// Package expiration decides when a cache entry is too old to be served.

package expiration

import (
	"time"

	"github.com/krisalay/folio-data/types"
)

// DefaultTTL is how long a cached response stays valid when the writer does not say otherwise.
const DefaultTTL = 5 * time.Minute

/*
Strategy is the rule set the cache engine consults on every read and write.
Keeping it behind an interface lets the store swap fixed and sliding TTLs
without touching shard or eviction code.
*/
type Strategy interface {

	// IsExpired checks if the entry must no longer be served at now.
	IsExpired(*types.CacheEntry, time.Time) bool

	// OnAccess is called after an entry is served.
	OnAccess(*types.CacheEntry, time.Time)

	// OnWrite is called when an entry is stored or replaced.
	OnWrite(*types.CacheEntry, time.Time)
}
