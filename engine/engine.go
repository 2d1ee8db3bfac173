package engine

import (
	"time"

	"github.com/krisalay/folio-data/expiration"
	"github.com/krisalay/folio-data/types"
)

/*
CacheEngine is the policy layer of the cache.

It decides when an entry is expired, how timestamps move on reads and
writes, and where events are reported. It does not store data, pick shards
or lock anything; ShardedCache does that and calls in here.
*/
type CacheEngine struct {

	// Expiration decides freshness. Never nil after NewCacheEngine.
	Expiration expiration.Strategy

	// Metrics receives hit/miss/expire/eviction events. Never nil after NewCacheEngine.
	Metrics types.Metrics

	// Now is the clock. Tests replace it to step over TTLs without sleeping.
	Now func() time.Time
}

/*
NewCacheEngine fills in defaults for anything left nil: a fixed TTL of
expiration.DefaultTTL, no-op metrics and the wall clock.
*/
func NewCacheEngine(exp expiration.Strategy, metrics types.Metrics, now func() time.Time) *CacheEngine {
	if exp == nil {
		exp = &expiration.Fixed{TTL: expiration.DefaultTTL}
	}
	if metrics == nil {
		metrics = types.NoopMetrics{}
	}
	if now == nil {
		now = time.Now
	}
	return &CacheEngine{
		Expiration: exp,
		Metrics:    metrics,
		Now:        now,
	}
}

// IsExpired evaluates the entry against the current clock.
func (e *CacheEngine) IsExpired(ent *types.CacheEntry) bool {
	return e.Expiration.IsExpired(ent, e.Now())
}

// OnRead is called after an entry is served.
func (e *CacheEngine) OnRead(ent *types.CacheEntry) {
	e.Metrics.Hit()
	e.Expiration.OnAccess(ent, e.Now())
}

// OnWrite stamps a new entry before it becomes visible.
func (e *CacheEngine) OnWrite(ent *types.CacheEntry) {
	e.Expiration.OnWrite(ent, e.Now())
}
