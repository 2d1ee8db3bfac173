package cache

import (
	"time"

	"github.com/krisalay/folio-data/api"
	"github.com/krisalay/folio-data/engine"
	"github.com/krisalay/folio-data/eviction"
	"github.com/krisalay/folio-data/shard"
	"github.com/krisalay/folio-data/types"
)

var _ api.Cache = (*ShardedCache)(nil)

/*
ShardedCache is the Cache Store: an in-memory, time-bounded key/value store.

It is constructed explicitly and handed to the request gateway, so every
application instance (and every test) owns its own cache instead of sharing
a hidden global. It connects:
- shards (storage + locking)
- the engine (expiration + metrics)
- optional eviction when a capacity is configured
*/
type ShardedCache struct {
	shards []*shard.Shard

	engine *engine.CacheEngine

	selector shard.Selector

	// perShard is the capacity of one shard. Zero means unbounded.
	perShard int64

	policy eviction.PolicyType
}

/*
NewShardedCache builds a cache. Without options it is unbounded, uses
DefaultShards shards and a fixed five minute TTL.
*/
func NewShardedCache(opts ...Option) (*ShardedCache, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.shards < 1 {
		o.shards = 1
	}

	s := make([]*shard.Shard, o.shards)
	for i := range s {
		var policy eviction.Policy
		if o.capacity > 0 {
			p, err := eviction.NewEvictionPolicy(o.eviction)
			if err != nil {
				return nil, err
			}
			policy = p
		}
		s[i] = shard.NewShard(policy)
	}

	c := &ShardedCache{
		shards:   s,
		engine:   engine.NewCacheEngine(o.expiration, o.metrics, o.now),
		selector: shard.HashSelector{},
		policy:   o.eviction,
	}
	if o.capacity > 0 {
		c.perShard = int64(o.capacity / o.shards)
		if c.perShard < 1 {
			c.perShard = 1
		}
	}
	return c, nil
}

/*
Get returns the live value for key.

A miss costs no lock: the copy-on-write store is consulted first. A present
entry is re-read under the shard lock so the expiry check, the lazy delete and
the eviction bookkeeping happen atomically.
*/
func (c *ShardedCache) Get(key string) (any, bool) {
	sh := c.selector.Select(key, c.shards)

	if _, ok := sh.Store.Get(key); !ok {
		c.engine.Metrics.Miss()
		return nil, false
	}

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	ent, ok := sh.Store.Get(key)
	if !ok {
		c.engine.Metrics.Miss()
		return nil, false
	}
	if c.engine.IsExpired(ent) {
		c.engine.Metrics.Expire()
		c.engine.Metrics.Miss()
		c.removeLocked(sh, key)
		return nil, false
	}

	c.engine.OnRead(ent)
	if sh.Eviction != nil {
		sh.Eviction.OnGet(key)
	}
	return ent.Value, true
}

// Set stores value with the configured default TTL.
func (c *ShardedCache) Set(key string, value any) {
	c.SetWithTTL(key, value, 0)
}

// SetWithTTL stores value expiring ttl from now; ttl <= 0 falls back to the default.
func (c *ShardedCache) SetWithTTL(key string, value any, ttl time.Duration) {
	sh := c.selector.Select(key, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	// Only make room for new keys; an overwrite does not grow the shard.
	if _, exists := sh.Store.Get(key); !exists && c.perShard > 0 && sh.Store.Size() >= c.perShard {
		if victim := sh.Eviction.Evict(); victim != "" {
			c.engine.Metrics.Eviction()
			sh.Store.Delete(victim)
		}
	}

	ent := &types.CacheEntry{
		Key:   key,
		Value: value,
	}
	if ttl > 0 {
		ent.ExpireAt = c.engine.Now().Add(ttl)
	}
	c.engine.OnWrite(ent)

	sh.Store.Put(key, ent)
	if sh.Eviction != nil {
		sh.Eviction.OnPut(key)
	}
}

// Has is Get without the value.
func (c *ShardedCache) Has(key string) bool {
	_, ok := c.Get(key)
	return ok
}

// Clear removes key immediately. It is idempotent.
func (c *ShardedCache) Clear(key string) {
	sh := c.selector.Select(key, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	c.removeLocked(sh, key)
}

// ClearAll empties every shard.
func (c *ShardedCache) ClearAll() {
	for _, sh := range c.shards {
		sh.Mu.Lock()
		sh.Store.Reset()
		if sh.Eviction != nil {
			// the type was validated in NewShardedCache
			sh.Eviction, _ = eviction.NewEvictionPolicy(c.policy)
		}
		sh.Mu.Unlock()
	}
}

// Len counts entries across shards, expired-but-unread ones included.
func (c *ShardedCache) Len() int {
	var n int64
	for _, sh := range c.shards {
		n += sh.Store.Size()
	}
	return int(n)
}

/*
TTL returns the remaining lifetime of key with Redis-compatible sentinels:
  > 0 : time left
   -1 : key exists with no deadline
   -2 : key missing or already expired
It never evicts.
*/
func (c *ShardedCache) TTL(key string) time.Duration {
	sh := c.selector.Select(key, c.shards)

	sh.Mu.Lock()
	defer sh.Mu.Unlock()

	ent, ok := sh.Store.Get(key)
	if !ok {
		return -2
	}
	if ent.ExpireAt.IsZero() {
		return -1
	}
	d := ent.ExpireAt.Sub(c.engine.Now())
	if d <= 0 {
		return -2
	}
	return d
}

func (c *ShardedCache) removeLocked(sh *shard.Shard, key string) {
	sh.Store.Delete(key)
	if sh.Eviction != nil {
		sh.Eviction.Remove(key)
	}
}
