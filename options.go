package cache

import (
	"time"

	"github.com/krisalay/folio-data/eviction"
	"github.com/krisalay/folio-data/expiration"
	"github.com/krisalay/folio-data/types"
)

// DefaultShards is the shard count used when WithShards is not given.
const DefaultShards = 8

type options struct {
	shards     int
	capacity   int
	eviction   eviction.PolicyType
	expiration expiration.Strategy
	metrics    types.Metrics
	now        func() time.Time
}

func defaultOptions() options {
	return options{
		shards:   DefaultShards,
		eviction: eviction.LRU,
	}
}

// Option configures a ShardedCache.
type Option func(*options)

// WithShards sets the number of independent shards.
func WithShards(n int) Option {
	return func(o *options) { o.shards = n }
}

/*
WithCapacity bounds the cache to roughly n entries, split evenly across
shards, evicting with the given policy once a shard is full.
n <= 0 keeps the cache unbounded.
*/
func WithCapacity(n int, policy eviction.PolicyType) Option {
	return func(o *options) {
		o.capacity = n
		o.eviction = policy
	}
}

// WithTTL sets the default TTL under the fixed expiration strategy.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) { o.expiration = &expiration.Fixed{TTL: ttl} }
}

// WithExpiration replaces the expiration strategy outright.
func WithExpiration(s expiration.Strategy) Option {
	return func(o *options) { o.expiration = s }
}

// WithMetrics reports cache events to m.
func WithMetrics(m types.Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}
