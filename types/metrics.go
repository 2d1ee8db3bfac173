package types

import "sync/atomic"

/*
Metrics is how the cache reports what it is doing.
Each method is one event in an entry's lifecycle. The cache calls them inline,
so implementations must be cheap and safe for concurrent use.
*/
type Metrics interface {

	// Hit is called when a read is served from memory.
	Hit()

	// Miss is called when a key is absent or has just expired.
	Miss()

	// Eviction is called when a key is dropped to make room under a capacity bound.
	Eviction()

	// Expire is called when an expired entry is found on read and removed.
	Expire()
}

// NoopMetrics ignores every event. It is the default so the cache never has to nil-check.
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Expire()   {}

/*
Counters is a Metrics implementation backed by atomic counters.
The CLI prints it after a session and tests use it to observe cache traffic.
*/
type Counters struct {
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
	expired   atomic.Int64
}

func (c *Counters) Hit()      { c.hits.Add(1) }
func (c *Counters) Miss()     { c.misses.Add(1) }
func (c *Counters) Eviction() { c.evictions.Add(1) }
func (c *Counters) Expire()   { c.expired.Add(1) }

// CounterSnapshot is a point-in-time copy of Counters.
type CounterSnapshot struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Expired   int64
}

// Snapshot reads all counters.
func (c *Counters) Snapshot() CounterSnapshot {
	return CounterSnapshot{
		Hits:      c.hits.Load(),
		Misses:    c.misses.Load(),
		Evictions: c.evictions.Load(),
		Expired:   c.expired.Load(),
	}
}
