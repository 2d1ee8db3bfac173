package cache_test

import (
	"fmt"
	"sync"
	"testing"
	"time"

	cache "github.com/krisalay/folio-data"
	"github.com/krisalay/folio-data/eviction"
	"github.com/krisalay/folio-data/expiration"
	"github.com/krisalay/folio-data/types"
)

//
// ================= TEST CLOCK =================
//

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestCache(t *testing.T, opts ...cache.Option) *cache.ShardedCache {
	t.Helper()
	c, err := cache.NewShardedCache(opts...)
	if err != nil {
		t.Fatalf("new cache: %v", err)
	}
	return c
}

//
// ================= BASIC OPERATIONS =================
//

func TestSetAndGet(t *testing.T) {
	c := newTestCache(t)

	c.Set("key1", "value1")

	v, ok := c.Get("key1")
	if !ok || v != "value1" {
		t.Fatalf("expected value1, got %v (ok=%v)", v, ok)
	}
}

func TestGetMissingKey(t *testing.T) {
	c := newTestCache(t)

	v, ok := c.Get("missing")
	if ok || v != nil {
		t.Fatalf("expected miss, got %v (ok=%v)", v, ok)
	}
	if c.Has("missing") {
		t.Fatal("expected Has to be false for a missing key")
	}
}

func TestOverwriteLastWriteWins(t *testing.T) {
	c := newTestCache(t)

	c.Set("key1", "value1")
	c.Set("key1", "value2")

	v, _ := c.Get("key1")
	if v != "value2" {
		t.Fatalf("expected value2, got %v", v)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 entry, got %d", c.Len())
	}
}

func TestClear(t *testing.T) {
	c := newTestCache(t)

	c.Set("a", 1)
	c.Set("b", 2)
	c.Clear("a")
	c.Clear("never-set")

	if c.Has("a") {
		t.Fatal("expected a to be cleared")
	}
	if !c.Has("b") {
		t.Fatal("expected b to survive")
	}
}

func TestClearAll(t *testing.T) {
	c := newTestCache(t, cache.WithCapacity(10, eviction.LRU))

	for i := 0; i < 5; i++ {
		c.Set(fmt.Sprintf("k%d", i), i)
	}
	c.ClearAll()

	if c.Len() != 0 {
		t.Fatalf("expected empty cache, got %d entries", c.Len())
	}

	// eviction bookkeeping starts over too
	c.Set("fresh", true)
	if !c.Has("fresh") {
		t.Fatal("expected writes to work after ClearAll")
	}
}

//
// ================= TTL =================
//

func TestTTLExpiration(t *testing.T) {
	c := newTestCache(t)

	c.SetWithTTL("k", "v", 100*time.Millisecond)

	if v, ok := c.Get("k"); !ok || v != "v" {
		t.Fatalf("expected v immediately after set, got %v", v)
	}

	time.Sleep(150 * time.Millisecond)

	if v, ok := c.Get("k"); ok {
		t.Fatalf("expected miss after TTL, got %v", v)
	}
	if c.Has("k") {
		t.Fatal("expected Has to be false after TTL")
	}
}

func TestDefaultTTLIsFiveMinutes(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, cache.WithClock(clock.Now))

	c.Set("k", "v")

	clock.Advance(5 * time.Minute)
	if !c.Has("k") {
		t.Fatal("expected entry to live for the full default TTL")
	}

	clock.Advance(time.Millisecond)
	if c.Has("k") {
		t.Fatal("expected entry to expire after the default TTL")
	}
}

func TestNonPositiveTTLUsesDefault(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, cache.WithClock(clock.Now), cache.WithTTL(time.Minute))

	c.SetWithTTL("k", "v", 0)

	clock.Advance(59 * time.Second)
	if !c.Has("k") {
		t.Fatal("expected entry before configured TTL")
	}
	clock.Advance(2 * time.Second)
	if c.Has("k") {
		t.Fatal("expected entry to expire with configured TTL")
	}
}

func TestExpiredEntryIsEvictedLazily(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, cache.WithClock(clock.Now))

	c.SetWithTTL("k", "v", time.Second)
	clock.Advance(2 * time.Second)

	// nothing sweeps in the background
	if c.Len() != 1 {
		t.Fatalf("expected expired entry to stay until read, got %d entries", c.Len())
	}

	if _, ok := c.Get("k"); ok {
		t.Fatal("expected expired entry to be a miss")
	}
	if c.Len() != 0 {
		t.Fatalf("expected expired entry to be removed on read, got %d entries", c.Len())
	}
}

func TestOverwriteResetsDeadline(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, cache.WithClock(clock.Now))

	c.SetWithTTL("k", "old", time.Second)
	clock.Advance(900 * time.Millisecond)
	c.SetWithTTL("k", "new", time.Second)
	clock.Advance(900 * time.Millisecond)

	v, ok := c.Get("k")
	if !ok || v != "new" {
		t.Fatalf("expected new value within its own TTL, got %v (ok=%v)", v, ok)
	}
}

func TestFixedTTLIsNotExtendedByReads(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, cache.WithClock(clock.Now))

	c.SetWithTTL("k", "v", time.Second)
	for i := 0; i < 3; i++ {
		clock.Advance(400 * time.Millisecond)
		c.Get("k")
	}

	if c.Has("k") {
		t.Fatal("expected reads not to extend a fixed TTL")
	}
}

func TestSlidingExpiration(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t,
		cache.WithClock(clock.Now),
		cache.WithExpiration(&expiration.ExpireAfterAccess{TTL: time.Second}),
	)

	c.Set("k", "v")
	for i := 0; i < 3; i++ {
		clock.Advance(800 * time.Millisecond)
		if !c.Has("k") {
			t.Fatalf("expected read %d to keep the entry alive", i)
		}
	}

	clock.Advance(1100 * time.Millisecond)
	if c.Has("k") {
		t.Fatal("expected idle entry to expire")
	}
}

func TestTTLSentinels(t *testing.T) {
	clock := newFakeClock()
	c := newTestCache(t, cache.WithClock(clock.Now))

	if got := c.TTL("missing"); got != -2 {
		t.Fatalf("expected -2 for missing key, got %v", got)
	}

	c.SetWithTTL("k", "v", 10*time.Second)
	clock.Advance(4 * time.Second)
	if got := c.TTL("k"); got != 6*time.Second {
		t.Fatalf("expected 6s left, got %v", got)
	}

	clock.Advance(7 * time.Second)
	if got := c.TTL("k"); got != -2 {
		t.Fatalf("expected -2 for expired key, got %v", got)
	}
}

//
// ================= CAPACITY & EVICTION =================
//

func TestLRUEvictionOnCapacity(t *testing.T) {
	c := newTestCache(t, cache.WithShards(1), cache.WithCapacity(2, eviction.LRU))

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Get("key1")           // key2 is now least recently used
	c.Set("key3", "value3") // evicts key2

	if !c.Has("key1") || !c.Has("key3") {
		t.Fatal("expected key1 and key3 to remain")
	}
	if c.Has("key2") {
		t.Fatal("expected key2 to be evicted")
	}
}

func TestFIFOEvictionOnCapacity(t *testing.T) {
	c := newTestCache(t, cache.WithShards(1), cache.WithCapacity(2, eviction.FIFO))

	c.Set("key1", "value1")
	c.Set("key2", "value2")
	c.Get("key1")
	c.Set("key3", "value3") // evicts key1 regardless of the read

	if c.Has("key1") {
		t.Fatal("expected key1 to be evicted")
	}
	if !c.Has("key2") || !c.Has("key3") {
		t.Fatal("expected key2 and key3 to remain")
	}
}

func TestOverwriteDoesNotEvict(t *testing.T) {
	c := newTestCache(t, cache.WithShards(1), cache.WithCapacity(2, eviction.LRU))

	c.Set("key1", 1)
	c.Set("key2", 2)
	c.Set("key2", 3)

	if !c.Has("key1") {
		t.Fatal("expected overwrite to keep key1")
	}
}

func TestUnknownEvictionPolicy(t *testing.T) {
	_, err := cache.NewShardedCache(cache.WithCapacity(10, eviction.PolicyType("ARC")))
	if err == nil {
		t.Fatal("expected error for unknown eviction policy")
	}
}

//
// ================= METRICS =================
//

func TestMetricsCounters(t *testing.T) {
	clock := newFakeClock()
	m := &types.Counters{}
	c := newTestCache(t,
		cache.WithClock(clock.Now),
		cache.WithMetrics(m),
		cache.WithShards(1),
		cache.WithCapacity(1, eviction.LRU),
	)

	c.Set("a", 1)
	c.Get("a")       // hit
	c.Get("missing") // miss
	c.Set("b", 2)    // evicts a
	clock.Advance(time.Hour)
	c.Get("b") // expire + miss

	got := m.Snapshot()
	want := types.CounterSnapshot{Hits: 1, Misses: 2, Evictions: 1, Expired: 1}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

//
// ================= CONCURRENCY =================
//

func TestConcurrentSetAndGet(t *testing.T) {
	c := newTestCache(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				key := fmt.Sprintf("key-%d", j%10)
				c.Set(key, i)
				if _, ok := c.Get(key); !ok {
					t.Errorf("expected %s to be present", key)
				}
			}
		}()
	}
	wg.Wait()

	if c.Len() != 10 {
		t.Fatalf("expected 10 entries, got %d", c.Len())
	}
}
