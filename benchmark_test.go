package cache_test

import (
	"fmt"
	"testing"

	cache "github.com/krisalay/folio-data"
)

func newBenchmarkCache(b *testing.B) *cache.ShardedCache {
	c, err := cache.NewShardedCache(cache.WithShards(8))
	if err != nil {
		b.Fatalf("new cache: %v", err)
	}
	return c
}

func BenchmarkSet(b *testing.B) {
	c := newBenchmarkCache(b)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Set(fmt.Sprintf("https://bench.local/api/r-%d/", i%64), i)
	}
}

func BenchmarkGetParallel(b *testing.B) {
	c := newBenchmarkCache(b)
	keys := make([]string, 64)
	for i := range keys {
		keys[i] = fmt.Sprintf("https://bench.local/api/r-%d/", i)
		c.Set(keys[i], i)
	}

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			c.Get(keys[i%len(keys)])
			i++
		}
	})
}
