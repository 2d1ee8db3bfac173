// Package main load-tests the response cache with the access pattern the
// gateway produces: many readers of a few hot URLs, write-back on miss.
package main

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/krisalay/folio-data"
	"github.com/krisalay/folio-data/gateway"
	"github.com/krisalay/folio-data/types"
)

func main() {
	const (
		shards     = 8
		urls       = 64
		goroutines = 200
		opsPerG    = 5000
		ttl        = 50 * time.Millisecond
	)

	fmt.Println("\n================ RESPONSE CACHE BENCHMARK =================")
	fmt.Println("Shards       :", shards)
	fmt.Println("URLs         :", urls)
	fmt.Println("Goroutines   :", goroutines)
	fmt.Println("Ops/Goroutine:", opsPerG)
	fmt.Println("TTL          :", ttl)

	metrics := &types.Counters{}
	c, err := cache.NewShardedCache(
		cache.WithShards(shards),
		cache.WithTTL(ttl),
		cache.WithMetrics(metrics),
	)
	if err != nil {
		panic(err)
	}

	keys := make([]string, urls)
	for i := range keys {
		keys[i] = gateway.JoinURL("https://bench.local", fmt.Sprintf("api/resource-%d", i))
	}

	start := time.Now()

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for g := 0; g < goroutines; g++ {
		go func() {
			defer wg.Done()
			for j := 0; j < opsPerG; j++ {
				key := keys[(g+j)%urls]
				if _, ok := c.Get(key); !ok {
					c.Set(key, &gateway.Payload{URL: key, Status: 200, ContentType: "application/json", Body: []byte("[]")})
				}
			}
		}()
	}
	wg.Wait()

	duration := time.Since(start)
	totalOps := goroutines * opsPerG
	m := metrics.Snapshot()

	fmt.Println("\n================ RESULTS =================")
	fmt.Printf("Total Operations : %d\n", totalOps)
	fmt.Printf("Total Time       : %v\n", duration)
	fmt.Printf("Throughput       : %.2f ops/sec\n", float64(totalOps)/duration.Seconds())
	fmt.Printf("Hit Ratio        : %.4f\n", float64(m.Hits)/float64(m.Hits+m.Misses))
	fmt.Printf("Expired          : %d\n", m.Expired)
	fmt.Println("=========================================")
}
