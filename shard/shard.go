package shard

import (
	"sync"

	"github.com/krisalay/folio-data/eviction"
)

/*
Shard is one independent slice of the cache: its own store, its own eviction
bookkeeping and its own write lock. Response URLs spread across shards so
concurrent fetchers writing back different resources do not contend.
*/
type Shard struct {

	// Store holds key → entry. Reads are lock-free, see cowStore.
	Store Store

	// Eviction is nil when the cache is unbounded.
	Eviction eviction.Policy

	// Mu serialises every mutation of Store and Eviction.
	Mu sync.Mutex
}

func NewShard(ev eviction.Policy) *Shard {
	return &Shard{
		Store:    NewCOWStore(),
		Eviction: ev,
	}
}
