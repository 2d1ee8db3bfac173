package shard

import (
	"maps"
	"sync/atomic"

	"github.com/krisalay/folio-data/types"
)

// Store is the storage contract a shard relies on.
type Store interface {
	Get(string) (*types.CacheEntry, bool)
	Put(string, *types.CacheEntry)
	Delete(string) bool
	Reset()
	Size() int64
}

/*
cowStore is a copy-on-write map.

Readers load the current map from an atomic.Value and never block, so a miss
or a size check costs no lock. Writers (already serialised by Shard.Mu) clone
the map, modify the clone and swap it in.
*/
type cowStore struct {
	data atomic.Value // map[string]*types.CacheEntry
	size atomic.Int64
}

func NewCOWStore() *cowStore {
	s := &cowStore{}
	s.data.Store(make(map[string]*types.CacheEntry))
	return s
}

func (s *cowStore) load() map[string]*types.CacheEntry {
	return s.data.Load().(map[string]*types.CacheEntry)
}

func (s *cowStore) Get(key string) (*types.CacheEntry, bool) {
	ent, ok := s.load()[key]
	return ent, ok
}

// Put inserts or replaces unconditionally; the last writer wins.
func (s *cowStore) Put(key string, ent *types.CacheEntry) {
	n := make(map[string]*types.CacheEntry, len(s.load())+1)
	maps.Copy(n, s.load())
	n[key] = ent
	s.data.Store(n)
	s.size.Store(int64(len(n)))
}

// Delete reports whether the key was present. Absent keys do not trigger a copy.
func (s *cowStore) Delete(key string) bool {
	old := s.load()
	if _, ok := old[key]; !ok {
		return false
	}
	n := make(map[string]*types.CacheEntry, len(old))
	for k, v := range old {
		if k != key {
			n[k] = v
		}
	}
	s.data.Store(n)
	s.size.Store(int64(len(n)))
	return true
}

func (s *cowStore) Reset() {
	s.data.Store(make(map[string]*types.CacheEntry))
	s.size.Store(0)
}

func (s *cowStore) Size() int64 {
	return s.size.Load()
}
