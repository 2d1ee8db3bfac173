package shard

import (
	"testing"

	"github.com/krisalay/folio-data/types"
)

func TestCOWStore(t *testing.T) {
	s := NewCOWStore()

	s.Put("a", &types.CacheEntry{Key: "a", Value: 1})
	s.Put("b", &types.CacheEntry{Key: "b", Value: 2})
	s.Put("a", &types.CacheEntry{Key: "a", Value: 3})

	if s.Size() != 2 {
		t.Fatalf("expected size 2, got %d", s.Size())
	}
	if ent, ok := s.Get("a"); !ok || ent.Value != 3 {
		t.Fatalf("expected last write to win, got %+v", ent)
	}

	if !s.Delete("a") {
		t.Fatal("expected delete of present key to report true")
	}
	if s.Delete("a") {
		t.Fatal("expected delete of absent key to report false")
	}

	s.Reset()
	if s.Size() != 0 {
		t.Fatalf("expected empty store, got %d", s.Size())
	}
}

func TestHashSelectorIsStable(t *testing.T) {
	shards := []*Shard{NewShard(nil), NewShard(nil), NewShard(nil)}
	sel := HashSelector{}

	first := sel.Select("https://api.local/api/profile/", shards)
	for i := 0; i < 10; i++ {
		if sel.Select("https://api.local/api/profile/", shards) != first {
			t.Fatal("expected the same shard for the same key")
		}
	}
}
