package shard

import "hash/fnv"

/*
Selector maps a key to the shard that owns it.
The mapping must be stable: the same key always lands on the same shard,
otherwise reads would miss entries written through another shard.
*/
type Selector interface {
	Select(string, []*Shard) *Shard
}

// HashSelector picks a shard by FNV-1a hash of the key modulo the shard count.
type HashSelector struct{}

func hash(s string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(s))
	return h.Sum32()
}

func (HashSelector) Select(key string, shards []*Shard) *Shard {
	return shards[hash(key)%uint32(len(shards))]
}
