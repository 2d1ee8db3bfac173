package eviction

import "fmt"

/*
Policy decides which key leaves a shard when the shard is at capacity.
The cache calls these methods while holding the shard's write lock, so
implementations do not need their own synchronisation.
*/
type Policy interface {

	// OnGet is called whenever a key is served from the shard.
	OnGet(string)

	// OnPut is called whenever a key is stored.
	OnPut(string)

	// Remove is called when a key leaves the shard for any reason other than Evict.
	Remove(string)

	// Evict picks the victim and forgets it. Empty string means nothing is tracked.
	Evict() string
}

// PolicyType names a supported eviction strategy.
type PolicyType string

const (
	// LRU evicts the key that was served least recently.
	LRU PolicyType = "LRU"

	// FIFO evicts the oldest inserted key, regardless of reads.
	FIFO PolicyType = "FIFO"
)

// NewEvictionPolicy builds a fresh policy instance for one shard.
func NewEvictionPolicy(t PolicyType) (Policy, error) {
	switch t {
	case LRU, "":
		return newLRU(), nil
	case FIFO:
		return newFIFO(), nil
	default:
		return nil, fmt.Errorf("unknown eviction policy %q", t)
	}
}
