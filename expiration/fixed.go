package expiration

import (
	"time"

	"github.com/krisalay/folio-data/types"
)

/*
Fixed is an absolute TTL: an entry expires TTL after it was written and reads
never extend it.
*/
type Fixed struct {
	TTL time.Duration
}

func (f *Fixed) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return ent.Expired(now)
}

// OnAccess only records the access time; the deadline stays where it was.
func (f *Fixed) OnAccess(ent *types.CacheEntry, now time.Time) {
	ent.LastAccessedAt = now
}

/*
OnWrite stamps creation time and, unless the writer already chose a deadline
(SetWithTTL), sets ExpireAt to now + TTL.
*/
func (f *Fixed) OnWrite(ent *types.CacheEntry, now time.Time) {
	ent.CreatedAt = now
	ent.LastAccessedAt = now
	if ent.ExpireAt.IsZero() {
		ent.ExpireAt = now.Add(f.ttl())
	}
}

func (f *Fixed) ttl() time.Duration {
	if f.TTL <= 0 {
		return DefaultTTL
	}
	return f.TTL
}
