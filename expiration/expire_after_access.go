package expiration

import (
	"time"

	"github.com/krisalay/folio-data/types"
)

/*
ExpireAfterAccess is a sliding TTL. Every read pushes the deadline forward by
TTL, so entries that keep getting used stay alive and idle ones age out.
Select it with cache.WithExpiration; the store defaults to Fixed.
*/
type ExpireAfterAccess struct {
	TTL time.Duration
}

func (e *ExpireAfterAccess) IsExpired(ent *types.CacheEntry, now time.Time) bool {
	return ent.Expired(now)
}

func (e *ExpireAfterAccess) OnAccess(ent *types.CacheEntry, now time.Time) {
	ent.LastAccessedAt = now
	ent.ExpireAt = now.Add(e.ttl())
}

// OnWrite keeps an explicit deadline set by the writer.
func (e *ExpireAfterAccess) OnWrite(ent *types.CacheEntry, now time.Time) {
	ent.CreatedAt = now
	ent.LastAccessedAt = now
	if ent.ExpireAt.IsZero() {
		ent.ExpireAt = now.Add(e.ttl())
	}
}

func (e *ExpireAfterAccess) ttl() time.Duration {
	if e.TTL <= 0 {
		return DefaultTTL
	}
	return e.TTL
}
