package expiration

import (
	"testing"
	"time"

	"github.com/krisalay/folio-data/types"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func TestFixedDefaultsToFiveMinutes(t *testing.T) {
	f := &Fixed{}
	ent := &types.CacheEntry{}
	f.OnWrite(ent, epoch)

	if got := ent.ExpireAt.Sub(epoch); got != DefaultTTL {
		t.Fatalf("expected %v, got %v", DefaultTTL, got)
	}
	if f.IsExpired(ent, epoch.Add(DefaultTTL)) {
		t.Fatal("expected entry to be live at its deadline")
	}
	if !f.IsExpired(ent, epoch.Add(DefaultTTL+time.Nanosecond)) {
		t.Fatal("expected entry to be expired past its deadline")
	}
}

func TestFixedKeepsExplicitDeadline(t *testing.T) {
	f := &Fixed{TTL: time.Hour}
	deadline := epoch.Add(time.Second)
	ent := &types.CacheEntry{ExpireAt: deadline}
	f.OnWrite(ent, epoch)

	if !ent.ExpireAt.Equal(deadline) {
		t.Fatalf("expected %v, got %v", deadline, ent.ExpireAt)
	}
}

func TestFixedAccessDoesNotExtend(t *testing.T) {
	f := &Fixed{TTL: time.Second}
	ent := &types.CacheEntry{}
	f.OnWrite(ent, epoch)
	f.OnAccess(ent, epoch.Add(900*time.Millisecond))

	if !ent.ExpireAt.Equal(epoch.Add(time.Second)) {
		t.Fatalf("expected deadline unchanged, got %v", ent.ExpireAt)
	}
	if !ent.LastAccessedAt.Equal(epoch.Add(900 * time.Millisecond)) {
		t.Fatalf("expected access time recorded, got %v", ent.LastAccessedAt)
	}
}

func TestExpireAfterAccessSlides(t *testing.T) {
	e := &ExpireAfterAccess{TTL: time.Second}
	ent := &types.CacheEntry{}
	e.OnWrite(ent, epoch)

	later := epoch.Add(900 * time.Millisecond)
	e.OnAccess(ent, later)

	if !ent.ExpireAt.Equal(later.Add(time.Second)) {
		t.Fatalf("expected deadline to slide, got %v", ent.ExpireAt)
	}
	if e.IsExpired(ent, epoch.Add(1500*time.Millisecond)) {
		t.Fatal("expected entry to stay live after access")
	}
}
