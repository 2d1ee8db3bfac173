package eviction

import "testing"

func TestLRUEvictsLeastRecentlyUsed(t *testing.T) {
	p, err := NewEvictionPolicy(LRU)
	if err != nil {
		t.Fatalf("new policy: %v", err)
	}

	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.OnGet("a")

	if got := p.Evict(); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if got := p.Evict(); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
	if got := p.Evict(); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := p.Evict(); got != "" {
		t.Fatalf("expected empty policy, got %q", got)
	}
}

func TestLRURemove(t *testing.T) {
	p := newLRU()
	p.OnPut("a")
	p.OnPut("b")
	p.Remove("a")
	p.Remove("missing")

	if got := p.Evict(); got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
}

func TestFIFOIgnoresReads(t *testing.T) {
	p, err := NewEvictionPolicy(FIFO)
	if err != nil {
		t.Fatalf("new policy: %v", err)
	}

	p.OnPut("a")
	p.OnPut("b")
	p.OnGet("a")
	p.OnPut("a")

	if got := p.Evict(); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
}

func TestFIFORemove(t *testing.T) {
	p := newFIFO()
	p.OnPut("a")
	p.OnPut("b")
	p.OnPut("c")
	p.Remove("b")

	if got := p.Evict(); got != "a" {
		t.Fatalf("expected a, got %q", got)
	}
	if got := p.Evict(); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
}

func TestNewEvictionPolicy(t *testing.T) {
	if _, err := NewEvictionPolicy(""); err != nil {
		t.Fatalf("expected empty type to default to LRU, got %v", err)
	}
	if _, err := NewEvictionPolicy("LFU"); err == nil {
		t.Fatal("expected error for unsupported policy")
	}
}
