package buffer

import "testing"

func TestPool_GetReturnsExactLength(t *testing.T) {
	p := NewPool(2, 4)
	got := p.Get(4)
	if len(got) != 4 {
		t.Fatalf("len(Get(4)) = %d, want 4", len(got))
	}
}

func TestPool_GrowsWhenRequestExceedsSlot(t *testing.T) {
	p := NewPool(1, 4)
	got := p.Get(10)
	if len(got) != 10 {
		t.Fatalf("len(Get(10)) = %d, want 10", len(got))
	}
	got[9] = 1
}

func TestPool_RotatesSlotsRoundRobin(t *testing.T) {
	p := NewPool(2, 4)
	a := p.Get(4)
	a[0] = 42
	b := p.Get(4)
	if &a[0] == &b[0] {
		t.Fatalf("consecutive Get calls returned the same slot")
	}
	// Wraps back to slot 0; its contents are free to be overwritten.
	c := p.Get(4)
	if &c[0] != &a[0] {
		t.Fatalf("Get did not wrap back to the first slot after n calls")
	}
}
