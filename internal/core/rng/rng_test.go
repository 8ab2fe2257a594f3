package rng

import "testing"

func TestDeterministicWithSeed(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("Same seed must produce the same sequence")
		}
	}
}

func TestBetweenBounds(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		v := s.Between(0, 31)
		if v < 0 || v > 31 {
			t.Fatalf("Between(0,31) out of range: %d", v)
		}
	}

	if got := s.Between(5, 5); got != 5 {
		t.Errorf("Degenerate range. Got %d, want 5", got)
	}
}

func TestChanceBoundaries(t *testing.T) {
	s := New(7)
	for i := 0; i < 1000; i++ {
		if s.Chance(0) {
			t.Fatal("Chance(0) must never succeed")
		}
		if !s.Chance(1) {
			t.Fatal("Chance(1) must never fail")
		}
	}
}
