package domain

import "testing"

func TestNatureTableComplete(t *testing.T) {
	if len(AllNatures) != 25 {
		t.Fatalf("Expected 25 natures, got %d", len(AllNatures))
	}

	seen := make(map[Nature]bool)
	for _, n := range AllNatures {
		if seen[n] {
			t.Errorf("Duplicate nature in AllNatures: %s", n)
		}
		seen[n] = true

		if !n.IsValid() {
			t.Errorf("Nature %s is listed but not in the table", n)
		}
	}
}

func TestNatureModifier(t *testing.T) {
	// Adamant: +attack, -spAttack
	if got := NatureAdamant.Modifier(StatAttack); got != 1.1 {
		t.Errorf("Adamant attack modifier. Got %v, want 1.1", got)
	}
	if got := NatureAdamant.Modifier(StatSpAttack); got != 0.9 {
		t.Errorf("Adamant spAttack modifier. Got %v, want 0.9", got)
	}
	if got := NatureAdamant.Modifier(StatSpeed); got != 1.0 {
		t.Errorf("Adamant speed modifier. Got %v, want 1.0", got)
	}

	// Neutral natures affect nothing
	for _, s := range AllStats {
		if got := NatureSerious.Modifier(s); got != 1.0 {
			t.Errorf("Serious should be neutral for %s, got %v", s, got)
		}
	}

	// HP is never touched by any nature
	for _, n := range AllNatures {
		if got := n.Modifier(StatHP); got != 1.0 {
			t.Errorf("Nature %s must not modify HP, got %v", n, got)
		}
	}

	// Unknown nature is treated as neutral
	if got := Nature("grumpy").Modifier(StatAttack); got != 1.0 {
		t.Errorf("Unknown nature modifier. Got %v, want 1.0", got)
	}
}
