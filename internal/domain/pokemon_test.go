package domain

import "testing"

func TestPokemonHealAndDamage(t *testing.T) {
	p := &Pokemon{Stats: StatBlock{HP: 50}, CurrentHP: 50}

	if fainted := p.TakeDamage(20); fainted {
		t.Error("30 HP left, should not faint")
	}
	if p.CurrentHP != 30 {
		t.Errorf("HP after damage. Got %d, want 30", p.CurrentHP)
	}

	// Heal is capped at max HP
	healed := p.Heal(100)
	if healed != 20 {
		t.Errorf("Healed amount. Got %d, want 20", healed)
	}
	if p.CurrentHP != 50 {
		t.Errorf("HP after heal. Got %d, want 50", p.CurrentHP)
	}

	// Lethal damage clamps at zero
	if fainted := p.TakeDamage(999); !fainted {
		t.Error("Expected faint on lethal damage")
	}
	if p.CurrentHP != 0 {
		t.Errorf("HP after faint. Got %d, want 0", p.CurrentHP)
	}
	if !p.IsFainted() {
		t.Error("IsFainted should report true")
	}
}

func TestPokemonAddEVCaps(t *testing.T) {
	p := &Pokemon{}

	p.AddEV(StatAttack, 300)
	if p.EVs.Attack != MaxEVPerStat {
		t.Errorf("Per-stat EV cap. Got %d, want %d", p.EVs.Attack, MaxEVPerStat)
	}

	p.AddEV(StatDefense, 252)
	p.AddEV(StatSpeed, 252)
	total := p.EVs.Attack + p.EVs.Defense + p.EVs.Speed
	if total > MaxEVTotal {
		t.Errorf("Total EV cap exceeded: %d > %d", total, MaxEVTotal)
	}
}

func TestPokemonUsableMoves(t *testing.T) {
	p := &Pokemon{Moves: []PokemonMove{
		{MoveID: "tackle", PP: 0, MaxPP: 35},
		{MoveID: "growl", PP: 0, MaxPP: 40},
	}}

	if p.HasUsableMove() {
		t.Error("No PP left, HasUsableMove should be false")
	}

	p.Moves[1].PP = 1
	if !p.HasUsableMove() {
		t.Error("One move has PP, HasUsableMove should be true")
	}

	if m := p.FindMove("tackle"); m == nil || m.MaxPP != 35 {
		t.Error("FindMove failed for existing move")
	}
	if m := p.FindMove("surf"); m != nil {
		t.Error("FindMove should return nil for unknown move")
	}
}
