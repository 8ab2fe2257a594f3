package stats

import (
	"testing"

	"pocketgrove-server/internal/domain"
)

func TestCalcFormula(t *testing.T) {
	// Hand-computed reference values.
	cases := []struct {
		name   string
		base   int
		iv     int
		ev     int
		level  int
		nature domain.Nature
		stat   domain.Stat
		want   int
	}{
		// HP: floor((2*45+31+0)*50/100) + 50 + 10 = 60 + 60 = 120
		{"hp formula", 45, 31, 0, 50, domain.NatureSerious, domain.StatHP, 120},
		// Non-HP neutral: floor((2*49+31+0)*50/100) + 5 = 64 + 5 = 69
		{"neutral attack", 49, 31, 0, 50, domain.NatureSerious, domain.StatAttack, 69},
		// Favoring nature: floor(69 * 1.1) = 75
		{"plus nature", 49, 31, 0, 50, domain.NatureAdamant, domain.StatAttack, 75},
		// Hindering nature: floor(69 * 0.9) = 62
		{"minus nature", 49, 31, 0, 50, domain.NatureBold, domain.StatAttack, 62},
		// EVs are quartered: floor((2*49+31+floor(252/4))*50/100)+5 = floor(192*50/100)+5 = 96+5 = 101
		{"ev contribution", 49, 31, 252, 50, domain.NatureSerious, domain.StatAttack, 101},
		// Nature never applies to HP
		{"nature ignores hp", 45, 31, 0, 50, domain.NatureAdamant, domain.StatHP, 120},
		// Level 1 floor behavior: floor((2*45+31)*1/100)+1+10 = 1+11 = 12
		{"level one hp", 45, 31, 0, 1, domain.NatureSerious, domain.StatHP, 12},
		// Level 100, full investment: floor((2*100+31+63)*100/100)+5 = 294+5 = 299
		{"level hundred", 100, 31, 252, 100, domain.NatureSerious, domain.StatAttack, 299},
	}

	for _, c := range cases {
		if got := Calc(c.base, c.iv, c.ev, c.level, c.nature, c.stat); got != c.want {
			t.Errorf("%s: got %d, want %d", c.name, got, c.want)
		}
	}
}

func TestCalcAll(t *testing.T) {
	base := domain.StatBlock{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45}
	ivs := domain.StatBlock{HP: 31, Attack: 31, Defense: 31, SpAttack: 31, SpDefense: 31, Speed: 31}

	got := CalcAll(base, ivs, domain.StatBlock{}, 50, domain.NatureSerious)

	for _, s := range domain.AllStats {
		want := Calc(base.Get(s), 31, 0, 50, domain.NatureSerious, s)
		if got.Get(s) != want {
			t.Errorf("CalcAll mismatch for %s: got %d, want %d", s, got.Get(s), want)
		}
	}
}

func TestRecalculatePreservesDamageTaken(t *testing.T) {
	base := domain.StatBlock{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45}
	p := &domain.Pokemon{
		Level:  10,
		Nature: domain.NatureSerious,
		IVs:    domain.StatBlock{HP: 31},
	}
	Recalculate(p, base)
	fullHP := p.Stats.HP
	if p.CurrentHP != fullHP {
		t.Fatalf("Fresh recalc should set full HP. Got %d, want %d", p.CurrentHP, fullHP)
	}

	// Take 5 damage, level up: the 5 missing HP stay missing.
	p.CurrentHP -= 5
	p.Level = 11
	Recalculate(p, base)
	if p.CurrentHP != p.Stats.HP-5 {
		t.Errorf("Recalc should preserve missing HP. Got %d, want %d", p.CurrentHP, p.Stats.HP-5)
	}

	// A fainted pokemon stays fainted through recalculation.
	p.CurrentHP = 0
	p.Level = 12
	Recalculate(p, base)
	if p.CurrentHP != 0 {
		t.Errorf("Fainted pokemon revived by recalc: HP %d", p.CurrentHP)
	}
}

func TestRecalculateMatchesFreshCreation(t *testing.T) {
	// A pokemon leveled to 50 must be stat-identical to one created at 50.
	base := domain.StatBlock{HP: 45, Attack: 49, Defense: 49, SpAttack: 65, SpDefense: 65, Speed: 45}
	ivs := domain.StatBlock{HP: 20, Attack: 12, Defense: 31, SpAttack: 7, SpDefense: 15, Speed: 28}

	leveled := &domain.Pokemon{Level: 5, Nature: domain.NatureModest, IVs: ivs}
	Recalculate(leveled, base)
	for l := 6; l <= 50; l++ {
		leveled.Level = l
		Recalculate(leveled, base)
	}

	fresh := CalcAll(base, ivs, domain.StatBlock{}, 50, domain.NatureModest)
	if leveled.Stats != fresh {
		t.Errorf("Leveled stats diverge from fresh creation.\nGot  %+v\nWant %+v", leveled.Stats, fresh)
	}
}
