package battle

import (
	"testing"

	"pocketgrove-server/internal/domain"
)

func TestStageMultiplier(t *testing.T) {
	cases := []struct {
		stage int
		want  float64
	}{
		{0, 1.0},
		{1, 1.5},
		{2, 2.0},
		{6, 4.0},
		{-1, 2.0 / 3.0},
		{-2, 0.5},
		{-6, 0.25},
		{9, 4.0},   // clamped
		{-9, 0.25}, // clamped
	}
	for _, c := range cases {
		if got := stageMultiplier(c.stage); got != c.want {
			t.Errorf("stageMultiplier(%d). Got %v, want %v", c.stage, got, c.want)
		}
	}
}

func TestEffectiveStatStages(t *testing.T) {
	e := testEngine(1)
	bp := NewBattlePokemon(makePokemon(e, "sparkit", 50, "tackle"))
	base := bp.Base.Stats.Attack

	if got := bp.EffectiveStat(domain.StatAttack); got != base {
		t.Errorf("Neutral stage. Got %d, want %d", got, base)
	}

	bp.Stages.Attack = 2
	if got := bp.EffectiveStat(domain.StatAttack); got != base*2 {
		t.Errorf("+2 stage. Got %d, want %d", got, base*2)
	}

	bp.Stages.Attack = -2
	if got := bp.EffectiveStat(domain.StatAttack); got != base/2 {
		t.Errorf("-2 stage. Got %d, want %d", got, base/2)
	}
}

func TestEffectiveStatParalysisHalvesSpeed(t *testing.T) {
	e := testEngine(1)
	bp := NewBattlePokemon(makePokemon(e, "pebblit", 50, "tackle"))
	speed := bp.Base.Stats.Speed

	bp.Base.Status = domain.StatusParalysis
	if got := bp.EffectiveStat(domain.StatSpeed); got != speed/2 {
		t.Errorf("Paralyzed speed. Got %d, want %d", got, speed/2)
	}

	// Other stats are untouched by paralysis
	if got := bp.EffectiveStat(domain.StatAttack); got != bp.Base.Stats.Attack {
		t.Error("Paralysis must only affect speed")
	}
}

func TestModifyStageClamps(t *testing.T) {
	e := testEngine(1)
	bp := NewBattlePokemon(makePokemon(e, "sparkit", 30, "tackle"))

	if applied := bp.ModifyStage(domain.StatSpeed, 2); applied != 2 {
		t.Errorf("Applied delta. Got %d, want 2", applied)
	}
	if applied := bp.ModifyStage(domain.StatSpeed, 10); applied != 4 {
		t.Errorf("Clamped delta. Got %d, want 4", applied)
	}
	if applied := bp.ModifyStage(domain.StatSpeed, 1); applied != 0 {
		t.Errorf("Delta at cap. Got %d, want 0", applied)
	}
	if bp.Stages.Speed != MaxStage {
		t.Errorf("Stage. Got %d, want %d", bp.Stages.Speed, MaxStage)
	}

	// HP has no stages
	if applied := bp.ModifyStage(domain.StatHP, 2); applied != 0 {
		t.Errorf("HP stage delta. Got %d, want 0", applied)
	}
}
