package battle

import (
	"testing"

	"pocketgrove-server/internal/domain"
)

func TestExpGain(t *testing.T) {
	cases := []struct {
		baseExp, level, want int
	}{
		{62, 10, 88},
		{112, 50, 800},
		{60, 1, 8},
		{0, 50, 0},
	}
	for _, c := range cases {
		if got := ExpGain(c.baseExp, c.level); got != c.want {
			t.Errorf("ExpGain(%d, %d). Got %d, want %d", c.baseExp, c.level, got, c.want)
		}
	}
}

func TestGrantExperienceSingleLevel(t *testing.T) {
	e := testEngine(1)
	p := makePokemon(e, "sparkit", 10, "tackle")
	oldHP := p.Stats.HP
	oldFriendship := p.Friendship

	// Medium-fast: level 11 needs 11^3 = 1331; p starts at 1000
	log := e.GrantExperience(p, 331)

	if p.Level != 11 {
		t.Errorf("Level. Got %d, want 11", p.Level)
	}
	if p.Exp != 1331 {
		t.Errorf("Exp. Got %d, want 1331", p.Exp)
	}
	if p.Stats.HP <= oldHP {
		t.Error("Max HP must grow on level up")
	}
	if p.Friendship != oldFriendship+3 {
		t.Errorf("Friendship. Got %d, want %d", p.Friendship, oldFriendship+3)
	}
	if !containsLine(log, "достигает уровня 11") {
		t.Errorf("Expected level-up line, got %v", log)
	}
}

func TestGrantExperienceMultiLevelLearnsMoves(t *testing.T) {
	e := testEngine(1)
	p := makePokemon(e, "sparkit", 10, "tackle")

	// 13^3 = 2197; jump from level 10 past 12 where quick-attack unlocks
	log := e.GrantExperience(p, 2197-p.Exp)

	if p.Level != 13 {
		t.Fatalf("Level. Got %d, want 13", p.Level)
	}
	if p.FindMove("quick-attack") == nil {
		t.Error("Move unlocked at level 12 must be learned during the chain")
	}
	if !containsLine(log, "изучает Quick Attack") {
		t.Errorf("Expected learn line, got %v", log)
	}
	// Moves of levels already passed are not re-learned retroactively
	if p.FindMove("thunder-wave") != nil {
		t.Error("Level-10 move must not be learned when leveling from 10")
	}
}

func TestGrantExperienceCapsAtMaxLevel(t *testing.T) {
	e := testEngine(1)
	p := makePokemon(e, "sparkit", 98, "tackle")

	e.GrantExperience(p, 10_000_000)

	if p.Level != domain.MaxLevel {
		t.Errorf("Level. Got %d, want %d", p.Level, domain.MaxLevel)
	}
	if want := domain.ExpForLevel(domain.GrowthMediumFast, domain.MaxLevel); p.Exp != want {
		t.Errorf("Exp cap. Got %d, want %d", p.Exp, want)
	}
}

func TestGrantExperienceIgnoresNonPositive(t *testing.T) {
	e := testEngine(1)
	p := makePokemon(e, "sparkit", 10, "tackle")
	before := p.Exp

	e.GrantExperience(p, 0)
	e.GrantExperience(p, -50)
	if p.Exp != before {
		t.Errorf("Exp changed by non-positive grant: %d -> %d", before, p.Exp)
	}
}

func TestLearnMovesDisplacesOldestSlot(t *testing.T) {
	e := testEngine(1)
	p := makePokemon(e, "sparkit", 11, "tackle", "thunder-shock", "growl", "ember")
	sd := e.Species.Get("sparkit")

	log := e.learnMovesAtLevel(p, sd, 12)

	if len(p.Moves) != domain.MaxMoves {
		t.Fatalf("Move count. Got %d, want %d", len(p.Moves), domain.MaxMoves)
	}
	if p.FindMove("tackle") != nil {
		t.Error("Oldest move (slot 0) must be forgotten")
	}
	want := []string{"thunder-shock", "growl", "ember", "quick-attack"}
	for i, id := range want {
		if p.Moves[i].MoveID != id {
			t.Errorf("Slot %d. Got %q, want %q", i, p.Moves[i].MoveID, id)
		}
	}
	if !containsLine(log, "забывает Tackle") {
		t.Errorf("Expected forget line, got %v", log)
	}
}

func TestLearnMovesSkipsKnown(t *testing.T) {
	e := testEngine(1)
	p := makePokemon(e, "sparkit", 11, "quick-attack")
	sd := e.Species.Get("sparkit")

	log := e.learnMovesAtLevel(p, sd, 12)
	if len(log) != 0 {
		t.Errorf("Known move must not be re-learned, got %v", log)
	}
	if len(p.Moves) != 1 {
		t.Errorf("Move count. Got %d, want 1", len(p.Moves))
	}
}

func TestGrantFaintRewards(t *testing.T) {
	e := testEngine(1)
	winner := makePokemon(e, "sparkit", 50, "tackle")
	loser := makePokemon(e, "pebblit", 10, "tackle")
	loser.CurrentHP = 0

	log := e.grantFaintRewards(winner, loser)

	// Pebblit's dominant base stat is defense (100)
	if winner.EVs.Defense != 2 {
		t.Errorf("Defense EVs. Got %d, want 2", winner.EVs.Defense)
	}
	if !containsLine(log, "получает") {
		t.Errorf("Expected exp line, got %v", log)
	}

	// Fainted winner gets nothing
	winner2 := makePokemon(e, "sparkit", 50, "tackle")
	winner2.CurrentHP = 0
	if got := e.grantFaintRewards(winner2, loser); got != nil {
		t.Errorf("Fainted winner must not receive rewards, got %v", got)
	}
}

func TestDominantStat(t *testing.T) {
	if got := dominantStat(domain.StatBlock{HP: 40, Attack: 80, Defense: 100, SpAttack: 30, SpDefense: 30, Speed: 20}); got != domain.StatDefense {
		t.Errorf("Got %v, want defense", got)
	}
	if got := dominantStat(domain.StatBlock{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90}); got != domain.StatSpeed {
		t.Errorf("Got %v, want speed", got)
	}
	// Tie resolves to the earlier stat in canonical order
	if got := dominantStat(domain.StatBlock{HP: 50, Attack: 50, Defense: 50, SpAttack: 50, SpDefense: 50, Speed: 50}); got != domain.StatHP {
		t.Errorf("Got %v, want hp", got)
	}
}
