package domain

import "testing"

func TestExpForLevel(t *testing.T) {
	cases := []struct {
		rate  GrowthRate
		level int
		want  int
	}{
		{GrowthFast, 1, 0},
		{GrowthFast, 10, 800},
		{GrowthFast, 100, 800000},
		{GrowthMediumFast, 10, 1000},
		{GrowthMediumFast, 100, 1000000},
		{GrowthMediumSlow, 1, 0},
		{GrowthMediumSlow, 100, 1059860},
		{GrowthSlow, 10, 1250},
		{GrowthSlow, 100, 1250000},
	}

	for _, c := range cases {
		if got := ExpForLevel(c.rate, c.level); got != c.want {
			t.Errorf("ExpForLevel(%s, %d). Got %d, want %d", c.rate, c.level, got, c.want)
		}
	}
}

func TestExpForLevelMonotonic(t *testing.T) {
	rates := []GrowthRate{GrowthFast, GrowthMediumFast, GrowthMediumSlow, GrowthSlow}
	for _, rate := range rates {
		prev := ExpForLevel(rate, 2)
		for l := 3; l <= MaxLevel; l++ {
			cur := ExpForLevel(rate, l)
			if cur <= prev {
				t.Fatalf("%s curve not increasing at level %d: %d <= %d", rate, l, cur, prev)
			}
			prev = cur
		}
	}
}

func TestLevelForExp(t *testing.T) {
	// Exactly at the threshold counts as reached
	if got := LevelForExp(GrowthMediumFast, 1000); got != 10 {
		t.Errorf("LevelForExp at threshold. Got %d, want 10", got)
	}
	// One point below stays on the previous level
	if got := LevelForExp(GrowthMediumFast, 999); got != 9 {
		t.Errorf("LevelForExp below threshold. Got %d, want 9", got)
	}
	if got := LevelForExp(GrowthMediumFast, 0); got != 1 {
		t.Errorf("LevelForExp(0). Got %d, want 1", got)
	}
	// Cap at 100
	if got := LevelForExp(GrowthMediumFast, 2000000); got != 100 {
		t.Errorf("LevelForExp over cap. Got %d, want 100", got)
	}
}
