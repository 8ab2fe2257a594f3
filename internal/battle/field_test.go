package battle

import (
	"testing"

	"pocketgrove-server/internal/domain"
)

func TestFieldDefaults(t *testing.T) {
	f := NewFieldEffects()

	if f.Weather != WeatherNone {
		t.Errorf("Fresh field weather. Got %q, want none", f.Weather)
	}
	if f.WeatherTurns != 0 {
		t.Errorf("Fresh field weather turns. Got %d, want 0", f.WeatherTurns)
	}
	for _, side := range []Side{SidePlayer, SideOpponent} {
		for _, h := range []HazardKind{HazardSpikes, HazardToxicSpikes, HazardStealthRock} {
			if f.HazardLayers(side, h) != 0 {
				t.Errorf("Fresh field has %s on %s side", h, side)
			}
		}
	}
}

func TestHazardLayerCaps(t *testing.T) {
	f := NewFieldEffects()

	for i := 0; i < 3; i++ {
		if !f.AddHazard(SidePlayer, HazardSpikes) {
			t.Fatalf("Spikes layer %d rejected", i+1)
		}
	}
	if f.AddHazard(SidePlayer, HazardSpikes) {
		t.Error("Fourth spikes layer must be rejected")
	}

	if !f.AddHazard(SidePlayer, HazardStealthRock) {
		t.Fatal("First stealth rock rejected")
	}
	if f.AddHazard(SidePlayer, HazardStealthRock) {
		t.Error("Second stealth rock layer must be rejected")
	}
}

func TestEntryHazardSpikes(t *testing.T) {
	e := testEngine(1)
	f := NewFieldEffects()
	f.AddHazard(SidePlayer, HazardSpikes)

	p := makePokemon(e, "embercub", 20, "tackle")
	bp := NewBattlePokemon(p)
	maxHP := p.Stats.HP

	log := e.ApplyEntryHazards(bp, SidePlayer, f)
	if len(log) == 0 {
		t.Fatal("Expected spikes log entry")
	}
	want := maxHP - maxHP/8
	if p.CurrentHP != want {
		t.Errorf("Spikes damage. Got HP %d, want %d", p.CurrentHP, want)
	}
}

func TestEntryHazardFlyingImmuneToSpikes(t *testing.T) {
	e := testEngine(1)
	f := NewFieldEffects()
	f.AddHazard(SidePlayer, HazardSpikes)
	f.AddHazard(SidePlayer, HazardToxicSpikes)

	p := makePokemon(e, "gustling", 20, "tackle")
	bp := NewBattlePokemon(p)

	e.ApplyEntryHazards(bp, SidePlayer, f)

	if p.CurrentHP != p.Stats.HP {
		t.Errorf("Flying type took spikes damage: %d/%d", p.CurrentHP, p.Stats.HP)
	}
	if p.Status != domain.StatusNone {
		t.Errorf("Flying type got toxic spikes status: %s", p.Status)
	}
}

func TestEntryHazardToxicSpikes(t *testing.T) {
	e := testEngine(1)
	f := NewFieldEffects()
	f.AddHazard(SidePlayer, HazardToxicSpikes)

	p := makePokemon(e, "embercub", 20, "tackle")
	bp := NewBattlePokemon(p)

	e.ApplyEntryHazards(bp, SidePlayer, f)

	if p.Status != domain.StatusPoison {
		t.Errorf("Grounded entry over toxic spikes. Got status %q, want poison", p.Status)
	}
	// Layers stay for the next switch-in
	if f.HazardLayers(SidePlayer, HazardToxicSpikes) != 1 {
		t.Error("Toxic spikes should persist after poisoning")
	}
}

func TestEntryHazardStealthRockScalesWithTypes(t *testing.T) {
	e := testEngine(1)
	f := NewFieldEffects()
	f.AddHazard(SidePlayer, HazardStealthRock)

	// Fire type: rock is super effective, 1/8 * 2 = 1/4 max HP
	fire := makePokemon(e, "embercub", 20, "tackle")
	e.ApplyEntryHazards(NewBattlePokemon(fire), SidePlayer, f)
	wantFire := fire.Stats.HP - fire.Stats.HP/4
	if fire.CurrentHP != wantFire {
		t.Errorf("Stealth rock vs fire. Got HP %d, want %d", fire.CurrentHP, wantFire)
	}

	// Rock/ground: rock vs rock 1.0, vs ground 0.5 -> 1/16 max HP
	rock := makePokemon(e, "pebblit", 20, "tackle")
	e.ApplyEntryHazards(NewBattlePokemon(rock), SidePlayer, f)
	wantRock := rock.Stats.HP - int(float64(rock.Stats.HP)/8.0*0.5)
	if rock.CurrentHP != wantRock {
		t.Errorf("Stealth rock vs rock/ground. Got HP %d, want %d", rock.CurrentHP, wantRock)
	}
}

func TestWeatherTick(t *testing.T) {
	f := NewFieldEffects()
	if !f.SetWeather(WeatherRain) {
		t.Fatal("SetWeather rejected fresh weather")
	}
	if f.SetWeather(WeatherRain) {
		t.Error("Re-setting the same weather should report false")
	}

	for i := 0; i < DefaultWeatherTurns-1; i++ {
		if f.tickWeather() {
			t.Fatalf("Weather ended early on tick %d", i+1)
		}
	}
	if !f.tickWeather() {
		t.Error("Weather should end on the final tick")
	}
	if f.Weather != WeatherNone {
		t.Errorf("Weather after expiry. Got %q, want none", f.Weather)
	}
}
