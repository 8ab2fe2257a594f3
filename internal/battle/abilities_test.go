package battle

import (
	"testing"

	"pocketgrove-server/internal/domain"
)

func TestSwitchInWeather(t *testing.T) {
	cases := []struct {
		ability string
		want    Weather
	}{
		{"drought", WeatherSun},
		{"drizzle", WeatherRain},
		{"sand-stream", WeatherSandstorm},
		{"snow-warning", WeatherSnow},
		{"blaze", WeatherNone},
		{"", WeatherNone},
	}
	for _, c := range cases {
		if got := SwitchInWeather(c.ability); got != c.want {
			t.Errorf("SwitchInWeather(%q). Got %q, want %q", c.ability, got, c.want)
		}
	}
}

func TestApplyOnSwitchInSetsWeather(t *testing.T) {
	e := testEngine(1)
	f := NewFieldEffects()

	p := makePokemon(e, "embercub", 20, "tackle")
	p.Ability = "drought"
	bp := NewBattlePokemon(p)

	log := e.ApplyOnSwitchIn(bp, f)
	if f.Weather != WeatherSun {
		t.Errorf("Weather after drought switch-in. Got %q, want sun", f.Weather)
	}
	if f.WeatherTurns != DefaultWeatherTurns {
		t.Errorf("Weather duration. Got %d, want %d", f.WeatherTurns, DefaultWeatherTurns)
	}
	if len(log) == 0 {
		t.Error("Expected a weather log entry")
	}
}

func TestCheckAbilityAbsorption(t *testing.T) {
	electric := &domain.MoveData{ID: "thunder-shock", Type: "electric", Category: domain.MoveSpecial, Power: 40}
	water := &domain.MoveData{ID: "water-gun", Type: "water", Category: domain.MoveSpecial, Power: 40}
	fire := &domain.MoveData{ID: "ember", Type: "fire", Category: domain.MoveSpecial, Power: 40}
	ground := &domain.MoveData{ID: "earthquake", Type: "ground", Category: domain.MovePhysical, Power: 100}

	if abs := CheckAbilityAbsorption(electric, "volt-absorb"); !abs.Absorbed || abs.HealFraction != 0.25 {
		t.Errorf("volt-absorb vs electric: %+v", abs)
	}
	if abs := CheckAbilityAbsorption(water, "water-absorb"); !abs.Absorbed || abs.HealFraction != 0.25 {
		t.Errorf("water-absorb vs water: %+v", abs)
	}
	if abs := CheckAbilityAbsorption(fire, "flash-fire"); !abs.Absorbed || abs.HealFraction != 0 {
		t.Errorf("flash-fire vs fire: %+v", abs)
	}
	if abs := CheckAbilityAbsorption(ground, "levitate"); !abs.Absorbed {
		t.Errorf("levitate vs ground: %+v", abs)
	}

	// Wrong type is not absorbed
	if abs := CheckAbilityAbsorption(fire, "volt-absorb"); abs.Absorbed {
		t.Error("volt-absorb must not absorb fire")
	}
	if abs := CheckAbilityAbsorption(nil, "volt-absorb"); abs.Absorbed {
		t.Error("nil move must not be absorbed")
	}
}
