package battle

import (
	"fmt"

	"pocketgrove-server/internal/domain"
)

// SwitchInWeather возвращает погоду, устанавливаемую способностью
// при входе в бой, или WeatherNone.
func SwitchInWeather(ability string) Weather {
	switch ability {
	case "drought":
		return WeatherSun
	case "drizzle":
		return WeatherRain
	case "sand-stream":
		return WeatherSandstorm
	case "snow-warning":
		return WeatherSnow
	}
	return WeatherNone
}

// ApplyOnSwitchIn применяет эффекты способности, срабатывающие на входе
// существа в бой (сейчас — только установка погоды). Возвращает журнал.
func (e *Engine) ApplyOnSwitchIn(bp *BattlePokemon, field *FieldEffects) []string {
	var log []string

	if w := SwitchInWeather(bp.Base.Ability); w != WeatherNone {
		if field.SetWeather(w) {
			log = append(log, fmt.Sprintf("%s меняет погоду: %s!", bp.Base.DisplayName(), weatherName(w)))
		}
	}

	return log
}

// Absorption — результат проверки поглощения приёма способностью защитника.
type Absorption struct {
	Absorbed bool
	// HealFraction — доля максимума HP, восстанавливаемая защитнику
	// (0 — приём просто нейтрализуется).
	HealFraction float64
	Message      string
}

// CheckAbilityAbsorption проверяет, нейтрализует ли способность защитника
// входящий приём до расчёта урона.
func CheckAbilityAbsorption(move *domain.MoveData, defenderAbility string) Absorption {
	if move == nil {
		return Absorption{}
	}

	switch defenderAbility {
	case "volt-absorb":
		if move.Type == "electric" {
			return Absorption{Absorbed: true, HealFraction: 0.25, Message: "Volt Absorb поглощает электричество!"}
		}
	case "water-absorb":
		if move.Type == "water" {
			return Absorption{Absorbed: true, HealFraction: 0.25, Message: "Water Absorb поглощает воду!"}
		}
	case "flash-fire":
		if move.Type == "fire" {
			return Absorption{Absorbed: true, Message: "Flash Fire гасит пламя!"}
		}
	case "levitate":
		if move.Type == "ground" {
			return Absorption{Absorbed: true, Message: "Левитация уводит от удара!"}
		}
	}

	return Absorption{}
}

func weatherName(w Weather) string {
	switch w {
	case WeatherRain:
		return "дождь"
	case WeatherSun:
		return "яркое солнце"
	case WeatherSandstorm:
		return "песчаная буря"
	case WeatherSnow:
		return "снегопад"
	}
	return "ясно"
}
