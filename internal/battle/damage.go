package battle

import (
	"pocketgrove-server/internal/domain"
)

// DamageResult — расчёт урона одного удара.
type DamageResult struct {
	Damage        int
	Effectiveness float64
	STAB          bool
	Critical      bool
}

// weatherDamageModifier — множитель погоды для атакующего типа.
func weatherDamageModifier(w Weather, moveType string) float64 {
	switch w {
	case WeatherRain:
		switch moveType {
		case "water":
			return 1.5
		case "fire":
			return 0.5
		}
	case WeatherSun:
		switch moveType {
		case "fire":
			return 1.5
		case "water":
			return 0.5
		}
	}
	return 1.0
}

// critChanceDenominator — базовый шанс критического удара (1 из 24).
const critChanceDenominator = 24

// computeDamage считает урон приёма по стандартной уровневой формуле:
//
//	base = floor(floor(2*level/5 + 2) * power * A / D / 50) + 2
//
// затем множители: погода, STAB x1.5, эффективность типов (0/0.25/0.5/1/2/4),
// крит x1.5, ожог физических атак x0.5, случайный разброс 0.85..1.00.
// Эффективность 0 даёт нулевой урон; в остальных случаях минимум 1.
func (e *Engine) computeDamage(attacker, defender *BattlePokemon, move *domain.MoveData, weather Weather) DamageResult {
	if move.Category == domain.MoveStatus || move.Power <= 0 {
		return DamageResult{Effectiveness: Neutral}
	}

	eff := Effectiveness(move.Type, e.typesOf(defender.Base))
	if eff == Immune {
		return DamageResult{Effectiveness: Immune}
	}

	var atk, def int
	if move.Category == domain.MovePhysical {
		atk = attacker.EffectiveStat(domain.StatAttack)
		def = defender.EffectiveStat(domain.StatDefense)
	} else {
		atk = attacker.EffectiveStat(domain.StatSpAttack)
		def = defender.EffectiveStat(domain.StatSpDefense)
	}
	if def < 1 {
		def = 1
	}

	level := attacker.Base.Level
	base := (2*level/5+2)*move.Power*atk/def/50 + 2

	dmg := float64(base)
	dmg *= weatherDamageModifier(weather, move.Type)

	stab := false
	for _, t := range e.typesOf(attacker.Base) {
		if t == move.Type {
			stab = true
			break
		}
	}
	if stab {
		dmg *= 1.5
	}

	dmg *= eff

	crit := e.Rng.Intn(critChanceDenominator) == 0
	if crit {
		dmg *= 1.5
	}

	if move.Category == domain.MovePhysical && attacker.Base.Status == domain.StatusBurn {
		dmg *= 0.5
	}

	// Разброс 0.85..1.00
	dmg *= 0.85 + e.Rng.Float64()*0.15

	out := int(dmg)
	if out < 1 {
		out = 1
	}

	return DamageResult{
		Damage:        out,
		Effectiveness: eff,
		STAB:          stab,
		Critical:      crit,
	}
}
