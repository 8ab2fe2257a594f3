package battle

import (
	"fmt"

	"pocketgrove-server/internal/domain"
)

// Weather — текущая погода на поле.
type Weather string

const (
	WeatherNone      Weather = ""
	WeatherRain      Weather = "rain"
	WeatherSun       Weather = "sun"
	WeatherSandstorm Weather = "sandstorm"
	WeatherSnow      Weather = "snow"
)

// DefaultWeatherTurns — длительность погоды, установленной приёмом
// или способностью.
const DefaultWeatherTurns = 5

// HazardKind — тип ловушки на стороне поля.
type HazardKind string

const (
	HazardSpikes      HazardKind = "spikes"
	HazardToxicSpikes HazardKind = "toxic-spikes"
	HazardStealthRock HazardKind = "stealth-rock"
)

// maxHazardLayers — потолок слоёв по типу ловушки.
var maxHazardLayers = map[HazardKind]int{
	HazardSpikes:      3,
	HazardToxicSpikes: 2,
	HazardStealthRock: 1,
}

// Side — сторона боя.
type Side string

const (
	SidePlayer   Side = "player"
	SideOpponent Side = "opponent"
)

// FieldEffects — состояние поля: погода с оставшейся длительностью
// и ловушки по сторонам. Ловушки срабатывают на входе существа в бой
// и лежат до конца боя (слои не расходуются срабатыванием, кроме
// поглощения toxic spikes ядовитым типом).
type FieldEffects struct {
	Weather      Weather `json:"weather"`
	WeatherTurns int     `json:"weatherTurns"`

	Hazards map[Side]map[HazardKind]int `json:"hazards"`
}

// NewFieldEffects возвращает чистое поле: без погоды, без ловушек.
func NewFieldEffects() *FieldEffects {
	return &FieldEffects{
		Weather: WeatherNone,
		Hazards: map[Side]map[HazardKind]int{
			SidePlayer:   {},
			SideOpponent: {},
		},
	}
}

// SetWeather устанавливает погоду со стандартной длительностью.
// Повторная установка той же погоды длительность не продлевает.
func (f *FieldEffects) SetWeather(w Weather) bool {
	if f.Weather == w {
		return false
	}
	f.Weather = w
	if w == WeatherNone {
		f.WeatherTurns = 0
	} else {
		f.WeatherTurns = DefaultWeatherTurns
	}
	return true
}

// AddHazard добавляет слой ловушки на сторону. Возвращает false,
// если достигнут потолок слоёв.
func (f *FieldEffects) AddHazard(side Side, kind HazardKind) bool {
	layers := f.Hazards[side]
	if layers == nil {
		layers = map[HazardKind]int{}
		f.Hazards[side] = layers
	}
	if layers[kind] >= maxHazardLayers[kind] {
		return false
	}
	layers[kind]++
	return true
}

// HazardLayers возвращает число слоёв ловушки на стороне.
func (f *FieldEffects) HazardLayers(side Side, kind HazardKind) int {
	return f.Hazards[side][kind]
}

// clearHazard убирает ловушку со стороны (поглощение toxic spikes).
func (f *FieldEffects) clearHazard(side Side, kind HazardKind) {
	delete(f.Hazards[side], kind)
}

// tickWeather уменьшает длительность погоды; по истечении — сбрасывает.
// Возвращает true, если погода закончилась на этом ходу.
func (f *FieldEffects) tickWeather() bool {
	if f.Weather == WeatherNone {
		return false
	}
	f.WeatherTurns--
	if f.WeatherTurns <= 0 {
		f.Weather = WeatherNone
		f.WeatherTurns = 0
		return true
	}
	return false
}

// spikesFraction — доля максимума HP, снимаемая шипами по числу слоёв.
func spikesFraction(layers int) float64 {
	switch {
	case layers >= 3:
		return 1.0 / 4.0
	case layers == 2:
		return 1.0 / 6.0
	case layers == 1:
		return 1.0 / 8.0
	}
	return 0
}

// isGrounded сообщает, стоит ли существо на земле (не летающий тип
// и не левитация). Наземные ловушки действуют только на стоящих.
func (e *Engine) isGrounded(bp *BattlePokemon) bool {
	for _, t := range e.typesOf(bp.Base) {
		if t == "flying" {
			return false
		}
	}
	return bp.Base.Ability != "levitate"
}

// ApplyEntryHazards применяет ловушки стороны side к входящему существу.
// Возвращает журнал срабатываний. Вызывается на каждом входе в бой,
// включая автозамену после обморока.
func (e *Engine) ApplyEntryHazards(bp *BattlePokemon, side Side, field *FieldEffects) []string {
	var log []string
	p := bp.Base
	name := p.DisplayName()

	// Stealth Rock бьёт всех, урон масштабируется эффективностью камня.
	if field.HazardLayers(side, HazardStealthRock) > 0 {
		mult := Effectiveness("rock", e.typesOf(p))
		dmg := int(float64(p.Stats.HP) / 8.0 * mult)
		if dmg < 1 && mult > 0 {
			dmg = 1
		}
		if dmg > 0 {
			p.TakeDamage(dmg)
			log = append(log, fmt.Sprintf("Острые камни впиваются в %s (-%d HP)!", name, dmg))
		}
	}

	if p.IsFainted() {
		return log
	}

	grounded := e.isGrounded(bp)

	// Обычные шипы — только по стоящим на земле.
	if layers := field.HazardLayers(side, HazardSpikes); layers > 0 && grounded {
		dmg := int(float64(p.Stats.HP) * spikesFraction(layers))
		if dmg < 1 {
			dmg = 1
		}
		p.TakeDamage(dmg)
		log = append(log, fmt.Sprintf("%s ранится о шипы (-%d HP)!", name, dmg))
	}

	if p.IsFainted() {
		return log
	}

	// Ядовитые шипы: ядовитый тип поглощает их, остальные стоящие травятся.
	if field.HazardLayers(side, HazardToxicSpikes) > 0 && grounded {
		poisonType := false
		for _, t := range e.typesOf(p) {
			if t == "poison" {
				poisonType = true
				break
			}
		}
		switch {
		case poisonType:
			field.clearHazard(side, HazardToxicSpikes)
			log = append(log, fmt.Sprintf("%s впитывает ядовитые шипы!", name))
		case p.Status == domain.StatusNone:
			p.Status = domain.StatusPoison
			log = append(log, fmt.Sprintf("%s отравлен ядовитыми шипами!", name))
		}
	}

	return log
}
