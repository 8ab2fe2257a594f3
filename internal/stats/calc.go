package stats

import (
	"math"

	"pocketgrove-server/internal/domain"
)

// Calc вычисляет одну боевую характеристику по стандартной формуле:
//
//	floor((2*base + iv + floor(ev/4)) * level / 100) + 5
//
// Для HP вместо «+5» прибавляется «+ level + 10», и природа не применяется.
// Множитель природы (1.1 / 0.9 / 1.0) применяется к результату с
// отбрасыванием дробной части.
//
// Формула обязана вызываться одинаково при создании, прокачке и эволюции:
// существо, доведённое до уровня N любым путём, неотличимо по статам от
// созданного сразу на уровне N.
func Calc(base, iv, ev, level int, nature domain.Nature, stat domain.Stat) int {
	core := (2*base + iv + ev/4) * level / 100

	if stat == domain.StatHP {
		return core + level + 10
	}

	v := core + 5
	return int(math.Floor(float64(v) * nature.Modifier(stat)))
}

// CalcAll вычисляет весь секстет характеристик.
func CalcAll(base, ivs, evs domain.StatBlock, level int, nature domain.Nature) domain.StatBlock {
	var out domain.StatBlock
	for _, s := range domain.AllStats {
		out.Set(s, Calc(base.Get(s), ivs.Get(s), evs.Get(s), level, nature, s))
	}
	return out
}

// Recalculate пересчитывает производные статы существа на месте,
// сохраняя долю текущего HP при изменении максимума (текущий HP растёт
// на столько же, на сколько вырос максимум — поведение прокачки).
func Recalculate(p *domain.Pokemon, base domain.StatBlock) {
	oldMax := p.Stats.HP
	wasFainted := oldMax > 0 && p.CurrentHP <= 0
	p.Stats = CalcAll(base, p.IVs, p.EVs, p.Level, p.Nature)

	switch {
	case wasFainted:
		// Обморок пересчётом не снимается.
		p.CurrentHP = 0
	case oldMax > 0:
		p.CurrentHP += p.Stats.HP - oldMax
	default:
		p.CurrentHP = p.Stats.HP
	}
	if p.CurrentHP > p.Stats.HP {
		p.CurrentHP = p.Stats.HP
	}
	if p.CurrentHP < 0 {
		p.CurrentHP = 0
	}
}
