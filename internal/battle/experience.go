package battle

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/stats"
	"pocketgrove-server/pkg/logger"
)

// ExpGain возвращает опыт за победу над существом: floor(baseExp * level / 7).
func ExpGain(defeatedBaseExp, defeatedLevel int) int {
	return defeatedBaseExp * defeatedLevel / 7
}

// RecalculateStats пересчитывает производные статы существа через общий
// калькулятор. Используется прокачкой и слоем инвентаря (Rare Candy).
func (e *Engine) RecalculateStats(p *domain.Pokemon) {
	sd := e.speciesOf(p)
	if sd == nil {
		return
	}
	stats.Recalculate(p, sd.BaseStats)
}

// CheckLevelUp проверяет порог опыта и при необходимости поднимает
// уровень (возможно, на несколько сразу), пересчитывая статы и изучая
// приёмы новых уровней. Возвращает журнал изменений.
func (e *Engine) CheckLevelUp(p *domain.Pokemon) []string {
	sd := e.speciesOf(p)
	if sd == nil {
		return nil
	}

	target := domain.LevelForExp(sd.GrowthRate, p.Exp)
	if target <= p.Level {
		return nil
	}

	var log []string
	for p.Level < target {
		p.Level++
		e.RecalculateStats(p)
		p.AddFriendship(3)
		log = append(log, fmt.Sprintf("%s достигает уровня %d!", p.DisplayName(), p.Level))
		log = append(log, e.learnMovesAtLevel(p, sd, p.Level)...)
	}

	logger.WithComponent("battle").WithFields(logrus.Fields{
		"uid":   p.UID,
		"level": p.Level,
	}).Debug("Level up applied")

	return log
}

// GrantExperience начисляет опыт и прогоняет цепочку уровней.
func (e *Engine) GrantExperience(p *domain.Pokemon, amount int) []string {
	if amount <= 0 {
		return nil
	}
	sd := e.speciesOf(p)
	if sd == nil {
		return nil
	}

	p.Exp += amount
	if limit := domain.ExpForLevel(sd.GrowthRate, domain.MaxLevel); p.Exp > limit {
		p.Exp = limit
	}

	log := []string{fmt.Sprintf("%s получает %d опыта.", p.DisplayName(), amount)}
	return append(log, e.CheckLevelUp(p)...)
}

// learnMovesAtLevel изучает приёмы, открывшиеся ровно на уровне level.
// При заполненных четырёх слотах вытесняется самый старый приём —
// слот 0; остальные сдвигаются, новый встаёт в конец. Уже известный
// приём повторно не изучается.
func (e *Engine) learnMovesAtLevel(p *domain.Pokemon, sd *domain.SpeciesData, level int) []string {
	var log []string

	for _, entry := range sd.Learnset {
		if entry.Level != level {
			continue
		}
		if p.FindMove(entry.MoveID) != nil {
			continue
		}
		md := e.Moves.Get(entry.MoveID)
		if md == nil {
			continue
		}

		slot := domain.PokemonMove{MoveID: md.ID, PP: md.MaxPP, MaxPP: md.MaxPP}
		if len(p.Moves) < domain.MaxMoves {
			p.Moves = append(p.Moves, slot)
			log = append(log, fmt.Sprintf("%s изучает %s!", p.DisplayName(), md.Name))
		} else {
			forgotten := p.Moves[0]
			p.Moves = append(p.Moves[1:], slot)
			old := e.MoveData(forgotten.MoveID)
			oldName := forgotten.MoveID
			if old != nil {
				oldName = old.Name
			}
			log = append(log, fmt.Sprintf("%s забывает %s и изучает %s!", p.DisplayName(), oldName, md.Name))
		}
	}

	return log
}

// grantFaintRewards начисляет победителю опыт и EV за павшее существо.
// EV идут в характеристику с наибольшим базовым значением у вида
// проигравшего.
func (e *Engine) grantFaintRewards(winner, loser *domain.Pokemon) []string {
	loserSpecies := e.speciesOf(loser)
	if loserSpecies == nil || winner.IsFainted() {
		return nil
	}

	winner.AddEV(dominantStat(loserSpecies.BaseStats), 2)

	exp := ExpGain(loserSpecies.BaseExp, loser.Level)
	return e.GrantExperience(winner, exp)
}

// dominantStat возвращает характеристику с наибольшим базовым значением.
// При равенстве побеждает более ранняя в порядке AllStats.
func dominantStat(base domain.StatBlock) domain.Stat {
	best := domain.AllStats[0]
	for _, s := range domain.AllStats[1:] {
		if base.Get(s) > base.Get(best) {
			best = s
		}
	}
	return best
}
