// Package evolution реализует проверку условий эволюции и само
// преобразование существа. Система делит один видовой реестр с боевым
// движком: граф эволюций и боевые данные вида не могут разойтись.
package evolution

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/registry"
	"pocketgrove-server/internal/stats"
	"pocketgrove-server/pkg/logger"
)

// System — система эволюции поверх общего видового реестра.
type System struct {
	Species *registry.Species
}

// New создает систему эволюции.
func New(species *registry.Species) *System {
	return &System{Species: species}
}

// CheckResult — результат проверки условий эволюции.
type CheckResult struct {
	// CanEvolve — нашлось ли подходящее ребро.
	CanEvolve bool `json:"canEvolve"`
	// TargetID — вид, в который эволюционирует существо.
	TargetID string `json:"targetId,omitempty"`
	// Edge — сработавшее ребро графа (условие целиком).
	Edge *domain.EvolutionEdge `json:"edge,omitempty"`
}

// Check ищет первое ребро эволюции вида, чей триггер совпадает с
// запрошенным и чьё условие выполнено: для TriggerLevel — уровень не
// ниже порога, для TriggerItem — совпадение предмета, TriggerTrade
// срабатывает самим фактом обмена. Вид без эволюций или без
// подходящего ребра даёт отрицательный результат.
func (s *System) Check(p *domain.Pokemon, trigger domain.EvolutionTrigger, itemID string) CheckResult {
	sd := s.Species.Get(p.SpeciesID)
	if sd == nil || len(sd.Evolutions) == 0 {
		return CheckResult{}
	}

	for i := range sd.Evolutions {
		edge := sd.Evolutions[i]
		if edge.Trigger != trigger {
			continue
		}
		switch trigger {
		case domain.TriggerLevel:
			if p.Level < edge.Level {
				continue
			}
		case domain.TriggerItem:
			if itemID == "" || itemID != edge.ItemID {
				continue
			}
		case domain.TriggerTrade:
			// Сам факт обмена и есть условие.
		default:
			continue
		}
		return CheckResult{CanEvolve: true, TargetID: edge.TargetID, Edge: &edge}
	}

	return CheckResult{}
}

// Evolve возвращает новую запись существа с заменённым видом и
// пересчитанными статами. Идентификатор, уровень, опыт, IV/EV, приёмы,
// статус и дружба сохраняются; текущее HP масштабирует недостающее
// через общий калькулятор. Никнейм, совпадавший с именем старого вида,
// обновляется на имя нового — существо без осознанного имени
// продолжает называться по виду.
func (s *System) Evolve(p *domain.Pokemon, targetID string) (*domain.Pokemon, error) {
	target := s.Species.Get(targetID)
	if target == nil {
		return nil, fmt.Errorf("evolve: unknown target species %q", targetID)
	}
	oldSpecies := s.Species.Get(p.SpeciesID)

	evolved := *p
	evolved.Moves = make([]domain.PokemonMove, len(p.Moves))
	copy(evolved.Moves, p.Moves)

	evolved.SpeciesID = target.ID
	if oldSpecies != nil && p.Nickname == oldSpecies.Name {
		evolved.Nickname = target.Name
	}

	stats.Recalculate(&evolved, target.BaseStats)

	logger.WithComponent("evolution").WithFields(logrus.Fields{
		"uid":  p.UID,
		"from": p.SpeciesID,
		"to":   target.ID,
	}).Info("Pokemon evolved")

	return &evolved, nil
}

// MovesForLevel возвращает приёмы вида, открывающиеся ровно на данном
// уровне. Пустой срез — когда на уровне ничего нет или вид неизвестен.
func (s *System) MovesForLevel(speciesID string, level int) []string {
	sd := s.Species.Get(speciesID)
	if sd == nil {
		return nil
	}
	var out []string
	for _, entry := range sd.Learnset {
		if entry.Level == level {
			out = append(out, entry.MoveID)
		}
	}
	return out
}

// SpeciesName возвращает зарегистрированное имя вида либо заглушку
// с идентификатором для незарегистрированного.
func (s *System) SpeciesName(speciesID string) string {
	if sd := s.Species.Get(speciesID); sd != nil {
		return sd.Name
	}
	return fmt.Sprintf("Unknown species #%s", speciesID)
}
