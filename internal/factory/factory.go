// Package factory создает новые экземпляры существ из справочных данных вида.
package factory

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"pocketgrove-server/internal/core/rng"
	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/registry"
	"pocketgrove-server/internal/stats"
	"pocketgrove-server/pkg/logger"
	"pocketgrove-server/pkg/utils"
)

// DefaultShinyOdds — знаменатель шанса блеска (1 из N).
const DefaultShinyOdds = 4096

// Factory собирает существ: бросает IV, выбирает природу и способность,
// считает статы и подбирает стартовые приёмы из learnset вида.
type Factory struct {
	Species *registry.Species
	Moves   *registry.Moves
	Rng     *rng.Source

	// ShinyOdds — знаменатель шанса блеска. 0 означает DefaultShinyOdds.
	ShinyOdds int
}

// New создает фабрику поверх реестров и источника случайности.
func New(species *registry.Species, moves *registry.Moves, src *rng.Source) *Factory {
	return &Factory{
		Species:   species,
		Moves:     moves,
		Rng:       src,
		ShinyOdds: DefaultShinyOdds,
	}
}

// Create создает существо вида speciesID на заданном уровне.
func (f *Factory) Create(speciesID string, level int) (*domain.Pokemon, error) {
	sd := f.Species.Get(speciesID)
	if sd == nil {
		return nil, fmt.Errorf("unknown species %q", speciesID)
	}
	return f.CreateFromSpecies(sd, level), nil
}

// CreateFromSpecies создает существо из уже найденных данных вида.
//
// Порядок бросков фиксирован (6 IV в порядке AllStats, природа, способность,
// блеск): при одном и том же сиде источника результат воспроизводим.
func (f *Factory) CreateFromSpecies(sd *domain.SpeciesData, level int) *domain.Pokemon {
	if level < 1 {
		level = 1
	}
	if level > domain.MaxLevel {
		level = domain.MaxLevel
	}

	p := &domain.Pokemon{
		UID:        utils.GeneratePokemonUID(),
		SpeciesID:  sd.ID,
		Nickname:   sd.Name,
		Level:      level,
		Exp:        domain.ExpForLevel(sd.GrowthRate, level),
		Friendship: domain.BaseFriend,
		Status:     domain.StatusNone,
	}

	// Шесть независимых бросков IV в [0, 31].
	for _, s := range domain.AllStats {
		p.IVs.Set(s, f.Rng.Between(0, domain.MaxIV))
	}

	// Природа — равномерно из 25.
	p.Nature = domain.AllNatures[f.Rng.Intn(len(domain.AllNatures))]

	// Способность — равномерно из пула вида (если пул задан).
	if len(sd.Abilities) > 0 {
		p.Ability = sd.Abilities[f.Rng.Intn(len(sd.Abilities))]
	}

	// Блеск — редкий фиксированный шанс.
	odds := f.ShinyOdds
	if odds <= 0 {
		odds = DefaultShinyOdds
	}
	p.Shiny = f.Rng.Intn(odds) == 0

	p.Stats = stats.CalcAll(sd.BaseStats, p.IVs, p.EVs, level, p.Nature)
	p.CurrentHP = p.Stats.HP

	p.Moves = f.startingMoves(sd, level)

	logger.WithComponent("factory").WithFields(logrus.Fields{
		"uid":     p.UID,
		"species": p.SpeciesID,
		"level":   p.Level,
		"nature":  p.Nature,
		"shiny":   p.Shiny,
	}).Debug("Pokemon created")

	return p
}

// startingMoves выбирает стартовые приёмы: из записей learnset с уровнем
// не выше текущего берутся до четырёх самых «поздних». Сортировка по
// убыванию уровня стабильна — при равных уровнях сохраняется порядок
// learnset. Приёмы, отсутствующие в реестре, не назначаются.
func (f *Factory) startingMoves(sd *domain.SpeciesData, level int) []domain.PokemonMove {
	eligible := make([]domain.LearnsetEntry, 0, len(sd.Learnset))
	for _, e := range sd.Learnset {
		if e.Level <= level {
			eligible = append(eligible, e)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Level > eligible[j].Level
	})

	moves := make([]domain.PokemonMove, 0, domain.MaxMoves)
	seen := make(map[string]bool, domain.MaxMoves)
	for _, e := range eligible {
		if len(moves) >= domain.MaxMoves {
			break
		}
		if seen[e.MoveID] {
			continue
		}
		seen[e.MoveID] = true
		md := f.Moves.Get(e.MoveID)
		if md == nil {
			continue
		}
		moves = append(moves, domain.PokemonMove{
			MoveID: md.ID,
			PP:     md.MaxPP,
			MaxPP:  md.MaxPP,
		})
	}
	return moves
}
