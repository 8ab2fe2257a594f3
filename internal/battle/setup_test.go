package battle

import (
	"os"
	"testing"

	"pocketgrove-server/internal/core/rng"
	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/registry"
	"pocketgrove-server/internal/stats"
	"pocketgrove-server/pkg/logger"
)

func TestMain(m *testing.M) {
	// Initialize the global logger before running any tests
	logger.Init()

	os.Exit(m.Run())
}

// testEngine builds an engine over a small fixed dataset.
func testEngine(seed int64) *Engine {
	moves := registry.NewMoves()
	moves.Set([]domain.MoveData{
		{ID: "tackle", Name: "Tackle", Type: "normal", Category: domain.MovePhysical, Power: 40, Accuracy: 100, MaxPP: 35},
		{ID: "ember", Name: "Ember", Type: "fire", Category: domain.MoveSpecial, Power: 40, Accuracy: 100, MaxPP: 25, Status: domain.StatusBurn, StatusChance: 10},
		{ID: "water-gun", Name: "Water Gun", Type: "water", Category: domain.MoveSpecial, Power: 40, Accuracy: 100, MaxPP: 25},
		{ID: "thunder-shock", Name: "Thunder Shock", Type: "electric", Category: domain.MoveSpecial, Power: 40, Accuracy: 100, MaxPP: 30},
		{ID: "earthquake", Name: "Earthquake", Type: "ground", Category: domain.MovePhysical, Power: 100, Accuracy: 100, MaxPP: 10},
		{ID: "quick-attack", Name: "Quick Attack", Type: "normal", Category: domain.MovePhysical, Power: 40, Accuracy: 100, MaxPP: 30, Priority: 1},
		{ID: "thunder-wave", Name: "Thunder Wave", Type: "electric", Category: domain.MoveStatus, Accuracy: 90, MaxPP: 20, Status: domain.StatusParalysis},
		{ID: "growl", Name: "Growl", Type: "normal", Category: domain.MoveStatus, Accuracy: 100, MaxPP: 40,
			StatChanges: []domain.StatChange{{Stat: domain.StatAttack, Stages: -1, Target: domain.ChangeFoe}}},
		{ID: "vine-whip", Name: "Vine Whip", Type: "grass", Category: domain.MovePhysical, Power: 45, Accuracy: 100, MaxPP: 25},
		{ID: "headbutt", Name: "Headbutt", Type: "normal", Category: domain.MovePhysical, Power: 70, Accuracy: 100, MaxPP: 15, FlinchChance: 100},
	})

	species := registry.NewSpecies()
	species.Set([]domain.SpeciesData{
		{
			ID: "sparkit", Name: "Sparkit", Types: []string{"electric"},
			BaseStats: domain.StatBlock{HP: 35, Attack: 55, Defense: 40, SpAttack: 50, SpDefense: 50, Speed: 90},
			BaseExp:   112, CatchRate: 190, GrowthRate: domain.GrowthMediumFast,
			Learnset: []domain.LearnsetEntry{
				{Level: 1, MoveID: "tackle"},
				{Level: 1, MoveID: "thunder-shock"},
				{Level: 10, MoveID: "thunder-wave"},
				{Level: 12, MoveID: "quick-attack"},
			},
		},
		{
			ID: "embercub", Name: "Embercub", Types: []string{"fire"},
			BaseStats: domain.StatBlock{HP: 39, Attack: 52, Defense: 43, SpAttack: 60, SpDefense: 50, Speed: 65},
			BaseExp:   62, CatchRate: 45, GrowthRate: domain.GrowthMediumSlow,
			Abilities: []string{"blaze"},
			Learnset: []domain.LearnsetEntry{
				{Level: 1, MoveID: "tackle"},
				{Level: 1, MoveID: "growl"},
				{Level: 7, MoveID: "ember"},
			},
		},
		{
			ID: "pebblit", Name: "Pebblit", Types: []string{"rock", "ground"},
			BaseStats: domain.StatBlock{HP: 40, Attack: 80, Defense: 100, SpAttack: 30, SpDefense: 30, Speed: 20},
			BaseExp:   60, CatchRate: 255, GrowthRate: domain.GrowthMediumFast,
			Learnset: []domain.LearnsetEntry{
				{Level: 1, MoveID: "tackle"},
				{Level: 8, MoveID: "earthquake"},
			},
		},
		{
			ID: "gustling", Name: "Gustling", Types: []string{"flying"},
			BaseStats: domain.StatBlock{HP: 40, Attack: 45, Defense: 40, SpAttack: 45, SpDefense: 45, Speed: 85},
			BaseExp:   50, CatchRate: 255, GrowthRate: domain.GrowthMediumFast,
			Learnset: []domain.LearnsetEntry{
				{Level: 1, MoveID: "tackle"},
			},
		},
	})

	return NewEngine(species, moves, rng.New(seed))
}

// makePokemon builds a deterministic pokemon with perfect IVs.
func makePokemon(e *Engine, speciesID string, level int, moveIDs ...string) *domain.Pokemon {
	sd := e.Species.Get(speciesID)
	p := &domain.Pokemon{
		UID:        "test_" + speciesID,
		SpeciesID:  speciesID,
		Nickname:   sd.Name,
		Level:      level,
		Exp:        domain.ExpForLevel(sd.GrowthRate, level),
		Nature:     domain.NatureSerious,
		IVs:        domain.StatBlock{HP: 31, Attack: 31, Defense: 31, SpAttack: 31, SpDefense: 31, Speed: 31},
		Friendship: domain.BaseFriend,
	}
	p.Stats = stats.CalcAll(sd.BaseStats, p.IVs, p.EVs, level, p.Nature)
	p.CurrentHP = p.Stats.HP

	for _, id := range moveIDs {
		md := e.Moves.Get(id)
		p.Moves = append(p.Moves, domain.PokemonMove{MoveID: id, PP: md.MaxPP, MaxPP: md.MaxPP})
	}
	return p
}
