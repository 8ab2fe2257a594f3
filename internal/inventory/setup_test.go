package inventory

import (
	"os"
	"testing"

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

func testSystem() *System {
	items := registry.NewItems()
	items.Set([]domain.ItemData{
		{ID: "potion", Name: "Potion", Category: domain.ItemCategoryMedicine, Price: 300,
			Effect: domain.ItemEffect{Kind: domain.EffectHealHP, HealAmount: 20}},
		{ID: "full-heal-potion", Name: "Full Heal Potion", Category: domain.ItemCategoryMedicine, Price: 700,
			Effect: domain.ItemEffect{Kind: domain.EffectHealHP, HealAmount: 50, CuresStatus: domain.StatusAll}},
		{ID: "antidote", Name: "Antidote", Category: domain.ItemCategoryMedicine, Price: 100,
			Effect: domain.ItemEffect{Kind: domain.EffectCureStatus, CuresStatus: domain.StatusPoison}},
		{ID: "full-heal", Name: "Full Heal", Category: domain.ItemCategoryMedicine, Price: 600,
			Effect: domain.ItemEffect{Kind: domain.EffectCureStatus, CuresStatus: domain.StatusAll}},
		{ID: "revive", Name: "Revive", Category: domain.ItemCategoryMedicine, Price: 1500,
			Effect: domain.ItemEffect{Kind: domain.EffectRevive, ReviveFraction: 0.5}},
		{ID: "ether", Name: "Ether", Category: domain.ItemCategoryMedicine, Price: 1200,
			Effect: domain.ItemEffect{Kind: domain.EffectRestorePP}},
		{ID: "rare-candy", Name: "Rare Candy", Category: domain.ItemCategoryMedicine, Price: 4800,
			Effect: domain.ItemEffect{Kind: domain.EffectRareCandy}},
		{ID: "pokeball", Name: "Poke Ball", Category: domain.ItemCategoryBall, Price: 200,
			Effect: domain.ItemEffect{Kind: domain.EffectBall, BallMultiplier: 1.0}},
		{ID: "old-rod", Name: "Old Rod", Category: domain.ItemCategoryKey, Price: 0, KeyItem: true},
	})

	species := registry.NewSpecies()
	species.Set([]domain.SpeciesData{
		{
			ID: "pebblit", Name: "Pebblit", Types: []string{"rock", "ground"},
			BaseStats:  domain.StatBlock{HP: 40, Attack: 80, Defense: 100, SpAttack: 30, SpDefense: 30, Speed: 20},
			GrowthRate: domain.GrowthMediumFast,
		},
	})

	return New(items, species)
}

func testPokemon(s *System, level int) *domain.Pokemon {
	sd := s.Species.Get("pebblit")
	p := &domain.Pokemon{
		UID:       "test_pebblit",
		SpeciesID: "pebblit",
		Nickname:  sd.Name,
		Level:     level,
		Exp:       domain.ExpForLevel(sd.GrowthRate, level),
		Nature:    domain.NatureSerious,
		IVs:       domain.StatBlock{HP: 31, Attack: 31, Defense: 31, SpAttack: 31, SpDefense: 31, Speed: 31},
		Moves: []domain.PokemonMove{
			{MoveID: "tackle", PP: 35, MaxPP: 35},
			{MoveID: "earthquake", PP: 10, MaxPP: 10},
		},
	}
	p.Stats = stats.CalcAll(sd.BaseStats, p.IVs, p.EVs, level, p.Nature)
	p.CurrentHP = p.Stats.HP
	return p
}
