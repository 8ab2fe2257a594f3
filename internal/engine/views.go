package engine

import (
	"pocketgrove-server/internal/battle"
	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/save"
	"pocketgrove-server/pkg/api"
)

// pokemonView собирает DTO существа. Названия приёмов берутся из
// реестра; незарегистрированный приём показывается своим ID.
func (s *GameService) pokemonView(p *domain.Pokemon) *api.PokemonView {
	if p == nil {
		return nil
	}

	v := &api.PokemonView{
		UID:       p.UID,
		SpeciesID: p.SpeciesID,
		Nickname:  p.DisplayName(),
		Level:     p.Level,
		Exp:       p.Exp,
		CurrentHP: p.CurrentHP,
		MaxHP:     p.Stats.HP,
		Status:    string(p.Status),
		Shiny:     p.Shiny,
	}

	for _, m := range p.Moves {
		name := m.MoveID
		if md := s.services.Registry.Moves.Get(m.MoveID); md != nil {
			name = md.Name
		}
		v.Moves = append(v.Moves, api.MoveSlotView{
			MoveID: m.MoveID,
			Name:   name,
			PP:     m.PP,
			MaxPP:  m.MaxPP,
		})
	}
	return v
}

func (s *GameService) partyView(g *domain.GameSave) []api.PokemonView {
	out := make([]api.PokemonView, 0, len(g.Party))
	for _, p := range g.Party {
		if v := s.pokemonView(p); v != nil {
			out = append(out, *v)
		}
	}
	return out
}

func (s *GameService) saveView(g *domain.GameSave) *api.SaveView {
	v := &api.SaveView{
		Variant:    g.Variant,
		PlayerName: g.PlayerName,
		RivalName:  g.RivalName,
		Money:      g.Money,
		CurrentMap: g.CurrentMap,
		PlayTime:   save.FormatPlayTime(g.PlaySeconds),
		Party:      s.partyView(g),
		Badges:     g.Badges,
	}

	for _, slot := range g.Bag {
		name := slot.ItemID
		if item := s.services.Registry.Items.Get(slot.ItemID); item != nil {
			name = item.Name
		}
		v.Bag = append(v.Bag, api.BagSlotView{
			ItemID:   slot.ItemID,
			Name:     name,
			Quantity: slot.Quantity,
		})
	}

	for _, entry := range g.Pokedex {
		if entry.Seen {
			v.SeenCount++
		}
		if entry.Caught {
			v.CaughtCount++
		}
	}
	return v
}

func (s *GameService) battleView(st *battle.BattleState) *api.BattleView {
	v := &api.BattleView{
		ID:      st.ID,
		Turn:    st.Turn,
		Outcome: string(st.Outcome),
		Wild:    st.Wild,
		Weather: string(st.Field.Weather),
	}
	if bp := st.Player.ActivePokemon(); bp != nil {
		v.PlayerActive = s.pokemonView(bp.Base)
	}
	if bp := st.Opponent.ActivePokemon(); bp != nil {
		v.OpponentActive = s.pokemonView(bp.Base)
	}
	return v
}
