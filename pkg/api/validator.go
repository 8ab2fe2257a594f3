package api

import "errors"

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p NewGamePayload) Validate() error {
	if p.Variant == "" {
		return errors.New("variant is required")
	}
	if p.PlayerName == "" {
		return errors.New("playerName is required")
	}
	if p.StarterID == "" {
		return errors.New("starterId is required")
	}
	return nil
}

func (p VariantPayload) Validate() error {
	if p.Variant == "" {
		return errors.New("variant is required")
	}
	return nil
}

func (p StartBattlePayload) Validate() error {
	if p.SpeciesID == "" {
		return errors.New("speciesId is required")
	}
	if p.Level < 1 || p.Level > 100 {
		return errors.New("level must be in 1..100")
	}
	return nil
}

func (p BattleTurnPayload) Validate() error {
	switch p.Kind {
	case "move":
		if p.MoveID == "" {
			return errors.New("moveId is required for kind=move")
		}
	case "switch":
		if p.SwitchTo < 0 {
			return errors.New("switchTo must be non-negative")
		}
	case "run":
	default:
		return errors.New("kind must be move, switch or run")
	}
	return nil
}

func (p ItemPayload) Validate() error {
	if p.ItemID == "" {
		return errors.New("itemId is required")
	}
	if p.Count < 0 {
		return errors.New("count must be non-negative")
	}
	if p.PartyIndex < 0 {
		return errors.New("partyIndex must be non-negative")
	}
	return nil
}
