package actions

import (
	"fmt"

	"pocketgrove-server/internal/engine/handlers"
	"pocketgrove-server/internal/save"
	"pocketgrove-server/pkg/api"
)

// StarterLevel — уровень стартового существа.
const StarterLevel = 5

func HandleNewGame(ctx handlers.Context, p api.NewGamePayload) (handlers.Result, error) {
	// Существующее сохранение того же варианта не затираем молча.
	if existing, err := ctx.Saves.Load(p.Variant); err != nil {
		return handlers.Result{}, fmt.Errorf("check variant: %w", err)
	} else if existing != nil {
		return handlers.Result{
			Msg:     fmt.Sprintf("Вариант %q уже существует — загрузите его или удалите.", p.Variant),
			MsgType: "ERROR",
		}, nil
	}

	starter, err := ctx.Factory.Create(p.StarterID, StarterLevel)
	if err != nil {
		return handlers.Result{
			Msg:     "Такого стартового существа нет.",
			MsgType: "ERROR",
		}, nil
	}

	g := save.NewSave(p.Variant, p.PlayerName, p.RivalName, "pallet-grove")
	g.Party = append(g.Party, starter)
	g.MarkCaught(starter.SpeciesID)

	if err := ctx.Saves.Save(g); err != nil {
		return handlers.Result{}, fmt.Errorf("persist new game: %w", err)
	}

	ctx.Session.Save = g
	ctx.Session.Battle = nil
	ctx.Session.WildTarget = nil

	return handlers.Result{
		Msg:     fmt.Sprintf("Новая игра начата. %s, ваш спутник — %s!", p.PlayerName, starter.Nickname),
		MsgType: "INFO",
	}, nil
}
