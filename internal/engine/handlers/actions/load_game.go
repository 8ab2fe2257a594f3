package actions

import (
	"fmt"

	"pocketgrove-server/internal/engine/handlers"
	"pocketgrove-server/pkg/api"
)

func HandleLoadGame(ctx handlers.Context, p api.VariantPayload) (handlers.Result, error) {
	g, err := ctx.Saves.Load(p.Variant)
	if err != nil {
		return handlers.Result{}, fmt.Errorf("load %q: %w", p.Variant, err)
	}
	if g == nil {
		return handlers.Result{
			Msg:     fmt.Sprintf("Сохранение %q не найдено.", p.Variant),
			MsgType: "ERROR",
		}, nil
	}

	ctx.Session.Save = g
	ctx.Session.Battle = nil
	ctx.Session.WildTarget = nil

	return handlers.Result{
		Msg:     fmt.Sprintf("С возвращением, %s!", g.PlayerName),
		MsgType: "INFO",
	}, nil
}

func HandleSaveGame(ctx handlers.Context) (handlers.Result, error) {
	if err := ctx.Saves.Save(ctx.Session.Save); err != nil {
		return handlers.Result{}, fmt.Errorf("save game: %w", err)
	}
	return handlers.Result{
		Msg:     "Игра сохранена.",
		MsgType: "INFO",
	}, nil
}
