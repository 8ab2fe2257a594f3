package actions

import (
	"pocketgrove-server/internal/battle"
	"pocketgrove-server/internal/engine/handlers"
	"pocketgrove-server/pkg/api"
)

func HandleBattleTurn(ctx handlers.Context, p api.BattleTurnPayload) (handlers.Result, error) {
	if !ctx.Session.InBattle() {
		return handlers.Result{Msg: "Сейчас нет боя.", MsgType: "ERROR"}, nil
	}

	st := ctx.Session.Battle

	var playerAction battle.Action
	switch p.Kind {
	case "move":
		playerAction = battle.Action{Kind: battle.ActionMove, MoveID: p.MoveID}
	case "switch":
		playerAction = battle.Action{Kind: battle.ActionSwitch, SwitchTo: p.SwitchTo}
	case "run":
		playerAction = battle.Action{Kind: battle.ActionRun}
	}

	opponentAction := ctx.Battle.SelectOpponentMove(st)

	res := ctx.Battle.ExecuteTurn(st, playerAction, opponentAction)

	log := res.Log
	if res.Outcome != battle.OutcomeOngoing {
		log = append(log, applyBattleEnd(ctx, res.Outcome)...)
	}

	return handlers.Result{
		MsgType: "BATTLE",
		Extra:   log,
	}, nil
}
