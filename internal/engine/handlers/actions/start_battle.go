package actions

import (
	"fmt"

	"pocketgrove-server/internal/battle"
	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/engine/handlers"
	"pocketgrove-server/pkg/api"
)

func HandleStartBattle(ctx handlers.Context, p api.StartBattlePayload) (handlers.Result, error) {
	if ctx.Session.InBattle() {
		return handlers.Result{Msg: "Бой уже идёт.", MsgType: "ERROR"}, nil
	}
	if ctx.Session.Save.FirstAblePokemon() == nil {
		return handlers.Result{
			Msg:     "Вся команда без сознания — сражаться некому.",
			MsgType: "ERROR",
		}, nil
	}

	opponent, err := ctx.Factory.Create(p.SpeciesID, p.Level)
	if err != nil {
		return handlers.Result{Msg: "Такого вида не существует.", MsgType: "ERROR"}, nil
	}

	st, entryLog := ctx.Battle.NewBattle(ctx.Session.Save.Party, []*domain.Pokemon{opponent}, p.Wild)
	ctx.Session.Battle = st
	ctx.Session.WildTarget = nil
	if p.Wild {
		ctx.Session.WildTarget = opponent
	}

	ctx.Session.Save.MarkSeen(p.SpeciesID)

	label := "Тренер выпускает"
	if p.Wild {
		label = "Появляется дикий"
	}

	return handlers.Result{
		Msg:     fmt.Sprintf("%s %s (ур. %d)!", label, opponent.Nickname, opponent.Level),
		MsgType: "BATTLE",
		Extra:   entryLog,
	}, nil
}

// applyBattleEnd снимает боевое состояние сессии после терминального исхода.
func applyBattleEnd(ctx handlers.Context, outcome battle.Outcome) []string {
	var log []string

	switch outcome {
	case battle.OutcomePlayerWin:
		log = append(log, "Победа!")
		log = append(log, checkPartyEvolutions(ctx)...)
	case battle.OutcomeOpponentWin:
		log = append(log, "Вся команда пала. Вы спешите в ближайший центр исцеления...")
		for _, p := range ctx.Session.Save.Party {
			p.Heal(p.Stats.HP)
			p.Status = domain.StatusNone
		}
	case battle.OutcomeFled:
		log = append(log, "Бой прерван бегством.")
	case battle.OutcomeCaptured:
		// Сообщение о поимке формирует HandleCatch.
	}

	ctx.Session.Battle = nil
	ctx.Session.WildTarget = nil
	return log
}

// checkPartyEvolutions проверяет уровневые эволюции всей команды после
// победы и применяет их немедленно.
func checkPartyEvolutions(ctx handlers.Context) []string {
	var log []string
	for i, p := range ctx.Session.Save.Party {
		res := ctx.Evolution.Check(p, domain.TriggerLevel, "")
		if !res.CanEvolve {
			continue
		}
		evolved, err := ctx.Evolution.Evolve(p, res.TargetID)
		if err != nil {
			continue
		}
		ctx.Session.Save.Party[i] = evolved
		ctx.Session.Save.MarkCaught(evolved.SpeciesID)
		log = append(log, fmt.Sprintf("Что? %s эволюционирует в %s!",
			p.DisplayName(), ctx.Evolution.SpeciesName(res.TargetID)))
	}
	return log
}
