package actions

import (
	"fmt"

	"pocketgrove-server/internal/battle"
	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/engine/handlers"
	"pocketgrove-server/internal/inventory"
	"pocketgrove-server/pkg/api"
)

// PartyLimit — максимум существ в активной команде; пойманные сверх
// лимита отправляются в хранилище.
const PartyLimit = 6

func HandleCatch(ctx handlers.Context, p api.ItemPayload) (handlers.Result, error) {
	if !ctx.Session.InBattle() || ctx.Session.WildTarget == nil {
		return handlers.Result{Msg: "Ловить можно только дикое существо в бою.", MsgType: "ERROR"}, nil
	}

	item := ctx.Registry.Items.Get(p.ItemID)
	if item == nil || item.Effect.Kind != domain.EffectBall {
		return handlers.Result{Msg: "Это не шар для поимки.", MsgType: "ERROR"}, nil
	}
	if inventory.Quantity(ctx.Session.Save.Bag, p.ItemID) < 1 {
		return handlers.Result{Msg: fmt.Sprintf("В сумке нет: %s.", item.Name), MsgType: "ERROR"}, nil
	}

	// Шар расходуется броском, вне зависимости от исхода.
	ctx.Session.Save.Bag = inventory.RemoveItem(ctx.Session.Save.Bag, p.ItemID, 1)

	target := ctx.Session.WildTarget
	catch := ctx.Battle.AttemptCatch(target, item.Effect.BallMultiplier)

	log := []string{fmt.Sprintf("Бросок! Шар качнулся %d раз(а)...", catch.Shakes)}

	if catch.Caught {
		ctx.Session.Battle.Outcome = battle.OutcomeCaptured
		ctx.Session.Save.MarkCaught(target.SpeciesID)
		log = append(log, fmt.Sprintf("Поймано: %s!", target.DisplayName()))
		log = append(log, storeCaught(ctx, target))
		log = append(log, applyBattleEnd(ctx, battle.OutcomeCaptured)...)

		return handlers.Result{MsgType: "BATTLE", Extra: log}, nil
	}

	log = append(log, fmt.Sprintf("%s вырывается!", target.DisplayName()))

	// Бросок занял ход — противник действует свободно.
	turn := ctx.Battle.ExecuteTurn(ctx.Session.Battle,
		battle.Action{Kind: battle.ActionItem},
		ctx.Battle.SelectOpponentMove(ctx.Session.Battle))
	log = append(log, turn.Log...)
	if turn.Outcome != battle.OutcomeOngoing {
		log = append(log, applyBattleEnd(ctx, turn.Outcome)...)
	}

	return handlers.Result{MsgType: "BATTLE", Extra: log}, nil
}

// storeCaught кладёт пойманное существо в команду или в первый
// свободный слот хранилища.
func storeCaught(ctx handlers.Context, p *domain.Pokemon) string {
	g := ctx.Session.Save

	if len(g.Party) < PartyLimit {
		g.Party = append(g.Party, p)
		return fmt.Sprintf("%s присоединяется к команде!", p.DisplayName())
	}

	for bi := range g.Boxes {
		for si := range g.Boxes[bi].Slots {
			if g.Boxes[bi].Slots[si] == nil {
				g.Boxes[bi].Slots[si] = p
				return fmt.Sprintf("%s отправлен в %s.", p.DisplayName(), g.Boxes[bi].Name)
			}
		}
	}
	return fmt.Sprintf("Хранилище переполнено — %s отпущен на волю...", p.DisplayName())
}
