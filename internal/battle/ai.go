package battle

import (
	"pocketgrove-server/internal/domain"
)

// SelectOpponentMove выбирает действие противника. Политика
// детерминирована при данном состоянии: из приёмов с оставшимися PP
// берётся приём с максимальной оценкой урона (мощность x STAB x
// эффективность против текущих типов цели); ничья решается в пользу
// более раннего слота. Без единого доступного приёма — Struggle.
func (e *Engine) SelectOpponentMove(st *BattleState) Action {
	actor := st.Opponent.ActivePokemon()
	target := st.Player.ActivePokemon()
	if actor == nil || target == nil {
		return Action{Kind: ActionMove, MoveID: domain.StruggleID}
	}

	bestID := ""
	bestScore := -1.0

	for _, slot := range actor.Base.Moves {
		if slot.PP <= 0 {
			continue
		}
		md := e.Moves.Get(slot.MoveID)
		if md == nil {
			continue
		}

		score := e.scoreMove(actor, target, md)
		if score > bestScore {
			bestScore = score
			bestID = md.ID
		}
	}

	if bestID == "" {
		return Action{Kind: ActionMove, MoveID: domain.StruggleID}
	}
	return Action{Kind: ActionMove, MoveID: bestID}
}

// scoreMove — оценка приёма без случайности: произведение мощности,
// STAB и эффективности. Статусные приёмы получают малую ненулевую
// оценку, чтобы применяться, когда цель ещё без статуса, а все
// атакующие приёмы бесполезны (иммунитет).
func (e *Engine) scoreMove(actor, target *BattlePokemon, md *domain.MoveData) float64 {
	if md.Category == domain.MoveStatus {
		if md.Status != domain.StatusNone && target.Base.Status == domain.StatusNone {
			return 5
		}
		if len(md.StatChanges) > 0 {
			return 3
		}
		return 0
	}

	score := float64(md.Power)
	for _, t := range e.typesOf(actor.Base) {
		if t == md.Type {
			score *= 1.5
			break
		}
	}
	score *= Effectiveness(md.Type, e.typesOf(target.Base))
	return score
}
