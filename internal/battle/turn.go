package battle

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"pocketgrove-server/internal/domain"
	"pocketgrove-server/pkg/logger"
)

// TurnResult — итог разрешения одного хода.
type TurnResult struct {
	Log     []string
	Outcome Outcome
}

// Приоритеты не-боевых действий. Побег разрешается раньше всего,
// замена и предмет — раньше любого приёма.
const (
	priorityRun    = 8
	prioritySwitch = 6
)

// orderedAction — действие с вычисленным ключом сортировки.
type orderedAction struct {
	side   Side
	action Action
	prio   int
	speed  int
}

// ExecuteTurn разрешает один полный ход боя: упорядочивает действия
// (ярус приоритета, затем эффективная скорость; полная ничья решается
// в пользу игрока — задокументированное правило), исполняет их по
// порядку, применяет остаточные эффекты и тикает погоду. Возвращает
// журнал хода. Упавшее в обморок существо не действует, даже если
// было быстрее.
func (e *Engine) ExecuteTurn(st *BattleState, playerAction, opponentAction Action) *TurnResult {
	res := &TurnResult{Outcome: st.Outcome}
	if st.Outcome != OutcomeOngoing {
		res.Log = append(res.Log, "Бой уже завершён.")
		return res
	}

	st.Turn++

	ordered := e.orderActions(st, playerAction, opponentAction)

	for _, oa := range ordered {
		if st.Outcome != OutcomeOngoing {
			break
		}
		res.Log = append(res.Log, e.executeAction(st, oa.side, oa.action)...)
		e.checkOutcome(st)
	}

	if st.Outcome == OutcomeOngoing {
		res.Log = append(res.Log, e.endOfTurn(st)...)
		e.checkOutcome(st)
	}

	res.Outcome = st.Outcome

	logger.WithComponent("battle").WithFields(logrus.Fields{
		"battle_id": st.ID,
		"turn":      st.Turn,
		"outcome":   st.Outcome,
	}).Debug("Turn resolved")

	return res
}

// orderActions сортирует пару действий по приоритету и скорости.
func (e *Engine) orderActions(st *BattleState, playerAction, opponentAction Action) []orderedAction {
	build := func(side Side, a Action) orderedAction {
		oa := orderedAction{side: side, action: a}
		switch a.Kind {
		case ActionRun:
			oa.prio = priorityRun
		case ActionSwitch, ActionItem:
			oa.prio = prioritySwitch
		case ActionMove:
			if md := e.MoveData(a.MoveID); md != nil {
				oa.prio = md.Priority
			}
		}
		if bp := st.sideOf(side).ActivePokemon(); bp != nil {
			oa.speed = bp.EffectiveStat(domain.StatSpeed)
		}
		return oa
	}

	p := build(SidePlayer, playerAction)
	o := build(SideOpponent, opponentAction)

	// Ярус приоритета, затем скорость; при полной ничьей первым ходит игрок.
	if o.prio > p.prio || (o.prio == p.prio && o.speed > p.speed) {
		return []orderedAction{o, p}
	}
	return []orderedAction{p, o}
}

// executeAction исполняет одно действие. Возвращает журнал.
func (e *Engine) executeAction(st *BattleState, side Side, action Action) []string {
	actor := st.sideOf(side).ActivePokemon()
	if actor == nil {
		return nil
	}

	// Упавший в обморок не действует (замена — единственное исключение:
	// она происходит через автоподстановку, а не через действие).
	if actor.Base.IsFainted() && action.Kind != ActionSwitch {
		return nil
	}

	switch action.Kind {
	case ActionMove:
		return e.resolveMove(st, side, action.MoveID)
	case ActionSwitch:
		return e.resolveSwitch(st, side, action.SwitchTo)
	case ActionItem:
		// Эффект предмета применяет слой инвентаря до разрешения хода;
		// здесь действие лишь занимает ход стороны.
		return []string{fmt.Sprintf("%s использует предмет.", sideLabel(side))}
	case ActionRun:
		return e.resolveRun(st, side)
	}
	return nil
}

// resolveSwitch заменяет активное существо стороны.
func (e *Engine) resolveSwitch(st *BattleState, side Side, to int) []string {
	bs := st.sideOf(side)
	if to < 0 || to >= len(bs.Party) {
		return []string{"Замена невозможна: нет такого существа."}
	}
	next := bs.Party[to]
	if next.Base.IsFainted() {
		return []string{fmt.Sprintf("%s без сознания и не может сражаться.", next.Base.DisplayName())}
	}
	if to == bs.Active {
		return []string{fmt.Sprintf("%s уже в бою.", next.Base.DisplayName())}
	}

	bs.Active = to
	log := []string{fmt.Sprintf("%s вступает в бой!", next.Base.DisplayName())}
	log = append(log, e.ApplyOnSwitchIn(next, st.Field)...)
	log = append(log, e.ApplyEntryHazards(next, side, st.Field)...)
	return log
}

// resolveRun разрешает попытку побега (только из боя с диким существом).
// Шанс побега растёт со скоростью беглеца и числом попыток.
func (e *Engine) resolveRun(st *BattleState, side Side) []string {
	if !st.Wild {
		return []string{"Из боя с тренером не сбежать!"}
	}

	runner := st.sideOf(side).ActivePokemon()
	other := SideOpponent
	if side == SideOpponent {
		other = SidePlayer
	}
	blocker := st.sideOf(other).ActivePokemon()
	if runner == nil || blocker == nil {
		return nil
	}

	st.fleeAttempts++

	a := runner.EffectiveStat(domain.StatSpeed)
	b := blocker.EffectiveStat(domain.StatSpeed)
	if b < 1 {
		b = 1
	}

	f := (a*128/b + 30*st.fleeAttempts) % 256
	if a >= b || e.Rng.Intn(256) < f {
		st.Outcome = OutcomeFled
		return []string{"Удалось сбежать!"}
	}
	return []string{"Сбежать не удалось!"}
}

// resolveMove исполняет приём активного существа стороны side.
func (e *Engine) resolveMove(st *BattleState, side Side, moveID string) []string {
	attacker := st.sideOf(side).ActivePokemon()
	defSide := SideOpponent
	if side == SideOpponent {
		defSide = SidePlayer
	}
	defender := st.sideOf(defSide).ActivePokemon()
	if attacker == nil || defender == nil {
		return nil
	}

	var log []string
	name := attacker.Base.DisplayName()

	// Проверки возможности действовать.
	if skip, msgs := e.checkCanAct(attacker); skip {
		return msgs
	}

	// Без PP на выбранном слоте приём деградирует в Struggle.
	if moveID != domain.StruggleID {
		slot := attacker.Base.FindMove(moveID)
		if slot == nil {
			return []string{fmt.Sprintf("%s не знает этот приём.", name)}
		}
		if slot.PP <= 0 {
			moveID = domain.StruggleID
		} else {
			slot.PP--
		}
	}

	move := e.MoveData(moveID)
	if move == nil {
		return []string{fmt.Sprintf("%s замирает в нерешительности.", name)}
	}

	attacker.LastMoveID = move.ID
	log = append(log, fmt.Sprintf("%s использует %s!", name, move.Name))

	// Точность.
	if !move.AlwaysHits() && e.Rng.Intn(100) >= move.Accuracy {
		log = append(log, "Мимо!")
		return log
	}

	// Поглощение способностью защитника — до расчёта урона.
	if abs := CheckAbilityAbsorption(move, defender.Base.Ability); abs.Absorbed {
		log = append(log, abs.Message)
		if abs.HealFraction > 0 {
			healed := defender.Base.Heal(int(float64(defender.Base.Stats.HP) * abs.HealFraction))
			if healed > 0 {
				log = append(log, fmt.Sprintf("%s восстанавливает %d HP.", defender.Base.DisplayName(), healed))
			}
		}
		return log
	}

	// Урон.
	if move.Category != domain.MoveStatus && move.Power > 0 {
		dr := e.computeDamage(attacker, defender, move, st.Field.Weather)
		if dr.Effectiveness == Immune {
			log = append(log, fmt.Sprintf("На %s это не действует...", defender.Base.DisplayName()))
			return log
		}

		fainted := defender.Base.TakeDamage(dr.Damage)
		log = append(log, damageCommentary(defender.Base.DisplayName(), dr)...)

		// Отдача Struggle — четверть максимума HP атакующего.
		if move.ID == domain.StruggleID {
			recoil := attacker.Base.Stats.HP / 4
			if recoil < 1 {
				recoil = 1
			}
			attacker.Base.TakeDamage(recoil)
			log = append(log, fmt.Sprintf("%s страдает от отдачи (-%d HP)!", name, recoil))
		}

		if fainted {
			log = append(log, fmt.Sprintf("%s падает без сознания!", defender.Base.DisplayName()))
			log = append(log, e.onFaint(st, side, defSide, attacker, defender)...)
			return log
		}
	}

	// Вторичные эффекты: статус и ступени.
	log = append(log, e.applyMoveEffects(attacker, defender, move)...)

	if attacker.Base.IsFainted() {
		log = append(log, fmt.Sprintf("%s падает без сознания!", name))
		log = append(log, e.autoReplace(st, side)...)
	}

	return log
}

// checkCanAct проверяет сон, заморозку, паралич и вздрагивание.
func (e *Engine) checkCanAct(bp *BattlePokemon) (bool, []string) {
	name := bp.Base.DisplayName()

	if bp.HasVolatile(VolatileFlinch) {
		delete(bp.Volatile, VolatileFlinch)
		return true, []string{fmt.Sprintf("%s вздрагивает и теряет ход!", name)}
	}

	switch bp.Base.Status {
	case domain.StatusSleep:
		if bp.SleepTurns > 0 {
			bp.SleepTurns--
			return true, []string{fmt.Sprintf("%s крепко спит.", name)}
		}
		bp.Base.Status = domain.StatusNone
		return false, []string{fmt.Sprintf("%s просыпается!", name)}
	case domain.StatusFreeze:
		// Шанс оттаять 20% за ход.
		if e.Rng.Intn(100) < 20 {
			bp.Base.Status = domain.StatusNone
			return false, []string{fmt.Sprintf("%s оттаивает!", name)}
		}
		return true, []string{fmt.Sprintf("%s вморожен и не может двигаться.", name)}
	case domain.StatusParalysis:
		if e.Rng.Intn(100) < 25 {
			return true, []string{fmt.Sprintf("%s парализован и не может двигаться!", name)}
		}
	}

	return false, nil
}

// applyMoveEffects применяет статус и сдвиги ступеней приёма.
func (e *Engine) applyMoveEffects(attacker, defender *BattlePokemon, move *domain.MoveData) []string {
	var log []string

	if move.Status != domain.StatusNone && !defender.Base.IsFainted() {
		chance := move.StatusChance
		if move.Category == domain.MoveStatus && chance == 0 {
			chance = 100
		}
		if chance > 0 && e.Rng.Intn(100) < chance {
			log = append(log, e.applyStatus(defender, move.Status)...)
		}
	}

	// Вздрагивание действует только до конца текущего хода: если цель
	// уже ходила, endOfTurn его снимет.
	if move.FlinchChance > 0 && move.Category != domain.MoveStatus && !defender.Base.IsFainted() {
		if e.Rng.Intn(100) < move.FlinchChance {
			defender.Volatile[VolatileFlinch] = 1
		}
	}

	for _, sc := range move.StatChanges {
		target := defender
		if sc.Target == domain.ChangeSelf {
			target = attacker
		}
		if target.Base.IsFainted() {
			continue
		}
		applied := target.ModifyStage(sc.Stat, sc.Stages)
		tname := target.Base.DisplayName()
		switch {
		case applied > 0:
			log = append(log, fmt.Sprintf("%s: %s повышается!", tname, statLabel(sc.Stat)))
		case applied < 0:
			log = append(log, fmt.Sprintf("%s: %s понижается!", tname, statLabel(sc.Stat)))
		default:
			log = append(log, fmt.Sprintf("%s: дальше некуда!", tname))
		}
	}

	return log
}

// applyStatus накладывает персистентный статус с учётом иммунитетов типов.
func (e *Engine) applyStatus(target *BattlePokemon, status domain.StatusCondition) []string {
	p := target.Base
	name := p.DisplayName()

	if p.Status != domain.StatusNone {
		return nil
	}

	for _, t := range e.typesOf(p) {
		switch {
		case status == domain.StatusBurn && t == "fire",
			status == domain.StatusPoison && (t == "poison" || t == "steel"),
			status == domain.StatusParalysis && t == "electric",
			status == domain.StatusFreeze && t == "ice":
			return []string{fmt.Sprintf("На %s это не действует...", name)}
		}
	}

	p.Status = status
	if status == domain.StatusSleep {
		target.SleepTurns = e.Rng.Between(1, 3)
	}

	return []string{fmt.Sprintf("%s получает статус: %s!", name, statusLabel(status))}
}

// onFaint обрабатывает обморок защитника: опыт и EV победителю
// (только когда побеждает игрок), автозамена у проигравшей стороны.
func (e *Engine) onFaint(st *BattleState, winSide, loseSide Side, winner, loser *BattlePokemon) []string {
	var log []string

	if winSide == SidePlayer {
		log = append(log, e.grantFaintRewards(winner.Base, loser.Base)...)
	}

	log = append(log, e.autoReplace(st, loseSide)...)
	return log
}

// autoReplace подставляет следующее боеспособное существо стороны,
// если активное упало. Вход нового существа проходит через способности
// и ловушки, как обычная замена.
func (e *Engine) autoReplace(st *BattleState, side Side) []string {
	bs := st.sideOf(side)
	active := bs.ActivePokemon()
	if active != nil && !active.Base.IsFainted() {
		return nil
	}

	next := bs.nextAble()
	if next < 0 {
		return nil
	}

	bs.Active = next
	bp := bs.Party[next]
	log := []string{fmt.Sprintf("%s вступает в бой!", bp.Base.DisplayName())}
	log = append(log, e.ApplyOnSwitchIn(bp, st.Field)...)
	log = append(log, e.ApplyEntryHazards(bp, side, st.Field)...)
	return log
}

// endOfTurn применяет остаточные эффекты и тикает погоду.
func (e *Engine) endOfTurn(st *BattleState) []string {
	var log []string

	for _, side := range []Side{SidePlayer, SideOpponent} {
		bp := st.sideOf(side).ActivePokemon()
		if bp == nil || bp.Base.IsFainted() {
			continue
		}
		p := bp.Base
		name := p.DisplayName()

		switch p.Status {
		case domain.StatusBurn:
			dmg := maxInt(1, p.Stats.HP/16)
			p.TakeDamage(dmg)
			log = append(log, fmt.Sprintf("%s страдает от ожога (-%d HP).", name, dmg))
		case domain.StatusPoison:
			dmg := maxInt(1, p.Stats.HP/8)
			p.TakeDamage(dmg)
			log = append(log, fmt.Sprintf("%s страдает от яда (-%d HP).", name, dmg))
		}

		if !p.IsFainted() && weatherChips(st.Field.Weather, e.typesOf(p)) {
			dmg := maxInt(1, p.Stats.HP/16)
			p.TakeDamage(dmg)
			log = append(log, fmt.Sprintf("%s треплет непогода (-%d HP).", name, dmg))
		}

		if p.IsFainted() {
			log = append(log, fmt.Sprintf("%s падает без сознания!", name))
		}

		// Тик волатильных состояний с конечной длительностью.
		for v, turns := range bp.Volatile {
			if turns > 1 {
				bp.Volatile[v] = turns - 1
			} else if turns == 1 {
				delete(bp.Volatile, v)
			}
		}
	}

	for _, side := range []Side{SidePlayer, SideOpponent} {
		log = append(log, e.autoReplace(st, side)...)
	}

	if st.Field.tickWeather() {
		log = append(log, "Погода проясняется.")
	}

	return log
}

// weatherChips сообщает, бьёт ли погода существо с данными типами.
func weatherChips(w Weather, types []string) bool {
	immune := map[string]bool{}
	switch w {
	case WeatherSandstorm:
		immune = map[string]bool{"rock": true, "ground": true, "steel": true}
	case WeatherSnow:
		immune = map[string]bool{"ice": true}
	default:
		return false
	}
	for _, t := range types {
		if immune[t] {
			return false
		}
	}
	return true
}

// checkOutcome выставляет исход, если одна из сторон полностью пала.
func (e *Engine) checkOutcome(st *BattleState) {
	if st.Outcome != OutcomeOngoing {
		return
	}
	switch {
	case st.Opponent.AllFainted():
		st.Outcome = OutcomePlayerWin
	case st.Player.AllFainted():
		st.Outcome = OutcomeOpponentWin
	}
}

func damageCommentary(targetName string, dr DamageResult) []string {
	log := []string{fmt.Sprintf("%s получает %d урона.", targetName, dr.Damage)}
	if dr.Critical {
		log = append(log, "Критический удар!")
	}
	switch {
	case dr.Effectiveness >= Super:
		log = append(log, "Это очень эффективно!")
	case dr.Effectiveness > 0 && dr.Effectiveness < Neutral:
		log = append(log, "Это не очень эффективно...")
	}
	return log
}

func sideLabel(side Side) string {
	if side == SidePlayer {
		return "Игрок"
	}
	return "Противник"
}

func statLabel(s domain.Stat) string {
	switch s {
	case domain.StatAttack:
		return "атака"
	case domain.StatDefense:
		return "защита"
	case domain.StatSpAttack:
		return "спец. атака"
	case domain.StatSpDefense:
		return "спец. защита"
	case domain.StatSpeed:
		return "скорость"
	}
	return string(s)
}

func statusLabel(s domain.StatusCondition) string {
	switch s {
	case domain.StatusBurn:
		return "ожог"
	case domain.StatusPoison:
		return "отравление"
	case domain.StatusParalysis:
		return "паралич"
	case domain.StatusSleep:
		return "сон"
	case domain.StatusFreeze:
		return "заморозка"
	}
	return string(s)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
