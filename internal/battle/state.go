package battle

import (
	"pocketgrove-server/internal/domain"
	"pocketgrove-server/pkg/utils"
)

// Outcome — исход боя. Пока бой идёт — OutcomeOngoing.
type Outcome string

const (
	OutcomeOngoing     Outcome = "ongoing"
	OutcomePlayerWin   Outcome = "player-win"
	OutcomeOpponentWin Outcome = "opponent-win"
	OutcomeCaptured    Outcome = "captured"
	OutcomeFled        Outcome = "fled"
)

// ActionKind — тип действия стороны за ход.
type ActionKind string

const (
	ActionMove   ActionKind = "move"
	ActionSwitch ActionKind = "switch"
	ActionItem   ActionKind = "item"
	ActionRun    ActionKind = "run"
)

// Action — выбранное действие одной стороны.
type Action struct {
	Kind ActionKind `json:"kind"`

	// MoveID — приём для ActionMove (или domain.StruggleID).
	MoveID string `json:"moveId,omitempty"`
	// SwitchTo — индекс существа в команде для ActionSwitch.
	SwitchTo int `json:"switchTo,omitempty"`
}

// BattleSide — одна сторона боя: команда боевых обёрток и активный индекс.
type BattleSide struct {
	Party  []*BattlePokemon
	Active int
}

// ActivePokemon возвращает активное существо стороны или nil.
func (s *BattleSide) ActivePokemon() *BattlePokemon {
	if s.Active < 0 || s.Active >= len(s.Party) {
		return nil
	}
	return s.Party[s.Active]
}

// AllFainted сообщает, вся ли команда без сознания.
func (s *BattleSide) AllFainted() bool {
	for _, bp := range s.Party {
		if bp != nil && !bp.Base.IsFainted() {
			return false
		}
	}
	return true
}

// nextAble возвращает индекс следующего боеспособного существа или -1.
func (s *BattleSide) nextAble() int {
	for i, bp := range s.Party {
		if bp != nil && !bp.Base.IsFainted() {
			return i
		}
	}
	return -1
}

// BattleState — состояние одного боя. Создается при старте, мутируется
// ровно один раз за разрешённый ход, терминально при ненулевом Outcome.
type BattleState struct {
	ID string

	Player   BattleSide
	Opponent BattleSide

	Field *FieldEffects

	Turn    int
	Outcome Outcome

	// Wild — бой с диким существом: разрешены поимка и побег.
	Wild bool

	// fleeAttempts — счётчик попыток побега (повышает шанс следующей).
	fleeAttempts int
}

// NewBattle строит бой из двух команд: оборачивает существ, применяет
// способности входа и ловушки к обоим активным. Возвращает состояние
// и журнал входа.
func (e *Engine) NewBattle(playerParty, opponentParty []*domain.Pokemon, wild bool) (*BattleState, []string) {
	st := &BattleState{
		ID:      utils.GenerateID(),
		Field:   NewFieldEffects(),
		Outcome: OutcomeOngoing,
		Wild:    wild,
	}

	for _, p := range playerParty {
		st.Player.Party = append(st.Player.Party, NewBattlePokemon(p))
	}
	for _, p := range opponentParty {
		st.Opponent.Party = append(st.Opponent.Party, NewBattlePokemon(p))
	}

	st.Player.Active = st.Player.nextAble()
	st.Opponent.Active = st.Opponent.nextAble()

	var log []string
	if bp := st.Player.ActivePokemon(); bp != nil {
		log = append(log, e.ApplyOnSwitchIn(bp, st.Field)...)
		log = append(log, e.ApplyEntryHazards(bp, SidePlayer, st.Field)...)
	}
	if bp := st.Opponent.ActivePokemon(); bp != nil {
		log = append(log, e.ApplyOnSwitchIn(bp, st.Field)...)
		log = append(log, e.ApplyEntryHazards(bp, SideOpponent, st.Field)...)
	}

	return st, log
}

// sideOf возвращает сторону и метку для журнала.
func (st *BattleState) sideOf(side Side) *BattleSide {
	if side == SidePlayer {
		return &st.Player
	}
	return &st.Opponent
}
