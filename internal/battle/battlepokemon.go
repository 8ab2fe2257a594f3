package battle

import (
	"pocketgrove-server/internal/domain"
)

// Границы боевых модификаторов характеристик.
const (
	MinStage = -6
	MaxStage = 6
)

// VolatileCondition — боевое состояние, снимаемое по окончании боя
// (в отличие от персистентного domain.StatusCondition).
type VolatileCondition string

const VolatileFlinch VolatileCondition = "flinch"

// StageBlock — модификаторы характеристик в ступенях [-6..+6].
// HP ступеней не имеет; точность/уклонение здесь не моделируются.
type StageBlock struct {
	Attack    int `json:"attack"`
	Defense   int `json:"defense"`
	SpAttack  int `json:"spAttack"`
	SpDefense int `json:"spDefense"`
	Speed     int `json:"speed"`
}

// BattlePokemon — боевая обёртка над существом. Создается при входе
// в бой, уничтожается по его окончании; всё transient-состояние
// (ступени, волатильные состояния, память о последнем приёме) живёт здесь,
// персистентное (HP, PP, статус) — в Base.
type BattlePokemon struct {
	Base *domain.Pokemon

	Stages   StageBlock
	Volatile map[VolatileCondition]int // состояние -> оставшиеся ходы (0 = бессрочно)

	LastMoveID string

	// SleepTurns — оставшиеся ходы сна (персистентный статус, но счётчик боевой).
	SleepTurns int
}

// NewBattlePokemon оборачивает существо с обнулённым боевым состоянием.
func NewBattlePokemon(p *domain.Pokemon) *BattlePokemon {
	return &BattlePokemon{
		Base:     p,
		Volatile: make(map[VolatileCondition]int),
	}
}

// stageMultiplier переводит ступень в множитель: (2+s)/2 при s>=0, 2/(2-s) при s<0.
func stageMultiplier(stage int) float64 {
	if stage > MaxStage {
		stage = MaxStage
	}
	if stage < MinStage {
		stage = MinStage
	}
	if stage >= 0 {
		return float64(2+stage) / 2.0
	}
	return 2.0 / float64(2-stage)
}

// EffectiveStat возвращает характеристику с учётом ступеней.
// Скорость дополнительно половинится при параличе.
func (bp *BattlePokemon) EffectiveStat(s domain.Stat) int {
	base := bp.Base.Stats.Get(s)

	var stage int
	switch s {
	case domain.StatAttack:
		stage = bp.Stages.Attack
	case domain.StatDefense:
		stage = bp.Stages.Defense
	case domain.StatSpAttack:
		stage = bp.Stages.SpAttack
	case domain.StatSpDefense:
		stage = bp.Stages.SpDefense
	case domain.StatSpeed:
		stage = bp.Stages.Speed
	default:
		return base
	}

	v := int(float64(base) * stageMultiplier(stage))

	if s == domain.StatSpeed && bp.Base.Status == domain.StatusParalysis {
		v /= 2
	}
	if v < 1 {
		v = 1
	}
	return v
}

// ModifyStage сдвигает ступень характеристики, ограничивая её [-6..+6].
// Возвращает фактический сдвиг (0, если упёрлись в границу).
func (bp *BattlePokemon) ModifyStage(s domain.Stat, delta int) int {
	var cur *int
	switch s {
	case domain.StatAttack:
		cur = &bp.Stages.Attack
	case domain.StatDefense:
		cur = &bp.Stages.Defense
	case domain.StatSpAttack:
		cur = &bp.Stages.SpAttack
	case domain.StatSpDefense:
		cur = &bp.Stages.SpDefense
	case domain.StatSpeed:
		cur = &bp.Stages.Speed
	default:
		return 0
	}

	next := *cur + delta
	if next > MaxStage {
		next = MaxStage
	}
	if next < MinStage {
		next = MinStage
	}
	applied := next - *cur
	*cur = next
	return applied
}

// HasVolatile проверяет наличие волатильного состояния.
func (bp *BattlePokemon) HasVolatile(v VolatileCondition) bool {
	_, ok := bp.Volatile[v]
	return ok
}
