package domain

// MoveCategory — класс приёма: физический, специальный или статусный.
type MoveCategory string

const (
	MovePhysical MoveCategory = "physical"
	MoveSpecial  MoveCategory = "special"
	MoveStatus   MoveCategory = "status"
)

// MoveData — справочные данные приёма. Неизменяемые данные реестра.
type MoveData struct {
	ID       string       `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Type     string       `json:"type" yaml:"type"`
	Category MoveCategory `json:"category" yaml:"category"`

	// Power — базовая мощность. 0 для статусных приёмов.
	Power int `json:"power" yaml:"power"`
	// Accuracy — точность в процентах. 0 трактуется как «всегда попадает».
	Accuracy int `json:"accuracy" yaml:"accuracy"`
	// MaxPP — запас очков приёма.
	MaxPP int `json:"maxPp" yaml:"maxPp"`
	// Priority — приоритетный ярус хода (-7..+5, обычно 0).
	Priority int `json:"priority" yaml:"priority"`

	// Status — статус, который приём может наложить на цель.
	Status StatusCondition `json:"status,omitempty" yaml:"status,omitempty"`
	// StatusChance — шанс наложения статуса в процентах.
	// Для чисто статусных приёмов со Status != "" подразумевается 100.
	StatusChance int `json:"statusChance,omitempty" yaml:"statusChance,omitempty"`

	// FlinchChance — шанс вздрагивания цели в процентах (только для
	// атакующих приёмов).
	FlinchChance int `json:"flinchChance,omitempty" yaml:"flinchChance,omitempty"`

	// StatChanges — сдвиги ступеней характеристик, применяемые приёмом.
	StatChanges []StatChange `json:"statChanges,omitempty" yaml:"statChanges,omitempty"`
}

// StatChangeTarget — на кого направлен сдвиг ступени.
type StatChangeTarget string

const (
	ChangeSelf StatChangeTarget = "self"
	ChangeFoe  StatChangeTarget = "foe"
)

// StatChange — один сдвиг ступени характеристики.
type StatChange struct {
	Stat   Stat             `json:"stat" yaml:"stat"`
	Stages int              `json:"stages" yaml:"stages"`
	Target StatChangeTarget `json:"target" yaml:"target"`
}

// AlwaysHits сообщает, игнорирует ли приём проверку точности.
func (m MoveData) AlwaysHits() bool {
	return m.Accuracy <= 0
}

// StruggleID — идентификатор резервного приёма, используемого,
// когда у существа не осталось PP ни на одном слоте.
const StruggleID = "struggle"

// Struggle — резервный приём. Не входит в реестр и не расходует PP.
var Struggle = MoveData{
	ID:       StruggleID,
	Name:     "Struggle",
	Type:     "normal",
	Category: MovePhysical,
	Power:    50,
	Accuracy: 0,
	MaxPP:    1,
}

// LearnsetEntry — одна запись таблицы изучения приёмов вида.
// На одном уровне может быть несколько записей.
type LearnsetEntry struct {
	Level  int    `json:"level" yaml:"level"`
	MoveID string `json:"moveId" yaml:"moveId"`
}
