package domain

// StatusCondition — персистентный статус существа.
// В отличие от волатильных боевых состояний, персистентный статус
// сохраняется между боями и сериализуется вместе с существом.
// Пустая строка означает отсутствие статуса.
type StatusCondition string

const (
	StatusNone      StatusCondition = ""
	StatusBurn      StatusCondition = "burn"
	StatusPoison    StatusCondition = "poison"
	StatusParalysis StatusCondition = "paralysis"
	StatusSleep     StatusCondition = "sleep"
	StatusFreeze    StatusCondition = "freeze"
)

// StatusAll — маркер предметов, снимающих любой статус (Full Heal).
const StatusAll StatusCondition = "all"

// CatchBonus возвращает статусный бонус формулы поимки.
// Сон и заморозка дают x2, остальные статусы x1.5.
func (s StatusCondition) CatchBonus() float64 {
	switch s {
	case StatusSleep, StatusFreeze:
		return 2.0
	case StatusBurn, StatusPoison, StatusParalysis:
		return 1.5
	}
	return 1.0
}
