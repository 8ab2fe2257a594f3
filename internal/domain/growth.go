package domain

// GrowthRate — категория кривой опыта вида.
type GrowthRate string

const (
	GrowthFast       GrowthRate = "fast"
	GrowthMediumFast GrowthRate = "medium-fast"
	GrowthMediumSlow GrowthRate = "medium-slow"
	GrowthSlow       GrowthRate = "slow"
)

// MaxLevel — потолок уровня существа.
const MaxLevel = 100

// ExpForLevel возвращает суммарный опыт, необходимый для достижения уровня.
// Формулы стандартные для каждой кривой; для уровня 1 всегда 0.
// Неизвестная категория трактуется как medium-fast (кубическая кривая).
func ExpForLevel(rate GrowthRate, level int) int {
	if level <= 1 {
		return 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	n := level

	switch rate {
	case GrowthFast:
		return 4 * n * n * n / 5
	case GrowthSlow:
		return 5 * n * n * n / 4
	case GrowthMediumSlow:
		// На низких уровнях формула уходит в минус, поэтому срезаем в ноль.
		v := 6*n*n*n/5 - 15*n*n + 100*n - 140
		if v < 0 {
			v = 0
		}
		return v
	default: // medium-fast
		return n * n * n
	}
}

// LevelForExp возвращает максимальный уровень, порог которого уже достигнут.
// Обратная функция к ExpForLevel, линейный проход по 100 уровням.
func LevelForExp(rate GrowthRate, exp int) int {
	level := 1
	for l := 2; l <= MaxLevel; l++ {
		if exp >= ExpForLevel(rate, l) {
			level = l
		} else {
			break
		}
	}
	return level
}
