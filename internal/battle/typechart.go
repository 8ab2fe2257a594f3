package battle

// Множители эффективности типов.
const (
	Immune       = 0.0
	NotEffective = 0.5
	Neutral      = 1.0
	Super        = 2.0
)

// typeChart — стандартная таблица эффективности: атакующий тип ->
// защитный тип -> множитель. Отсутствующая пара означает x1.
var typeChart = map[string]map[string]float64{
	"normal": {
		"rock": 0.5, "ghost": 0, "steel": 0.5,
	},
	"fire": {
		"fire": 0.5, "water": 0.5, "grass": 2, "ice": 2, "bug": 2,
		"rock": 0.5, "dragon": 0.5, "steel": 2,
	},
	"water": {
		"fire": 2, "water": 0.5, "grass": 0.5, "ground": 2, "rock": 2,
		"dragon": 0.5,
	},
	"electric": {
		"water": 2, "electric": 0.5, "grass": 0.5, "ground": 0,
		"flying": 2, "dragon": 0.5,
	},
	"grass": {
		"fire": 0.5, "water": 2, "grass": 0.5, "poison": 0.5, "ground": 2,
		"flying": 0.5, "bug": 0.5, "rock": 2, "dragon": 0.5, "steel": 0.5,
	},
	"ice": {
		"fire": 0.5, "water": 0.5, "grass": 2, "ice": 0.5, "ground": 2,
		"flying": 2, "dragon": 2, "steel": 0.5,
	},
	"fighting": {
		"normal": 2, "ice": 2, "poison": 0.5, "flying": 0.5, "psychic": 0.5,
		"bug": 0.5, "rock": 2, "ghost": 0, "dark": 2, "steel": 2, "fairy": 0.5,
	},
	"poison": {
		"grass": 2, "poison": 0.5, "ground": 0.5, "rock": 0.5, "ghost": 0.5,
		"steel": 0, "fairy": 2,
	},
	"ground": {
		"fire": 2, "electric": 2, "grass": 0.5, "poison": 2, "flying": 0,
		"bug": 0.5, "rock": 2, "steel": 2,
	},
	"flying": {
		"electric": 0.5, "grass": 2, "fighting": 2, "bug": 2, "rock": 0.5,
		"steel": 0.5,
	},
	"psychic": {
		"fighting": 2, "poison": 2, "psychic": 0.5, "dark": 0, "steel": 0.5,
	},
	"bug": {
		"fire": 0.5, "grass": 2, "fighting": 0.5, "poison": 0.5, "flying": 0.5,
		"psychic": 2, "ghost": 0.5, "dark": 2, "steel": 0.5, "fairy": 0.5,
	},
	"rock": {
		"fire": 2, "ice": 2, "fighting": 0.5, "ground": 0.5, "flying": 2,
		"bug": 2, "steel": 0.5,
	},
	"ghost": {
		"normal": 0, "psychic": 2, "ghost": 2, "dark": 0.5,
	},
	"dragon": {
		"dragon": 2, "steel": 0.5, "fairy": 0,
	},
	"dark": {
		"fighting": 0.5, "psychic": 2, "ghost": 2, "dark": 0.5, "fairy": 0.5,
	},
	"steel": {
		"fire": 0.5, "water": 0.5, "electric": 0.5, "ice": 2, "rock": 2,
		"steel": 0.5, "fairy": 2,
	},
	"fairy": {
		"fire": 0.5, "fighting": 2, "poison": 0.5, "dragon": 2, "dark": 2,
		"steel": 0.5,
	},
}

// TypeEffectiveness возвращает множитель атаки типа moveType против
// одного защитного типа.
func TypeEffectiveness(moveType, defenderType string) float64 {
	row, ok := typeChart[moveType]
	if !ok {
		return Neutral
	}
	mult, ok := row[defenderType]
	if !ok {
		return Neutral
	}
	return mult
}

// Effectiveness возвращает суммарный множитель против набора защитных
// типов: множители перемножаются (двойной тип может дать x4 или x0.25,
// иммунитет любого из типов обнуляет всё).
func Effectiveness(moveType string, defenderTypes []string) float64 {
	total := Neutral
	for _, dt := range defenderTypes {
		total *= TypeEffectiveness(moveType, dt)
	}
	return total
}
