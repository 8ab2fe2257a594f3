package domain

// Stat — адрес одной из шести боевых характеристик.
// Используется калькулятором статов и таблицей природ.
type Stat string

const (
	StatHP        Stat = "hp"
	StatAttack    Stat = "attack"
	StatDefense   Stat = "defense"
	StatSpAttack  Stat = "spAttack"
	StatSpDefense Stat = "spDefense"
	StatSpeed     Stat = "speed"
)

// AllStats — фиксированный порядок обхода характеристик.
// Порядок важен: фабрика бросает IV в этом порядке, чтобы
// результат был воспроизводим при заданном сиде.
var AllStats = [6]Stat{
	StatHP, StatAttack, StatDefense,
	StatSpAttack, StatSpDefense, StatSpeed,
}

// StatBlock — секстет значений характеристик.
// Один и тот же тип используется для базовых статов вида,
// IV, EV и итоговых статов экземпляра.
type StatBlock struct {
	HP        int `json:"hp" yaml:"hp"`
	Attack    int `json:"attack" yaml:"attack"`
	Defense   int `json:"defense" yaml:"defense"`
	SpAttack  int `json:"spAttack" yaml:"spAttack"`
	SpDefense int `json:"spDefense" yaml:"spDefense"`
	Speed     int `json:"speed" yaml:"speed"`
}

// Get возвращает значение характеристики по адресу.
func (b StatBlock) Get(s Stat) int {
	switch s {
	case StatHP:
		return b.HP
	case StatAttack:
		return b.Attack
	case StatDefense:
		return b.Defense
	case StatSpAttack:
		return b.SpAttack
	case StatSpDefense:
		return b.SpDefense
	case StatSpeed:
		return b.Speed
	}
	return 0
}

// Set устанавливает значение характеристики по адресу.
func (b *StatBlock) Set(s Stat, v int) {
	switch s {
	case StatHP:
		b.HP = v
	case StatAttack:
		b.Attack = v
	case StatDefense:
		b.Defense = v
	case StatSpAttack:
		b.SpAttack = v
	case StatSpDefense:
		b.SpDefense = v
	case StatSpeed:
		b.Speed = v
	}
}
