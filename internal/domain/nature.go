package domain

// Nature — одна из 25 «природ» (характеров) существа.
// Природа усиливает одну характеристику на 10% и ослабляет другую.
// Пять природ нейтральны (усиливают и ослабляют одно и то же).
type Nature string

const (
	NatureHardy   Nature = "hardy"
	NatureLonely  Nature = "lonely"
	NatureBrave   Nature = "brave"
	NatureAdamant Nature = "adamant"
	NatureNaughty Nature = "naughty"
	NatureBold    Nature = "bold"
	NatureDocile  Nature = "docile"
	NatureRelaxed Nature = "relaxed"
	NatureImpish  Nature = "impish"
	NatureLax     Nature = "lax"
	NatureTimid   Nature = "timid"
	NatureHasty   Nature = "hasty"
	NatureSerious Nature = "serious"
	NatureJolly   Nature = "jolly"
	NatureNaive   Nature = "naive"
	NatureModest  Nature = "modest"
	NatureMild    Nature = "mild"
	NatureQuiet   Nature = "quiet"
	NatureBashful Nature = "bashful"
	NatureRash    Nature = "rash"
	NatureCalm    Nature = "calm"
	NatureGentle  Nature = "gentle"
	NatureSassy   Nature = "sassy"
	NatureCareful Nature = "careful"
	NatureQuirky  Nature = "quirky"
)

// natureBias описывает, какую характеристику природа усиливает (Plus)
// и какую ослабляет (Minus). HP природами не затрагивается никогда.
type natureBias struct {
	Plus  Stat
	Minus Stat
}

// Таблица всех 25 природ. Нейтральные природы имеют Plus == Minus.
var natureTable = map[Nature]natureBias{
	NatureHardy:   {StatAttack, StatAttack},
	NatureLonely:  {StatAttack, StatDefense},
	NatureBrave:   {StatAttack, StatSpeed},
	NatureAdamant: {StatAttack, StatSpAttack},
	NatureNaughty: {StatAttack, StatSpDefense},
	NatureBold:    {StatDefense, StatAttack},
	NatureDocile:  {StatDefense, StatDefense},
	NatureRelaxed: {StatDefense, StatSpeed},
	NatureImpish:  {StatDefense, StatSpAttack},
	NatureLax:     {StatDefense, StatSpDefense},
	NatureTimid:   {StatSpeed, StatAttack},
	NatureHasty:   {StatSpeed, StatDefense},
	NatureSerious: {StatSpeed, StatSpeed},
	NatureJolly:   {StatSpeed, StatSpAttack},
	NatureNaive:   {StatSpeed, StatSpDefense},
	NatureModest:  {StatSpAttack, StatAttack},
	NatureMild:    {StatSpAttack, StatDefense},
	NatureQuiet:   {StatSpAttack, StatSpeed},
	NatureBashful: {StatSpAttack, StatSpAttack},
	NatureRash:    {StatSpAttack, StatSpDefense},
	NatureCalm:    {StatSpDefense, StatAttack},
	NatureGentle:  {StatSpDefense, StatDefense},
	NatureSassy:   {StatSpDefense, StatSpeed},
	NatureCareful: {StatSpDefense, StatSpAttack},
	NatureQuirky:  {StatSpDefense, StatSpDefense},
}

// AllNatures — фиксированный список для равномерного выбора фабрикой.
// Порядок стабилен (не из map), чтобы выбор был детерминирован при заданном сиде.
var AllNatures = []Nature{
	NatureHardy, NatureLonely, NatureBrave, NatureAdamant, NatureNaughty,
	NatureBold, NatureDocile, NatureRelaxed, NatureImpish, NatureLax,
	NatureTimid, NatureHasty, NatureSerious, NatureJolly, NatureNaive,
	NatureModest, NatureMild, NatureQuiet, NatureBashful, NatureRash,
	NatureCalm, NatureGentle, NatureSassy, NatureCareful, NatureQuirky,
}

// IsValid проверяет, что значение — одна из 25 известных природ.
func (n Nature) IsValid() bool {
	_, ok := natureTable[n]
	return ok
}

// Modifier возвращает множитель природы для характеристики:
// 1.1 — усиливаемая, 0.9 — ослабляемая, 1.0 — нейтральная.
// Неизвестная природа трактуется как нейтральная.
func (n Nature) Modifier(s Stat) float64 {
	bias, ok := natureTable[n]
	if !ok || bias.Plus == bias.Minus {
		return 1.0
	}
	switch s {
	case bias.Plus:
		return 1.1
	case bias.Minus:
		return 0.9
	}
	return 1.0
}
