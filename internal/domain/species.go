package domain

// EvolutionTrigger — тип условия эволюции.
type EvolutionTrigger string

const (
	TriggerLevel EvolutionTrigger = "level"
	TriggerItem  EvolutionTrigger = "item"
	TriggerTrade EvolutionTrigger = "trade"
)

// EvolutionEdge — одно ребро графа эволюций вида.
type EvolutionEdge struct {
	TargetID string           `json:"targetId" yaml:"targetId"`
	Trigger  EvolutionTrigger `json:"trigger" yaml:"trigger"`

	// Level — порог уровня для TriggerLevel.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`
	// ItemID — требуемый предмет для TriggerItem.
	ItemID string `json:"itemId,omitempty" yaml:"itemId,omitempty"`
}

// SpeciesData — справочные данные вида. Неизменяемые данные реестра.
type SpeciesData struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`

	// Types — один или два элементальных типа.
	Types []string `json:"types" yaml:"types"`

	BaseStats StatBlock `json:"baseStats" yaml:"baseStats"`

	// BaseExp — базовый опыт, выдаваемый за победу над видом.
	BaseExp int `json:"baseExp" yaml:"baseExp"`
	// CatchRate — базовая поимчивость (1..255, выше — проще поймать).
	CatchRate int `json:"catchRate" yaml:"catchRate"`

	GrowthRate GrowthRate      `json:"growthRate" yaml:"growthRate"`
	Learnset   []LearnsetEntry `json:"learnset" yaml:"learnset"`
	Evolutions []EvolutionEdge `json:"evolutions,omitempty" yaml:"evolutions,omitempty"`

	SpriteID   string   `json:"spriteId" yaml:"spriteId"`
	Generation int      `json:"generation" yaml:"generation"`
	Abilities  []string `json:"abilities,omitempty" yaml:"abilities,omitempty"`
}

// HasType проверяет принадлежность вида к элементальному типу.
func (s SpeciesData) HasType(t string) bool {
	for _, own := range s.Types {
		if own == t {
			return true
		}
	}
	return false
}
