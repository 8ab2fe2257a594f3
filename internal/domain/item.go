package domain

// ItemCategory — категория предмета в сумке.
type ItemCategory string

const (
	ItemCategoryMedicine ItemCategory = "medicine"
	ItemCategoryBall     ItemCategory = "ball"
	ItemCategoryKey      ItemCategory = "key"
	ItemCategoryBattle   ItemCategory = "battle"
	ItemCategoryMisc     ItemCategory = "misc"
)

// EffectKind — тип эффекта предмета. Определяет ветку диспетчера UseItem.
type EffectKind string

const (
	EffectNone       EffectKind = ""
	EffectHealHP     EffectKind = "heal"
	EffectCureStatus EffectKind = "cure"
	EffectRevive     EffectKind = "revive"
	EffectRestorePP  EffectKind = "restore-pp"
	EffectRareCandy  EffectKind = "rare-candy"
	EffectBall       EffectKind = "ball"
)

// ItemEffect — типизированный дескриптор эффекта предмета.
// Заполняются только поля ветки, соответствующей Kind.
type ItemEffect struct {
	Kind EffectKind `json:"kind,omitempty" yaml:"kind,omitempty"`

	// HealAmount — сколько HP восстанавливает EffectHealHP.
	HealAmount int `json:"healAmount,omitempty" yaml:"healAmount,omitempty"`
	// CuresStatus — дополнительно снимаемый статус (для heal)
	// или снимаемый статус (для cure). StatusAll — любой статус.
	CuresStatus StatusCondition `json:"curesStatus,omitempty" yaml:"curesStatus,omitempty"`

	// ReviveFraction — доля максимума HP при оживлении (0.5 — половина).
	ReviveFraction float64 `json:"reviveFraction,omitempty" yaml:"reviveFraction,omitempty"`

	// BallMultiplier — множитель шанса поимки для EffectBall.
	BallMultiplier float64 `json:"ballMultiplier,omitempty" yaml:"ballMultiplier,omitempty"`
}

// ItemData — справочные данные предмета. Неизменяемые данные реестра.
type ItemData struct {
	ID       string       `json:"id" yaml:"id"`
	Name     string       `json:"name" yaml:"name"`
	Category ItemCategory `json:"category" yaml:"category"`
	Price    int          `json:"price" yaml:"price"`

	// KeyItem — сюжетный предмет: не продаётся и не расходуется.
	KeyItem bool `json:"keyItem,omitempty" yaml:"keyItem,omitempty"`

	Effect ItemEffect `json:"effect,omitempty" yaml:"effect,omitempty"`
}

// BagItem — слот сумки. Quantity строго положителен:
// слот с нулевым количеством удаляется, а не хранится.
type BagItem struct {
	ItemID   string `json:"itemId"`
	Quantity int    `json:"quantity"`
}
