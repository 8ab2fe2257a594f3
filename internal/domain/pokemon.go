package domain

// Ограничения экземпляра существа.
const (
	MaxMoves      = 4   // слотов приёмов у существа
	MaxIV         = 31  // верхняя граница «генетического» броска
	MaxEVPerStat  = 252 // потолок EV одной характеристики
	MaxEVTotal    = 510 // суммарный потолок EV
	BaseFriend    = 70  // дружба при создании
	MaxFriendship = 255
)

// PokemonMove — слот приёма существа: ссылка на реестр + запас PP.
type PokemonMove struct {
	MoveID string `json:"moveId"`
	PP     int    `json:"pp"`
	MaxPP  int    `json:"maxPp"`
}

// Pokemon — персистентный экземпляр существа.
// Создаётся фабрикой, мутируется боевым движком (HP, PP, статус, опыт),
// системой эволюции (вид, статы) и инвентарём (лечение, уровень).
type Pokemon struct {
	UID       string `json:"uid"`
	SpeciesID string `json:"speciesId"`
	Nickname  string `json:"nickname,omitempty"`

	Level int `json:"level"`
	Exp   int `json:"exp"`

	Nature Nature    `json:"nature"`
	IVs    StatBlock `json:"ivs"`
	EVs    StatBlock `json:"evs"`

	// Stats — производный секстет. Пересчитывается калькулятором,
	// никогда не правится вручную.
	Stats     StatBlock `json:"stats"`
	CurrentHP int       `json:"currentHp"`

	Moves  []PokemonMove   `json:"moves"`
	Status StatusCondition `json:"status,omitempty"`

	Friendship int    `json:"friendship"`
	Shiny      bool   `json:"shiny,omitempty"`
	Ability    string `json:"ability,omitempty"`

	OriginTrainer string `json:"originTrainer,omitempty"`
	CaughtWith    string `json:"caughtWith,omitempty"`
}

// IsFainted сообщает, без сознания ли существо.
func (p *Pokemon) IsFainted() bool {
	return p.CurrentHP <= 0
}

// Heal восстанавливает HP, не превышая максимум.
// Возвращает фактически восстановленное количество.
func (p *Pokemon) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	before := p.CurrentHP
	p.CurrentHP += amount
	if p.CurrentHP > p.Stats.HP {
		p.CurrentHP = p.Stats.HP
	}
	return p.CurrentHP - before
}

// TakeDamage наносит урон. Возвращает true, если существо упало в обморок.
func (p *Pokemon) TakeDamage(amount int) bool {
	if amount < 0 {
		amount = 0
	}
	p.CurrentHP -= amount
	if p.CurrentHP <= 0 {
		p.CurrentHP = 0
		return true
	}
	return false
}

// FindMove возвращает слот приёма по ID или nil.
func (p *Pokemon) FindMove(moveID string) *PokemonMove {
	for i := range p.Moves {
		if p.Moves[i].MoveID == moveID {
			return &p.Moves[i]
		}
	}
	return nil
}

// HasUsableMove проверяет, остались ли PP хотя бы на одном слоте.
func (p *Pokemon) HasUsableMove() bool {
	for i := range p.Moves {
		if p.Moves[i].PP > 0 {
			return true
		}
	}
	return false
}

// AddEV начисляет EV с учётом потолков (на характеристику и суммарного).
func (p *Pokemon) AddEV(s Stat, amount int) {
	if amount <= 0 {
		return
	}
	total := p.EVs.HP + p.EVs.Attack + p.EVs.Defense +
		p.EVs.SpAttack + p.EVs.SpDefense + p.EVs.Speed
	if total+amount > MaxEVTotal {
		amount = MaxEVTotal - total
	}
	v := p.EVs.Get(s) + amount
	if v > MaxEVPerStat {
		v = MaxEVPerStat
	}
	if v > p.EVs.Get(s) {
		p.EVs.Set(s, v)
	}
}

// AddFriendship изменяет дружбу в пределах [0, MaxFriendship].
func (p *Pokemon) AddFriendship(delta int) {
	p.Friendship += delta
	if p.Friendship < 0 {
		p.Friendship = 0
	}
	if p.Friendship > MaxFriendship {
		p.Friendship = MaxFriendship
	}
}

// DisplayName возвращает кличку, если она задана.
func (p *Pokemon) DisplayName() string {
	if p.Nickname != "" {
		return p.Nickname
	}
	return p.SpeciesID
}
