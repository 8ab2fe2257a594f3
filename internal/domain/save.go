package domain

// Параметры хранилища существ.
const (
	BoxCount = 14 // ящиков в хранилище
	BoxSize  = 30 // слотов в одном ящике
)

// Direction — направление взгляда игрока в овермире.
// Движок овермира вне ядра, но позиция входит в сохранение.
type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

// PlayerPosition — позиция и состояние движения игрока.
type PlayerPosition struct {
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Facing Direction `json:"facing"`
}

// StorageBox — один ящик хранилища. Слот nil означает «пусто».
type StorageBox struct {
	Name  string     `json:"name"`
	Slots []*Pokemon `json:"slots"`
}

// PokedexEntry — запись реестра «видели/поймали» по виду.
type PokedexEntry struct {
	Seen   bool `json:"seen"`
	Caught bool `json:"caught"`
}

// GameSave — полное состояние одного прохождения.
// Один документ на вариант игры; сериализуется в JSON как есть
// и обязан байт-в-байт переживать цикл save/load.
type GameSave struct {
	Variant string `json:"variant"`

	PlayerName string `json:"playerName"`
	RivalName  string `json:"rivalName"`

	Position PlayerPosition `json:"position"`

	// Party — активная команда, порядок значим. Лимит в 6 существ
	// обеспечивает слой овермира, ядро его не навязывает.
	Party []*Pokemon   `json:"party"`
	Boxes []StorageBox `json:"boxes"`

	Bag   []BagItem `json:"bag"`
	Money int       `json:"money"`

	Badges []string `json:"badges"`

	Pokedex    map[string]PokedexEntry `json:"pokedex"`
	StoryFlags map[string]bool         `json:"storyFlags"`

	CurrentMap  string `json:"currentMap"`
	PlaySeconds int    `json:"playSeconds"`

	// SavedAt — unix-время последней записи. Проставляется менеджером.
	SavedAt int64 `json:"savedAt"`
}

// MarkSeen отмечает вид как увиденного.
func (g *GameSave) MarkSeen(speciesID string) {
	if g.Pokedex == nil {
		g.Pokedex = make(map[string]PokedexEntry)
	}
	e := g.Pokedex[speciesID]
	e.Seen = true
	g.Pokedex[speciesID] = e
}

// MarkCaught отмечает вид как пойманного (и автоматически увиденного).
func (g *GameSave) MarkCaught(speciesID string) {
	if g.Pokedex == nil {
		g.Pokedex = make(map[string]PokedexEntry)
	}
	g.Pokedex[speciesID] = PokedexEntry{Seen: true, Caught: true}
}

// FirstAblePokemon возвращает первое боеспособное существо команды или nil.
func (g *GameSave) FirstAblePokemon() *Pokemon {
	for _, p := range g.Party {
		if p != nil && !p.IsFainted() {
			return p
		}
	}
	return nil
}
