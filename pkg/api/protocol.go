package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// ServerResponse это корневой объект, который сервер отправляет клиенту
// в ответ на каждую команду. Содержит результат команды и актуальные
// срезы состояния, которые команда могла изменить.
type ServerResponse struct {
	// Type тип сообщения: "RESULT" для ответа на команду, "ERROR" при
	// отклонённой команде.
	Type string `json:"type"`

	// Action команда, на которую это ответ.
	Action string `json:"action,omitempty"`

	// OK успех команды. При false причина лежит в Logs.
	OK bool `json:"ok"`

	// Logs новые записи журнала, сгенерированные командой.
	Logs []LogEntry `json:"logs,omitempty"`

	// Save снимок сохранения, если команда его изменила.
	Save *SaveView `json:"save,omitempty"`

	// Battle снимок боя, если идёт бой.
	Battle *BattleView `json:"battle,omitempty"`

	// Party команда игрока (для PARTY и после боевых изменений).
	Party []PokemonView `json:"party,omitempty"`

	// Saves список сохранений (ответ на LOGIN).
	Saves []SaveSummary `json:"saves,omitempty"`
}

// LogEntry представляет одну запись в игровом журнале.
type LogEntry struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Type      string `json:"type"`      // INFO, BATTLE, SHOP, ERROR
	Timestamp int64  `json:"timestamp"` // Unix milliseconds
}

// PokemonView это DTO одного существа для клиента.
type PokemonView struct {
	UID       string `json:"uid"`
	SpeciesID string `json:"speciesId"`
	Nickname  string `json:"nickname"`
	Level     int    `json:"level"`
	Exp       int    `json:"exp"`

	CurrentHP int    `json:"currentHp"`
	MaxHP     int    `json:"maxHp"`
	Status    string `json:"status,omitempty"`
	Shiny     bool   `json:"shiny,omitempty"`

	Moves []MoveSlotView `json:"moves"`
}

// MoveSlotView — слот приёма существа.
type MoveSlotView struct {
	MoveID string `json:"moveId"`
	Name   string `json:"name"`
	PP     int    `json:"pp"`
	MaxPP  int    `json:"maxPp"`
}

// BattleView это DTO состояния боя, видимого клиенту.
// Скрытые параметры противника (IV, точные статы) не раскрываются.
type BattleView struct {
	ID      string `json:"id"`
	Turn    int    `json:"turn"`
	Outcome string `json:"outcome"`
	Wild    bool   `json:"wild"`
	Weather string `json:"weather,omitempty"`

	PlayerActive   *PokemonView `json:"playerActive,omitempty"`
	OpponentActive *PokemonView `json:"opponentActive,omitempty"`
}

// SaveView — снимок сохранения для клиента.
type SaveView struct {
	Variant    string `json:"variant"`
	PlayerName string `json:"playerName"`
	RivalName  string `json:"rivalName"`
	Money      int    `json:"money"`
	CurrentMap string `json:"currentMap"`
	PlayTime   string `json:"playTime"` // "часы:минуты"

	Party []PokemonView `json:"party"`
	Bag   []BagSlotView `json:"bag"`

	Badges      []string `json:"badges,omitempty"`
	SeenCount   int      `json:"seenCount"`
	CaughtCount int      `json:"caughtCount"`
}

// BagSlotView — слот сумки.
type BagSlotView struct {
	ItemID   string `json:"itemId"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// SaveSummary — краткая строка списка сохранений.
type SaveSummary struct {
	Variant    string `json:"variant"`
	PlayerName string `json:"playerName"`
	PlayTime   string `json:"playTime"`
	SavedAt    int64  `json:"savedAt"`
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand это корневой объект для всех сообщений от клиента к серверу.
type ClientCommand struct {
	// Token идентификатор сессии. Обязателен только для первого
	// сообщения "LOGIN"; дальше сервер подставляет его сам.
	Token string `json:"token,omitempty"`

	// Action название действия, которое нужно выполнить.
	Action string `json:"action"`

	// Payload JSON-объект с данными для действия. Его структура зависит от Action.
	Payload json.RawMessage `json:"payload"`
}

// --- Payloads ---

// NewGamePayload используется для NEW_GAME.
type NewGamePayload struct {
	Variant    string `json:"variant"`
	PlayerName string `json:"playerName"`
	RivalName  string `json:"rivalName"`
	// StarterID вид стартового существа.
	StarterID string `json:"starterId"`
}

// VariantPayload используется для действий над вариантом игры (LOAD_GAME).
type VariantPayload struct {
	Variant string `json:"variant"`
}

// StartBattlePayload используется для START_BATTLE.
type StartBattlePayload struct {
	// SpeciesID вид дикого существа или первого существа тренера.
	SpeciesID string `json:"speciesId"`
	Level     int    `json:"level"`
	Wild      bool   `json:"wild"`
}

// BattleTurnPayload используется для BATTLE_TURN.
type BattleTurnPayload struct {
	// Kind вид действия: move, switch, run.
	Kind string `json:"kind"`
	// MoveID приём для kind=move.
	MoveID string `json:"moveId,omitempty"`
	// SwitchTo индекс существа для kind=switch.
	SwitchTo int `json:"switchTo,omitempty"`
}

// ItemPayload используется для действий с предметами (CATCH, USE_ITEM, BUY, SELL).
type ItemPayload struct {
	ItemID string `json:"itemId"`
	// Count количество для BUY/SELL.
	Count int `json:"count,omitempty"`
	// PartyIndex цель USE_ITEM в команде.
	PartyIndex int `json:"partyIndex,omitempty"`
}
