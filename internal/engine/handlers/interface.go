package handlers

import (
	"encoding/json"

	"pocketgrove-server/internal/battle"
	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/evolution"
	"pocketgrove-server/internal/factory"
	"pocketgrove-server/internal/inventory"
	"pocketgrove-server/internal/registry"
	"pocketgrove-server/internal/save"
)

// Services — игровые подсистемы, доступные хендлерам. Собирается
// один раз при старте GameService и передается по значению.
type Services struct {
	Registry  *registry.Repository
	Factory   *factory.Factory
	Battle    *battle.Engine
	Evolution *evolution.System
	Inventory *inventory.System
	Saves     *save.Manager
}

// Session — состояние одного подключённого клиента: загруженное
// сохранение и активный бой, если он идёт. Хендлеры мутируют сессию
// напрямую; синхронизацию обеспечивает GameService.
type Session struct {
	Token string

	// Save — загруженное сохранение. nil до NEW_GAME/LOAD_GAME.
	Save *domain.GameSave

	// Battle — активный бой. nil вне боя.
	Battle *battle.BattleState

	// WildTarget — дикое существо активного боя (цель поимки).
	WildTarget *domain.Pokemon
}

// InBattle сообщает, идёт ли в сессии незавершённый бой.
func (s *Session) InBattle() bool {
	return s.Battle != nil && s.Battle.Outcome == battle.OutcomeOngoing
}

// Context передает хендлеру подсистемы и сессию клиента.
type Context struct {
	Services
	Session *Session
}

// Result - возвращает результат выполнения команды.
// Хендлер НЕ пишет в журнал сервиса напрямую, он возвращает данные.
type Result struct {
	Msg     string // Текст лога
	MsgType string // Тип лога (INFO, BATTLE, SHOP, ERROR)

	// Extra — дополнительные строки журнала (боевой лог хода).
	Extra []string
}

// HandlerFunc - это контракт для любой команды (NEW_GAME, BATTLE_TURN, etc).
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// EmptyResult - вспомогательная функция для пустого успешного ответа
func EmptyResult() Result {
	return Result{}
}
