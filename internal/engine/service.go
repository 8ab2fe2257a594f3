package engine

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"pocketgrove-server/internal/battle"
	"pocketgrove-server/internal/core/rng"
	"pocketgrove-server/internal/engine/handlers"
	"pocketgrove-server/internal/engine/handlers/actions"
	"pocketgrove-server/internal/evolution"
	"pocketgrove-server/internal/factory"
	"pocketgrove-server/internal/infrastructure/storage"
	"pocketgrove-server/internal/inventory"
	"pocketgrove-server/internal/network"
	"pocketgrove-server/internal/registry"
	"pocketgrove-server/internal/save"
	"pocketgrove-server/pkg/api"
	"pocketgrove-server/pkg/logger"
	"pocketgrove-server/pkg/utils"
)

// GameService — оркестратор игровых подсистем. Держит сессии
// подключённых клиентов и маршрутизирует их команды в хендлеры.
// Всё ядро синхронно: команда обрабатывается целиком под мьютексом
// своей сессии, игрового цикла нет.
type GameService struct {
	services handlers.Services

	Hub *network.Broadcaster

	mu       sync.Mutex
	sessions map[string]*handlers.Session

	handlers map[string]handlers.HandlerFunc
}

// NewService собирает сервис поверх реестров, хранилища и источника
// случайности. Боевой движок и система эволюции делят один видовой
// реестр.
func NewService(reg *registry.Repository, store storage.KV, src *rng.Source) *GameService {
	s := &GameService{
		services: handlers.Services{
			Registry:  reg,
			Factory:   factory.New(reg.Species, reg.Moves, src),
			Battle:    battle.NewEngine(reg.Species, reg.Moves, src),
			Evolution: evolution.New(reg.Species),
			Inventory: inventory.New(reg.Items, reg.Species),
			Saves:     save.NewManager(store),
		},
		Hub:      network.NewBroadcaster(),
		sessions: make(map[string]*handlers.Session),
		handlers: make(map[string]handlers.HandlerFunc),
	}

	s.registerHandlers()
	return s
}

func (s *GameService) registerHandlers() {
	s.handlers["LOGIN"] = handlers.WithEmptyPayload(actions.HandleLogin)
	s.handlers["NEW_GAME"] = handlers.WithPayload(actions.HandleNewGame)
	s.handlers["LOAD_GAME"] = handlers.WithPayload(actions.HandleLoadGame)
	s.handlers["SAVE_GAME"] = handlers.RequireSave(handlers.WithEmptyPayload(actions.HandleSaveGame))
	s.handlers["START_BATTLE"] = handlers.RequireSave(handlers.WithPayload(actions.HandleStartBattle))
	s.handlers["BATTLE_TURN"] = handlers.RequireSave(handlers.WithPayload(actions.HandleBattleTurn))
	s.handlers["CATCH"] = handlers.RequireSave(handlers.WithPayload(actions.HandleCatch))
	s.handlers["USE_ITEM"] = handlers.RequireSave(handlers.WithPayload(actions.HandleUseItem))
	s.handlers["BUY"] = handlers.RequireSave(handlers.WithPayload(actions.HandleBuy))
	s.handlers["SELL"] = handlers.RequireSave(handlers.WithPayload(actions.HandleSell))
	s.handlers["PARTY"] = handlers.RequireSave(handlers.WithEmptyPayload(actions.HandleParty))
}

// Registry возвращает реестры справочных данных.
func (s *GameService) Registry() *registry.Repository {
	return s.services.Registry
}

// Session возвращает сессию токена, создавая её при первом обращении.
func (s *GameService) Session(token string) *handlers.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[token]; ok {
		return sess
	}
	sess := &handlers.Session{Token: token}
	s.sessions[token] = sess
	return sess
}

// CloseSession удаляет сессию токена (отключение клиента).
func (s *GameService) CloseSession(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, token)
}

// SessionCount возвращает число активных сессий.
func (s *GameService) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// ProcessCommand обрабатывает одну команду клиента и возвращает ответ.
func (s *GameService) ProcessCommand(cmd api.ClientCommand) api.ServerResponse {
	sess := s.Session(cmd.Token)

	handler, ok := s.handlers[cmd.Action]
	if !ok {
		logger.WithComponent("engine").WithFields(logrus.Fields{
			"action": cmd.Action,
		}).Warn("Unknown action")
		return errorResponse(cmd.Action, "Неизвестная команда: "+cmd.Action)
	}

	ctx := handlers.Context{Services: s.services, Session: sess}

	res, err := handler(ctx, cmd.Payload)
	if err != nil {
		logger.WithComponent("engine").WithFields(logrus.Fields{
			"action": cmd.Action,
			"token":  cmd.Token,
			"error":  err.Error(),
		}).Error("Command failed")
		return errorResponse(cmd.Action, "Команда отклонена: "+err.Error())
	}

	return s.buildResponse(cmd.Action, sess, res)
}

// buildResponse собирает ответ из результата хендлера и снимков
// состояния сессии.
func (s *GameService) buildResponse(action string, sess *handlers.Session, res handlers.Result) api.ServerResponse {
	out := api.ServerResponse{
		Type:   "RESULT",
		Action: action,
		OK:     res.MsgType != "ERROR",
	}
	if res.MsgType == "ERROR" {
		out.Type = "ERROR"
	}

	now := time.Now().UnixMilli()
	appendLog := func(text, kind string) {
		if text == "" {
			return
		}
		out.Logs = append(out.Logs, api.LogEntry{
			ID:        utils.GenerateID(),
			Text:      text,
			Type:      kind,
			Timestamp: now,
		})
	}

	appendLog(res.Msg, res.MsgType)
	for _, line := range res.Extra {
		appendLog(line, res.MsgType)
	}

	if sess.Save != nil {
		out.Save = s.saveView(sess.Save)
		out.Party = s.partyView(sess.Save)
	}
	if sess.Battle != nil {
		out.Battle = s.battleView(sess.Battle)
	}
	if action == "LOGIN" {
		out.Saves = s.saveSummaries()
	}

	return out
}

func (s *GameService) saveSummaries() []api.SaveSummary {
	all, err := s.services.Saves.All()
	if err != nil {
		logger.WithComponent("engine").WithError(err).Warn("Failed to list saves")
		return nil
	}
	out := make([]api.SaveSummary, 0, len(all))
	for _, g := range all {
		out = append(out, api.SaveSummary{
			Variant:    g.Variant,
			PlayerName: g.PlayerName,
			PlayTime:   save.FormatPlayTime(g.PlaySeconds),
			SavedAt:    g.SavedAt,
		})
	}
	return out
}

func errorResponse(action, msg string) api.ServerResponse {
	return api.ServerResponse{
		Type:   "ERROR",
		Action: action,
		OK:     false,
		Logs: []api.LogEntry{{
			ID:        utils.GenerateID(),
			Text:      msg,
			Type:      "ERROR",
			Timestamp: time.Now().UnixMilli(),
		}},
	}
}
