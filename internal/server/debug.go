package server

import (
	"encoding/json"
	"net/http"

	"pocketgrove-server/internal/engine"
)

// DebugHandler предоставляет доступ к внутреннему состоянию движка
type DebugHandler struct {
	Service *engine.GameService
}

func NewDebugHandler(s *engine.GameService) *DebugHandler {
	return &DebugHandler{Service: s}
}

// RegisterRoutes регистрирует debug-эндпоинты
func (h *DebugHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/debug/stats", h.handleStats)
	mux.HandleFunc("/debug/registry", h.handleRegistry)
}

// /debug/stats - счётчики сервера
func (h *DebugHandler) handleStats(w http.ResponseWriter, r *http.Request) {
	type StatsSummary struct {
		Sessions    int `json:"sessions"`
		Subscribers int `json:"subscribers"`
	}
	writeJSON(w, StatsSummary{
		Sessions:    h.Service.SessionCount(),
		Subscribers: h.Service.Hub.SubscriberCount(),
	})
}

// /debug/registry - объёмы загруженных реестров
func (h *DebugHandler) handleRegistry(w http.ResponseWriter, r *http.Request) {
	type RegistrySummary struct {
		Moves   int `json:"moves"`
		Species int `json:"species"`
		Items   int `json:"items"`
	}
	reg := h.Service.Registry()
	writeJSON(w, RegistrySummary{
		Moves:   reg.Moves.Len(),
		Species: reg.Species.Len(),
		Items:   reg.Items.Len(),
	})
}

func writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	w.Header().Set("Content-Type", "application/json")

	if data == nil {
		w.Write([]byte("[]"))
		return
	}

	json.NewEncoder(w).Encode(data)
}
