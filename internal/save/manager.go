// Package save реализует менеджер сохранений: JSON-документ GameSave
// на вариант игры поверх key-value хранилища.
package save

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/infrastructure/storage"
	"pocketgrove-server/pkg/logger"
)

// Стартовая комплектация нового сохранения.
const (
	StartingMoney = 3000

	starterPotionID   = "potion"
	starterBallID     = "pokeball"
	starterItemAmount = 5
)

// keyPrefix отделяет сохранения от прочих записей хранилища.
const keyPrefix = "save:"

// Manager — менеджер сохранений поверх KV.
type Manager struct {
	store storage.KV
}

// NewManager создает менеджер над хранилищем.
func NewManager(store storage.KV) *Manager {
	return &Manager{store: store}
}

// Save сериализует и записывает сохранение под ключом варианта,
// проставляя метку времени.
func (m *Manager) Save(g *domain.GameSave) error {
	if g == nil || g.Variant == "" {
		return fmt.Errorf("save: variant is required")
	}

	g.SavedAt = time.Now().Unix()

	payload, err := json.Marshal(g)
	if err != nil {
		return fmt.Errorf("save %q: marshal: %w", g.Variant, err)
	}
	if err := m.store.Set(keyPrefix+g.Variant, string(payload)); err != nil {
		return fmt.Errorf("save %q: %w", g.Variant, err)
	}

	logger.WithComponent("save").WithFields(logrus.Fields{
		"variant": g.Variant,
		"player":  g.PlayerName,
	}).Info("Game saved")

	return nil
}

// Load читает сохранение варианта. Отсутствующий ключ и испорченный
// payload равнозначны: сохранения нет, возвращается nil без ошибки.
// Ошибка — только отказ самого хранилища.
func (m *Manager) Load(variant string) (*domain.GameSave, error) {
	payload, ok, err := m.store.Get(keyPrefix + variant)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", variant, err)
	}
	if !ok {
		return nil, nil
	}

	var g domain.GameSave
	if err := json.Unmarshal([]byte(payload), &g); err != nil {
		logger.WithComponent("save").WithFields(logrus.Fields{
			"variant": variant,
			"error":   err.Error(),
		}).Warn("Corrupt save payload treated as no save")
		return nil, nil
	}
	return &g, nil
}

// Delete удаляет сохранение варианта.
func (m *Manager) Delete(variant string) error {
	return m.store.Delete(keyPrefix + variant)
}

// All загружает все сохранения. Провал одного варианта (испорченный
// payload или отказ чтения) не прерывает перечисление остальных.
func (m *Manager) All() ([]*domain.GameSave, error) {
	keys, err := m.store.Keys()
	if err != nil {
		return nil, fmt.Errorf("list saves: %w", err)
	}

	var out []*domain.GameSave
	for _, k := range keys {
		if len(k) <= len(keyPrefix) || k[:len(keyPrefix)] != keyPrefix {
			continue
		}
		g, err := m.Load(k[len(keyPrefix):])
		if err != nil || g == nil {
			continue
		}
		out = append(out, g)
	}
	return out, nil
}

// NewSave создает новое сохранение: пустая команда, 14 пустых ящиков
// по 30 слотов, стартовая сумка (5 зелий и 5 шаров), 3000 денег,
// пустые реестры прогресса.
func NewSave(variant, playerName, rivalName, startMap string) *domain.GameSave {
	boxes := make([]domain.StorageBox, domain.BoxCount)
	for i := range boxes {
		boxes[i] = domain.StorageBox{
			Name:  fmt.Sprintf("Ящик %d", i+1),
			Slots: make([]*domain.Pokemon, domain.BoxSize),
		}
	}

	return &domain.GameSave{
		Variant:    variant,
		PlayerName: playerName,
		RivalName:  rivalName,
		Position:   domain.PlayerPosition{Facing: domain.DirDown},
		Boxes:      boxes,
		Bag: []domain.BagItem{
			{ItemID: starterPotionID, Quantity: starterItemAmount},
			{ItemID: starterBallID, Quantity: starterItemAmount},
		},
		Money:      StartingMoney,
		Pokedex:    make(map[string]domain.PokedexEntry),
		StoryFlags: make(map[string]bool),
		CurrentMap: startMap,
	}
}

// FormatPlayTime форматирует игровое время как "часы:минуты"
// с двузначными минутами: 0 -> "0:00", 3661 -> "1:01".
func FormatPlayTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/3600, seconds%3600/60)
}
