// Package inventory реализует сумку игрока, применение предметов к
// существам и магазинные операции. Все функции чистые: сумка и деньги
// передаются значениями, возвращается новое состояние и структурный
// результат вместо ошибок.
package inventory

import (
	"fmt"

	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/registry"
	"pocketgrove-server/internal/stats"
)

// System — инвентарь поверх реестров предметов и видов. Видовой
// реестр нужен пересчёту статов после Rare Candy.
type System struct {
	Items   *registry.Items
	Species *registry.Species
}

// New создает систему инвентаря.
func New(items *registry.Items, species *registry.Species) *System {
	return &System{Items: items, Species: species}
}

// AddItem добавляет количество в слот предмета, создавая слот при
// необходимости. Неположительное количество сумку не меняет.
func AddItem(bag []domain.BagItem, itemID string, qty int) []domain.BagItem {
	if qty <= 0 {
		return bag
	}
	for i := range bag {
		if bag[i].ItemID == itemID {
			out := make([]domain.BagItem, len(bag))
			copy(out, bag)
			out[i].Quantity += qty
			return out
		}
	}
	out := make([]domain.BagItem, len(bag), len(bag)+1)
	copy(out, bag)
	return append(out, domain.BagItem{ItemID: itemID, Quantity: qty})
}

// RemoveItem списывает количество из слота. Слот, ушедший в ноль или
// ниже, удаляется из сумки целиком.
func RemoveItem(bag []domain.BagItem, itemID string, qty int) []domain.BagItem {
	if qty <= 0 {
		return bag
	}
	out := make([]domain.BagItem, 0, len(bag))
	for _, slot := range bag {
		if slot.ItemID == itemID {
			slot.Quantity -= qty
			if slot.Quantity <= 0 {
				continue
			}
		}
		out = append(out, slot)
	}
	return out
}

// Quantity возвращает количество предмета в сумке (0 — нет слота).
func Quantity(bag []domain.BagItem, itemID string) int {
	for _, slot := range bag {
		if slot.ItemID == itemID {
			return slot.Quantity
		}
	}
	return 0
}

// ByCategory возвращает слоты сумки, чьи предметы принадлежат категории.
// Порядок слотов сумки сохраняется; неизвестные предметы пропускаются.
func (s *System) ByCategory(bag []domain.BagItem, cat domain.ItemCategory) []domain.BagItem {
	var out []domain.BagItem
	for _, slot := range bag {
		if item := s.Items.Get(slot.ItemID); item != nil && item.Category == cat {
			out = append(out, slot)
		}
	}
	return out
}

// UseResult — структурный итог применения предмета.
type UseResult struct {
	OK      bool             `json:"ok"`
	Bag     []domain.BagItem `json:"bag"`
	Message string           `json:"message"`
}

// UseItem применяет предмет к существу. Диспетчеризация по дескриптору
// эффекта; каждая ветка валидирует своё предусловие и при провале
// возвращает исходную сумку с пояснением. Успешное применение
// списывает одну единицу предмета.
func (s *System) UseItem(bag []domain.BagItem, itemID string, target *domain.Pokemon) UseResult {
	fail := func(msg string) UseResult {
		return UseResult{OK: false, Bag: bag, Message: msg}
	}

	item := s.Items.Get(itemID)
	if item == nil {
		return fail("Неизвестный предмет.")
	}
	if Quantity(bag, itemID) < 1 {
		return fail(fmt.Sprintf("В сумке нет: %s.", item.Name))
	}
	if target == nil {
		return fail("Не выбрана цель.")
	}

	var msg string
	switch item.Effect.Kind {
	case domain.EffectHealHP:
		if target.IsFainted() {
			return fail(fmt.Sprintf("%s без сознания — нужно оживление.", target.DisplayName()))
		}
		if target.CurrentHP >= target.Stats.HP {
			return fail(fmt.Sprintf("%s уже полностью здоров.", target.DisplayName()))
		}
		healed := target.Heal(item.Effect.HealAmount)
		msg = fmt.Sprintf("%s восстанавливает %d HP.", target.DisplayName(), healed)
		if item.Effect.CuresStatus != domain.StatusNone && target.Status != domain.StatusNone {
			if item.Effect.CuresStatus == domain.StatusAll || item.Effect.CuresStatus == target.Status {
				target.Status = domain.StatusNone
				msg += " Статус снят."
			}
		}

	case domain.EffectCureStatus:
		if target.Status == domain.StatusNone {
			return fail(fmt.Sprintf("У %s нет статуса.", target.DisplayName()))
		}
		if item.Effect.CuresStatus != domain.StatusAll && item.Effect.CuresStatus != target.Status {
			return fail(fmt.Sprintf("%s не снимает этот статус.", item.Name))
		}
		target.Status = domain.StatusNone
		msg = fmt.Sprintf("%s избавляется от статуса.", target.DisplayName())

	case domain.EffectRevive:
		if !target.IsFainted() {
			return fail(fmt.Sprintf("%s в сознании — оживление не нужно.", target.DisplayName()))
		}
		hp := int(float64(target.Stats.HP) * item.Effect.ReviveFraction)
		if hp < 1 {
			hp = 1
		}
		target.CurrentHP = hp
		msg = fmt.Sprintf("%s приходит в себя с %d HP!", target.DisplayName(), hp)

	case domain.EffectRestorePP:
		restored := 0
		for i := range target.Moves {
			restored += target.Moves[i].MaxPP - target.Moves[i].PP
			target.Moves[i].PP = target.Moves[i].MaxPP
		}
		if restored == 0 {
			return fail(fmt.Sprintf("У %s все приёмы заряжены.", target.DisplayName()))
		}
		msg = fmt.Sprintf("%s восстанавливает PP всех приёмов.", target.DisplayName())

	case domain.EffectRareCandy:
		if target.Level >= domain.MaxLevel {
			return fail(fmt.Sprintf("%s уже на максимальном уровне.", target.DisplayName()))
		}
		target.Level++
		if sd := s.Species.Get(target.SpeciesID); sd != nil {
			target.Exp = domain.ExpForLevel(sd.GrowthRate, target.Level)
			stats.Recalculate(target, sd.BaseStats)
		}
		msg = fmt.Sprintf("%s достигает уровня %d!", target.DisplayName(), target.Level)

	case domain.EffectBall:
		// Шары применяются боевым движком через AttemptCatch.
		return fail("Шар можно бросить только в бою.")

	default:
		return fail(fmt.Sprintf("%s так использовать нельзя.", item.Name))
	}

	return UseResult{OK: true, Bag: RemoveItem(bag, itemID, 1), Message: msg}
}

// CanAfford проверяет, хватит ли денег на покупку.
func (s *System) CanAfford(money int, itemID string, qty int) bool {
	item := s.Items.Get(itemID)
	if item == nil || qty <= 0 {
		return false
	}
	return money >= item.Price*qty
}

// ShopResult — итог магазинной операции.
type ShopResult struct {
	OK      bool             `json:"ok"`
	Bag     []domain.BagItem `json:"bag"`
	Money   int              `json:"money"`
	Message string           `json:"message"`
}

// Buy покупает qty единиц предмета. Частичных покупок нет: либо денег
// хватает на всё количество, либо операция отклоняется целиком.
func (s *System) Buy(bag []domain.BagItem, money int, itemID string, qty int) ShopResult {
	fail := func(msg string) ShopResult {
		return ShopResult{OK: false, Bag: bag, Money: money, Message: msg}
	}

	item := s.Items.Get(itemID)
	if item == nil {
		return fail("Такого товара нет.")
	}
	if qty <= 0 {
		return fail("Укажите количество.")
	}
	total := item.Price * qty
	if money < total {
		return fail(fmt.Sprintf("Не хватает денег: нужно %d.", total))
	}

	return ShopResult{
		OK:      true,
		Bag:     AddItem(bag, itemID, qty),
		Money:   money - total,
		Message: fmt.Sprintf("Куплено: %s x%d за %d.", item.Name, qty, total),
	}
}

// Sell продаёт qty единиц предмета за половину прейскурантной цены.
// Сюжетные предметы не продаются.
func (s *System) Sell(bag []domain.BagItem, money int, itemID string, qty int) ShopResult {
	fail := func(msg string) ShopResult {
		return ShopResult{OK: false, Bag: bag, Money: money, Message: msg}
	}

	item := s.Items.Get(itemID)
	if item == nil {
		return fail("Такого предмета нет.")
	}
	if item.KeyItem {
		return fail(fmt.Sprintf("%s нельзя продать.", item.Name))
	}
	if qty <= 0 {
		return fail("Укажите количество.")
	}
	if Quantity(bag, itemID) < qty {
		return fail(fmt.Sprintf("В сумке нет столько: %s.", item.Name))
	}

	credit := item.Price / 2 * qty

	return ShopResult{
		OK:      true,
		Bag:     RemoveItem(bag, itemID, qty),
		Money:   money + credit,
		Message: fmt.Sprintf("Продано: %s x%d за %d.", item.Name, qty, credit),
	}
}
