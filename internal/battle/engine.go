// Package battle реализует пошаговую машину боя: построение боевых
// обёрток, полевые эффекты, разрешение хода, выбор приёма противника,
// формулу поимки и начисление опыта.
//
// Движок не владеет глобальным состоянием: реестры и источник
// случайности передаются при создании, все операции — чистые
// преобразования (state, action) -> (state, log).
package battle

import (
	"pocketgrove-server/internal/core/rng"
	"pocketgrove-server/internal/domain"
	"pocketgrove-server/internal/registry"
)

// Engine — боевой движок. Реестр видов общий с системой эволюции:
// двух независимых таблиц видов в процессе не существует.
type Engine struct {
	Species *registry.Species
	Moves   *registry.Moves
	Rng     *rng.Source
}

// NewEngine создает движок поверх реестров и источника случайности.
func NewEngine(species *registry.Species, moves *registry.Moves, src *rng.Source) *Engine {
	return &Engine{Species: species, Moves: moves, Rng: src}
}

// MoveData возвращает данные приёма, понимая резервный Struggle.
// Для неизвестного ID возвращает nil.
func (e *Engine) MoveData(id string) *domain.MoveData {
	if id == domain.StruggleID {
		m := domain.Struggle
		return &m
	}
	return e.Moves.Get(id)
}

// speciesOf возвращает данные вида существа или nil.
func (e *Engine) speciesOf(p *domain.Pokemon) *domain.SpeciesData {
	return e.Species.Get(p.SpeciesID)
}

// typesOf возвращает типы существа (пустой срез для незарегистрированного вида).
func (e *Engine) typesOf(p *domain.Pokemon) []string {
	sd := e.speciesOf(p)
	if sd == nil {
		return nil
	}
	return sd.Types
}
