// Package registry содержит реестры справочных данных игры: приёмы,
// виды и предметы. Реестры — явные объекты, создаваемые один раз и
// передаваемые по ссылке в фабрику, боевой движок, систему эволюции и
// инвентарь. Видовой реестр ровно один на процесс: движок и эволюция
// делят его, рассинхронизация двух таблиц невозможна.
package registry

import (
	"pocketgrove-server/internal/domain"
)

// Moves — реестр приёмов.
type Moves struct {
	byID map[string]domain.MoveData
}

// NewMoves создает пустой реестр приёмов.
func NewMoves() *Moves {
	return &Moves{byID: make(map[string]domain.MoveData)}
}

// Set полностью замещает содержимое реестра.
// Слияния с прежними данными не происходит: вызывающий обязан
// передать весь набор записей целиком.
func (m *Moves) Set(list []domain.MoveData) {
	m.byID = make(map[string]domain.MoveData, len(list))
	for _, md := range list {
		m.byID[md.ID] = md
	}
}

// Get возвращает приём по ID или nil, если он не зарегистрирован.
func (m *Moves) Get(id string) *domain.MoveData {
	md, ok := m.byID[id]
	if !ok {
		return nil
	}
	return &md
}

// Len возвращает количество записей.
func (m *Moves) Len() int { return len(m.byID) }

// Species — реестр видов.
type Species struct {
	byID  map[string]domain.SpeciesData
	order []string
}

// NewSpecies создает пустой реестр видов.
func NewSpecies() *Species {
	return &Species{byID: make(map[string]domain.SpeciesData)}
}

// Set полностью замещает содержимое реестра.
func (s *Species) Set(list []domain.SpeciesData) {
	s.byID = make(map[string]domain.SpeciesData, len(list))
	s.order = make([]string, 0, len(list))
	for _, sd := range list {
		if _, dup := s.byID[sd.ID]; !dup {
			s.order = append(s.order, sd.ID)
		}
		s.byID[sd.ID] = sd
	}
}

// Get возвращает вид по ID или nil, если он не зарегистрирован.
func (s *Species) Get(id string) *domain.SpeciesData {
	sd, ok := s.byID[id]
	if !ok {
		return nil
	}
	return &sd
}

// IDs возвращает идентификаторы видов в порядке регистрации.
func (s *Species) IDs() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Len возвращает количество записей.
func (s *Species) Len() int { return len(s.byID) }

// Items — реестр предметов.
type Items struct {
	byID map[string]domain.ItemData
}

// NewItems создает пустой реестр предметов.
func NewItems() *Items {
	return &Items{byID: make(map[string]domain.ItemData)}
}

// Set полностью замещает содержимое реестра.
func (i *Items) Set(list []domain.ItemData) {
	i.byID = make(map[string]domain.ItemData, len(list))
	for _, id := range list {
		i.byID[id.ID] = id
	}
}

// Get возвращает предмет по ID или nil, если он не зарегистрирован.
func (i *Items) Get(id string) *domain.ItemData {
	it, ok := i.byID[id]
	if !ok {
		return nil
	}
	return &it
}

// Len возвращает количество записей.
func (i *Items) Len() int { return len(i.byID) }

// Repository объединяет три реестра. Удобная связка для инъекции.
type Repository struct {
	Moves   *Moves
	Species *Species
	Items   *Items
}

// New создает связку пустых реестров.
func New() *Repository {
	return &Repository{
		Moves:   NewMoves(),
		Species: NewSpecies(),
		Items:   NewItems(),
	}
}
