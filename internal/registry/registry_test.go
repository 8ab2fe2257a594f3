package registry

import (
	"testing"

	"pocketgrove-server/internal/domain"
)

func TestMovesReplaceOnSet(t *testing.T) {
	m := NewMoves()
	m.Set([]domain.MoveData{
		{ID: "tackle", Name: "Tackle", MaxPP: 35},
		{ID: "growl", Name: "Growl", MaxPP: 40},
	})

	if m.Get("tackle") == nil {
		t.Fatal("tackle should be registered")
	}

	// A later Set fully replaces, never merges
	m.Set([]domain.MoveData{{ID: "ember", Name: "Ember", MaxPP: 25}})

	if m.Get("tackle") != nil {
		t.Error("tackle should be gone after replacement")
	}
	if m.Get("ember") == nil {
		t.Error("ember should be present after replacement")
	}
	if m.Len() != 1 {
		t.Errorf("Registry size. Got %d, want 1", m.Len())
	}
}

func TestGetUnknownReturnsNil(t *testing.T) {
	if NewMoves().Get("missing") != nil {
		t.Error("Unknown move lookup must return nil")
	}
	if NewSpecies().Get("missing") != nil {
		t.Error("Unknown species lookup must return nil")
	}
	if NewItems().Get("missing") != nil {
		t.Error("Unknown item lookup must return nil")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	s := NewSpecies()
	s.Set([]domain.SpeciesData{{ID: "bulbasaur", Name: "Bulbasaur", Types: []string{"grass"}}})

	got := s.Get("bulbasaur")
	got.Name = "mutated"

	if s.Get("bulbasaur").Name != "Bulbasaur" {
		t.Error("Mutating a lookup result must not affect the registry")
	}
}

func TestSpeciesIDsKeepOrder(t *testing.T) {
	s := NewSpecies()
	s.Set([]domain.SpeciesData{
		{ID: "c", Types: []string{"fire"}},
		{ID: "a", Types: []string{"water"}},
		{ID: "b", Types: []string{"grass"}},
	})

	ids := s.IDs()
	want := []string{"c", "a", "b"}
	for i, id := range want {
		if ids[i] != id {
			t.Fatalf("IDs order. Got %v, want %v", ids, want)
		}
	}
}
