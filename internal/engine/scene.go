package engine

import "github.com/google/uuid"

// Scene owns every ticked entity in insertion order. Tick order is the
// order of AddEntity.
type Scene struct {
	Name     string
	Entities []Ticker
	byID     map[uuid.UUID]Ticker
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:     name,
		Entities: make([]Ticker, 0),
		byID:     make(map[uuid.UUID]Ticker),
	}
}

func (s *Scene) AddEntity(t Ticker) {
	if s.byID == nil {
		s.byID = make(map[uuid.UUID]Ticker)
	}
	s.Entities = append(s.Entities, t)
	s.byID[t.Base().ID] = t
}

// ByID returns the entity with the given ID, or nil.
func (s *Scene) ByID(id uuid.UUID) Ticker {
	return s.byID[id]
}

func (s *Scene) FindByName(name string) Ticker {
	for _, e := range s.Entities {
		if e.Base().Name == name {
			return e
		}
	}
	return nil
}

func (s *Scene) FindByKind(kind Kind) []Ticker {
	var result []Ticker
	for _, e := range s.Entities {
		if e.Base().Kind == kind {
			result = append(result, e)
		}
	}
	return result
}

func (s *Scene) Tick(deltaTime float32) {
	for _, e := range s.Entities {
		e.Tick(deltaTime)
	}
}
