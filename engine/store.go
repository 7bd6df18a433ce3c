package engine

import (
	"sync"

	"github.com/lixenwraith/bounce/core"
)

// Store holds one component type for the arena
// Values sit in a dense slice in insertion order; index maps an entity to its slot
type Store[T any] struct {
	mu    sync.RWMutex
	index map[core.Entity]int
	slots []slot[T]
}

type slot[T any] struct {
	entity core.Entity
	value  T
}

// NewStore creates an empty store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index: make(map[core.Entity]int),
		slots: make([]slot[T], 0, 64),
	}
}

// Add attaches val to e, replacing any previous value in the same slot
func (s *Store[T]) Add(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.slots[i].value = val
		return
	}
	s.index[e] = len(s.slots)
	s.slots = append(s.slots, slot[T]{entity: e, value: val})
}

// Get returns a copy of e's value
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.slots[i].value, true
}

func (s *Store[T]) Has(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

func (s *Store[T]) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.slots)
}

// Entities returns the owners in insertion order; the slice is the caller's
func (s *Store[T]) Entities() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]core.Entity, len(s.slots))
	for i := range s.slots {
		out[i] = s.slots[i].entity
	}
	return out
}

// Each hands fn a pointer to every value in insertion order, mutations stick
// The store is write-locked for the whole walk; fn must not call back into it
func (s *Store[T]) Each(fn func(core.Entity, *T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.slots {
		fn(s.slots[i].entity, &s.slots[i].value)
	}
}

// Range is the read-only walk of Each
func (s *Store[T]) Range(fn func(core.Entity, T)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.slots {
		fn(s.slots[i].entity, s.slots[i].value)
	}
}

// Drop detaches every listed entity, survivors keep their relative order
// Unknown entities are ignored
func (s *Store[T]) Drop(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hit := false
	for _, e := range entities {
		if _, ok := s.index[e]; ok {
			delete(s.index, e)
			hit = true
		}
	}
	if !hit {
		return
	}

	kept := s.slots[:0]
	for _, sl := range s.slots {
		if _, ok := s.index[sl.entity]; ok {
			s.index[sl.entity] = len(kept)
			kept = append(kept, sl)
		}
	}
	clear(s.slots[len(kept):])
	s.slots = kept
}

// dropper is the type-erased side of Store that World needs for despawn
type dropper interface {
	Drop(entities []core.Entity)
}
