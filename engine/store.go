package engine

import (
	"sync"

	"github.com/lixenwraith/city-striker/core"
)

// Store holds one component type densely, in insertion order
// Systems depend on that order: the projectile pass hit-tests enemies oldest first, so the
// earliest spawned of two overlapping enemies takes the bullet, and a seeded run replays identically
// Removal compacts in place and never reorders survivors
type Store[T any] struct {
	mu     sync.RWMutex
	dense  []T
	owners []core.Entity
	index  map[core.Entity]int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		dense:  make([]T, 0, 32),
		owners: make([]core.Entity, 0, 32),
		index:  make(map[core.Entity]int),
	}
}

// SetComponent updates e in place, or appends it as the newest entity
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i, ok := s.index[e]; ok {
		s.dense[i] = val
		return
	}
	s.index[e] = len(s.dense)
	s.dense = append(s.dense, val)
	s.owners = append(s.owners, e)
}

func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i, ok := s.index[e]; ok {
		return s.dense[i], true
	}
	var zero T
	return zero, false
}

func (s *Store[T]) HasComponent(e core.Entity) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[e]
	return ok
}

// AllEntity returns a copy of the owners, oldest first
// Callers may mutate the store while ranging over it
func (s *Store[T]) AllEntity() []core.Entity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]core.Entity, len(s.owners))
	copy(out, s.owners)
	return out
}

func (s *Store[T]) CountEntity() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.owners)
}

func (s *Store[T]) RemoveComponent(e core.Entity) {
	s.RemoveBatch([]core.Entity{e})
}

// RemoveBatch drops every listed entity in one compaction pass; unknown entities are ignored
func (s *Store[T]) RemoveBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[core.Entity]struct{}, len(entities))
	for _, e := range entities {
		if _, ok := s.index[e]; ok {
			drop[e] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return
	}

	kept := 0
	for i, e := range s.owners {
		if _, gone := drop[e]; gone {
			delete(s.index, e)
			continue
		}
		s.owners[kept] = e
		s.dense[kept] = s.dense[i]
		s.index[e] = kept
		kept++
	}
	clear(s.dense[kept:])
	s.dense = s.dense[:kept]
	s.owners = s.owners[:kept]
}

// ClearAllComponent empties the store, keeping its capacity for the next run
func (s *Store[T]) ClearAllComponent() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.dense)
	s.dense = s.dense[:0]
	s.owners = s.owners[:0]
	clear(s.index)
}
