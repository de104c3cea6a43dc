package engine

import (
	"errors"

	"github.com/lixenwraith/survival-arena/core"
)

// ErrStoreFull is returned when every slot up to the store limit is in use
var ErrStoreFull = errors.New("entity store full")

type slot[T any] struct {
	generation uint32
	alive      bool
	value      T
}

// Store is an arena of T addressed by generational core.Entity handles
// Freed slots are reused; the generation bump makes old handles resolve to nothing
// Owned by the frame loop, no locking
type Store[T any] struct {
	slots []slot[T]
	free  []uint32
	limit int
	live  int
}

// NewStore creates a store holding at most limit live values
func NewStore[T any](limit int) *Store[T] {
	return &Store[T]{
		slots: make([]slot[T], 0, 64),
		free:  make([]uint32, 0, 64),
		limit: limit,
	}
}

// Insert stores val in a free slot and returns its handle
func (s *Store[T]) Insert(val T) (core.Entity, error) {
	if s.live >= s.limit {
		return core.NoEntity, ErrStoreFull
	}

	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot[T]{generation: 1})
	}

	sl := &s.slots[idx]
	sl.alive = true
	sl.value = val
	s.live++
	return core.MakeEntity(idx, sl.generation), nil
}

// Get returns a pointer to the value behind a live handle
// The pointer is valid until the next Insert or Remove
func (s *Store[T]) Get(e core.Entity) (*T, bool) {
	if !e.Valid() {
		return nil, false
	}
	idx := e.Index()
	if int(idx) >= len(s.slots) {
		return nil, false
	}
	sl := &s.slots[idx]
	if !sl.alive || sl.generation != e.Generation() {
		return nil, false
	}
	return &sl.value, true
}

// Has reports whether the handle is live
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.Get(e)
	return ok
}

// Remove frees the slot of a live handle; stale handles are ignored
func (s *Store[T]) Remove(e core.Entity) bool {
	if _, ok := s.Get(e); !ok {
		return false
	}
	idx := e.Index()
	sl := &s.slots[idx]

	var zero T
	sl.value = zero
	sl.alive = false
	sl.generation++
	if sl.generation == 0 {
		// Generation 0 is reserved for NoEntity
		sl.generation = 1
	}
	s.free = append(s.free, idx)
	s.live--
	return true
}

// Len returns the number of live values
func (s *Store[T]) Len() int {
	return s.live
}

// Each calls fn for every live value in slot order
// fn must not insert or remove
func (s *Store[T]) Each(fn func(e core.Entity, v *T)) {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.alive {
			fn(core.MakeEntity(uint32(i), sl.generation), &sl.value)
		}
	}
}

// Entities returns the handles of all live values in slot order
func (s *Store[T]) Entities() []core.Entity {
	out := make([]core.Entity, 0, s.live)
	for i := range s.slots {
		if s.slots[i].alive {
			out = append(out, core.MakeEntity(uint32(i), s.slots[i].generation))
		}
	}
	return out
}
