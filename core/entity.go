package core

import "fmt"

// Entity is a non-owning handle to a slot in an entity arena
// Low 32 bits hold the slot index, high 32 bits the slot generation
// A handle whose generation no longer matches its slot is stale and resolves to nothing
type Entity uint64

// NoEntity marks bodies without an owner (walls, ground)
const NoEntity Entity = 0

// MakeEntity packs a slot index and generation, generation 0 is reserved for NoEntity
func MakeEntity(index, generation uint32) Entity {
	return Entity(uint64(generation)<<32 | uint64(index))
}

// Index returns the arena slot
func (e Entity) Index() uint32 {
	return uint32(e)
}

// Generation returns the slot generation the handle was issued for
func (e Entity) Generation() uint32 {
	return uint32(e >> 32)
}

// Valid reports whether the handle could refer to an entity at all
func (e Entity) Valid() bool {
	return e.Generation() != 0
}

func (e Entity) String() string {
	if !e.Valid() {
		return "entity(none)"
	}
	return fmt.Sprintf("entity(%d:%d)", e.Index(), e.Generation())
}
