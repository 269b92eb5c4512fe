package ecs

import "fmt"

// Entity is a handle to a world slot: the slot index in the low half, the
// slot's generation in the high half. A handle goes stale once its slot is
// recycled, so IsAlive rejects it. The zero Entity never refers to a slot.
type Entity uint64

type entityID uint32
type generation uint32

const (
	entityIDBits = 32
	entityIDMask = 1<<entityIDBits - 1
)

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<entityIDBits | uint64(id))
}

func (e Entity) id() entityID {
	return entityID(uint64(e) & entityIDMask)
}

func (e Entity) generation() generation {
	return generation(uint64(e) >> entityIDBits)
}

func (e Entity) String() string {
	if !e.Valid() {
		return "entity(nil)"
	}
	return fmt.Sprintf("entity(%d#%d)", e.id(), e.generation())
}

func (e Entity) Valid() bool {
	return e.id() != 0
}
