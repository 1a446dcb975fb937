// Package engine provides the generic entity-component machinery the
// simulation is built on: an entity allocator, typed component stores and a
// frame-local signal queue. It knows nothing about the game itself.
//
// The engine is deliberately single-threaded. The simulation contract says
// all mutation happens on the driver's goroutine in a fixed pass order, so
// the stores carry no locks; racing on them is a caller bug, not something
// to paper over.
package engine

import "fmt"

// Entity is an opaque identifier for a live game object. Ids are never
// reused within one allocator, so a stale handle can be detected.
type Entity uint64

// Allocator hands out entity ids and tracks which are alive.
type Allocator struct {
	next  Entity
	alive map[Entity]struct{}
}

// NewAllocator creates an empty allocator.
func NewAllocator() *Allocator {
	return &Allocator{
		next:  1,
		alive: make(map[Entity]struct{}, 64),
	}
}

// Create allocates a fresh entity id.
func (a *Allocator) Create() Entity {
	e := a.next
	a.next++
	a.alive[e] = struct{}{}
	return e
}

// Alive reports whether the entity has been created and not yet destroyed.
func (a *Allocator) Alive(e Entity) bool {
	_, ok := a.alive[e]
	return ok
}

// Count returns the number of live entities.
func (a *Allocator) Count() int {
	return len(a.alive)
}

// Destroy releases an entity id. Destroying an entity that is not alive is
// a logic error in the caller and panics immediately rather than corrupting
// the world silently.
func (a *Allocator) Destroy(e Entity) {
	if _, ok := a.alive[e]; !ok {
		panic(fmt.Sprintf("engine: destroying entity %d which is not alive", e))
	}
	delete(a.alive, e)
}

// Reset discards all live entities. Id numbering continues where it left
// off so handles from before the reset stay invalid.
func (a *Allocator) Reset() {
	a.alive = make(map[Entity]struct{}, 64)
}
