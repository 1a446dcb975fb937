package engine

// Table is the type-erased surface of a component store. A world keeps one
// Table per component type so it can detach everything from an entity
// without knowing the component types involved.
type Table interface {
	Remove(e Entity)
	Clear()
}

// Store is a container for one component type T, using the sparse-set
// pattern: a map for lookups plus a dense entity slice for iteration.
// Iteration order is insertion order, which keeps simulation passes
// deterministic across runs with the same seed.
type Store[T any] struct {
	components map[Entity]T
	entities   []Entity
}

// NewStore creates an empty component store for type T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]T, 64),
		entities:   make([]Entity, 0, 64),
	}
}

// Set inserts or updates the component for an entity.
func (s *Store[T]) Set(e Entity, val T) {
	if _, exists := s.components[e]; !exists {
		s.entities = append(s.entities, e)
	}
	s.components[e] = val
}

// Get retrieves the component for an entity. The second return value is
// false when the component is absent.
func (s *Store[T]) Get(e Entity) (T, bool) {
	val, ok := s.components[e]
	return val, ok
}

// Has reports whether the entity carries this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove detaches the component from an entity. Removing an absent
// component is a no-op.
func (s *Store[T]) Remove(e Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// Entities returns the entities carrying this component in insertion order.
// The slice is a copy, so callers may remove components while ranging it.
func (s *Store[T]) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

// Len returns the number of entities with this component.
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear removes all components from this store.
func (s *Store[T]) Clear() {
	s.components = make(map[Entity]T, 64)
	s.entities = s.entities[:0]
}
