package engine

// Queue is an unbounded FIFO for intra-frame signals. Systems push during
// their passes; the consumer drains exactly once at the end of the frame.
// Drain order equals push order, so transition handling stays deterministic
// even when several signals land in the same tick.
type Queue[T any] struct {
	items []T
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{
		items: make([]T, 0, 8),
	}
}

// Push appends a signal to the queue.
func (q *Queue[T]) Push(v T) {
	q.items = append(q.items, v)
}

// Drain returns all queued signals in push order and empties the queue.
// Returns nil when the queue is empty.
func (q *Queue[T]) Drain() []T {
	if len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = make([]T, 0, 8)
	return out
}

// Len returns the number of queued signals.
func (q *Queue[T]) Len() int {
	return len(q.items)
}
