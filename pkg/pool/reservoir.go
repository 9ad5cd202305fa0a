package pool

import "github.com/gammazero/deque"

// reservoir holds idle instances in return order and hands them out from
// the end selected by its Order. It is not safe for concurrent use.
type reservoir[T any] struct {
	order Order
	items deque.Deque[T]
}

func newReservoir[T any](order Order, hint int) *reservoir[T] {
	r := &reservoir[T]{order: order}
	if hint > 0 {
		r.items.Grow(hint)
	}
	return r
}

func (r *reservoir[T]) Len() int {
	return r.items.Len()
}

// put appends v as the newest entry.
func (r *reservoir[T]) put(v T) {
	r.items.PushBack(v)
}

// take removes the oldest entry for FIFO and the newest for LIFO.
func (r *reservoir[T]) take() (T, bool) {
	if r.items.Len() == 0 {
		var zero T
		return zero, false
	}
	if r.order == LIFO {
		return r.items.PopBack(), true
	}
	return r.items.PopFront(), true
}

// Clear drops every entry.
func (r *reservoir[T]) Clear() {
	r.items.Clear()
}
