package interval

import "fmt"

// Window is the read-only view of a History handed to tasks.
type Window[T any] interface {
	Len() int
	At(indexFromNewest int) (T, error)
	Newest() (T, bool)
}

// History is a fixed-capacity sliding window over the most recent items.
// Pushing beyond capacity evicts the oldest item. Readers never consume items.
type History[T any] struct {
	items    []T // oldest first
	capacity int
}

// NewHistory creates an empty History holding at most capacity items.
// It panics if capacity is not positive.
func NewHistory[T any](capacity int) *History[T] {
	if capacity <= 0 {
		panic(fmt.Sprintf("interval: history capacity must be > 0, got %d", capacity))
	}
	return &History[T]{
		items:    make([]T, 0, capacity+1),
		capacity: capacity,
	}
}

// Push appends item, evicting the oldest entry once capacity is exceeded.
func (h *History[T]) Push(item T) {
	h.items = append(h.items, item)
	if len(h.items) > h.capacity {
		// shift in place so the backing array never grows past capacity+1
		copy(h.items, h.items[1:])
		var zero T
		h.items[len(h.items)-1] = zero
		h.items = h.items[:len(h.items)-1]
	}
}

func (h *History[T]) Len() int { return len(h.items) }
func (h *History[T]) Cap() int { return h.capacity }

// At returns the item indexFromNewest positions before the most recent push;
// At(0) is the newest item. Callers must check Len first: an offset outside
// [0, Len()) is an error wrapping ErrHistoryRange.
func (h *History[T]) At(indexFromNewest int) (T, error) {
	var zero T
	if indexFromNewest < 0 || indexFromNewest >= len(h.items) {
		return zero, fmt.Errorf("%w: offset %d with %d items", ErrHistoryRange, indexFromNewest, len(h.items))
	}
	return h.items[len(h.items)-1-indexFromNewest], nil
}

// Newest returns the most recently pushed item, if any.
func (h *History[T]) Newest() (T, bool) {
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[len(h.items)-1], true
}

// Items returns a copy of the window, oldest first.
func (h *History[T]) Items() []T {
	out := make([]T, len(h.items))
	copy(out, h.items)
	return out
}
