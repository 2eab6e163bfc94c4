package domain

import "iter"

// View is a read-only window over an ordered slice, optionally reversed.
// It never copies the underlying records.
type View[T any] struct {
	items   []T
	reverse bool
}

// NewView wraps items in their stored order.
func NewView[T any](items []T) View[T] {
	return View[T]{items: items}
}

func (v View[T]) Len() int {
	return len(v.items)
}

// At returns the i-th element in view order.
func (v View[T]) At(i int) T {
	if v.reverse {
		return v.items[len(v.items)-1-i]
	}
	return v.items[i]
}

// All iterates the view in its order.
func (v View[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(v.items); i++ {
			if !yield(i, v.At(i)) {
				return
			}
		}
	}
}

// Reverse returns the same records in the opposite order.
func (v View[T]) Reverse() View[T] {
	return View[T]{items: v.items, reverse: !v.reverse}
}
