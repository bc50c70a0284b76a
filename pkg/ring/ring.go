// Package ring provides a fixed-capacity FIFO that overwrites its oldest
// entry once full.
package ring

import (
	"errors"
	"iter"
)

// ErrZeroCapacity is returned when a ring is constructed without room for a
// single element.
var ErrZeroCapacity = errors.New("ring: capacity must be positive")

// Ring is a bounded FIFO of comparable values. Slots that were never written,
// or whose value was dequeued, hold the fill value and never match Contains.
type Ring[T comparable] struct {
	buf  []T
	live []bool
	fill T

	write int
	read  int
	size  int
}

// New allocates a ring with capacity slots pre-filled with fill.
func New[T comparable](capacity int, fill T) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, ErrZeroCapacity
	}
	r := &Ring[T]{
		buf:  make([]T, capacity),
		live: make([]bool, capacity),
		fill: fill,
	}
	for i := range r.buf {
		r.buf[i] = fill
	}
	return r, nil
}

// Cap returns the fixed number of slots.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Len returns the number of valid entries.
func (r *Ring[T]) Len() int { return r.size }

// Enqueue stores v at the write cursor. When the ring is full the oldest
// entry is overwritten and lost.
func (r *Ring[T]) Enqueue(v T) {
	n := len(r.buf)
	r.buf[r.write] = v
	r.live[r.write] = true
	r.write = (r.write + 1) % n
	if r.size < n {
		r.size++
		return
	}
	r.read = (r.read + 1) % n
}

// Dequeue removes and returns the oldest entry. ok is false when the ring is
// empty.
func (r *Ring[T]) Dequeue() (v T, ok bool) {
	if r.size == 0 {
		return v, false
	}
	v = r.buf[r.read]
	r.buf[r.read] = r.fill
	r.live[r.read] = false
	r.read = (r.read + 1) % len(r.buf)
	r.size--
	return v, true
}

// Contains reports whether v equals any valid entry.
func (r *Ring[T]) Contains(v T) bool {
	for i, x := range r.buf {
		if r.live[i] && x == v {
			return true
		}
	}
	return false
}

// All yields the valid entries from oldest to newest.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.size; i++ {
			if !yield(r.buf[(r.read+i)%len(r.buf)]) {
				return
			}
		}
	}
}

// Reset drops every entry and restores the fill value in all slots.
func (r *Ring[T]) Reset() {
	for i := range r.buf {
		r.buf[i] = r.fill
		r.live[i] = false
	}
	r.write, r.read, r.size = 0, 0, 0
}
