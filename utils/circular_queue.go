package utils

import (
	"iter"

	"github.com/oomph-ac/platsim/assert"
	"github.com/oomph-ac/platsim/oerror"
)

// CircularQueue is a fixed-capacity FIFO that overwrites its oldest element once full.
type CircularQueue[T any] struct {
	items []T
	head  int
	tail  int
	size  int
}

// NewCircularQueue returns a queue able to hold capacity items. It panics if
// capacity is not positive.
func NewCircularQueue[T any](capacity int) *CircularQueue[T] {
	assert.IsTrue(capacity > 0, "circularQueue: capacity must be positive, got %d", capacity)
	return &CircularQueue[T]{items: make([]T, capacity)}
}

// Get returns the element at logical position index (0 = oldest), or an error if out of range.
func (q *CircularQueue[T]) Get(index int) (T, error) {
	var zero T
	if index < 0 || index >= q.size {
		return zero, oerror.New("circularQueue: get %d out of range [0, %d)", index, q.size)
	}
	return q.items[(q.head+index)%len(q.items)], nil
}

// Iter yields the elements from oldest to newest.
func (q *CircularQueue[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		for index := range q.size {
			if !yield(q.items[(q.head+index)%len(q.items)]) {
				return
			}
		}
	}
}

// Len returns the number of items currently queued.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the maximum number of items the queue can hold.
func (q *CircularQueue[T]) Cap() int {
	return len(q.items)
}

// Pop removes and returns the oldest element. The boolean ok is false if the
// queue is empty.
func (q *CircularQueue[T]) Pop() (item T, ok bool) {
	if q.size == 0 {
		return item, false
	}
	item = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return item, true
}

// Append adds an item, dropping the oldest one if the queue is full.
func (q *CircularQueue[T]) Append(item T) {
	q.items[q.tail] = item
	if q.size == len(q.items) {
		q.head = (q.head + 1) % len(q.items)
	} else {
		q.size++
	}
	q.tail = (q.tail + 1) % len(q.items)
}

// Slice copies the queued items into a new slice, oldest first.
func (q *CircularQueue[T]) Slice() []T {
	out := make([]T, 0, q.size)
	for item := range q.Iter() {
		out = append(out, item)
	}
	return out
}
