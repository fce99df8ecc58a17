// Package input delivers keyboard commands from a background poller to the
// animation loop through an unbounded, ordered queue.
package input

import (
	"errors"
	"sync"
)

// ErrQueueClosed is returned by Push once the consumer has closed the queue.
var ErrQueueClosed = errors.New("input: queue closed")

// Queue is an unbounded FIFO with a single producer and a single consumer.
// Push never blocks; TryPop never waits for new items.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	head   int
	closed bool
}

// NewQueue creates an empty queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Push appends v to the tail of the queue.
func (q *Queue[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrQueueClosed
	}
	q.items = append(q.items, v)
	return nil
}

// TryPop removes and returns the head of the queue.
// ok is false when nothing is pending.
func (q *Queue[T]) TryPop() (v T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.head == len(q.items) {
		return v, false
	}
	v = q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++

	// Reuse the backing array once everything has been consumed.
	if q.head == len(q.items) {
		q.items = q.items[:0]
		q.head = 0
	}
	return v, true
}

// Len returns the number of pending items.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items) - q.head
}

// Close marks the consumer as gone. Later pushes fail with ErrQueueClosed;
// items already queued can still be popped.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.closed = true
}
