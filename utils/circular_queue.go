package utils

import "github.com/oomph-ac/groundwork/oerror"

// CircularQueue is a bounded FIFO queue. Appending to a full queue overwrites the oldest element.
// It is not safe for concurrent use.
type CircularQueue[T any] struct {
	items []T
	head  int
	tail  int
	size  int
}

func NewCircularQueue[T any](capacity int, propagate func() T) *CircularQueue[T] {
	queue := &CircularQueue[T]{
		items: make([]T, capacity),
	}
	if propagate != nil {
		for index := range queue.items {
			queue.items[index] = propagate()
		}
	}
	return queue
}

// Len returns the amount of items currently in the queue.
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
	var zero T
	item = q.items[q.head]
	q.items[q.head] = zero
	q.head = (q.head + 1) % len(q.items)
	q.size--
	return item, true
}

// Drain removes every element from the queue and returns them oldest first.
func (q *CircularQueue[T]) Drain() []T {
	if q.size == 0 {
		return nil
	}
	out := make([]T, 0, q.size)
	for {
		item, ok := q.Pop()
		if !ok {
			return out
		}
		out = append(out, item)
	}
}

// Append appends an item to the queue. If the queue was full, the oldest element is overwritten and
// dropped is true. An error is returned if the queue has zero capacity.
func (q *CircularQueue[T]) Append(item T) (dropped bool, err error) {
	if len(q.items) == 0 {
		return false, oerror.New("circularqueue: append on zero-capacity queue")
	}

	q.items[q.tail] = item
	// A full buffer also advances head, dropping the oldest element.
	if q.size == len(q.items) {
		q.head = (q.head + 1) % len(q.items)
		dropped = true
	} else {
		q.size++
	}
	q.tail = (q.tail + 1) % len(q.items)
	return dropped, nil
}
