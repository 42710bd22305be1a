// Package queue provides a generic FIFO queue backed by a singly linked list
// with a tail pointer.
//
// Enqueue and per-element Dequeue are O(1). The queue is used by the
// streaming manager to buffer entities waiting to be materialized, where
// bulk appends and bounded drains dominate.
package queue

type element[T any] struct {
	value T
	next  *element[T]
}

// Queue is a first-in first-out queue. The zero value is an empty queue.
//
// Queue is not safe for concurrent use.
type Queue[T any] struct {
	head *element[T]
	tail *element[T]
	size int
}

// New creates an empty queue.
func New[T any]() *Queue[T] {
	return &Queue[T]{}
}

// Len returns the number of queued items.
func (q *Queue[T]) Len() int { return q.size }

// Enqueue appends items to the back of the queue in argument order.
func (q *Queue[T]) Enqueue(items ...T) {
	for _, v := range items {
		e := &element[T]{value: v}
		if q.tail == nil {
			q.head = e
		} else {
			q.tail.next = e
		}
		q.tail = e
		q.size++
	}
}

// Dequeue removes and returns up to n items from the front of the queue.
// Fewer items are returned when the queue is shorter; nil is returned when
// n <= 0 or the queue is empty.
func (q *Queue[T]) Dequeue(n int) []T {
	if n <= 0 || q.head == nil {
		return nil
	}
	n = min(n, q.size)
	out := make([]T, 0, n)
	for range n {
		e := q.head
		out = append(out, e.value)
		q.head = e.next
		e.next = nil
		q.size--
	}
	if q.head == nil {
		q.tail = nil
	}
	return out
}

// Peek returns the front item without removing it.
func (q *Queue[T]) Peek() (T, bool) {
	if q.head == nil {
		var zero T
		return zero, false
	}
	return q.head.value, true
}

// Reset empties the queue and returns the drained items in FIFO order.
func (q *Queue[T]) Reset() []T {
	return q.Dequeue(q.size)
}
