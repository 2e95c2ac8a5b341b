package queue

import "math/bits"

// Queue is an unbounded FIFO backed by a power-of-two ring buffer.
// It is not safe for concurrent use.
type Queue[T any] struct {
	buf  []T // len(buf) is the capacity, always a power of two
	head int
	size int
	mask int
}

// New creates a queue able to hold initialCapacity elements before growing.
func New[T any](initialCapacity int) *Queue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := 1
	if initialCapacity > 1 {
		capacity = 1 << uint(bits.Len(uint(initialCapacity-1)))
	}

	return &Queue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

func (q *Queue[T]) grow() {
	newBuf := make([]T, len(q.buf)<<1)

	if q.head+q.size <= len(q.buf) {
		copy(newBuf, q.buf[q.head:q.head+q.size])
	} else {
		n := copy(newBuf, q.buf[q.head:])
		copy(newBuf[n:], q.buf[:(q.head+q.size)&q.mask])
	}

	clear(q.buf)
	q.buf = newBuf
	q.head = 0
	q.mask = len(newBuf) - 1
}

// Enqueue puts value at the back of the queue.
func (q *Queue[T]) Enqueue(value T) {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.buf[(q.head+q.size)&q.mask] = value
	q.size++
}

// Dequeue removes and returns the front element.
func (q *Queue[T]) Dequeue() (value T, ok bool) {
	if q.size == 0 {
		return value, false
	}
	value = q.buf[q.head]
	var zero T
	q.buf[q.head] = zero
	q.head = (q.head + 1) & q.mask
	q.size--
	return value, true
}

func (q *Queue[T]) Size() int {
	return q.size
}

// Clear drops every element and releases references held by the buffer.
func (q *Queue[T]) Clear() {
	clear(q.buf)
	q.head = 0
	q.size = 0
}
