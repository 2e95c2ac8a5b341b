package demux

import (
	"sync"
	"sync/atomic"

	"github.com/ib-77/ropsplit/internal/queue"
)

// spillover is a mutex-guarded FIFO with a lock-free size hint. pending is
// only incremented by a goroutine holding the cursor.
type spillover[T any] struct {
	mu      sync.Mutex
	fifo    *queue.Queue[T]
	pending atomic.Int64
}

func newSpillover[T any](capacity int) *spillover[T] {
	return &spillover[T]{fifo: queue.New[T](capacity)}
}

func (s *spillover[T]) push(value T) {
	s.mu.Lock()
	s.fifo.Enqueue(value)
	s.pending.Add(1)
	s.mu.Unlock()
}

func (s *spillover[T]) pop() (value T, ok bool) {
	if s.pending.Load() == 0 {
		return value, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	value, ok = s.fifo.Dequeue()
	if ok {
		s.pending.Add(-1)
	}
	return value, ok
}

func (s *spillover[T]) hasPending() bool {
	return s.pending.Load() > 0
}

func (s *spillover[T]) size() int {
	return int(s.pending.Load())
}

func (s *spillover[T]) discard() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.fifo.Size()
	s.fifo.Clear()
	s.pending.Store(0)
	return n
}
