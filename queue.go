package basis

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by [BlockingQueue.Push] after Close, and by
// [BlockingQueue.Pop] and [BlockingQueue.PopContext] once a closed queue
// has been drained.
var ErrClosed = errors.New("basis: queue is closed")

// BlockingQueue is an unbounded FIFO queue safe for any number of
// concurrent producers and consumers. Elements are delivered in push
// order, each to exactly one consumer.
//
// Push never blocks. Pop blocks while the queue is empty; TryPop returns
// immediately. Close wakes all blocked consumers: they drain the
// remaining elements in order and then receive [ErrClosed].
type BlockingQueue[T any] struct {
	mu       sync.Mutex
	nonEmpty *sync.Cond
	items    []T
	closed   bool
}

// QueueOption configures a [BlockingQueue].
type QueueOption func(*queueConfig)

type queueConfig struct {
	capacity int
}

// WithCapacity pre-allocates the queue's backing buffer for n elements.
// The queue still grows without bound past n. Panics if n is negative.
func WithCapacity(n int) QueueOption {
	if n < 0 {
		panic("basis: WithCapacity requires non-negative capacity")
	}
	return func(c *queueConfig) {
		c.capacity = n
	}
}

// NewBlockingQueue creates an empty queue.
func NewBlockingQueue[T any](opts ...QueueOption) *BlockingQueue[T] {
	var cfg queueConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	q := &BlockingQueue[T]{
		items: make([]T, 0, cfg.capacity),
	}
	q.nonEmpty = sync.NewCond(&q.mu)
	return q
}

// Push appends v to the tail of the queue and wakes one blocked consumer,
// if any. It never blocks. Returns [ErrClosed] if the queue has been
// closed.
func (q *BlockingQueue[T]) Push(v T) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return ErrClosed
	}
	q.items = append(q.items, v)
	q.nonEmpty.Signal()
	return nil
}

// TryPop removes and returns the head element without blocking. The bool
// reports whether an element was available; an empty queue is not an
// error, just the absence of a value right now.
func (q *BlockingQueue[T]) TryPop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.items) == 0 {
		var zero T
		return zero, false
	}
	return q.pop(), true
}

// Pop removes and returns the head element, blocking while the queue is
// empty. The emptiness check is repeated after every wake, so spurious
// wakeups and consumers racing for the same element are handled.
//
// Once the queue is closed and drained, Pop returns [ErrClosed]. With no
// close and no producers Pop blocks forever; use [BlockingQueue.PopContext]
// for bounded waiting.
func (q *BlockingQueue[T]) Pop() (T, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if q.closed {
			var zero T
			return zero, ErrClosed
		}
		q.nonEmpty.Wait()
	}
	return q.pop(), nil
}

// PopContext is like [BlockingQueue.Pop] but unblocks early when ctx is
// cancelled, returning ctx.Err(). An element already in the queue is
// returned even if ctx is cancelled concurrently.
func (q *BlockingQueue[T]) PopContext(ctx context.Context) (T, error) {
	if ctx.Done() == nil {
		return q.Pop()
	}

	// Broadcast rather than Signal: the waiter whose context fired must
	// wake, and every other waiter re-checks its predicate and sleeps
	// again.
	stop := context.AfterFunc(ctx, func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.nonEmpty.Broadcast()
	})
	defer stop()

	q.mu.Lock()
	defer q.mu.Unlock()

	for len(q.items) == 0 {
		if q.closed {
			var zero T
			return zero, ErrClosed
		}
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		q.nonEmpty.Wait()
	}
	return q.pop(), nil
}

// pop removes and returns the head element. Caller holds q.mu and has
// checked the queue is non-empty.
func (q *BlockingQueue[T]) pop() T {
	v := q.items[0]
	var zero T
	q.items[0] = zero // drop the reference so the element can be collected
	q.items = q.items[1:]
	if len(q.items) == 0 {
		q.items = nil // let the grown buffer go once fully drained
	}
	return v
}

// Len returns the number of queued elements. Advisory only: the value may
// be stale as soon as it is returned if producers or consumers are active.
func (q *BlockingQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Empty reports whether the queue has no elements. Advisory only, like
// [BlockingQueue.Len].
func (q *BlockingQueue[T]) Empty() bool {
	return q.Len() == 0
}

// Close stops the queue. Blocked consumers wake; they drain any remaining
// elements in FIFO order and then receive [ErrClosed], as do all
// subsequent Push and Pop calls. Safe to call multiple times.
func (q *BlockingQueue[T]) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	q.nonEmpty.Broadcast()
}
