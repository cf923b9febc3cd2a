package basis

import "sync"

// Lazy holds a value of T constructed on first access. The constructor
// runs at most once no matter how many goroutines race on [Lazy.Get], and
// its completion happens-before every Get returns, so all callers observe
// the same fully-constructed instance.
//
// A Lazy must not be copied after first use (go vet's copylocks check
// flags this, via the embedded sync.Once).
type Lazy[T any] struct {
	once  sync.Once
	newFn func() T
	val   T
}

// NewLazy creates a Lazy that builds its value with fn on first access.
// Panics if fn is nil.
func NewLazy[T any](fn func() T) *Lazy[T] {
	if fn == nil {
		panic("basis: NewLazy requires non-nil constructor")
	}
	return &Lazy[T]{newFn: fn}
}

// Get returns the value, constructing it on the very first call. Every
// caller receives a pointer to the same instance.
//
// If the constructor panics, the panic propagates to the caller that
// triggered construction and the Lazy stays unusable: later Gets return a
// pointer to the zero value without retrying.
func (l *Lazy[T]) Get() *T {
	l.once.Do(func() {
		l.val = l.newFn()
		l.newFn = nil // constructor no longer needed; free what it captured
	})
	return &l.val
}
