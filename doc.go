// Package basis provides small, generic building blocks for Go programs:
// a sorted set, an exactly-once resource handle, an unbounded blocking
// queue, and a lazily-initialized value.
//
// # Ordered Set
//
// [OrderedSet] keeps elements sorted and deduplicated under a total order.
// Use [NewOrderedSet] for types with a natural ordering, or
// [NewOrderedSetFunc] to supply a three-way comparator:
//
//	s := basis.NewOrderedSet[int]()
//	s.Insert(5)
//	s.Insert(3)
//	s.Insert(5) // no-op, already present
//	for v := range s.All() {
//	    // 3, 5 in ascending order
//	}
//
// Lookup and insertion locate elements by binary search. The set is not
// internally synchronized; callers coordinate concurrent access.
//
// # Resource Handles
//
// [Handle] owns a resource together with its release function and
// guarantees the release runs exactly once, whether through
// [Handle.Close], [Handle.Reset], or [Handle.Transfer]:
//
//	h := basis.NewHandle(conn, func(c *Conn) { c.Shutdown() })
//	defer h.Close()
//
// Ownership is exclusive. [Handle.Transfer] moves the resource to another
// handle and empties the source; [Handle.Release] detaches the resource
// without releasing it. There is no copy operation.
//
// # Blocking Queue
//
// [BlockingQueue] is an unbounded FIFO queue coordinating producers and
// consumers. [BlockingQueue.Push] never blocks; [BlockingQueue.Pop]
// blocks until an element arrives; [BlockingQueue.TryPop] returns
// immediately. [BlockingQueue.PopContext] unblocks early if the context
// is cancelled.
//
// [BlockingQueue.Close] stops the queue: blocked consumers wake, pending
// elements drain, and further operations return [ErrClosed].
//
// # Lazy Initialization
//
// [Lazy] constructs a value on first access, exactly once across any
// number of goroutines, and hands every caller the same instance:
//
//	cfg := basis.NewLazy(loadConfig)
//	c := cfg.Get() // loadConfig runs here, once
package basis
