package basis

import (
	"cmp"
	"iter"
	"slices"
)

// OrderedSet is a sorted, deduplicated collection of T. The backing
// sequence is always strictly ascending under the set's comparator, so
// lookups and insertions run in O(log n) comparisons.
//
// OrderedSet is not internally synchronized. Any number of goroutines may
// read concurrently, but a writer requires exclusive access, enforced by
// the caller.
type OrderedSet[T any] struct {
	cmp  func(a, b T) int
	data []T
}

// NewOrderedSet creates an empty set ordered by the natural ordering of T.
func NewOrderedSet[T cmp.Ordered]() *OrderedSet[T] {
	return &OrderedSet[T]{cmp: cmp.Compare[T]}
}

// NewOrderedSetFunc creates an empty set ordered by compare, a three-way
// comparator returning negative when a < b, zero when a == b, and positive
// when a > b. The comparator must define a total order; an inconsistent
// comparator leaves the set in an unspecified state.
//
// Panics if compare is nil.
func NewOrderedSetFunc[T any](compare func(a, b T) int) *OrderedSet[T] {
	if compare == nil {
		panic("basis: NewOrderedSetFunc requires non-nil comparator")
	}
	return &OrderedSet[T]{cmp: compare}
}

// Insert adds v to the set, keeping the backing sequence sorted. If an
// element equal to v (under the set's comparator) is already present, the
// set is unchanged. It reports whether v was inserted.
func (s *OrderedSet[T]) Insert(v T) bool {
	i, found := slices.BinarySearchFunc(s.data, v, s.cmp)
	if found {
		return false
	}
	s.data = slices.Insert(s.data, i, v)
	return true
}

// Contains reports whether an element equal to v is present.
func (s *OrderedSet[T]) Contains(v T) bool {
	_, found := slices.BinarySearchFunc(s.data, v, s.cmp)
	return found
}

// Len returns the number of elements in the set.
func (s *OrderedSet[T]) Len() int {
	return len(s.data)
}

// Empty reports whether the set has no elements.
func (s *OrderedSet[T]) Empty() bool {
	return len(s.data) == 0
}

// All returns an iterator over the elements in ascending order. The
// iterator is restartable: each range loop walks the full set again.
// Mutating the set while iterating is not supported.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a copy of the elements in ascending order.
func (s *OrderedSet[T]) Values() []T {
	return slices.Clone(s.data)
}
