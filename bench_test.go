package basis_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/baxromumarov/basis"
)

// BenchmarkOrderedSetInsert measures insertion into sets of growing size,
// including the binary search and the slice shift.
func BenchmarkOrderedSetInsert(b *testing.B) {
	for _, n := range []int{10, 100, 1000, 10000} {
		b.Run(sizeName(n), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			vals := make([]int, n)
			for i := range vals {
				vals[i] = rng.Int()
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				s := basis.NewOrderedSet[int]()
				for _, v := range vals {
					s.Insert(v)
				}
			}
		})
	}
}

// BenchmarkOrderedSetContains measures lookup in a populated set.
func BenchmarkOrderedSetContains(b *testing.B) {
	for _, n := range []int{100, 10000} {
		b.Run(sizeName(n), func(b *testing.B) {
			s := basis.NewOrderedSet[int]()
			for i := range n {
				s.Insert(i * 2)
			}
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Contains(i % (n * 2))
			}
		})
	}
}

// BenchmarkQueuePushPop measures uncontended single-goroutine throughput.
func BenchmarkQueuePushPop(b *testing.B) {
	q := basis.NewBlockingQueue[int]()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = q.Push(i)
		_, _ = q.TryPop()
	}
}

// BenchmarkQueueContended measures throughput with concurrent producers
// and consumers sharing one queue.
func BenchmarkQueueContended(b *testing.B) {
	q := basis.NewBlockingQueue[int](basis.WithCapacity(1024))
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			if i%2 == 0 {
				_ = q.Push(i)
			} else {
				_, _ = q.TryPop()
			}
			i++
		}
	})
}

// BenchmarkLazyGet measures the fast path after initialization.
func BenchmarkLazyGet(b *testing.B) {
	l := basis.NewLazy(func() int { return 1 })
	_ = l.Get()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = l.Get()
	}
}

func sizeName(n int) string {
	return fmt.Sprintf("n=%d", n)
}
