package vector

import (
	"fmt"
	"testing"

	"github.com/braxtons12/C2nxt/std/alloc"
)

// benchAllocators names the allocators compared by scripts/benchmark_parser.go;
// "heap" is the baseline.
func benchAllocators[T any]() []struct {
	name string
	new  func() alloc.Allocator[T]
} {
	return []struct {
		name string
		new  func() alloc.Allocator[T]
	}{
		{"heap", alloc.Default[T]},
		{"tracking", func() alloc.Allocator[T] { return alloc.NewTracking[T](nil) }},
		{"limited", func() alloc.Allocator[T] { return alloc.NewLimited[T](nil, 1<<30) }},
	}
}

// BenchmarkVector_PushBack measures amortized append cost per allocator.
func BenchmarkVector_PushBack(b *testing.B) {
	for _, a := range benchAllocators[int]() {
		for _, n := range []int{16, 1024} {
			b.Run(fmt.Sprintf("%s/%d", a.name, n), func(b *testing.B) {
				allocator := a.new()
				b.ReportAllocs()

				for range b.N {
					v, err := New(Options[int]{Allocator: allocator})
					if err != nil {
						b.Fatal(err)
					}
					for i := range n {
						if err := v.PushBack(i); err != nil {
							b.Fatal(err)
						}
					}
					v.Free()
				}
			})
		}
	}
}

// BenchmarkVector_PushBackReserved measures appends without growth.
func BenchmarkVector_PushBackReserved(b *testing.B) {
	b.ReportAllocs()

	for range b.N {
		v, err := New(Options[int]{Capacity: 1024})
		if err != nil {
			b.Fatal(err)
		}
		for i := range 1024 {
			if err := v.PushBack(i); err != nil {
				b.Fatal(err)
			}
		}
		v.Free()
	}
}

// BenchmarkVector_PushBackBytes compares the heap with a bump arena for
// byte vectors.
func BenchmarkVector_PushBackBytes(b *testing.B) {
	for _, n := range []int{16, 1024} {
		b.Run(fmt.Sprintf("heap/%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				pushBytes(b, alloc.Default[byte](), n)
			}
		})
		b.Run(fmt.Sprintf("arena/%d", n), func(b *testing.B) {
			arena := alloc.NewArena(0)
			b.ReportAllocs()
			for range b.N {
				pushBytes(b, arena, n)
				arena.Reset()
			}
		})
	}
}

func pushBytes(b *testing.B, a alloc.Allocator[byte], n int) {
	v, err := New(Options[byte]{Allocator: a})
	if err != nil {
		b.Fatal(err)
	}
	for i := range n {
		if err := v.PushBack(byte(i)); err != nil {
			b.Fatal(err)
		}
	}
	v.Free()
}
