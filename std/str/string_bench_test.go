package str

import (
	"fmt"
	"testing"

	"github.com/braxtons12/C2nxt/std/alloc"
)

// BenchmarkString_Append measures byte-at-a-time growth per allocator.
func BenchmarkString_Append(b *testing.B) {
	for _, n := range []int{16, 4096} {
		b.Run(fmt.Sprintf("heap/%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for range b.N {
				appendBytes(b, alloc.Default[byte](), n)
			}
		})
		b.Run(fmt.Sprintf("pages/%d", n), func(b *testing.B) {
			pages := alloc.NewPages()
			defer pages.Close()
			b.ReportAllocs()
			for range b.N {
				appendBytes(b, pages, n)
			}
		})
		b.Run(fmt.Sprintf("arena/%d", n), func(b *testing.B) {
			arena := alloc.NewArena(0)
			b.ReportAllocs()
			for range b.N {
				appendBytes(b, arena, n)
				arena.Reset()
			}
		})
	}
}

func appendBytes(b *testing.B, a alloc.Allocator[byte], n int) {
	s := New(Options{Allocator: a})
	for i := range n {
		if err := s.PushBack(byte('a' + i%26)); err != nil {
			b.Fatal(err)
		}
	}
	s.Free()
}

// BenchmarkString_FindFirst measures substring search on a Long string.
func BenchmarkString_FindFirst(b *testing.B) {
	s := MustFrom(fmt.Sprintf("%0512d needle", 0))
	defer s.Free()
	b.ReportAllocs()

	for range b.N {
		if s.FindFirst("needle").IsNone() {
			b.Fatal("needle not found")
		}
	}
}
