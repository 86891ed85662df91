package iterator

import (
	"iter"

	"github.com/braxtons12/C2nxt/std/option"
)

// Forward is satisfied by cursors that can advance, compare and dereference.
type Forward[T, I any] interface {
	Next() I
	Get() T
	Equal(I) bool
}

// Bidirectional adds stepping backwards to Forward.
type Bidirectional[T, I any] interface {
	Forward[T, I]
	Previous() I
}

// ForEach calls fn for every element in [begin, end).
func ForEach[T any, I Forward[T, I]](begin, end I, fn func(T)) {
	for it := begin; !it.Equal(end); it = it.Next() {
		fn(it.Get())
	}
}

// Count returns the number of elements in [begin, end) satisfying pred.
func Count[T any, I Forward[T, I]](begin, end I, pred func(T) bool) int {
	n := 0
	for it := begin; !it.Equal(end); it = it.Next() {
		if pred(it.Get()) {
			n++
		}
	}
	return n
}

// Collect copies [begin, end) into a new slice.
func Collect[T any, I Forward[T, I]](begin, end I) []T {
	var out []T
	for it := begin; !it.Equal(end); it = it.Next() {
		out = append(out, it.Get())
	}
	return out
}

// Find returns the offset from begin of the first element satisfying pred.
func Find[T any, I Forward[T, I]](begin, end I, pred func(T) bool) option.Option[int] {
	n := 0
	for it := begin; !it.Equal(end); it = it.Next() {
		if pred(it.Get()) {
			return option.Some(n)
		}
		n++
	}
	return option.None[int]()
}

// Distance returns the number of steps from begin to end.
func Distance[T any, I Forward[T, I]](begin, end I) int {
	n := 0
	for it := begin; !it.Equal(end); it = it.Next() {
		n++
	}
	return n
}

// Seq adapts [begin, end) to an iter.Seq.
func Seq[T any, I Forward[T, I]](begin, end I) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := begin; !it.Equal(end); it = it.Next() {
			if !yield(it.Get()) {
				return
			}
		}
	}
}

// Seq2 adapts [begin, end) to an iter.Seq2 of (offset from begin, element).
func Seq2[T any, I Forward[T, I]](begin, end I) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := 0
		for it := begin; !it.Equal(end); it = it.Next() {
			if !yield(n, it.Get()) {
				return
			}
			n++
		}
	}
}

// Reverse walks [begin, end) backwards from end, calling fn for each element.
func Reverse[T any, I Bidirectional[T, I]](begin, end I, fn func(T)) {
	for it := end; !it.Equal(begin); {
		it = it.Previous()
		fn(it.Get())
	}
}
