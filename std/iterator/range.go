package iterator

import "iter"

// Mutable is a Forward cursor that hands out references to its element.
type Mutable[T, I any] interface {
	Forward[T, I]
	Ref() *T
}

// Filter yields the elements of [begin, end) satisfying pred. The range is
// walked lazily, once per iteration of the returned sequence.
func Filter[T any, I Forward[T, I]](begin, end I, pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it := begin; !it.Equal(end); it = it.Next() {
			if v := it.Get(); pred(v) && !yield(v) {
				return
			}
		}
	}
}

// FilterSeq yields the elements of seq satisfying pred, so a Map can be
// filtered after transforming.
func FilterSeq[T any](seq iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if pred(v) && !yield(v) {
				return
			}
		}
	}
}

// Map yields fn applied to each element of [begin, end). The container is
// not modified; see Transform for the in-place form.
func Map[T, U any, I Forward[T, I]](begin, end I, fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for it := begin; !it.Equal(end); it = it.Next() {
			if !yield(fn(it.Get())) {
				return
			}
		}
	}
}

// TakeFirst yields at most the first n elements of [begin, end).
func TakeFirst[T any, I Forward[T, I]](begin, end I, n int) iter.Seq[T] {
	return func(yield func(T) bool) {
		taken := 0
		for it := begin; taken < n && !it.Equal(end); it = it.Next() {
			if !yield(it.Get()) {
				return
			}
			taken++
		}
	}
}

// Transform calls fn on a reference to every element of [begin, end),
// rewriting the container in place.
func Transform[T any, I Mutable[T, I]](begin, end I, fn func(*T)) {
	for it := begin; !it.Equal(end); it = it.Next() {
		fn(it.Ref())
	}
}

// Accumulate folds [begin, end) into a single value, starting from init.
func Accumulate[T, A any, I Forward[T, I]](begin, end I, init A, fn func(A, T) A) A {
	acc := init
	for it := begin; !it.Equal(end); it = it.Next() {
		acc = fn(acc, it.Get())
	}
	return acc
}

// AccumulateSeq folds a sequence, such as one built by Filter or Map, into a
// single value.
func AccumulateSeq[T, A any](seq iter.Seq[T], init A, fn func(A, T) A) A {
	acc := init
	for v := range seq {
		acc = fn(acc, v)
	}
	return acc
}
