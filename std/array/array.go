// Package array provides Array, a container with a capacity fixed at
// construction and a variable length within it.
//
// An Array never allocates after construction. Over wraps caller-provided
// storage (typically a Go array on the caller's stack) so that no heap
// allocation happens at all:
//
//	var backing [16]int
//	a := array.Over(backing[:])
//	defer a.Free()
//
// Indexing past the length, pushing onto a full array and similar caller
// errors panic with an error marked types.ErrOutOfBounds.
package array

import (
	"iter"
	"slices"

	"github.com/braxtons12/C2nxt/internal/buf"
	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/braxtons12/C2nxt/std/collection"
	"github.com/braxtons12/C2nxt/std/iterator"
	"github.com/braxtons12/C2nxt/std/option"
)

// Array is a fixed-capacity sequence. Slots in [Len, Cap) hold zero values.
type Array[T any] struct {
	items []T // len(items) is the fixed capacity
	n     int
	data  collection.Data[T]
}

// New returns an empty Array with room for capacity elements.
func New[T any](capacity int, data ...collection.Data[T]) *Array[T] {
	if capacity < 0 {
		buf.Fail(types.ErrOutOfBounds, "array.New called with negative capacity %d", capacity)
	}
	return &Array[T]{items: make([]T, capacity), data: collection.Resolve(data...)}
}

// Over returns an empty Array whose storage is backing. The Array's capacity
// is len(backing); backing is zeroed and must not be used directly while the
// Array is live.
func Over[T any](backing []T, data ...collection.Data[T]) *Array[T] {
	clear(backing)
	return &Array[T]{items: backing, data: collection.Resolve(data...)}
}

// Of returns an Array of the given capacity holding values.
func Of[T any](capacity int, values ...T) *Array[T] {
	if len(values) > capacity {
		buf.Fail(types.ErrOutOfBounds, "array.Of called with %d values for capacity %d", len(values), capacity)
	}
	a := New[T](capacity)
	a.n = copy(a.items, values)
	return a
}

// Len returns the number of live elements.
func (a *Array[T]) Len() int { return a.n }

// Cap returns the fixed capacity.
func (a *Array[T]) Cap() int { return len(a.items) }

// IsEmpty reports whether a has no elements.
func (a *Array[T]) IsEmpty() bool { return a.n == 0 }

// IsFull reports whether a has no room left.
func (a *Array[T]) IsFull() bool { return a.n == len(a.items) }

// At returns the element at i.
func (a *Array[T]) At(i int) T {
	buf.Index("Array.At", i, a.n)
	return a.items[i]
}

// Ref returns a reference to the element at i. The reference is valid until
// the element is moved by Insert or Erase.
func (a *Array[T]) Ref(i int) *T {
	buf.Index("Array.Ref", i, a.n)
	return &a.items[i]
}

// Set overwrites the element at i, destroying the previous one.
func (a *Array[T]) Set(i int, v T) {
	buf.Index("Array.Set", i, a.n)
	a.data.Destroy(&a.items[i])
	a.items[i] = v
}

// Front returns the first element.
func (a *Array[T]) Front() T {
	buf.Index("Array.Front", 0, a.n)
	return a.items[0]
}

// Back returns the last element.
func (a *Array[T]) Back() T {
	buf.Index("Array.Back", a.n-1, a.n)
	return a.items[a.n-1]
}

// First returns a view of the first n elements.
func (a *Array[T]) First(n int) []T {
	buf.Range("Array.First", 0, n, a.n)
	return a.items[:n:n]
}

// Last returns a view of the last n elements.
func (a *Array[T]) Last(n int) []T {
	buf.Range("Array.Last", a.n-n, n, a.n)
	return a.items[a.n-n : a.n : a.n]
}

// Slice returns a view of the live elements.
func (a *Array[T]) Slice() []T {
	return a.items[:a.n:a.n]
}

// PushBack appends v. It panics when the array is full.
func (a *Array[T]) PushBack(v T) {
	if a.n == len(a.items) {
		buf.Fail(types.ErrOutOfBounds, "Array.PushBack called on a full array (capacity %d)", len(a.items))
	}
	a.items[a.n] = v
	a.n++
}

// PopBack removes and returns the last element, or None when empty.
func (a *Array[T]) PopBack() option.Option[T] {
	if a.n == 0 {
		return option.None[T]()
	}
	a.n--
	v := a.items[a.n]
	var zero T
	a.items[a.n] = zero
	return option.Some(v)
}

// Insert places v at i, shifting the tail right.
func (a *Array[T]) Insert(v T, i int) {
	buf.Position("Array.Insert", i, a.n)
	if a.n == len(a.items) {
		buf.Fail(types.ErrOutOfBounds, "Array.Insert called on a full array (capacity %d)", len(a.items))
	}
	copy(a.items[i+1:a.n+1], a.items[i:a.n])
	a.items[i] = v
	a.n++
}

// Erase destroys the element at i and shifts the tail left.
func (a *Array[T]) Erase(i int) {
	buf.Index("Array.Erase", i, a.n)
	a.EraseN(i, 1)
}

// EraseN destroys up to n elements starting at i. The count is clamped to
// the elements remaining after i.
func (a *Array[T]) EraseN(i, n int) {
	buf.Position("Array.EraseN", i, a.n)
	n = buf.Clamp(i, n, a.n)
	if n == 0 {
		return
	}
	collection.DestroyAll(a.items[i:i+n], a.data.Destroy)
	copy(a.items[i:], a.items[i+n:a.n])
	clear(a.items[a.n-n : a.n])
	a.n -= n
}

// Resize sets the length to n, constructing new elements when growing and
// destroying trailing ones (last first) when shrinking. n must not exceed Cap.
func (a *Array[T]) Resize(n int) {
	if n < 0 || n > len(a.items) {
		buf.Fail(types.ErrOutOfBounds, "Array.Resize called with %d outside capacity %d", n, len(a.items))
	}
	if n < a.n {
		collection.DestroyAll(a.items[n:a.n], a.data.Destroy)
		clear(a.items[n:a.n])
	}
	for i := a.n; i < n; i++ {
		a.items[i] = a.data.Construct()
	}
	a.n = n
}

// Fill replaces the contents with Cap copies of v.
func (a *Array[T]) Fill(v T) {
	a.Clear()
	for i := range a.items {
		a.items[i] = a.data.Copy(&v)
	}
	a.n = len(a.items)
}

// Clear destroys every element, last first, and sets the length to 0.
func (a *Array[T]) Clear() {
	collection.DestroyAll(a.items[:a.n], a.data.Destroy)
	clear(a.items[:a.n])
	a.n = 0
}

// Free releases the elements. The storage itself belongs to a (or to the
// caller for Over) and needs no release. Free is idempotent.
func (a *Array[T]) Free() {
	a.Clear()
}

// Clone returns an Array with independent storage and copies of the elements.
func (a *Array[T]) Clone() *Array[T] {
	c := &Array[T]{items: make([]T, len(a.items)), n: a.n, data: a.data}
	collection.CopyAll(c.items[:a.n], a.items[:a.n], a.data.Copy)
	return c
}

// Begin returns a cursor at the first element.
func (a *Array[T]) Begin() iterator.Cursor[T] { return iterator.Begin[T](a) }

// End returns the one-past-last cursor.
func (a *Array[T]) End() iterator.Cursor[T] { return iterator.End[T](a) }

// RBegin returns a reverse cursor at the last element.
func (a *Array[T]) RBegin() iterator.Cursor[T] { return iterator.RBegin[T](a) }

// REnd returns the reverse end sentinel.
func (a *Array[T]) REnd() iterator.Cursor[T] { return iterator.REnd[T](a) }

// CBegin returns a read-only cursor at the first element.
func (a *Array[T]) CBegin() iterator.ConstCursor[T] { return iterator.CBegin[T](a) }

// CEnd returns the read-only one-past-last cursor.
func (a *Array[T]) CEnd() iterator.ConstCursor[T] { return iterator.CEnd[T](a) }

// CRBegin returns a read-only reverse cursor at the last element.
func (a *Array[T]) CRBegin() iterator.ConstCursor[T] { return iterator.CRBegin[T](a) }

// CREnd returns the read-only reverse end sentinel.
func (a *Array[T]) CREnd() iterator.ConstCursor[T] { return iterator.CREnd[T](a) }

// All yields (index, element) pairs in storage order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return slices.All(a.items[:a.n])
}

// Backward yields (index, element) pairs from last to first.
func (a *Array[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(a.items[:a.n])
}

// Equal reports whether a and b have equal lengths and elements.
func Equal[T comparable](a, b *Array[T]) bool {
	return slices.Equal(a.Slice(), b.Slice())
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a *Array[T], b *Array[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Slice(), b.Slice(), eq)
}
