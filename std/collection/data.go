// Package collection describes how containers create, copy and destroy their elements.
//
// Containers of plain values need nothing here: the zero Data resolves to
// zero-value construction, assignment copies and no-op destruction. Element
// types that own resources (strings, nested containers, handles) supply
// hooks so that Clone deep-copies and Free releases what each element holds.
package collection

// Data bundles the element lifecycle hooks a container calls.
type Data[T any] struct {
	// Construct returns a new element for default-constructed slots (Resize growth).
	Construct func() T
	// Copy returns an independent copy of *src (Clone).
	Copy func(src *T) T
	// Destroy releases what *elem owns before the slot is discarded.
	Destroy func(elem *T)
}

// Default returns hooks for plain values.
func Default[T any]() Data[T] {
	return Data[T]{
		Construct: Zero[T],
		Copy:      Assign[T],
		Destroy:   Discard[T],
	}
}

// Resolve returns d with every missing hook filled from Default.
// Only the first of data is used; none yields Default.
func Resolve[T any](data ...Data[T]) Data[T] {
	if len(data) == 0 {
		return Default[T]()
	}
	d := data[0]
	if d.Construct == nil {
		d.Construct = Zero[T]
	}
	if d.Copy == nil {
		d.Copy = Assign[T]
	}
	if d.Destroy == nil {
		d.Destroy = Discard[T]
	}
	return d
}

// Zero returns T's zero value.
func Zero[T any]() T {
	var zero T
	return zero
}

// Assign returns *src.
func Assign[T any](src *T) T {
	return *src
}

// Discard does nothing.
func Discard[T any](*T) {}

// DestroyAll calls destroy on every element of elems, last to first.
func DestroyAll[T any](elems []T, destroy func(*T)) {
	for i := len(elems) - 1; i >= 0; i-- {
		destroy(&elems[i])
	}
}

// CopyAll fills dst[i] with copy(&src[i]) for the common prefix and returns the count.
func CopyAll[T any](dst, src []T, copyFn func(*T) T) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = copyFn(&src[i])
	}
	return n
}
