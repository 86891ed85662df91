package alloc

// Heap allocates from the Go runtime heap. The zero value is ready to use and
// carries no state, so copies are interchangeable.
type Heap[T any] struct{}

// Default returns the process-wide default allocator for T.
func Default[T any]() Allocator[T] {
	return Heap[T]{}
}

// Allocate returns make([]T, n) after checking the request size.
func (Heap[T]) Allocate(n int) ([]T, error) {
	if _, ok := BytesFor[T](n); !ok {
		return nil, outOfMemory(n, SizeOf[T](), "request too large")
	}
	if n == 0 {
		return nil, nil
	}
	return make([]T, n), nil
}

// Deallocate is a no-op; the garbage collector reclaims heap buffers once the
// owning container drops its reference.
func (Heap[T]) Deallocate([]T) {}
