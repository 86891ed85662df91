package alloc

// Allocator defines the interface for element buffer allocation and release.
//
// Implementations:
//   - Heap: Go runtime heap (the process default)
//   - Limited: byte-budgeted wrapper
//   - Tracking: accounting wrapper
//   - Pages, Arena: byte-only backends
type Allocator[T any] interface {
	// Allocate returns a zeroed buffer with len == cap == n.
	// Returns an error wrapping types.ErrOutOfMemory when the request cannot be met.
	Allocate(n int) ([]T, error)

	// Deallocate releases a buffer returned by Allocate on the same allocator.
	// It never fails and must be called at most once per allocation.
	Deallocate(mem []T)
}
