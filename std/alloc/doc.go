// Package alloc provides the pluggable allocator abstraction every std
// container stores and threads through its operations.
//
// # Overview
//
// An Allocator hands out zeroed, element-typed buffers and takes them back.
// Containers copy an allocator value at construction and use that same value
// for every buffer they ever release: a buffer must be deallocated by the
// allocator that allocated it.
//
// # Allocator Interface
//
//   - Allocate(n): return a zeroed buffer of exactly n elements, or an error
//     wrapping types.ErrOutOfMemory
//   - Deallocate(mem): release a buffer previously returned by Allocate.
//     Never fails; nil and empty buffers are ignored
//
// # Implementations
//
// Heap: the Go runtime heap. Default[T]() returns it and is the allocator
// every container uses when none is given. It holds no state and needs no
// teardown.
//
// Limited: wraps another allocator with a byte budget. Requests beyond the
// budget fail with ErrOutOfMemory, which makes allocation failure paths
// testable.
//
// Tracking: wraps another allocator and counts allocations, deallocations
// and live bytes. Releasing a buffer it never handed out is recorded as a
// foreign deallocation instead of being forwarded.
//
// Pages: byte buffers backed by anonymous memory mappings (mmap on unix,
// the heap elsewhere). Requests are rounded up to whole pages.
//
// Arena: a bump-pointer byte allocator. Deallocate is a no-op; Reset
// reclaims everything at once.
//
// # Usage Example
//
//	tr := alloc.NewTracking(alloc.Default[int]())
//	v, err := vector.New(vector.Options[int]{Allocator: tr})
//	if err != nil {
//	    return err
//	}
//	defer v.Free()
//
// # Size Classes
//
// GoodSize rounds a byte request up to an allocator-friendly size:
//
//	16 - 512 bytes:    16-byte steps
//	512 B - 32 KiB:    powers of two
//	32 KiB and above:  4 KiB page multiples
//
// Growable containers round their capacity through GoodCapacity so that the
// memory they request is never wasted by the backing allocator.
//
// # Thread Safety
//
// Heap, Limited, Tracking and Pages may be shared by containers on different
// goroutines. Arena is not thread-safe. Containers themselves are never
// internally synchronized.
package alloc
