package alloc

import (
	"unsafe"

	"github.com/braxtons12/C2nxt/internal/buf"
	"github.com/braxtons12/C2nxt/pkg/types"
)

// SizeOf returns the size in bytes of one T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BytesFor returns the number of bytes n elements of T occupy, or ok = false
// when n is negative or the product overflows or exceeds types.MaxAllocBytes.
func BytesFor[T any](n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	total, ok := buf.MulOverflowSafe(n, SizeOf[T]())
	if !ok || total > types.MaxAllocBytes {
		return 0, false
	}
	return total, true
}

// base returns the address identifying a buffer, or nil for an empty one.
func base[T any](mem []T) *T {
	if cap(mem) == 0 {
		return nil
	}
	return unsafe.SliceData(mem)
}
