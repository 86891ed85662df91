package buf

import (
	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/cockroachdb/errors"
)

// Bounds violations are caller programming errors, not runtime conditions, so
// the helpers below do not return errors: they panic with an assertion failure
// marked with the matching types sentinel. The panic value is an error, so a
// test (or a supervisor) can still classify it with types.KindOf.

// Fail panics with an assertion failure marked with sentinel.
func Fail(sentinel *types.Error, format string, args ...interface{}) {
	panic(errors.Mark(errors.AssertionFailedWithDepthf(1, format, args...), sentinel))
}

// Index asserts 0 <= i < size for an element access made by op.
func Index(op string, i, size int) {
	if i < 0 || i >= size {
		Fail(types.ErrOutOfBounds, "%s called with index %d >= length %d (index out of bounds)", op, i, size)
	}
}

// Position asserts 0 <= pos <= size for an insertion point chosen by op.
func Position(op string, pos, size int) {
	if pos < 0 || pos > size {
		Fail(types.ErrOutOfBounds, "%s called with position %d > length %d (position out of bounds)", op, pos, size)
	}
}

// Range asserts that [off, off+n) lies within size for op.
func Range(op string, off, n, size int) {
	if _, err := CheckRange(size, off, n); err != nil {
		Fail(types.ErrOutOfBounds, "%s called with range [%d, %d+%d) outside length %d (range out of bounds)",
			op, off, off, n, size)
	}
}

// Clamp returns n limited to the remaining length after off.
func Clamp(off, n, size int) int {
	if n < 0 {
		return 0
	}
	if remaining := size - off; n > remaining {
		return remaining
	}
	return n
}
