package buf

import (
	"math"

	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/cockroachdb/errors"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * elementSize calculations in allocation paths.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	// For negative numbers
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// CheckRange validates that the range [off, off+n) lies within a sequence of
// length size. Returns the end offset if valid, or an error marked with
// types.ErrOutOfBounds describing the specific failure.
//
//	end, err := buf.CheckRange(s.Len(), pos, count)
//	if err != nil {
//	    return err
//	}
func CheckRange(size, off, n int) (int, error) {
	if off < 0 {
		return 0, errors.Mark(errors.Newf("negative offset: %d", off), types.ErrOutOfBounds)
	}
	if n < 0 {
		return 0, errors.Mark(errors.Newf("negative count: %d", n), types.ErrOutOfBounds)
	}
	end, ok := AddOverflowSafe(off, n)
	if !ok {
		return 0, errors.Mark(errors.Newf("overflow: offset=%d + count=%d", off, n), types.ErrOutOfBounds)
	}
	if end > size {
		return 0, errors.Mark(errors.Newf("bounds: end=%d > len=%d", end, size), types.ErrOutOfBounds)
	}
	return end, nil
}

// Slice returns the sub-slice [off:off+n] if it fits within len(b). The
// result's capacity ends at off+n so appends cannot reach past it.
func Slice[T any](b []T, off, n int) ([]T, bool) {
	end, err := CheckRange(len(b), off, n)
	if err != nil {
		return nil, false
	}
	return b[off:end:end], true
}
