package types

import "strconv"

// ============================================================================
// Container Tunables
// ============================================================================
// These constants fix the representation and growth behaviour of the std
// containers. They are deliberately plain constants: every container of a
// given build shares them, and tests pin behaviour against them.

const (
	// WordBytes is the size of a machine word in bytes.
	WordBytes = strconv.IntSize / 8

	// ShortStringCapacity is the number of bytes a String can hold inline
	// before it must switch to a heap buffer. It is three machine words minus
	// the byte reserved for the NUL terminator (23 on 64-bit platforms).
	ShortStringCapacity = 3*WordBytes - 1

	// GrowthFactor is the multiplier applied to the current capacity when a
	// growable container must reallocate.
	GrowthFactor = 2

	// VectorShortCapacity is the number of elements a Vector stores inline
	// before it allocates a buffer.
	VectorShortCapacity = 8

	// MaxAllocBytes is the largest single allocation the allocators accept.
	// Anything larger is reported as out of memory instead of panicking inside
	// the runtime.
	MaxAllocBytes = 1 << (strconv.IntSize - 3)
)
