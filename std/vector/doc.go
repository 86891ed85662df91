// Package vector provides Vector, a growable sequence whose storage comes
// from a pluggable allocator.
//
// # Ownership
//
// A Vector holds up to types.VectorShortCapacity elements inline (Short)
// and allocates nothing until it outgrows them. Past that it owns one buffer
// (Long), obtained from and returned to the allocator it was created with. Free releases it and is safe to defer:
//
//	v, err := vector.New(vector.Options[int]{Capacity: 16})
//	if err != nil {
//	    return err
//	}
//	defer v.Free()
//
// Take moves the buffer to a new Vector and leaves the source empty, so only
// one of them ever releases it. Clone gives the copy its own storage.
//
// # Growth
//
// When an insertion needs more room the new capacity is
//
//	GoodCapacity(max(required, capacity*GrowthFactor))
//
// which doubles the buffer (rounded to an allocator size class), so N pushes
// cost O(log N) reallocations. ShrinkToFit moves a Long vector whose
// elements fit inline back into the Short representation. Reallocation moves every element and
// invalidates outstanding cursors and element references.
//
// # Failures
//
// Operations that may allocate return an error wrapping
// types.ErrOutOfMemory when the allocator refuses. The vector is left exactly
// as it was. Index and position violations panic with an error marked
// types.ErrOutOfBounds.
//
// The zero Vector is empty and uses alloc.Default.
package vector
