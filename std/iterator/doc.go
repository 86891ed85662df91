// Package iterator implements the cursor protocol shared by every std container.
//
// A container hands a cursor a Storage: a non-owning descriptor exposing the
// element count and per-index references. Cursors are small values. Next and
// Previous return the moved cursor instead of mutating the receiver, so the
// idiomatic loop is
//
//	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
//	    use(it.Get())
//	}
//
// Every cursor is bounded by the container length observed when the cursor
// was created. Dereferencing the end sentinel, or stepping outside
// [begin, end], panics with an error marked types.ErrOutOfBounds. Any
// operation that reallocates the container invalidates outstanding cursors.
//
// Cursors compare by storage, position, direction and bound. Cursors from
// different containers never compare equal, even at the same offset. A
// Storage must therefore be a comparable type, typically a pointer.
//
// The generic algorithms (ForEach, Count, Collect, Find, Distance) accept
// any pair of cursors satisfying Forward, and Seq/Seq2 adapt a cursor range
// to the standard iter package. Filter, FilterSeq, Map and TakeFirst build lazy
// iter.Seq views over a cursor range, Transform rewrites a mutable range in
// place and Accumulate folds one into a single value.
package iterator
