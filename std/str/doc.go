// Package str provides String, a byte string with small-string optimization,
// and View, a non-owning window onto bytes.
//
// # Representation
//
// A String is in one of two states:
//
//   - Short: up to types.ShortStringCapacity bytes stored inline, no allocation
//   - Long: a buffer of Cap()+1 bytes obtained from the String's allocator
//
// Any operation that needs more than the inline capacity moves a Short string
// to Long. A Long string only becomes Short again through ShrinkToFit. Every
// byte from Len() through Cap() is zero, so the storage is always
// NUL-terminated (see CString) and growth by Resize pads with NUL.
//
// # Ownership
//
// A String owns its buffer. Use it through a pointer, release it with Free
// (idempotent, safe to defer), move it with Take and copy it with Clone.
// Copying the struct itself aliases a Long buffer and must be avoided.
//
// Views returned by View, StringViewOf, FirstView and LastView borrow the
// String's current storage and are invalidated by any operation that
// reallocates it or by Free.
//
// # Errors
//
// Operations that may allocate return an error wrapping types.ErrOutOfMemory
// and leave the String unchanged on failure. Index and position violations
// panic with an error marked types.ErrOutOfBounds.
//
// # Equality
//
// Two strings compare equal when their common prefix matches and the excess
// of the longer one is entirely NUL bytes. Short and Long representations
// never affect comparison.
package str
