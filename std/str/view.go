package str

import (
	"bytes"
	"iter"
	"slices"
	"unsafe"

	"github.com/braxtons12/C2nxt/internal/buf"
	"github.com/braxtons12/C2nxt/std/iterator"
	"github.com/braxtons12/C2nxt/std/option"
)

// View is a borrowed, read-only window onto bytes owned elsewhere. Its zero
// value is the empty view.
type View struct {
	b []byte
}

// ViewOf returns a view of text without copying.
func ViewOf(text string) View {
	return View{b: bytesOf(text)}
}

// ViewOfBytes returns a view of b. The caller keeps b alive and unchanged
// for as long as the view is used.
func ViewOfBytes(b []byte) View {
	return View{b: b[:len(b):len(b)]}
}

// Len returns the number of viewed bytes.
func (v View) Len() int { return len(v.b) }

// IsEmpty reports whether the view is empty.
func (v View) IsEmpty() bool { return len(v.b) == 0 }

// At returns the byte at i.
func (v View) At(i int) byte {
	buf.Index("View.At", i, len(v.b))
	return v.b[i]
}

// Bytes returns the viewed bytes. They must not be modified.
func (v View) Bytes() []byte { return v.b }

// String returns a copy of the viewed bytes as a Go string.
func (v View) String() string { return string(v.b) }

// Equal reports whether v and o view identical bytes.
func (v View) Equal(o View) bool { return bytes.Equal(v.b, o.b) }

// EqualString reports whether v views exactly text.
func (v View) EqualString(text string) bool { return string(v.b) == text }

// Sub returns the view of length bytes starting at start.
func (v View) Sub(start, length int) View {
	b, ok := buf.Slice(v.b, start, length)
	if !ok {
		buf.Range("View.Sub", start, length, len(v.b))
	}
	return View{b: b}
}

// TrySub is Sub returning None instead of panicking when the range does not
// fit in v.
func (v View) TrySub(start, length int) option.Option[View] {
	b, ok := buf.Slice(v.b, start, length)
	if !ok {
		return option.None[View]()
	}
	return option.Some(View{b: b})
}

// First returns the view of the first n bytes (all of v when n exceeds Len).
func (v View) First(n int) View {
	return v.Sub(0, buf.Clamp(0, n, len(v.b)))
}

// Last returns the view of the last n bytes (all of v when n exceeds Len).
func (v View) Last(n int) View {
	n = buf.Clamp(0, n, len(v.b))
	return v.Sub(len(v.b)-n, n)
}

// Contains reports whether needle occurs in v.
func (v View) Contains(needle View) bool { return bytes.Contains(v.b, needle.b) }

// FindFirst returns the index of the first occurrence of needle.
func (v View) FindFirst(needle View) option.Option[int] { return findFirst(v.b, needle.b) }

// FindLast returns the start index of the last occurrence of needle.
func (v View) FindLast(needle View) option.Option[int] { return findLast(v.b, needle.b) }

// All yields (index, byte) pairs.
func (v View) All() iter.Seq2[int, byte] { return slices.All(v.b) }

// viewStorage exposes a view to cursors without giving View a mutable Ref.
// It is comparable, so cursors over the same bytes compare equal.
type viewStorage struct {
	p *byte
	n int
}

func storageOf(b []byte) viewStorage { return viewStorage{unsafe.SliceData(b), len(b)} }

func (s viewStorage) Len() int        { return s.n }
func (s viewStorage) Ref(i int) *byte { return &unsafe.Slice(s.p, s.n)[i] }

// CBegin returns a read-only cursor at the first byte.
func (v View) CBegin() iterator.ConstCursor[byte] { return iterator.CBegin[byte](storageOf(v.b)) }

// CEnd returns the read-only one-past-last cursor.
func (v View) CEnd() iterator.ConstCursor[byte] { return iterator.CEnd[byte](storageOf(v.b)) }

// CRBegin returns a read-only reverse cursor at the last byte.
func (v View) CRBegin() iterator.ConstCursor[byte] { return iterator.CRBegin[byte](storageOf(v.b)) }

// CREnd returns the read-only reverse end sentinel.
func (v View) CREnd() iterator.ConstCursor[byte] { return iterator.CREnd[byte](storageOf(v.b)) }
