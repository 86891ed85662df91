package str

import (
	"iter"
	"slices"

	"github.com/braxtons12/C2nxt/std/iterator"
)

// Begin returns a cursor at the first byte.
func (s *String) Begin() iterator.Cursor[byte] { return iterator.Begin[byte](s) }

// End returns the one-past-last cursor.
func (s *String) End() iterator.Cursor[byte] { return iterator.End[byte](s) }

// RBegin returns a reverse cursor at the last byte.
func (s *String) RBegin() iterator.Cursor[byte] { return iterator.RBegin[byte](s) }

// REnd returns the reverse end sentinel.
func (s *String) REnd() iterator.Cursor[byte] { return iterator.REnd[byte](s) }

// CBegin returns a read-only cursor at the first byte.
func (s *String) CBegin() iterator.ConstCursor[byte] { return iterator.CBegin[byte](s) }

// CEnd returns the read-only one-past-last cursor.
func (s *String) CEnd() iterator.ConstCursor[byte] { return iterator.CEnd[byte](s) }

// CRBegin returns a read-only reverse cursor at the last byte.
func (s *String) CRBegin() iterator.ConstCursor[byte] { return iterator.CRBegin[byte](s) }

// CREnd returns the read-only reverse end sentinel.
func (s *String) CREnd() iterator.ConstCursor[byte] { return iterator.CREnd[byte](s) }

// All yields (index, byte) pairs in order.
func (s *String) All() iter.Seq2[int, byte] {
	return slices.All(s.Bytes())
}
