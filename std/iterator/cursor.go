package iterator

import (
	"github.com/braxtons12/C2nxt/internal/buf"
	"github.com/braxtons12/C2nxt/pkg/types"
)

// Storage is the view of a container a cursor walks.
type Storage[T any] interface {
	Len() int
	Ref(i int) *T
}

// position is the state shared by mutable and read-only cursors.
type position[T any] struct {
	s    Storage[T]
	pos  int // logical offset from the first element in traversal order
	end  int // length at creation
	back bool
}

func (p position[T]) index() int {
	if p.back {
		return p.end - 1 - p.pos
	}
	return p.pos
}

func (p position[T]) ref(op string) *T {
	if p.pos < 0 || p.pos >= p.end {
		buf.Fail(types.ErrOutOfBounds, "%s called on the end cursor (position %d, length %d)", op, p.pos, p.end)
	}
	i := p.index()
	buf.Index(op, i, p.s.Len())
	return p.s.Ref(i)
}

func (p position[T]) at(op string, n int) *T {
	q := p
	q.pos += n
	return q.ref(op)
}

func (p position[T]) next() position[T] {
	if p.pos >= p.end {
		buf.Fail(types.ErrOutOfBounds, "Next called on the end cursor (length %d)", p.end)
	}
	p.pos++
	return p
}

func (p position[T]) previous() position[T] {
	if p.pos <= 0 {
		buf.Fail(types.ErrOutOfBounds, "Previous called on the begin cursor (length %d)", p.end)
	}
	p.pos--
	return p
}

// reversed mirrors p so that it walks the other way. The mirrored cursor
// refers to the element just before p in p's direction.
func (p position[T]) reversed() position[T] {
	p.pos = p.end - p.pos
	p.back = !p.back
	return p
}

// equal requires the same storage. Storage implementations must be
// comparable (pointers or small value descriptors).
func (p position[T]) equal(o position[T]) bool {
	return p.s == o.s && p.pos == o.pos && p.end == o.end && p.back == o.back
}

// Cursor is a mutable bidirectional cursor.
type Cursor[T any] struct {
	position[T]
}

// Next returns the cursor advanced by one element.
func (c Cursor[T]) Next() Cursor[T] { return Cursor[T]{c.next()} }

// Previous returns the cursor moved back by one element.
func (c Cursor[T]) Previous() Cursor[T] { return Cursor[T]{c.previous()} }

// Get returns the element under the cursor.
func (c Cursor[T]) Get() T { return *c.ref("Cursor.Get") }

// Ref returns a reference to the element under the cursor.
func (c Cursor[T]) Ref() *T { return c.ref("Cursor.Ref") }

// Set overwrites the element under the cursor.
func (c Cursor[T]) Set(v T) { *c.ref("Cursor.Set") = v }

// At returns the element n steps ahead of the cursor (behind for negative n).
func (c Cursor[T]) At(n int) T { return *c.at("Cursor.At", n) }

// Index returns the storage index of the element under the cursor.
func (c Cursor[T]) Index() int { return c.index() }

// Valid reports whether the cursor refers to an element.
func (c Cursor[T]) Valid() bool { return c.pos >= 0 && c.pos < c.end }

// Equal reports whether c and o are at the same position.
func (c Cursor[T]) Equal(o Cursor[T]) bool { return c.equal(o.position) }

// Reversed returns the cursor walking the opposite direction.
// Begin().Reversed() equals REnd() and End().Reversed() equals RBegin().
func (c Cursor[T]) Reversed() Cursor[T] { return Cursor[T]{c.reversed()} }

// Const returns a read-only cursor at the same position.
func (c Cursor[T]) Const() ConstCursor[T] { return ConstCursor[T]{c.position} }

// ConstCursor is a read-only bidirectional cursor.
type ConstCursor[T any] struct {
	position[T]
}

// Next returns the cursor advanced by one element.
func (c ConstCursor[T]) Next() ConstCursor[T] { return ConstCursor[T]{c.next()} }

// Previous returns the cursor moved back by one element.
func (c ConstCursor[T]) Previous() ConstCursor[T] { return ConstCursor[T]{c.previous()} }

// Get returns the element under the cursor.
func (c ConstCursor[T]) Get() T { return *c.ref("ConstCursor.Get") }

// At returns the element n steps ahead of the cursor (behind for negative n).
func (c ConstCursor[T]) At(n int) T { return *c.at("ConstCursor.At", n) }

// Index returns the storage index of the element under the cursor.
func (c ConstCursor[T]) Index() int { return c.index() }

// Valid reports whether the cursor refers to an element.
func (c ConstCursor[T]) Valid() bool { return c.pos >= 0 && c.pos < c.end }

// Equal reports whether c and o are at the same position.
func (c ConstCursor[T]) Equal(o ConstCursor[T]) bool { return c.equal(o.position) }

// Reversed returns the cursor walking the opposite direction.
func (c ConstCursor[T]) Reversed() ConstCursor[T] { return ConstCursor[T]{c.reversed()} }

func forward[T any](s Storage[T], pos int) position[T] {
	return position[T]{s: s, pos: pos, end: s.Len()}
}

func backward[T any](s Storage[T], pos int) position[T] {
	return position[T]{s: s, pos: pos, end: s.Len(), back: true}
}

// Begin returns a cursor at the first element of s.
func Begin[T any](s Storage[T]) Cursor[T] { return Cursor[T]{forward(s, 0)} }

// End returns the one-past-last sentinel of s.
func End[T any](s Storage[T]) Cursor[T] { return Cursor[T]{forward(s, s.Len())} }

// RBegin returns a cursor at the last element of s, walking backwards.
func RBegin[T any](s Storage[T]) Cursor[T] { return Cursor[T]{backward(s, 0)} }

// REnd returns the one-before-first sentinel of s.
func REnd[T any](s Storage[T]) Cursor[T] { return Cursor[T]{backward(s, s.Len())} }

// CBegin returns a read-only cursor at the first element of s.
func CBegin[T any](s Storage[T]) ConstCursor[T] { return ConstCursor[T]{forward(s, 0)} }

// CEnd returns the read-only one-past-last sentinel of s.
func CEnd[T any](s Storage[T]) ConstCursor[T] { return ConstCursor[T]{forward(s, s.Len())} }

// CRBegin returns a read-only cursor at the last element of s, walking backwards.
func CRBegin[T any](s Storage[T]) ConstCursor[T] { return ConstCursor[T]{backward(s, 0)} }

// CREnd returns the read-only one-before-first sentinel of s.
func CREnd[T any](s Storage[T]) ConstCursor[T] { return ConstCursor[T]{backward(s, s.Len())} }
