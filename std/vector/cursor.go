package vector

import "github.com/braxtons12/C2nxt/std/iterator"

// Begin returns a cursor at the first element.
func (v *Vector[T]) Begin() iterator.Cursor[T] { return iterator.Begin[T](v) }

// End returns the one-past-last cursor.
func (v *Vector[T]) End() iterator.Cursor[T] { return iterator.End[T](v) }

// RBegin returns a reverse cursor at the last element.
func (v *Vector[T]) RBegin() iterator.Cursor[T] { return iterator.RBegin[T](v) }

// REnd returns the reverse end sentinel.
func (v *Vector[T]) REnd() iterator.Cursor[T] { return iterator.REnd[T](v) }

// CBegin returns a read-only cursor at the first element.
func (v *Vector[T]) CBegin() iterator.ConstCursor[T] { return iterator.CBegin[T](v) }

// CEnd returns the read-only one-past-last cursor.
func (v *Vector[T]) CEnd() iterator.ConstCursor[T] { return iterator.CEnd[T](v) }

// CRBegin returns a read-only reverse cursor at the last element.
func (v *Vector[T]) CRBegin() iterator.ConstCursor[T] { return iterator.CRBegin[T](v) }

// CREnd returns the read-only reverse end sentinel.
func (v *Vector[T]) CREnd() iterator.ConstCursor[T] { return iterator.CREnd[T](v) }
