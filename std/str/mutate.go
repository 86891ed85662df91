package str

import (
	"bytes"
	"unsafe"

	"github.com/braxtons12/C2nxt/internal/buf"
	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/braxtons12/C2nxt/std/option"
)

// overlaps reports whether p shares memory with b's backing array.
func overlaps(b, p []byte) bool {
	if cap(b) == 0 || len(p) == 0 {
		return false
	}
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	pStart := uintptr(unsafe.Pointer(unsafe.SliceData(p)))
	return pStart < bStart+uintptr(cap(b)) && bStart < pStart+uintptr(len(p))
}

// insert shifts the bytes at and after pos right by len(p) and copies p in.
// p may be a view of s itself.
func (s *String) insert(op string, p []byte, pos int) error {
	buf.Position(op, pos, s.n)
	if len(p) == 0 {
		return nil
	}
	if overlaps(s.storage(), p) {
		p = bytes.Clone(p)
	}
	if err := s.growFor(s.n + len(p)); err != nil {
		return err
	}
	b := s.storage()
	copy(b[pos+len(p):], b[pos:s.n])
	copy(b[pos:], p)
	s.n += len(p)
	return nil
}

// replace overwrites from pos with p, extending s when p runs past the end.
func (s *String) replace(op string, p []byte, pos int) error {
	buf.Position(op, pos, s.n)
	if len(p) == 0 {
		return nil
	}
	if overlaps(s.storage(), p) {
		p = bytes.Clone(p)
	}
	end := pos + len(p)
	if err := s.growFor(end); err != nil {
		return err
	}
	copy(s.storage()[pos:], p)
	s.n = max(s.n, end)
	return nil
}

// Insert inserts text at pos. pos may equal Len.
func (s *String) Insert(text string, pos int) error {
	return s.insert("String.Insert", bytesOf(text), pos)
}

// InsertBytes inserts p at pos.
func (s *String) InsertBytes(p []byte, pos int) error {
	return s.insert("String.InsertBytes", p, pos)
}

// InsertString inserts the content of o at pos. o may be s.
func (s *String) InsertString(o *String, pos int) error {
	return s.insert("String.InsertString", o.Bytes(), pos)
}

// InsertView inserts the viewed bytes at pos.
func (s *String) InsertView(v View, pos int) error {
	return s.insert("String.InsertView", v.b, pos)
}

// Append adds text to the end.
func (s *String) Append(text string) error {
	return s.insert("String.Append", bytesOf(text), s.n)
}

// AppendBytes adds p to the end.
func (s *String) AppendBytes(p []byte) error {
	return s.insert("String.AppendBytes", p, s.n)
}

// AppendString adds the content of o to the end.
func (s *String) AppendString(o *String) error {
	return s.insert("String.AppendString", o.Bytes(), s.n)
}

// AppendView adds the viewed bytes to the end.
func (s *String) AppendView(v View) error {
	return s.insert("String.AppendView", v.b, s.n)
}

// Prepend adds text to the front.
func (s *String) Prepend(text string) error {
	return s.insert("String.Prepend", bytesOf(text), 0)
}

// PrependBytes adds p to the front.
func (s *String) PrependBytes(p []byte) error {
	return s.insert("String.PrependBytes", p, 0)
}

// PrependString adds the content of o to the front.
func (s *String) PrependString(o *String) error {
	return s.insert("String.PrependString", o.Bytes(), 0)
}

// PrependView adds the viewed bytes to the front.
func (s *String) PrependView(v View) error {
	return s.insert("String.PrependView", v.b, 0)
}

// Replace overwrites the bytes starting at pos with text, extending s if text
// runs past the end.
func (s *String) Replace(text string, pos int) error {
	return s.replace("String.Replace", bytesOf(text), pos)
}

// ReplaceBytes is Replace for a byte slice.
func (s *String) ReplaceBytes(p []byte, pos int) error {
	return s.replace("String.ReplaceBytes", p, pos)
}

// ReplaceString is Replace with the content of o.
func (s *String) ReplaceString(o *String, pos int) error {
	return s.replace("String.ReplaceString", o.Bytes(), pos)
}

// ReplaceView is Replace with the viewed bytes.
func (s *String) ReplaceView(v View, pos int) error {
	return s.replace("String.ReplaceView", v.b, pos)
}

// PushBack appends one byte.
func (s *String) PushBack(c byte) error {
	if err := s.growFor(s.n + 1); err != nil {
		return err
	}
	s.storage()[s.n] = c
	s.n++
	return nil
}

// PushFront prepends one byte.
func (s *String) PushFront(c byte) error {
	if err := s.growFor(s.n + 1); err != nil {
		return err
	}
	b := s.storage()
	copy(b[1:], b[:s.n])
	b[0] = c
	s.n++
	return nil
}

// PopBack removes and returns the last byte, or None when empty.
func (s *String) PopBack() option.Option[byte] {
	if s.n == 0 {
		return option.None[byte]()
	}
	b := s.storage()
	s.n--
	c := b[s.n]
	b[s.n] = 0
	return option.Some(c)
}

// PopFront removes and returns the first byte, or None when empty.
func (s *String) PopFront() option.Option[byte] {
	if s.n == 0 {
		return option.None[byte]()
	}
	b := s.storage()
	c := b[0]
	copy(b, b[1:s.n])
	s.n--
	b[s.n] = 0
	return option.Some(c)
}

// Erase removes the byte at pos.
func (s *String) Erase(pos int) {
	buf.Index("String.Erase", pos, s.n)
	s.EraseN(pos, 1)
}

// EraseN removes up to count bytes starting at pos, shifting the tail left.
// The count is clamped to the bytes remaining after pos.
func (s *String) EraseN(pos, count int) {
	buf.Position("String.EraseN", pos, s.n)
	count = buf.Clamp(pos, count, s.n)
	if count == 0 {
		return
	}
	b := s.storage()
	copy(b[pos:], b[pos+count:s.n])
	clear(b[s.n-count : s.n])
	s.n -= count
}

// Resize truncates s to n bytes. When n exceeds Len, s instead gains
// NUL-filled room for n bytes and its length is unchanged, so the content
// still compares equal to what it held before.
func (s *String) Resize(n int) error {
	if n < 0 {
		buf.Fail(types.ErrOutOfBounds, "String.Resize called with negative length %d", n)
	}
	if n <= s.n {
		clear(s.storage()[n:s.n])
		s.n = n
		return nil
	}
	return s.growFor(n)
}

// Clear empties s. The representation and capacity are kept.
func (s *String) Clear() {
	clear(s.storage()[:s.n])
	s.n = 0
}

// Fill sets every byte up to the capacity to c, making s full.
func (s *String) Fill(c byte) {
	b := s.storage()
	capacity := s.Cap()
	for i := range capacity {
		b[i] = c
	}
	s.n = capacity
}
