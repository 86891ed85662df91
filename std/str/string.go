package str

import (
	"github.com/braxtons12/C2nxt/internal/buf"
	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/braxtons12/C2nxt/std/alloc"
	"github.com/cockroachdb/errors"
)

// Options configures a new String.
type Options struct {
	// Allocator serves the Long buffer. Nil uses alloc.Default.
	Allocator alloc.Allocator[byte]
}

func resolve(opts []Options) alloc.Allocator[byte] {
	if len(opts) == 0 || opts[0].Allocator == nil {
		return alloc.Default[byte]()
	}
	return opts[0].Allocator
}

// String is a small-string-optimized byte string. The zero value is an empty
// Short string using alloc.Default.
type String struct {
	short [types.ShortStringCapacity + 1]byte
	long  []byte // nil while Short; Cap()+1 bytes while Long
	n     int
	alloc alloc.Allocator[byte]
}

// New returns an empty Short string.
func New(opts ...Options) *String {
	return &String{alloc: resolve(opts)}
}

// WithCapacity returns an empty string able to hold capacity bytes without
// reallocating. Capacities beyond the inline size allocate exactly.
func WithCapacity(capacity int, opts ...Options) (*String, error) {
	s := New(opts...)
	if capacity > types.ShortStringCapacity {
		if err := s.reallocate(capacity); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// From returns a String holding a copy of text.
func From(text string, opts ...Options) (*String, error) {
	return FromBytes(bytesOf(text), opts...)
}

// FromBytes returns a String holding a copy of b.
func FromBytes(b []byte, opts ...Options) (*String, error) {
	s, err := WithCapacity(len(b), opts...)
	if err != nil {
		return nil, err
	}
	s.n = copy(s.storage(), b)
	return s, nil
}

// FromView returns a String holding a copy of the viewed bytes.
func FromView(v View, opts ...Options) (*String, error) {
	return FromBytes(v.b, opts...)
}

// MustFrom is like From but panics if the allocation fails.
func MustFrom(text string, opts ...Options) *String {
	s, err := From(text, opts...)
	if err != nil {
		panic(err)
	}
	return s
}

// Concatenate returns a new String holding left followed by right.
func Concatenate(left, right View, opts ...Options) (*String, error) {
	s, err := WithCapacity(left.Len()+right.Len(), opts...)
	if err != nil {
		return nil, err
	}
	b := s.storage()
	s.n = copy(b, left.b)
	s.n += copy(b[s.n:], right.b)
	return s, nil
}

func (s *String) allocator() alloc.Allocator[byte] {
	if s.alloc == nil {
		s.alloc = alloc.Default[byte]()
	}
	return s.alloc
}

// storage returns every byte of the current representation, terminator slot included.
func (s *String) storage() []byte {
	if s.long != nil {
		return s.long
	}
	return s.short[:]
}

// reallocate moves the content into a Long buffer holding capacity bytes.
// On failure s is unchanged.
func (s *String) reallocate(capacity int) error {
	mem, err := s.allocator().Allocate(capacity + 1)
	if err != nil {
		return errors.Wrapf(err, "str: reallocate %d -> %d bytes", s.Cap(), capacity)
	}
	copy(mem, s.storage()[:s.n])
	s.releaseLong()
	clear(s.short[:])
	s.long = mem
	return nil
}

func (s *String) releaseLong() {
	if s.long == nil {
		return
	}
	clear(s.long)
	s.allocator().Deallocate(s.long)
	s.long = nil
}

// growFor makes room for required bytes, at least doubling the capacity.
func (s *String) growFor(required int) error {
	capacity := s.Cap()
	if required <= capacity {
		return nil
	}
	if required >= types.MaxAllocBytes {
		return errors.Wrapf(types.ErrOutOfMemory, "str: %d bytes exceeds the allocation limit", required)
	}
	target := max(required, capacity*types.GrowthFactor)
	return s.reallocate(alloc.GoodSize(target+1) - 1)
}

// Allocator returns the allocator serving the Long buffer.
func (s *String) Allocator() alloc.Allocator[byte] { return s.allocator() }

// Len returns the number of bytes, excluding the terminator.
func (s *String) Len() int { return s.n }

// Cap returns the number of bytes s can hold without reallocating.
func (s *String) Cap() int {
	if s.long != nil {
		return len(s.long) - 1
	}
	return types.ShortStringCapacity
}

// IsShort reports whether s is stored inline.
func (s *String) IsShort() bool { return s.long == nil }

// IsEmpty reports whether s has no bytes.
func (s *String) IsEmpty() bool { return s.n == 0 }

// IsFull reports whether the next growth will reallocate.
func (s *String) IsFull() bool { return s.n == s.Cap() }

// At returns the byte at i.
func (s *String) At(i int) byte {
	buf.Index("String.At", i, s.n)
	return s.storage()[i]
}

// Ref returns a reference to the byte at i, valid until s reallocates.
func (s *String) Ref(i int) *byte {
	buf.Index("String.Ref", i, s.n)
	return &s.storage()[i]
}

// Set overwrites the byte at i.
func (s *String) Set(i int, c byte) {
	buf.Index("String.Set", i, s.n)
	s.storage()[i] = c
}

// Front returns the first byte.
func (s *String) Front() byte {
	buf.Index("String.Front", 0, s.n)
	return s.storage()[0]
}

// Back returns the last byte.
func (s *String) Back() byte {
	buf.Index("String.Back", s.n-1, s.n)
	return s.storage()[s.n-1]
}

// Bytes returns the content. The slice aliases s and is invalidated by reallocation.
func (s *String) Bytes() []byte {
	return s.storage()[:s.n:s.n]
}

// CString returns the content followed by its NUL terminator.
func (s *String) CString() []byte {
	return s.storage()[: s.n+1 : s.n+1]
}

// String returns a copy of the content as a Go string.
func (s *String) String() string {
	return string(s.storage()[:s.n])
}

// View returns a view of the whole content.
func (s *String) View() View {
	return View{b: s.Bytes()}
}

// Reserve grows the capacity to at least n. It never shrinks.
func (s *String) Reserve(n int) error {
	if n <= s.Cap() {
		return nil
	}
	if n >= types.MaxAllocBytes {
		return errors.Wrapf(types.ErrOutOfMemory, "str: %d bytes exceeds the allocation limit", n)
	}
	return s.reallocate(alloc.GoodSize(n+1) - 1)
}

// ShrinkToFit releases unused capacity. A Long string whose content fits
// inline becomes Short again; otherwise it is reallocated to exactly Len.
// Calling it again is a no-op.
func (s *String) ShrinkToFit() error {
	if s.long == nil {
		return nil
	}
	if s.n <= types.ShortStringCapacity {
		clear(s.short[:])
		copy(s.short[:], s.long[:s.n])
		s.releaseLong()
		return nil
	}
	if s.Cap() == s.n {
		return nil
	}
	return s.reallocate(s.n)
}

// Free releases the Long buffer and leaves s empty and Short. Free is
// idempotent and safe on a moved-from string.
func (s *String) Free() {
	if s == nil {
		return
	}
	s.releaseLong()
	clear(s.short[:])
	s.n = 0
}

// Clone returns an independent copy using the same allocator.
func (s *String) Clone() (*String, error) {
	return s.CloneWithAllocator(s.allocator())
}

// CloneWithAllocator returns an independent copy whose buffer comes from a.
func (s *String) CloneWithAllocator(a alloc.Allocator[byte]) (*String, error) {
	return FromBytes(s.Bytes(), Options{Allocator: a})
}

// Take moves the content into a new String and leaves s empty and Short.
func (s *String) Take() *String {
	moved := &String{short: s.short, long: s.long, n: s.n, alloc: s.allocator()}
	s.long = nil
	clear(s.short[:])
	s.n = 0
	return moved
}

// Substring returns a new String holding the length bytes starting at start.
func (s *String) Substring(start, length int) (*String, error) {
	buf.Range("String.Substring", start, length, s.n)
	return FromBytes(s.storage()[start:start+length], Options{Allocator: s.allocator()})
}

// StringViewOf returns a view of the length bytes starting at start.
func (s *String) StringViewOf(start, length int) View {
	buf.Range("String.StringViewOf", start, length, s.n)
	end := start + length
	return View{b: s.storage()[start:end:end]}
}

// First returns a new String holding the first n bytes (all of s when n exceeds Len).
func (s *String) First(n int) (*String, error) {
	return s.Substring(0, buf.Clamp(0, n, s.n))
}

// Last returns a new String holding the last n bytes (all of s when n exceeds Len).
func (s *String) Last(n int) (*String, error) {
	n = buf.Clamp(0, n, s.n)
	return s.Substring(s.n-n, n)
}

// FirstView returns a view of the first n bytes (all of s when n exceeds Len).
func (s *String) FirstView(n int) View {
	return s.StringViewOf(0, buf.Clamp(0, n, s.n))
}

// LastView returns a view of the last n bytes (all of s when n exceeds Len).
func (s *String) LastView(n int) View {
	n = buf.Clamp(0, n, s.n)
	return s.StringViewOf(s.n-n, n)
}
