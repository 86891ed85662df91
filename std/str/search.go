package str

import (
	"bytes"
	"unsafe"

	"github.com/braxtons12/C2nxt/std/option"
)

// bytesOf returns the bytes of text without copying. The result must not be written.
func bytesOf(text string) []byte {
	return unsafe.Slice(unsafe.StringData(text), len(text))
}

func findFirst(haystack, needle []byte) option.Option[int] {
	if len(needle) > len(haystack) {
		return option.None[int]()
	}
	i := bytes.Index(haystack, needle)
	return option.FromPair(i, i >= 0)
}

// findLast returns the start of the rightmost match.
func findLast(haystack, needle []byte) option.Option[int] {
	if len(needle) > len(haystack) {
		return option.None[int]()
	}
	i := bytes.LastIndex(haystack, needle)
	return option.FromPair(i, i >= 0)
}

// Equal reports whether s and o hold the same content.
func (s *String) Equal(o *String) bool {
	return bytes.Equal(s.Bytes(), o.Bytes())
}

// EqualString reports whether s holds text.
func (s *String) EqualString(text string) bool {
	return bytes.Equal(s.Bytes(), bytesOf(text))
}

// EqualBytes reports whether s holds b.
func (s *String) EqualBytes(b []byte) bool {
	return bytes.Equal(s.Bytes(), b)
}

// EqualView reports whether s holds the viewed bytes.
func (s *String) EqualView(v View) bool {
	return bytes.Equal(s.Bytes(), v.b)
}

// Contains reports whether needle occurs in s.
func (s *String) Contains(needle string) bool {
	return bytes.Contains(s.Bytes(), bytesOf(needle))
}

// ContainsView reports whether the viewed bytes occur in s.
func (s *String) ContainsView(needle View) bool {
	return bytes.Contains(s.Bytes(), needle.b)
}

// StartsWith reports whether s begins with prefix.
func (s *String) StartsWith(prefix string) bool {
	return bytes.HasPrefix(s.Bytes(), bytesOf(prefix))
}

// StartsWithView reports whether s begins with the viewed bytes.
func (s *String) StartsWithView(prefix View) bool {
	return bytes.HasPrefix(s.Bytes(), prefix.b)
}

// EndsWith reports whether s ends with suffix.
func (s *String) EndsWith(suffix string) bool {
	return bytes.HasSuffix(s.Bytes(), bytesOf(suffix))
}

// EndsWithView reports whether s ends with the viewed bytes.
func (s *String) EndsWithView(suffix View) bool {
	return bytes.HasSuffix(s.Bytes(), suffix.b)
}

// FindFirst returns the index of the first occurrence of needle.
// An empty needle is found at 0.
func (s *String) FindFirst(needle string) option.Option[int] {
	return findFirst(s.Bytes(), bytesOf(needle))
}

// FindFirstView is FindFirst for a view.
func (s *String) FindFirstView(needle View) option.Option[int] {
	return findFirst(s.Bytes(), needle.b)
}

// FindLast returns the start index of the last occurrence of needle.
// An empty needle is found at Len.
func (s *String) FindLast(needle string) option.Option[int] {
	return findLast(s.Bytes(), bytesOf(needle))
}

// FindLastView is FindLast for a view.
func (s *String) FindLastView(needle View) option.Option[int] {
	return findLast(s.Bytes(), needle.b)
}
