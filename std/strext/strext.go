// Package strext provides splitting and occurrence helpers built on str and vector.
//
// Every function that returns a Vector transfers ownership of it to the
// caller, who must Free it. Vectors of owned strings free their strings too.
package strext

import (
	"bytes"

	"github.com/braxtons12/C2nxt/std/collection"
	"github.com/braxtons12/C2nxt/std/str"
	"github.com/braxtons12/C2nxt/std/vector"
	"github.com/cockroachdb/errors"
)

// Strings returns element hooks for vectors owning *str.String values:
// copies are clones and destruction frees the string.
func Strings() collection.Data[*str.String] {
	return collection.Data[*str.String]{
		Construct: func() *str.String { return str.New() },
		Copy: func(src **str.String) *str.String {
			c, err := (*src).Clone()
			if err != nil {
				// Copy hooks cannot fail; a clone that cannot be allocated is fatal.
				panic(errors.Wrap(err, "strext: clone element"))
			}
			return c
		},
		Destroy: func(elem **str.String) {
			(*elem).Free()
			*elem = nil
		},
	}
}

// segments calls fn with the bounds of every non-empty run between delimiters.
func segments(b []byte, delim byte, fn func(start, end int) error) error {
	start := 0
	for i, c := range b {
		if c != delim {
			continue
		}
		if i > start {
			if err := fn(start, i); err != nil {
				return err
			}
		}
		start = i + 1
	}
	if start < len(b) {
		return fn(start, len(b))
	}
	return nil
}

// SplitOn returns owned copies of the non-empty segments of s separated by
// delim. The copies use s's allocator. A string without delim yields one copy
// of itself; an empty string yields none.
func SplitOn(s *str.String, delim byte) (*vector.Vector[*str.String], error) {
	out, err := vector.New(vector.Options[*str.String]{Elements: Strings()})
	if err != nil {
		return nil, err
	}
	err = segments(s.Bytes(), delim, func(start, end int) error {
		part, err := s.Substring(start, end-start)
		if err != nil {
			return err
		}
		if err := out.PushBack(part); err != nil {
			part.Free()
			return err
		}
		return nil
	})
	if err != nil {
		out.Free()
		return nil, errors.Wrap(err, "strext: split")
	}
	return out, nil
}

// SplitViewsOn is SplitOn returning views into s instead of copies. The views
// are invalidated when s reallocates.
func SplitViewsOn(s *str.String, delim byte) (*vector.Vector[str.View], error) {
	out, err := vector.New[str.View]()
	if err != nil {
		return nil, err
	}
	err = segments(s.Bytes(), delim, func(start, end int) error {
		return out.PushBack(s.StringViewOf(start, end-start))
	})
	if err != nil {
		out.Free()
		return nil, errors.Wrap(err, "strext: split views")
	}
	return out, nil
}

// OccurrencesOfByte returns how many times c occurs in s.
func OccurrencesOfByte(s *str.String, c byte) int {
	return bytes.Count(s.Bytes(), []byte{c})
}

// eachOccurrence calls fn with the start of every (possibly overlapping)
// match of needle. An empty needle matches nowhere.
func eachOccurrence(haystack, needle []byte, fn func(int) error) error {
	if len(needle) == 0 {
		return nil
	}
	for i := 0; i+len(needle) <= len(haystack); {
		j := bytes.Index(haystack[i:], needle)
		if j < 0 {
			return nil
		}
		if err := fn(i + j); err != nil {
			return err
		}
		i += j + 1
	}
	return nil
}

// OccurrencesOf returns how many times needle occurs in s, counting
// overlapping matches.
func OccurrencesOf(s *str.String, needle str.View) int {
	n := 0
	_ = eachOccurrence(s.Bytes(), needle.Bytes(), func(int) error {
		n++
		return nil
	})
	return n
}

// FindOccurrencesOf returns the start index of every (possibly overlapping)
// occurrence of needle in s, in increasing order.
func FindOccurrencesOf(s *str.String, needle str.View) (*vector.Vector[int], error) {
	out, err := vector.New[int]()
	if err != nil {
		return nil, err
	}
	if err := eachOccurrence(s.Bytes(), needle.Bytes(), out.PushBack); err != nil {
		out.Free()
		return nil, errors.Wrap(err, "strext: find occurrences")
	}
	return out, nil
}

// FindOccurrencesOfByte returns the index of every occurrence of c in s.
func FindOccurrencesOfByte(s *str.String, c byte) (*vector.Vector[int], error) {
	out, err := vector.New[int]()
	if err != nil {
		return nil, err
	}
	for i, b := range s.Bytes() {
		if b != c {
			continue
		}
		if err := out.PushBack(i); err != nil {
			out.Free()
			return nil, errors.Wrap(err, "strext: find occurrences")
		}
	}
	return out, nil
}
