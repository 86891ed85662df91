package str

import (
	"strings"
	"testing"

	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestStringProperties checks the representation and round-trip laws.
func TestStringProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(9753)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	lengths := gen.IntRange(0, 3*types.ShortStringCapacity)

	// Property: a string built from L bytes is Short iff L fits inline
	properties.Property("short iff fits inline", prop.ForAll(
		func(n int) bool {
			s := MustFrom(strings.Repeat("s", n))
			defer s.Free()
			return s.IsShort() == (n <= types.ShortStringCapacity)
		},
		lengths,
	))

	// Property: From then byte-wise reads reproduce the input exactly
	properties.Property("round trip", prop.ForAll(
		func(text string) bool {
			s := MustFrom(text)
			defer s.Free()
			if s.Len() != len(text) {
				return false
			}
			for i := range len(text) {
				if s.At(i) != text[i] {
					return false
				}
			}
			return s.CString()[s.Len()] == 0
		},
		gen.AnyString(),
	))

	// Property: crossing the inline capacity goes Long and stays Long until shrunk
	properties.Property("long is sticky", prop.ForAll(
		func(n int, erase int) bool {
			s := MustFrom("")
			defer s.Free()
			for range types.ShortStringCapacity + 1 + n {
				if err := s.PushBack('x'); err != nil {
					return false
				}
			}
			if s.IsShort() {
				return false
			}
			s.EraseN(0, erase)
			if s.IsShort() {
				return false
			}
			if err := s.ShrinkToFit(); err != nil {
				return false
			}
			return s.IsShort() == (s.Len() <= types.ShortStringCapacity)
		},
		gen.IntRange(0, 64),
		gen.IntRange(0, 128),
	))

	// Property: ShrinkToFit twice leaves the capacity unchanged after the second call
	properties.Property("shrink idempotent", prop.ForAll(
		func(n int, extra int) bool {
			s := MustFrom(strings.Repeat("a", n))
			defer s.Free()
			if err := s.Reserve(n + extra); err != nil {
				return false
			}
			if err := s.ShrinkToFit(); err != nil {
				return false
			}
			first := s.Cap()
			if err := s.ShrinkToFit(); err != nil {
				return false
			}
			return s.Cap() == first
		},
		lengths,
		gen.IntRange(0, 256),
	))

	// Property: Insert then At returns the inserted byte and the length grows by one
	properties.Property("insert then at", prop.ForAll(
		func(text string, c byte, pos int) bool {
			s := MustFrom(text)
			defer s.Free()
			i := pos % (s.Len() + 1)
			before := s.Len()
			if err := s.InsertBytes([]byte{c}, i); err != nil {
				return false
			}
			return s.At(i) == c && s.Len() == before+1
		},
		gen.AlphaString(),
		gen.UInt8(),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
