package option

import (
	"errors"
	"strconv"
	"testing"

	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePanicKind runs fn and asserts that it panics with an error of kind.
func requirePanicKind(t *testing.T, kind types.ErrKind, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		got, ok := types.KindOf(err)
		require.True(t, ok, "panic should be classified: %v", err)
		assert.Equal(t, kind, got)
	}()
	fn()
}

func TestSomeNone(t *testing.T) {
	s := Some(42)
	assert.True(t, s.IsSome())
	assert.False(t, s.IsNone())
	assert.Equal(t, 42, s.Unwrap())
	assert.Equal(t, 42, s.Expect("present"))

	n := None[int]()
	assert.True(t, n.IsNone())
	assert.False(t, n.IsSome())

	var zero Option[string]
	assert.True(t, zero.IsNone(), "zero value is None")
}

// TestUnwrap_OnNone tests the UnwrapOnEmpty failure.
func TestUnwrap_OnNone(t *testing.T) {
	n := None[int]()
	requirePanicKind(t, types.ErrKindUnwrapOnEmpty, func() { n.Unwrap() })
	requirePanicKind(t, types.ErrKindUnwrapOnEmpty, func() { n.Expect("needed a value") })
	requirePanicKind(t, types.ErrKindInvalidAccess, func() { n.Ref() })
}

// TestUnwrapOr tests that the total accessors never fail.
func TestUnwrapOr(t *testing.T) {
	assert.Equal(t, 7, None[int]().UnwrapOr(7))
	assert.Equal(t, 3, Some(3).UnwrapOr(7))
	assert.Equal(t, 9, None[int]().UnwrapOrElse(func() int { return 9 }))
	assert.Equal(t, "", None[string]().UnwrapOrZero())

	v, ok := Some("x").Get()
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	_, ok = None[string]().Get()
	assert.False(t, ok)
}

func TestFromPair(t *testing.T) {
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	assert.Equal(t, Some(1), FromPair(v, ok))
	v, ok = m["b"]
	assert.True(t, FromPair(v, ok).IsNone())
}

// TestMap tests that Map transforms Some and is the identity on None.
func TestMap(t *testing.T) {
	got := Map(Some(12), strconv.Itoa)
	assert.Equal(t, Some("12"), got)

	empty := Map(None[int](), strconv.Itoa)
	assert.True(t, empty.IsNone())

	half := func(n int) Option[int] {
		if n%2 != 0 {
			return None[int]()
		}
		return Some(n / 2)
	}
	assert.Equal(t, Some(4), AndThen(Some(8), half))
	assert.True(t, AndThen(Some(7), half).IsNone())
	assert.True(t, AndThen(None[int](), half).IsNone())
}

// TestCopySemantics tests that copies never share a payload.
func TestCopySemantics(t *testing.T) {
	a := Some([2]int{1, 2})
	b := a
	b.Ref()[0] = 99
	assert.Equal(t, 1, a.Unwrap()[0])
	assert.Equal(t, 99, b.Unwrap()[0])
}

func TestOrFilterString(t *testing.T) {
	assert.Equal(t, Some(1), None[int]().Or(Some(1)))
	assert.Equal(t, Some(2), Some(2).Or(Some(1)))
	assert.True(t, Some(3).Filter(func(n int) bool { return n > 5 }).IsNone())
	assert.Equal(t, "Some(3)", Some(3).String())
	assert.Equal(t, "None", None[int]().String())
}

func TestOkOr(t *testing.T) {
	sentinel := errors.New("missing")
	v, err := OkOr(Some(5), sentinel)
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = OkOr(None[int](), sentinel)
	assert.ErrorIs(t, err, sentinel)
}
