package types

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf_Sentinels(t *testing.T) {
	cases := []struct {
		err  error
		kind ErrKind
	}{
		{ErrOutOfBounds, ErrKindOutOfBounds},
		{ErrOutOfMemory, ErrKindOutOfMemory},
		{ErrUnwrapOnEmpty, ErrKindUnwrapOnEmpty},
		{ErrUnwrapOnError, ErrKindUnwrapOnError},
		{ErrInvalidAccess, ErrKindInvalidAccess},
	}
	for _, tc := range cases {
		kind, ok := KindOf(tc.err)
		require.True(t, ok, "KindOf(%v)", tc.err)
		assert.Equal(t, tc.kind, kind)
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := errors.Wrapf(ErrOutOfMemory, "alloc: %d bytes", 64)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindOutOfMemory, kind)
	assert.True(t, errors.Is(err, ErrOutOfMemory))
	assert.Contains(t, err.Error(), "out of memory")
}

func TestKindOf_Marked(t *testing.T) {
	err := errors.Mark(errors.AssertionFailedf("index 3 >= length 2"), ErrOutOfBounds)
	kind, ok := KindOf(err)
	require.True(t, ok)
	assert.Equal(t, ErrKindOutOfBounds, kind)
}

func TestKindOf_Unrelated(t *testing.T) {
	_, ok := KindOf(errors.New("something else"))
	assert.False(t, ok)
	_, ok = KindOf(nil)
	assert.False(t, ok)
}

func TestError_Message(t *testing.T) {
	e := &Error{Kind: ErrKindOutOfMemory, Msg: "budget exhausted", Err: errors.New("limit 64")}
	assert.Equal(t, "budget exhausted: limit 64", e.Error())
	assert.Equal(t, "OutOfMemory", e.Kind.String())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestShortStringCapacity(t *testing.T) {
	assert.Equal(t, 3*WordBytes-1, ShortStringCapacity)
	assert.GreaterOrEqual(t, ShortStringCapacity, 2*WordBytes)
}
