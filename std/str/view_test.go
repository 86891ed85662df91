package str

import (
	"testing"

	"github.com/braxtons12/C2nxt/std/iterator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_Basics(t *testing.T) {
	v := ViewOf(sentence)

	assert.Equal(t, len(sentence), v.Len())
	assert.False(t, v.IsEmpty())
	assert.True(t, View{}.IsEmpty())
	assert.Equal(t, byte('T'), v.At(0))
	assert.Equal(t, "a test", v.Sub(8, 6).String())
	assert.True(t, v.Sub(8, 6).EqualString("a test"))
	assert.True(t, v.First(4).Equal(ViewOf("This")))
	assert.Equal(t, "test", v.Last(4).String())
	assert.Equal(t, sentence, v.First(1000).String())

	requireOutOfBounds(t, func() { v.At(v.Len()) })
	requireOutOfBounds(t, func() { v.Sub(20, 10) })
}

func TestView_TrySub(t *testing.T) {
	v := ViewOf(sentence)

	tests := []struct {
		name          string
		start, length int
		expected      string
		ok            bool
	}{
		{"middle", 8, 6, "a test", true},
		{"empty at end", v.Len(), 0, "", true},
		{"past end", 20, 10, "", false},
		{"negative start", -1, 2, "", false},
		{"negative length", 2, -1, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := v.TrySub(tt.start, tt.length)
			require.Equal(t, tt.ok, got.IsSome())
			if tt.ok {
				assert.Equal(t, tt.expected, got.Unwrap().String())
				assert.Equal(t, tt.expected, v.Sub(tt.start, tt.length).String())
			} else {
				requireOutOfBounds(t, func() { v.Sub(tt.start, tt.length) })
			}
		})
	}
}

func TestView_Search(t *testing.T) {
	v := ViewOf(sentence)

	assert.True(t, v.Contains(ViewOf("is a")))
	assert.Equal(t, 10, v.FindFirst(ViewOf("test")).Unwrap())
	assert.Equal(t, 20, v.FindLast(ViewOf("test")).Unwrap())
	assert.True(t, v.FindFirst(ViewOf("nope")).IsNone())
}

// TestView_BorrowsString tests that a view sees the string's current bytes.
func TestView_BorrowsString(t *testing.T) {
	s := mustFrom(t, "abcdef")
	v := s.StringViewOf(2, 3)

	s.Set(2, 'C')
	assert.Equal(t, "Cde", v.String())

	owned, err := FromView(v)
	assert.NoError(t, err)
	defer owned.Free()
	s.Set(2, 'c')
	assert.Equal(t, "Cde", owned.String(), "FromView copies")
}

func TestView_Cursors(t *testing.T) {
	v := ViewOfBytes([]byte("xyz"))

	assert.Equal(t, []byte("xyz"), iterator.Collect[byte](v.CBegin(), v.CEnd()))
	assert.Equal(t, []byte("zyx"), iterator.Collect[byte](v.CRBegin(), v.CREnd()))
	requireOutOfBounds(t, func() { v.CEnd().Get() })

	var idx []int
	for i := range v.All() {
		idx = append(idx, i)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	assert.True(t, v.CEnd().Equal(ViewOfBytes(v.Bytes()).CEnd()), "views of the same bytes share cursors")
	other := ViewOfBytes([]byte("xyz"))
	assert.False(t, v.CEnd().Equal(other.CEnd()))
	assert.False(t, v.CBegin().Equal(other.CBegin()))
}
