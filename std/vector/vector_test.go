package vector

import (
	"bytes"
	"slices"
	"testing"

	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/braxtons12/C2nxt/std/alloc"
	"github.com/braxtons12/C2nxt/std/collection"
	"github.com/braxtons12/C2nxt/std/iterator"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireOutOfBounds(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		assert.True(t, errors.Is(err, types.ErrOutOfBounds), "got %v", err)
	}()
	fn()
}

// newTracked returns an empty vector whose allocations are recorded.
func newTracked[T any](t *testing.T) (*Vector[T], *alloc.Tracking[T]) {
	t.Helper()
	tr := alloc.NewTracking[T](nil)
	v, err := New(Options[T]{Allocator: tr})
	require.NoError(t, err)
	return v, tr
}

// TestVector_PushAndIndex tests basic appends and element access.
func TestVector_PushAndIndex(t *testing.T) {
	v, tr := newTracked[int](t)

	for i := range 10 {
		require.NoError(t, v.PushBack(i))
	}
	assert.Equal(t, 10, v.Len())
	assert.GreaterOrEqual(t, v.Cap(), 10)
	assert.Equal(t, 0, v.Front())
	assert.Equal(t, 9, v.Back())
	assert.Equal(t, 4, v.At(4))

	v.Set(4, 40)
	*v.Ref(5) = 50
	assert.Equal(t, []int{0, 1, 2, 3, 40, 50, 6, 7, 8, 9}, v.Data())

	v.Free()
	assert.Zero(t, tr.Live(), "Free must release every buffer")
	assert.Zero(t, tr.Foreign())
}

// TestVector_GrowthPolicy tests the doubling growth and its rounding.
func TestVector_GrowthPolicy(t *testing.T) {
	v, tr := newTracked[int64](t)
	defer v.Free()

	var caps []int
	prev := v.Cap()
	for i := range 1000 {
		require.NoError(t, v.PushBack(int64(i)))
		if v.Cap() != prev {
			caps = append(caps, v.Cap())
			prev = v.Cap()
		}
	}

	assert.Equal(t, 2*types.VectorShortCapacity, caps[0], "first allocation doubles the inline capacity")
	for i := 1; i < len(caps); i++ {
		assert.GreaterOrEqual(t, caps[i], 2*caps[i-1], "each growth at least doubles")
	}
	assert.LessOrEqual(t, tr.Stats().Allocations, 10, "1000 pushes need O(log N) reallocations")
	assert.Equal(t, 1, tr.Live(), "old buffers are released on growth")
}

// TestVector_GrowthFailure tests the strong guarantee on allocation failure.
func TestVector_GrowthFailure(t *testing.T) {
	limited := alloc.NewLimited[int64](nil, 16*8)
	v, err := New(Options[int64]{Allocator: limited})
	require.NoError(t, err)
	defer v.Free()

	for i := range 16 {
		require.NoError(t, v.PushBack(int64(i)))
	}
	before := slices.Clone(v.Data())
	beforeCap := v.Cap()

	err = v.PushBack(99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrOutOfMemory))
	kind, ok := types.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrKindOutOfMemory, kind)

	assert.Equal(t, before, v.Data(), "contents untouched")
	assert.Equal(t, beforeCap, v.Cap(), "buffer untouched")

	require.Error(t, v.Insert(5, 0))
	require.Error(t, v.Append(1, 2))
	require.Error(t, v.Reserve(100))
	require.Error(t, v.Resize(20))
	assert.Equal(t, before, v.Data())

	_, err = New(Options[int64]{Allocator: limited, Capacity: 100})
	require.Error(t, err, "construction with capacity surfaces OutOfMemory")

	small, err := New(Options[int64]{Allocator: limited, Capacity: types.VectorShortCapacity})
	require.NoError(t, err, "inline capacity needs no allocation")
	small.Free()
}

// TestVector_PushPop tests that pop undoes push.
func TestVector_PushPop(t *testing.T) {
	v, err := From([]string{"a", "b"})
	require.NoError(t, err)
	defer v.Free()

	require.NoError(t, v.PushBack("c"))
	got := v.PopBack()
	assert.Equal(t, "c", got.Unwrap())
	assert.Equal(t, 2, v.Len())

	v.PopBack()
	v.PopBack()
	assert.True(t, v.PopBack().IsNone())
}

// TestVector_InsertErase tests shifting and bounds.
func TestVector_InsertErase(t *testing.T) {
	v, err := From([]int{1, 2, 4})
	require.NoError(t, err)
	defer v.Free()

	require.NoError(t, v.Insert(3, 2))
	require.NoError(t, v.Insert(0, 0))
	require.NoError(t, v.Insert(5, v.Len()))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5}, v.Data())

	v.Erase(0)
	v.EraseN(1, 2)
	assert.Equal(t, []int{1, 4, 5}, v.Data())
	v.EraseN(2, 10)
	assert.Equal(t, []int{1, 4}, v.Data(), "count is clamped")

	requireOutOfBounds(t, func() { _ = v.Insert(9, 3) })
	requireOutOfBounds(t, func() { v.Erase(2) })
	requireOutOfBounds(t, func() { v.At(2) })
	requireOutOfBounds(t, func() { v.EraseN(3, 1) })
	requireOutOfBounds(t, func() { _ = v.Resize(-1) })
}

// TestVector_Reserve tests that reserve only grows.
func TestVector_Reserve(t *testing.T) {
	v, tr := newTracked[int32](t)
	defer v.Free()

	require.NoError(t, v.Reserve(100))
	assert.GreaterOrEqual(t, v.Cap(), 100)
	c := v.Cap()

	require.NoError(t, v.Reserve(10))
	assert.Equal(t, c, v.Cap(), "reserve never shrinks")
	assert.Equal(t, 1, tr.Stats().Allocations, "no-op reserve does not allocate")
}

// TestVector_ShrinkToFit tests exact shrinking, idempotence and the return
// to inline storage.
func TestVector_ShrinkToFit(t *testing.T) {
	v, tr := newTracked[int](t)
	defer v.Free()

	require.NoError(t, v.Append(0, 1, 2, 3, 4, 5, 6, 7, 8, 9))
	assert.Equal(t, 16, v.Cap())
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 10, v.Cap())
	assert.False(t, v.IsShort())

	allocs := tr.Stats().Allocations
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, 10, v.Cap(), "second shrink leaves capacity unchanged")
	assert.Equal(t, allocs, tr.Stats().Allocations)

	v.EraseN(5, 5)
	require.NoError(t, v.ShrinkToFit())
	assert.True(t, v.IsShort(), "elements that fit inline move back")
	assert.Equal(t, types.VectorShortCapacity, v.Cap())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, v.Data())
	assert.Zero(t, tr.Live(), "the allocated buffer is released")

	v.Clear()
	require.NoError(t, v.ShrinkToFit())
	assert.Equal(t, types.VectorShortCapacity, v.Cap())
	assert.Equal(t, allocs, tr.Stats().Allocations, "shrinking never allocates into inline storage")
}

// TestVector_ShortBuffer tests the switch between inline and allocated storage.
func TestVector_ShortBuffer(t *testing.T) {
	v, tr := newTracked[int](t)
	defer v.Free()

	assert.True(t, v.IsShort())
	assert.Equal(t, types.VectorShortCapacity, v.Cap())

	for i := range types.VectorShortCapacity {
		require.NoError(t, v.PushBack(i))
	}
	assert.True(t, v.IsShort())
	assert.True(t, v.IsFull())
	assert.Zero(t, tr.Stats().Allocations, "inline elements allocate nothing")

	require.NoError(t, v.PushBack(8))
	assert.False(t, v.IsShort())
	assert.Equal(t, 16, v.Cap())
	assert.Equal(t, 1, tr.Live())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, v.Data())

	v.PopBack()
	require.NoError(t, v.ShrinkToFit())
	assert.True(t, v.IsShort())
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, v.Data())
	assert.Zero(t, tr.Live())

	require.NoError(t, v.Insert(-1, 0))
	assert.False(t, v.IsShort(), "insert past the inline capacity goes Long again")
	assert.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5, 6, 7}, v.Data())
}

// TestVector_AppendSelf tests appending a vector's own elements.
func TestVector_AppendSelf(t *testing.T) {
	tests := []struct {
		name   string
		values []int
	}{
		{"inline stays inline", []int{1, 2, 3, 4}},
		{"inline grows", []int{1, 2, 3, 4, 5, 6}},
		{"allocated grows", []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := alloc.NewTracking[int](nil)
			v, err := From(tt.values, Options[int]{Allocator: tr})
			require.NoError(t, err)

			require.NoError(t, v.Append(v.Data()...))
			assert.Equal(t, append(slices.Clone(tt.values), tt.values...), v.Data())

			require.NoError(t, v.Append(v.Data()[1:3]...))
			assert.Equal(t, tt.values[1:3], v.Data()[v.Len()-2:])

			v.Free()
			assert.Zero(t, tr.Live())
		})
	}
}

// TestVector_ResizeHooks tests construction and destruction on resize.
func TestVector_ResizeHooks(t *testing.T) {
	var destroyed []int
	v, err := New(Options[int]{Elements: collection.Data[int]{
		Construct: func() int { return 7 },
		Destroy:   func(x *int) { destroyed = append(destroyed, *x) },
	}})
	require.NoError(t, err)

	require.NoError(t, v.Resize(3))
	assert.Equal(t, []int{7, 7, 7}, v.Data())

	v.Set(1, 1)
	v.Set(2, 2)
	assert.Equal(t, []int{7, 7}, destroyed, "Set destroys the replaced element")

	require.NoError(t, v.Resize(1))
	assert.Equal(t, []int{7, 7, 2, 1}, destroyed, "shrink destroys last first")

	v.Free()
	assert.Equal(t, []int{7, 7, 2, 1, 7}, destroyed)
	v.Free()
	assert.Len(t, destroyed, 5, "Free is idempotent")
}

// TestVector_Clone tests that clones own independent buffers.
func TestVector_Clone(t *testing.T) {
	v, tr := newTracked[[]byte](t)
	defer v.Free()
	v.data = collection.Resolve(collection.Data[[]byte]{Copy: func(b *[]byte) []byte { return slices.Clone(*b) }})

	require.NoError(t, v.PushBack([]byte("abc")))
	c, err := v.Clone()
	require.NoError(t, err)
	defer c.Free()

	c.At(0)[0] = 'X'
	assert.Equal(t, "abc", string(v.At(0)))
	assert.Zero(t, tr.Live(), "short vectors clone inline")

	for range types.VectorShortCapacity {
		require.NoError(t, v.PushBack([]byte("def")))
	}
	long, err := v.Clone()
	require.NoError(t, err)
	defer long.Free()
	assert.True(t, EqualFunc(v, long, bytes.Equal))
	assert.Equal(t, 2, tr.Live(), "the clone allocates from the same allocator")
	assert.Same(t, tr, c.Allocator())
}

// TestVector_Take tests ownership transfer.
func TestVector_Take(t *testing.T) {
	v, tr := newTracked[int](t)
	require.NoError(t, v.Append(1, 2, 3, 4, 5, 6, 7, 8, 9))

	moved := v.Take()
	assert.Zero(t, v.Len())
	assert.True(t, v.IsShort())
	assert.Equal(t, types.VectorShortCapacity, v.Cap())
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, moved.Data())

	short, _ := newTracked[int](t)
	require.NoError(t, short.Append(1, 2, 3))
	movedShort := short.Take()
	assert.Zero(t, short.Len())
	assert.Equal(t, []int{1, 2, 3}, movedShort.Data(), "inline elements are copied out")

	v.Free()
	assert.Equal(t, 1, tr.Live(), "moved-from Free releases nothing")
	moved.Free()
	assert.Zero(t, tr.Live())
	assert.Zero(t, tr.Foreign())

	require.NoError(t, v.PushBack(4), "moved-from vector is reusable")
	v.Free()
}

// TestVector_ZeroValue tests that the zero Vector works with the default allocator.
func TestVector_ZeroValue(t *testing.T) {
	var v Vector[int]
	defer v.Free()

	assert.True(t, v.IsEmpty())
	assert.False(t, v.IsFull())
	assert.Equal(t, types.VectorShortCapacity, v.Cap())
	require.NoError(t, v.PushBack(1))
	assert.Equal(t, 1, v.At(0))
	assert.NotNil(t, v.Allocator())
}

func TestVector_Equal(t *testing.T) {
	a, _ := From([]int{1, 2, 3})
	b, _ := From([]int{1, 2, 3}, Options[int]{Capacity: 50})
	c, _ := From([]int{1, 2})
	defer a.Free()
	defer b.Free()
	defer c.Free()

	assert.True(t, Equal(a, b), "capacity is not part of equality")
	assert.False(t, Equal(a, c))
	assert.True(t, EqualFunc(a, b, func(x, y int) bool { return x == y }))
}

// TestVector_Iteration tests cursors and sequences.
func TestVector_Iteration(t *testing.T) {
	v, err := From([]int{1, 2, 3})
	require.NoError(t, err)
	defer v.Free()

	assert.Equal(t, []int{1, 2, 3}, slices.Collect(v.Values()))
	assert.Equal(t, []int{3, 2, 1}, iterator.Collect[int](v.RBegin(), v.REnd()))
	assert.Equal(t, []int{1, 2, 3}, iterator.Collect[int](v.CBegin(), v.CEnd()))
	assert.Equal(t, 1, iterator.Count(v.CBegin(), v.CEnd(), func(x int) bool { return x == 2 }))

	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		it.Set(it.Get() * 2)
	}
	assert.Equal(t, []int{2, 4, 6}, v.Data())

	sum := 0
	for i, x := range v.All() {
		sum += i * x
	}
	assert.Equal(t, 0*2+1*4+2*6, sum)

	var back []int
	for _, x := range v.Backward() {
		back = append(back, x)
	}
	assert.Equal(t, []int{6, 4, 2}, back)

	requireOutOfBounds(t, func() { v.End().Get() })
	requireOutOfBounds(t, func() { v.CREnd().Get() })
}

// TestCollect tests materializing lazy ranges into a vector.
func TestCollect(t *testing.T) {
	v, err := From([]int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9})
	require.NoError(t, err)
	defer v.Free()

	even := iterator.Filter(v.CBegin(), v.CEnd(), func(x int) bool { return x%2 == 0 })
	evens, err := Collect(even)
	require.NoError(t, err)
	defer evens.Free()
	assert.Equal(t, []int{0, 2, 4, 6, 8}, evens.Data())

	first, err := Collect(iterator.TakeFirst[int](v.CBegin(), v.CEnd(), 5))
	require.NoError(t, err)
	defer first.Free()
	assert.Equal(t, 5, first.Len())

	iterator.Transform(v.Begin(), v.End(), func(x *int) { *x *= 2 })
	assert.Equal(t, 90, iterator.Accumulate(v.CBegin(), v.CEnd(), 0, func(acc, x int) int { return acc + x }))

	limited := alloc.NewLimited[int](nil, 8)
	_, err = Collect(slices.Values(v.Data()), Options[int]{Allocator: limited})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrOutOfMemory))
	assert.Zero(t, limited.Used(), "a failed collect releases what it took")
}
