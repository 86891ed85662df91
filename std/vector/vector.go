package vector

import (
	"iter"
	"slices"
	"unsafe"

	"github.com/braxtons12/C2nxt/internal/buf"
	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/braxtons12/C2nxt/std/alloc"
	"github.com/braxtons12/C2nxt/std/collection"
	"github.com/braxtons12/C2nxt/std/option"
	"github.com/cockroachdb/errors"
)

// Options configures a new Vector.
type Options[T any] struct {
	// Allocator serves every buffer of the vector. Nil uses alloc.Default.
	Allocator alloc.Allocator[T]
	// Capacity reserves room for at least this many elements up front.
	Capacity int
	// Elements are the element lifecycle hooks. Missing hooks default to
	// zero construction, plain copy and no-op destruction.
	Elements collection.Data[T]
}

// Vector is a growable sequence. See the package documentation.
type Vector[T any] struct {
	short [types.VectorShortCapacity]T
	long  []T // nil while Short; len(long) is the capacity while Long
	n     int
	alloc alloc.Allocator[T]
	data  collection.Data[T]
}

// New returns an empty Vector configured by the first of opts.
func New[T any](opts ...Options[T]) (*Vector[T], error) {
	var o Options[T]
	if len(opts) > 0 {
		o = opts[0]
	}
	if o.Allocator == nil {
		o.Allocator = alloc.Default[T]()
	}
	v := &Vector[T]{alloc: o.Allocator, data: collection.Resolve(o.Elements)}
	if o.Capacity > 0 {
		if err := v.Reserve(o.Capacity); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// From returns a Vector holding values. The vector takes ownership of the
// elements; no Copy hook runs.
func From[T any](values []T, opts ...Options[T]) (*Vector[T], error) {
	var o Options[T]
	if len(opts) > 0 {
		o = opts[0]
	}
	o.Capacity = max(o.Capacity, len(values))
	v, err := New(o)
	if err != nil {
		return nil, err
	}
	v.n = copy(v.buffer(), values)
	return v, nil
}

// Collect returns a Vector holding every element of seq, in order. Pair it
// with the iterator adapters to materialize a filtered or mapped range.
func Collect[T any](seq iter.Seq[T], opts ...Options[T]) (*Vector[T], error) {
	v, err := New(opts...)
	if err != nil {
		return nil, err
	}
	for x := range seq {
		if err := v.PushBack(x); err != nil {
			v.Free()
			return nil, err
		}
	}
	return v, nil
}

func (v *Vector[T]) allocator() alloc.Allocator[T] {
	if v.alloc == nil {
		v.alloc = alloc.Default[T]()
		v.data = collection.Resolve(v.data)
	}
	return v.alloc
}

func (v *Vector[T]) hooks() collection.Data[T] {
	if v.data.Destroy == nil {
		v.data = collection.Resolve(v.data)
	}
	return v.data
}

// buffer returns the active storage, inline or allocated.
func (v *Vector[T]) buffer() []T {
	if v.long != nil {
		return v.long
	}
	return v.short[:]
}

// Allocator returns the allocator serving v's buffers.
func (v *Vector[T]) Allocator() alloc.Allocator[T] { return v.allocator() }

// Len returns the number of elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the number of elements v can hold without reallocating. A
// Short vector reports its inline capacity.
func (v *Vector[T]) Cap() int { return len(v.buffer()) }

// IsShort reports whether the elements are stored inline.
func (v *Vector[T]) IsShort() bool { return v.long == nil }

// IsEmpty reports whether v has no elements.
func (v *Vector[T]) IsEmpty() bool { return v.n == 0 }

// IsFull reports whether the next insertion will reallocate.
func (v *Vector[T]) IsFull() bool { return v.n == v.Cap() }

// At returns the element at i.
func (v *Vector[T]) At(i int) T {
	buf.Index("Vector.At", i, v.n)
	return v.buffer()[i]
}

// Ref returns a reference to the element at i, valid until the next
// reallocation or shift.
func (v *Vector[T]) Ref(i int) *T {
	buf.Index("Vector.Ref", i, v.n)
	return &v.buffer()[i]
}

// Set overwrites the element at i, destroying the previous one.
func (v *Vector[T]) Set(i int, value T) {
	buf.Index("Vector.Set", i, v.n)
	b := v.buffer()
	v.hooks().Destroy(&b[i])
	b[i] = value
}

// Front returns the first element.
func (v *Vector[T]) Front() T {
	buf.Index("Vector.Front", 0, v.n)
	return v.buffer()[0]
}

// Back returns the last element.
func (v *Vector[T]) Back() T {
	buf.Index("Vector.Back", v.n-1, v.n)
	return v.buffer()[v.n-1]
}

// Data returns a view of the elements. It aliases v's buffer and is
// invalidated by reallocation.
func (v *Vector[T]) Data() []T {
	return v.buffer()[:v.n:v.n]
}

// growTo makes room for at least required elements using the growth policy.
func (v *Vector[T]) growTo(required int) error {
	capacity := v.Cap()
	if required <= capacity {
		return nil
	}
	target := max(required, capacity*types.GrowthFactor)
	return v.reallocate(alloc.GoodCapacity(target, alloc.SizeOf[T]()))
}

// reallocate moves the elements into storage of capacity elements: the
// inline buffer when capacity fits there, otherwise a new allocation of
// exactly capacity. On failure v is unchanged.
func (v *Vector[T]) reallocate(capacity int) error {
	if capacity <= types.VectorShortCapacity {
		if v.long != nil {
			copy(v.short[:], v.long[:v.n])
			v.releaseLong()
		}
		return nil
	}

	mem, err := v.allocator().Allocate(capacity)
	if err != nil {
		return errors.Wrapf(err, "vector: reallocate %d -> %d elements", v.Cap(), capacity)
	}
	copy(mem, v.buffer()[:v.n])
	v.releaseLong()
	clear(v.short[:])
	v.long = mem
	return nil
}

func (v *Vector[T]) releaseLong() {
	if v.long == nil {
		return
	}
	clear(v.long)
	v.allocator().Deallocate(v.long)
	v.long = nil
}

// overlaps reports whether values shares memory with v's storage.
func (v *Vector[T]) overlaps(values []T) bool {
	size := unsafe.Sizeof(*new(T))
	if len(values) == 0 || size == 0 {
		return false
	}
	b := v.buffer()
	bStart := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	pStart := uintptr(unsafe.Pointer(unsafe.SliceData(values)))
	return pStart < bStart+uintptr(len(b))*size && bStart < pStart+uintptr(len(values))*size
}

// PushBack appends value, growing when full. Amortized O(1).
func (v *Vector[T]) PushBack(value T) error {
	if err := v.growTo(v.n + 1); err != nil {
		return err
	}
	v.buffer()[v.n] = value
	v.n++
	return nil
}

// Append pushes every value in order. values may alias v, as in
// v.Append(v.Data()...). On failure none are appended.
func (v *Vector[T]) Append(values ...T) error {
	if v.n+len(values) > v.Cap() && v.overlaps(values) {
		values = slices.Clone(values)
	}
	if err := v.growTo(v.n + len(values)); err != nil {
		return err
	}
	v.n += copy(v.buffer()[v.n:], values)
	return nil
}

// PopBack removes and returns the last element, or None when empty. The
// element is moved out, not destroyed.
func (v *Vector[T]) PopBack() option.Option[T] {
	if v.n == 0 {
		return option.None[T]()
	}
	v.n--
	b := v.buffer()
	value := b[v.n]
	var zero T
	b[v.n] = zero
	return option.Some(value)
}

// Insert places value at i, shifting the tail right. i may equal Len.
func (v *Vector[T]) Insert(value T, i int) error {
	buf.Position("Vector.Insert", i, v.n)
	if err := v.growTo(v.n + 1); err != nil {
		return err
	}
	b := v.buffer()
	copy(b[i+1:v.n+1], b[i:v.n])
	b[i] = value
	v.n++
	return nil
}

// Erase destroys the element at i and shifts the tail left.
func (v *Vector[T]) Erase(i int) {
	buf.Index("Vector.Erase", i, v.n)
	v.EraseN(i, 1)
}

// EraseN destroys up to n elements starting at i. The count is clamped to
// the elements remaining after i.
func (v *Vector[T]) EraseN(i, n int) {
	buf.Position("Vector.EraseN", i, v.n)
	n = buf.Clamp(i, n, v.n)
	if n == 0 {
		return
	}
	b := v.buffer()
	collection.DestroyAll(b[i:i+n], v.hooks().Destroy)
	copy(b[i:], b[i+n:v.n])
	clear(b[v.n-n : v.n])
	v.n -= n
}

// Reserve grows the capacity to at least n. It never shrinks.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	return v.reallocate(alloc.GoodCapacity(n, alloc.SizeOf[T]()))
}

// ShrinkToFit releases spare capacity. A Long vector whose elements fit
// inline becomes Short again; otherwise it is reallocated to exactly Len.
// A Short vector is left as is.
func (v *Vector[T]) ShrinkToFit() error {
	if v.long == nil || len(v.long) == v.n {
		return nil
	}
	return v.reallocate(v.n)
}

// Resize sets the length to n, constructing new trailing elements or
// destroying (last first) the removed ones.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		buf.Fail(types.ErrOutOfBounds, "Vector.Resize called with negative length %d", n)
	}
	if n < v.n {
		v.EraseN(n, v.n-n)
		return nil
	}
	if err := v.growTo(n); err != nil {
		return err
	}
	b, construct := v.buffer(), v.hooks().Construct
	for i := v.n; i < n; i++ {
		b[i] = construct()
	}
	v.n = n
	return nil
}

// Clear destroys every element, last first. The capacity is kept.
func (v *Vector[T]) Clear() {
	b := v.buffer()
	collection.DestroyAll(b[:v.n], v.hooks().Destroy)
	clear(b[:v.n])
	v.n = 0
}

// Free destroys the elements and releases the buffer. Free is idempotent and
// safe on a moved-from vector.
func (v *Vector[T]) Free() {
	if v == nil {
		return
	}
	v.Clear()
	v.releaseLong()
}

// Clone returns a vector with its own buffer from the same allocator and
// copies of the elements made with the Copy hook.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	c, err := New(Options[T]{Allocator: v.allocator(), Capacity: v.n, Elements: v.hooks()})
	if err != nil {
		return nil, err
	}
	c.n = collection.CopyAll(c.buffer()[:v.n], v.Data(), c.data.Copy)
	return c, nil
}

// Take moves v's contents into a new Vector and leaves v empty and Short
// with the same allocator.
func (v *Vector[T]) Take() *Vector[T] {
	moved := &Vector[T]{short: v.short, long: v.long, n: v.n, alloc: v.allocator(), data: v.hooks()}
	v.long = nil
	clear(v.short[:])
	v.n = 0
	return moved
}

// All yields (index, element) pairs in storage order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return slices.All(v.Data())
}

// Values yields the elements in storage order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return slices.Values(v.Data())
}

// Backward yields (index, element) pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return slices.Backward(v.Data())
}

// Equal reports whether a and b hold equal elements in the same order.
func Equal[T comparable](a, b *Vector[T]) bool {
	return slices.Equal(a.Data(), b.Data())
}

// EqualFunc is Equal with a caller-supplied element comparison.
func EqualFunc[T, U any](a *Vector[T], b *Vector[U], eq func(T, U) bool) bool {
	return slices.EqualFunc(a.Data(), b.Data(), eq)
}
