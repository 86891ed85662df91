// Package option provides Option, a value that is either Some(v) or None.
//
// Options are plain values: copying an Option copies its payload and no two
// Options ever share one. Accessing the payload of a None panics with an
// error marked types.ErrUnwrapOnEmpty (Unwrap, Expect) or
// types.ErrInvalidAccess (Ref); the total accessors UnwrapOr, UnwrapOrElse,
// UnwrapOrZero and Get never panic.
package option

import (
	"fmt"

	"github.com/braxtons12/C2nxt/internal/buf"
	"github.com/braxtons12/C2nxt/pkg/types"
)

// Option holds either a value (Some) or nothing (None). The zero value is None.
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, some: true}
}

// None returns an empty Option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPair returns Some(v) when ok, None otherwise. It lifts Go's comma-ok idiom.
func FromPair[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether o holds a value.
func (o Option[T]) IsSome() bool { return o.some }

// IsNone reports whether o is empty.
func (o Option[T]) IsNone() bool { return !o.some }

// Unwrap returns the held value. It panics on None.
func (o Option[T]) Unwrap() T {
	if !o.some {
		buf.Fail(types.ErrUnwrapOnEmpty, "Option.Unwrap called on None")
	}
	return o.value
}

// Expect returns the held value, panicking with msg on None.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		buf.Fail(types.ErrUnwrapOnEmpty, "%s", msg)
	}
	return o.value
}

// UnwrapOr returns the held value, or def on None.
func (o Option[T]) UnwrapOr(def T) T {
	if !o.some {
		return def
	}
	return o.value
}

// UnwrapOrElse returns the held value, or the result of fn on None.
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if !o.some {
		return fn()
	}
	return o.value
}

// UnwrapOrZero returns the held value, or T's zero value on None.
func (o Option[T]) UnwrapOrZero() T {
	return o.value
}

// Get returns the held value and whether there was one.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// Ref returns a pointer to the payload of this copy of the Option. It panics on None.
func (o *Option[T]) Ref() *T {
	if !o.some {
		buf.Fail(types.ErrInvalidAccess, "Option.Ref called on None")
	}
	return &o.value
}

// Or returns o if it holds a value, otherwise other.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// Filter returns o if it holds a value satisfying pred, otherwise None.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.some && pred(o.value) {
		return o
	}
	return None[T]()
}

// String formats o as "Some(v)" or "None".
func (o Option[T]) String() string {
	if !o.some {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}

// Map applies fn to the held value. None maps to None.
func Map[T, U any](o Option[T], fn func(T) U) Option[U] {
	if !o.some {
		return None[U]()
	}
	return Some(fn(o.value))
}

// AndThen applies fn to the held value and returns its Option. None maps to None.
func AndThen[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	if !o.some {
		return None[U]()
	}
	return fn(o.value)
}

// OkOr converts o into a (value, error) pair, using err for None.
func OkOr[T any](o Option[T], err error) (T, error) {
	if !o.some {
		var zero T
		return zero, err
	}
	return o.value, nil
}
