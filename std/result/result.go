// Package result provides Result, a value that is either Ok(v) or Err(e).
//
// The error branch is always a Go error, so a Result converts losslessly to
// and from the (T, error) pairs the rest of the module returns: Of lifts a
// pair, Unpack lowers it. Unwrapping the wrong branch panics with an error
// marked types.ErrUnwrapOnError (Unwrap, Expect) or types.ErrUnwrapOnEmpty
// (UnwrapErr).
package result

import (
	"fmt"

	"github.com/braxtons12/C2nxt/internal/buf"
	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/braxtons12/C2nxt/std/option"
	"github.com/cockroachdb/errors"
)

// Result holds either a value or an error. The zero value is Ok(zero T).
type Result[T any] struct {
	value T
	err   error
}

// Ok returns a successful Result holding v.
func Ok[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Err returns a failed Result holding err. A nil err panics: a failure
// without a cause cannot be told apart from success.
func Err[T any](err error) Result[T] {
	if err == nil {
		buf.Fail(types.ErrInvalidAccess, "result.Err called with a nil error")
	}
	return Result[T]{err: err}
}

// Of lifts a (value, error) pair. A non-nil err wins and v is discarded.
func Of[T any](v T, err error) Result[T] {
	if err != nil {
		return Result[T]{err: err}
	}
	return Result[T]{value: v}
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool { return r.err == nil }

// IsErr reports whether r holds an error.
func (r Result[T]) IsErr() bool { return r.err != nil }

// Unwrap returns the held value. It panics on Err; the panic wraps the held error.
func (r Result[T]) Unwrap() T {
	if r.err != nil {
		panic(errors.Mark(errors.Wrap(r.err, "Result.Unwrap called on Err"), types.ErrUnwrapOnError))
	}
	return r.value
}

// Expect returns the held value, panicking with msg on Err.
func (r Result[T]) Expect(msg string) T {
	if r.err != nil {
		panic(errors.Mark(errors.Wrap(r.err, msg), types.ErrUnwrapOnError))
	}
	return r.value
}

// UnwrapErr returns the held error. It panics on Ok.
func (r Result[T]) UnwrapErr() error {
	if r.err == nil {
		buf.Fail(types.ErrUnwrapOnEmpty, "Result.UnwrapErr called on Ok")
	}
	return r.err
}

// UnwrapOr returns the held value, or def on Err.
func (r Result[T]) UnwrapOr(def T) T {
	if r.err != nil {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the held value, or fn applied to the error.
func (r Result[T]) UnwrapOrElse(fn func(error) T) T {
	if r.err != nil {
		return fn(r.err)
	}
	return r.value
}

// Unpack returns the (value, error) pair.
func (r Result[T]) Unpack() (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	return r.value, nil
}

// Ok converts r into an Option of its value.
func (r Result[T]) Ok() option.Option[T] {
	return option.FromPair(r.value, r.err == nil)
}

// Err converts r into an Option of its error.
func (r Result[T]) Err() option.Option[error] {
	return option.FromPair(r.err, r.err != nil)
}

// String formats r as "Ok(v)" or "Err(e)".
func (r Result[T]) String() string {
	if r.err != nil {
		return fmt.Sprintf("Err(%v)", r.err)
	}
	return fmt.Sprintf("Ok(%v)", r.value)
}

// Map applies fn to the held value. Err passes through unchanged.
func Map[T, U any](r Result[T], fn func(T) U) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return Ok(fn(r.value))
}

// MapErr applies fn to the held error. Ok passes through unchanged.
func MapErr[T any](r Result[T], fn func(error) error) Result[T] {
	if r.err == nil {
		return r
	}
	return Of(r.value, fn(r.err))
}

// MapOr applies fn to the held value, or returns def on Err.
func MapOr[T, U any](r Result[T], def U, fn func(T) U) U {
	if r.err != nil {
		return def
	}
	return fn(r.value)
}

// AndThen chains a fallible step after a successful one.
func AndThen[T, U any](r Result[T], fn func(T) Result[U]) Result[U] {
	if r.err != nil {
		return Result[U]{err: r.err}
	}
	return fn(r.value)
}

// OrElse recovers from an error with fn. Ok passes through unchanged.
func OrElse[T any](r Result[T], fn func(error) Result[T]) Result[T] {
	if r.err == nil {
		return r
	}
	return fn(r.err)
}
