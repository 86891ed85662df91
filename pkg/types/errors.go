package types

import "github.com/cockroachdb/errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindOutOfBounds   ErrKind = iota // index/position beyond the valid range
	ErrKindOutOfMemory                  // allocator exhaustion
	ErrKindUnwrapOnEmpty                // Unwrap of a None option (or UnwrapErr of an Ok result)
	ErrKindUnwrapOnError                // Unwrap of an Err result
	ErrKindInvalidAccess                // reading the payload of the wrong branch
)

var kindNames = map[ErrKind]string{
	ErrKindOutOfBounds:   "OutOfBounds",
	ErrKindOutOfMemory:   "OutOfMemory",
	ErrKindUnwrapOnEmpty: "UnwrapOnEmpty",
	ErrKindUnwrapOnError: "UnwrapOnError",
	ErrKindInvalidAccess: "InvalidAccess",
}

func (k ErrKind) String() string {
	name, ok := kindNames[k]
	if !ok {
		return "unknown ErrKind"
	}
	return name
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels. Errors returned or raised by the std packages wrap or are marked
// with one of these, so errors.Is(err, types.ErrOutOfMemory) works across
// wrapping layers.
var (
	// ErrOutOfBounds indicates an index or position beyond the valid range.
	ErrOutOfBounds = &Error{Kind: ErrKindOutOfBounds, Msg: "out of bounds"}
	// ErrOutOfMemory indicates the allocator could not satisfy a request.
	ErrOutOfMemory = &Error{Kind: ErrKindOutOfMemory, Msg: "out of memory"}
	// ErrUnwrapOnEmpty indicates Unwrap was called on an empty value.
	ErrUnwrapOnEmpty = &Error{Kind: ErrKindUnwrapOnEmpty, Msg: "unwrap on empty value"}
	// ErrUnwrapOnError indicates Unwrap was called on an error result.
	ErrUnwrapOnError = &Error{Kind: ErrKindUnwrapOnError, Msg: "unwrap on error result"}
	// ErrInvalidAccess indicates the payload of the wrong branch was read.
	ErrInvalidAccess = &Error{Kind: ErrKindInvalidAccess, Msg: "invalid access"}
)

var sentinels = []*Error{
	ErrOutOfBounds,
	ErrOutOfMemory,
	ErrUnwrapOnEmpty,
	ErrUnwrapOnError,
	ErrInvalidAccess,
}

// KindOf reports the category of err. It recognises both wrapped sentinels
// and errors marked with a sentinel.
func KindOf(err error) (ErrKind, bool) {
	if err == nil {
		return 0, false
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Kind, true
		}
	}
	var te *Error
	if errors.As(err, &te) {
		return te.Kind, true
	}
	return 0, false
}
