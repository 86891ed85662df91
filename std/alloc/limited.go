package alloc

import (
	"sync"

	"github.com/braxtons12/C2nxt/internal/logger"
)

// Limited wraps an allocator with a byte budget. Requests that would take the
// outstanding total past the budget fail with ErrOutOfMemory without reaching
// the wrapped allocator.
type Limited[T any] struct {
	mu     sync.Mutex
	base   Allocator[T]
	budget int
	used   int
}

// NewLimited returns a Limited allocator drawing at most budget bytes from base.
// A nil base uses Default[T]().
func NewLimited[T any](base Allocator[T], budget int) *Limited[T] {
	if base == nil {
		base = Default[T]()
	}
	return &Limited[T]{base: base, budget: budget}
}

// Allocate forwards n to the wrapped allocator when the budget allows it.
func (l *Limited[T]) Allocate(n int) ([]T, error) {
	size, ok := BytesFor[T](n)
	if !ok {
		return nil, outOfMemory(n, SizeOf[T](), "request too large")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if size > l.budget-l.used {
		logger.Warn("alloc: budget exhausted", "request", size, "used", l.used, "budget", l.budget)
		return nil, outOfMemory(n, SizeOf[T](), "budget exhausted")
	}
	mem, err := l.base.Allocate(n)
	if err != nil {
		return nil, err
	}
	l.used += size
	return mem, nil
}

// Deallocate returns the buffer to the wrapped allocator and its bytes to the budget.
func (l *Limited[T]) Deallocate(mem []T) {
	if cap(mem) == 0 {
		return
	}
	size := cap(mem) * SizeOf[T]()

	l.mu.Lock()
	l.used -= size
	if l.used < 0 {
		l.used = 0
	}
	l.mu.Unlock()

	l.base.Deallocate(mem)
}

// Used returns the bytes currently outstanding.
func (l *Limited[T]) Used() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.used
}

// Remaining returns the bytes still available.
func (l *Limited[T]) Remaining() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.budget - l.used
}

// SetBudget changes the budget. Outstanding allocations are unaffected.
func (l *Limited[T]) SetBudget(budget int) {
	l.mu.Lock()
	l.budget = budget
	l.mu.Unlock()
}
