package alloc

import (
	"sync"

	"github.com/braxtons12/C2nxt/internal/logger"
)

// Stats is a snapshot of a Tracking allocator's counters.
type Stats struct {
	Allocations   int // successful Allocate calls
	Deallocations int // Deallocate calls forwarded to the wrapped allocator
	Failures      int // Allocate calls that returned an error
	Foreign       int // Deallocate calls for buffers this allocator never handed out (or already released)
	LiveBytes     int
	PeakBytes     int
}

// Live returns the number of outstanding allocations.
func (s Stats) Live() int {
	return s.Allocations - s.Deallocations
}

// Tracking wraps an allocator and records every allocation it serves. It is
// the tool tests use to check that containers release exactly what they take
// and always through the allocator that produced it.
type Tracking[T any] struct {
	mu    sync.Mutex
	base  Allocator[T]
	live  map[*T]int // base address -> outstanding allocations at that address
	stats Stats
}

// NewTracking wraps base. A nil base uses Default[T]().
func NewTracking[T any](base Allocator[T]) *Tracking[T] {
	if base == nil {
		base = Default[T]()
	}
	return &Tracking[T]{base: base, live: make(map[*T]int)}
}

// Allocate forwards to the wrapped allocator and records the result.
func (t *Tracking[T]) Allocate(n int) ([]T, error) {
	mem, err := t.base.Allocate(n)

	t.mu.Lock()
	defer t.mu.Unlock()

	if err != nil {
		t.stats.Failures++
		return nil, err
	}
	t.stats.Allocations++
	if p := base(mem); p != nil {
		// zero-sized element types share one address, hence the count
		t.live[p]++
	}
	t.stats.LiveBytes += cap(mem) * SizeOf[T]()
	if t.stats.LiveBytes > t.stats.PeakBytes {
		t.stats.PeakBytes = t.stats.LiveBytes
	}
	return mem, nil
}

// Deallocate forwards buffers this allocator produced. Anything else is
// counted as foreign and dropped.
func (t *Tracking[T]) Deallocate(mem []T) {
	p := base(mem)
	if p == nil {
		return
	}

	t.mu.Lock()
	count, ok := t.live[p]
	if !ok {
		t.stats.Foreign++
		t.mu.Unlock()
		logger.Warn("alloc: foreign deallocation", "cap", cap(mem))
		return
	}
	if count <= 1 {
		delete(t.live, p)
	} else {
		t.live[p] = count - 1
	}
	t.stats.Deallocations++
	t.stats.LiveBytes -= cap(mem) * SizeOf[T]()
	t.mu.Unlock()

	t.base.Deallocate(mem)
}

// Stats returns a snapshot of the counters.
func (t *Tracking[T]) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stats
}

// Live returns the number of outstanding allocations.
func (t *Tracking[T]) Live() int {
	return t.Stats().Live()
}

// Foreign returns how many deallocations were rejected.
func (t *Tracking[T]) Foreign() int {
	return t.Stats().Foreign
}

// Owns reports whether mem is an outstanding allocation of t.
func (t *Tracking[T]) Owns(mem []T) bool {
	p := base(mem)
	if p == nil {
		return false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.live[p]
	return ok
}
