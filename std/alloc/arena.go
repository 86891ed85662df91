package alloc

import "github.com/braxtons12/C2nxt/internal/logger"

// DefaultArenaChunk is the chunk size used when NewArena is given zero.
const DefaultArenaChunk = 64 * 1024

// Arena is an append-only byte allocator using a bump pointer.
//
// Key characteristics:
//   - O(1) allocation: carve the next aligned span from the current chunk
//   - Deallocate is a no-op; spans stay dead until Reset
//   - Growth appends a new chunk at least as large as the request
//   - Not thread-safe
//
// Arena suits short-lived strings and scratch buffers built up and dropped together.
type Arena struct {
	chunkSize int
	chunks    [][]byte
	off       int // bump pointer into the last chunk
	used      int // bytes handed out since the last Reset
}

// NewArena returns an arena that reserves chunkSize bytes at a time.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultArenaChunk
	}
	return &Arena{chunkSize: Align16(chunkSize)}
}

// Allocate bumps the pointer by n bytes (rounded up to 16) and returns a
// zeroed span whose capacity is exactly n.
func (a *Arena) Allocate(n int) ([]byte, error) {
	if _, ok := BytesFor[byte](n); !ok {
		return nil, outOfMemory(n, 1, "request too large")
	}
	if n == 0 {
		return nil, nil
	}

	need := Align16(n)
	if len(a.chunks) == 0 || a.off+need > len(a.chunks[len(a.chunks)-1]) {
		a.grow(need)
	}

	chunk := a.chunks[len(a.chunks)-1]
	span := chunk[a.off : a.off+n : a.off+n]
	a.off += need
	a.used += need
	return span, nil
}

// Deallocate is a no-op. Memory is reclaimed by Reset.
func (a *Arena) Deallocate([]byte) {}

func (a *Arena) grow(need int) {
	size := a.chunkSize
	for size < need {
		size *= 2
	}
	a.chunks = append(a.chunks, make([]byte, size))
	a.off = 0
	logger.Debug("alloc: arena chunk", "size", size, "chunks", len(a.chunks))
}

// Reset reclaims every span. The largest chunk is zeroed and kept; the rest
// are dropped. Spans handed out before Reset must not be used afterwards.
func (a *Arena) Reset() {
	if len(a.chunks) == 0 {
		return
	}
	largest := a.chunks[0]
	for _, c := range a.chunks[1:] {
		if len(c) > len(largest) {
			largest = c
		}
	}
	clear(largest)
	a.chunks = append(a.chunks[:0], largest)
	clear(a.chunks[1:cap(a.chunks)])
	a.off = 0
	a.used = 0
}

// Used returns the bytes handed out since the last Reset, including alignment padding.
func (a *Arena) Used() int {
	return a.used
}

// Reserved returns the total bytes held in chunks.
func (a *Arena) Reserved() int {
	total := 0
	for _, c := range a.chunks {
		total += len(c)
	}
	return total
}
