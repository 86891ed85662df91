package alloc

import (
	"sync"
	"unsafe"

	"github.com/braxtons12/C2nxt/internal/logger"
)

// Pages is a byte allocator that serves every request from its own run of
// whole pages. The zero value is not usable; call NewPages.
//
// Mappings are released by Deallocate (or Close for all of them). Buffers are
// keyed by base address, so Deallocate accepts any re-slice that keeps the
// first byte.
type Pages struct {
	mu     sync.Mutex
	active map[*byte][]byte // base -> full mapping
	mapped int
}

// NewPages returns an empty page allocator.
func NewPages() *Pages {
	return &Pages{active: make(map[*byte][]byte)}
}

// Allocate maps enough pages for n bytes and returns the first n of them.
func (p *Pages) Allocate(n int) ([]byte, error) {
	if _, ok := BytesFor[byte](n); !ok {
		return nil, outOfMemory(n, 1, "request too large")
	}
	if n == 0 {
		return nil, nil
	}

	size := AlignPage(n)
	region, err := mapRegion(size)
	if err != nil {
		logger.Warn("alloc: page mapping failed", "size", size, "error", err)
		return nil, outOfMemory(n, 1, err.Error())
	}

	p.mu.Lock()
	p.active[unsafe.SliceData(region)] = region
	p.mapped += len(region)
	p.mu.Unlock()

	logger.Debug("alloc: mapped pages", "size", size, "request", n)
	return region[:n:n], nil
}

// Deallocate unmaps the region mem was cut from. Unknown buffers are ignored.
func (p *Pages) Deallocate(mem []byte) {
	key := base(mem)
	if key == nil {
		return
	}

	p.mu.Lock()
	region, ok := p.active[key]
	if ok {
		delete(p.active, key)
		p.mapped -= len(region)
	}
	p.mu.Unlock()

	if !ok {
		logger.Warn("alloc: unmap of unknown region", "cap", cap(mem))
		return
	}
	if err := unmapRegion(region); err != nil {
		logger.Error("alloc: unmap failed", "size", len(region), "error", err)
		return
	}
	logger.Debug("alloc: unmapped pages", "size", len(region))
}

// Mapped returns the number of bytes currently mapped.
func (p *Pages) Mapped() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mapped
}

// Regions returns the number of live mappings.
func (p *Pages) Regions() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.active)
}

// Close unmaps every outstanding region. Buffers handed out earlier must not
// be used afterwards.
func (p *Pages) Close() error {
	p.mu.Lock()
	regions := p.active
	p.active = make(map[*byte][]byte)
	p.mapped = 0
	p.mu.Unlock()

	var firstErr error
	for _, region := range regions {
		if err := unmapRegion(region); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
