package alloc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPages_AllocateWholePages tests page rounding and zeroed memory.
func TestPages_AllocateWholePages(t *testing.T) {
	p := NewPages()
	defer func() { require.NoError(t, p.Close()) }()

	mem, err := p.Allocate(100)
	require.NoError(t, err)
	require.Len(t, mem, 100)
	assert.Equal(t, 100, cap(mem))
	assert.Equal(t, PageSize, p.Mapped())
	for _, b := range mem {
		assert.Zero(t, b)
	}

	// writable
	copy(mem, "hello")
	assert.Equal(t, "hello", string(mem[:5]))

	big, err := p.Allocate(PageSize + 1)
	require.NoError(t, err)
	assert.Equal(t, 3*PageSize, p.Mapped())
	assert.Equal(t, 2, p.Regions())

	p.Deallocate(mem)
	p.Deallocate(big)
	assert.Zero(t, p.Mapped())
	assert.Zero(t, p.Regions())
}

// TestPages_Unknown tests that unknown or empty buffers are ignored.
func TestPages_Unknown(t *testing.T) {
	p := NewPages()

	p.Deallocate(nil)
	p.Deallocate(make([]byte, 8))
	assert.Zero(t, p.Regions())

	mem, err := p.Allocate(0)
	require.NoError(t, err)
	assert.Nil(t, mem)
}

// TestPages_Close tests releasing all outstanding mappings.
func TestPages_Close(t *testing.T) {
	p := NewPages()
	for range 3 {
		_, err := p.Allocate(10)
		require.NoError(t, err)
	}
	require.Equal(t, 3, p.Regions())
	require.NoError(t, p.Close())
	assert.Zero(t, p.Mapped())
}
