package alloc

import (
	"math"
	"sort"

	"github.com/braxtons12/C2nxt/internal/buf"
)

// SizeClassConfig defines the request rounding strategy.
type SizeClassConfig struct {
	// Name for this configuration (for benchmarking)
	Name string

	// Small requests (linear increments)
	SmallMin       int // Smallest class
	SmallMax       int // Last class of the linear phase
	SmallIncrement int // Step between small classes

	// Medium requests (geometric growth); above MediumMax requests are page multiples.
	MediumMax    int
	GrowthFactor float64
}

// Predefined configurations.
var (
	// ConfigBalanced: 16-512 step 16 (32 classes) + 512-32K doubling (6 classes).
	ConfigBalanced = SizeClassConfig{
		Name:           "Balanced",
		SmallMin:       16,
		SmallMax:       512,
		SmallIncrement: 16,
		MediumMax:      32768,
		GrowthFactor:   2.0,
	}

	// ConfigFineGrained trades more classes for less slack in medium requests.
	ConfigFineGrained = SizeClassConfig{
		Name:           "FineGrained",
		SmallMin:       8,
		SmallMax:       256,
		SmallIncrement: 8,
		MediumMax:      32768,
		GrowthFactor:   1.5,
	}

	// DefaultConfig is the configuration used by GoodSize.
	DefaultConfig = ConfigBalanced
)

// SizeClassTable holds the computed class sizes in ascending order.
type SizeClassTable struct {
	config  SizeClassConfig
	classes []int
}

var defaultTable = NewSizeClassTable(DefaultConfig)

// NewSizeClassTable computes class sizes from config.
func NewSizeClassTable(config SizeClassConfig) *SizeClassTable {
	table := &SizeClassTable{
		config:  config,
		classes: make([]int, 0, 64),
	}

	// Phase 1: linear
	for size := config.SmallMin; size <= config.SmallMax; size += config.SmallIncrement {
		table.classes = append(table.classes, size)
	}

	// Phase 2: geometric
	size := config.SmallMax
	for size < config.MediumMax {
		next := int(math.Ceil(float64(size) * config.GrowthFactor))
		if next <= size {
			next = size + 1
		}
		if next > config.MediumMax {
			next = config.MediumMax
		}
		table.classes = append(table.classes, next)
		size = next
	}

	return table
}

// Round returns the smallest class size that holds n bytes. Requests larger
// than the last class are rounded to whole pages. Non-positive requests
// return 0.
func (t *SizeClassTable) Round(n int) int {
	if n <= 0 {
		return 0
	}
	i := sort.SearchInts(t.classes, n)
	if i < len(t.classes) {
		return t.classes[i]
	}
	return AlignPage(n)
}

// NumClasses returns the number of table classes (excluding page multiples).
func (t *SizeClassTable) NumClasses() int {
	return len(t.classes)
}

// String returns the configuration name.
func (t *SizeClassTable) String() string {
	return t.config.Name
}

// GoodSize rounds a byte request up using DefaultConfig.
func GoodSize(n int) int {
	return defaultTable.Round(n)
}

// GoodCapacity returns the element count, at least n, whose byte size is
// the good size for n elements of elemSize bytes. When the byte size cannot
// be represented, n is returned unchanged.
func GoodCapacity(n, elemSize int) int {
	if n <= 0 {
		return 0
	}
	if elemSize <= 0 {
		return n
	}
	total, ok := buf.MulOverflowSafe(n, elemSize)
	if !ok {
		return n
	}
	return GoodSize(total) / elemSize
}
