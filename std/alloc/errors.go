package alloc

import (
	"github.com/braxtons12/C2nxt/pkg/types"
	"github.com/cockroachdb/errors"
)

// ErrOutOfMemory is the sentinel every allocation failure wraps.
var ErrOutOfMemory = types.ErrOutOfMemory

// outOfMemory builds an allocation failure for n elements of elemSize bytes.
func outOfMemory(n, elemSize int, reason string) error {
	return errors.Wrapf(ErrOutOfMemory, "alloc: %d x %d bytes: %s", n, elemSize, reason)
}
