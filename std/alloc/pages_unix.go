//go:build unix

package alloc

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/sys/unix"
)

// mapRegion creates a private anonymous read/write mapping of size bytes.
// Anonymous mappings are zero-filled by the kernel.
func mapRegion(size int) ([]byte, error) {
	region, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrap(err, "mmap")
	}
	return region, nil
}

func unmapRegion(region []byte) error {
	if err := unix.Munmap(region); err != nil {
		return errors.Wrap(err, "munmap")
	}
	return nil
}
