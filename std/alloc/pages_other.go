//go:build !unix

package alloc

// mapRegion falls back to the Go heap where anonymous mappings are unavailable.
func mapRegion(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func unmapRegion([]byte) error {
	return nil
}
