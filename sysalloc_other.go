//go:build !unix && !windows

package ringalloc

// sysAlloc falls back to the Go heap where no mapping API is available.
// make returns memory aligned to at least WordSize for these sizes.
func sysAlloc(n int) ([]byte, error) {
	return make([]byte, n), nil
}

// sysFree leaves the buffer to the garbage collector.
func sysFree([]byte) error {
	return nil
}
