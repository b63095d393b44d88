//go:build unix

package ringalloc

import "golang.org/x/sys/unix"

// sysAlloc maps n bytes of anonymous, page-aligned memory outside the Go heap.
func sysAlloc(n int) ([]byte, error) {
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// sysFree unmaps memory returned by sysAlloc. b must be the slice sysAlloc returned.
func sysFree(b []byte) error {
	return unix.Munmap(b)
}
