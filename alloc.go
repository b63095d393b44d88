package ringalloc

import (
	"runtime"
	"unsafe"
)

// The typed helpers below place values directly in the arena. The garbage
// collector does not scan arena memory, so T must not contain pointers,
// slices, strings, maps, channels, funcs or interfaces.

// AllocValue returns a pointer to a zeroed T at the head of the ring, or nil
// if it does not fit.
func AllocValue[T any](r *Ring) *T {
	b := r.AllocZeroed(sizeOf[T]())
	if b == nil {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// AllocSlice allocates n elements of T as one block at the head of the ring.
// The elements are not initialized.
// Returns nil if n <= 0 or the block does not fit.
func AllocSlice[T any](r *Ring, n int) []T {
	if n <= 0 {
		return nil
	}
	size := sizeOf[T]()
	if n > MaxArenaSize/size {
		return nil
	}
	b := r.Alloc(size * n)
	if b == nil {
		return nil
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n)
}

// PeekTailValue returns the oldest allocation viewed as a T, or nil if the
// ring is empty or the allocation is smaller than T.
func PeekTailValue[T any](r *Ring) *T {
	return asValue[T](r.PeekTail())
}

// FreeTailValue frees the oldest allocation and returns it viewed as a T.
// Returns nil if the allocation is smaller than T; it is freed regardless.
func FreeTailValue[T any](r *Ring) *T {
	return asValue[T](r.FreeTail())
}

// PtrAndKeepAlive returns t and keeps the ring, and so its arena, reachable
// until this call. Use it when t is the last reference into the arena.
func PtrAndKeepAlive[T any](r *Ring, t *T) *T {
	runtime.KeepAlive(r)
	return t
}

func asValue[T any](b []byte) *T {
	if len(b) == 0 || len(b) < sizeOf[T]() {
		return nil
	}
	return (*T)(unsafe.Pointer(&b[0]))
}

// sizeOf returns the bytes a T occupies in the arena. Zero-sized types still
// take one word so they own a distinct block.
func sizeOf[T any]() int {
	var zero T
	return max(int(unsafe.Sizeof(zero)), 1)
}
