package ringalloc

import (
	"iter"
	"runtime"
	"slices"
	"sync"
)

// SafeRing is a mutex-protected wrapper around Ring for concurrent access.
// The lock covers each call; slices handed out stay shared memory, and
// callers must still agree among themselves on who owns the tail.
type SafeRing struct {
	mu sync.Mutex
	r  *Ring
}

// NewSafe creates a thread-safe ring over a caller-supplied buffer.
func NewSafe(buf []byte, opts ...Option) *SafeRing {
	return &SafeRing{r: New(buf, opts...)}
}

// NewSafeOwned creates a thread-safe ring over size bytes from the system.
func NewSafeOwned(size int, opts ...Option) (*SafeRing, error) {
	r, err := NewOwned(size, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeRing{r: r}, nil
}

// NewSafeItems creates a thread-safe ring that holds exactly items
// allocations of itemSize bytes.
func NewSafeItems(items, itemSize int, opts ...Option) (*SafeRing, error) {
	r, err := NewItems(items, itemSize, opts...)
	if err != nil {
		return nil, err
	}
	return &SafeRing{r: r}, nil
}

// Alloc thread-safely allocates n bytes at the head of the ring.
func (s *SafeRing) Alloc(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Alloc(n)
}

// AllocZeroed thread-safely allocates n cleared bytes at the head of the ring.
func (s *SafeRing) AllocZeroed(n int) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.AllocZeroed(n)
}

// PeekTail thread-safely returns the oldest allocation without freeing it.
func (s *SafeRing) PeekTail() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.PeekTail()
}

// FreeTail thread-safely frees and returns the oldest allocation.
func (s *SafeRing) FreeTail() []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.FreeTail()
}

// TryFreeTail frees and returns the oldest allocation, or reports false if
// the ring is empty. Checking IsEmpty before FreeTail races with other
// goroutines; this does both under one lock.
func (s *SafeRing) TryFreeTail() ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r.IsEmpty() {
		return nil, false
	}
	return s.r.FreeTail(), true
}

// Reset thread-safely drops every live allocation.
func (s *SafeRing) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.r.Reset()
}

// Destroy thread-safely releases the ring.
func (s *SafeRing) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Destroy()
}

// IsEmpty thread-safely reports whether the ring holds no allocations.
func (s *SafeRing) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IsEmpty()
}

// Count thread-safely returns the number of live allocations.
func (s *SafeRing) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Count()
}

// AllocatedBytes thread-safely returns the bytes held by live allocations.
func (s *SafeRing) AllocatedBytes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.AllocatedBytes()
}

// ArenaSize thread-safely returns the arena size.
func (s *SafeRing) ArenaSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.ArenaSize()
}

// OwnsArena thread-safely reports whether Destroy releases the arena.
func (s *SafeRing) OwnsArena() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.OwnsArena()
}

// Verify thread-safely checks the allocation chain.
func (s *SafeRing) Verify() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Verify()
}

// All returns an iterator over a snapshot of the live allocations, oldest
// first. The snapshot is taken under the lock when iteration starts.
func (s *SafeRing) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		s.mu.Lock()
		blocks := slices.Collect(s.r.All())
		s.mu.Unlock()
		for _, b := range blocks {
			if !yield(b) {
				return
			}
		}
	}
}

// Generic allocation functions for SafeRing

// SafeAllocValue thread-safely returns a pointer to a zeroed T in the ring.
func SafeAllocValue[T any](s *SafeRing) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocValue[T](s.r)
}

// SafeAllocSlice thread-safely allocates n uninitialized elements of T.
func SafeAllocSlice[T any](s *SafeRing, n int) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return AllocSlice[T](s.r, n)
}

// SafeFreeTailValue thread-safely frees the oldest allocation as a T.
// Returns nil if the ring is empty.
func SafeFreeTailValue[T any](s *SafeRing) *T {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.r.IsEmpty() {
		return nil
	}
	return FreeTailValue[T](s.r)
}

// SafePtrAndKeepAlive returns t and keeps the ring reachable until this call.
func SafePtrAndKeepAlive[T any](s *SafeRing, t *T) *T {
	runtime.KeepAlive(s)
	return t
}

// Thread-safe metrics for SafeRing

// Utilization thread-safely returns allocated bytes over arena size.
func (s *SafeRing) Utilization() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Utilization()
}

// MaxAlloc thread-safely returns the largest allocation that currently fits.
func (s *SafeRing) MaxAlloc() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.MaxAlloc()
}

// Metrics thread-safely returns a snapshot of ring statistics.
func (s *SafeRing) Metrics() RingMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Metrics()
}
