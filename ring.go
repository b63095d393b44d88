package ringalloc

import (
	"fmt"
	"math"
	"unsafe"

	"github.com/charmbracelet/log"
)

// WordSize is the alignment of every payload, in bytes.
const WordSize = int(unsafe.Sizeof(uintptr(0)))

// MaxArenaSize is the largest arena a Ring accepts. Offsets are stored in
// 32-bit header fields.
const MaxArenaSize = math.MaxInt32

// Ring is a ring buffer allocator over a single arena. Not goroutine-safe.
// Use SafeRing for concurrent access.
type Ring struct {
	mem []byte

	// head is the most recently allocated block, tail the oldest one.
	// Both are header offsets into mem, or none when the chain is empty.
	head int
	tail int

	count int
	used  int // payload plus header bytes of live blocks

	owned     bool
	destroyed bool
	log       *log.Logger
}

// New creates a Ring over a caller-supplied buffer. The buffer is borrowed:
// Destroy never frees it. buf must be word-aligned and larger than HeaderSize.
func New(buf []byte, opts ...Option) *Ring {
	r := &Ring{}
	r.init(buf, opts)
	return r
}

// NewOwned creates a Ring over size bytes obtained from the system. The
// memory is released by Destroy.
func NewOwned(size int, opts ...Option) (*Ring, error) {
	checkArenaSize(size)
	buf, err := sysAlloc(size)
	if err != nil {
		return nil, fmt.Errorf("ringalloc: allocate %d byte arena: %w", size, err)
	}
	r := &Ring{}
	r.init(buf, opts)
	r.owned = true
	r.log.Debug("mapped arena", "size", size)
	return r, nil
}

// NewItems creates an owned Ring sized so that exactly items allocations of
// itemSize bytes fit at once.
func NewItems(items, itemSize int, opts ...Option) (*Ring, error) {
	if items <= 0 || itemSize <= 0 || itemSize > MaxArenaSize {
		panic(fmt.Errorf("%w: %d items of %d bytes", ErrBadSize, items, itemSize))
	}
	per := alignUp(itemSize) + HeaderSize
	if items > MaxArenaSize/per {
		panic(fmt.Errorf("%w: %d items of %d bytes exceeds %d", ErrBadArena, items, itemSize, MaxArenaSize))
	}
	return NewOwned(items*per, opts...)
}

func (r *Ring) init(buf []byte, opts []Option) {
	if buf == nil {
		panic(fmt.Errorf("%w: nil buffer", ErrBadArena))
	}
	checkArenaSize(len(buf))
	if uintptr(unsafe.Pointer(&buf[0]))%uintptr(WordSize) != 0 {
		panic(fmt.Errorf("%w: buffer not aligned to %d bytes", ErrBadArena, WordSize))
	}

	r.mem = buf
	r.head, r.tail = none, none
	r.count, r.used = 0, 0
	r.log = log.Default().WithPrefix("ringalloc")
	for _, opt := range opts {
		opt(r)
	}
}

func checkArenaSize(size int) {
	if size <= HeaderSize || size > MaxArenaSize {
		panic(fmt.Errorf("%w: size %d outside (%d, %d]", ErrBadArena, size, HeaderSize, MaxArenaSize))
	}
}

// Destroy releases the arena if the Ring owns it. The Ring is unusable
// afterwards. Destroying an owned Ring twice panics.
func (r *Ring) Destroy() error {
	if r.mem == nil {
		switch {
		case r.owned:
			panic(ErrDoubleDestroy)
		case !r.destroyed:
			panic(ErrNotInitialized)
		}
		return nil
	}
	if r.owned {
		r.log.Debug("unmapping arena", "size", len(r.mem))
		if err := sysFree(r.mem); err != nil {
			return fmt.Errorf("ringalloc: release arena: %w", err)
		}
	}
	r.mem = nil
	r.head, r.tail = none, none
	r.destroyed = true
	return nil
}

// Alloc returns n bytes at the head of the ring, rounded up to WordSize.
// The returned slice has the rounded length and a capacity clamped to it.
// Its contents are whatever the region last held.
// Returns nil if no contiguous region is free; the Ring is unchanged then.
func (r *Ring) Alloc(n int) []byte {
	r.panicIfDestroyed()
	if n <= 0 {
		r.violation(fmt.Errorf("%w: alloc of %d bytes", ErrBadSize, n))
		return nil
	}
	if n > len(r.mem) {
		return nil
	}

	size := alignUp(n)
	need := HeaderSize + size

	if r.head == none {
		if need > len(r.mem) {
			return nil
		}
		r.tail = 0
		return r.link(0, size)
	}

	// Once the head has wrapped behind the tail, the tail bounds the free run.
	limit := len(r.mem)
	if r.head < r.tail {
		limit = r.tail
	}

	off := r.head + HeaderSize + r.header(r.head).length()
	switch {
	case off+need <= limit:
	case r.head >= r.tail && need <= r.tail:
		off = 0
	default:
		return nil
	}
	r.header(r.head).setNext(off)
	return r.link(off, size)
}

// AllocZeroed is Alloc with the returned bytes cleared.
func (r *Ring) AllocZeroed(n int) []byte {
	b := r.Alloc(n)
	clear(b)
	return b
}

// link writes a header at off, makes it the head and returns its payload.
func (r *Ring) link(off, size int) []byte {
	h := r.header(off)
	h.setLength(size)
	h.setNext(none)
	r.head = off
	r.count++
	r.used += HeaderSize + size
	r.checkInvariants()
	return r.payload(off, size)
}

// PeekTail returns the oldest live allocation without freeing it, or nil if
// the Ring is empty.
func (r *Ring) PeekTail() []byte {
	r.panicIfDestroyed()
	if r.tail == none {
		return nil
	}
	return r.payload(r.tail, r.header(r.tail).length())
}

// FreeTail frees the oldest live allocation and returns it. The bytes stay
// intact until a later Alloc reuses the region.
// Calling FreeTail on an empty Ring is a contract violation.
func (r *Ring) FreeTail() []byte {
	r.panicIfDestroyed()
	if r.tail == none {
		r.violation(ErrEmpty)
		return nil
	}

	h := r.header(r.tail)
	size := h.length()
	b := r.payload(r.tail, size)

	if next := h.next(); next != none {
		r.tail = next
	} else {
		r.head, r.tail = none, none
	}
	r.count--
	r.used -= HeaderSize + size
	r.checkInvariants()
	return b
}

// Reset drops every live allocation at once. The arena is kept.
func (r *Ring) Reset() {
	r.panicIfDestroyed()
	r.head, r.tail = none, none
	r.count, r.used = 0, 0
}

// IsEmpty reports whether the Ring holds no live allocations.
func (r *Ring) IsEmpty() bool {
	r.panicIfDestroyed()
	return r.head == none
}

// Count returns the number of live allocations.
func (r *Ring) Count() int {
	r.panicIfDestroyed()
	return r.count
}

// AllocatedBytes returns the bytes held by live allocations, headers included.
func (r *Ring) AllocatedBytes() int {
	r.panicIfDestroyed()
	return r.used
}

// ArenaSize returns the size of the arena in bytes.
func (r *Ring) ArenaSize() int {
	r.panicIfDestroyed()
	return len(r.mem)
}

// OwnsArena reports whether Destroy will release the arena.
func (r *Ring) OwnsArena() bool {
	r.panicIfDestroyed()
	return r.owned
}

func (r *Ring) payload(off, size int) []byte {
	start := off + HeaderSize
	return r.mem[start : start+size : start+size]
}

// panicIfDestroyed panics if the Ring was never initialized or was destroyed.
func (r *Ring) panicIfDestroyed() {
	if r.mem == nil {
		panic(ErrNotInitialized)
	}
}

// alignUp rounds n up to a multiple of WordSize.
func alignUp(n int) int {
	const mask = WordSize - 1
	return (n + mask) &^ mask
}
