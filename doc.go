// Package ringalloc implements a fixed-capacity ring buffer allocator.
//
// # Overview
//
// A Ring carves variable-sized, contiguous allocations out of one arena.
// Allocations are handed out at the head and reclaimed strictly in the same
// order from the tail, giving linked-list lifetimes (push at one end, pop at
// the other) with the locality of a flat buffer. Live data is never moved.
// This is particularly useful for:
//
//   - Variable-sized message or event queues
//   - Command buffers consumed in submission order
//   - Replacing a linked list whose nodes are freed oldest first
//
// # Basic Usage
//
//	r, err := ringalloc.NewOwned(4096)
//	if err != nil {
//	    return err
//	}
//	defer r.Destroy()
//
//	msg := r.Alloc(len(payload)) // nil when the ring is full
//	copy(msg, payload)
//
//	oldest := r.PeekTail() // look without freeing
//	oldest = r.FreeTail()  // free and return the oldest allocation
//
// A caller-supplied buffer can be used instead; the Ring then never frees it:
//
//	buf := make([]byte, 1024)
//	r := ringalloc.New(buf)
//
// # Memory Layout
//
// Every allocation is preceded by a HeaderSize byte header holding its
// length and the offset of the next younger header. Lengths are rounded up
// to WordSize, so every payload is word-aligned. NewItems sizes the arena
// as items*(itemSize+HeaderSize) to hold exactly that many items.
//
// When the space after the head runs out, the next allocation wraps to the
// start of the arena if it fits before the tail. A gap at the end that is
// too small for the next allocation stays unused until the tail passes it.
//
// # Contract Violations
//
// Misuse of a Ring is a programming error. Creating one from a bad buffer,
// using it before creation or after Destroy, and destroying an owned arena
// twice always panic. Alloc with a non-positive size and FreeTail on an empty
// ring are logged and return nil; building with the ringdebug tag makes them
// panic too and checks the allocation chain after every change.
//
// # Thread Safety
//
// Ring is not thread-safe. SafeRing serializes every call with a mutex.
package ringalloc
