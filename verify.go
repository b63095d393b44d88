package ringalloc

import (
	"errors"
	"fmt"
	"iter"
)

// All returns an iterator over the live allocations, oldest first.
// The Ring must not be modified during iteration.
func (r *Ring) All() iter.Seq[[]byte] {
	r.panicIfDestroyed()
	return func(yield func([]byte) bool) {
		for off := r.tail; off != none; {
			h := r.header(off)
			if !yield(r.payload(off, h.length())) {
				return
			}
			off = h.next()
		}
	}
}

// Verify walks the allocation chain and checks it against the head, tail
// and counters. Every breach found is reported, each wrapping ErrCorrupt.
func (r *Ring) Verify() error {
	r.panicIfDestroyed()

	if (r.head == none) != (r.tail == none) {
		return fmt.Errorf("%w: head %d and tail %d disagree on emptiness", ErrCorrupt, r.head, r.tail)
	}

	var errs []error
	seen, used, last := 0, 0, none
	for off := r.tail; off != none; {
		if seen == r.count {
			errs = append(errs, fmt.Errorf("%w: chain continues past %d blocks at offset %d", ErrCorrupt, r.count, off))
			break
		}
		if off < 0 || off%WordSize != 0 || off+HeaderSize > len(r.mem) {
			errs = append(errs, fmt.Errorf("%w: bad header offset %d", ErrCorrupt, off))
			break
		}
		h := r.header(off)
		size := h.length()
		if size <= 0 || size%WordSize != 0 || off+HeaderSize+size > len(r.mem) {
			errs = append(errs, fmt.Errorf("%w: block at %d has bad length %d", ErrCorrupt, off, size))
			break
		}
		seen++
		used += HeaderSize + size
		last = off
		off = h.next()
	}

	if seen != r.count {
		errs = append(errs, fmt.Errorf("%w: walked %d blocks, count is %d", ErrCorrupt, seen, r.count))
	}
	if used != r.used {
		errs = append(errs, fmt.Errorf("%w: walked %d bytes, allocated bytes is %d", ErrCorrupt, used, r.used))
	}
	if last != r.head {
		errs = append(errs, fmt.Errorf("%w: chain ends at %d, head is %d", ErrCorrupt, last, r.head))
	}
	return errors.Join(errs...)
}
