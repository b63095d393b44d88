package ringalloc

// Utilization returns the ratio of allocated bytes to arena size (0.0 to 1.0).
func (r *Ring) Utilization() float64 {
	return float64(r.AllocatedBytes()) / float64(r.ArenaSize())
}

// MaxAlloc returns the largest n for which Alloc(n) would succeed right now,
// or 0 if no allocation fits. Free space split across the wrap point does not
// add up: only the larger contiguous run counts.
func (r *Ring) MaxAlloc() int {
	r.panicIfDestroyed()
	if r.head == none {
		return floorWord(len(r.mem) - HeaderSize)
	}

	limit := len(r.mem)
	if r.head < r.tail {
		limit = r.tail
	}
	best := limit - (r.head + HeaderSize + r.header(r.head).length()) - HeaderSize
	if r.head >= r.tail {
		best = max(best, r.tail-HeaderSize)
	}
	return max(floorWord(best), 0)
}

// Wrapped reports whether the head has wrapped around behind the tail.
func (r *Ring) Wrapped() bool {
	r.panicIfDestroyed()
	return r.head != none && r.head < r.tail
}

// Metrics returns a snapshot of ring statistics.
func (r *Ring) Metrics() RingMetrics {
	return RingMetrics{
		Count:          r.Count(),
		AllocatedBytes: r.AllocatedBytes(),
		ArenaSize:      r.ArenaSize(),
		MaxAlloc:       r.MaxAlloc(),
		Utilization:    r.Utilization(),
		OwnsArena:      r.OwnsArena(),
		Wrapped:        r.Wrapped(),
	}
}

// RingMetrics contains statistical information about a ring.
type RingMetrics struct {
	Count          int     // Live allocations
	AllocatedBytes int     // Payload plus header bytes of live allocations
	ArenaSize      int     // Arena size in bytes
	MaxAlloc       int     // Largest allocation that currently fits
	Utilization    float64 // AllocatedBytes / ArenaSize
	OwnsArena      bool    // Destroy releases the arena
	Wrapped        bool    // Head is behind the tail
}

// floorWord rounds n down to a multiple of WordSize.
func floorWord(n int) int {
	return n &^ (WordSize - 1)
}
