package ringalloc

import "errors"

var (
	// ErrNotInitialized indicates use of a Ring that was never created with
	// New, NewOwned or NewItems, or that has been destroyed.
	ErrNotInitialized = errors.New("ringalloc: ring not initialized")

	// ErrBadArena indicates a nil, misaligned, too small or too large arena.
	ErrBadArena = errors.New("ringalloc: bad arena")

	// ErrBadSize indicates a non-positive allocation or item size.
	ErrBadSize = errors.New("ringalloc: bad size")

	// ErrEmpty indicates FreeTail on a ring with no live allocations.
	ErrEmpty = errors.New("ringalloc: free from empty ring")

	// ErrDoubleDestroy indicates Destroy called twice on a ring owning its arena.
	ErrDoubleDestroy = errors.New("ringalloc: owned arena destroyed twice")

	// ErrCorrupt indicates the allocation chain no longer matches the counters.
	ErrCorrupt = errors.New("ringalloc: corrupt allocation chain")
)
