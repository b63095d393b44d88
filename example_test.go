package ringalloc

import (
	"bytes"
	"fmt"
	"sync"
)

// Example demonstrates basic ring usage
func Example() {
	// Create a ring over 1 KiB of system memory
	r, err := NewOwned(1024)
	if err != nil {
		panic(err)
	}
	defer r.Destroy()

	// Allocate at the head
	copy(r.Alloc(16), "first message")
	copy(r.Alloc(16), "second message")
	fmt.Printf("Live allocations: %d\n", r.Count())
	fmt.Printf("Allocated bytes: %d\n", r.AllocatedBytes())

	// Look at the tail without freeing it
	fmt.Printf("Oldest: %s\n", bytes.TrimRight(r.PeekTail(), "\x00"))

	// Free from the tail, oldest first
	for !r.IsEmpty() {
		b := r.FreeTail()
		fmt.Printf("Freed %d bytes: %s\n", len(b), bytes.TrimRight(b, "\x00"))
	}

	// Output:
	// Live allocations: 2
	// Allocated bytes: 48
	// Oldest: first message
	// Freed 16 bytes: first message
	// Freed 16 bytes: second message
}

// ExampleNewItems demonstrates sizing a ring for an exact number of items
func ExampleNewItems() {
	r, err := NewItems(10, 16)
	if err != nil {
		panic(err)
	}
	defer r.Destroy()

	n := 0
	for r.Alloc(16) != nil {
		n++
	}
	fmt.Printf("Arena size: %d bytes\n", r.ArenaSize())
	fmt.Printf("Items that fit: %d\n", n)

	// Freeing one item makes room for exactly one more
	r.FreeTail()
	fmt.Println(r.Alloc(16) != nil, r.Alloc(16) != nil)

	// Output:
	// Arena size: 240 bytes
	// Items that fit: 10
	// true false
}

// ExampleRing_wraparound demonstrates the head wrapping to the start of the arena
func ExampleRing_wraparound() {
	buf := make([]byte, 1024)
	r := New(buf)

	r.Alloc(500)
	r.Alloc(500)
	fmt.Printf("Room after the head: %d bytes\n", r.MaxAlloc())

	// Freeing the oldest block opens room at the start of the arena
	r.FreeTail()
	fmt.Printf("Room before the tail: %d bytes\n", r.MaxAlloc())

	fmt.Println("Allocated:", r.Alloc(500) != nil)
	fmt.Println("Wrapped:", r.Wrapped())

	// Output:
	// Room after the head: 0 bytes
	// Room before the tail: 504 bytes
	// Allocated: true
	// Wrapped: true
}

// ExampleRing_Metrics demonstrates monitoring ring usage
func ExampleRing_Metrics() {
	buf := make([]byte, 1024)
	r := New(buf)

	r.Alloc(100)
	AllocValue[int64](r)
	AllocSlice[int32](r, 50)

	metrics := r.Metrics()
	fmt.Printf("Metrics:\n")
	fmt.Printf("  Allocations: %d\n", metrics.Count)
	fmt.Printf("  Allocated: %d bytes\n", metrics.AllocatedBytes)
	fmt.Printf("  Arena: %d bytes\n", metrics.ArenaSize)
	fmt.Printf("  Largest free block: %d bytes\n", metrics.MaxAlloc)
	fmt.Printf("  Utilization: %.1f%%\n", metrics.Utilization*100)

	// Output:
	// Metrics:
	//   Allocations: 3
	//   Allocated: 336 bytes
	//   Arena: 1024 bytes
	//   Largest free block: 680 bytes
	//   Utilization: 32.8%
}

// ExampleAllocValue demonstrates a typed FIFO queue
func ExampleAllocValue() {
	type vec3 struct{ X, Y, Z float32 }

	r, err := NewItems(4, 12)
	if err != nil {
		panic(err)
	}
	defer r.Destroy()

	*AllocValue[vec3](r) = vec3{1, 2, 3}
	*AllocValue[int32](r) = 42

	fmt.Println(*FreeTailValue[vec3](r))
	fmt.Println(*FreeTailValue[int32](r))
	fmt.Println("Empty:", r.IsEmpty())

	// Output:
	// {1 2 3}
	// 42
	// Empty: true
}

// ExampleSafeRing demonstrates thread-safe ring usage
func ExampleSafeRing() {
	s, err := NewSafeOwned(1024)
	if err != nil {
		panic(err)
	}
	defer s.Destroy()

	var wg sync.WaitGroup
	const numWorkers = 3

	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			*SafeAllocValue[int64](s) = int64(id)
		}(i)
	}

	wg.Wait()
	fmt.Printf("Live allocations: %d\n", s.Count())
	fmt.Printf("Allocated bytes: %d\n", s.AllocatedBytes())

	// Output:
	// Live allocations: 3
	// Allocated bytes: 48
}
