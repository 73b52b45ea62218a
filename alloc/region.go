package alloc

// RegionAllocator is an append-only allocator that tracks cumulative
// allocation against a fixed capacity.
//
// Key characteristics:
//   - O(1) allocation: pure bump pointer, no search
//   - No free list: issued regions are never reclaimed
//   - Failure never mutates state
//
// Invariant: 0 <= allocated <= capacity, before and after every call.
type RegionAllocator struct {
	// capacity is fixed at construction.
	capacity uint64

	// allocated is the bump pointer, relative to VirtualBase.
	allocated uint64
}

// New creates a RegionAllocator that can issue at most capacity bytes.
// Capacities beyond MaxSpan are clamped to MaxSpan so every region's End
// stays representable; Usage reports the clamped value.
func New(capacity uint64) *RegionAllocator {
	return &RegionAllocator{capacity: min(capacity, MaxSpan)}
}

// Allocate issues a region of size bytes.
//
// Returns ErrInvalidAlignment for size 0 and ErrOutOfMemory when size exceeds
// the remaining capacity.
func (ra *RegionAllocator) Allocate(size uint64) (Region, error) {
	if size == 0 {
		return Region{}, ErrInvalidAlignment
	}

	// capacity-allocated cannot underflow while the invariant holds, and the
	// comparison cannot overflow the way allocated+size could.
	if size > ra.capacity-ra.allocated {
		return Region{}, ErrOutOfMemory
	}

	r := Region{
		Base: VirtualBase + ra.allocated,
		Size: size,
	}
	ra.allocated += size

	return r, nil
}

// Usage returns a snapshot of allocated and total bytes.
func (ra *RegionAllocator) Usage() Usage {
	return Usage{Allocated: ra.allocated, Capacity: ra.capacity}
}

// Compile-time interface check
var _ Allocator = (*RegionAllocator)(nil)
