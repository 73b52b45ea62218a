package alloc

import (
	"fmt"
	"math"
)

// VirtualBase is the simulated address of the first byte handed out by an allocator.
const VirtualBase uint64 = 0x4000_0000

// MaxSpan is the largest capacity an allocator can hold: the simulated
// address space from VirtualBase to the top of uint64.
const MaxSpan uint64 = math.MaxUint64 - VirtualBase

// Region describes a contiguous simulated address range issued by an allocator.
type Region struct {
	Base uint64 // simulated start address
	Size uint64 // requested size in bytes
}

// End returns the first address past the region.
func (r Region) End() uint64 {
	return r.Base + r.Size
}

// Contains reports whether addr falls inside [Base, End).
func (r Region) Contains(addr uint64) bool {
	return addr >= r.Base && addr < r.End()
}

// Overlaps reports whether r and o share at least one address.
func (r Region) Overlaps(o Region) bool {
	return r.Base < o.End() && o.Base < r.End()
}

func (r Region) String() string {
	return fmt.Sprintf("0x%x+%d", r.Base, r.Size)
}

// Usage is a snapshot of an allocator's accounting.
type Usage struct {
	Allocated uint64
	Capacity  uint64
}

// Remaining returns the bytes still available.
func (u Usage) Remaining() uint64 {
	return u.Capacity - u.Allocated
}

// Allocator defines the interface for region allocation.
//
// Implementations:
//   - RegionAllocator: single-owner bump allocator
//   - Synchronized: mutex-guarded wrapper for shared use
type Allocator interface {
	// Allocate reserves size bytes and returns the region describing them.
	// On error no state changes.
	Allocate(size uint64) (Region, error)

	// Usage returns the current allocated and total byte counts.
	Usage() Usage
}
