// Package alloc provides region allocation against a fixed byte capacity.
//
// # Overview
//
// RegionAllocator is a bump allocator over a simulated address space. It never
// maps memory; it only decides whether a request fits in the remaining capacity
// and, if so, hands out a Region whose base follows the previous one.
//
//	a := alloc.New(1024)
//	r, err := a.Allocate(512)
//	if err != nil {
//	    return err
//	}
//	// r.Base == alloc.VirtualBase, r.Size == 512
//
// # Address Layout
//
// Regions start at VirtualBase (0x40000000). Each region's base is
// VirtualBase plus the bytes allocated before it, so regions from one
// allocator are contiguous and never overlap. Capacities above MaxSpan are
// clamped so the last region still ends at or below math.MaxUint64:
//
//	0x40000000        0x40000200        0x40000300
//	| region 0 (512)  | region 1 (256)  | ... free ...
//
// # Errors
//
//   - ErrInvalidAlignment: zero-size request
//   - ErrOutOfMemory: request exceeds remaining capacity
//   - ErrSecurityViolation: reserved for bounds checks, never returned
//
// A failed Allocate never changes Usage.
//
// There is no Free. Capacity only ever moves from remaining to allocated.
//
// # Thread Safety
//
// RegionAllocator is not thread-safe. Wrap it with NewSynchronized when more
// than one goroutine allocates from the same instance.
package alloc
