package alloc

import "sync"

// Synchronized serializes access to an Allocator so the capacity check and
// the bump happen as one step.
type Synchronized struct {
	mu sync.Mutex
	a  Allocator
}

// NewSynchronized wraps a. The caller must not use a directly afterwards.
func NewSynchronized(a Allocator) *Synchronized {
	return &Synchronized{a: a}
}

// Allocate allocates from the wrapped allocator under the lock.
func (s *Synchronized) Allocate(size uint64) (Region, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(size)
}

// Usage reads the wrapped allocator's usage under the lock.
func (s *Synchronized) Usage() Usage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Usage()
}

var _ Allocator = (*Synchronized)(nil)
