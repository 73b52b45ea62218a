package alloc

import "errors"

var (
	// ErrInvalidAlignment indicates a malformed request (zero size).
	ErrInvalidAlignment = errors.New("alloc: invalid alignment")

	// ErrOutOfMemory indicates the request exceeds the remaining capacity.
	ErrOutOfMemory = errors.New("alloc: out of memory")

	// ErrSecurityViolation is reserved for accesses outside granted bounds.
	// No allocator in this package returns it yet.
	ErrSecurityViolation = errors.New("alloc: security violation")
)

// Kind returns a short stable label for an allocator error, suitable for
// metric labels and machine-readable output.
func Kind(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrInvalidAlignment):
		return "invalid_alignment"
	case errors.Is(err, ErrOutOfMemory):
		return "out_of_memory"
	case errors.Is(err, ErrSecurityViolation):
		return "security_violation"
	default:
		return "unknown"
	}
}
