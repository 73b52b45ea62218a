package kernel

import (
	"log/slog"
	"time"

	"github.com/joshuapare/aurakernel/alloc"
	"github.com/joshuapare/aurakernel/power"
	"github.com/joshuapare/aurakernel/privacy"
)

// Config sizes and tunes the subsystems built by Boot.
type Config struct {
	// Capacity is the allocator capacity in bytes.
	Capacity uint64

	// SecurityReserve is allocated at boot for the security module.
	SecurityReserve uint64

	PrivacyLevel privacy.Level
	PowerMode    power.Mode
}

// DefaultConfig returns a 1MB kernel with a 4KB security reserve, High
// privacy and Balanced power.
func DefaultConfig() Config {
	return Config{
		Capacity:        1024 * 1024,
		SecurityReserve: 4096,
		PrivacyLevel:    privacy.High,
		PowerMode:       power.Balanced,
	}
}

// Recorder receives kernel events for metrics. *metrics.Collector satisfies it.
type Recorder interface {
	RecordAllocation(size uint64, err error, u alloc.Usage)
	RecordBoot(d time.Duration)
	RecordMask(level string)
}

type nopRecorder struct{}

func (nopRecorder) RecordAllocation(uint64, error, alloc.Usage) {}
func (nopRecorder) RecordBoot(time.Duration) {}
func (nopRecorder) RecordMask(string) {}

// Option configures Boot.
type Option func(*Core)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Core) {
		if l != nil {
			c.log = l
		}
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(c *Core) {
		if r != nil {
			c.rec = r
		}
	}
}

// WithIDGenerator sets the identity generator. The default is PlaceholderGenerator.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *Core) {
		if g != nil {
			c.idgen = g
		}
	}
}

// WithUUIDIdentity is WithIDGenerator(UUIDGenerator).
func WithUUIDIdentity() Option {
	return WithIDGenerator(UUIDGenerator)
}

// WithClock overrides time.Now for session timestamps and uptime.
func WithClock(now func() time.Time) Option {
	return func(c *Core) {
		if now != nil {
			c.now = now
		}
	}
}
