package kernel

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Masterminds/semver/v3"

	"github.com/joshuapare/aurakernel/alloc"
	"github.com/joshuapare/aurakernel/power"
	"github.com/joshuapare/aurakernel/privacy"
)

// Version is the kernel release.
const Version = "1.0.0-alpha.1"

// DemoSample is masked once during boot to show the shield is active.
const DemoSample = "user@example.com"

// Core owns the kernel subsystems for one session.
type Core struct {
	identity  Identity
	allocator *alloc.RegionAllocator
	shield    *privacy.Shield
	power     *power.Profile

	// reserved is the security module's region, allocated during Boot.
	reserved alloc.Region

	log   *slog.Logger
	rec   Recorder
	idgen IDGenerator
	now   func() time.Time

	down bool
}

// Boot builds and initializes a Core. It fails if the security reserve does
// not fit in cfg.Capacity; the returned error wraps the allocator error.
func Boot(cfg Config, opts ...Option) (*Core, error) {
	c := &Core{
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		rec:   nopRecorder{},
		idgen: PlaceholderGenerator,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}

	start := c.now()
	c.log.Info("kernel initializing", "version", Version)

	c.identity = newIdentity(c.idgen, start)
	c.shield = privacy.New(cfg.PrivacyLevel)
	c.power = power.New(cfg.PowerMode)
	c.allocator = alloc.New(cfg.Capacity)

	c.log.Info("secure identity generated", "id", c.identity.ID)
	c.log.Info("privacy shield active", "level", c.shield.Level().String())

	c.power.Report(c.log)

	r, err := c.Allocate(cfg.SecurityReserve)
	if err != nil {
		return nil, fmt.Errorf("kernel: reserve %d bytes for security module: %w", cfg.SecurityReserve, err)
	}
	c.reserved = r

	c.log.Info("privacy shield test mask", "input", DemoSample, "output", c.Mask(DemoSample))
	c.log.Info("on-device intelligence ready")

	c.rec.RecordBoot(c.now().Sub(start))
	return c, nil
}

// Version returns the kernel release string.
func (c *Core) Version() string { return Version }

// Semver returns Version parsed as a semantic version.
func (c *Core) Semver() *semver.Version { return semver.MustParse(Version) }

// Identity returns the session identity.
func (c *Core) Identity() Identity { return c.identity }

// Allocator returns the kernel's allocator. Allocations made through it
// directly bypass logging and metrics; prefer Core.Allocate.
func (c *Core) Allocator() alloc.Allocator { return c.allocator }

// Shield returns the privacy shield.
func (c *Core) Shield() *privacy.Shield { return c.shield }

// Power returns the power profile.
func (c *Core) Power() *power.Profile { return c.power }

// SecurityRegion returns the region reserved during boot.
func (c *Core) SecurityRegion() alloc.Region { return c.reserved }

// Allocate allocates size bytes, logging and recording the outcome.
func (c *Core) Allocate(size uint64) (alloc.Region, error) {
	r, err := c.allocator.Allocate(size)
	u := c.allocator.Usage()
	c.rec.RecordAllocation(size, err, u)

	if err != nil {
		c.log.Warn("allocation rejected",
			"size", size,
			"reason", alloc.Kind(err),
			"allocated", u.Allocated,
			"capacity", u.Capacity,
		)
		return alloc.Region{}, err
	}

	c.log.Debug("allocation granted",
		"base", fmt.Sprintf("0x%x", r.Base),
		"size", r.Size,
	)
	return r, nil
}

// Mask runs data through the shield and records the operation.
func (c *Core) Mask(data string) string {
	c.rec.RecordMask(c.shield.Level().String())
	return c.shield.Mask(data)
}

// Status is a point-in-time summary of a Core.
type Status struct {
	Version      string        `json:"version"`
	Identity     Identity      `json:"identity"`
	PrivacyLevel string        `json:"privacy_level"`
	PowerMode    string        `json:"power_mode"`
	PowerFactor  float32       `json:"power_factor"`
	Allocated    uint64        `json:"allocated_bytes"`
	Capacity     uint64        `json:"capacity_bytes"`
	Uptime       time.Duration `json:"uptime_ns"`
	Running      bool          `json:"running"`
}

// Status returns a snapshot of the kernel.
func (c *Core) Status() Status {
	u := c.allocator.Usage()
	return Status{
		Version:      Version,
		Identity:     c.identity,
		PrivacyLevel: c.shield.Level().String(),
		PowerMode:    c.power.Mode().String(),
		PowerFactor:  c.power.OptimizationFactor(),
		Allocated:    u.Allocated,
		Capacity:     u.Capacity,
		Uptime:       c.now().Sub(c.identity.SessionStart),
		Running:      !c.down,
	}
}

// Shutdown ends the session. There is no state to flush; repeated calls are no-ops.
func (c *Core) Shutdown() {
	if c.down {
		return
	}
	c.down = true
	c.log.Info("kernel shutting down securely")
	c.log.Info("all local session data wiped")
}
