package kernel

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/aurakernel/alloc"
	"github.com/joshuapare/aurakernel/power"
	"github.com/joshuapare/aurakernel/privacy"
)

// fakeRecorder captures Recorder calls.
type fakeRecorder struct {
	allocs []string
	boots  int
	masks  []string
}

func (f *fakeRecorder) RecordAllocation(_ uint64, err error, _ alloc.Usage) {
	f.allocs = append(f.allocs, alloc.Kind(err))
}
func (f *fakeRecorder) RecordBoot(time.Duration) { f.boots++ }
func (f *fakeRecorder) RecordMask(level string) { f.masks = append(f.masks, level) }

func fixedClock(t0 time.Time, step time.Duration) func() time.Time {
	cur := t0
	return func() time.Time {
		now := cur
		cur = cur.Add(step)
		return now
	}
}

func TestBoot_Defaults(t *testing.T) {
	core, err := Boot(DefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, "ANON-7x92-kLp1-0001", core.Identity().ID)
	assert.False(t, core.Identity().Authenticated)
	assert.Equal(t, privacy.High, core.Shield().Level())
	assert.Equal(t, power.Balanced, core.Power().Mode())

	u := core.Allocator().Usage()
	assert.Equal(t, alloc.Usage{Allocated: 4096, Capacity: 1024 * 1024}, u, "boot reserves 4KB")
	assert.Equal(t, alloc.Region{Base: alloc.VirtualBase, Size: 4096}, core.SecurityRegion())
}

func TestBoot_LogsSequence(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	core, err := Boot(DefaultConfig(), WithLogger(log))
	require.NoError(t, err)
	core.Shutdown()

	out := buf.String()
	for _, want := range []string{
		"kernel initializing",
		"id=ANON-7x92-kLp1-0001",
		"level=High",
		"mode=BALANCED",
		"multiplier=0.75",
		"output=***@masked.ch",
		"on-device intelligence ready",
		"kernel shutting down securely",
		"all local session data wiped",
	} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "kernel initializing"), strings.Index(out, "kernel shutting down"))
}

func TestBoot_ReserveTooLarge(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 1024

	_, err := Boot(cfg)
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)
	assert.Contains(t, err.Error(), "security module")
}

func TestBoot_ZeroReserve(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SecurityReserve = 0

	_, err := Boot(cfg)
	require.ErrorIs(t, err, alloc.ErrInvalidAlignment)
}

func TestBoot_UUIDIdentity(t *testing.T) {
	core, err := Boot(DefaultConfig(), WithUUIDIdentity())
	require.NoError(t, err)

	id := core.Identity().ID
	require.True(t, strings.HasPrefix(id, IdentityPrefix))
	_, err = uuid.Parse(strings.TrimPrefix(id, IdentityPrefix))
	assert.NoError(t, err)
}

func TestBoot_Recorder(t *testing.T) {
	rec := &fakeRecorder{}

	core, err := Boot(DefaultConfig(), WithRecorder(rec))
	require.NoError(t, err)

	assert.Equal(t, 1, rec.boots)
	assert.Equal(t, []string{"ok"}, rec.allocs)
	assert.Equal(t, []string{"High"}, rec.masks)

	_, err = core.Allocate(0)
	require.ErrorIs(t, err, alloc.ErrInvalidAlignment)
	assert.Equal(t, []string{"ok", "invalid_alignment"}, rec.allocs)
}

func TestCore_Allocate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Capacity = 8192

	core, err := Boot(cfg)
	require.NoError(t, err)

	r, err := core.Allocate(4096)
	require.NoError(t, err)
	assert.Equal(t, alloc.VirtualBase+4096, r.Base)
	assert.False(t, r.Overlaps(core.SecurityRegion()))

	_, err = core.Allocate(1)
	require.ErrorIs(t, err, alloc.ErrOutOfMemory)
	assert.Equal(t, uint64(8192), core.Status().Allocated)
}

func TestCore_Status(t *testing.T) {
	t0 := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	cfg := DefaultConfig()
	cfg.PrivacyLevel = privacy.Paranoid
	cfg.PowerMode = power.Efficient

	core, err := Boot(cfg, WithClock(fixedClock(t0, time.Second)))
	require.NoError(t, err)

	st := core.Status()
	assert.Equal(t, Version, st.Version)
	assert.Equal(t, t0, st.Identity.SessionStart)
	assert.Equal(t, "Paranoid", st.PrivacyLevel)
	assert.Equal(t, "Efficient", st.PowerMode)
	assert.Equal(t, float32(0.4), st.PowerFactor)
	assert.Equal(t, uint64(4096), st.Allocated)
	assert.True(t, st.Uptime > 0, "uptime should advance")
	assert.True(t, st.Running)

	core.Shutdown()
	core.Shutdown()
	assert.False(t, core.Status().Running)
}

func TestCore_Mask(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PrivacyLevel = privacy.Standard

	core, err := Boot(cfg)
	require.NoError(t, err)
	assert.Equal(t, "plain", core.Mask("plain"))
}

func TestCore_Semver(t *testing.T) {
	core, err := Boot(DefaultConfig())
	require.NoError(t, err)

	v := core.Semver()
	assert.Equal(t, uint64(1), v.Major())
	assert.Equal(t, "alpha.1", v.Prerelease())
	assert.Equal(t, Version, core.Version())
}
