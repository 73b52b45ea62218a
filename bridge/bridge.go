// Package bridge is the narrow surface the graphics and mobile front ends
// call into: an init hook, a version string handed out under a handle that
// must be released exactly once, and the fluid intensity curve used to pace
// animations.
package bridge

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/Masterminds/semver/v3"
)

// Version is the bridge interface version.
const Version = "1.0.0-ffi.alpha"

// InitOK is returned by Init on success.
const InitOK int32 = 1

// ErrUnknownHandle is returned when releasing a handle that was never
// acquired or was already released.
var ErrUnknownHandle = errors.New("bridge: unknown or released handle")

// Init initializes the privacy shield side of the bridge. A nil logger discards.
func Init(log *slog.Logger) int32 {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	log.Info("bridge initializing privacy shield", "version", Version)
	return InitOK
}

// ParsedVersion returns Version as a semantic version.
func ParsedVersion() (*semver.Version, error) {
	return semver.NewVersion(Version)
}

// FluidIntensity blends two sine waves into t so motion eases in and out
// instead of advancing linearly.
func FluidIntensity(t float32) float32 {
	ripple := float32(math.Sin(float64(t*0.4))) * 0.15
	wave := float32(math.Cos(float64(t*1.2+ripple))) * 0.05
	return t + ripple + wave
}

// Handle identifies a string handed across the bridge. The zero Handle is
// never issued and plays the role of a null pointer.
type Handle uint64

// Strings tracks strings handed out to callers. Each Acquire must be paired
// with exactly one Release. Safe for concurrent use.
type Strings struct {
	mu   sync.Mutex
	next Handle
	live map[Handle]string
}

// NewStrings returns an empty handle table.
func NewStrings() *Strings {
	return &Strings{live: make(map[Handle]string)}
}

// Acquire hands out a copy of the version string under a fresh handle.
func (s *Strings) Acquire() (Handle, string) {
	return s.AcquireString(Version)
}

// AcquireString hands out v under a fresh handle.
func (s *Strings) AcquireString(v string) (Handle, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.live[s.next] = v
	return s.next, v
}

// Release frees h. Releasing the zero handle is a no-op.
func (s *Strings) Release(h Handle) error {
	if h == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.live[h]; !ok {
		return ErrUnknownHandle
	}
	delete(s.live, h)
	return nil
}

// Outstanding returns the number of handles not yet released.
func (s *Strings) Outstanding() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.live)
}
