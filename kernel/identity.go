package kernel

import (
	"time"

	"github.com/google/uuid"
)

// IdentityPrefix precedes every generated identity.
const IdentityPrefix = "ANON-"

// PlaceholderID is the stable local ID used unless a real generator is configured.
const PlaceholderID = "7x92-kLp1-0001"

// Identity is the anonymous identity of a kernel session.
type Identity struct {
	ID            string    `json:"id"`
	Authenticated bool      `json:"authenticated"`
	SessionStart  time.Time `json:"session_start"`
}

// IDGenerator returns the suffix of a session identity.
type IDGenerator func() string

// PlaceholderGenerator always returns PlaceholderID.
func PlaceholderGenerator() string { return PlaceholderID }

// UUIDGenerator returns a random version 4 UUID.
func UUIDGenerator() string { return uuid.NewString() }

func newIdentity(gen IDGenerator, now time.Time) Identity {
	return Identity{
		ID:            IdentityPrefix + gen(),
		Authenticated: false,
		SessionStart:  now,
	}
}
