package session

import (
	"context"
	"time"
)

// Session is the server-side record of an authenticated browsing context.
// Email, Name and Role are snapshots taken at login or signup time; a later
// role change does not update sessions that are already open.
type Session struct {
	ID        string    // opaque token held by the client
	Email     string    // account identifier
	Name      string    // display name
	Role      string    // role at time of last login/signup
	ExpiresAt time.Time // absolute expiry, fixed at creation
}

// Store defines how sessions are stored and retrieved. Implementations
// must remain opaque key-value stores with TTL semantics.
type Store interface {
	// Create persists the session until its absolute expiry.
	Create(ctx context.Context, s Session) error

	// Get returns the session, or nil when the token is unknown or the
	// session has expired.
	Get(ctx context.Context, sessionID string) (*Session, error)

	// Delete removes the session. Deleting a nonexistent session is
	// not an error.
	Delete(ctx context.Context, sessionID string) error
}
