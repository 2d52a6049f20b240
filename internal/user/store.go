package user

import (
	"context"
	"errors"
)

// ErrDuplicateEmail is returned by Insert when a record with the same email
// already exists. Concurrent signups racing on the same email resolve to
// this error through the store's uniqueness constraint.
var ErrDuplicateEmail = errors.New("user: email already registered")

// Store is the credential store. Implementations must be safe for
// concurrent use; callers acquire connections per operation and never hold
// them across requests.
type Store interface {
	// FindByEmail returns the record for an exact email match, or nil
	// when no such record exists.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// Insert persists a new record and fills in its generated fields.
	// A colliding email yields ErrDuplicateEmail.
	Insert(ctx context.Context, u *User) error

	// SetRole updates only the role field of the matching record. An
	// absent email is a no-op, not an error.
	SetRole(ctx context.Context, email string, role Role) error

	// ListAll returns every record in insertion order.
	ListAll(ctx context.Context) ([]User, error)
}
