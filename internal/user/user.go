package user

import (
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level attached to an account. It is cached in
// the session at login time, so an open session keeps the role it was
// issued with until the user logs in again.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User is a single account record. Email uniquely identifies at most one
// record; uniqueness is enforced by the store, not by application locking.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the account carries the admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
