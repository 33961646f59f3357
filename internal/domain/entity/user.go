// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity in the system. Role-specific behaviour is
// dispatched on the Role tag rather than through subtypes; identity is
// immutable once created, only profile fields and Approval may change.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Name         string    // The user's display name.
	Phone        string    // The user's phone number, unique across the platform and used to log in.
	PasswordHash string    // The bcrypt hash of the user's password; never serialized outward.
	Role         Role      // The single role this identity acts under.
	Approval     Approval  // Admin approval gate; sellers and couriers start pending.
	CreatedAt    time.Time // Timestamp of when this account was registered.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// IsActive reports whether the user may perform role-gated operations.
// Customers and admins are confirmed at registration; sellers and couriers
// only after admin approval.
func (u *User) IsActive() bool {
	return u.Approval.IsConfirmed()
}
