// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular ordering customer.
	RoleCustomer Role = "customer"
	// RoleSeller indicates a restaurant owner.
	RoleSeller Role = "seller"
	// RoleCourier indicates a delivery courier.
	RoleCourier Role = "courier"
	// RoleAdmin indicates a platform administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleSeller, RoleCourier, RoleAdmin:
		return true
	default:
		return false
	}
}

// RequiresApproval reports whether a freshly registered user of this role
// must be confirmed by an admin before acting on the platform.
func (r Role) RequiresApproval() bool {
	return r == RoleSeller || r == RoleCourier
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
