// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the marketplace role a user holds.
type Role string

const (
	// RoleBuyer is the default role assigned to every new profile.
	RoleBuyer Role = "buyer"
	// RoleSeller indicates a user who runs stores.
	RoleSeller Role = "seller"
	// RoleAdmin indicates a marketplace administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string for JWT compatibility.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RoleOrDefault parses s and falls back to RoleBuyer for unknown values.
func RoleOrDefault(s string) Role {
	role := Role(s)
	if role.IsValid() {
		return role
	}

	return RoleBuyer
}
