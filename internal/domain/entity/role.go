// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer is the default role assigned at registration.
	RoleCustomer Role = "customer"
	// RoleUser is a legacy alias for customer accounts created by older
	// clients; it carries no extra privileges.
	RoleUser Role = "user"
	// RoleAdmin grants access to product, category, order and user management.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}
