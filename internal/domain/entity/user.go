// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is a registered account in the storefront. The password is only ever
// stored as a bcrypt hash; the plaintext never leaves the auth service.
type User struct {
	ID           int64     // Primary key, assigned by the database.
	Name         string    // Display name supplied at registration.
	Email        string    // Login identifier, unique across all users.
	PasswordHash string    // Bcrypt hash of the user's password.
	Role         Role      // Authorization tag gating admin-only routes.
	CreatedAt    time.Time // Timestamp of when the account was created.
}

// IsAdmin reports whether the user may access admin-only operations.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
