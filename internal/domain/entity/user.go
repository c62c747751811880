// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is the core entity in the system, representing a unique account.
// The ID is opaque and assigned by the store; username and email are each
// unique across all users.
type User struct {
	ID           string    // The store-assigned identifier for the user.
	Username     string    // The user's unique login name.
	Email        string    // The user's unique contact email.
	PasswordHash string    // Bcrypt hash of the password. The plaintext is never stored.
	Roles        Roles     // The set of role labels granted to this user.
	CreatedAt    time.Time // Timestamp of when this user account was created.
}

// HasRole reports whether the user holds the given role.
func (u *User) HasRole(role Role) bool {
	return u.Roles.Contains(role)
}
