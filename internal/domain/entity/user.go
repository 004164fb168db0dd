// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User represents a registered account. The password is stored only as a
// salted bcrypt hash; the plaintext never leaves the registration request.
type User struct {
	ID           string    // Store-generated identifier for this account.
	Username     string    // Login identifier, unique across all accounts.
	Email        string    // Contact email, also unique across all accounts.
	PasswordHash string    // Salted bcrypt hash of the account password.
	CreatedAt    time.Time // Timestamp of when this account was created.
}
