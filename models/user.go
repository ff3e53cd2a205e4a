package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user,
	// assigned by the database on creation.
	ID int64 `json:"id"`

	// Email is the unique address the user signs in with.
	// Uniqueness is enforced at the store level.
	Email string `json:"email"`

	// PasswordHash stores the derived representation of the user's password
	// (an encoded Argon2id string, never plaintext). It is excluded from JSON
	// so that no response can ever leak it.
	PasswordHash string `json:"-"`

	// FirstName is an optional display name component.
	FirstName string `json:"firstName,omitempty"`

	// LastName is an optional display name component.
	LastName string `json:"lastName,omitempty"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
