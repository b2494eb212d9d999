package models

import "time"

// User represents an account entity used for authentication, authorization
// and per-user document encryption. Sensitive fields must never be exposed
// outside trusted boundaries.
type User struct {
	// UUID is the derived identity of the user:
	// hex(SHA-256(username || hashedPassword || salt)).
	// Computed once at registration and immutable afterwards. It is never
	// recomputed from, or trusted as, client input.
	UUID string `json:"uuid"`

	// Username is the unique login identifier.
	Username string `json:"username"`

	// HashedPassword is the adaptive bcrypt hash of the user's password.
	// Together with Salt it is the sole key-derivation material for the
	// user's document encryption key. Never serialized.
	HashedPassword []byte `json:"-"`

	// Salt is 16 random bytes generated at registration. Never serialized.
	Salt []byte `json:"-"`

	// Role is one of the closed role set: admin, hr, finance, legal, general.
	Role string `json:"role"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
