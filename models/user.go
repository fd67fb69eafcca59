package models

import "time"

// User is an account record. Every other entity in the system is scoped to
// exactly one user via its UserID.
type User struct {
	// UserID is the server-assigned primary key.
	UserID int64 `json:"user_id,omitempty"`

	// Login is the unique account name used for authentication.
	Login string `json:"login"`

	// Password is the plain-text password as received in a register/login
	// request body. Never stored; hashed with bcrypt before persistence.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash persisted in the users table.
	// Excluded from JSON so it never leaks into responses.
	PasswordHash string `json:"-"`

	// Name is an optional display name.
	Name string `json:"name,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}
