package models

import "time"

// User represents an account that owns and joins games.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"user_id"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Password is the plaintext password sent on register/login.
	// It is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored by the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
