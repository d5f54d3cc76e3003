package models

import (
	"net/url"
	"time"
)

// User represents a registered account. It contains identity attributes and
// credential-related data. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the canonical opaque identifier of the user (UUID string).
	// Every ownership comparison in the application operates on this value,
	// so it must never be exposed in any other representation.
	UserID string `json:"-"`

	// Username is the unique login identifier. Must be at least 3 characters.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext, and must never be logged.
	PasswordHash string `json:"-"`

	// Bio is an optional free-text description shown on the profile page.
	Bio string `json:"bio"`

	// ProfilePicture is an optional URL to the user's avatar. When empty,
	// [User.AvatarURL] falls back to a generated avatar.
	ProfilePicture string `json:"profile_picture"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile mutation.
	UpdatedAt time.Time `json:"updated_at"`

	// LastLogin is the timestamp of the most recent successful login.
	// Nil until the user logs in for the first time.
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// AvatarURL returns the profile picture URL to display for the user.
// When the user has not set one, a generated avatar derived from the
// username is returned instead.
func (u User) AvatarURL() string {
	if u.ProfilePicture != "" {
		return u.ProfilePicture
	}
	return "https://ui-avatars.com/api/?name=" + url.QueryEscape(u.Username)
}
