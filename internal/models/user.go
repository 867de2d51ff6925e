package models

import "time"

// User mirrors the identity provider's user in the users table.
type User struct {
	ID        string    `json:"id" db:"id"`                 // Identity provider user ID
	Email     *string   `json:"email" db:"email"`           // Email address
	FullName  *string   `json:"full_name" db:"full_name"`   // Display name
	AvatarURL *string   `json:"avatar_url" db:"avatar_url"` // Avatar image URL
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// DisplayName returns the full name, falling back to the email address.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FullName != nil && *u.FullName != "" {
		return *u.FullName
	}
	if u.Email != nil {
		return *u.Email
	}
	return ""
}
