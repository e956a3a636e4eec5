package domain

import "time"

// User represents an application account that can open a session.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Username     string `json:"username"`
	PasswordHash string `json:"-"`

	// RefreshToken mirrors the refresh credential last issued to this user.
	// At most one value is live per user: it is set on login, replaced by a
	// later login and cleared on logout. A nil value means no active session.
	RefreshToken *string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
