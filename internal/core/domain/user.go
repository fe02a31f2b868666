package domain

import "time"

// User represents a registered user of the application.
type User struct {
	UserID       string    `json:"userID"` // UUID
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // bcrypt hash, never serialized
	CreatedAt    time.Time `json:"createdAt"`
}
