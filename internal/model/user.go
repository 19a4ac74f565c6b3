package model

import "time"

// UserID uniquely identifies a user across the system
type UserID string

// User represents a registered account
type User struct {
	ID           UserID
	Username     string // login username (unique, immutable)
	PasswordHash string // bcrypt hash
	CreatedAt    time.Time
	LastLogin    *time.Time // nil until the first login
}
