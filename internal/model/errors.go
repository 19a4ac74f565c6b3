package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")

	// Play tracking errors
	ErrInvalidGameTitle = errors.New("game title is required")
	ErrInvalidDuration  = errors.New("duration must be a non-negative number of seconds")

	// Contact errors
	ErrMissingContactFields = errors.New("email, subject, and message are required")
)
