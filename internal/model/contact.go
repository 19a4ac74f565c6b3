package model

import "time"

// ContactMessage is a message submitted through the contact form
type ContactMessage struct {
	ID          string
	Name        string // "Anonymous" when the sender left it blank
	Email       string
	Subject     string
	Message     string
	SubmittedAt time.Time
}
