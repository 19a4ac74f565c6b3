package model

import "time"

// PlayRecord holds aggregate play statistics for one (user, game) pair.
// Plays and TotalDuration only ever increase; LastPlayed is set to the
// current time on every increment.
type PlayRecord struct {
	UserID        UserID
	GameTitle     string
	Plays         int64
	TotalDuration float64 // accumulated seconds
	LastPlayed    time.Time
}
