package storage

import (
	"context"
	"time"

	"github.com/srinix/gamehub/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// User operations
	SaveUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id model.UserID) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	UpdateUserLastLogin(ctx context.Context, id model.UserID, at time.Time) error

	// Play ledger operations.
	//
	// RecordPlay must be a single atomic find-or-create-and-increment:
	// if no record exists for (userID, gameTitle) it is created with
	// plays=1 and total_duration=duration, otherwise plays is
	// incremented and duration accumulated. Concurrent calls for the
	// same key must never lose an increment.
	RecordPlay(ctx context.Context, userID model.UserID, gameTitle string, duration float64, now time.Time) error
	GetPlaysForUser(ctx context.Context, userID model.UserID) ([]*model.PlayRecord, error)
	AllPlays(ctx context.Context) ([]*model.PlayRecord, error)

	// Contact operations
	SaveContactMessage(ctx context.Context, msg *model.ContactMessage) error
}
