package memory

import (
	"context"
	"sync"
	"time"

	"github.com/srinix/gamehub/internal/model"
	"github.com/srinix/gamehub/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// RecordPlay runs under the write lock, so concurrent increments for the
// same (user, game) key are serialized.
type Storage struct {
	mu sync.RWMutex

	users         map[model.UserID]*model.User
	usernameIndex map[string]model.UserID
	plays         map[playKey]*model.PlayRecord
	playOrder     []playKey // insertion order, for stable aggregation
	contacts      []*model.ContactMessage
}

type playKey struct {
	userID    model.UserID
	gameTitle string
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		users:         make(map[model.UserID]*model.User),
		usernameIndex: make(map[string]model.UserID),
		plays:         make(map[playKey]*model.PlayRecord),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) SaveUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.users[user.ID] = &u
	s.usernameIndex[user.Username] = user.ID
	return nil
}

func (s *Storage) GetUser(ctx context.Context, id model.UserID) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.usernameIndex[username]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	user, ok := s.users[id]
	if !ok {
		return nil, model.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *Storage) UpdateUserLastLogin(ctx context.Context, id model.UserID, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return model.ErrUserNotFound
	}
	t := at
	user.LastLogin = &t
	return nil
}

// Play ledger operations

func (s *Storage) RecordPlay(ctx context.Context, userID model.UserID, gameTitle string, duration float64, now time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := playKey{userID: userID, gameTitle: gameTitle}
	record, ok := s.plays[key]
	if !ok {
		record = &model.PlayRecord{
			UserID:    userID,
			GameTitle: gameTitle,
		}
		s.plays[key] = record
		s.playOrder = append(s.playOrder, key)
	}

	record.Plays++
	record.TotalDuration += duration
	record.LastPlayed = now
	return nil
}

func (s *Storage) GetPlaysForUser(ctx context.Context, userID model.UserID) ([]*model.PlayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := []*model.PlayRecord{}
	for _, key := range s.playOrder {
		if key.userID != userID {
			continue
		}
		r := *s.plays[key]
		records = append(records, &r)
	}
	return records, nil
}

func (s *Storage) AllPlays(ctx context.Context) ([]*model.PlayRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]*model.PlayRecord, 0, len(s.playOrder))
	for _, key := range s.playOrder {
		r := *s.plays[key]
		records = append(records, &r)
	}
	return records, nil
}

// Contact operations

func (s *Storage) SaveContactMessage(ctx context.Context, msg *model.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := *msg
	s.contacts = append(s.contacts, &m)
	return nil
}

// ContactMessages returns all stored contact messages (test helper)
func (s *Storage) ContactMessages() []*model.ContactMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*model.ContactMessage, len(s.contacts))
	copy(out, s.contacts)
	return out
}
