package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/srinix/gamehub/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestSaveAndGetUser() {
	user := &model.User{
		ID:           "user-1",
		Username:     "alice",
		PasswordHash: "hash123",
		CreatedAt:    time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveUser(s.ctx, user)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Equal(user.ID, retrieved.ID)
	s.Equal(user.Username, retrieved.Username)
	s.Equal(user.PasswordHash, retrieved.PasswordHash)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	user := &model.User{ID: "user-1", Username: "alice"}
	_ = s.storage.SaveUser(s.ctx, user)

	retrieved, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.UserID("user-1"), retrieved.ID)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestUpdateUserLastLogin() {
	user := &model.User{ID: "user-1", Username: "alice"}
	_ = s.storage.SaveUser(s.ctx, user)

	at := time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)
	err := s.storage.UpdateUserLastLogin(s.ctx, "user-1", at)
	s.Require().NoError(err)

	retrieved, _ := s.storage.GetUser(s.ctx, "user-1")
	s.Require().NotNil(retrieved.LastLogin)
	s.True(at.Equal(*retrieved.LastLogin))
}

// Play record tests

func (s *StorageSuite) TestRecordPlayCreatesRecord() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	err := s.storage.RecordPlay(s.ctx, "user-1", "snake", 30, now)
	s.Require().NoError(err)

	plays, err := s.storage.GetPlaysForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Require().Len(plays, 1)
	s.Equal(model.UserID("user-1"), plays[0].UserID)
	s.Equal("snake", plays[0].GameTitle)
	s.Equal(int64(1), plays[0].Plays)
	s.Equal(30.0, plays[0].TotalDuration)
	s.True(now.Equal(plays[0].LastPlayed))
}

func (s *StorageSuite) TestRecordPlayIncrementsExisting() {
	t1 := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	_ = s.storage.RecordPlay(s.ctx, "user-1", "snake", 30, t1)
	_ = s.storage.RecordPlay(s.ctx, "user-1", "snake", 45.5, t2)

	plays, _ := s.storage.GetPlaysForUser(s.ctx, "user-1")
	s.Require().Len(plays, 1)
	s.Equal(int64(2), plays[0].Plays)
	s.Equal(75.5, plays[0].TotalDuration)
	s.True(t2.Equal(plays[0].LastPlayed))
}

func (s *StorageSuite) TestRecordPlayTitleWithColon() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	_ = s.storage.RecordPlay(s.ctx, "user-1", "snake: redux", 30, now)

	plays, _ := s.storage.GetPlaysForUser(s.ctx, "user-1")
	s.Require().Len(plays, 1)
	s.Equal("snake: redux", plays[0].GameTitle)
	s.Equal(model.UserID("user-1"), plays[0].UserID)
}

func (s *StorageSuite) TestGetPlaysForUserScopedToUser() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.RecordPlay(s.ctx, "user-1", "snake", 30, now)
	_ = s.storage.RecordPlay(s.ctx, "user-2", "snake", 60, now)

	plays, _ := s.storage.GetPlaysForUser(s.ctx, "user-1")
	s.Require().Len(plays, 1)
	s.Equal(30.0, plays[0].TotalDuration)
}

func (s *StorageSuite) TestGetPlaysForUserEmpty() {
	plays, err := s.storage.GetPlaysForUser(s.ctx, "user-1")
	s.Require().NoError(err)
	s.Empty(plays)
}

func (s *StorageSuite) TestAllPlaysReturnsEveryRecord() {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.RecordPlay(s.ctx, "user-1", "snake", 30, now)
	_ = s.storage.RecordPlay(s.ctx, "user-2", "tetra", 60, now)
	_ = s.storage.RecordPlay(s.ctx, "user-1", "snake", 15, now)

	plays, err := s.storage.AllPlays(s.ctx)
	s.Require().NoError(err)
	s.Len(plays, 2)
}

// Contact message tests

func (s *StorageSuite) TestSaveContactMessage() {
	msg := &model.ContactMessage{
		ID:          "msg-1",
		Name:        "Alice",
		Email:       "alice@example.com",
		Subject:     "Hello",
		Message:     "Nice games",
		SubmittedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}

	err := s.storage.SaveContactMessage(s.ctx, msg)
	s.Require().NoError(err)
}
