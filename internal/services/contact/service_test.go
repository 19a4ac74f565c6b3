package contact

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/srinix/gamehub/internal/dependencies/mocks"
	"github.com/srinix/gamehub/internal/model"
	"github.com/srinix/gamehub/internal/storage/memory"
	"github.com/srinix/gamehub/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	clock   *mocks.MockClock
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.service = New(s.storage, s.clock, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ServiceSuite) TestSubmitSucceeds() {
	msg, err := s.service.Submit(s.ctx, "Alice", "alice@example.com", "Hello", "Nice games")
	s.Require().NoError(err)

	s.NotEmpty(msg.ID)
	s.Equal("Alice", msg.Name)
	s.Equal("alice@example.com", msg.Email)
	s.Equal(s.clock.Now(), msg.SubmittedAt)
}

func (s *ServiceSuite) TestSubmitPersistsMessage() {
	_, _ = s.service.Submit(s.ctx, "Alice", "alice@example.com", "Hello", "Nice games")

	msgs := s.storage.ContactMessages()
	s.Require().Len(msgs, 1)
	s.Equal("Hello", msgs[0].Subject)
}

func (s *ServiceSuite) TestSubmitDefaultsAnonymousName() {
	msg, err := s.service.Submit(s.ctx, "", "alice@example.com", "Hello", "Nice games")
	s.Require().NoError(err)
	s.Equal("Anonymous", msg.Name)
}

func (s *ServiceSuite) TestSubmitRequiresEmailSubjectMessage() {
	_, err := s.service.Submit(s.ctx, "Alice", "", "Hello", "Nice games")
	s.ErrorIs(err, model.ErrMissingContactFields)

	_, err = s.service.Submit(s.ctx, "Alice", "alice@example.com", "", "Nice games")
	s.ErrorIs(err, model.ErrMissingContactFields)

	_, err = s.service.Submit(s.ctx, "Alice", "alice@example.com", "Hello", "")
	s.ErrorIs(err, model.ErrMissingContactFields)

	s.Empty(s.storage.ContactMessages())
}
