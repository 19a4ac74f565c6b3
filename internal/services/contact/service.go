package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/srinix/gamehub/internal/dependencies/clock"
	"github.com/srinix/gamehub/internal/model"
	"github.com/srinix/gamehub/internal/storage"
)

// Service stores messages submitted through the contact form
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	logger  *slog.Logger
}

// New creates a new contact Service
func New(storage storage.Storage, clock clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		logger:  logger,
	}
}

// Submit validates and persists a contact message. Name is optional and
// defaults to "Anonymous"; email, subject, and message are required.
func (s *Service) Submit(ctx context.Context, name, email, subject, message string) (*model.ContactMessage, error) {
	if email == "" || subject == "" || message == "" {
		return nil, model.ErrMissingContactFields
	}

	if name == "" {
		name = "Anonymous"
	}

	msg := &model.ContactMessage{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Subject:     subject,
		Message:     message,
		SubmittedAt: s.clock.Now(),
	}

	if err := s.storage.SaveContactMessage(ctx, msg); err != nil {
		return nil, fmt.Errorf("save contact message: %w", err)
	}

	s.logger.Info("contact message received", slog.String("subject", subject))
	return msg, nil
}
