package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/flashdeck/flashdeck/internal/domain/entities"
)

var ErrArchiveDisabled = errors.New("session archive is not configured")

const maxHistory = 100

// SessionService archives finished study sessions.
type SessionService struct {
	repository SessionRepository
	logger     *zap.Logger
}

// NewSessionService creates a SessionService. A nil repository disables archiving.
func NewSessionService(repository SessionRepository, logger *zap.Logger) *SessionService {
	return &SessionService{repository: repository, logger: logger}
}

// Enabled reports whether sessions are archived.
func (s *SessionService) Enabled() bool {
	return s.repository != nil
}

// Archive stores the record. It is a no-op when archiving is disabled.
func (s *SessionService) Archive(ctx context.Context, rec *entities.SessionRecord) error {
	if !s.Enabled() {
		return nil
	}

	if err := s.repository.Save(ctx, rec); err != nil {
		return fmt.Errorf("archive session %s: %w", rec.ID, err)
	}

	s.logger.Info("session archived",
		zap.String("session_id", rec.ID.String()),
		zap.Int("fails", len(rec.Fails)),
	)
	return nil
}

// History returns up to limit of the most recent sessions.
func (s *SessionService) History(ctx context.Context, limit int) ([]*entities.SessionRecord, error) {
	if !s.Enabled() {
		return nil, ErrArchiveDisabled
	}

	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}

	return s.repository.ListRecent(ctx, limit)
}

// Get returns one archived session including its fails.
func (s *SessionService) Get(ctx context.Context, id uuid.UUID) (*entities.SessionRecord, error) {
	if !s.Enabled() {
		return nil, ErrArchiveDisabled
	}
	return s.repository.GetByID(ctx, id)
}
