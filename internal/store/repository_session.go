// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dlenski/corostc/internal/logger"
	"github.com/dlenski/corostc/models"
)

type sessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite-backed [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *sessionRepository) Save(ctx context.Context, session models.Session) error {
	_, err := s.DB.ExecContext(ctx, saveSession,
		session.Account,
		session.AccessToken,
		session.ObtainedAt,
	)
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Save").
			Str("account", session.Account).
			Msg("failed to persist session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

func (s *sessionRepository) Get(ctx context.Context) (models.Session, error) {
	var session models.Session
	row := s.DB.QueryRowContext(ctx, getSession)

	err := row.Scan(&session.Account, &session.AccessToken, &session.ObtainedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Get").
			Msg("failed to scan session row")
		return models.Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	return session, nil
}

func (s *sessionRepository) Delete(ctx context.Context) error {
	if _, err := s.DB.ExecContext(ctx, deleteSession); err != nil {
		s.logger.Err(err).
			Str("func", "sessionRepository.Delete").
			Msg("failed to delete session")
		return fmt.Errorf("failed to delete session: %w", err)
	}

	return nil
}
