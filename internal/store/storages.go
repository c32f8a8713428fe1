// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"

	"github.com/dlenski/corostc/internal/config"
	"github.com/dlenski/corostc/internal/logger"
)

// Storages groups all local repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	// Sessions persists the current Coros login session.
	Sessions SessionRepository

	// Activities caches listing metadata fetched from the service.
	Activities ActivityRepository
}

// NewStorages initialises the local storage layer: it opens the SQLite
// cache at cfg.DSN (creating the file on first use), runs pending schema
// migrations, and wires the repositories.
func NewStorages(cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Sessions:   NewSessionRepository(db, logger),
		Activities: NewActivityRepository(db, logger),
	}, nil
}
