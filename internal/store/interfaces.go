// SPDX-License-Identifier: Apache-2.0

// Package store implements the local SQLite cache used by the corostc
// commands: the persisted login session (so repeated invocations reuse
// one Coros session instead of invalidating the browser's) and a cache of
// activity metadata for offline browsing.
package store

import (
	"context"
	"time"

	"github.com/dlenski/corostc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/repositories_mock.go -package=mock

// SessionRepository persists the single local Coros session.
type SessionRepository interface {
	// Save stores session, replacing any previously persisted one.
	Save(ctx context.Context, session models.Session) error

	// Get returns the persisted session. Returns ErrSessionNotFound when
	// no session has been saved yet.
	Get(ctx context.Context) (models.Session, error)

	// Delete removes the persisted session. Deleting a non-existent
	// session is not an error.
	Delete(ctx context.Context) error
}

// ActivityFilter narrows ListActivities results. Zero-valued fields are
// ignored.
type ActivityFilter struct {
	// SportType keeps only activities of the given sport when non-nil.
	SportType *models.SportType

	// Since keeps only activities starting at or after the given time.
	Since time.Time

	// NameContains keeps only activities whose title contains the given
	// substring (case-insensitive).
	NameContains string

	// Limit caps the number of returned rows when positive.
	Limit int
}

// ActivityRepository caches activity metadata fetched from the service.
type ActivityRepository interface {
	// Upsert inserts or replaces the given activities.
	Upsert(ctx context.Context, activities ...models.Activity) error

	// List returns cached activities matching filter, newest first.
	List(ctx context.Context, filter ActivityFilter) ([]models.Activity, error)

	// Get returns a single cached activity by its label ID. Returns
	// ErrActivityNotFound when the ID is not cached.
	Get(ctx context.Context, labelID string) (models.Activity, error)

	// Delete removes cached rows by label ID.
	Delete(ctx context.Context, labelIDs ...string) error

	// PruneExcept removes every cached activity whose label ID is not in
	// keep. Used after a full refresh to drop activities deleted
	// server-side.
	PruneExcept(ctx context.Context, keep []string) error
}
