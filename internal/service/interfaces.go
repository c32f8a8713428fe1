// SPDX-License-Identifier: Apache-2.0

// Package service implements the corostc application logic on top of the
// transport adapter and the local cache: session management honouring the
// service's single-session rule, activity listing/download/upload, and
// cache synchronisation.
package service

import (
	"context"
	"io"
	"time"

	"github.com/dlenski/corostc/internal/store"
	"github.com/dlenski/corostc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// Credentials carries the material a command collected for
// authentication. AccessToken, when set, wins over username/password.
type Credentials struct {
	Username    string
	Password    string
	AccessToken string
}

// AuthService resolves an authenticated Coros session.
//
// The service enforces a single active session per account: a fresh login
// invalidates every other token, including the one a browser tab holds.
// Connect therefore prefers, in order: an explicitly supplied token (e.g.
// the browser's CPL-coros-token cookie value), the locally persisted
// session from a previous run, and only as a last resort a fresh login.
type AuthService interface {
	// Connect establishes a working session using creds and returns it.
	// Established sessions are persisted locally so subsequent runs can
	// reuse them. Returns ErrCredentialsRequired when no token is
	// available and creds lacks a username or password.
	Connect(ctx context.Context, creds Credentials) (models.Session, error)

	// Logout discards the persisted session. The service-side session is
	// left untouched (revoking it would also kick a browser using the
	// same token).
	Logout(ctx context.Context) error
}

// ActivityService provides the user-facing activity operations.
type ActivityService interface {
	// ListAll fetches every activity of the account, newest first,
	// paginating until the service-reported total is covered. Fails if
	// the total changes while paginating.
	ListAll(ctx context.Context) ([]models.Activity, error)

	// Latest returns the most recent activity. Returns ErrNoActivities
	// for an empty account.
	Latest(ctx context.Context) (models.Activity, error)

	// Download exports the activity in the given format and returns the
	// file bytes.
	Download(ctx context.Context, labelID string, fileType models.FileType) ([]byte, error)

	// ExportFilename derives a filesystem-safe filename for the activity.
	// Unless numbered is set it asks the detail endpoint for the activity
	// title and sanitizes it; the label ID is the fallback.
	ExportFilename(ctx context.Context, labelID string, fileType models.FileType, numbered bool) string

	// Upload imports a FIT file read from r. When gzipCompress is set the
	// payload is gzip-compressed in transit. The returned activity is the
	// listing entry matched by FIT session start time; found is false
	// when the upload succeeded but the new activity could not be
	// resolved.
	Upload(ctx context.Context, r io.Reader, filename string, gzipCompress bool) (act models.Activity, found bool, err error)

	// Delete removes the activity from the service and the local cache.
	Delete(ctx context.Context, labelID string) error

	// Rename changes the activity title on the service and in the local
	// cache.
	Rename(ctx context.Context, labelID, name string) error

	// WebURL returns the web UI URL of the activity, for humans.
	WebURL(labelID string, sport models.SportType) string
}

// SyncService refreshes the local activity cache from the service and
// serves reads out of it.
type SyncService interface {
	// Refresh fetches the full activity list, upserts it into the local
	// cache and prunes rows deleted server-side. Returns the number of
	// cached activities.
	Refresh(ctx context.Context) (int, error)

	// Cached lists locally cached activities matching filter, newest
	// first, without touching the network.
	Cached(ctx context.Context, filter store.ActivityFilter) ([]models.Activity, error)
}

// SyncJob is a background worker that periodically calls
// [SyncService.Refresh].
type SyncJob interface {
	// Start launches the background sync goroutine. It refreshes every
	// interval, defaulting to 5 minutes if interval is zero or negative.
	// Any previously running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()
}
