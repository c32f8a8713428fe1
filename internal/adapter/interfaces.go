// SPDX-License-Identifier: Apache-2.0

// Package adapter provides the transport layer for talking to the Coros
// Training Center web API.
//
// The primary abstraction is [CorosAdapter], which decouples the service
// layer from the wire protocol. The package ships an HTTP implementation
// ([NewHTTPCorosAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError, and service-level failures (envelope result codes other
// than "0000") surface as [*APIError], so that callers can use
// [errors.Is] / [errors.As] for transport-agnostic error handling.
package adapter

import (
	"context"

	"github.com/dlenski/corostc/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/coros_adapter_mock.go -package=mock

// CorosAdapter defines transport-agnostic communication with the Coros
// Training Center service. Implementations are responsible for
// serialisation, access-token header management, envelope unwrapping and
// mapping transport-level errors to the sentinel values defined in this
// package.
type CorosAdapter interface {
	// SetToken stores the access token that will be attached to all
	// subsequent authenticated requests. Call it with a browser cookie
	// value to reuse an existing session without logging in.
	SetToken(token string)

	// Token returns the access token currently held by the adapter, or an
	// empty string if none has been set yet.
	Token() string

	// Login authenticates with the service using the account name and the
	// MD5 password digest carried by req. On success the returned token is
	// stored via SetToken. Note that a successful login invalidates any
	// other session the account holds.
	Login(ctx context.Context, req models.LoginRequest) (string, error)

	// QueryActivities fetches one page of the account's activity list.
	// page is 1-based; size is the page size.
	QueryActivities(ctx context.Context, page, size int) (models.ActivityPage, error)

	// ActivityDetail fetches the detail record of a single activity. Only
	// the summary block is decoded.
	ActivityDetail(ctx context.Context, labelID string, sport models.SportType) (models.ActivityDetail, error)

	// DownloadURL asks the service to export the activity in the given
	// format and returns the URL of the produced file.
	DownloadURL(ctx context.Context, labelID string, sport models.SportType, fileType models.FileType) (string, error)

	// FetchFile downloads the raw bytes of a previously resolved export
	// URL. The URL is absolute and may point at a different host than the
	// API origin.
	FetchFile(ctx context.Context, fileURL string) ([]byte, error)

	// UploadFIT imports a FIT activity file. payload holds the file bytes
	// (possibly gzip-compressed, in which case filename must carry a .gz
	// suffix). The service does not reveal the new activity's ID.
	UploadFIT(ctx context.Context, filename string, payload []byte) error

	// DeleteActivity removes the activity identified by labelID.
	DeleteActivity(ctx context.Context, labelID string) error

	// UpdateActivity patches activity attributes (currently the title).
	UpdateActivity(ctx context.Context, upd models.ActivityUpdate) error
}
