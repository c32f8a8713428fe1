// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"errors"
	"fmt"
)

// Sentinel errors mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a service-level failure: the HTTP exchange succeeded but
// the response envelope carried a result code other than "0000".
type APIError struct {
	// Code is the Coros result code (e.g. "1001").
	Code string
	// Message is the service's human-readable explanation.
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s (result code %q)", e.Message, e.Code)
}
