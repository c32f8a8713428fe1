// SPDX-License-Identifier: Apache-2.0

package store

import "errors"

var (
	// ErrSessionNotFound indicates no Coros session has been persisted
	// locally yet.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrActivityNotFound indicates the requested label ID is not in the
	// local cache.
	ErrActivityNotFound = errors.New("activity not found in local cache")
)
