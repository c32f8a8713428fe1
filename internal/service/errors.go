// SPDX-License-Identifier: Apache-2.0

package service

import "errors"

var (
	// ErrCredentialsRequired indicates Connect had neither a token nor a
	// complete username/password pair to work with.
	ErrCredentialsRequired = errors.New("username and password (or an access token) are required")

	// ErrSessionInvalid indicates the supplied or persisted access token
	// was rejected by the service.
	ErrSessionInvalid = errors.New("access token rejected by coros training center")

	// ErrNoActivities indicates the account has no activities.
	ErrNoActivities = errors.New("no activities found for user")

	// ErrListingUnstable indicates the account's activity count changed
	// while paginating, so the assembled listing may be inconsistent.
	ErrListingUnstable = errors.New("activity count changed while fetching activities")
)
