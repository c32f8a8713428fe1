// SPDX-License-Identifier: Apache-2.0

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates a missing API base URL or a
	// non-positive request timeout.
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidStorageConfigs indicates an empty local cache path.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidDownloadConfigs indicates an unknown download format or
	// conflicting output options (stdout plus a target directory).
	ErrInvalidDownloadConfigs = errors.New("invalid download configuration")
)
