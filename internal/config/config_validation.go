// SPDX-License-Identifier: Apache-2.0

package config

// validate checks the invariants every command relies on: a usable API
// endpoint, a request timeout and a cache path.
func (cfg *StructuredConfig) validate() error {
	if cfg.API.BaseURL == "" || cfg.API.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

// validateDownload additionally checks corosdown's output options.
func (cfg *StructuredConfig) validateDownload() error {
	if err := cfg.validate(); err != nil {
		return err
	}

	valid := false
	for _, name := range FileTypeFlagNames {
		if cfg.Download.Format == name {
			valid = true
			break
		}
	}
	if !valid {
		return ErrInvalidDownloadConfigs
	}

	if cfg.Download.Stdout && cfg.Download.Directory != "." && cfg.Download.Directory != "" {
		return ErrInvalidDownloadConfigs
	}

	if cfg.Workers.DownloadConcurrency < 1 {
		cfg.Workers.DownloadConcurrency = 1
	}

	return nil
}
