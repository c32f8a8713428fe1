// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default endpoints of the Coros Training Center service.
const (
	DefaultAPIBaseURL = "https://teamapi.coros.com"
	DefaultWebBaseURL = "https://t.coros.com"
)

// StructuredConfig is the top-level configuration container for corostc.
// It aggregates all sub-configurations and is populated by merging values
// from command-line flags, environment variables, an optional JSON file
// and built-in defaults, in that priority order.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// All environment variables additionally carry the global COROS_ prefix.
type StructuredConfig struct {
	// API holds endpoint addresses and HTTP behavior for the Coros API.
	API API `envPrefix:"API_"`

	// Auth holds credentials or a pre-obtained access token.
	Auth Auth `envPrefix:""`

	// Storage holds the local activity/session cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds background job settings used by the TUI browser and
	// the parallel downloader.
	Workers Workers `envPrefix:"WORKERS_"`

	// Download holds corosdown output options.
	Download Download `envPrefix:"DOWNLOAD_"`

	// Upload holds corosup options.
	Upload Upload `envPrefix:"UPLOAD_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below flags and
	// environment values. Populated via COROS_CONFIG or -config.
	JSONFilePath string `env:"CONFIG"`
}

// API holds endpoint and transport settings for the Coros API client.
type API struct {
	// BaseURL is the API origin (default https://teamapi.coros.com).
	// Env: COROS_API_URL
	BaseURL string `env:"URL"`

	// WebBaseURL is the web UI origin, used only to print activity URLs
	// a human can open (default https://t.coros.com).
	// Env: COROS_API_WEB_URL
	WebBaseURL string `env:"WEB_URL"`

	// RequestTimeout bounds each outbound request (e.g. "30s").
	// Env: COROS_API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of automatic retries for transient
	// failures (5xx, timeouts). Zero disables retries.
	// Env: COROS_API_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`
}

// Auth holds the credential material used to obtain a session.
type Auth struct {
	// Username is the Coros Training Center account name.
	// Env: COROS_USERNAME
	Username string `env:"USERNAME"`

	// Password is the account password. Only its MD5 digest ever leaves
	// the process.
	// Env: COROS_PASSWORD
	Password string `env:"PASSWORD"`

	// AccessToken is a pre-obtained session token, typically the value of
	// the browser's CPL-coros-token cookie. When set, login is skipped so
	// an existing browser session is not invalidated.
	// Env: COROS_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`
}

// Storage holds settings for the local SQLite cache.
type Storage struct {
	// DSN is the SQLite file path of the local cache
	// (default ~/.config/corostc/corostc.db).
	// Env: COROS_STORAGE_DB
	DSN string `env:"DB"`
}

// Workers holds background job settings.
type Workers struct {
	// SyncInterval is how often the TUI refreshes the local activity
	// cache from the service.
	// Env: COROS_WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`

	// DownloadConcurrency bounds parallel activity downloads in
	// corosdown.
	// Env: COROS_WORKERS_DOWNLOAD_CONCURRENCY
	DownloadConcurrency int `env:"DOWNLOAD_CONCURRENCY"`
}

// Download holds corosdown output options.
type Download struct {
	// Format is the export format name: fit, tcx, gpx, kml or csv.
	// Env: COROS_DOWNLOAD_FORMAT
	Format string `env:"FORMAT"`

	// Directory is where activity files are written (default ".").
	// Env: COROS_DOWNLOAD_DIRECTORY
	Directory string `env:"DIRECTORY"`

	// Stdout writes the single requested activity to standard output
	// instead of a file.
	Stdout bool `env:"-"`

	// Numbered names files by activity ID instead of by title.
	Numbered bool `env:"-"`
}

// Upload holds corosup options.
type Upload struct {
	// Gzip compresses FIT files before upload.
	Gzip bool `env:"-"`
}

// defaults returns the built-in configuration, merged in with the lowest
// priority.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		API: API{
			BaseURL:        DefaultAPIBaseURL,
			WebBaseURL:     DefaultWebBaseURL,
			RequestTimeout: 30 * time.Second,
			RetryCount:     2,
		},
		Storage: Storage{
			DSN: defaultCachePath(),
		},
		Workers: Workers{
			SyncInterval:        5 * time.Minute,
			DownloadConcurrency: 3,
		},
		Download: Download{
			Format:    "fit",
			Directory: ".",
		},
	}
}

func defaultCachePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "corostc.db"
	}
	return filepath.Join(dir, "corostc", "corostc.db")
}

// GetDownloadConfig loads, merges and validates configuration for the
// corosdown command. args should be os.Args[1:]. The returned string
// slice holds the positional activity IDs.
func GetDownloadConfig(args []string) (*StructuredConfig, []string, error) {
	flagCfg, rest, err := ParseDownloadFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := newConfigBuilder().
		withFlagConfig(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, cfg.validateDownload()
}

// GetUploadConfig loads, merges and validates configuration for the
// corosup command. The returned string slice holds the positional FIT
// file paths.
func GetUploadConfig(args []string) (*StructuredConfig, []string, error) {
	flagCfg, rest, err := ParseUploadFlags(args)
	if err != nil {
		return nil, nil, err
	}

	cfg, err := newConfigBuilder().
		withFlagConfig(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, nil, err
	}
	return cfg, rest, cfg.validate()
}

// GetBrowserConfig loads, merges and validates configuration for the
// corostc TUI browser.
func GetBrowserConfig(args []string) (*StructuredConfig, error) {
	flagCfg, _, err := ParseBrowserFlags(args)
	if err != nil {
		return nil, err
	}

	cfg, err := newConfigBuilder().
		withFlagConfig(flagCfg).
		withEnv().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}
	return cfg, cfg.validate()
}
