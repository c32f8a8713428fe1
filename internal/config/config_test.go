// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDownloadConfig_Defaults(t *testing.T) {
	cfg, rest, err := GetDownloadConfig(nil)
	require.NoError(t, err)
	require.Empty(t, rest)

	assert.Equal(t, DefaultAPIBaseURL, cfg.API.BaseURL)
	assert.Equal(t, DefaultWebBaseURL, cfg.API.WebBaseURL)
	assert.Equal(t, 30*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "fit", cfg.Download.Format)
	assert.Equal(t, ".", cfg.Download.Directory)
	assert.Equal(t, 3, cfg.Workers.DownloadConcurrency)
	assert.NotEmpty(t, cfg.Storage.DSN)
}

func TestGetDownloadConfig_FlagsAndPositionals(t *testing.T) {
	cfg, rest, err := GetDownloadConfig([]string{
		"-t", "TCX",
		"-N",
		"-d", "/tmp/exports",
		"-T", "cookie-token",
		"4500000000000001", "4500000000000002",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"4500000000000001", "4500000000000002"}, rest)
	assert.Equal(t, "tcx", cfg.Download.Format, "format names are case-insensitive")
	assert.True(t, cfg.Download.Numbered)
	assert.Equal(t, "/tmp/exports", cfg.Download.Directory)
	assert.Equal(t, "cookie-token", cfg.Auth.AccessToken)
}

func TestGetDownloadConfig_UnknownFormat(t *testing.T) {
	_, _, err := GetDownloadConfig([]string{"-t", "xlsx"})
	assert.ErrorIs(t, err, ErrInvalidDownloadConfigs)
}

func TestGetDownloadConfig_StdoutDirectoryConflict(t *testing.T) {
	_, _, err := GetDownloadConfig([]string{"-c", "-d", "/tmp/exports", "4500000000000001"})
	assert.ErrorIs(t, err, ErrInvalidDownloadConfigs)
}

func TestGetDownloadConfig_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("COROS_API_URL", "https://api.example.com")
	t.Setenv("COROS_USERNAME", "user@example.com")
	t.Setenv("COROS_DOWNLOAD_FORMAT", "gpx")

	cfg, _, err := GetDownloadConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.API.BaseURL)
	assert.Equal(t, "user@example.com", cfg.Auth.Username)
	assert.Equal(t, "gpx", cfg.Download.Format)
}

func TestGetDownloadConfig_FlagsBeatEnv(t *testing.T) {
	t.Setenv("COROS_API_URL", "https://env.example.com")

	cfg, _, err := GetDownloadConfig([]string{"-api-url", "https://flag.example.com"})
	require.NoError(t, err)

	assert.Equal(t, "https://flag.example.com", cfg.API.BaseURL)
}

func TestGetUploadConfig_GzipFlag(t *testing.T) {
	cfg, rest, err := GetUploadConfig([]string{"-z", "ride.fit"})
	require.NoError(t, err)

	assert.True(t, cfg.Upload.Gzip)
	assert.Equal(t, []string{"ride.fit"}, rest)
}

func TestGetBrowserConfig_SyncInterval(t *testing.T) {
	cfg, err := GetBrowserConfig([]string{"-sync-interval", "90s"})
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.Workers.SyncInterval)
}

func TestJSONConfig_MergedBelowEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corostc.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"api": {"base_url": "https://json.example.com", "request_timeout": "45s"},
		"auth": {"username": "json-user"},
		"workers": {"sync_interval": "2m", "download_concurrency": 7}
	}`), 0o600))

	t.Setenv("COROS_USERNAME", "env-user")

	cfg, _, err := GetDownloadConfig([]string{"-config", path})
	require.NoError(t, err)

	// Env wins over the file, the file wins over built-in defaults.
	assert.Equal(t, "env-user", cfg.Auth.Username)
	assert.Equal(t, "https://json.example.com", cfg.API.BaseURL)
	assert.Equal(t, 45*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 7, cfg.Workers.DownloadConcurrency)
}

func TestParseJSON_BadFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	_, err = parseJSON(path)
	assert.Error(t, err)
}

func TestDurationUnmarshal(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"not a duration"`)))
}

func TestValidate(t *testing.T) {
	cfg := defaults()
	require.NoError(t, cfg.validate())

	broken := defaults()
	broken.API.BaseURL = ""
	assert.ErrorIs(t, broken.validate(), ErrInvalidAPIConfigs)

	broken = defaults()
	broken.Storage.DSN = ""
	assert.ErrorIs(t, broken.validate(), ErrInvalidStorageConfigs)
}

func TestValidateDownload_ClampsConcurrency(t *testing.T) {
	cfg := defaults()
	cfg.Workers.DownloadConcurrency = -2
	require.NoError(t, cfg.validateDownload())
	assert.Equal(t, 1, cfg.Workers.DownloadConcurrency)
}
