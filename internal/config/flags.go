// SPDX-License-Identifier: Apache-2.0

package config

import (
	"flag"
	"strings"
	"time"
)

// registerCommonFlags defines the flags every corostc command accepts:
// credentials, session token, endpoint overrides, cache path and the JSON
// config file. Both a short and a long spelling are registered where the
// original tools had them (-T/--accesstoken, -u/--username, -p/--password).
func registerCommonFlags(fs *flag.FlagSet, cfg *StructuredConfig) {
	fs.StringVar(&cfg.Auth.Username, "u", "", "Coros Training Center username")
	fs.StringVar(&cfg.Auth.Username, "username", "", "Coros Training Center username (alias)")
	fs.StringVar(&cfg.Auth.Password, "p", "", "Coros Training Center password")
	fs.StringVar(&cfg.Auth.Password, "password", "", "Coros Training Center password (alias)")
	fs.StringVar(&cfg.Auth.AccessToken, "T", "", "Access token or CPL-coros-token cookie value")
	fs.StringVar(&cfg.Auth.AccessToken, "accesstoken", "", "Access token or CPL-coros-token cookie value (alias)")
	fs.StringVar(&cfg.API.BaseURL, "api-url", "", "Coros API base URL")
	fs.StringVar(&cfg.Storage.DSN, "db", "", "Local cache database path")
	fs.DurationVar(&cfg.API.RequestTimeout, "request-timeout", 0, "Request timeout (e.g. 30s, 1m)")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path")
}

// ParseDownloadFlags parses corosdown's command line. The returned slice
// holds the positional activity IDs.
//
// Flags (besides the common set):
//
//	-t/--type format in which to download activities (fit, tcx, gpx, kml, csv)
//	-N/--number label activity files by ID rather than by their titles
//	-c/--stdout write the single activity to standard output
//	-d/--directory directory in which to store activity files
func ParseDownloadFlags(args []string) (*StructuredConfig, []string, error) {
	cfg := &StructuredConfig{}
	fs := flag.NewFlagSet("corosdown", flag.ContinueOnError)
	registerCommonFlags(fs, cfg)

	var format string
	fs.StringVar(&format, "t", "", "Download format: "+strings.Join(FileTypeFlagNames, ", "))
	fs.StringVar(&format, "type", "", "Download format (alias)")
	fs.BoolVar(&cfg.Download.Numbered, "N", false, "Label activity files by ID, not by title")
	fs.BoolVar(&cfg.Download.Numbered, "number", false, "Label activity files by ID, not by title (alias)")
	fs.BoolVar(&cfg.Download.Stdout, "c", false, "Write activity to standard output")
	fs.BoolVar(&cfg.Download.Stdout, "stdout", false, "Write activity to standard output (alias)")
	fs.StringVar(&cfg.Download.Directory, "d", "", "Directory in which to store activity files")
	fs.StringVar(&cfg.Download.Directory, "directory", "", "Directory in which to store activity files (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	cfg.Download.Format = strings.ToLower(format)

	return cfg, fs.Args(), nil
}

// ParseUploadFlags parses corosup's command line. The returned slice
// holds the positional FIT file paths.
//
// Flags (besides the common set):
//
//	-z/--gzip compress FIT files before uploading
func ParseUploadFlags(args []string) (*StructuredConfig, []string, error) {
	cfg := &StructuredConfig{}
	fs := flag.NewFlagSet("corosup", flag.ContinueOnError)
	registerCommonFlags(fs, cfg)

	fs.BoolVar(&cfg.Upload.Gzip, "z", false, "Gzip-compress FIT files before uploading")
	fs.BoolVar(&cfg.Upload.Gzip, "gzip", false, "Gzip-compress FIT files before uploading (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return cfg, fs.Args(), nil
}

// ParseBrowserFlags parses the corostc TUI browser's command line.
func ParseBrowserFlags(args []string) (*StructuredConfig, []string, error) {
	cfg := &StructuredConfig{}
	fs := flag.NewFlagSet("corostc", flag.ContinueOnError)
	registerCommonFlags(fs, cfg)

	var syncInterval time.Duration
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Activity cache refresh interval (e.g. 5m)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	cfg.Workers.SyncInterval = syncInterval

	return cfg, fs.Args(), nil
}

// FileTypeFlagNames lists the accepted -t values, kept here so flag help
// text does not depend on the models package.
var FileTypeFlagNames = []string{"fit", "tcx", "gpx", "kml", "csv"}
