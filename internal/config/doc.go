// Package config provides configuration loading, merging, and validation
// facilities for the corostc commands.
//
// Configuration is assembled from multiple sources in the following
// priority order (earlier sources win):
//  1. Command-line flags (per-command flag sets)
//  2. Environment variables (COROS_* prefix)
//  3. JSON config file (-config / COROS_CONFIG)
//  4. Built-in defaults
//
// The main entry points are [GetDownloadConfig], [GetUploadConfig] and
// [GetBrowserConfig], one per command.
package config
