// Package config loads rentdesk settings from a TOML file.
//
// # Location
//
// The default config path is ~/.config/rentdesk/config.toml, overridable
// with the -config flag. A missing file is not an error; every setting has
// a sensible default for a local development backend.
//
// # Settings
//
//	api_url         = "http://127.0.0.1:3000"  # rental backend base URL
//	timeout_seconds = 10                       # applied uniformly to all calls
//	poll_seconds    = 30                       # catalog refresh cadence
//	report_limit    = 10                       # rows requested for rankings
//
// # Behavior
//
//   - "~" expands to the user's home directory
//   - string values are trimmed; empty strings keep their defaults
//   - zero or negative numbers keep their defaults
//   - unparseable TOML fails Load with a wrapped error
package config
