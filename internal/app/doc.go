// Package app provides the orchestration layer for the rentdesk application.
//
// # Overview
//
// This package wires together configuration, polling, state management, and
// the UI to create the complete rentdesk TUI experience. It serves as the
// composition root where all dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load rentdesk configuration from ~/.config/rentdesk/config.toml
//  2. Load user preferences (theme) from ~/.config/rentdesk/prefs.toml
//  3. Initialize the HTTP client for the rental backend API
//  4. Create a shared state.Store for UI and poller coordination
//  5. Launch the background poller goroutine for continuous catalog updates
//  6. Start the TUI and block until the user exits or the context cancels
//
// # Polling Behavior
//
// The poller runs continuously in the background at a configurable interval
// (default: 30 seconds). On each tick it fetches customers, films, staff, and
// the unreturned-rentals report, then updates the shared state.Store
// atomically. Errors are logged and recorded in the store, and the poller
// backs off exponentially (capped at five minutes) until the backend
// responds again.
//
// The UI reads snapshots from the store at its own refresh rate. This
// separation keeps the UI responsive even during slow API calls.
//
// # Error Handling
//
// The app package distinguishes between fatal and recoverable errors:
//
// Fatal errors (returned from Run):
//   - Configuration file present but invalid
//
// Recoverable errors (logged, polling continues):
//   - Periodic catalog fetch failures
//   - Network timeouts during polling
//
// Unlike the configuration file, preferences never fail startup; a missing
// or corrupt prefs file just falls back to defaults.
package app
