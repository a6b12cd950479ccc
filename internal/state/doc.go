// Package state provides thread-safe state management for the rentdesk
// application.
//
// # Overview
//
// This package implements a simple but thread-safe store for sharing backend
// catalog data between the background poller and the UI. It acts as the
// coordination point where polling updates meet UI rendering.
//
// # Core Types
//
// Store:
//   - Thread-safe container for the latest backend collections
//   - Uses sync.RWMutex for concurrent access
//   - Single writer (poller), multiple readers (UI refresh loop)
//
// Snapshot:
//   - Immutable view of state at a point in time
//   - Contains customers, titles, staff, unreturned rentals, timestamps,
//     and error info
//   - Returned by value with defensive copies
//
// # Update Semantics
//
// The Update method has special error handling behavior:
//
//	// Success case: Replace entire snapshot
//	store.Update(&data, nil)
//	→ snapshot.Data = data
//	→ snapshot.LastError = nil
//	→ snapshot.ConsecutiveFailures = 0
//
//	// Error case: Keep old data, record error
//	store.Update(nil, err)
//	→ snapshot.Data = <unchanged>
//	→ snapshot.LastError = err
//	→ snapshot.ConsecutiveFailures++
//
// This ensures the UI always has the most recent successful data to display,
// while also being informed of polling failures. Once two consecutive polls
// have failed, IsOffline reports true and the UI shows an offline banner.
//
// # Defensive Copying
//
// Both Update and Snapshot clone the collection slices so the poller and
// the UI never share backing arrays. The cost of copying is minimal for
// catalog-sized data and much simpler than alternative coordination
// strategies.
package state
