// Package ui implements the rentdesk terminal interface with Bubble Tea.
//
// # Overview
//
// The UI is a single Bubble Tea model that switches between views: a main
// menu, input forms for the rent/return/cancel actions, four report tables,
// and a catalog browser. Catalog data arrives through the shared state.Store
// filled by the background poller; reports and mutations call the backend
// directly through api.Backend commands.
//
// # Views
//
//   - Menu: entry point, digit shortcuts 1-8
//   - Rent/Return/Cancel: textinput forms with positive-integer validation;
//     cancellation asks for confirmation before the delete is sent
//   - Customer rentals, unreturned DVDs, most rented, staff revenue: scrollable
//     tables projected by the rental package's row helpers, exportable as CSV
//   - Catalog: films, customers, and staff tabs over the poller snapshot
//
// # Update Loop
//
// A tick message drives periodic snapshot reads from the store. Backend calls
// run as commands and come back as typed messages (actionDoneMsg,
// customerReportMsg, mostRentedMsg, staffRevenueMsg, exportDoneMsg) so the
// Update function never blocks on the network.
//
// # Theming
//
// Themes are named lipgloss palettes. "T" cycles them and persists the choice
// through the prefs package.
package ui
