// Package rental turns heterogeneous DVD rental API payloads into canonical
// domain records and derives the fields the backend sometimes omits.
//
// # Overview
//
// The rental backend has shipped several response shapes over time: related
// entities appear either nested (customer/film/staff objects) or flat
// (customer_id, customer_name, title, staff_name next to the rental's own
// fields); identifiers use either a domain key (customer_id) or a generic id;
// Postgres numerics and counts arrive as strings. This package absorbs all of
// that so the UI only ever sees fully-populated records.
//
// # Normalization rules
//
// Every logical attribute has an ordered list of candidate field paths, tried
// in priority order; the first present and well-typed value wins, otherwise
// the documented default applies:
//
//   - identifier: domain key, then generic "id"; neither leaves ID zero,
//     which callers must treat as invalid for mutations
//   - names: first_name/last_name, then a combined name split on the first
//     whitespace run
//   - rental rate: 0 when absent or invalid
//   - rental duration: 3 days when absent or invalid
//   - amount: estimated_amount, then total_amount, then the title's rate,
//     then 0
//
// Nothing here ever returns an error for data-quality reasons. Malformed
// fields degrade to defaults; malformed elements inside a batch are skipped
// with a log line and shorten the result instead of failing it.
//
// # Relation variants
//
// A rental's related customer, title, and staff records are explicit
// variants (RefFull, RefStub, RefUnset) rather than sometimes-nil pointers:
// a nested object produces a full record, flat scalar fields produce a stub,
// and an absent relation stays unset so rendering code can fall back to an
// "ID: <n>" label.
//
// # Derivation
//
// The derivation engine fills gaps the backend leaves:
//
//   - ExpectedReturn: rental date plus the allowed duration in days
//   - DaysLate / DaysSinceRental: calendar-day differences in UTC, floored
//     at zero, with lateness always zero for returned rentals
//   - DeriveStatus: returned iff a return date is present, overriding the
//     reported status; other statuses are preserved verbatim
//
// All derivation functions take the current time as an explicit parameter so
// results are deterministic and testable.
//
// # Row projections
//
// RentalRows, RankingRows, and EarningsRows project records and report rows
// into pre-formatted string rows for the table views, including the currency
// and day-count formatting the screens expect.
package rental
