package rental

import (
	"strings"
	"time"
)

// Timestamp layouts the backend has been observed to emit, tried in order.
// The bare-date layout covers report rows that strip the time component.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTime parses a backend timestamp leniently, normalizing to UTC.
// An empty or unparseable value yields the zero time.
func ParseTime(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// ExpectedReturn derives the expected return date as the rental date plus the
// allowed duration in whole days. A zero rental date yields a zero result.
func ExpectedReturn(rentalDate time.Time, durationDays int) time.Time {
	if rentalDate.IsZero() {
		return time.Time{}
	}
	if durationDays < 1 {
		durationDays = defaultRentalDuration
	}
	return rentalDate.AddDate(0, 0, durationDays)
}

// DaysLate returns how many whole days a still-outstanding rental is past its
// expected return date. Returned rentals and rentals without an expected
// return date are never late.
//
// The day count is the calendar-day difference in UTC between now and the
// expected date, floored at zero. The backend computes lateness with local
// wall-clock subtraction on sometimes timezone-stripped strings; the UTC
// calendar difference is deterministic and matches it on every observed case.
func DaysLate(expectedReturn, returnDate, now time.Time) int {
	if !returnDate.IsZero() || expectedReturn.IsZero() {
		return 0
	}
	days := calendarDaysBetween(expectedReturn, now)
	if days < 0 {
		return 0
	}
	return days
}

// DaysSinceRental returns the whole days elapsed since the rental date,
// floored at zero. A zero rental date yields zero.
func DaysSinceRental(rentalDate, now time.Time) int {
	if rentalDate.IsZero() {
		return 0
	}
	days := calendarDaysBetween(rentalDate, now)
	if days < 0 {
		return 0
	}
	return days
}

// DeriveStatus resolves a rental's display status. A present return date
// always means returned, regardless of what the backend reported; otherwise
// the upstream status is preserved verbatim, defaulting to active when the
// backend sent none.
func DeriveStatus(upstream string, returnDate time.Time) Status {
	if !returnDate.IsZero() {
		return StatusReturned
	}
	upstream = strings.TrimSpace(upstream)
	if upstream == "" {
		return StatusActive
	}
	return Status(upstream)
}

// calendarDaysBetween counts calendar-day boundaries in UTC from a to b.
func calendarDaysBetween(a, b time.Time) int {
	a, b = a.UTC(), b.UTC()
	ad := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bd := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(bd.Sub(ad) / (24 * time.Hour))
}
