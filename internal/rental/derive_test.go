package rental

import (
	"testing"
	"time"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed := ParseTime(value)
	if parsed.IsZero() {
		t.Fatalf("ParseTime(%q) returned zero time", value)
	}
	return parsed
}

func TestParseTimeLayouts(t *testing.T) {
	cases := []string{
		"2025-11-28T15:45:03.641Z",
		"2025-11-28T15:45:03Z",
		"2025-11-28 15:45:03",
		"2025-11-28",
	}
	for _, value := range cases {
		got := ParseTime(value)
		if got.IsZero() {
			t.Fatalf("ParseTime(%q) returned zero time", value)
		}
		if got.Year() != 2025 || got.Month() != time.November || got.Day() != 28 {
			t.Fatalf("ParseTime(%q) = %v, want 2025-11-28", value, got)
		}
	}

	if !ParseTime("").IsZero() {
		t.Fatalf("ParseTime of empty string should be zero")
	}
	if !ParseTime("not a date").IsZero() {
		t.Fatalf("ParseTime of garbage should be zero")
	}
}

func TestExpectedReturn(t *testing.T) {
	rented := mustTime(t, "2025-01-10T00:00:00Z")

	got := ExpectedReturn(rented, 3)
	want := mustTime(t, "2025-01-13T00:00:00Z")
	if !got.Equal(want) {
		t.Fatalf("ExpectedReturn = %v, want %v", got, want)
	}

	if !ExpectedReturn(time.Time{}, 3).IsZero() {
		t.Fatalf("ExpectedReturn with zero rental date should be zero")
	}

	// Invalid durations fall back to the 3-day default.
	if got := ExpectedReturn(rented, 0); !got.Equal(want) {
		t.Fatalf("ExpectedReturn with duration 0 = %v, want %v", got, want)
	}
}

func TestDaysLate(t *testing.T) {
	now := mustTime(t, "2025-06-20T12:00:00Z")
	expected := mustTime(t, "2025-06-15T12:00:00Z")

	if got := DaysLate(expected, time.Time{}, now); got != 5 {
		t.Fatalf("DaysLate = %d, want 5", got)
	}

	// A returned rental is never late, regardless of dates.
	returned := mustTime(t, "2025-06-30T00:00:00Z")
	if got := DaysLate(expected, returned, now); got != 0 {
		t.Fatalf("DaysLate with return date = %d, want 0", got)
	}

	// No expected date means no lateness.
	if got := DaysLate(time.Time{}, time.Time{}, now); got != 0 {
		t.Fatalf("DaysLate without expected date = %d, want 0", got)
	}

	// Exactly at the deadline.
	if got := DaysLate(now, time.Time{}, now); got != 0 {
		t.Fatalf("DaysLate at deadline = %d, want 0", got)
	}

	// Not yet due; floored at zero.
	future := mustTime(t, "2025-06-25T00:00:00Z")
	if got := DaysLate(future, time.Time{}, now); got != 0 {
		t.Fatalf("DaysLate before deadline = %d, want 0", got)
	}
}

func TestDaysSinceRental(t *testing.T) {
	now := mustTime(t, "2025-06-20T08:00:00Z")

	if got := DaysSinceRental(mustTime(t, "2025-06-13T20:00:00Z"), now); got != 7 {
		t.Fatalf("DaysSinceRental = %d, want 7", got)
	}
	if got := DaysSinceRental(time.Time{}, now); got != 0 {
		t.Fatalf("DaysSinceRental with zero rental date = %d, want 0", got)
	}
	if got := DaysSinceRental(mustTime(t, "2025-07-01T00:00:00Z"), now); got != 0 {
		t.Fatalf("DaysSinceRental with future rental date = %d, want 0", got)
	}
}

func TestDeriveStatus(t *testing.T) {
	returned := mustTime(t, "2025-06-01T00:00:00Z")

	if got := DeriveStatus("active", returned); got != StatusReturned {
		t.Fatalf("DeriveStatus with return date = %q, want returned", got)
	}
	if got := DeriveStatus("", time.Time{}); got != StatusActive {
		t.Fatalf("DeriveStatus default = %q, want active", got)
	}
	if got := DeriveStatus("canceled", time.Time{}); got != StatusCanceled {
		t.Fatalf("DeriveStatus = %q, want canceled", got)
	}
	// Unknown upstream statuses pass through verbatim.
	if got := DeriveStatus("En tiempo", time.Time{}); got != Status("En tiempo") {
		t.Fatalf("DeriveStatus = %q, want verbatim upstream value", got)
	}
}
