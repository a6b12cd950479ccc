package rental

import (
	"strings"
	"testing"
	"time"
)

func TestRentalRows(t *testing.T) {
	now := mustTime(t, "2025-06-20T00:00:00Z")
	rentals := []Rental{
		{
			ID:             1,
			RentalDate:     mustTime(t, "2025-06-10T00:00:00Z"),
			ExpectedReturn: mustTime(t, "2025-06-13T00:00:00Z"),
			Amount:         4.5,
			Status:         StatusActive,
			Title:          TitleRef{Kind: RefStub, Title: Title{Title: "Matrix"}},
			Employee:       EmployeeRef{Kind: RefStub, Employee: Employee{ID: 2}},
		},
		{
			ID:         2,
			RentalDate: mustTime(t, "2025-06-01T00:00:00Z"),
			ReturnDate: mustTime(t, "2025-06-03T00:00:00Z"),
			Amount:     2,
			Status:     StatusReturned,
			TitleID:    9,
		},
	}

	rows := RentalRows(rentals, now)
	if len(rows) != 2 {
		t.Fatalf("rows len = %d, want 2", len(rows))
	}

	active := rows[0]
	if active[0] != "1" || active[1] != "Matrix" || active[2] != "ID: 2" {
		t.Fatalf("row = %#v, want id, title, staff label", active)
	}
	if active[5] != "Pending" {
		t.Fatalf("return cell = %q, want Pending", active[5])
	}
	if active[6] != "$4.50" {
		t.Fatalf("amount cell = %q, want $4.50", active[6])
	}
	if active[7] != "Active" {
		t.Fatalf("status cell = %q, want Active", active[7])
	}
	if active[8] != "7 days" {
		t.Fatalf("late cell = %q, want 7 days", active[8])
	}

	done := rows[1]
	if done[1] != "ID: 9" {
		t.Fatalf("title cell = %q, want ID: 9 fallback", done[1])
	}
	if done[5] == "Pending" || done[5] == "" {
		t.Fatalf("return cell = %q, want formatted date", done[5])
	}
	if done[8] != "" {
		t.Fatalf("late cell = %q, want empty for returned rental", done[8])
	}
}

func TestRankingRows(t *testing.T) {
	rows := RankingRows([]RankingRow{
		{Title: "Matrix", Category: "Sci-Fi", TotalRentals: 42},
		{TotalRentals: 3},
	})
	if rows[0][0] != "Matrix" || rows[0][1] != "Sci-Fi" || rows[0][2] != "42" {
		t.Fatalf("row = %#v, want Matrix Sci-Fi 42", rows[0])
	}
	if rows[1][0] != "N/A" || rows[1][1] != "N/A" {
		t.Fatalf("row = %#v, want N/A placeholders", rows[1])
	}
}

func TestEarningsRows(t *testing.T) {
	rows := EarningsRows([]EarningsRow{
		{Name: "Jon Baker", TotalRentals: 15, TotalRevenue: 87.249},
	})
	if rows[0][0] != "Jon Baker" || rows[0][1] != "15" {
		t.Fatalf("row = %#v, want Jon Baker 15", rows[0])
	}
	if rows[0][2] != "$87.25" {
		t.Fatalf("revenue cell = %q, want rounded currency", rows[0][2])
	}
}

func TestDisplayTime(t *testing.T) {
	if DisplayTime(time.Time{}) != "" {
		t.Fatalf("DisplayTime of zero time should be empty")
	}
	got := DisplayTime(mustTime(t, "2025-06-10T14:30:00Z"))
	if !strings.HasPrefix(got, "2025-06-") {
		t.Fatalf("DisplayTime = %q, want local-naive date string", got)
	}
}
