package rental

import (
	"fmt"
	"strconv"
	"time"
)

const displayTimeLayout = "2006-01-02 15:04:05"

// DisplayTime formats a timestamp as a local-naive string for table cells.
// Zero times render empty.
func DisplayTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(time.Local).Format(displayTimeLayout)
}

// RentalRows projects rentals into display rows for the rental tables:
// id, title, staff, rental date, expected return, actual return, amount,
// status, days late. Still-pending returns render as "Pending"; the days-late
// cell is only filled for active rentals that are actually late.
func RentalRows(rentals []Rental, now time.Time) [][]string {
	rows := make([][]string, 0, len(rentals))
	for _, r := range rentals {
		returned := "Pending"
		if r.Returned() {
			returned = DisplayTime(r.ReturnDate)
		}

		late := ""
		if r.Status == StatusActive {
			if days := DaysLate(r.ExpectedReturn, r.ReturnDate, now); days > 0 {
				late = fmt.Sprintf("%d days", days)
			}
		}

		rows = append(rows, []string{
			strconv.Itoa(r.ID),
			r.TitleLabel(),
			r.EmployeeLabel(),
			DisplayTime(r.RentalDate),
			DisplayTime(r.ExpectedReturn),
			returned,
			fmt.Sprintf("$%.2f", r.Amount),
			r.Status.Display(),
			late,
		})
	}
	return rows
}

// RankingRows projects the most-rented report into display rows:
// title, genre, rental count.
func RankingRows(ranking []RankingRow) [][]string {
	rows := make([][]string, 0, len(ranking))
	for _, item := range ranking {
		title := item.Title
		if title == "" {
			title = "N/A"
		}
		category := item.Category
		if category == "" {
			category = "N/A"
		}
		rows = append(rows, []string{
			title,
			category,
			strconv.Itoa(item.TotalRentals),
		})
	}
	return rows
}

// EarningsRows projects the staff-revenue report into display rows:
// staff name, rental count, revenue as a 2-decimal currency string.
func EarningsRows(earnings []EarningsRow) [][]string {
	rows := make([][]string, 0, len(earnings))
	for _, item := range earnings {
		name := item.Name
		if name == "" {
			name = "N/A"
		}
		rows = append(rows, []string{
			name,
			strconv.Itoa(item.TotalRentals),
			fmt.Sprintf("$%.2f", item.TotalRevenue),
		})
	}
	return rows
}
