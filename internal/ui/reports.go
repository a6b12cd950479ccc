package ui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rentdesk/internal/api"
	"rentdesk/internal/rental"
)

// reportState holds the data and scroll position of the report views.
type reportState struct {
	customer api.CustomerRentalsReport
	ranking  []rental.RankingRow
	revenue  api.StaffRevenueReport

	selected int
	offset   int
}

var rentalColumns = []column{
	{title: "ID", width: 5},
	{title: "Film", width: 0},
	{title: "Staff", width: 18},
	{title: "Rented", width: 19},
	{title: "Due", width: 19},
	{title: "Returned", width: 19},
	{title: "Amount", width: 8},
	{title: "Status", width: 9},
	{title: "Late", width: 8},
}

var rentalHeaders = []string{
	"ID", "Film", "Staff", "Rented", "Due", "Returned", "Amount", "Status", "Late",
}

// handleReportKey processes keyboard input for the report table views.
func (m Model) handleReportKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.currentReportRows()
	total := len(rows)
	visible := m.reportVisibleRows()

	switch msg.String() {
	case "j", "down":
		m.report.selected++
	case "k", "up":
		m.report.selected--
	case "g", "home":
		m.report.selected = 0
	case "G", "end":
		m.report.selected = total - 1
	case "ctrl+d":
		m.report.selected += visible / 2
	case "ctrl+u":
		m.report.selected -= visible / 2
	case "x":
		return m.exportCurrentReport()
	}

	m.report.selected, m.report.offset = clampScroll(m.report.selected, m.report.offset, visible, total)
	return m, nil
}

// currentReportRows returns the display rows for the active report view.
func (m Model) currentReportRows() [][]string {
	switch m.currentView {
	case ViewCustomerReport:
		return rental.RentalRows(m.report.customer.Rentals, time.Now())
	case ViewUnreturned:
		return rental.RentalRows(m.snapshot.Data.Unreturned, time.Now())
	case ViewMostRented:
		return rental.RankingRows(m.report.ranking)
	case ViewStaffRevenue:
		return rental.EarningsRows(m.report.revenue.Rows)
	default:
		return nil
	}
}

// reportVisibleRows returns how many data rows fit in the report box.
func (m Model) reportVisibleRows() int {
	// box borders (2), header row (1), summary line (1)
	v := m.contentHeight() - 4
	if v < 1 {
		v = 1
	}
	return v
}

func (m Model) renderReportTable(title, summary string, cols []column, rows [][]string) string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)

	width := m.width
	height := m.contentHeight()
	innerWidth := width - 2
	tableHeight := height - 3 // borders and summary line

	var content string
	if len(rows) == 0 {
		content = bg.Render("  No rows.", styles.MutedText)
	} else {
		content = m.renderTable(cols, rows, innerWidth, tableHeight, m.report.selected, m.report.offset, m.theme.SurfaceAlt)
	}

	if summary != "" {
		content += "\n" + bg.Render(" "+summary, styles.InfoText)
	}

	return m.renderTitledBox(title, content, width, height, true)
}

func (m Model) renderCustomerReport() string {
	report := m.report.customer

	title := "Rentals by customer"
	if report.Customer != nil {
		title = fmt.Sprintf("Rentals for %s (#%d)", report.Customer.FullName(), report.Customer.ID)
	}

	summary := fmt.Sprintf("Total rentals: %d", report.Total)
	rows := rental.RentalRows(report.Rentals, time.Now())
	return m.renderReportTable(title, summary, rentalColumns, rows)
}

func (m Model) renderUnreturned() string {
	summary := m.snapshot.Data.Summary
	line := fmt.Sprintf("Unreturned: %d   Late: %d   On time: %d",
		summary.Total, summary.Late, summary.OnTime)

	rows := rental.RentalRows(m.snapshot.Data.Unreturned, time.Now())
	return m.renderReportTable("Unreturned DVDs", line, rentalColumns, rows)
}

func (m Model) renderMostRented() string {
	cols := []column{
		{title: "Film", width: 0},
		{title: "Genre", width: 18},
		{title: "Rentals", width: 8},
	}
	title := fmt.Sprintf("Most rented titles (top %d)", m.reportLimit)
	rows := rental.RankingRows(m.report.ranking)
	return m.renderReportTable(title, "", cols, rows)
}

func (m Model) renderStaffRevenue() string {
	cols := []column{
		{title: "Staff", width: 0},
		{title: "Rentals", width: 8},
		{title: "Revenue", width: 12},
	}
	summary := fmt.Sprintf("Total revenue: $%.2f", m.report.revenue.TotalRevenue)
	rows := rental.EarningsRows(m.report.revenue.Rows)
	return m.renderReportTable("Revenue by staff", summary, cols, rows)
}

// exportCurrentReport writes the active report as CSV next to the home dir.
func (m Model) exportCurrentReport() (tea.Model, tea.Cmd) {
	rows := m.currentReportRows()
	if len(rows) == 0 {
		m.setStatus("Nothing to export", true)
		return m, nil
	}

	var name string
	var headers []string
	switch m.currentView {
	case ViewCustomerReport:
		name = "customer-rentals"
		headers = rentalHeaders
	case ViewUnreturned:
		name = "unreturned"
		headers = rentalHeaders
	case ViewMostRented:
		name = "most-rented"
		headers = []string{"Film", "Genre", "Rentals"}
	case ViewStaffRevenue:
		name = "staff-revenue"
		headers = []string{"Staff", "Rentals", "Revenue"}
	default:
		return m, nil
	}

	return m, exportCSVCmd(name, headers, rows)
}

// Commands

func fetchMostRentedCmd(ctx context.Context, client api.Backend, limit int) tea.Cmd {
	return func() tea.Msg {
		rows, err := client.MostRented(ctx, limit)
		return mostRentedMsg{rows: rows, err: err}
	}
}

func fetchStaffRevenueCmd(ctx context.Context, client api.Backend) tea.Cmd {
	return func() tea.Msg {
		report, err := client.StaffRevenue(ctx)
		return staffRevenueMsg{report: report, err: err}
	}
}
