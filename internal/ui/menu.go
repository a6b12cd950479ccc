package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// menuEntry is one selectable line on the main menu.
type menuEntry struct {
	label string
	view  View
}

var menuEntries = []menuEntry{
	{"Rent a DVD", ViewRent},
	{"Return a DVD", ViewReturn},
	{"Cancel a rental", ViewCancel},
	{"Rentals by customer", ViewCustomerReport},
	{"Unreturned DVDs", ViewUnreturned},
	{"Most rented titles", ViewMostRented},
	{"Revenue by staff", ViewStaffRevenue},
	{"Browse catalog", ViewCatalog},
}

// handleMenuKey processes keyboard input for the main menu.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case "j", "down":
		if m.menuIndex < len(menuEntries)-1 {
			m.menuIndex++
		}
		return m, nil
	case "k", "up":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
		return m, nil
	case "g", "home":
		m.menuIndex = 0
		return m, nil
	case "G", "end":
		m.menuIndex = len(menuEntries) - 1
		return m, nil
	case "enter":
		return m.openEntry(menuEntries[m.menuIndex].view)
	}

	// Digit shortcuts
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		idx := int(key[0] - '1')
		if idx < len(menuEntries) {
			m.menuIndex = idx
			return m.openEntry(menuEntries[idx].view)
		}
	}

	return m, nil
}

// openEntry switches to the selected view, preparing forms or dispatching
// report fetches as needed.
func (m Model) openEntry(view View) (tea.Model, tea.Cmd) {
	m.clearStatus()

	switch view {
	case ViewRent:
		m.form = newRentForm()
		m.currentView = ViewRent
		return m, nil
	case ViewReturn:
		m.form = newReturnForm()
		m.currentView = ViewReturn
		return m, nil
	case ViewCancel:
		m.form = newCancelForm()
		m.currentView = ViewCancel
		return m, nil
	case ViewCustomerReport:
		m.form = newCustomerReportForm()
		m.currentView = ViewCustomerReport
		return m, nil
	case ViewUnreturned:
		m.report.selected = 0
		m.report.offset = 0
		m.currentView = ViewUnreturned
		return m, nil
	case ViewMostRented:
		m.busy = true
		return m, fetchMostRentedCmd(m.ctx, m.client, m.reportLimit)
	case ViewStaffRevenue:
		m.busy = true
		return m, fetchStaffRevenueCmd(m.ctx, m.client)
	case ViewCatalog:
		m.catalog = catalogState{}
		m.currentView = ViewCatalog
		return m, nil
	}

	return m, nil
}

// renderMenu renders the main menu inside a titled box.
func (m Model) renderMenu() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)

	var lines []string
	lines = append(lines, "")
	for i, entry := range menuEntries {
		label := fmt.Sprintf("  %d. %s", i+1, entry.label)
		if i == m.menuIndex {
			line := lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Bold(true).
				Render(label + "  ")
			lines = append(lines, line)
		} else {
			lines = append(lines, bg.Render(label, styles.Text))
		}
	}

	lines = append(lines, "")
	hint := "  enter to select, q to quit"
	lines = append(lines, bg.Render(hint, styles.FaintText))

	content := strings.Join(lines, "\n")

	boxWidth := 44
	if boxWidth > m.width {
		boxWidth = m.width
	}
	boxHeight := len(menuEntries) + 5
	box := m.renderTitledBox("DVD Rental", content, boxWidth, boxHeight, true)

	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, box)
}
