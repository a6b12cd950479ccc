package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// catalogState holds the catalog browser tab and scroll position.
type catalogState struct {
	tab      int // 0 films, 1 customers, 2 staff
	selected int
	offset   int
}

var catalogTabs = []string{"Films", "Customers", "Staff"}

// handleCatalogKey processes keyboard input for the catalog browser.
func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.catalogRows()
	total := len(rows)
	visible := m.reportVisibleRows()

	switch msg.String() {
	case "left", "[":
		m.catalog.tab = (m.catalog.tab - 1 + len(catalogTabs)) % len(catalogTabs)
		m.catalog.selected = 0
		m.catalog.offset = 0
		return m, nil
	case "right", "]", "tab":
		m.catalog.tab = (m.catalog.tab + 1) % len(catalogTabs)
		m.catalog.selected = 0
		m.catalog.offset = 0
		return m, nil
	case "j", "down":
		m.catalog.selected++
	case "k", "up":
		m.catalog.selected--
	case "g", "home":
		m.catalog.selected = 0
	case "G", "end":
		m.catalog.selected = total - 1
	case "ctrl+d":
		m.catalog.selected += visible / 2
	case "ctrl+u":
		m.catalog.selected -= visible / 2
	}

	m.catalog.selected, m.catalog.offset = clampScroll(m.catalog.selected, m.catalog.offset, visible, total)
	return m, nil
}

// catalogRows returns the display rows for the active catalog tab.
func (m Model) catalogRows() [][]string {
	data := m.snapshot.Data

	switch m.catalog.tab {
	case 0:
		rows := make([][]string, 0, len(data.Titles))
		for _, t := range data.Titles {
			year := ""
			if t.ReleaseYear > 0 {
				year = strconv.Itoa(t.ReleaseYear)
			}
			length := ""
			if t.Length > 0 {
				length = fmt.Sprintf("%d min", t.Length)
			}
			rows = append(rows, []string{
				strconv.Itoa(t.ID),
				t.Title,
				t.Genre(),
				year,
				length,
				fmt.Sprintf("$%.2f", t.RentalRate),
				fmt.Sprintf("%d days", t.RentalDuration),
			})
		}
		return rows

	case 1:
		rows := make([][]string, 0, len(data.Customers))
		for _, c := range data.Customers {
			rows = append(rows, []string{
				strconv.Itoa(c.ID),
				c.FullName(),
				c.Email,
				ternary(c.Active, "Active", "Inactive"),
			})
		}
		return rows

	default:
		rows := make([][]string, 0, len(data.Staff))
		for _, e := range data.Staff {
			store := ""
			if e.StoreID > 0 {
				store = strconv.Itoa(e.StoreID)
			}
			rows = append(rows, []string{
				strconv.Itoa(e.ID),
				e.FullName(),
				e.Email,
				store,
				ternary(e.Active, "Active", "Inactive"),
			})
		}
		return rows
	}
}

func (m Model) catalogColumns() []column {
	switch m.catalog.tab {
	case 0:
		return []column{
			{title: "ID", width: 5},
			{title: "Title", width: 0},
			{title: "Genre", width: 14},
			{title: "Year", width: 5},
			{title: "Length", width: 8},
			{title: "Rate", width: 7},
			{title: "Duration", width: 8},
		}
	case 1:
		return []column{
			{title: "ID", width: 5},
			{title: "Name", width: 0},
			{title: "Email", width: 30},
			{title: "Status", width: 8},
		}
	default:
		return []column{
			{title: "ID", width: 5},
			{title: "Name", width: 0},
			{title: "Email", width: 30},
			{title: "Store", width: 6},
			{title: "Status", width: 8},
		}
	}
}

// renderCatalog renders the catalog browser with a tab strip above the table.
func (m Model) renderCatalog() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.SurfaceAlt)

	// Tab strip
	var tabs []string
	for i, label := range catalogTabs {
		if i == m.catalog.tab {
			tabs = append(tabs, bg.Render("["+label+"]", styles.AccentText.Bold(true)))
		} else {
			tabs = append(tabs, bg.Render(" "+label+" ", styles.MutedText))
		}
	}
	tabLine := " " + strings.Join(tabs, bg.Spaces(2))

	width := m.width
	height := m.contentHeight()
	innerWidth := width - 2
	tableHeight := height - 3 // borders and tab strip

	rows := m.catalogRows()
	var table string
	if len(rows) == 0 {
		table = bg.Render("  No data yet.", styles.MutedText)
	} else {
		table = m.renderTable(m.catalogColumns(), rows, innerWidth, tableHeight,
			m.catalog.selected, m.catalog.offset, m.theme.SurfaceAlt)
	}

	content := tabLine + "\n" + table
	title := fmt.Sprintf("Catalog (%d)", len(rows))
	return m.renderTitledBox(title, content, width, height, true)
}
