package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// column describes one table column. A width of 0 means the column takes the
// remaining space.
type column struct {
	title string
	width int
}

// renderTitledBox renders content in a box with the title embedded in the top border:
// ┌─── Title ───┐
// When focused is true, uses BorderFocus color and FocusBg background.
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderColor := lipgloss.Color(borderColorStr)
	bgColor := lipgloss.Color(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	// Build the top border with embedded title
	innerWidth := width - 2 // Account for left and right border chars
	titleLen := len([]rune(title))
	leftPad := (innerWidth - titleLen - 2) / 2 // -2 for spaces around title
	if leftPad < 0 {
		leftPad = 0
	}
	rightPad := innerWidth - titleLen - 2 - leftPad
	if rightPad < 0 {
		rightPad = 0
	}

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).Background(bgColor)

	contentLines := strings.Split(content, "\n")
	boxHeight := height - 2 // -2 for top and bottom borders

	var paddedLines []string
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		paddedLines = append(paddedLines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(paddedLines, "\n") + "\n" + bottomBorder
}

// renderTable renders a header row plus data rows as styled lines.
// selected is an index into rows; rows outside the offset/height window are
// not rendered.
func (m Model) renderTable(cols []column, rows [][]string, width, height, selected, offset int, bgColor string) string {
	widths := columnWidths(cols, width)
	bg := NewBgStyle(bgColor)
	styles := m.theme.Styles()

	var lines []string

	// Header row
	headerCells := make([]string, len(cols))
	for i, c := range cols {
		headerCells[i] = padRight(truncate(c.title, widths[i]), widths[i])
	}
	header := bg.Render(strings.Join(headerCells, " "), styles.AccentText.Bold(true))
	lines = append(lines, bg.FillLine(header, width))

	visible := height - 1 // minus header line
	if visible < 1 {
		visible = 1
	}
	end := offset + visible
	if end > len(rows) {
		end = len(rows)
	}

	for i := offset; i < end; i++ {
		cells := make([]string, len(widths))
		for j := range widths {
			var cell string
			if j < len(rows[i]) {
				cell = rows[i][j]
			}
			cells[j] = padRight(truncate(cell, widths[j]), widths[j])
		}
		content := strings.Join(cells, " ")

		if i == selected {
			line := lipgloss.NewStyle().
				Background(lipgloss.Color(m.theme.SelectionBg)).
				Foreground(lipgloss.Color(m.theme.SelectionText)).
				Width(width).
				Render(content)
			lines = append(lines, line)
		} else {
			line := bg.Render(content, styles.Text)
			lines = append(lines, bg.FillLine(line, width))
		}
	}

	return strings.Join(lines, "\n")
}

// columnWidths resolves fixed widths and gives the remaining space to the
// flexible (zero width) columns.
func columnWidths(cols []column, total int) []int {
	widths := make([]int, len(cols))
	fixed := 0
	flex := 0
	for i, c := range cols {
		widths[i] = c.width
		if c.width > 0 {
			fixed += c.width
		} else {
			flex++
		}
	}
	// One space between columns
	remaining := total - fixed - (len(cols) - 1)
	if flex > 0 {
		share := remaining / flex
		if share < 4 {
			share = 4
		}
		for i := range widths {
			if widths[i] == 0 {
				widths[i] = share
			}
		}
	}
	return widths
}

// clampScroll keeps the selection visible inside the scroll window.
func clampScroll(selected, offset, visible, total int) (int, int) {
	if total == 0 {
		return 0, 0
	}
	if selected < 0 {
		selected = 0
	}
	if selected >= total {
		selected = total - 1
	}
	if visible < 1 {
		visible = 1
	}
	if selected < offset {
		offset = selected
	}
	if selected >= offset+visible {
		offset = selected - visible + 1
	}
	if offset < 0 {
		offset = 0
	}
	return selected, offset
}
