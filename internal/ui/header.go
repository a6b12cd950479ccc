package ui

import (
	"fmt"
	"strings"
	"time"
)

// renderHeader renders the status bar with connection state and catalog counts.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	compact := m.width < 100
	sep := bg.Spaces(2)

	var parts []string

	parts = append(parts, bg.Render("rentdesk", styles.Logo))

	// Backend connectivity indicator
	switch {
	case m.snapshot.IsOffline():
		parts = append(parts, bg.Render("● OFFLINE", styles.DangerText))
	case m.snapshot.HasData:
		parts = append(parts, bg.Render("● ON", styles.SuccessText))
	default:
		parts = append(parts, bg.Render("● CONNECTING", styles.WarningText))
	}

	if m.snapshot.HasData {
		data := m.snapshot.Data
		if compact {
			parts = append(parts,
				bg.Render("C:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%d", len(data.Customers)), styles.Text),
				bg.Render("F:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%d", len(data.Titles)), styles.Text),
			)
		} else {
			parts = append(parts,
				bg.Render("Customers:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%d", len(data.Customers)), styles.Text),
				bg.Render("Films:", styles.MutedText)+bg.Space()+
					bg.Render(fmt.Sprintf("%d", len(data.Titles)), styles.Text),
			)
		}

		outStyle := styles.Text
		if data.Summary.Total > 0 {
			outStyle = styles.InfoText
		}
		lateStyle := styles.MutedText
		if data.Summary.Late > 0 {
			lateStyle = styles.DangerText
		}
		parts = append(parts,
			bg.Render("Out:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", data.Summary.Total), outStyle)+
				sep+bg.Render("•", styles.FaintText)+sep+
				bg.Render("Late:", styles.MutedText)+bg.Space()+
				bg.Render(fmt.Sprintf("%d", data.Summary.Late), lateStyle),
		)
	}

	if timeStr := m.formatTimestamp(); timeStr != "" {
		parts = append(parts, bg.Render(timeStr, styles.MutedText))
	}

	// Poll error indicator
	if m.snapshot.LastError != nil {
		maxErr := 60
		if compact {
			maxErr = 30
		}
		errText := truncate(classifyConnectionError(m.snapshot.LastError)+" "+m.snapshot.LastError.Error(), maxErr)
		parts = append(parts,
			bg.Render(errText, styles.DangerText),
		)
	}

	// Action/export result line
	if m.statusMsg != "" {
		msgStyle := styles.SuccessText
		if m.statusErr {
			msgStyle = styles.DangerText
		}
		parts = append(parts, bg.Render(truncate(m.statusMsg, 70), msgStyle))
	}

	if m.busy {
		parts = append(parts, bg.Render("Working...", styles.WarningText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// formatTimestamp formats the last update time with relative indicator.
func (m Model) formatTimestamp() string {
	if m.lastUpdated.IsZero() {
		return ""
	}

	timeSince := time.Since(m.lastUpdated)
	timeStr := m.lastUpdated.Format("15:04:05")

	if timeSince < time.Minute {
		timeStr += " (now)"
	} else if timeSince < time.Hour {
		timeStr += fmt.Sprintf(" (%dm ago)", int(timeSince.Minutes()))
	} else if timeSince < 24*time.Hour {
		timeStr += fmt.Sprintf(" (%dh ago)", int(timeSince.Hours()))
	}

	return timeStr
}

// classifyConnectionError returns a short description of the connection error.
func classifyConnectionError(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "connection refused"):
		return "OFFLINE"
	case strings.Contains(msg, "no such host"):
		return "HOST NOT FOUND"
	case strings.Contains(msg, "timeout"):
		return "TIMEOUT"
	default:
		return "ERROR"
	}
}

// renderCommandBar renders the command hints bar.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch m.currentView {
	case ViewRent, ViewReturn, ViewCancel:
		commands = []cmd{
			{"tab", "Next field"},
			{"enter", "Submit"},
			{"esc", "Back"},
		}
	case ViewCustomerReport, ViewUnreturned, ViewMostRented, ViewStaffRevenue:
		if m.form.active {
			commands = []cmd{
				{"enter", "Run"},
				{"esc", "Back"},
			}
		} else {
			commands = []cmd{
				{"j/k", "Navigate"},
				{"x", "Export CSV"},
				{"esc", "Menu"},
				{"?", "More"},
			}
		}
	case ViewCatalog:
		commands = []cmd{
			{"←/→", "Switch tab"},
			{"j/k", "Navigate"},
			{"esc", "Menu"},
			{"?", "More"},
		}
	default: // ViewMenu
		commands = []cmd{
			{"j/k", "Navigate"},
			{"enter", "Select"},
			{"1-8", "Jump"},
			{"T", "Theme"},
			{"?", "Help"},
			{"q", "Quit"},
		}
	}

	colon := bg.Sep(":")
	sep := bg.Spaces(2)

	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}

	// Theme indicator
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(strings.Join(segments, sep))
}
