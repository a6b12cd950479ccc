package ui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rentdesk/internal/api"
)

// formKind identifies which operation a form submits.
type formKind int

const (
	formRent formKind = iota
	formReturn
	formCancel
	formCustomerReport
)

// form holds the state of the active input form.
type form struct {
	active     bool
	kind       formKind
	title      string
	labels     []string
	inputs     []textinput.Model
	focusIdx   int
	errMsg     string
	confirming bool // cancel flow asks for confirmation before deleting
}

func newIDInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 10
	ti.Width = 20
	return ti
}

func newRentForm() form {
	f := form{
		active: true,
		kind:   formRent,
		title:  "Rent a DVD",
		labels: []string{"Customer ID", "Film ID", "Staff ID"},
		inputs: []textinput.Model{
			newIDInput("e.g. 12"),
			newIDInput("e.g. 7"),
			newIDInput("e.g. 3"),
		},
	}
	f.inputs[0].Focus()
	return f
}

func newReturnForm() form {
	f := form{
		active: true,
		kind:   formReturn,
		title:  "Return a DVD",
		labels: []string{"Rental ID"},
		inputs: []textinput.Model{newIDInput("e.g. 42")},
	}
	f.inputs[0].Focus()
	return f
}

func newCancelForm() form {
	f := form{
		active: true,
		kind:   formCancel,
		title:  "Cancel a rental",
		labels: []string{"Rental ID"},
		inputs: []textinput.Model{newIDInput("e.g. 42")},
	}
	f.inputs[0].Focus()
	return f
}

func newCustomerReportForm() form {
	f := form{
		active: true,
		kind:   formCustomerReport,
		title:  "Rentals by customer",
		labels: []string{"Customer ID"},
		inputs: []textinput.Model{newIDInput("e.g. 12")},
	}
	f.inputs[0].Focus()
	return f
}

// values parses every field as a positive integer, in field order.
func (f *form) values() ([]int, error) {
	out := make([]int, len(f.inputs))
	for i, input := range f.inputs {
		raw := strings.TrimSpace(input.Value())
		if raw == "" {
			return nil, fmt.Errorf("%s is required", f.labels[i])
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s must be a positive number", f.labels[i])
		}
		out[i] = n
	}
	return out, nil
}

// handleFormKey handles keyboard input while a form is active.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if m.form.confirming {
		switch key {
		case "y", "Y", "enter":
			ids, err := m.form.values()
			if err != nil {
				m.form.confirming = false
				m.form.errMsg = err.Error()
				return m, nil
			}
			m.busy = true
			m.form.confirming = false
			return m, submitCancelCmd(m.ctx, m.client, ids[0])
		case "n", "N", "esc":
			m.form.confirming = false
			return m, nil
		}
		return m, nil
	}

	switch key {
	case "esc":
		m.form = form{}
		m.currentView = ViewMenu
		return m, nil

	case "enter":
		return m.submitForm()

	case "tab", "down":
		m.form.inputs[m.form.focusIdx].Blur()
		m.form.focusIdx = (m.form.focusIdx + 1) % len(m.form.inputs)
		m.form.inputs[m.form.focusIdx].Focus()
		return m, nil

	case "shift+tab", "up":
		m.form.inputs[m.form.focusIdx].Blur()
		m.form.focusIdx = (m.form.focusIdx - 1 + len(m.form.inputs)) % len(m.form.inputs)
		m.form.inputs[m.form.focusIdx].Focus()
		return m, nil
	}

	// Let the focused input handle the key
	var cmd tea.Cmd
	m.form.inputs[m.form.focusIdx], cmd = m.form.inputs[m.form.focusIdx].Update(msg)
	m.form.errMsg = ""
	return m, cmd
}

// submitForm validates the fields and dispatches the backend call.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	ids, err := m.form.values()
	if err != nil {
		m.form.errMsg = err.Error()
		return m, nil
	}

	switch m.form.kind {
	case formRent:
		req := api.CreateRentalRequest{
			CustomerID: ids[0],
			FilmID:     ids[1],
			StaffID:    ids[2],
		}
		m.busy = true
		return m, submitRentCmd(m.ctx, m.client, req)

	case formReturn:
		m.busy = true
		return m, submitReturnCmd(m.ctx, m.client, ids[0])

	case formCancel:
		m.form.confirming = true
		return m, nil

	case formCustomerReport:
		m.busy = true
		return m, fetchCustomerReportCmd(m.ctx, m.client, ids[0])
	}

	return m, nil
}

// handleActionDone folds a mutation result back into the model.
func (m Model) handleActionDone(msg actionDoneMsg) (tea.Model, tea.Cmd) {
	m.busy = false

	if msg.err != nil {
		m.setStatus(verbLabel(msg.verb)+" failed: "+msg.err.Error(), true)
		return m, nil
	}

	// A bare success ack carries no rental record; cancel in particular
	// answers with an empty data object.
	if msg.rental == nil {
		m.setStatus(verbLabel(msg.verb)+" confirmed", false)
		m.form = form{}
		m.currentView = ViewMenu
		return m, nil
	}

	var text string
	switch msg.verb {
	case "rent":
		text = fmt.Sprintf("Rental #%d created", msg.rental.ID)
		if msg.rental.Amount > 0 {
			text += fmt.Sprintf(" ($%.2f)", msg.rental.Amount)
		}
	case "return":
		text = fmt.Sprintf("Rental #%d returned", msg.rental.ID)
	case "cancel":
		text = fmt.Sprintf("Rental #%d canceled", msg.rental.ID)
	}
	m.setStatus(text, false)

	m.form = form{}
	m.currentView = ViewMenu
	return m, nil
}

func verbLabel(verb string) string {
	switch verb {
	case "rent":
		return "Rental"
	case "return":
		return "Return"
	case "cancel":
		return "Cancellation"
	default:
		return verb
	}
}

// renderForm renders the active form inside a titled box.
func (m Model) renderForm() string {
	styles := m.theme.Styles()
	bg := NewBgStyle(m.theme.FocusBg)

	var lines []string
	lines = append(lines, "")

	for i, label := range m.form.labels {
		labelText := padRight("  "+label+":", 16)
		labelStyle := styles.MutedText
		if i == m.form.focusIdx {
			labelStyle = styles.AccentText
		}
		lines = append(lines, bg.Render(labelText, labelStyle)+m.form.inputs[i].View())
		lines = append(lines, "")
	}

	if m.form.confirming {
		prompt := "  Cancel this rental? This cannot be undone. [y/n]"
		lines = append(lines, bg.Render(prompt, styles.WarningText))
	} else if m.form.errMsg != "" {
		lines = append(lines, bg.Render("  "+m.form.errMsg, styles.DangerText))
	} else {
		lines = append(lines, bg.Render("  enter to submit, esc to go back", styles.FaintText))
	}

	content := strings.Join(lines, "\n")

	boxWidth := 56
	if boxWidth > m.width {
		boxWidth = m.width
	}
	boxHeight := len(m.form.labels)*2 + 4
	box := m.renderTitledBox(m.form.title, content, boxWidth, boxHeight, true)

	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, box)
}

// Commands

func submitRentCmd(ctx context.Context, client api.Backend, req api.CreateRentalRequest) tea.Cmd {
	return func() tea.Msg {
		r, err := client.CreateRental(ctx, req)
		return actionDoneMsg{verb: "rent", rental: r, err: err}
	}
}

func submitReturnCmd(ctx context.Context, client api.Backend, rentalID int) tea.Cmd {
	return func() tea.Msg {
		r, err := client.ReturnRental(ctx, rentalID)
		return actionDoneMsg{verb: "return", rental: r, err: err}
	}
}

func submitCancelCmd(ctx context.Context, client api.Backend, rentalID int) tea.Cmd {
	return func() tea.Msg {
		r, err := client.CancelRental(ctx, rentalID)
		return actionDoneMsg{verb: "cancel", rental: r, err: err}
	}
}

func fetchCustomerReportCmd(ctx context.Context, client api.Backend, customerID int) tea.Cmd {
	return func() tea.Msg {
		report, err := client.CustomerRentals(ctx, customerID)
		return customerReportMsg{report: report, err: err}
	}
}
