package ui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"rentdesk/internal/api"
	"rentdesk/internal/prefs"
	"rentdesk/internal/rental"
	"rentdesk/internal/state"
)

// View represents the current active view.
type View int

const (
	ViewMenu View = iota
	ViewRent
	ViewReturn
	ViewCancel
	ViewCustomerReport
	ViewUnreturned
	ViewMostRented
	ViewStaffRevenue
	ViewCatalog
)

// Options configures the UI.
type Options struct {
	Context     context.Context
	Client      api.Backend
	Store       *state.Store
	PollTick    time.Duration
	ReportLimit int
	ThemeName   string
	PrefsPath   string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx         context.Context
	client      api.Backend
	store       *state.Store
	prefsPath   string
	pollTick    time.Duration
	reportLimit int

	// UI state
	theme       Theme
	currentView View
	width       int
	height      int
	ready       bool

	// Data state
	snapshot    state.Snapshot
	lastUpdated time.Time

	// Menu state
	menuIndex int

	// Form state (rent/return/cancel/customer report)
	form form

	// Report state
	report reportState

	// Catalog state
	catalog catalogState

	// Status line after an action or export
	statusMsg string
	statusErr bool
	busy      bool

	// Help overlay
	showHelp bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = time.Second
	}

	reportLimit := opts.ReportLimit
	if reportLimit <= 0 {
		reportLimit = 10
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = defaultTheme().Name
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return Model{
		ctx:         ctx,
		client:      opts.Client,
		store:       opts.Store,
		prefsPath:   prefsPath,
		pollTick:    pollTick,
		reportLimit: reportLimit,
		theme:       GetTheme(themeName),
		currentView: ViewMenu,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.EnterAltScreen,
		tickCmd(m.pollTick),
	}
	// Fetch snapshot immediately on start
	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tickMsg:
		return m.handleTick()

	case snapshotMsg:
		m.snapshot = state.Snapshot(msg)
		m.lastUpdated = time.Now()
		return m, nil

	case actionDoneMsg:
		return m.handleActionDone(msg)

	case customerReportMsg:
		m.busy = false
		if msg.err != nil {
			m.setStatus("Report failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.report.customer = msg.report
		m.report.selected = 0
		m.report.offset = 0
		m.form = form{}
		m.currentView = ViewCustomerReport
		m.clearStatus()
		return m, nil

	case mostRentedMsg:
		m.busy = false
		if msg.err != nil {
			m.setStatus("Report failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.report.ranking = msg.rows
		m.report.selected = 0
		m.report.offset = 0
		m.currentView = ViewMostRented
		m.clearStatus()
		return m, nil

	case staffRevenueMsg:
		m.busy = false
		if msg.err != nil {
			m.setStatus("Report failed: "+msg.err.Error(), true)
			return m, nil
		}
		m.report.revenue = msg.report
		m.report.selected = 0
		m.report.offset = 0
		m.currentView = ViewStaffRevenue
		m.clearStatus()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.setStatus("Export failed: "+msg.err.Error(), true)
		} else {
			m.setStatus("Exported to "+msg.path, false)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder

	// Header line 1: logo + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	// Main content
	b.WriteString(m.renderContent())

	return b.String()
}

// renderContent renders the main content area based on current view.
func (m Model) renderContent() string {
	switch m.currentView {
	case ViewMenu:
		return m.renderMenu()
	case ViewRent, ViewReturn, ViewCancel:
		return m.renderForm()
	case ViewCustomerReport:
		if m.form.active {
			return m.renderForm()
		}
		return m.renderCustomerReport()
	case ViewUnreturned:
		return m.renderUnreturned()
	case ViewMostRented:
		return m.renderMostRented()
	case ViewStaffRevenue:
		return m.renderStaffRevenue()
	case ViewCatalog:
		return m.renderCatalog()
	default:
		return ""
	}
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes the help overlay
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	key := msg.String()

	if key == "ctrl+c" {
		return m, tea.Quit
	}

	// Forms capture typing; only a few keys pass through
	if m.form.active {
		return m.handleFormKey(msg)
	}

	switch key {
	case "q", "esc":
		if m.currentView == ViewMenu {
			return m, tea.Quit
		}
		m.currentView = ViewMenu
		m.clearStatus()
		return m, nil

	case "h", "?":
		m.showHelp = true
		return m, nil

	case "T":
		// Cycle theme
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		}
		return m, nil
	}

	switch m.currentView {
	case ViewMenu:
		return m.handleMenuKey(msg)
	case ViewUnreturned, ViewCustomerReport, ViewMostRented, ViewStaffRevenue:
		return m.handleReportKey(msg)
	case ViewCatalog:
		return m.handleCatalogKey(msg)
	}

	return m, nil
}

// handleTick processes the polling tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if m.store != nil {
		cmds = append(cmds, fetchSnapshotCmd(m.store))
	}

	// Schedule next tick
	cmds = append(cmds, tickCmd(m.pollTick))

	return m, tea.Batch(cmds...)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
}

func (m *Model) clearStatus() {
	m.statusMsg = ""
	m.statusErr = false
}

// contentHeight returns the rows available below the two header lines.
func (m Model) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		return 1
	}
	return h
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type actionDoneMsg struct {
	verb   string
	rental *rental.Rental
	err    error
}

type customerReportMsg struct {
	report api.CustomerRentalsReport
	err    error
}

type mostRentedMsg struct {
	rows []rental.RankingRow
	err  error
}

type staffRevenueMsg struct {
	report api.StaffRevenueReport
	err    error
}

type exportDoneMsg struct {
	path string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
