// Package app holds the root Bubble Tea model: the auth gate, the
// three browse panes, and the coordinator logic that re-runs the
// engine pipeline after every state mutation. Cross-view effects (a
// calendar day jump switching the table tab) flow through here rather
// than between views.
package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/school-events/tui/internal/clock"
	"github.com/school-events/tui/internal/crypt"
	"github.com/school-events/tui/internal/engine"
	"github.com/school-events/tui/internal/event"
	"github.com/school-events/tui/internal/export"
	"github.com/school-events/tui/internal/source"
	"github.com/school-events/tui/internal/store"
	"github.com/school-events/tui/internal/theme"
	"github.com/school-events/tui/internal/views/auth"
	"github.com/school-events/tui/internal/views/calendar"
	"github.com/school-events/tui/internal/views/detail"
	"github.com/school-events/tui/internal/views/table"
	"github.com/school-events/tui/internal/views/week"
)

// Pane identifies the focused browse pane.
type Pane int

const (
	PaneCalendar Pane = iota
	PaneWeek
	PaneTable
)

// Overlay identifies which modal is active.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayHelp
	OverlayDetail
)

type mode int

const (
	modeLocked mode = iota
	modeLoading
	modeBrowse
)

// yearOptions is the cycle order of the year filter.
var yearOptions = []string{
	engine.YearAll, engine.YearReception, "1", "2", "3", "4", "5", "6",
}

// loadedMsg is the result of the one asynchronous boundary: fetching
// and decrypting the events payload.
type loadedMsg struct {
	events   []event.Event
	err      error
	password string
	remember bool
	auto     bool
}

// Model is the root Bubble Tea model.
type Model struct {
	loader     *source.Loader
	st         *store.Store
	clk        clock.Clock
	exportPath string

	keys   KeyMap
	width  int
	height int

	mode mode
	auth auth.Model

	// Session state. events is immutable once loaded; filters and
	// selection are mutated only by key handlers here.
	events    []event.Event
	filtered  []event.Event
	filters   engine.FilterState
	selection *engine.Selection
	password  string // retained for reload

	// View state.
	month   time.Time // first day of the displayed month
	tab     engine.Tab
	focus   Pane
	overlay Overlay
	status  string

	cal    calendar.Model
	wk     week.Model
	tbl    table.Model
	detail detail.Model

	// resume holds a saved password picked up at construction time;
	// Init turns it into a load command.
	resume string
}

// New creates the root model with persisted filters applied. A valid
// saved session puts the model straight into loading mode.
func New(loader *source.Loader, st *store.Store, clk clock.Clock, exportPath string) Model {
	now := clk.Now()
	m := Model{
		loader:     loader,
		st:         st,
		clk:        clk,
		exportPath: exportPath,
		keys:       DefaultKeyMap(),
		auth:       auth.New(),
		filters:    st.FilterState(),
		selection:  engine.NewSelection(),
		month:      time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()),
		focus:      PaneTable,
		cal:        calendar.New(),
		wk:         week.New(),
		tbl:        table.New(),
	}
	if saved, ok := st.Auth(now); ok {
		m.resume = saved.Password
		m.mode = modeLoading
		m.auth.StartLoading()
	}
	return m
}

// Init resumes a saved session when one exists, otherwise starts the
// password form.
func (m Model) Init() tea.Cmd {
	if m.resume != "" {
		loader, password := m.loader, m.resume
		return func() tea.Msg {
			events, err := loader.Load(password)
			return loadedMsg{events: events, err: err, password: password, auto: true}
		}
	}
	return m.auth.Init()
}

// startLoad kicks off the fetch-and-decrypt command. The UI shows the
// loading state until loadedMsg arrives.
func (m *Model) startLoad(password string, remember, auto bool) tea.Cmd {
	m.mode = modeLoading
	m.auth.StartLoading()
	loader := m.loader
	return func() tea.Msg {
		events, err := loader.Load(password)
		return loadedMsg{events: events, err: err, password: password, remember: remember, auto: auto}
	}
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.tbl.Width = msg.Width
		m.tbl.Height = msg.Height / 2
		return m, nil

	case loadedMsg:
		return m.handleLoaded(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == modeLocked {
		var cmd tea.Cmd
		m.auth, cmd = m.auth.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleLoaded(msg loadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.mode = modeLocked
		if msg.auto {
			// Stale or invalid saved session: drop it and fall back to
			// the form without scaring the user.
			m.st.ClearAuth()
			m.auth.Fail("Saved session expired, please sign in again")
		} else {
			m.auth.Fail(loadErrorMessage(msg.err))
		}
		return m, nil
	}

	m.events = msg.events
	m.password = msg.password
	if msg.remember {
		// Best-effort: a full disk must not block the session.
		_ = m.st.SaveAuth(msg.password, m.clk.Now())
	}
	m.mode = modeBrowse
	m.refresh()
	return m, nil
}

func loadErrorMessage(err error) string {
	if errors.Is(err, crypt.ErrWrongPassword) {
		return "Wrong password"
	}
	return "Could not load events: " + err.Error()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeLocked:
		return m.handleLockedKey(msg)
	case modeLoading:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	return m.handleBrowseKey(msg)
}

func (m Model) handleLockedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit

	case msg.Type == tea.KeyEnter:
		password := m.auth.Password()
		if password == "" {
			return m, nil
		}
		return m, m.startLoad(password, m.auth.Remember(), false)

	case key.Matches(msg, m.keys.Remember):
		m.auth.ToggleRemember()
		return m, nil
	}

	var cmd tea.Cmd
	m.auth, cmd = m.auth.Update(msg)
	return m, cmd
}

func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.overlay != OverlayNone {
		if key.Matches(msg, m.keys.Escape) || key.Matches(msg, m.keys.Quit) {
			m.overlay = OverlayNone
		}
		return m, nil
	}

	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.overlay = OverlayHelp
		return m, nil

	case key.Matches(msg, m.keys.Pane):
		m.focus = (m.focus + 1) % 3
		m.syncFocus()
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
		return m, nil

	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
		return m, nil

	case key.Matches(msg, m.keys.Left):
		if m.focus == PaneCalendar {
			m.cal.MoveCursor(-1)
		}
		return m, nil

	case key.Matches(msg, m.keys.Right):
		if m.focus == PaneCalendar {
			m.cal.MoveCursor(1)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevMonth):
		m.month = m.month.AddDate(0, -1, 0)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.NextMonth):
		m.month = m.month.AddDate(0, 1, 0)
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.TabUpcoming):
		m.switchTab(engine.TabUpcoming)
		return m, nil

	case key.Matches(msg, m.keys.TabPrevious):
		m.switchTab(engine.TabPrevious)
		return m, nil

	case key.Matches(msg, m.keys.Enter):
		m.activate()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSelect):
		if m.focus == PaneTable {
			if id := m.tbl.CursorID(); id != "" {
				m.selection.Toggle(id)
				m.refresh()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.SelectAll):
		visible := engine.VisibleIDs(m.tbl.Rows)
		if m.selection.AllSelected(visible) {
			m.selection.Clear()
		} else {
			m.selection.SelectAll(visible)
		}
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.ClearSel):
		m.selection.Clear()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Hide):
		if m.selection.Actions(m.filters.Hidden).CanHide {
			m.selection.HideSelected(m.filters.Hidden)
			m.persist()
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.Unhide):
		if m.selection.Actions(m.filters.Hidden).CanUnhide {
			m.selection.UnhideSelected(m.filters.Hidden)
			m.persist()
			m.refresh()
		}
		return m, nil

	case key.Matches(msg, m.keys.ToggleNormal):
		m.toggleCategory(event.CategoryNormal)
		return m, nil

	case key.Matches(msg, m.keys.ToggleRecurring):
		m.toggleCategory(event.CategoryRecurring)
		return m, nil

	case key.Matches(msg, m.keys.ToggleHalfTerm):
		m.toggleCategory(event.CategoryHalfTerm)
		return m, nil

	case key.Matches(msg, m.keys.ToggleBookBag):
		m.toggleCategory(event.CategoryBookBag)
		return m, nil

	case key.Matches(msg, m.keys.CycleYear):
		m.filters.Year = nextYear(m.filters.Year)
		m.persist()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.ShowHidden):
		m.filters.ShowHidden = !m.filters.ShowHidden
		m.persist()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.ResetHidden):
		m.filters.Hidden = make(map[string]bool)
		m.persist()
		m.refresh()
		m.status = "Hidden events reset"
		return m, nil

	case key.Matches(msg, m.keys.Export):
		if err := export.WriteFile(m.exportPath, m.filtered); err != nil {
			m.status = "Export failed: " + err.Error()
		} else {
			m.status = fmt.Sprintf("Exported %d events to %s", len(m.filtered), m.exportPath)
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.startLoad(m.password, false, false)

	case key.Matches(msg, m.keys.Logout):
		m.st.ClearAuth()
		m.events = nil
		m.filtered = nil
		m.password = ""
		m.selection.Clear()
		m.mode = modeLocked
		m.auth = auth.New()
		return m, nil
	}

	return m, nil
}

func (m *Model) moveCursor(delta int) {
	switch m.focus {
	case PaneCalendar:
		m.cal.MoveCursor(7 * delta)
	case PaneWeek:
		m.wk.MoveCursor(delta)
	case PaneTable:
		m.tbl.MoveCursor(delta)
	}
}

// activate handles enter on the focused pane: a calendar day or week
// card jumps the table to its event (switching tabs when needed), a
// table row opens the detail overlay.
func (m *Model) activate() {
	switch m.focus {
	case PaneCalendar:
		cmd, ok := m.cal.Grid.Activate(m.cal.Cursor, m.clk.Now())
		if !ok {
			return
		}
		m.jumpToEvent(cmd.EventID, cmd.Tab)

	case PaneWeek:
		if id := m.wk.SelectedID(); id != "" {
			// Digest entries always start today or later.
			m.jumpToEvent(id, engine.TabUpcoming)
		}

	case PaneTable:
		if m.tbl.Cursor >= 0 && m.tbl.Cursor < len(m.tbl.Rows) {
			m.detail = detail.Model{Row: m.tbl.Rows[m.tbl.Cursor]}
			m.overlay = OverlayDetail
		}
	}
}

// jumpToEvent switches the table to the target tab, scrolls to the
// event, and moves focus to the table. Selection survives the tab
// switch.
func (m *Model) jumpToEvent(id string, tab engine.Tab) {
	if m.tab != tab {
		m.tab = tab
		m.refresh()
	}
	m.tbl.JumpTo(id)
	m.focus = PaneTable
	m.syncFocus()
}

func (m *Model) switchTab(tab engine.Tab) {
	if m.tab == tab {
		return
	}
	m.tab = tab
	m.tbl.HighlightID = ""
	m.refresh()
}

func (m *Model) toggleCategory(c event.Category) {
	m.filters.Categories[c] = !m.filters.Categories[c]
	m.persist()
	m.refresh()
}

func nextYear(year string) string {
	for i, opt := range yearOptions {
		if opt == year {
			return yearOptions[(i+1)%len(yearOptions)]
		}
	}
	return engine.YearAll
}

// persist writes the filter state, best-effort: a storage failure is
// surfaced in the status line but never blocks the in-memory update
// or the re-render.
func (m *Model) persist() {
	if err := m.st.SaveFilterState(m.filters); err != nil {
		m.status = "State not saved: " + err.Error()
	}
}

// refresh re-runs the whole pipeline: filter chain, then the three
// projections, then the derived selection facts.
func (m *Model) refresh() {
	now := m.clk.Now()
	m.filtered = engine.Filter(m.events, m.filters)

	m.cal.SetGrid(engine.ProjectMonth(m.filtered, m.month.Year(), m.month.Month(), m.filters.Hidden, now))
	m.wk.SetDigest(engine.ProjectWeek(m.filtered, now, m.filters.Hidden))

	rows := engine.ProjectTable(m.filtered, m.tab, now, m.filters.Hidden, m.selection.Set())
	m.tbl.SetRows(rows, m.tab)
	m.tbl.Bulk = m.selection.Actions(m.filters.Hidden)
	m.tbl.AllSelected = m.selection.AllSelected(engine.VisibleIDs(rows))

	m.syncFocus()
}

func (m *Model) syncFocus() {
	m.cal.Focused = m.focus == PaneCalendar
	m.wk.Focused = m.focus == PaneWeek
	m.tbl.Focused = m.focus == PaneTable
}

// View renders the full TUI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	switch m.mode {
	case modeLocked, modeLoading:
		return m.auth.View(m.width, m.height)
	}

	switch m.overlay {
	case OverlayHelp:
		return renderHelp(m.width)
	case OverlayDetail:
		return m.detail.View(m.width, m.height)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, m.cal.View(), " ", m.wk.View())
	sections := []string{
		top,
		m.tbl.View(),
		m.statusLine(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) statusLine() string {
	if m.status != "" {
		return theme.StyleSelected.Render("  " + m.status)
	}

	summary := fmt.Sprintf("  year:%s", m.filters.Year)
	if m.filters.ShowHidden {
		summary += "  showing hidden"
	}
	if n := len(m.filters.Hidden); n > 0 {
		summary += fmt.Sprintf("  %d hidden", n)
	}
	summary += "  |  tab:switch pane  space:select  a:all  H/U:hide/unhide  ?:help  q:quit"
	return theme.StyleDimmed.Render(summary)
}
