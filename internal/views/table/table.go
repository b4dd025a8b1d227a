// Package table renders the upcoming/previous event table with
// per-row checkboxes and the bulk action bar. Rows arrive fully
// resolved from the engine; this package lays them out and nothing
// more.
package table

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/school-events/tui/internal/engine"
	"github.com/school-events/tui/internal/theme"
)

const rowDateFormat = "Mon, Jan 2"

// Column widths (fixed layout).
const (
	colCheck = 4
	colDate  = 13
	colTitle = 34
	colWhere = 28
)

// Model holds the table view state.
type Model struct {
	Width   int
	Height  int
	Focused bool

	Tab         engine.Tab
	Rows        []engine.Row
	Bulk        engine.BulkActions
	AllSelected bool

	// HighlightID marks the row a calendar or digest jump landed on.
	HighlightID string

	Cursor int
	offset int
}

// New creates an empty table on the upcoming tab.
func New() Model {
	return Model{Height: 12}
}

// SetRows installs a new projection for the given tab, clamping the
// cursor and scroll.
func (m *Model) SetRows(rows []engine.Row, tab engine.Tab) {
	m.Rows = rows
	m.Tab = tab
	if m.Cursor >= len(rows) {
		m.Cursor = len(rows) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.scrollIntoView()
}

// MoveCursor shifts the selected row by delta.
func (m *Model) MoveCursor(delta int) {
	if len(m.Rows) == 0 {
		return
	}
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if m.Cursor >= len(m.Rows) {
		m.Cursor = len(m.Rows) - 1
	}
	m.scrollIntoView()
}

// CursorID returns the event id under the cursor, or "".
func (m Model) CursorID() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Rows) {
		return ""
	}
	return m.Rows[m.Cursor].Event.ID
}

// JumpTo moves the cursor to the row with the given event id,
// reporting whether it was found.
func (m *Model) JumpTo(id string) bool {
	for i, r := range m.Rows {
		if r.Event.ID == id {
			m.Cursor = i
			m.HighlightID = id
			m.scrollIntoView()
			return true
		}
	}
	return false
}

func (m *Model) scrollIntoView() {
	visible := m.visibleRows()
	if m.Cursor < m.offset {
		m.offset = m.Cursor
	}
	if m.Cursor >= m.offset+visible {
		m.offset = m.Cursor - visible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}

func (m Model) visibleRows() int {
	v := m.Height - 4 // tab bar, header, border
	if v < 1 {
		v = 1
	}
	return v
}

// View renders the tab bar, header, rows, and bulk bar.
func (m Model) View() string {
	sections := []string{m.renderTabs(), m.renderHeader()}

	if len(m.Rows) == 0 {
		sections = append(sections,
			theme.StyleDimmed.Render(fmt.Sprintf("  No %s events found.", m.Tab)))
	} else {
		visible := m.visibleRows()
		end := m.offset + visible
		if end > len(m.Rows) {
			end = len(m.Rows)
		}
		for i := m.offset; i < end; i++ {
			sections = append(sections, m.renderRow(i))
		}
		if end < len(m.Rows) {
			sections = append(sections,
				theme.StyleDimmed.Render(fmt.Sprintf("  … %d more", len(m.Rows)-end)))
		}
	}

	if m.Bulk.Count > 0 {
		sections = append(sections, m.renderBulkBar())
	}

	return theme.StyleBorder.Padding(0, 1).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderTabs() string {
	upcoming := " Upcoming "
	previous := " Previous "
	switch m.Tab {
	case engine.TabUpcoming:
		upcoming = theme.StyleSelected.Reverse(true).Render(upcoming)
		previous = theme.StyleDimmed.Render(previous)
	case engine.TabPrevious:
		upcoming = theme.StyleDimmed.Render(upcoming)
		previous = theme.StyleSelected.Reverse(true).Render(previous)
	}

	marker := ""
	if m.Focused {
		marker = theme.StyleToday.Render("▸ ")
	}
	return marker + upcoming + " " + previous
}

func (m Model) renderHeader() string {
	all := "[ ]"
	if m.AllSelected {
		all = "[x]"
	}
	return theme.StyleDimmed.Render(
		fmt.Sprintf("%-*s%-*s%-*s%-*s%s", colCheck, all, colDate, "Date", colTitle, "Event", colWhere, "Source", "Notes"))
}

func (m Model) renderRow(i int) string {
	r := m.Rows[i]

	// The row is styled as one unit after layout; styling individual
	// fields first would break the fixed-width padding.
	check := "[ ]"
	if r.Selected {
		check = "[x]"
	}

	title := r.Event.Title
	if r.Event.Recurring {
		title = "↻ " + title
	}
	title = clip(title, colTitle-2)

	source := clip(r.SourceSubject, colWhere-2) + " " + r.SourceReceived
	notes := clip(r.Event.Notes, 30)

	line := fmt.Sprintf("%-*s%-*s%-*s%-*s%s",
		colCheck, check,
		colDate, r.Event.Start.Format(rowDateFormat),
		colTitle, title,
		colWhere, clip(source, colWhere-1),
		notes)

	style := lipgloss.NewStyle().Foreground(theme.CategoryColor(r.Category))
	switch {
	case r.Hidden:
		style = theme.StyleDimmed
	case r.Event.ID == m.HighlightID:
		style = lipgloss.NewStyle().Foreground(theme.ColorSelected).Bold(true)
	}
	if m.Focused && i == m.Cursor {
		style = style.Reverse(true)
	}
	return style.Render(line)
}

func (m Model) renderBulkBar() string {
	noun := "items"
	if m.Bulk.Count == 1 {
		noun = "item"
	}
	parts := []string{
		theme.StyleSelected.Render(fmt.Sprintf("%d %s selected", m.Bulk.Count, noun)),
	}
	if m.Bulk.CanHide {
		parts = append(parts, "H:hide")
	}
	if m.Bulk.CanUnhide {
		parts = append(parts, "U:unhide")
	}
	parts = append(parts, "c:clear")
	return strings.Join(parts, theme.StyleDimmed.Render("  |  "))
}

func clip(s string, max int) string {
	if max < 1 || len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
