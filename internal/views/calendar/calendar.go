// Package calendar renders the month grid: a Sunday-first layout with
// category dots per day, produced entirely from the engine's month
// projection. No filtering happens here.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/school-events/tui/internal/engine"
	"github.com/school-events/tui/internal/theme"
)

const cellWidth = 6

var weekdayHeader = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Model holds the month grid view state.
type Model struct {
	Grid    engine.MonthGrid
	Focused bool

	// Cursor is the selected day of the month, 1-based.
	Cursor int
}

// New creates a grid with the cursor on day 1.
func New() Model {
	return Model{Cursor: 1}
}

// SetGrid installs a new projection, clamping the cursor into the
// month.
func (m *Model) SetGrid(g engine.MonthGrid) {
	m.Grid = g
	if m.Cursor < 1 {
		m.Cursor = 1
	}
	if m.Cursor > len(g.Days) {
		m.Cursor = len(g.Days)
	}
}

// MoveCursor shifts the selected day by delta, clamped to the month.
func (m *Model) MoveCursor(delta int) {
	m.Cursor += delta
	if m.Cursor < 1 {
		m.Cursor = 1
	}
	if m.Cursor > len(m.Grid.Days) {
		m.Cursor = len(m.Grid.Days)
	}
}

// View renders the grid.
func (m Model) View() string {
	title := fmt.Sprintf("%s %d", m.Grid.Month, m.Grid.Year)
	header := theme.StyleHeader.Render(title)
	if m.Focused {
		header = theme.StyleToday.Render("▸ ") + header
	}

	var head strings.Builder
	for _, d := range weekdayHeader {
		head.WriteString(theme.StyleDimmed.Render(pad(d)))
	}

	var rows []string
	var row strings.Builder
	col := 0
	writeCell := func(cell string) {
		row.WriteString(cell)
		col++
		if col == 7 {
			rows = append(rows, row.String())
			row.Reset()
			col = 0
		}
	}

	for i := 0; i < m.Grid.Leading; i++ {
		writeCell(pad(""))
	}
	for _, day := range m.Grid.Days {
		writeCell(m.renderDay(day))
	}
	if col > 0 {
		rows = append(rows, row.String())
	}

	grid := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{header, head.String()}, rows...)...)
	return theme.StyleBorder.Padding(0, 1).Render(grid)
}

func (m Model) renderDay(day engine.DayCell) string {
	label := fmt.Sprintf("%2d", day.Day)

	style := lipgloss.NewStyle()
	switch {
	case m.Focused && day.Day == m.Cursor:
		style = style.Reverse(true)
	case day.Today:
		style = theme.StyleToday
	}

	dots := ""
	shown := 0
	for _, de := range day.Events {
		if shown == 3 {
			break
		}
		dots += theme.Dot(de.Category, de.Hidden)
		shown++
	}
	cell := style.Render(label) + dots
	// Pad manually: the dot runes are styled, so lipgloss width math
	// must run on the rendered string.
	gap := cellWidth - 2 - shown
	if gap > 0 {
		cell += strings.Repeat(" ", gap)
	}
	return cell
}

func pad(s string) string {
	return fmt.Sprintf("%-*s", cellWidth, s)
}
