// Package week renders the "rest of this week" digest cards.
package week

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/school-events/tui/internal/engine"
	"github.com/school-events/tui/internal/theme"
)

const cardDateFormat = "Mon, Jan 2"

// Model holds the weekly digest view state.
type Model struct {
	Digest  engine.WeekDigest
	Focused bool
	Width   int

	// Cursor indexes the selected card.
	Cursor int
}

// New creates an empty digest view.
func New() Model {
	return Model{Width: 34}
}

// SetDigest installs a new projection, clamping the cursor.
func (m *Model) SetDigest(d engine.WeekDigest) {
	m.Digest = d
	if m.Cursor >= len(d.Cards) {
		m.Cursor = len(d.Cards) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

// MoveCursor shifts the selected card by delta.
func (m *Model) MoveCursor(delta int) {
	m.Cursor += delta
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	if max := len(m.Digest.Cards) - 1; m.Cursor > max && max >= 0 {
		m.Cursor = max
	}
}

// SelectedID returns the event id under the cursor, or "".
func (m Model) SelectedID() string {
	if m.Cursor < 0 || m.Cursor >= len(m.Digest.Cards) {
		return ""
	}
	return m.Digest.Cards[m.Cursor].Event.ID
}

// View renders the digest column.
func (m Model) View() string {
	header := theme.StyleHeader.Render("This Week")
	if m.Focused {
		header = theme.StyleToday.Render("▸ ") + header
	}

	if m.Digest.Empty {
		return theme.StyleBorder.Padding(0, 1).Width(m.Width).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				header,
				"",
				theme.StyleDimmed.Render("No upcoming events this week."),
			))
	}

	sections := []string{header}
	for i, card := range m.Digest.Cards {
		sections = append(sections, m.renderCard(i, card))
	}
	return theme.StyleBorder.Padding(0, 1).Width(m.Width).Render(
		lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m Model) renderCard(idx int, card engine.WeekCard) string {
	date := card.Event.Start.Format(cardDateFormat)
	notes := card.Event.Notes
	if notes == "" {
		notes = "No description available."
	}
	notes = truncate(notes, m.Width-6)

	dateStyle := theme.StyleToday
	titleStyle := theme.StyleHeader
	notesStyle := theme.StyleDimmed
	if card.Hidden {
		dateStyle = theme.StyleDimmed
		titleStyle = theme.StyleDimmed
	}

	marker := "  "
	if m.Focused && idx == m.Cursor {
		marker = theme.StyleToday.Render("▸ ")
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		"",
		marker+dateStyle.Render(date),
		"  "+titleStyle.Render(truncate(card.Event.Title, m.Width-6)),
		"  "+notesStyle.Render(notes),
	)
}

func truncate(s string, max int) string {
	if max < 1 || len(s) <= max {
		return s
	}
	return strings.TrimSpace(s[:max-1]) + "…"
}
