// Package detail provides the single-event overlay with the full
// record: dates, notes, extraction metadata, and email provenance.
package detail

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/school-events/tui/internal/engine"
	"github.com/school-events/tui/internal/theme"
)

const dateFormat = "Monday, January 2 2006"

// Model holds the event shown in the overlay.
type Model struct {
	Row engine.Row
}

// View renders the detail card.
func (m Model) View(width, height int) string {
	e := m.Row.Event

	title := theme.StyleHeader.Render(e.Title)
	if m.Row.Hidden {
		title += theme.StyleDimmed.Render("  (hidden)")
	}

	when := "No date"
	if !e.Start.IsZero() {
		when = e.Start.Format(dateFormat)
		if e.Spans() {
			when += " → " + e.End.Format(dateFormat)
		}
		if e.AllDay {
			when += "  (all day)"
		}
	}

	lines := []string{
		title,
		theme.StyleToday.Render(when),
		theme.Dot(m.Row.Category, m.Row.Hidden) + " " + m.Row.Category.String(),
		"",
	}

	if e.Notes != "" {
		lines = append(lines, e.Notes, "")
	}

	lines = append(lines,
		theme.StyleDimmed.Render("Source: "+m.Row.SourceSubject),
		theme.StyleDimmed.Render("Received: "+m.Row.SourceReceived),
	)
	if e.Status != "" {
		lines = append(lines, theme.StyleDimmed.Render(
			fmt.Sprintf("Status: %s (confidence %.0f%%)", e.Status, e.Confidence*100)))
	}
	lines = append(lines, "", theme.StyleDimmed.Render("esc to close"))

	card := theme.StyleBorder.Padding(1, 3).Width(min(width-4, 64)).Render(
		lipgloss.JoinVertical(lipgloss.Left, lines...))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
