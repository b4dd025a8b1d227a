// Package theme provides the Lip Gloss color palette and reusable styles
// for the school events TUI. It sits below the view packages and
// imports only the event types, so it can never form a cycle.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/school-events/tui/internal/event"
)

// Category colors.
var (
	ColorNormal    = lipgloss.Color("#3b82f6")
	ColorRecurring = lipgloss.Color("#22c55e")
	ColorHalfTerm  = lipgloss.Color("#f59e0b")
	ColorBookBag   = lipgloss.Color("#a855f7")
	ColorDefault   = lipgloss.Color("#9ca3af")
)

// UI chrome colors.
var (
	ColorBorder   = lipgloss.Color("#4b5563")
	ColorDimmed   = lipgloss.Color("#6b7280")
	ColorBright   = lipgloss.Color("#f9fafb")
	ColorToday    = lipgloss.Color("#06b6d4")
	ColorSelected = lipgloss.Color("#f59e0b")
	ColorDanger   = lipgloss.Color("#dc2626")
)

// Shared styles.
var (
	StyleBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorBright).
			Bold(true)

	StyleDimmed = lipgloss.NewStyle().
			Foreground(ColorDimmed)

	StyleSelected = lipgloss.NewStyle().
			Foreground(ColorSelected).
			Bold(true)

	StyleToday = lipgloss.NewStyle().
			Foreground(ColorToday).
			Bold(true)

	StyleError = lipgloss.NewStyle().
			Foreground(ColorDanger)
)

// CategoryColor returns the color for an event category.
func CategoryColor(c event.Category) lipgloss.Color {
	switch c {
	case event.CategoryRecurring:
		return ColorRecurring
	case event.CategoryHalfTerm:
		return ColorHalfTerm
	case event.CategoryBookBag:
		return ColorBookBag
	case event.CategoryNormal:
		return ColorNormal
	default:
		return ColorDefault
	}
}

// Dot renders a category marker. Hidden events get a hollow dot in the
// dimmed chrome color instead of the category color.
func Dot(c event.Category, hidden bool) string {
	if hidden {
		return StyleDimmed.Render("○")
	}
	return lipgloss.NewStyle().Foreground(CategoryColor(c)).Render("●")
}
