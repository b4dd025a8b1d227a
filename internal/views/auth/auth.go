// Package auth provides the password gate shown before the event set
// is unlocked.
package auth

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/school-events/tui/internal/theme"
)

// Model holds the login form state.
type Model struct {
	input    textinput.Model
	remember bool
	loading  bool
	errMsg   string
}

// New creates a focused password form.
func New() Model {
	ti := textinput.New()
	ti.Placeholder = "Password"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 128
	ti.Width = 32
	ti.Focus()
	return Model{input: ti}
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update forwards input events to the text field. Submit and
// remember-me toggling are handled by the parent keymap.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Password returns the typed password.
func (m Model) Password() string {
	return m.input.Value()
}

// Remember reports the remember-me toggle.
func (m Model) Remember() bool {
	return m.remember
}

// ToggleRemember flips the remember-me toggle.
func (m *Model) ToggleRemember() {
	m.remember = !m.remember
}

// StartLoading switches the form into its fetching state.
func (m *Model) StartLoading() {
	m.loading = true
	m.errMsg = ""
}

// Fail returns the form to input mode with an error message and the
// password cleared.
func (m *Model) Fail(msg string) {
	m.loading = false
	m.errMsg = msg
	m.input.SetValue("")
}

// View renders the form centered in the given area.
func (m Model) View(width, height int) string {
	title := theme.StyleHeader.Render("School Events")
	subtitle := theme.StyleDimmed.Render("Enter the calendar password to unlock")

	var body string
	if m.loading {
		body = theme.StyleDimmed.Render("Unlocking…")
	} else {
		check := "[ ]"
		if m.remember {
			check = "[x]"
		}
		lines := []string{
			m.input.View(),
			"",
			theme.StyleDimmed.Render(check + " remember for 7 days (ctrl+r)"),
		}
		if m.errMsg != "" {
			lines = append(lines, "", theme.StyleError.Render(m.errMsg))
		}
		body = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	card := theme.StyleBorder.Padding(1, 3).Render(
		lipgloss.JoinVertical(lipgloss.Center, title, subtitle, "", body),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
