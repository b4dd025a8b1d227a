package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard bindings for the TUI.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding

	Pane        key.Binding
	TabUpcoming key.Binding
	TabPrevious key.Binding
	PrevMonth   key.Binding
	NextMonth   key.Binding

	ToggleSelect key.Binding
	SelectAll    key.Binding
	ClearSel     key.Binding
	Hide         key.Binding
	Unhide       key.Binding

	ToggleNormal    key.Binding
	ToggleRecurring key.Binding
	ToggleHalfTerm  key.Binding
	ToggleBookBag   key.Binding
	CycleYear       key.Binding
	ShowHidden      key.Binding
	ResetHidden     key.Binding

	Export   key.Binding
	Reload   key.Binding
	Logout   key.Binding
	Remember key.Binding
	Help     key.Binding
	Escape   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open / jump to event"),
		),
		Pane: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "cycle pane"),
		),
		TabUpcoming: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "upcoming tab"),
		),
		TabPrevious: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "previous tab"),
		),
		PrevMonth: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous month"),
		),
		NextMonth: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next month"),
		),
		ToggleSelect: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select row"),
		),
		SelectAll: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "select all visible"),
		),
		ClearSel: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear selection"),
		),
		Hide: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "hide selected"),
		),
		Unhide: key.NewBinding(
			key.WithKeys("U"),
			key.WithHelp("U", "unhide selected"),
		),
		ToggleNormal: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle normal"),
		),
		ToggleRecurring: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "toggle recurring"),
		),
		ToggleHalfTerm: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle half term"),
		),
		ToggleBookBag: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "toggle book bag"),
		),
		CycleYear: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "cycle year filter"),
		),
		ShowHidden: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "show hidden"),
		),
		ResetHidden: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "reset hidden"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "export ICS"),
		),
		Reload: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "reload data"),
		),
		Logout: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "log out"),
		),
		Remember: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "remember me"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close overlay"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
