package app

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# School Events

## Navigation

| Key | Action |
|-----|--------|
| tab | cycle focus between calendar, week, and table |
| h/j/k/l, arrows | move within the focused pane |
| [ / ] | previous / next month |
| 1 / 2 | upcoming / previous tab |
| enter | open a day or event |
| esc | close an overlay |

## Filtering

| Key | Action |
|-----|--------|
| n / r / t / b | toggle normal, recurring, half term, book bag |
| y | cycle the year group filter |
| s | show or hide hidden events |

## Selection

| Key | Action |
|-----|--------|
| space | select the event under the cursor |
| a | select or deselect all visible events |
| c | clear the selection |
| H / U | hide / unhide the selected events |
| R | reset all hidden events |

## Session

| Key | Action |
|-----|--------|
| e | export the filtered events to an iCalendar file |
| ctrl+l | reload events from the source |
| L | log out and forget the saved session |
| q | quit |
`

// renderHelp renders the key reference overlay. Glamour failures fall
// back to the raw markdown, which is still readable.
func renderHelp(width int) string {
	wrap := width - 4
	if wrap > 80 {
		wrap = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
