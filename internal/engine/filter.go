// Package engine is the view-state core: a pure transformation layer
// from the loaded event set plus the persisted filter state into the
// exact rows, cells, and cards each view renders. The three projectors
// (month grid, weekly digest, table) all consume the output of one
// shared filter chain, so an event is either visible in all of them or
// in none.
package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/school-events/tui/internal/event"
)

// YearAll disables the year filter; YearReception matches by the word
// "reception" instead of a year number.
const (
	YearAll       = "All"
	YearReception = "Reception"
)

// FilterState is the persisted set of toggles controlling visibility.
// Mutated only through explicit user actions; the engine never writes
// to it.
type FilterState struct {
	// Categories maps each category to its enabled flag. A category
	// absent from the map is treated as disabled.
	Categories map[event.Category]bool

	// Year is YearAll, YearReception, or a year-group number ("1".."13").
	Year string

	// ShowHidden passes hidden events through the filter (tagged by the
	// projectors for dimmed rendering) instead of dropping them.
	ShowHidden bool

	// Hidden is the user-curated set of suppressed event ids.
	Hidden map[string]bool
}

// DefaultFilterState enables every category, selects all years, and
// keeps hidden events out of view.
func DefaultFilterState() FilterState {
	return FilterState{
		Categories: map[event.Category]bool{
			event.CategoryNormal:    true,
			event.CategoryRecurring: true,
			event.CategoryHalfTerm:  true,
			event.CategoryBookBag:   true,
		},
		Year:   YearAll,
		Hidden: make(map[string]bool),
	}
}

// Filter narrows events through three stages in fixed order: hidden-id
// visibility, category flags, then the year filter. Pure; the input
// slice is never modified and output order is unspecified (each
// projector sorts for itself).
func Filter(events []event.Event, st FilterState) []event.Event {
	out := make([]event.Event, 0, len(events))

	yearMatch := yearMatcher(st.Year)

	for _, e := range events {
		if !st.ShowHidden && st.Hidden[e.ID] {
			continue
		}
		if !st.Categories[event.Classify(e)] {
			continue
		}
		if !yearMatch(e) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// yearMatcher builds the predicate for the year stage. The numeric
// match is a loose free-text pattern over title+notes: "year", "yr",
// "yrs", or "y", followed by anything, followed by the number.
// Permissive on purpose: "Year 13 Trip" matches a filter of "3".
// That is the documented behavior of the year selector, not a bug.
func yearMatcher(year string) func(event.Event) bool {
	switch year {
	case "", YearAll:
		return func(event.Event) bool { return true }
	case YearReception:
		return func(e event.Event) bool {
			return strings.Contains(strings.ToLower(searchText(e)), "reception")
		}
	}

	re, err := regexp.Compile(fmt.Sprintf(`(?i)(year|yr|yrs|y)\s*.*%s`, regexp.QuoteMeta(year)))
	if err != nil {
		// Unmatchable selector, e.g. corrupted persisted state. Treat as
		// matching nothing rather than failing the whole render.
		return func(event.Event) bool { return false }
	}
	return func(e event.Event) bool {
		return re.MatchString(searchText(e))
	}
}

// searchText is the haystack for year matching: title and notes joined
// with a space, mirroring how the year reference is written in the
// source emails ("Y4 swimming", "Years 5 & 6 residential").
func searchText(e event.Event) string {
	return e.Title + " " + e.Notes
}
