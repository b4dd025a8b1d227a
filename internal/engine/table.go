package engine

import (
	"sort"
	"strings"
	"time"

	"github.com/school-events/tui/internal/event"
)

// Tab partitions the table view relative to today.
type Tab int

const (
	TabUpcoming Tab = iota
	TabPrevious
)

var tabNames = map[Tab]string{
	TabUpcoming: "upcoming",
	TabPrevious: "previous",
}

func (t Tab) String() string {
	if s, ok := tabNames[t]; ok {
		return s
	}
	return "unknown"
}

// TabFromName parses a persisted tab name, defaulting to upcoming.
func TabFromName(s string) Tab {
	if s == tabNames[TabPrevious] {
		return TabPrevious
	}
	return TabUpcoming
}

// Row is one display-ready table line with every derived flag
// precomputed; the renderer applies styling only.
type Row struct {
	Event    event.Event
	Category event.Category
	Hidden   bool
	Selected bool

	// Provenance display pair. SourceSubject has any leading "Fwd: "
	// stripped; SourceReceived is pre-formatted, or the not-available
	// marker when the record carries no received-at instant.
	SourceSubject  string
	SourceReceived string
}

// NotAvailable marks absent provenance fields.
const NotAvailable = "N/A"

const receivedAtFormat = "Jan 2, 03:04 PM"

// ProjectTable partitions the filtered events by start date against a
// time-truncated today (upcoming is start >= today, previous is
// start < today) and sorts upcoming ascending, previous descending.
// The sort is stable: equal start instants keep their input order.
// Events without a parseable start date fall in neither tab.
func ProjectTable(filtered []event.Event, tab Tab, today time.Time, hidden, selected map[string]bool) []Row {
	day := startOfDay(today)

	var picked []event.Event
	for _, e := range filtered {
		if e.Start.IsZero() {
			continue
		}
		if tab == TabUpcoming && !e.Start.Before(day) {
			picked = append(picked, e)
		}
		if tab == TabPrevious && e.Start.Before(day) {
			picked = append(picked, e)
		}
	}

	sort.SliceStable(picked, func(i, j int) bool {
		if tab == TabUpcoming {
			return picked[i].Start.Before(picked[j].Start)
		}
		return picked[j].Start.Before(picked[i].Start)
	})

	rows := make([]Row, 0, len(picked))
	for _, e := range picked {
		rows = append(rows, Row{
			Event:          e,
			Category:       event.Classify(e),
			Hidden:         hidden[e.ID],
			Selected:       selected[e.ID],
			SourceSubject:  sourceSubject(e),
			SourceReceived: sourceReceived(e),
		})
	}
	return rows
}

// VisibleIDs returns the ids of the rows, in display order. This is the
// exact set select-all operates on.
func VisibleIDs(rows []Row) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.Event.ID)
	}
	return ids
}

func sourceSubject(e event.Event) string {
	s := e.SourceEmailSubject
	if s == "" {
		return NotAvailable
	}
	return strings.TrimPrefix(s, "Fwd: ")
}

func sourceReceived(e event.Event) string {
	if e.SourceEmailReceivedAt.IsZero() {
		return NotAvailable
	}
	return e.SourceEmailReceivedAt.Format(receivedAtFormat)
}

// startOfDay truncates t to midnight in its own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// endOfDay is the last representable instant of t's calendar day.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
}
