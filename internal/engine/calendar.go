package engine

import (
	"sort"
	"time"

	"github.com/school-events/tui/internal/event"
)

// DayEvent is one event covering a calendar day, with its dot color
// classification and hidden flag resolved.
type DayEvent struct {
	Event    event.Event
	Category event.Category
	Hidden   bool
}

// DayCell is one day of the month grid.
type DayCell struct {
	Day    int // 1-based day of month
	Events []DayEvent

	// AnyHidden is set when at least one covering event is hidden, so
	// the grid can dim the day's dot cluster.
	AnyHidden bool
	Today     bool
}

// MonthGrid is the calendar projection for one month. Rendering lays
// out Leading blank cells, then Days, in a Sunday-first seven-column
// grid; no trailing padding is produced.
type MonthGrid struct {
	Year  int
	Month time.Month

	// Leading is the weekday index of the 1st (Sunday = 0), i.e. the
	// number of blank cells before day 1.
	Leading int
	Days    []DayCell
}

// ProjectMonth buckets the filtered events into the days of the given
// month. An event covers day D when D is the event's start day, or,
// for a spanning event, when D falls inside [start 00:00,
// end 23:59:59.999] inclusive. A span whose end precedes its start
// covers no day at all. Each day's events are ordered by start
// instant, so Events[0] is the chronologically first.
func ProjectMonth(filtered []event.Event, year int, month time.Month, hidden map[string]bool, today time.Time) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()

	grid := MonthGrid{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    make([]DayCell, 0, daysInMonth),
	}

	for day := 1; day <= daysInMonth; day++ {
		dayStart := time.Date(year, month, day, 0, 0, 0, 0, time.Local)

		cell := DayCell{
			Day:   day,
			Today: sameDay(dayStart, today),
		}
		for _, e := range filtered {
			if !covers(e, dayStart) {
				continue
			}
			de := DayEvent{
				Event:    e,
				Category: event.Classify(e),
				Hidden:   hidden[e.ID],
			}
			cell.Events = append(cell.Events, de)
			if de.Hidden {
				cell.AnyHidden = true
			}
		}
		sort.SliceStable(cell.Events, func(i, j int) bool {
			return cell.Events[i].Event.Start.Before(cell.Events[j].Event.Start)
		})
		grid.Days = append(grid.Days, cell)
	}
	return grid
}

// covers reports whether the event occupies the calendar day starting
// at dayStart. Time-of-day on the start instant is ignored.
func covers(e event.Event, dayStart time.Time) bool {
	if e.Start.IsZero() {
		return false
	}
	start := startOfDay(e.Start)
	if !e.Spans() {
		return dayStart.Equal(start)
	}
	end := endOfDay(e.End)
	return !dayStart.Before(start) && !dayStart.After(end)
}

// DayCommand is the cross-view side effect of activating a day with
// events: the coordinator switches the table to Tab if needed, then
// scrolls to and highlights EventID. The projector only describes the
// action; it performs none of it.
type DayCommand struct {
	EventID string
	Tab     Tab
}

// Activate resolves a day click into a DayCommand targeting the day's
// chronologically-first event. The target tab is upcoming when that
// event starts today or later, previous otherwise. Returns false for
// out-of-range days and days without events.
func (g MonthGrid) Activate(day int, today time.Time) (DayCommand, bool) {
	if day < 1 || day > len(g.Days) {
		return DayCommand{}, false
	}
	cell := g.Days[day-1]
	if len(cell.Events) == 0 {
		return DayCommand{}, false
	}

	first := cell.Events[0].Event
	tab := TabPrevious
	if !first.Start.Before(startOfDay(today)) {
		tab = TabUpcoming
	}
	return DayCommand{EventID: first.ID, Tab: tab}, true
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
