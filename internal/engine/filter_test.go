package engine

import (
	"testing"
	"time"

	"github.com/school-events/tui/internal/event"
)

func mkEvent(id, title string, start time.Time) event.Event {
	return event.Event{ID: id, Title: title, Start: start}
}

func ids(events []event.Event) map[string]bool {
	out := make(map[string]bool, len(events))
	for _, e := range events {
		out[e.ID] = true
	}
	return out
}

var mar1 = time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)

func TestFilter_Idempotent(t *testing.T) {
	events := []event.Event{
		mkEvent("a", "Half Term", mar1),
		mkEvent("b", "Year 3 Trip", mar1),
		{ID: "c", Title: "Swimming", Start: mar1, Recurring: true},
	}
	st := DefaultFilterState()
	st.Hidden["c"] = true

	once := Filter(events, st)
	twice := Filter(once, st)
	if len(once) != len(twice) {
		t.Fatalf("second pass changed length: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Errorf("second pass changed order at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilter_HiddenVisibility(t *testing.T) {
	events := []event.Event{
		mkEvent("visible", "Sports Day", mar1),
		mkEvent("buried", "Old Notice", mar1),
	}
	st := DefaultFilterState()
	st.Hidden["buried"] = true

	got := ids(Filter(events, st))
	if got["buried"] {
		t.Error("hidden event passed the filter with ShowHidden=false")
	}
	if !got["visible"] {
		t.Error("un-hidden event dropped")
	}

	st.ShowHidden = true
	got = ids(Filter(events, st))
	if !got["buried"] {
		t.Error("hidden event dropped with ShowHidden=true")
	}
}

func TestFilter_CategoryFlags(t *testing.T) {
	events := []event.Event{
		mkEvent("n", "Sports Day", mar1),
		{ID: "r", Title: "Swimming", Start: mar1, Recurring: true},
		mkEvent("h", "Half Term", mar1),
		mkEvent("b", "Book Bag day", mar1),
	}

	tests := []struct {
		name    string
		disable event.Category
		dropped string
	}{
		{"normal off", event.CategoryNormal, "n"},
		{"recurring off", event.CategoryRecurring, "r"},
		{"half term off", event.CategoryHalfTerm, "h"},
		{"book bag off", event.CategoryBookBag, "b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := DefaultFilterState()
			st.Categories[tt.disable] = false

			got := ids(Filter(events, st))
			if got[tt.dropped] {
				t.Errorf("event %q kept with its category disabled", tt.dropped)
			}
			if len(got) != len(events)-1 {
				t.Errorf("kept %d events, want %d", len(got), len(events)-1)
			}
		})
	}
}

func TestFilter_YearStage(t *testing.T) {
	tests := []struct {
		name  string
		year  string
		event event.Event
		want  bool
	}{
		{"all passes everything", YearAll, mkEvent("a", "Whatever", mar1), true},
		{"year word", "3", mkEvent("a", "Year 3 Trip", mar1), true},
		{"loose false positive", "3", mkEvent("a", "Year 13 Trip", mar1), true},
		{"yr abbreviation", "4", mkEvent("a", "Yr 4 swimming", mar1), true},
		{"yrs plural", "5", mkEvent("a", "Yrs 5 & 6 residential", mar1), true},
		{"single letter", "6", mkEvent("a", "Y6 SATs meeting", mar1), true},
		{"case insensitive", "2", mkEvent("a", "YEAR 2 phonics", mar1), true},
		{"match in notes", "1", event.Event{ID: "a", Title: "Trip", Notes: "Year 1 only", Start: mar1}, true},
		{"no year reference", "3", mkEvent("a", "Sports Day", mar1), false},
		{"number without keyword", "3", mkEvent("a", "Room 3 concert", mar1), false},
		{"reception keyword", YearReception, mkEvent("a", "Reception nativity", mar1), true},
		{"reception in notes", YearReception, event.Event{ID: "a", Title: "Nativity", Notes: "reception classes", Start: mar1}, true},
		{"reception no match", YearReception, mkEvent("a", "Year 3 Trip", mar1), false},
		{"missing title and notes", "3", event.Event{ID: "a", Start: mar1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := DefaultFilterState()
			st.Year = tt.year

			got := len(Filter([]event.Event{tt.event}, st)) == 1
			if got != tt.want {
				t.Errorf("year=%q title=%q: kept=%v, want %v", tt.year, tt.event.Title, got, tt.want)
			}
		})
	}
}

func TestFilter_StageOrderNarrows(t *testing.T) {
	// A hidden half-term event must be dropped by the visibility stage
	// even though its category flag is on and the year matches.
	events := []event.Event{mkEvent("a", "Year 3 Half Term", mar1)}
	st := DefaultFilterState()
	st.Year = "3"
	st.Hidden["a"] = true

	if got := Filter(events, st); len(got) != 0 {
		t.Errorf("kept %d events, want 0", len(got))
	}
}

func TestFilter_EndToEnd(t *testing.T) {
	events := []event.Event{mkEvent("1", "Half Term", time.Date(2024, 2, 12, 0, 0, 0, 0, time.Local))}
	st := DefaultFilterState()

	filtered := Filter(events, st)
	if len(filtered) != 1 {
		t.Fatalf("Filter() kept %d events, want 1", len(filtered))
	}

	grid := ProjectMonth(filtered, 2024, time.February, st.Hidden, time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local))
	cell := grid.Days[11] // Feb 12
	if len(cell.Events) != 1 {
		t.Fatalf("day 12 has %d events, want 1", len(cell.Events))
	}
	if cell.Events[0].Category != event.CategoryHalfTerm {
		t.Errorf("category = %v, want half-term", cell.Events[0].Category)
	}
	if cell.Events[0].Hidden {
		t.Error("event flagged hidden, want visible")
	}
}
