package engine

import (
	"testing"
	"time"

	"github.com/school-events/tui/internal/event"
)

// Wednesday 2024-03-13 10:00. The week window runs to Saturday
// 2024-03-16 23:59:59.999.
var wednesday = time.Date(2024, 3, 13, 10, 0, 0, 0, time.Local)

func TestProjectWeek_Window(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		want  bool
	}{
		{"later today", time.Date(2024, 3, 13, 15, 0, 0, 0, time.Local), true},
		{"earlier today", time.Date(2024, 3, 13, 8, 0, 0, 0, time.Local), false},
		{"friday", time.Date(2024, 3, 15, 9, 0, 0, 0, time.Local), true},
		{"saturday evening", time.Date(2024, 3, 16, 20, 0, 0, 0, time.Local), true},
		{"sunday next week", time.Date(2024, 3, 17, 9, 0, 0, 0, time.Local), false},
		{"last week", time.Date(2024, 3, 6, 9, 0, 0, 0, time.Local), false},
		{"no date", time.Time{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digest := ProjectWeek([]event.Event{mkEvent("a", "Trip", tt.start)}, wednesday, nil)
			if got := len(digest.Cards) == 1; got != tt.want {
				t.Errorf("included=%v, want %v", got, tt.want)
			}
		})
	}
}

func TestProjectWeek_SaturdayNow(t *testing.T) {
	// On Saturday the window is just the rest of that day.
	saturday := time.Date(2024, 3, 16, 9, 0, 0, 0, time.Local)
	events := []event.Event{
		mkEvent("today", "Fair", time.Date(2024, 3, 16, 14, 0, 0, 0, time.Local)),
		mkEvent("tomorrow", "Service", time.Date(2024, 3, 17, 10, 0, 0, 0, time.Local)),
	}

	digest := ProjectWeek(events, saturday, nil)
	if len(digest.Cards) != 1 || digest.Cards[0].Event.ID != "today" {
		t.Fatalf("got %d cards, want only the same-day event", len(digest.Cards))
	}
}

func TestProjectWeek_SpanInProgressExcluded(t *testing.T) {
	// A multi-day event that started before the window is not pulled in
	// by its span: the digest matches on start instant only. The month
	// grid is where span coverage lives.
	events := []event.Event{{
		ID:    "camp",
		Title: "Residential",
		Start: time.Date(2024, 3, 11, 9, 0, 0, 0, time.Local),
		End:   time.Date(2024, 3, 15, 0, 0, 0, 0, time.Local),
	}}

	digest := ProjectWeek(events, wednesday, nil)
	if !digest.Empty {
		t.Error("in-progress span included, want start-instant matching only")
	}
}

func TestProjectWeek_SortedAscending(t *testing.T) {
	events := []event.Event{
		mkEvent("c", "Third", time.Date(2024, 3, 16, 9, 0, 0, 0, time.Local)),
		mkEvent("a", "First", time.Date(2024, 3, 13, 12, 0, 0, 0, time.Local)),
		mkEvent("b", "Second", time.Date(2024, 3, 14, 9, 0, 0, 0, time.Local)),
	}

	digest := ProjectWeek(events, wednesday, nil)
	if len(digest.Cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(digest.Cards))
	}
	for i, want := range []string{"a", "b", "c"} {
		if digest.Cards[i].Event.ID != want {
			t.Errorf("card %d = %s, want %s", i, digest.Cards[i].Event.ID, want)
		}
	}
}

func TestProjectWeek_EmptySignal(t *testing.T) {
	digest := ProjectWeek(nil, wednesday, nil)
	if !digest.Empty {
		t.Error("Empty = false for no events")
	}

	digest = ProjectWeek([]event.Event{mkEvent("a", "Trip", wednesday.Add(time.Hour))}, wednesday, nil)
	if digest.Empty {
		t.Error("Empty = true with a card present")
	}
}

func TestProjectWeek_HiddenFlag(t *testing.T) {
	events := []event.Event{mkEvent("dim", "Old", wednesday.Add(2 * time.Hour))}
	digest := ProjectWeek(events, wednesday, map[string]bool{"dim": true})
	if len(digest.Cards) != 1 || !digest.Cards[0].Hidden {
		t.Error("hidden flag not carried onto card")
	}
}
