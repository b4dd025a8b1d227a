package export

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/school-events/tui/internal/event"
)

func TestICS_PointEvent(t *testing.T) {
	events := []event.Event{{
		ID:    "evt-1",
		Title: "Sports Day",
		Notes: "Wear PE kit",
		Start: time.Date(2024, 6, 20, 9, 0, 0, 0, time.UTC),
	}}

	out := ICS(events)
	for _, want := range []string{"BEGIN:VEVENT", "SUMMARY:Sports Day", "DESCRIPTION:Wear PE kit", "UID:evt-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestICS_SpanExportedAllDay(t *testing.T) {
	events := []event.Event{{
		ID:    "trip",
		Title: "Residential",
		Start: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
	}}

	out := ICS(events)
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20240301") {
		t.Errorf("span start not exported as date value:\n%s", out)
	}
	// Inclusive March 3 becomes exclusive March 4.
	if !strings.Contains(out, "DTEND;VALUE=DATE:20240304") {
		t.Errorf("span end not exclusive day after:\n%s", out)
	}
}

func TestICS_SkipsUndated(t *testing.T) {
	events := []event.Event{
		{ID: "nodate", Title: "Undated"},
		{ID: "ok", Title: "Dated", Start: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)},
	}

	out := ICS(events)
	if strings.Contains(out, "nodate") {
		t.Error("undated event exported")
	}
	if !strings.Contains(out, "UID:ok") {
		t.Error("dated event missing")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.ics")
	events := []event.Event{{ID: "a", Title: "Fair", Start: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)}}

	if err := WriteFile(path, events); err != nil {
		t.Fatalf("WriteFile() error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "BEGIN:VCALENDAR") {
		t.Error("file is not an iCalendar document")
	}
}
