package event

import (
	"encoding/json"
	"testing"
	"time"
)

func TestUnmarshal_CanonicalFields(t *testing.T) {
	data := []byte(`{
		"id": "evt-1",
		"title": "Year 3 Trip",
		"startDate": "2024-03-01T09:00:00",
		"endDate": "2024-03-03",
		"notes": "Bring packed lunch",
		"isRecurring": true,
		"allDay": false,
		"confidence": 0.92,
		"status": "CONFIRMED",
		"sourceEmailId": "msg-77",
		"sourceEmailSubject": "Fwd: Trip reminder",
		"sourceEmailReceivedAt": "2024-02-20T08:15:00"
	}`)

	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if e.ID != "evt-1" {
		t.Errorf("ID = %q, want evt-1", e.ID)
	}
	if !e.Recurring {
		t.Error("Recurring = false, want true")
	}
	want := time.Date(2024, 3, 1, 9, 0, 0, 0, time.Local)
	if !e.Start.Equal(want) {
		t.Errorf("Start = %v, want %v", e.Start, want)
	}
	if !e.Spans() {
		t.Error("Spans() = false, want true")
	}
	if e.Confidence != 0.92 {
		t.Errorf("Confidence = %v, want 0.92", e.Confidence)
	}
}

func TestUnmarshal_LegacyRecurringSpelling(t *testing.T) {
	tests := []struct {
		name string
		json string
		want bool
	}{
		{"legacy bool true", `{"id":"a","recurring":true}`, true},
		{"legacy bool false", `{"id":"a","recurring":false}`, false},
		{"legacy int one", `{"id":"a","recurring":1}`, true},
		{"legacy int zero", `{"id":"a","recurring":0}`, false},
		{"canonical wins", `{"id":"a","isRecurring":true,"recurring":false}`, true},
		{"absent", `{"id":"a"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e Event
			if err := json.Unmarshal([]byte(tt.json), &e); err != nil {
				t.Fatalf("Unmarshal() error: %v", err)
			}
			if e.Recurring != tt.want {
				t.Errorf("Recurring = %v, want %v", e.Recurring, tt.want)
			}
		})
	}
}

func TestParseWhen(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2024-02-12", time.Date(2024, 2, 12, 0, 0, 0, 0, time.Local)},
		{"2024-02-12T14:30:00", time.Date(2024, 2, 12, 14, 30, 0, 0, time.Local)},
		{"2024-02-12T14:30", time.Date(2024, 2, 12, 14, 30, 0, 0, time.Local)},
		{"2024-02-12T14:30:00Z", time.Date(2024, 2, 12, 14, 30, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"not a date", time.Time{}},
		{"12/02/2024", time.Time{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseWhen(tt.in)
			if !got.Equal(tt.want) {
				t.Errorf("ParseWhen(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestClassify_PriorityOrder(t *testing.T) {
	tests := []struct {
		name string
		e    Event
		want Category
	}{
		{"plain title", Event{Title: "School Photo Day"}, CategoryNormal},
		{"half term", Event{Title: "Half Term Break"}, CategoryHalfTerm},
		{"half term case-insensitive", Event{Title: "HALF TERM"}, CategoryHalfTerm},
		{"book bag", Event{Title: "Book Bag collection"}, CategoryBookBag},
		{"recurring flag", Event{Title: "Swimming", Recurring: true}, CategoryRecurring},
		{"half term beats recurring", Event{Title: "Half Term club", Recurring: true}, CategoryHalfTerm},
		{"half term beats book bag", Event{Title: "Half Term book bag return"}, CategoryHalfTerm},
		{"book bag beats recurring", Event{Title: "Book bag check", Recurring: true}, CategoryBookBag},
		{"missing title", Event{}, CategoryNormal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.e); got != tt.want {
				t.Errorf("Classify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestClassify_ExactlyOneCategory(t *testing.T) {
	events := []Event{
		{Title: "Half Term", Recurring: true},
		{Title: "Book bag day"},
		{Title: "Assembly", Recurring: true},
		{Title: "Sports day"},
		{},
	}
	for _, e := range events {
		matches := 0
		for _, c := range []Category{CategoryNormal, CategoryRecurring, CategoryHalfTerm, CategoryBookBag} {
			if Classify(e) == c {
				matches++
			}
		}
		if matches != 1 {
			t.Errorf("event %q classified into %d categories, want exactly 1", e.Title, matches)
		}
	}
}
