// Package event defines the school event record and its ingestion
// normalization. Records arrive as JSON produced by the extraction
// pipeline; field spellings and date formats drifted across exporter
// versions, so all tolerance lives here and the rest of the program
// sees one canonical shape.
package event

import (
	"encoding/json"
	"time"
)

// Event is a single calendar item. Immutable once loaded; the engine
// identifies events solely by ID.
type Event struct {
	ID    string
	Title string

	// Start is the event instant. A zero Start means the record carried
	// no parseable date; such events fail every date predicate but are
	// never an error.
	Start time.Time

	// End, when non-zero, makes the event span the inclusive day range
	// [Start, End].
	End time.Time

	Notes     string
	Recurring bool
	AllDay    bool

	// Extraction metadata, display-only.
	Confidence float64
	Status     string

	// Provenance of the source email, display-only.
	SourceEmailID         string
	SourceEmailSubject    string
	SourceEmailReceivedAt time.Time
}

// rawEvent mirrors the exporter JSON. Older exports spell the
// recurrence flag "recurring", newer ones "isRecurring"; both are
// accepted and collapsed into Event.Recurring.
type rawEvent struct {
	ID                    string          `json:"id"`
	Title                 string          `json:"title"`
	StartDate             string          `json:"startDate"`
	EndDate               string          `json:"endDate"`
	Notes                 string          `json:"notes"`
	IsRecurring           bool            `json:"isRecurring"`
	RecurringLegacy       json.RawMessage `json:"recurring"`
	AllDay                bool            `json:"allDay"`
	Confidence            float64         `json:"confidence"`
	Status                string          `json:"status"`
	SourceEmailID         string          `json:"sourceEmailId"`
	SourceEmailSubject    string          `json:"sourceEmailSubject"`
	SourceEmailReceivedAt string          `json:"sourceEmailReceivedAt"`
}

// UnmarshalJSON decodes an exporter record, normalizing the dual
// recurrence spelling and parsing dates leniently. Malformed dates
// become the zero time rather than an error.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw rawEvent
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	recurring := raw.IsRecurring
	if !recurring && len(raw.RecurringLegacy) > 0 {
		// The legacy field was sometimes exported as a 0/1 integer.
		var b bool
		if err := json.Unmarshal(raw.RecurringLegacy, &b); err == nil {
			recurring = b
		} else {
			var n float64
			if err := json.Unmarshal(raw.RecurringLegacy, &n); err == nil {
				recurring = n != 0
			}
		}
	}

	*e = Event{
		ID:                    raw.ID,
		Title:                 raw.Title,
		Start:                 ParseWhen(raw.StartDate),
		End:                   ParseWhen(raw.EndDate),
		Notes:                 raw.Notes,
		Recurring:             recurring,
		AllDay:                raw.AllDay,
		Confidence:            raw.Confidence,
		Status:                raw.Status,
		SourceEmailID:         raw.SourceEmailID,
		SourceEmailSubject:    raw.SourceEmailSubject,
		SourceEmailReceivedAt: ParseWhen(raw.SourceEmailReceivedAt),
	}
	return nil
}

// whenFormats are tried in order when parsing a record timestamp. The
// extraction pipeline emits LocalDateTime strings without a zone;
// date-only values appear on all-day events.
var whenFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseWhen parses a record timestamp string. Unknown formats and the
// empty string yield the zero time.
func ParseWhen(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range whenFormats {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Spans reports whether the event covers a multi-day range.
func (e Event) Spans() bool {
	return !e.End.IsZero()
}
