// Package export writes the currently visible events to an iCalendar
// file, so the curated view can be imported into a phone or desktop
// calendar.
package export

import (
	"fmt"
	"os"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/school-events/tui/internal/event"
)

const prodID = "-//schoolcal//events//EN"

// ICS serializes events as an iCalendar document. Point events become
// single VEVENTs; spans carry their inclusive end date (exported as
// the exclusive DTEND the format requires). All-day events and events
// without a parseable start use date-only values.
func ICS(events []event.Event) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(prodID)

	for _, e := range events {
		if e.Start.IsZero() {
			// Undated records have nothing a calendar can anchor.
			continue
		}

		ve := cal.AddEvent(e.ID)
		ve.SetSummary(e.Title)
		if e.Notes != "" {
			ve.SetDescription(e.Notes)
		}
		if e.SourceEmailSubject != "" {
			ve.SetProperty(ical.ComponentPropertyComment, e.SourceEmailSubject)
		}

		if e.AllDay || e.Spans() {
			ve.SetAllDayStartAt(e.Start)
			end := e.Start
			if e.Spans() {
				end = e.End
			}
			// ICS all-day DTEND is exclusive; the record's span is
			// inclusive of its final day.
			ve.SetAllDayEndAt(end.AddDate(0, 0, 1))
		} else {
			ve.SetStartAt(e.Start)
			ve.SetEndAt(e.Start.Add(time.Hour))
		}
	}
	return cal.Serialize()
}

// WriteFile exports events to an ICS file at path.
func WriteFile(path string, events []event.Event) error {
	if err := os.WriteFile(path, []byte(ICS(events)), 0o600); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	return nil
}
