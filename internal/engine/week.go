package engine

import (
	"sort"
	"time"

	"github.com/school-events/tui/internal/event"
)

// WeekCard is one weekly digest entry.
type WeekCard struct {
	Event  event.Event
	Hidden bool
}

// WeekDigest is the "rest of this week" projection. Empty is an
// explicit state the renderer shows as a message, not a zero-length
// list silently rendered as nothing.
type WeekDigest struct {
	Cards []WeekCard
	Empty bool
}

// ProjectWeek collects events starting inside [now, end of the current
// week], where the week ends Saturday (weekday 6) at 23:59:59.999,
// sorted ascending by start. The window tests the start instant only:
// a multi-day event already in progress when the week began is not
// pulled in by its span. The month grid is the span-aware view; the
// digest intentionally answers "what kicks off this week".
func ProjectWeek(filtered []event.Event, now time.Time, hidden map[string]bool) WeekDigest {
	weekEnd := endOfDay(now.AddDate(0, 0, 6-int(now.Weekday())))

	var cards []WeekCard
	for _, e := range filtered {
		if e.Start.IsZero() {
			continue
		}
		if e.Start.Before(now) || e.Start.After(weekEnd) {
			continue
		}
		cards = append(cards, WeekCard{Event: e, Hidden: hidden[e.ID]})
	}
	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].Event.Start.Before(cards[j].Event.Start)
	})

	return WeekDigest{Cards: cards, Empty: len(cards) == 0}
}
