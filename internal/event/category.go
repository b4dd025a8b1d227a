package event

import "strings"

// Category classifies an event for filtering and dot/row coloring.
type Category int

const (
	CategoryNormal Category = iota
	CategoryRecurring
	CategoryHalfTerm
	CategoryBookBag
)

var categoryNames = map[Category]string{
	CategoryNormal:    "normal",
	CategoryRecurring: "recurring",
	CategoryHalfTerm:  "half-term",
	CategoryBookBag:   "book-bag",
}

func (c Category) String() string {
	if s, ok := categoryNames[c]; ok {
		return s
	}
	return "unknown"
}

// Classify assigns exactly one category by title content, checked in a
// fixed priority order: "half term" beats "book bag" beats the
// recurrence flag beats normal. A title containing "half term" on a
// recurring event is half-term, never recurring.
func Classify(e Event) Category {
	title := strings.ToLower(e.Title)
	switch {
	case strings.Contains(title, "half term"):
		return CategoryHalfTerm
	case strings.Contains(title, "book bag"):
		return CategoryBookBag
	case e.Recurring:
		return CategoryRecurring
	default:
		return CategoryNormal
	}
}
