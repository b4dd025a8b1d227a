package engine

import "sort"

// Selection tracks the checked event ids in the table. Session-only:
// never persisted, survives tab switches, cleared by bulk actions and
// the explicit clear control.
type Selection struct {
	ids map[string]bool
}

// NewSelection returns an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]bool)}
}

// Toggle flips the checked state of one id.
func (s *Selection) Toggle(id string) {
	if s.ids[id] {
		delete(s.ids, id)
		return
	}
	s.ids[id] = true
}

// SelectAll adds exactly the ids currently visible under the active
// tab and filters. Ids excluded by tab or filter are never swept in.
func (s *Selection) SelectAll(visibleIDs []string) {
	for _, id := range visibleIDs {
		s.ids[id] = true
	}
}

// Clear empties the selection.
func (s *Selection) Clear() {
	s.ids = make(map[string]bool)
}

// Has reports whether id is checked.
func (s *Selection) Has(id string) bool {
	return s.ids[id]
}

// Count returns the number of checked ids.
func (s *Selection) Count() int {
	return len(s.ids)
}

// IDs returns the checked ids in sorted order.
func (s *Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Set returns the checked ids as a set for row flagging.
func (s *Selection) Set() map[string]bool {
	out := make(map[string]bool, len(s.ids))
	for id := range s.ids {
		out[id] = true
	}
	return out
}

// AllSelected reports whether every visible id is checked, driving the
// select-all aggregate control. Unchecking any visible row drops it
// back to partial (unchecked) state.
func (s *Selection) AllSelected(visibleIDs []string) bool {
	if len(visibleIDs) == 0 {
		return false
	}
	for _, id := range visibleIDs {
		if !s.ids[id] {
			return false
		}
	}
	return true
}

// BulkActions describes the bulk bar for the current selection. The
// bar is absent while Count is zero. Hide is offered when at least one
// checked id is un-hidden, Unhide when at least one is hidden; a mixed
// selection offers both.
type BulkActions struct {
	Count     int
	CanHide   bool
	CanUnhide bool
}

// Actions derives the legal bulk operations against the hidden set.
func (s *Selection) Actions(hidden map[string]bool) BulkActions {
	a := BulkActions{Count: len(s.ids)}
	if a.Count == 0 {
		return a
	}
	hiddenCount := 0
	for id := range s.ids {
		if hidden[id] {
			hiddenCount++
		}
	}
	a.CanHide = hiddenCount < a.Count
	a.CanUnhide = hiddenCount > 0
	return a
}

// HideSelected unions the selection into the hidden set and clears the
// selection. Only ids that were actually checked move, regardless of
// which tab is active. The caller persists the hidden set and re-runs
// the filter chain afterwards.
func (s *Selection) HideSelected(hidden map[string]bool) {
	for id := range s.ids {
		hidden[id] = true
	}
	s.Clear()
}

// UnhideSelected subtracts the selection from the hidden set and
// clears the selection.
func (s *Selection) UnhideSelected(hidden map[string]bool) {
	for id := range s.ids {
		delete(hidden, id)
	}
	s.Clear()
}
