package expand

import "github.com/abelbrown/sentiscope/internal/dataset"

// Set tracks which rows of the current list are expanded, keyed by item ID
// rather than list position. The flags belong to one list identity; when
// the list changes, Reset drops them.
type Set struct {
	threshold int
	listKey   string
	expanded  map[string]bool
}

// NewSet creates an empty set using threshold for every row.
func NewSet(threshold int) *Set {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Set{threshold: threshold, expanded: make(map[string]bool)}
}

// Threshold returns the truncation threshold.
func (s *Set) Threshold() int {
	return s.threshold
}

// Reset clears all flags if key differs from the current list key.
// Returns true if the flags were cleared.
func (s *Set) Reset(key string) bool {
	if key == s.listKey {
		return false
	}
	s.listKey = key
	clear(s.expanded)
	return true
}

// Toggle flips the flag for item. Returns the new expanded state.
func (s *Set) Toggle(item dataset.TextItem) bool {
	t := s.Text(item)
	t.Toggle()
	if t.expanded {
		s.expanded[item.ID] = true
	} else {
		delete(s.expanded, item.ID)
	}
	return t.expanded
}

// Text returns the Text for item with its current flag applied.
func (s *Set) Text(item dataset.TextItem) Text {
	t := New(item, s.threshold)
	t.expanded = s.expanded[item.ID] && t.Truncatable()
	return t
}

// Render is shorthand for s.Text(item).Render().
func (s *Set) Render(item dataset.TextItem) Rendering {
	return s.Text(item).Render()
}

// Len returns the number of expanded rows.
func (s *Set) Len() int {
	return len(s.expanded)
}
