// Package dashboard is the session state machine.
//
// State is a value. Every mutation returns a new State and leaves the
// receiver untouched, so the UI can derive its view from (State, Tables)
// after each event without any hidden state.
package dashboard

import (
	"github.com/abelbrown/sentiscope/internal/dataset"
	"github.com/abelbrown/sentiscope/internal/theme"
)

// Phase is the coarse state of a session.
type Phase int

const (
	// Idle: nothing submitted yet. Results are hidden.
	Idle Phase = iota
	// Viewing: at least one submission. There is no way back to Idle.
	Viewing
)

func (p Phase) String() string {
	if p == Viewing {
		return "viewing"
	}
	return "idle"
}

// State is the mutable session entity.
type State struct {
	Source    string
	Submitted bool
	Timeframe dataset.Timeframe
	Category  dataset.Category
	Theme     theme.Mode
}

// New returns the start-of-session state.
func New() State {
	return State{
		Timeframe: dataset.Today,
		Category:  dataset.Positive,
		Theme:     theme.Light,
	}
}

// Phase derives Idle/Viewing from Submitted.
func (s State) Phase() Phase {
	if s.Submitted {
		return Viewing
	}
	return Idle
}

// Submit records a submitted identifier. Any string is accepted. Timeframe
// and category selections carry over to the new analysis.
func (s State) Submit(identifier string) State {
	s.Source = identifier
	s.Submitted = true
	return s
}

// SetTimeframe replaces the active timeframe. tf must be a member of the
// closed set.
func (s State) SetTimeframe(tf dataset.Timeframe) State {
	s.Timeframe = tf
	return s
}

// SetCategory replaces the active category filter.
func (s State) SetCategory(c dataset.Category) State {
	s.Category = c
	return s
}

// WithTheme records the theme mode chosen by the theme controller.
func (s State) WithTheme(m theme.Mode) State {
	s.Theme = m
	return s
}

// CurrentSnapshot returns tables' snapshot for the active timeframe.
func (s State) CurrentSnapshot(t dataset.Tables) dataset.Snapshot {
	return t.Snapshot(s.Timeframe)
}

// CurrentItems returns tables' items for the active category, in their
// original order.
func (s State) CurrentItems(t dataset.Tables) []dataset.TextItem {
	return t.ItemsFor(s.Category)
}
