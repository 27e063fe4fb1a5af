// Package expand implements show-more/show-less truncation for list rows.
package expand

import (
	"unicode/utf8"

	"github.com/abelbrown/sentiscope/internal/dataset"
)

// DefaultThreshold is the character count above which a body is collapsed.
const DefaultThreshold = 100

// Ellipsis marks a collapsed body.
const Ellipsis = "..."

// Rendering is what a row shows for one item.
type Rendering struct {
	DisplayText string
	Truncatable bool
	Expanded    bool
}

// Text is the expand/collapse state of a single item.
type Text struct {
	item      dataset.TextItem
	threshold int
	expanded  bool
}

// New returns a collapsed Text. threshold <= 0 selects DefaultThreshold.
func New(item dataset.TextItem, threshold int) Text {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return Text{item: item, threshold: threshold}
}

// Truncatable reports whether the body is longer than the threshold.
func (t Text) Truncatable() bool {
	return utf8.RuneCountInString(t.item.Body) > t.threshold
}

// Toggle flips between collapsed and expanded. Bodies that fit within the
// threshold have no toggle and stay collapsed.
func (t *Text) Toggle() {
	if !t.Truncatable() {
		return
	}
	t.expanded = !t.expanded
}

// Render returns the text to display.
// Cuts are by character count and may land mid-word.
func (t Text) Render() Rendering {
	if !t.Truncatable() {
		return Rendering{DisplayText: t.item.Body}
	}
	if t.expanded {
		return Rendering{DisplayText: t.item.Body, Truncatable: true, Expanded: true}
	}
	runes := []rune(t.item.Body)
	return Rendering{
		DisplayText: string(runes[:t.threshold]) + Ellipsis,
		Truncatable: true,
	}
}
