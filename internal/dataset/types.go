// Package dataset holds the lookup tables the dashboard renders from.
//
// Both enumerations are closed. Lookups over them are total: every Timeframe
// has a Snapshot and every Category has an item list.
package dataset

import "strings"

// Category is a sentiment classification label.
type Category int

const (
	Positive Category = iota
	Negative
	Neutral
)

var categoryNames = [...]string{"Positive", "Negative", "Neutral"}

// Categories returns every category in canonical order.
// Chart series and selection controls follow this order.
func Categories() []Category {
	return []Category{Positive, Negative, Neutral}
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	return c >= 0 && int(c) < len(categoryNames)
}

// Next returns the following category, wrapping around.
func (c Category) Next() Category {
	return Category((int(c) + 1) % len(categoryNames))
}

// Prev returns the preceding category, wrapping around.
func (c Category) Prev() Category {
	return Category((int(c) + len(categoryNames) - 1) % len(categoryNames))
}

// ParseCategory matches a label case-insensitively.
func ParseCategory(s string) (Category, bool) {
	for i, name := range categoryNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Category(i), true
		}
	}
	return 0, false
}

// Timeframe is a reporting window.
type Timeframe int

const (
	Today Timeframe = iota
	LastWeek
	LastMonth
)

var timeframeNames = [...]string{"Today", "Last Week", "Last Month"}

// Timeframes returns every timeframe in display order.
func Timeframes() []Timeframe {
	return []Timeframe{Today, LastWeek, LastMonth}
}

func (t Timeframe) String() string {
	if t < 0 || int(t) >= len(timeframeNames) {
		return "Unknown"
	}
	return timeframeNames[t]
}

// Valid reports whether t belongs to the closed timeframe set.
func (t Timeframe) Valid() bool {
	return t >= 0 && int(t) < len(timeframeNames)
}

// CategoryCount is one bar of the chart.
type CategoryCount struct {
	Label Category
	Value int
}

// Snapshot is the per-category aggregate for one timeframe, in canonical
// category order.
type Snapshot []CategoryCount

// Total sums all category values.
func (s Snapshot) Total() int {
	total := 0
	for _, c := range s {
		total += c.Value
	}
	return total
}

// Value returns the count for c, or 0 if absent.
func (s Snapshot) Value(c Category) int {
	for _, cc := range s {
		if cc.Label == c {
			return cc.Value
		}
	}
	return 0
}

// TextItem is one example comment. ID is stable for the lifetime of the
// table it belongs to.
type TextItem struct {
	ID   string
	Body string
}

// SnapshotTable maps each timeframe to its snapshot.
type SnapshotTable map[Timeframe]Snapshot

// ItemTable maps each category to its ordered example items.
type ItemTable map[Category][]TextItem

// Tables is one complete analysis result.
type Tables struct {
	Snapshots SnapshotTable
	Items     ItemTable
}

// Snapshot returns the snapshot for tf. Callers must pass a valid timeframe.
func (t Tables) Snapshot(tf Timeframe) Snapshot {
	return t.Snapshots[tf]
}

// ItemsFor returns the items for c in their original order.
func (t Tables) ItemsFor(c Category) []TextItem {
	return t.Items[c]
}
