package dataset

import (
	"errors"
	"fmt"
)

var (
	ErrMissingTimeframe = errors.New("missing timeframe")
	ErrMissingCategory  = errors.New("missing category")
	ErrNegativeCount    = errors.New("negative count")
	ErrSeriesOrder      = errors.New("snapshot not in canonical category order")
	ErrUnevenTotals     = errors.New("snapshot totals differ across timeframes")
	ErrDuplicateItemID  = errors.New("duplicate item id")
)

// Validate checks that t is total over both enumerations and that each
// snapshot partitions the same whole. An all-zero snapshot means the window
// had no data and is exempt from the totals check. Analysis results go
// through Validate before the dashboard accepts them.
func Validate(t Tables) error {
	total := -1
	for _, tf := range Timeframes() {
		snap, ok := t.Snapshots[tf]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingTimeframe, tf)
		}
		cats := Categories()
		if len(snap) != len(cats) {
			return fmt.Errorf("%w: %s has %d rows", ErrSeriesOrder, tf, len(snap))
		}
		for i, cc := range snap {
			if cc.Label != cats[i] {
				return fmt.Errorf("%w: %s row %d is %s", ErrSeriesOrder, tf, i, cc.Label)
			}
			if cc.Value < 0 {
				return fmt.Errorf("%w: %s/%s = %d", ErrNegativeCount, tf, cc.Label, cc.Value)
			}
		}
		if snap.Total() == 0 {
			continue
		}
		if total >= 0 && snap.Total() != total {
			return fmt.Errorf("%w: %s sums to %d, want %d", ErrUnevenTotals, tf, snap.Total(), total)
		}
		total = snap.Total()
	}

	seen := make(map[string]bool)
	for _, c := range Categories() {
		items, ok := t.Items[c]
		if !ok {
			return fmt.Errorf("%w: %s", ErrMissingCategory, c)
		}
		for _, it := range items {
			if seen[it.ID] {
				return fmt.Errorf("%w: %q", ErrDuplicateItemID, it.ID)
			}
			seen[it.ID] = true
		}
	}
	return nil
}
