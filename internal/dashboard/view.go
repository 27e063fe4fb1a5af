package dashboard

import (
	"github.com/abelbrown/sentiscope/internal/dataset"
	"github.com/abelbrown/sentiscope/internal/theme"
)

// Option is one entry of a mutually exclusive selection control.
type Option struct {
	Label  string
	Active bool
}

// Bar is one chart series point.
type Bar struct {
	Category dataset.Category
	Value    int
	Percent  float64
}

// View is everything the renderer needs. It is derived, never stored.
type View struct {
	Phase      Phase
	Title      string
	Source     string
	Timeframes []Option
	Categories []Option
	Bars       []Bar
	Total      int
	Items      []dataset.TextItem
	Theme      theme.Mode
}

// DeriveView computes the view for s over t. Pure: same inputs, same View.
// In Idle the results sections are left empty.
func DeriveView(s State, t dataset.Tables) View {
	v := View{
		Phase:  s.Phase(),
		Source: s.Source,
		Theme:  s.Theme,
	}
	if v.Phase == Idle {
		return v
	}

	v.Title = "Sentiment Analysis for r/" + s.Source

	for _, tf := range dataset.Timeframes() {
		v.Timeframes = append(v.Timeframes, Option{Label: tf.String(), Active: tf == s.Timeframe})
	}
	for _, c := range dataset.Categories() {
		v.Categories = append(v.Categories, Option{Label: c.String(), Active: c == s.Category})
	}

	snap := s.CurrentSnapshot(t)
	v.Total = snap.Total()
	// Series order follows the category enumeration, not the values.
	for _, c := range dataset.Categories() {
		b := Bar{Category: c, Value: snap.Value(c)}
		if v.Total > 0 {
			b.Percent = float64(b.Value) * 100 / float64(v.Total)
		}
		v.Bars = append(v.Bars, b)
	}

	v.Items = s.CurrentItems(t)
	return v
}
