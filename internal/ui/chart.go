package ui

import (
	"fmt"
	"strings"

	"github.com/abelbrown/sentiscope/internal/dashboard"
	"github.com/abelbrown/sentiscope/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

const (
	barFull  = "█"
	barEmpty = "░"
	// label column + value column + gaps
	chartChrome = 10 + 14
)

// renderChart draws one horizontal bar per series in the order given.
// Bar length is the series' share of the total.
func renderChart(bars []dashboard.Bar, st theme.Styles, width int) string {
	barWidth := width - chartChrome
	if barWidth < 10 {
		barWidth = 10
	}

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		n := int(b.Percent/100*float64(barWidth) + 0.5)
		if n > barWidth {
			n = barWidth
		}
		bar := st.Bars[b.Category].Render(strings.Repeat(barFull, n)) +
			st.Muted.Render(strings.Repeat(barEmpty, barWidth-n))
		value := st.BarValue.Render(fmt.Sprintf(" %4d  %5.1f%%", b.Value, b.Percent))
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, st.BarLabel.Render(b.Category.String()), bar, value))
	}
	return strings.Join(lines, "\n")
}

// renderOptions draws a row of mutually exclusive buttons, each prefixed
// with the key that selects it.
func renderOptions(opts []dashboard.Option, keys []string, st theme.Styles) string {
	cells := make([]string, 0, len(opts))
	for i, o := range opts {
		label := o.Label
		if i < len(keys) {
			label = keys[i] + " " + label
		}
		if o.Active {
			cells = append(cells, st.ButtonOn.Render(label))
		} else {
			cells = append(cells, st.Button.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}
