package ui

import (
	"fmt"

	"github.com/abelbrown/sentiscope/internal/dataset"
	"github.com/abelbrown/sentiscope/internal/expand"
	"github.com/abelbrown/sentiscope/internal/theme"
	"github.com/charmbracelet/lipgloss"
)

// renderRow draws one comment. The show more/less hint appears only on
// truncatable rows.
func renderRow(r expand.Rendering, selected bool, st theme.Styles, width int) string {
	text := r.DisplayText
	if r.Truncatable {
		hint := "Show more"
		if r.Expanded {
			hint = "Show less"
		}
		text += "\n" + st.Toggle.Render("› "+hint)
	}
	style := st.Row
	if selected {
		style = st.RowSelected
	}
	return style.Width(width).Render(text)
}

// renderItems draws the window of rows that fits height and contains
// cursor, preferring to start at the top of the list.
func renderItems(items []dataset.TextItem, set *expand.Set, cursor int, st theme.Styles, width, height int) string {
	if len(items) == 0 {
		return st.Muted.Render("  No comments in this category.")
	}
	if cursor >= len(items) {
		cursor = len(items) - 1
	}

	// One line is reserved for the position indicator.
	height--
	if height < 1 {
		height = 1
	}

	rows := make([]string, len(items))
	heights := make([]int, len(items))
	for i, it := range items {
		rows[i] = renderRow(set.Render(it), i == cursor, st, width)
		heights[i] = lipgloss.Height(rows[i])
	}

	start, used := 0, 0
	for i := 0; i <= cursor; i++ {
		used += heights[i]
	}
	for used > height && start < cursor {
		used -= heights[start]
		start++
	}
	end := cursor + 1
	for end < len(items) && used+heights[end] <= height {
		used += heights[end]
		end++
	}

	out := lipgloss.JoinVertical(lipgloss.Left, rows[start:end]...)
	pos := st.Muted.Render(fmt.Sprintf("  %d/%d", cursor+1, len(items)))
	return lipgloss.JoinVertical(lipgloss.Left, out, pos)
}
