package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/abelbrown/sentiscope/internal/otel"
	"github.com/abelbrown/sentiscope/internal/theme"
)

// debugChrome is the border plus vertical padding of the Debug style.
const debugChrome = 4

// debugOverlay renders request stats and recent events. Empty when ring is nil.
func debugOverlay(ring *otel.RingBuffer, st theme.Styles, width, height int) string {
	if ring == nil {
		return ""
	}

	stats := ring.Stats()
	lines := []string{
		st.DebugHeader.Render("Analysis"),
		fmt.Sprintf("  Requests:  %d started, %d complete, %d errors, %d stale",
			stats[otel.KindAnalysisStart], stats[otel.KindAnalysisComplete],
			stats[otel.KindAnalysisError], stats[otel.KindAnalysisStale]),
		fmt.Sprintf("  Actions:   %d submit, %d timeframe, %d category, %d expand, %d theme",
			stats[otel.KindSubmit], stats[otel.KindTimeframe], stats[otel.KindCategory],
			stats[otel.KindExpand], stats[otel.KindTheme]),
		fmt.Sprintf("  Buffer:    %d / %d events", ring.Len(), ring.Cap()),
		"",
		st.DebugHeader.Render("Recent Events"),
	}

	for _, e := range ring.Last(20) {
		line := fmt.Sprintf("  %6s  %-20s", formatAge(time.Since(e.Time)), e.Kind)
		if e.Source != "" {
			line += "  r/" + truncateRunes(e.Source, 20)
		}
		if e.Timeframe != "" {
			line += "  " + e.Timeframe
		}
		if e.Category != "" {
			line += "  " + e.Category
		}
		if e.Msg != "" {
			line += "  " + truncateRunes(e.Msg, 30)
		}
		if e.Err != "" {
			line += "  ERR:" + truncateRunes(e.Err, 30)
		}
		if e.RequestID != "" {
			line += "  rid:" + truncateRunes(e.RequestID, 8)
		}
		lines = append(lines, line)
	}

	maxHeight := max(height-debugChrome, 1)
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}
	panelWidth := min(width-4, 96)
	panelWidth = max(panelWidth, 20)

	return st.Debug.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

// formatAge is a compact age. Negative durations from clock skew clamp to 0ms.
func formatAge(d time.Duration) string {
	switch {
	case d < 0:
		return "0ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}

func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
