package theme

import (
	"github.com/abelbrown/sentiscope/internal/dataset"
	"github.com/charmbracelet/lipgloss"
)

// Palette. Every themed color is adaptive so one renderer flag decides both
// halves of the UI at once.
var (
	colorText      = lipgloss.AdaptiveColor{Light: "235", Dark: "252"}
	colorMuted     = lipgloss.AdaptiveColor{Light: "245", Dark: "242"}
	colorSurface   = lipgloss.AdaptiveColor{Light: "254", Dark: "236"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "250", Dark: "239"}
	colorPrimary   = lipgloss.AdaptiveColor{Light: "25", Dark: "111"}
	colorOnPrimary = lipgloss.AdaptiveColor{Light: "255", Dark: "234"}
	colorHighlight = lipgloss.AdaptiveColor{Light: "162", Dark: "212"}
	colorError     = lipgloss.AdaptiveColor{Light: "160", Dark: "203"}
	colorWarn      = lipgloss.AdaptiveColor{Light: "130", Dark: "221"}
)

var categoryColors = map[dataset.Category]lipgloss.AdaptiveColor{
	dataset.Positive: {Light: "28", Dark: "78"},
	dataset.Negative: {Light: "160", Dark: "203"},
	dataset.Neutral:  {Light: "242", Dark: "248"},
}

// Styles is the full set of styles for one renderer.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Card        lipgloss.Style
	CardTitle   lipgloss.Style
	Button      lipgloss.Style
	ButtonOn    lipgloss.Style
	Input       lipgloss.Style
	Suggestion  lipgloss.Style
	Bars        map[dataset.Category]lipgloss.Style
	BarLabel    lipgloss.Style
	BarValue    lipgloss.Style
	Row         lipgloss.Style
	RowSelected lipgloss.Style
	Toggle      lipgloss.Style
	Notice      lipgloss.Style
	Error       lipgloss.Style
	Muted       lipgloss.Style
	StatusBar   lipgloss.Style
	Debug       lipgloss.Style
	DebugHeader lipgloss.Style
}

// NewStyles builds styles bound to r. Adaptive colors resolve against
// r.HasDarkBackground at render time.
func NewStyles(r *lipgloss.Renderer) Styles {
	s := Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(colorPrimary),
		Subtitle: r.NewStyle().
			Foreground(colorMuted),
		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1),
		CardTitle: r.NewStyle().
			Bold(true).
			Foreground(colorText),
		Button: r.NewStyle().
			Foreground(colorText).
			Border(lipgloss.NormalBorder(), false, true).
			BorderForeground(colorBorder).
			Padding(0, 1),
		ButtonOn: r.NewStyle().
			Bold(true).
			Foreground(colorOnPrimary).
			Background(colorPrimary).
			Padding(0, 2),
		Input: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(colorPrimary).
			Padding(0, 1),
		Suggestion: r.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		BarLabel: r.NewStyle().
			Foreground(colorText).
			Width(10),
		BarValue: r.NewStyle().
			Foreground(colorMuted),
		Row: r.NewStyle().
			Foreground(colorText).
			Padding(0, 1),
		RowSelected: r.NewStyle().
			Foreground(colorText).
			Background(colorSurface).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(colorHighlight).
			Padding(0, 1),
		Toggle: r.NewStyle().
			Foreground(colorHighlight),
		Notice: r.NewStyle().
			Foreground(colorWarn),
		Error: r.NewStyle().
			Bold(true).
			Foreground(colorError),
		Muted: r.NewStyle().
			Foreground(colorMuted),
		StatusBar: r.NewStyle().
			Foreground(colorText).
			Background(colorSurface).
			Padding(0, 1),
		Debug: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorHighlight).
			Padding(1, 2),
		DebugHeader: r.NewStyle().
			Bold(true).
			Foreground(colorHighlight),
	}

	s.Bars = make(map[dataset.Category]lipgloss.Style, len(categoryColors))
	for c, col := range categoryColors {
		s.Bars[c] = r.NewStyle().Foreground(col)
	}
	return s
}
