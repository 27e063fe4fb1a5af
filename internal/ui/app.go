package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/abelbrown/sentiscope/internal/dashboard"
	"github.com/abelbrown/sentiscope/internal/dataset"
	"github.com/abelbrown/sentiscope/internal/expand"
	"github.com/abelbrown/sentiscope/internal/logging"
	"github.com/abelbrown/sentiscope/internal/otel"
	"github.com/abelbrown/sentiscope/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sahilm/fuzzy"
)

const maxSuggestions = 3

// Options wires an App to the rest of the program.
type Options struct {
	// Analyze returns a Cmd that runs one analysis request off the event
	// loop and reports back with AnalysisLoaded carrying requestID.
	Analyze func(requestID, source string) tea.Cmd

	Theme      *theme.Controller
	Events     *otel.Logger
	Ring       *otel.RingBuffer
	Known      []string // subreddits offered as completions
	TruncateAt int

	// Initial tables shown until the first analysis resolves. Defaults to
	// the reference tables.
	Initial dataset.Tables
}

// App is the root Bubble Tea model.
// App does not hold the analyzer. It issues requests through analyze and
// receives results as AnalysisLoaded messages.
type App struct {
	analyze func(requestID, source string) tea.Cmd
	theme   *theme.Controller
	events  *otel.Logger
	ring    *otel.RingBuffer
	known   []string

	state      dashboard.State
	tables     dataset.Tables
	generation int
	expanded   *expand.Set
	cursor     int

	input        textinput.Model
	inputFocused bool
	suggestions  []string
	notice       string

	pending   string // request ID awaiting a result
	startedAt time.Time
	err       error

	spinner   spinner.Model
	keys      keyMap
	help      help.Model
	showDebug bool

	width  int
	height int
	ready  bool
}

// NewApp creates the root model with the input focused.
func NewApp(opts Options) App {
	ctrl := opts.Theme
	if ctrl == nil {
		ctrl = theme.NewController(io.Discard, theme.Light)
	}
	tables := opts.Initial
	if tables.Snapshots == nil {
		tables = dataset.Reference()
	}

	ti := textinput.New()
	ti.Placeholder = "subreddit, e.g. worldnews"
	ti.Prompt = "r/"
	ti.CharLimit = 64
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	a := App{
		analyze:      opts.Analyze,
		theme:        ctrl,
		events:       opts.Events,
		ring:         opts.Ring,
		known:        opts.Known,
		state:        dashboard.New().WithTheme(ctrl.Mode()),
		tables:       tables,
		expanded:     expand.NewSet(opts.TruncateAt),
		input:        ti,
		inputFocused: true,
		spinner:      s,
		keys:         defaultKeys(),
		help:         help.New(),
	}
	a.syncList()
	return a
}

// Init starts the cursor blinking in the input.
func (a App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if otel.TraceEnabled() {
		a.emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindMsgReceived, Comp: "ui", Msg: fmt.Sprintf("%T", msg)})
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		a.input.Width = max(msg.Width-8, 10)
		a.ready = true
		return a, nil

	case AnalysisLoaded:
		return a.applyResult(msg), nil

	case spinner.TickMsg:
		if a.pending == "" {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	}

	if a.inputFocused {
		var cmd tea.Cmd
		a.input, cmd = a.input.Update(msg)
		return a, cmd
	}
	return a, nil
}

func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.ForceQuit) {
		return a, tea.Quit
	}
	if a.inputFocused {
		return a.handleInputKey(msg)
	}
	if a.showDebug {
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.keys.Debug, a.keys.Dismiss):
			a.showDebug = false
		}
		return a, nil
	}

	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(msg, a.keys.Today):
		a.setTimeframe(dataset.Today)
	case key.Matches(msg, a.keys.Week):
		a.setTimeframe(dataset.LastWeek)
	case key.Matches(msg, a.keys.Month):
		a.setTimeframe(dataset.LastMonth)

	case key.Matches(msg, a.keys.PrevCat):
		a.setCategory(a.state.Category.Prev())
	case key.Matches(msg, a.keys.NextCat):
		a.setCategory(a.state.Category.Next())
	case key.Matches(msg, a.keys.Positive):
		a.setCategory(dataset.Positive)
	case key.Matches(msg, a.keys.Negative):
		a.setCategory(dataset.Negative)
	case key.Matches(msg, a.keys.Neutral):
		a.setCategory(dataset.Neutral)

	case key.Matches(msg, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
	case key.Matches(msg, a.keys.Down):
		if a.cursor < len(a.items())-1 {
			a.cursor++
		}
	case key.Matches(msg, a.keys.Expand):
		a.toggleSelected()

	case key.Matches(msg, a.keys.Theme):
		mode := a.theme.Toggle()
		a.state = a.state.WithTheme(mode)
		a.emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindTheme, Comp: "ui", Msg: mode.String()})

	case key.Matches(msg, a.keys.Focus):
		a.inputFocused = true
		a.suggestions = suggest(a.input.Value(), a.known)
		return a, a.input.Focus()

	case key.Matches(msg, a.keys.Retry):
		return a.request(a.state.Source)

	case key.Matches(msg, a.keys.Debug):
		a.showDebug = true

	case key.Matches(msg, a.keys.Dismiss):
		a.notice = ""
		a.setErr(nil)
	}
	return a, nil
}

func (a App) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Submit):
		return a.submit(a.input.Value())

	case key.Matches(msg, a.keys.Complete):
		if len(a.suggestions) > 0 {
			a.input.SetValue(a.suggestions[0])
			a.input.CursorEnd()
			a.suggestions = suggest(a.input.Value(), a.known)
		}
		return a, nil

	case key.Matches(msg, a.keys.Dismiss):
		a.notice = ""
		a.suggestions = nil
		a.inputFocused = false
		a.input.Blur()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.suggestions = suggest(a.input.Value(), a.known)
	return a, cmd
}

// submit moves to Viewing and issues an analysis request. Malformed names
// get a notice but are still submitted.
func (a App) submit(raw string) (tea.Model, tea.Cmd) {
	id := dashboard.NormalizeIdentifier(raw)

	a.notice = ""
	if n, warn := dashboard.CheckIdentifier(id); warn {
		a.notice = n.Text
	}
	a.state = a.state.Submit(id)
	a.input.SetValue(id)
	a.input.Blur()
	a.inputFocused = false
	a.suggestions = nil

	a.emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindSubmit, Comp: "ui", Source: id})
	logging.Info("submit", "source", id)

	return a.request(id)
}

// request starts a new analysis for source. Any earlier request still in
// flight is superseded; its result will be dropped on arrival.
func (a App) request(source string) (App, tea.Cmd) {
	a.setErr(nil)
	if a.analyze == nil {
		return a, nil
	}
	a.pending = uuid.NewString()
	a.startedAt = time.Now()
	a.emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindAnalysisStart, Comp: "ui", Source: source, RequestID: a.pending})
	return a, tea.Batch(a.analyze(a.pending, source), a.spinner.Tick)
}

// applyResult installs the tables from the latest request. Selections are
// left alone; only the item list identity changes.
func (a App) applyResult(msg AnalysisLoaded) App {
	if msg.RequestID == "" || msg.RequestID != a.pending {
		a.emit(otel.Event{Level: otel.LevelWarn, Kind: otel.KindAnalysisStale, Comp: "ui", Source: msg.Source, RequestID: msg.RequestID})
		logging.Debug("dropping stale analysis result", "source", msg.Source, "rid", msg.RequestID)
		return a
	}
	a.pending = ""
	dur := time.Since(a.startedAt)

	if msg.Err != nil {
		a.setErr(msg.Err)
		a.emit(otel.Event{Level: otel.LevelError, Kind: otel.KindAnalysisError, Comp: "ui", Source: msg.Source, RequestID: msg.RequestID, Dur: dur, Err: msg.Err.Error()})
		logging.Error("analysis failed", "source", msg.Source, "err", msg.Err)
		return a
	}

	a.tables = msg.Tables
	a.generation++
	a.syncList()

	count := 0
	for _, c := range dataset.Categories() {
		count += len(a.tables.ItemsFor(c))
	}
	a.emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindAnalysisComplete, Comp: "ui", Source: msg.Source, RequestID: msg.RequestID, Dur: dur, Count: count})
	logging.Info("analysis complete", "source", msg.Source, "items", count, "dur", dur)
	return a
}

func (a *App) setTimeframe(tf dataset.Timeframe) {
	if a.state.Timeframe == tf {
		return
	}
	a.state = a.state.SetTimeframe(tf)
	a.emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindTimeframe, Comp: "ui", Timeframe: tf.String()})
}

func (a *App) setCategory(c dataset.Category) {
	if a.state.Category == c {
		return
	}
	a.state = a.state.SetCategory(c)
	a.syncList()
	a.emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindCategory, Comp: "ui", Category: c.String()})
}

func (a *App) toggleSelected() {
	items := a.items()
	if a.cursor >= len(items) {
		return
	}
	it := items[a.cursor]
	if !a.expanded.Text(it).Truncatable() {
		return
	}
	open := a.expanded.Toggle(it)
	a.emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindExpand, Comp: "ui", Category: a.state.Category.String(), Msg: fmt.Sprintf("%s expanded=%t", it.ID, open)})
}

// syncList drops expansion flags and the cursor when the visible list is a
// different list than before.
func (a *App) syncList() {
	listKey := fmt.Sprintf("%s#%d", a.state.Category, a.generation)
	if a.expanded.Reset(listKey) {
		a.cursor = 0
	}
}

func (a *App) setErr(err error) {
	a.err = err
	a.keys.Retry.SetEnabled(err != nil)
}

func (a App) items() []dataset.TextItem {
	return a.state.CurrentItems(a.tables)
}

func (a App) emit(e otel.Event) {
	if a.events != nil {
		a.events.Emit(e)
	}
}

// suggest returns up to maxSuggestions known subreddits fuzzily matching
// query, best first.
func suggest(query string, known []string) []string {
	q := dashboard.NormalizeIdentifier(query)
	if q == "" || len(known) == 0 {
		return nil
	}
	var out []string
	for _, m := range fuzzy.Find(q, known) {
		out = append(out, m.Str)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

// View renders the UI.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}
	st := a.theme.Styles()

	if a.showDebug {
		return lipgloss.JoinVertical(lipgloss.Left,
			debugOverlay(a.ring, st, a.width, a.height-1),
			st.StatusBar.Width(a.width).Render("[DEBUG]  D/esc: close"))
	}

	top := lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(st), a.renderInput(st))
	footer := a.renderFooter(st)
	bodyHeight := a.height - lipgloss.Height(top) - lipgloss.Height(footer)

	v := dashboard.DeriveView(a.state, a.tables)
	var body string
	if v.Phase == dashboard.Idle {
		body = st.Muted.Render("\n  Type a subreddit and press enter to see how its comments feel.")
	} else {
		body = a.renderResults(v, st, bodyHeight)
	}
	if pad := bodyHeight - lipgloss.Height(body); pad > 0 {
		body += strings.Repeat("\n", pad)
	}

	return lipgloss.JoinVertical(lipgloss.Left, top, body, footer)
}

func (a App) renderHeader(st theme.Styles) string {
	mode := "light"
	if a.state.Theme == theme.Dark {
		mode = "dark"
	}
	return st.Title.Render("sentiscope") + "  " + st.Subtitle.Render("reddit sentiment dashboard · "+mode+" theme")
}

func (a App) renderInput(st theme.Styles) string {
	in := a.input
	in.PromptStyle = st.Title
	in.PlaceholderStyle = st.Muted
	box := st.Input.Width(max(a.width-2, 20)).Render(in.View())

	lines := []string{box}
	if a.inputFocused && len(a.suggestions) > 0 {
		lines = append(lines, st.Suggestion.Render("  tab: r/"+strings.Join(a.suggestions, "  r/")))
	}
	if a.notice != "" {
		lines = append(lines, st.Notice.Render("  ! "+a.notice+"  (esc to dismiss)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (a App) renderResults(v dashboard.View, st theme.Styles, height int) string {
	title := st.Title.Render(v.Title)
	if a.pending != "" {
		title += "  " + a.spinner.View() + st.Muted.Render(" analyzing...")
	}

	tfKeys := []string{"1", "2", "3"}
	catKeys := []string{"p", "n", "u"}
	timeframes := renderOptions(v.Timeframes, tfKeys, st)

	cardWidth := max(a.width-2, 30)
	chart := st.Card.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left,
		st.CardTitle.Render(fmt.Sprintf("%s · %d total", a.state.Timeframe, v.Total)),
		renderChart(v.Bars, st, cardWidth-4),
	))
	categories := renderOptions(v.Categories, catKeys, st)

	head := lipgloss.JoinVertical(lipgloss.Left, title, timeframes, chart, categories)
	list := renderItems(v.Items, a.expanded, a.cursor, st, a.width-2, height-lipgloss.Height(head))
	return lipgloss.JoinVertical(lipgloss.Left, head, list)
}

func (a App) renderFooter(st theme.Styles) string {
	h := a.help
	h.Styles.ShortKey = st.Toggle
	h.Styles.ShortDesc = st.Muted
	h.Styles.ShortSeparator = st.Muted

	var keys help.KeyMap = a.keys
	if a.inputFocused {
		keys = inputKeys{a.keys}
	}
	bar := st.StatusBar.Width(a.width).Render(h.View(keys))
	if a.err == nil {
		return bar
	}
	errLine := st.Error.Width(a.width).Render("Error: " + a.err.Error() + "  (r to retry, esc to dismiss)")
	return lipgloss.JoinVertical(lipgloss.Left, errLine, bar)
}

// State returns the dashboard state (for testing).
func (a App) State() dashboard.State {
	return a.state
}

// Cursor returns the selected row (for testing).
func (a App) Cursor() int {
	return a.cursor
}

// Err returns the last analysis error, if any.
func (a App) Err() error {
	return a.err
}
