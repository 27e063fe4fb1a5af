package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Today     key.Binding
	Week      key.Binding
	Month     key.Binding
	PrevCat   key.Binding
	NextCat   key.Binding
	Positive  key.Binding
	Negative  key.Binding
	Neutral   key.Binding
	Up        key.Binding
	Down      key.Binding
	Expand    key.Binding
	Theme     key.Binding
	Focus     key.Binding
	Retry     key.Binding
	Debug     key.Binding
	Quit      key.Binding
	Submit    key.Binding
	Complete  key.Binding
	Dismiss   key.Binding
	ForceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Today:     key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "today")),
		Week:      key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "week")),
		Month:     key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "month")),
		PrevCat:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev category")),
		NextCat:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next category")),
		Positive:  key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "positive")),
		Negative:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "negative")),
		Neutral:   key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "neutral")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Expand:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "show more/less")),
		Theme:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Focus:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "new subreddit")),
		Retry:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry"), key.WithDisabled()),
		Debug:     key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "debug")),
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "analyze")),
		Complete:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "complete")),
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// inputKeys is the help shown while the text input has focus.
type inputKeys struct{ k keyMap }

func (i inputKeys) ShortHelp() []key.Binding {
	return []key.Binding{i.k.Submit, i.k.Complete, i.k.Dismiss}
}

func (i inputKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{i.ShortHelp()}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Today, k.Week, k.Month, k.NextCat, k.Down, k.Expand, k.Theme, k.Focus, k.Retry, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Today, k.Week, k.Month},
		{k.PrevCat, k.NextCat, k.Positive, k.Negative, k.Neutral},
		{k.Up, k.Down, k.Expand},
		{k.Theme, k.Focus, k.Retry, k.Debug, k.Quit},
	}
}
