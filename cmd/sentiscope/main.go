// Command sentiscope is the subreddit sentiment dashboard.
package main

import (
	"context"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/abelbrown/sentiscope/internal/analysis"
	"github.com/abelbrown/sentiscope/internal/config"
	"github.com/abelbrown/sentiscope/internal/corpus"
	"github.com/abelbrown/sentiscope/internal/logging"
	"github.com/abelbrown/sentiscope/internal/otel"
	"github.com/abelbrown/sentiscope/internal/theme"
	"github.com/abelbrown/sentiscope/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func fatal(what string, err error) {
	fmt.Fprintf(os.Stderr, "sentiscope: %s: %v\n", what, err)
	os.Exit(1)
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load(config.ConfigPath())
	if err != nil {
		fatal("load config", err)
	}

	dataDir := config.DataDir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		fatal("create data directory", err)
	}

	if err := logging.Init(dataDir, cfg.LogLevel); err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
	}
	defer logging.Close()

	events := openEvents(config.EventLogPath())
	defer events.Close()
	ring := otel.NewRingBuffer(otel.DefaultRingSize)
	events.SetRingBuffer(ring)

	analyzer, known, closeBackend := buildAnalyzer(ctx, cfg)
	defer closeBackend()

	ctrl := theme.NewController(os.Stdout, theme.ParseMode(cfg.UI.Theme))

	logging.Info("sentiscope starting", "backend", analyzer.Name(), "theme", ctrl.Mode(), "session", events.SessionID())
	events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindStartup, Comp: "main", Msg: "backend=" + analyzer.Name()})

	app := ui.NewApp(ui.Options{
		Analyze: func(requestID, source string) tea.Cmd {
			return func() tea.Msg {
				rctx := ctx
				if d := cfg.Timeout(); d > 0 {
					var stop context.CancelFunc
					rctx, stop = context.WithTimeout(ctx, d)
					defer stop()
				}
				tables, err := analysis.Fetch(rctx, analyzer, source)
				return ui.AnalysisLoaded{RequestID: requestID, Source: source, Tables: tables, Err: err}
			}
		},
		Theme:      ctrl,
		Events:     events,
		Ring:       ring,
		Known:      known,
		TruncateAt: cfg.UI.TruncateAt,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("program exited with error", "err", err)
		fmt.Fprintf(os.Stderr, "sentiscope: %v\n", err)
	}

	cancel()
	events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindShutdown, Comp: "main"})
}

// openEvents opens the JSONL event trail, falling back to a discarding
// logger so the dashboard still runs on a read-only home directory.
func openEvents(path string) *otel.Logger {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		logging.Warn("event log disabled", "path", path, "err", err)
		return otel.NewNullLogger()
	}
	return otel.NewLogger(f)
}

// buildAnalyzer picks the analysis backend from config. Requests to either
// backend are spaced by the configured minimum interval.
func buildAnalyzer(ctx context.Context, cfg *config.Config) (analysis.Analyzer, []string, func()) {
	known := cfg.KnownSubreddits

	switch cfg.Backend {
	case config.BackendLexicon:
		st, err := corpus.Open(cfg.CorpusPath)
		if err != nil {
			fatal("open corpus", err)
		}
		subs, err := st.Subreddits(ctx)
		if err != nil {
			logging.Warn("listing corpus subreddits failed", "err", err)
		}
		known = mergeKnown(known, subs)
		lex := analysis.NewLexicon(st, cfg.Analysis.ItemsPerCategory)
		return analysis.NewThrottled(lex, cfg.MinInterval()), known, func() { st.Close() }

	default:
		return analysis.NewThrottled(analysis.Static{}, cfg.MinInterval()), known, func() {}
	}
}

// mergeKnown appends names not already present, case-insensitively.
func mergeKnown(known, extra []string) []string {
	out := slices.Clone(known)
	for _, name := range extra {
		if !slices.ContainsFunc(out, func(k string) bool { return strings.EqualFold(k, name) }) {
			out = append(out, name)
		}
	}
	return out
}
