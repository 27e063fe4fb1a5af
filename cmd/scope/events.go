package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abelbrown/sentiscope/internal/config"
)

// eventRecord is the decoded form of one event line. It is decoded loosely
// so older logs stay readable as the event schema grows.
type eventRecord struct {
	Time      time.Time `json:"t"`
	Level     string    `json:"level"`
	Kind      string    `json:"kind"`
	Comp      string    `json:"comp"`
	SessionID string    `json:"session_id"`
	RequestID string    `json:"rid"`
	Source    string    `json:"source"`
	Timeframe string    `json:"timeframe"`
	Category  string    `json:"category"`
	DurMs     float64   `json:"dur_ms"`
	Count     int       `json:"count"`
	Err       string    `json:"err"`
	Msg       string    `json:"msg"`
}

type eventFilter struct {
	kind     string
	minLevel int
	comp     string
	rid      string
	source   string
	session  string
}

func levelRank(level string) int {
	switch level {
	case "info":
		return 1
	case "warn":
		return 2
	case "error":
		return 3
	default:
		return 0
	}
}

func (f eventFilter) match(ev eventRecord) bool {
	switch {
	case f.kind != "" && !strings.HasPrefix(ev.Kind, f.kind):
		return false
	case levelRank(ev.Level) < f.minLevel:
		return false
	case f.comp != "" && ev.Comp != f.comp:
		return false
	case f.rid != "" && !strings.HasPrefix(ev.RequestID, f.rid):
		return false
	case f.source != "" && !strings.EqualFold(ev.Source, f.source):
		return false
	case f.session != "" && !strings.HasPrefix(ev.SessionID, f.session):
		return false
	}
	return true
}

func formatEvent(ev eventRecord) string {
	lvl := strings.ToUpper(ev.Level)
	if lvl == "" {
		lvl = "?"
	}
	parts := []string{fmt.Sprintf("%s %-5s [%-8s] %-20s", ev.Time.Format("15:04:05.000"), lvl, ev.Comp, ev.Kind)}

	if ev.Source != "" {
		parts = append(parts, "r/"+ev.Source)
	}
	if ev.Timeframe != "" {
		parts = append(parts, "tf="+ev.Timeframe)
	}
	if ev.Category != "" {
		parts = append(parts, "cat="+ev.Category)
	}
	if ev.Msg != "" {
		parts = append(parts, "- "+ev.Msg)
	}
	if ev.DurMs > 0 {
		parts = append(parts, fmt.Sprintf("(%.*fms)", durPrecision(ev.DurMs), ev.DurMs))
	}
	if ev.Count > 0 {
		parts = append(parts, fmt.Sprintf("n=%d", ev.Count))
	}
	if ev.Err != "" {
		parts = append(parts, "err="+ev.Err)
	}
	if ev.RequestID != "" {
		parts = append(parts, "rid="+truncate(ev.RequestID, 8))
	}
	return strings.Join(parts, " ")
}

func runEvents() {
	fs := flag.NewFlagSet("events", flag.ExitOnError)
	tail := fs.Int("tail", 50, "Number of recent lines to show")
	follow := fs.Bool("f", false, "Follow mode (like tail -f)")
	kind := fs.String("kind", "", "Filter by event kind prefix (e.g. 'analysis')")
	level := fs.String("level", "", "Minimum level: debug, info, warn, error")
	comp := fs.String("comp", "", "Filter by component name")
	rid := fs.String("rid", "", "Filter by request ID prefix")
	source := fs.String("source", "", "Filter by subreddit")
	session := fs.String("session", "", "Filter by session ID prefix")
	rawJSON := fs.Bool("json", false, "Output raw JSON lines")
	fs.Parse(os.Args[1:])

	logPath := config.EventLogPath()
	f, err := os.Open(logPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		fmt.Fprintf(os.Stderr, "  Event log not found at %s\n", logPath)
		fmt.Fprintf(os.Stderr, "  Run sentiscope first to generate events.\n")
		os.Exit(1)
	}
	defer f.Close()

	filter := eventFilter{
		kind:     *kind,
		minLevel: levelRank(*level),
		comp:     *comp,
		rid:      *rid,
		source:   *source,
		session:  *session,
	}
	show := func(l parsedLine) {
		if *rawJSON {
			fmt.Println(string(l.raw))
			return
		}
		fmt.Println(formatEvent(l.ev))
	}

	reader := bufio.NewReader(f)
	for _, l := range readTailLines(reader, *tail, filter) {
		show(l)
	}
	if !*follow {
		return
	}

	for {
		line, err := reader.ReadBytes('\n')
		if err == io.EOF {
			time.Sleep(100 * time.Millisecond)
			continue
		}
		if err != nil {
			return
		}
		if l, ok := parseLine(line); ok && filter.match(l.ev) {
			show(l)
		}
	}
}

type parsedLine struct {
	ev  eventRecord
	raw []byte
}

func parseLine(b []byte) (parsedLine, bool) {
	b = []byte(strings.TrimRight(string(b), "\r\n"))
	if len(b) == 0 {
		return parsedLine{}, false
	}
	var ev eventRecord
	if json.Unmarshal(b, &ev) != nil {
		return parsedLine{}, false
	}
	return parsedLine{ev: ev, raw: b}, true
}

// readTailLines reads r to EOF and keeps the last n lines passing filter.
func readTailLines(r *bufio.Reader, n int, filter eventFilter) []parsedLine {
	if n <= 0 {
		return nil
	}
	kept := make([]parsedLine, 0, n)
	for {
		line, err := r.ReadBytes('\n')
		if l, ok := parseLine(line); ok && filter.match(l.ev) {
			if len(kept) == n {
				copy(kept, kept[1:])
				kept = kept[:n-1]
			}
			kept = append(kept, l)
		}
		if err != nil {
			return kept
		}
	}
}

func durPrecision(ms float64) int {
	switch {
	case ms >= 100:
		return 0
	case ms >= 1:
		return 1
	default:
		return 2
	}
}
