package main

import (
	"bufio"
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/sentiscope/internal/corpus"
)

func TestReadCommentsArray(t *testing.T) {
	in := `  [
		{"id": "a", "subreddit": "golang", "body": "nice", "created_at": "2026-10-01T12:00:00Z"},
		{"id": "b", "subreddit": "golang", "body": "bad"}
	]`
	got, err := readComments(strings.NewReader(in))
	if err != nil {
		t.Fatalf("readComments failed: %v", err)
	}
	if len(got) != 2 || got[0].ID != "a" || got[1].Body != "bad" {
		t.Errorf("got %+v", got)
	}
	if !got[0].Created.Equal(time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)) {
		t.Errorf("created = %v", got[0].Created)
	}
}

func TestReadCommentsLines(t *testing.T) {
	in := "{\"id\": \"a\", \"body\": \"one\"}\n\n{\"id\": \"b\", \"body\": \"two\"}\n"
	got, err := readComments(strings.NewReader(in))
	if err != nil {
		t.Fatalf("readComments failed: %v", err)
	}
	if len(got) != 2 || got[1].ID != "b" {
		t.Errorf("got %+v", got)
	}

	if _, err := readComments(strings.NewReader("{\"id\": \"a\"}\nnot json\n")); err == nil {
		t.Error("expected error for bad line")
	}
	if got, err := readComments(strings.NewReader("   \n")); err != nil || got != nil {
		t.Errorf("empty input = %v, %v", got, err)
	}
}

func TestSaveBatches(t *testing.T) {
	st, err := corpus.Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer st.Close()

	var comments []corpus.Comment
	for i := 0; i < 7; i++ {
		comments = append(comments, corpus.Comment{ID: string(rune('a' + i)), Subreddit: "x", Body: "text", Created: time.Now()})
	}
	n, err := saveBatches(st, comments, 3)
	if err != nil {
		t.Fatalf("saveBatches failed: %v", err)
	}
	if n != 7 {
		t.Errorf("added %d, want 7", n)
	}
	if n, _ := saveBatches(st, comments, 0); n != 0 {
		t.Errorf("re-import added %d, want 0", n)
	}
}

func TestEventFilter(t *testing.T) {
	ev := eventRecord{Level: "warn", Kind: "analysis.stale", Comp: "ui", RequestID: "abcd-1234", Source: "WorldNews"}
	tests := []struct {
		name string
		f    eventFilter
		want bool
	}{
		{"empty", eventFilter{}, true},
		{"kind prefix", eventFilter{kind: "analysis"}, true},
		{"other kind", eventFilter{kind: "ui."}, false},
		{"level below", eventFilter{minLevel: levelRank("info")}, true},
		{"level above", eventFilter{minLevel: levelRank("error")}, false},
		{"rid prefix", eventFilter{rid: "abcd"}, true},
		{"source fold", eventFilter{source: "worldnews"}, true},
		{"comp", eventFilter{comp: "main"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.f.match(ev); got != tt.want {
				t.Errorf("match = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestReadTailLines(t *testing.T) {
	log := strings.Join([]string{
		`{"t":"2026-10-15T10:00:00Z","kind":"ui.submit","source":"a"}`,
		`garbage`,
		`{"t":"2026-10-15T10:00:01Z","kind":"analysis.start","source":"a"}`,
		`{"t":"2026-10-15T10:00:02Z","kind":"ui.category","category":"Negative"}`,
		`{"t":"2026-10-15T10:00:03Z","kind":"ui.theme","msg":"dark"}`,
	}, "\n")

	got := readTailLines(bufio.NewReader(strings.NewReader(log)), 2, eventFilter{kind: "ui."})
	if len(got) != 2 || got[0].ev.Kind != "ui.category" || got[1].ev.Kind != "ui.theme" {
		t.Errorf("got %+v", got)
	}
	if s := formatEvent(got[0].ev); !strings.Contains(s, "cat=Negative") {
		t.Errorf("formatEvent = %q", s)
	}
}
