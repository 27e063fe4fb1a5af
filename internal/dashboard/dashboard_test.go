package dashboard

import (
	"reflect"
	"strings"
	"testing"

	"github.com/abelbrown/sentiscope/internal/dataset"
	"github.com/abelbrown/sentiscope/internal/expand"
	"github.com/abelbrown/sentiscope/internal/theme"
)

func TestNewDefaults(t *testing.T) {
	s := New()
	if s.Submitted || s.Phase() != Idle {
		t.Error("new session should be Idle")
	}
	if s.Timeframe != dataset.Today {
		t.Errorf("Timeframe = %s, want Today", s.Timeframe)
	}
	if s.Category != dataset.Positive {
		t.Errorf("Category = %s, want Positive", s.Category)
	}
	if s.Theme != theme.Light {
		t.Errorf("Theme = %s, want light", s.Theme)
	}
}

func TestSubmit(t *testing.T) {
	tests := []string{"worldnews", "", "  not a sub!  "}
	for _, id := range tests {
		s := New().Submit(id)
		if !s.Submitted || s.Phase() != Viewing {
			t.Errorf("Submit(%q) did not enter Viewing", id)
		}
		if s.Source != id {
			t.Errorf("Submit(%q) Source = %q", id, s.Source)
		}
	}
}

func TestSubmitDoesNotMutateReceiver(t *testing.T) {
	s := New()
	_ = s.Submit("golang")
	if s.Submitted || s.Source != "" {
		t.Error("Submit mutated the receiver")
	}
}

func TestResubmitKeepsSelections(t *testing.T) {
	s := New().
		Submit("worldnews").
		SetTimeframe(dataset.LastMonth).
		SetCategory(dataset.Neutral)

	s = s.Submit("golang")
	if s.Source != "golang" || s.Phase() != Viewing {
		t.Fatalf("resubmit state = %+v", s)
	}
	if s.Timeframe != dataset.LastMonth || s.Category != dataset.Neutral {
		t.Errorf("selections reset on resubmit: %s / %s", s.Timeframe, s.Category)
	}
}

func TestCurrentSnapshotForEveryTimeframe(t *testing.T) {
	ref := dataset.Reference()
	s := New().Submit("x")
	total := -1
	for _, tf := range dataset.Timeframes() {
		s = s.SetTimeframe(tf)
		got := s.CurrentSnapshot(ref)
		if !reflect.DeepEqual(got, ref.Snapshots[tf]) {
			t.Errorf("%s: snapshot = %v, want %v", tf, got, ref.Snapshots[tf])
		}
		if total >= 0 && got.Total() != total {
			t.Errorf("%s: total %d differs from %d", tf, got.Total(), total)
		}
		total = got.Total()
	}
}

func TestCurrentItemsForEveryCategoryPreservesOrder(t *testing.T) {
	ref := dataset.Reference()
	s := New().Submit("x")
	for _, c := range dataset.Categories() {
		s = s.SetCategory(c)
		got := s.CurrentItems(ref)
		if !reflect.DeepEqual(got, ref.Items[c]) {
			t.Errorf("%s: items differ from table", c)
		}
	}
}

func TestSelectionIdempotence(t *testing.T) {
	once := New().Submit("x").SetTimeframe(dataset.LastWeek)
	twice := once.SetTimeframe(dataset.LastWeek)
	if once != twice {
		t.Errorf("SetTimeframe twice = %+v, once = %+v", twice, once)
	}

	onceC := once.SetCategory(dataset.Negative)
	if onceC.SetCategory(dataset.Negative) != onceC {
		t.Error("SetCategory not idempotent")
	}
}

func TestSelectionsCommute(t *testing.T) {
	base := New().Submit("x")
	a := base.SetTimeframe(dataset.LastMonth).SetCategory(dataset.Neutral)
	b := base.SetCategory(dataset.Neutral).SetTimeframe(dataset.LastMonth)
	if a != b {
		t.Errorf("order matters: %+v vs %+v", a, b)
	}
}

func TestDeriveViewIdleHidesResults(t *testing.T) {
	v := DeriveView(New(), dataset.Reference())
	if v.Phase != Idle {
		t.Fatalf("Phase = %s", v.Phase)
	}
	if v.Bars != nil || v.Items != nil || v.Timeframes != nil {
		t.Error("Idle view should not carry results")
	}
}

func TestScenarioSubmitWorldnews(t *testing.T) {
	ref := dataset.Reference()
	s := New().Submit("worldnews")
	v := DeriveView(s, ref)

	if v.Phase != Viewing {
		t.Fatalf("Phase = %s, want viewing", v.Phase)
	}
	if v.Title != "Sentiment Analysis for r/worldnews" {
		t.Errorf("Title = %q", v.Title)
	}
	if !v.Timeframes[0].Active || v.Timeframes[0].Label != "Today" {
		t.Errorf("Today not active: %+v", v.Timeframes)
	}
	if !v.Categories[0].Active || v.Categories[0].Label != "Positive" {
		t.Errorf("Positive not active: %+v", v.Categories)
	}

	want := []Bar{
		{dataset.Positive, 40, 40},
		{dataset.Negative, 30, 30},
		{dataset.Neutral, 30, 30},
	}
	if !reflect.DeepEqual(v.Bars, want) {
		t.Errorf("Bars = %+v, want %+v", v.Bars, want)
	}

	if len(v.Items) != 10 {
		t.Fatalf("got %d items, want 10", len(v.Items))
	}
	first := expand.New(v.Items[0], expand.DefaultThreshold).Render()
	if !first.Truncatable {
		t.Fatal("first Positive item should be truncatable")
	}
	if got := strings.TrimSuffix(first.DisplayText, expand.Ellipsis); len(got) != 100 {
		t.Errorf("first item truncated to %d chars, want 100", len(got))
	}

	// Switching the category changes only the item list.
	s2 := s.SetCategory(dataset.Negative)
	v2 := DeriveView(s2, ref)
	if !reflect.DeepEqual(v2.Items, ref.Items[dataset.Negative]) {
		t.Error("items did not switch to Negative")
	}
	if !reflect.DeepEqual(v2.Bars, v.Bars) {
		t.Error("chart changed when only the category changed")
	}
}

func TestBarsKeepCanonicalOrder(t *testing.T) {
	tables := dataset.Reference()
	tables.Snapshots[dataset.Today] = dataset.Snapshot{
		{Label: dataset.Positive, Value: 1},
		{Label: dataset.Negative, Value: 90},
		{Label: dataset.Neutral, Value: 9},
	}
	v := DeriveView(New().Submit("x"), tables)
	for i, c := range dataset.Categories() {
		if v.Bars[i].Category != c {
			t.Errorf("bar %d = %s, want %s", i, v.Bars[i].Category, c)
		}
	}
}

func TestDeriveViewIsPure(t *testing.T) {
	ref := dataset.Reference()
	s := New().Submit("x").SetTimeframe(dataset.LastWeek)
	if !reflect.DeepEqual(DeriveView(s, ref), DeriveView(s, ref)) {
		t.Error("DeriveView not deterministic")
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	tests := map[string]string{
		"worldnews":      "worldnews",
		"  worldnews  ":  "worldnews",
		"r/golang":       "golang",
		"R/golang":       "golang",
		"/r/AskReddit":   "AskReddit",
		"":               "",
		"rust":           "rust",
		"reddit_is_cool": "reddit_is_cool",
	}
	for in, want := range tests {
		if got := NormalizeIdentifier(in); got != want {
			t.Errorf("NormalizeIdentifier(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCheckIdentifier(t *testing.T) {
	tests := []struct {
		id     string
		notice bool
	}{
		{"worldnews", false},
		{"AskReddit", false},
		{"a_b", false},
		{"", true},
		{"ab", true},
		{"has space", true},
		{"way_too_long_for_a_subreddit", true},
	}
	for _, tt := range tests {
		n, ok := CheckIdentifier(tt.id)
		if ok != tt.notice {
			t.Errorf("CheckIdentifier(%q) notice = %v, want %v", tt.id, ok, tt.notice)
		}
		if ok && n.Text == "" {
			t.Errorf("CheckIdentifier(%q) returned empty notice", tt.id)
		}
	}
}
