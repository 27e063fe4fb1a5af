package expand

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/abelbrown/sentiscope/internal/dataset"
)

func item(id string, n int) dataset.TextItem {
	return dataset.TextItem{ID: id, Body: strings.Repeat("a", n)}
}

func TestShortBodiesAreNeverTruncatable(t *testing.T) {
	for _, n := range []int{0, 1, 99, 100} {
		txt := New(item("x", n), DefaultThreshold)
		r := txt.Render()
		if r.Truncatable {
			t.Errorf("len %d: Truncatable = true", n)
		}
		if r.DisplayText != txt.item.Body {
			t.Errorf("len %d: DisplayText changed", n)
		}

		txt.Toggle()
		r = txt.Render()
		if r.Expanded || r.Truncatable || r.DisplayText != txt.item.Body {
			t.Errorf("len %d: toggle affected a short body: %+v", n, r)
		}
	}
}

func TestLongBodyCollapsesToThreshold(t *testing.T) {
	body := strings.Repeat("0123456789", 15)
	txt := New(dataset.TextItem{ID: "x", Body: body}, 0)

	r := txt.Render()
	if !r.Truncatable || r.Expanded {
		t.Fatalf("want truncatable collapsed, got %+v", r)
	}
	if !strings.HasSuffix(r.DisplayText, Ellipsis) {
		t.Errorf("collapsed text missing ellipsis: %q", r.DisplayText)
	}
	prefix := strings.TrimSuffix(r.DisplayText, Ellipsis)
	if utf8.RuneCountInString(prefix) != DefaultThreshold {
		t.Errorf("prefix has %d chars, want %d", utf8.RuneCountInString(prefix), DefaultThreshold)
	}
	if prefix != body[:DefaultThreshold] {
		t.Error("prefix is not the start of the body")
	}
}

func TestToggleRoundTripsFullBody(t *testing.T) {
	body := strings.Repeat("word ", 40)
	txt := New(dataset.TextItem{ID: "x", Body: body}, DefaultThreshold)

	txt.Toggle()
	r := txt.Render()
	if !r.Expanded || r.DisplayText != body {
		t.Fatalf("expanded render = %+v", r)
	}

	txt.Toggle()
	r = txt.Render()
	if r.Expanded || r.DisplayText == body {
		t.Fatalf("collapsed render = %+v", r)
	}

	txt.Toggle()
	if txt.Render().DisplayText != body {
		t.Error("body lost after second expand")
	}
}

func TestTruncationCountsCharactersNotBytes(t *testing.T) {
	body := strings.Repeat("é", 101) // 2 bytes each
	r := New(dataset.TextItem{ID: "x", Body: body}, 100).Render()
	if !r.Truncatable {
		t.Fatal("101 runes should be truncatable")
	}
	if got := utf8.RuneCountInString(strings.TrimSuffix(r.DisplayText, Ellipsis)); got != 100 {
		t.Errorf("kept %d runes, want 100", got)
	}

	short := strings.Repeat("é", 60) // 120 bytes, 60 runes
	if New(dataset.TextItem{ID: "y", Body: short}, 100).Truncatable() {
		t.Error("60 runes should not be truncatable")
	}
}

func TestCustomThreshold(t *testing.T) {
	r := New(item("x", 11), 10).Render()
	if r.DisplayText != strings.Repeat("a", 10)+Ellipsis {
		t.Errorf("DisplayText = %q", r.DisplayText)
	}
}

func TestSetKeyedByID(t *testing.T) {
	s := NewSet(DefaultThreshold)
	s.Reset("positive")

	a := item("a", 150)
	b := item("b", 150)

	if !s.Toggle(a) {
		t.Fatal("Toggle(a) should expand")
	}
	if !s.Render(a).Expanded {
		t.Error("a should render expanded")
	}
	if s.Render(b).Expanded {
		t.Error("b must not inherit a's flag")
	}

	if s.Toggle(a) {
		t.Error("second Toggle(a) should collapse")
	}
	if s.Len() != 0 {
		t.Errorf("Len = %d after collapse, want 0", s.Len())
	}
}

func TestSetShortItemNeverExpands(t *testing.T) {
	s := NewSet(DefaultThreshold)
	short := item("s", 10)
	if s.Toggle(short) {
		t.Error("short item expanded")
	}
	if s.Len() != 0 {
		t.Error("short item recorded in set")
	}
}

func TestSetResetOnListChange(t *testing.T) {
	s := NewSet(0)
	s.Reset("Positive#1")
	a := item("a", 150)
	s.Toggle(a)

	if s.Reset("Positive#1") {
		t.Error("Reset with same key should not clear")
	}
	if !s.Render(a).Expanded {
		t.Error("flag lost on same-key reset")
	}

	if !s.Reset("Negative#1") {
		t.Error("Reset with new key should clear")
	}
	if s.Render(a).Expanded {
		t.Error("flag survived list change")
	}
}
