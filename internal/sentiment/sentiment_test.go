package sentiment

import (
	"strings"
	"testing"

	"github.com/abelbrown/sentiscope/internal/dataset"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"markdown emphasis", "this is **really** _good_", "this is really good"},
		{"markdown link keeps text", "see [the docs](https://example.com/x) now", "see the docs now"},
		{"bare url removed", "look https://example.com/a?b=c here", "look here"},
		{"html entities", "fish &amp; chips", "fish & chips"},
		{"html tags", "<b>bold</b> move", "bold move"},
		{"whitespace collapsed", "a\n\n  b\tc", "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  dataset.Category
	}{
		{1, dataset.Positive},
		{0.20, dataset.Positive},
		{0.19, dataset.Neutral},
		{0, dataset.Neutral},
		{-0.19, dataset.Neutral},
		{-0.20, dataset.Negative},
		{-1, dataset.Negative},
	}
	for _, tt := range tests {
		if got := Label(tt.score); got != tt.want {
			t.Errorf("Label(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClassifyClearCases(t *testing.T) {
	tests := []struct {
		text string
		want dataset.Category
	}{
		{"I love this community! Everyone is so supportive and wonderful.", dataset.Positive},
		{"This is terrible. I hate it, what an awful waste of time.", dataset.Negative},
		{"The thread was posted on Tuesday.", dataset.Neutral},
	}
	for _, tt := range tests {
		score, got := Classify(tt.text)
		if got != tt.want {
			t.Errorf("Classify(%q) = %s (%.3f), want %s", tt.text, got, score, tt.want)
		}
		if score < -1 || score > 1 {
			t.Errorf("score %.3f out of range", score)
		}
	}
}

func TestScoreIgnoresLinks(t *testing.T) {
	withLink := "Great write-up https://example.com/terrible-awful-hate"
	without := "Great write-up"
	if a, b := Score(withLink), Score(without); a != b {
		t.Errorf("link text affected score: %.3f vs %.3f", a, b)
	}
	if !strings.Contains(Clean(withLink), "Great") {
		t.Error("Clean dropped the sentence")
	}
}
