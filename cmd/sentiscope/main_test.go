package main

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/abelbrown/sentiscope/internal/config"
	"github.com/abelbrown/sentiscope/internal/corpus"
)

func TestMergeKnown(t *testing.T) {
	got := mergeKnown([]string{"worldnews", "golang"}, []string{"GoLang", "rust"})
	want := []string{"worldnews", "golang", "rust"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeKnown = %v, want %v", got, want)
	}
}

func TestBuildAnalyzerStatic(t *testing.T) {
	cfg := config.DefaultConfig()
	a, known, closeFn := buildAnalyzer(context.Background(), cfg)
	defer closeFn()

	if a.Name() != "static" {
		t.Errorf("Name = %q, want static", a.Name())
	}
	if len(known) != len(cfg.KnownSubreddits) {
		t.Errorf("known = %v", known)
	}
}

func TestBuildAnalyzerLexiconAddsCorpusSubreddits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.db")
	st, err := corpus.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	_, err = st.SaveComments([]corpus.Comment{
		{ID: "1", Subreddit: "sqlite", Body: "I love this database", Created: time.Now()},
	})
	st.Close()
	if err != nil {
		t.Fatal(err)
	}

	cfg := config.DefaultConfig()
	cfg.Backend = config.BackendLexicon
	cfg.CorpusPath = path

	a, known, closeFn := buildAnalyzer(context.Background(), cfg)
	defer closeFn()

	if a.Name() != "lexicon" {
		t.Errorf("Name = %q, want lexicon", a.Name())
	}
	if known[len(known)-1] != "sqlite" {
		t.Errorf("known = %v, want corpus subreddit appended", known)
	}
}
