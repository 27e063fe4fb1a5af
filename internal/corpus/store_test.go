package corpus

import (
	"context"
	"testing"
	"time"
)

func openTest(t *testing.T) *Store {
	t.Helper()
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	return st
}

func TestOpenCreatesTable(t *testing.T) {
	st := openTest(t)

	var name string
	err := st.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='comments'").Scan(&name)
	if err != nil {
		t.Fatalf("comments table not created: %v", err)
	}
}

func TestSaveCommentsIgnoresDuplicates(t *testing.T) {
	st := openTest(t)
	now := time.Now().UTC().Truncate(time.Second)

	comments := []Comment{
		{ID: "c1", Subreddit: "golang", Author: "gopher", Body: "generics are nice", Created: now},
		{ID: "c2", Subreddit: "golang", Author: "gopher", Body: "errors are values", Created: now},
	}
	n, err := st.SaveComments(comments)
	if err != nil {
		t.Fatalf("SaveComments failed: %v", err)
	}
	if n != 2 {
		t.Errorf("first save added %d, want 2", n)
	}

	n, err = st.SaveComments(comments)
	if err != nil {
		t.Fatalf("second SaveComments failed: %v", err)
	}
	if n != 0 {
		t.Errorf("second save added %d, want 0", n)
	}
}

func TestSaveCommentsSkipsEmpty(t *testing.T) {
	st := openTest(t)
	n, err := st.SaveComments([]Comment{
		{ID: "", Subreddit: "golang", Body: "no id"},
		{ID: "x", Subreddit: "golang", Body: "   "},
	})
	if err != nil {
		t.Fatalf("SaveComments failed: %v", err)
	}
	if n != 0 {
		t.Errorf("added %d, want 0", n)
	}
}

func TestCommentsFiltersBySubredditAndAge(t *testing.T) {
	st := openTest(t)
	now := time.Now().UTC().Truncate(time.Second)

	_, err := st.SaveComments([]Comment{
		{ID: "new", Subreddit: "golang", Body: "new", Created: now.Add(-time.Hour)},
		{ID: "old", Subreddit: "golang", Body: "old", Created: now.Add(-48 * time.Hour)},
		{ID: "newest", Subreddit: "r/GoLang", Body: "newest", Created: now.Add(-time.Minute)},
		{ID: "other", Subreddit: "rust", Body: "other", Created: now},
	})
	if err != nil {
		t.Fatalf("SaveComments failed: %v", err)
	}

	got, err := st.Comments(context.Background(), "golang", now.Add(-24*time.Hour))
	if err != nil {
		t.Fatalf("Comments failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d comments, want 2: %+v", len(got), got)
	}
	if got[0].ID != "newest" || got[1].ID != "new" {
		t.Errorf("order = [%s %s], want [newest new]", got[0].ID, got[1].ID)
	}
	if !got[0].Created.Equal(now.Add(-time.Minute)) {
		t.Errorf("Created round-trip = %v", got[0].Created)
	}
}

func TestSubreddits(t *testing.T) {
	st := openTest(t)
	now := time.Now()
	_, err := st.SaveComments([]Comment{
		{ID: "1", Subreddit: "worldnews", Body: "a", Created: now},
		{ID: "2", Subreddit: "golang", Body: "b", Created: now},
		{ID: "3", Subreddit: "golang", Body: "c", Created: now},
	})
	if err != nil {
		t.Fatalf("SaveComments failed: %v", err)
	}

	subs, err := st.Subreddits(context.Background())
	if err != nil {
		t.Fatalf("Subreddits failed: %v", err)
	}
	if len(subs) != 2 || subs[0] != "golang" || subs[1] != "worldnews" {
		t.Errorf("Subreddits = %v", subs)
	}
}

func TestNormalizeSubreddit(t *testing.T) {
	tests := map[string]string{
		"golang":    "golang",
		" r/golang": "golang",
		"/r/golang": "golang",
		"R/golang":  "golang",
		"r/":        "r/",
	}
	for in, want := range tests {
		if got := normalizeSubreddit(in); got != want {
			t.Errorf("normalizeSubreddit(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCounts(t *testing.T) {
	st := openTest(t)
	now := time.Now().UTC()
	_, err := st.SaveComments([]Comment{
		{ID: "1", Subreddit: "golang", Body: "a", Created: now},
		{ID: "2", Subreddit: "r/golang", Body: "b", Created: now},
		{ID: "3", Subreddit: "rust", Body: "c", Created: now},
	})
	if err != nil {
		t.Fatalf("SaveComments failed: %v", err)
	}

	counts, err := st.Counts(context.Background())
	if err != nil {
		t.Fatalf("Counts failed: %v", err)
	}
	if counts["golang"] != 2 || counts["rust"] != 1 || len(counts) != 2 {
		t.Errorf("counts = %v", counts)
	}
}
