package analysis

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/abelbrown/sentiscope/internal/corpus"
	"github.com/abelbrown/sentiscope/internal/dataset"
	"github.com/abelbrown/sentiscope/internal/sentiment"
)

// CommentSource is the slice of the corpus store the lexicon backend reads.
type CommentSource interface {
	Comments(ctx context.Context, subreddit string, since time.Time) ([]corpus.Comment, error)
}

// Window maps each timeframe to its maximum comment age.
var Window = map[dataset.Timeframe]time.Duration{
	dataset.Today:     24 * time.Hour,
	dataset.LastWeek:  7 * 24 * time.Hour,
	dataset.LastMonth: 30 * 24 * time.Hour,
}

// DefaultItemsPerCategory is how many example comments each category keeps.
const DefaultItemsPerCategory = 10

// Lexicon classifies stored comments with VADER and aggregates them.
// Snapshot values are percentages of the window's comments, so every
// non-empty window sums to 100.
type Lexicon struct {
	src         CommentSource
	perCategory int
	now         func() time.Time
}

// NewLexicon creates a lexicon backend over src. perCategory <= 0 selects
// DefaultItemsPerCategory.
func NewLexicon(src CommentSource, perCategory int) *Lexicon {
	if perCategory <= 0 {
		perCategory = DefaultItemsPerCategory
	}
	return &Lexicon{src: src, perCategory: perCategory, now: time.Now}
}

func (l *Lexicon) Name() string { return "lexicon" }

// Analyze reads the last month of comments for source and builds tables.
func (l *Lexicon) Analyze(ctx context.Context, source string) (dataset.Tables, error) {
	now := l.now()
	comments, err := l.src.Comments(ctx, source, now.Add(-Window[dataset.LastMonth]))
	if err != nil {
		return dataset.Tables{}, fmt.Errorf("load comments: %w", err)
	}
	if len(comments) == 0 {
		return dataset.Tables{}, fmt.Errorf("r/%s: %w", source, ErrNoComments)
	}

	// Newest first so item lists show recent comments.
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].Created.After(comments[j].Created)
	})

	counts := make(map[dataset.Timeframe]map[dataset.Category]int, len(Window))
	for tf := range Window {
		counts[tf] = make(map[dataset.Category]int)
	}
	items := make(dataset.ItemTable, 3)
	for _, c := range dataset.Categories() {
		items[c] = []dataset.TextItem{}
	}

	for _, c := range comments {
		if err := ctx.Err(); err != nil {
			return dataset.Tables{}, err
		}
		_, label := sentiment.Classify(c.Body)
		age := now.Sub(c.Created)
		for tf, maxAge := range Window {
			if age <= maxAge {
				counts[tf][label]++
			}
		}
		if len(items[label]) < l.perCategory {
			items[label] = append(items[label], dataset.TextItem{
				ID:   c.ID,
				Body: sentiment.Clean(c.Body),
			})
		}
	}

	snaps := make(dataset.SnapshotTable, len(Window))
	for _, tf := range dataset.Timeframes() {
		snaps[tf] = percentages(counts[tf])
	}
	return dataset.Tables{Snapshots: snaps, Items: items}, nil
}

// percentages converts counts to whole percentages summing to exactly 100
// using the largest-remainder method. Ties go to canonical category order.
// All-zero input yields an all-zero snapshot.
func percentages(counts map[dataset.Category]int) dataset.Snapshot {
	cats := dataset.Categories()
	snap := make(dataset.Snapshot, len(cats))

	total := 0
	for _, c := range cats {
		total += counts[c]
	}
	for i, c := range cats {
		snap[i] = dataset.CategoryCount{Label: c}
	}
	if total == 0 {
		return snap
	}

	type rem struct {
		idx int
		r   int
	}
	rems := make([]rem, len(cats))
	assigned := 0
	for i, c := range cats {
		scaled := counts[c] * 100
		snap[i].Value = scaled / total
		assigned += snap[i].Value
		rems[i] = rem{idx: i, r: scaled % total}
	}
	sort.SliceStable(rems, func(a, b int) bool { return rems[a].r > rems[b].r })
	for k := 0; assigned < 100; k++ {
		snap[rems[k].idx].Value++
		assigned++
	}
	return snap
}
