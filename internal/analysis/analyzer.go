// Package analysis is the boundary to whatever produces sentiment tables for
// a subreddit. The dashboard only sees the Analyzer interface.
package analysis

import (
	"context"
	"errors"
	"fmt"

	"github.com/abelbrown/sentiscope/internal/dataset"
)

var (
	// ErrMalformed wraps validation failures of backend output.
	ErrMalformed = errors.New("malformed analysis result")
	// ErrNoComments means the backend has nothing for the subreddit.
	ErrNoComments = errors.New("no comments for subreddit")
)

// Analyzer produces the snapshot and item tables for one subreddit.
type Analyzer interface {
	Analyze(ctx context.Context, source string) (dataset.Tables, error)
	Name() string
}

// Func adapts a function to Analyzer.
type Func func(ctx context.Context, source string) (dataset.Tables, error)

func (f Func) Analyze(ctx context.Context, source string) (dataset.Tables, error) {
	return f(ctx, source)
}

func (f Func) Name() string { return "func" }

// Fetch runs a and validates its output. Invalid output is reported as
// ErrMalformed; the caller keeps whatever tables it already had.
func Fetch(ctx context.Context, a Analyzer, source string) (dataset.Tables, error) {
	tables, err := a.Analyze(ctx, source)
	if err != nil {
		return dataset.Tables{}, fmt.Errorf("%s: %w", a.Name(), err)
	}
	if err := dataset.Validate(tables); err != nil {
		return dataset.Tables{}, fmt.Errorf("%s: %w: %w", a.Name(), ErrMalformed, err)
	}
	return tables, nil
}

// Static returns the reference tables for every subreddit.
type Static struct{}

func (Static) Analyze(ctx context.Context, source string) (dataset.Tables, error) {
	if err := ctx.Err(); err != nil {
		return dataset.Tables{}, err
	}
	return dataset.Reference(), nil
}

func (Static) Name() string { return "static" }
