package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/abelbrown/sentiscope/internal/dataset"
	"golang.org/x/time/rate"
)

// Throttled spaces out calls to the wrapped analyzer. Rapid re-submissions
// wait their turn instead of hitting the backend back to back.
type Throttled struct {
	next    Analyzer
	limiter *rate.Limiter
}

// NewThrottled allows one call per interval with a burst of one.
// interval <= 0 disables throttling.
func NewThrottled(next Analyzer, interval time.Duration) *Throttled {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Throttled{next: next, limiter: rate.NewLimiter(limit, 1)}
}

func (t *Throttled) Name() string { return t.next.Name() }

func (t *Throttled) Analyze(ctx context.Context, source string) (dataset.Tables, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return dataset.Tables{}, fmt.Errorf("rate limiter: %w", err)
	}
	return t.next.Analyze(ctx, source)
}
