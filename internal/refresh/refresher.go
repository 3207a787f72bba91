// Package refresh resolves the word of the day on a schedule so that the first
// visitor of a day is served from the cache.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/at-ishikawa/wordoftheday/internal/dailyword"
)

type Resolver interface {
	Resolve(ctx context.Context, today time.Time) (*dailyword.WordRecord, error)
}

type Refresher struct {
	resolver Resolver
	schedule string
	cron     *cron.Cron
	now      func() time.Time
}

// New creates a Refresher. The schedule is a standard five field cron spec
// evaluated in UTC.
func New(resolver Resolver, schedule string) *Refresher {
	return &Refresher{
		resolver: resolver,
		schedule: schedule,
		cron:     cron.New(cron.WithLocation(time.UTC), cron.WithLogger(cron.DiscardLogger)),
		now:      time.Now,
	}
}

// Start registers the refresh job and launches the scheduler.
func (r *Refresher) Start() error {
	if _, err := r.cron.AddFunc(r.schedule, func() {
		_ = r.RunOnce(context.Background())
	}); err != nil {
		return fmt.Errorf("cron.AddFunc(%q) > %w", r.schedule, err)
	}
	r.cron.Start()
	return nil
}

// RunOnce resolves today's word.
func (r *Refresher) RunOnce(ctx context.Context) error {
	record, err := r.resolver.Resolve(ctx, r.now().UTC())
	if err != nil {
		slog.Default().Warn("failed to refresh the word of the day", slog.Any("error", err))
		return fmt.Errorf("resolver.Resolve > %w", err)
	}
	slog.Default().Info("refreshed the word of the day",
		slog.String("date", record.Date),
		slog.String("word", record.Word),
		slog.String("source", string(record.Source)),
	)
	return nil
}

// Stop halts the scheduler and waits for a running job until ctx is done.
func (r *Refresher) Stop(ctx context.Context) error {
	select {
	case <-r.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
