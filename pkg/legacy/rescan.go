package legacy

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/tagline/pkg/logger"
)

// Refresh drops the cached result and scans the store again. It returns the
// number of posts that still use the legacy block.
func (s *Scanner) Refresh(ctx context.Context) (int, error) {
	s.Invalidate()
	posts, err := s.FindPosts(ctx)
	if err != nil {
		return 0, err
	}
	return len(posts), nil
}

// ScheduleRefresh runs Refresh on the cron spec, which accepts the standard
// five field syntax and descriptors such as "@every 30m" or "@hourly".
// A run is skipped while the previous one is still in progress. The
// returned stop function waits for a running refresh to finish.
func (s *Scanner) ScheduleRefresh(spec string, timeout time.Duration) (stop func(), err error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := c.AddFunc(spec, func() { s.refreshJob(timeout) }); err != nil {
		return nil, errors.Join(ErrSchedule, err)
	}
	c.Start()

	s.log.Info("legacy rescan scheduled", slog.String("schedule", spec))
	return func() { <-c.Stop().Done() }, nil
}

func (s *Scanner) refreshJob(timeout time.Duration) {
	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	n, err := s.Refresh(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "legacy rescan failed", logger.Error(err))
		return
	}
	s.log.InfoContext(ctx, "legacy rescan finished", slog.Int("posts", n))
}
