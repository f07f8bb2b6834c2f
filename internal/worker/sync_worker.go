package worker

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/trknhr/ripeness/internal/logger"
)

type SyncWorker interface {
	Key() string
	Path() string
	NeedsReload() bool
	Sync() error
}

// RunSyncWorkers syncs every stale source concurrently and returns the first
// failure. Up-to-date sources are skipped.
func RunSyncWorkers(ctx context.Context, syncers ...SyncWorker) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, s := range syncers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !s.NeedsReload() {
				logger.Debug("[%s] sync skipped (up-to-date)", s.Key())
				return nil
			}
			if err := s.Sync(); err != nil {
				logger.Error("[%s] sync failed: %v", s.Key(), err)
				return err
			}
			logger.Info("[%s] sync done", s.Key())
			return nil
		})
	}
	return g.Wait()
}
