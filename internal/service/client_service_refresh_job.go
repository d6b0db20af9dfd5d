package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/char-archive/internal/logger"
)

type clientRefreshJob struct {
	archive ClientArchiveService
	logger  *logger.Logger

	// onRefresh is called after every successful refresh.
	onRefresh func()

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientRefreshJob creates a clientRefreshJob that calls archive.Refresh on
// a ticker. The job is idle until Start is called.
func NewClientRefreshJob(archive ClientArchiveService, onRefresh func(), logger *logger.Logger) ClientRefreshJob {
	return &clientRefreshJob{archive: archive, onRefresh: onRefresh, logger: logger}
}

// Start implements ClientRefreshJob. Ticks that fall while a save is in
// flight are skipped so the refetch cannot race the optimistic projection.
func (j *clientRefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.tick(jobCtx)
			}
		}
	}()
}

func (j *clientRefreshJob) tick(ctx context.Context) {
	if j.archive.Saving() {
		return
	}
	if err := j.archive.Refresh(ctx); err != nil {
		j.logger.Warn().Err(err).Msg("background refresh failed")
		return
	}
	if j.onRefresh != nil {
		j.onRefresh()
	}
}

// Stop implements ClientRefreshJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
