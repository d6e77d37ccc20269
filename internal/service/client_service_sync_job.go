package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-object-sync/internal/logger"
)

// fullSyncer is the part of SyncOrchestrator the sync job drives.
type fullSyncer interface {
	FullSync(ctx context.Context) error
}

type clientSyncJob struct {
	syncer fullSyncer

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob that calls syncer.FullSync on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(syncer fullSyncer, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncer: syncer, logger: logger}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that calls FullSync every interval. If interval
// is zero or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
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

func (j *clientSyncJob) tick(ctx context.Context) {
	err := j.syncer.FullSync(ctx)
	switch {
	case err == nil:
	case errors.Is(err, ErrFullSyncAlreadyRunning):
		j.logger.Debug().Str("func", "clientSyncJob.tick").Msg("full sync already running, skipping tick")
	case errors.Is(err, context.Canceled):
	default:
		j.logger.Err(err).Str("func", "clientSyncJob.tick").Msg("scheduled full sync failed")
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
