package workers

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers returns the workers enabled by cfg: the periodic full
// sync always, live updates when cfg.LiveUpdates is set.
func NewClientWorkers(services *service.ClientServices, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	w := &Workers{}
	w.workers = append(w.workers, NewSyncWorker(services.Orchestrator, services.SyncJob, cfg.SyncInterval, logger))
	if cfg.LiveUpdates {
		w.workers = append(w.workers, NewLiveWorker(services.LiveUpdates, logger))
	}
	return w
}

// Run starts every worker and blocks until all of them returned.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func(worker Worker) {
			defer wg.Done()
			worker.Run(ctx)
		}(worker)
	}
	wg.Wait()
}

type syncWorker struct {
	syncer   service.SyncOrchestrator
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger
}

// NewSyncWorker runs one full sync right away, then every interval.
func NewSyncWorker(syncer service.SyncOrchestrator, job service.ClientSyncJob, interval time.Duration, logger *logger.Logger) Worker {
	return &syncWorker{syncer: syncer, job: job, interval: interval, logger: logger}
}

func (s *syncWorker) Run(ctx context.Context) {
	if err := s.syncer.FullSync(ctx); err != nil && !errors.Is(err, context.Canceled) {
		s.logger.Err(err).Str("func", "syncWorker.Run").Msg("initial full sync failed")
	}

	s.job.Start(ctx, s.interval)
	<-ctx.Done()
	s.job.Stop()
}

type liveWorker struct {
	live   service.LiveUpdateReceiver
	logger *logger.Logger
}

func NewLiveWorker(live service.LiveUpdateReceiver, logger *logger.Logger) Worker {
	return &liveWorker{live: live, logger: logger}
}

func (l *liveWorker) Run(ctx context.Context) {
	l.logger.Info().Str("func", "liveWorker.Run").Msg("subscribing to live updates")
	l.live.Start(ctx)
	<-ctx.Done()
	l.live.Stop()
}
