package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-object-sync/internal/adapter"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/models"
)

// objectReceiver is the part of SyncOrchestrator live updates are fed into.
type objectReceiver interface {
	Receive(ctx context.Context, objects []models.SyncObject) error
}

type liveUpdateReceiver struct {
	live     adapter.LiveUpdates
	receiver objectReceiver

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewLiveUpdateReceiver feeds objects pushed on live into receiver. Pushed
// objects go through the same receive path as downloaded ones, so an echo of
// a local save is dropped by its checksum.
func NewLiveUpdateReceiver(live adapter.LiveUpdates, receiver objectReceiver, logger *logger.Logger) LiveUpdateReceiver {
	return &liveUpdateReceiver{live: live, receiver: receiver, logger: logger}
}

func (l *liveUpdateReceiver) Start(ctx context.Context) {
	l.Stop()

	l.mu.Lock()
	liveCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.wg.Add(1)
	l.mu.Unlock()

	go func() {
		defer l.wg.Done()

		err := l.live.Subscribe(liveCtx, l.handle)
		if err != nil && !errors.Is(err, context.Canceled) {
			l.logger.Err(err).
				Str("func", "liveUpdateReceiver.Start").
				Msg("live updates stopped")
		}
	}()
}

func (l *liveUpdateReceiver) handle(ctx context.Context, obj models.SyncObject) error {
	return l.receiver.Receive(ctx, []models.SyncObject{obj})
}

func (l *liveUpdateReceiver) Stop() {
	l.mu.Lock()
	cancel := l.cancel
	l.cancel = nil
	l.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	l.wg.Wait()
}

func (l *liveUpdateReceiver) Connected() bool {
	return l.live.Connected()
}
