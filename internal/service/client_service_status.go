package service

import (
	"sync"

	"github.com/MKhiriev/go-object-sync/models"
)

// statusHub keeps the latest sync status and fans it out to subscribers.
// A slow subscriber only ever sees the most recent status.
type statusHub struct {
	mu      sync.Mutex
	current models.SyncStatus
	subs    map[int]chan models.SyncStatus
	nextID  int
}

func newStatusHub() *statusHub {
	return &statusHub{
		current: models.SyncStatus{State: models.StateNotStarted},
		subs:    make(map[int]chan models.SyncStatus),
	}
}

func (h *statusHub) get() models.SyncStatus {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

func (h *statusHub) set(status models.SyncStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.current = status
	for _, ch := range h.subs {
		select {
		case <-ch:
		default:
		}
		ch <- status
	}
}

func (h *statusHub) setState(state models.SyncState) {
	h.set(models.SyncStatus{State: state})
}

func (h *statusHub) setProgress(state models.SyncState, progress float64) {
	h.set(models.SyncStatus{State: state, Progress: progress})
}

func (h *statusHub) fail(err error) {
	h.set(models.SyncStatus{State: models.StateFailed, Err: err})
}

// subscribe returns a channel primed with the current status and a cancel
// func that closes it.
func (h *statusHub) subscribe() (<-chan models.SyncStatus, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan models.SyncStatus, 1)
	ch <- h.current

	id := h.nextID
	h.nextID++
	h.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subs, id)
			close(ch)
		})
	}
}

// progressTracker aggregates per-manager progress of a parallel upload into
// one percentage.
type progressTracker struct {
	mu     sync.Mutex
	done   map[models.ObjectType]int
	total  map[models.ObjectType]int
	report func(percent float64)
}

func newProgressTracker(report func(percent float64)) *progressTracker {
	return &progressTracker{
		done:   make(map[models.ObjectType]int),
		total:  make(map[models.ObjectType]int),
		report: report,
	}
}

func (p *progressTracker) forType(t models.ObjectType) ProgressFunc {
	return func(done, total int) {
		p.mu.Lock()
		p.done[t] = done
		p.total[t] = total

		var d, n int
		for k, v := range p.total {
			n += v
			d += p.done[k]
		}
		p.mu.Unlock()

		if n == 0 {
			p.report(100)
			return
		}
		p.report(float64(d) * 100 / float64(n))
	}
}
