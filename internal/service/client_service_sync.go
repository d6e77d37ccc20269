// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-object-sync/internal/adapter"
	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/crypto"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/queue"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/models"
)

type syncOrchestrator struct {
	transport adapter.Transport
	checksums store.ChecksumStore
	cursors   store.CursorRepository
	codec     *objectCodec
	queue     *queue.IdentityQueue[models.SyncObject, models.SyncObject]
	uploader  *directUploadPipeline
	receiver  *receiver
	cfg       config.Sync

	mu       sync.RWMutex
	managers map[models.ObjectType]*objectManager

	running atomic.Bool
	status  *statusHub

	pendingMu sync.Mutex
	uploading bool
	pending   []models.Entity

	logger *logger.Logger
}

// NewSyncOrchestrator wires the sync engine on top of the client storages
// and the object API transport. Domain managers are added with Register.
func NewSyncOrchestrator(storages *store.ClientStorages, transport adapter.Transport, encryptor crypto.Encryptor, cfg config.ClientConfig, logger *logger.Logger) SyncOrchestrator {
	codec := newObjectCodec(encryptor)

	o := &syncOrchestrator{
		transport: transport,
		checksums: storages.Checksums,
		cursors:   storages.Cursors,
		codec:     codec,
		queue:     queue.New[models.SyncObject, models.SyncObject](),
		uploader:  newDirectUploadPipeline(transport, cfg.Adapter.TransferConcurrency, cfg.Sync.DirectUploadChunkSize, logger),
		cfg:       cfg.Sync,
		managers:  make(map[models.ObjectType]*objectManager),
		status:    newStatusHub(),
		logger:    logger,
	}
	o.receiver = &receiver{
		lookup:    o.domainManager,
		checksums: storages.Checksums,
		codec:     codec,
		queue:     o.queue,
		logger:    logger,
	}

	return o
}

func (o *syncOrchestrator) Register(manager DomainManager) (ObjectManager, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	t := manager.Type()
	if _, ok := o.managers[t]; ok {
		return nil, fmt.Errorf("%w: %s", ErrManagerAlreadyExists, t)
	}

	m := &objectManager{
		domain:    manager,
		transport: o.transport,
		checksums: o.checksums,
		cursors:   o.cursors,
		codec:     o.codec,
		queue:     o.queue,
		uploader:  o.uploader,
		receiver:  o.receiver,
		chunkSize: o.cfg.ChunkSize,
		threshold: o.cfg.DirectUploadThreshold,
		logger:    o.logger,
	}
	o.managers[t] = m

	o.logger.Debug().
		Str("func", "syncOrchestrator.Register").
		Str("object_type", string(t)).
		Msg("manager registered")

	return m, nil
}

func (o *syncOrchestrator) Manager(t models.ObjectType) (ObjectManager, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	m, ok := o.managers[t]
	return m, ok
}

func (o *syncOrchestrator) domainManager(t models.ObjectType) (DomainManager, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	m, ok := o.managers[t]
	if !ok {
		return nil, false
	}
	return m.domain, true
}

// ordered returns the managers in receive priority order.
func (o *syncOrchestrator) ordered() []*objectManager {
	o.mu.RLock()
	defer o.mu.RUnlock()

	types := make([]models.ObjectType, 0, len(o.managers))
	for t := range o.managers {
		types = append(types, t)
	}
	models.SortByReceivePriority(types)

	out := make([]*objectManager, 0, len(types))
	for _, t := range types {
		out = append(out, o.managers[t])
	}
	return out
}

func (o *syncOrchestrator) Status() models.SyncStatus {
	return o.status.get()
}

func (o *syncOrchestrator) Subscribe() (<-chan models.SyncStatus, func()) {
	return o.status.subscribe()
}

// FullSync implements [SyncOrchestrator].
func (o *syncOrchestrator) FullSync(ctx context.Context) error {
	if !o.running.CompareAndSwap(false, true) {
		return ErrFullSyncAlreadyRunning
	}
	defer o.running.Store(false)

	log := logger.FromContext(ctx)
	started := time.Now()

	err := o.fullSync(ctx)
	if err != nil {
		o.endUpload()
		o.status.fail(err)
		log.Err(err).
			Str("func", "syncOrchestrator.FullSync").
			Dur("took", time.Since(started)).
			Msg("full sync failed")
		return err
	}

	o.status.setState(models.StateFinished)
	log.Info().
		Str("func", "syncOrchestrator.FullSync").
		Dur("took", time.Since(started)).
		Msg("full sync finished")
	return nil
}

func (o *syncOrchestrator) fullSync(ctx context.Context) error {
	o.status.setProgress(models.StateDownloading, 0)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.download(ctx); err != nil {
		return fmt.Errorf("download: %w", err)
	}

	o.status.setProgress(models.StateUploading, 0)
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := o.flushLeftover(ctx); err != nil {
		return fmt.Errorf("flush changes of a failed pass: %w", err)
	}
	o.beginUpload()
	if err := o.upload(ctx); err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	o.status.setState(models.StateDrainingChanged)
	if err := o.drainChanged(ctx); err != nil {
		return fmt.Errorf("drain changed: %w", err)
	}
	return nil
}

// download fetches the checksums changed since the download cursor and
// fetches full objects only for ids whose checksum is new or different.
func (o *syncOrchestrator) download(ctx context.Context) error {
	log := logger.FromContext(ctx)
	managers := o.ordered()
	if len(managers) == 0 {
		return nil
	}

	since, err := o.cursors.GetCursor(ctx, models.CursorScopeDownload)
	if err != nil {
		return fmt.Errorf("load download cursor: %w", err)
	}

	types := make([]models.ObjectType, 0, len(managers))
	for _, m := range managers {
		types = append(types, m.Type())
	}

	req := models.FetchRequest{Types: types}
	if !since.IsZero() {
		req.ReceivedAfter = &since
	}
	sums, err := o.transport.FetchChecksums(ctx, req)
	if err != nil {
		return fmt.Errorf("fetch checksums: %w", err)
	}
	if len(sums) == 0 {
		o.status.setProgress(models.StateDownloading, 100)
		return nil
	}

	changed, tombstones, err := o.diff(ctx, sums)
	if err != nil {
		return err
	}

	latest := since
	for _, s := range sums {
		if s.ReceivedAt.After(latest) {
			latest = s.ReceivedAt
		}
	}

	total := len(tombstones)
	for _, ids := range changed {
		total += len(ids)
	}
	done := 0
	progress := func(n int) {
		done += n
		if total > 0 {
			o.status.setProgress(models.StateDownloading, float64(done)*100/float64(total))
		}
	}

	var errs []error
	if len(tombstones) > 0 {
		_, err = o.receiver.receiveSerialized(ctx, tombstones, false)
		errs = append(errs, err)
		progress(len(tombstones))
	}

	chunkSize := max(o.cfg.ChunkSize, 1)
	for _, m := range managers {
		ids := changed[m.Type()]
		for start := 0; start < len(ids); start += chunkSize {
			if err = ctx.Err(); err != nil {
				return combine(append(errs, err)...)
			}

			chunk := ids[start:min(start+chunkSize, len(ids))]
			objects, err := o.transport.FetchAll(ctx, models.FetchRequest{IDs: chunk, WithDataURL: true})
			if err != nil {
				log.Err(err).
					Str("func", "syncOrchestrator.download").
					Str("object_type", string(m.Type())).
					Int("chunk", start/chunkSize).
					Msg("failed to fetch objects")
				return combine(append(errs, fmt.Errorf("fetch %s objects: %w", m.Type(), err))...)
			}

			_, err = o.receiver.receiveSerialized(ctx, objects, false)
			errs = append(errs, err)
			progress(len(chunk))
		}
	}

	err = combine(errs...)
	if blocksCursor(err) {
		return err
	}
	if latest.After(since) {
		if cerr := o.cursors.SetCursor(ctx, models.CursorScopeDownload, latest); cerr != nil {
			return combine(err, fmt.Errorf("advance download cursor: %w", cerr))
		}
	}
	if err != nil {
		log.Warn().Err(err).
			Str("func", "syncOrchestrator.download").
			Msg("some objects could not be decoded")
	}
	return nil
}

// diff compares remote checksums with the local ledger. It returns the ids
// to fetch per type and the tombstones to apply directly.
func (o *syncOrchestrator) diff(ctx context.Context, sums []models.ObjectChecksum) (map[models.ObjectType][]string, []models.SyncObject, error) {
	ids := make([]string, 0, len(sums))
	for _, s := range sums {
		ids = append(ids, s.ID)
	}
	known, err := o.checksums.GetMany(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("load checksums: %w", err)
	}

	changed := make(map[models.ObjectType][]string)
	var tombstones []models.SyncObject
	for _, s := range sums {
		record, isKnown := known[s.ID]
		if s.Deleted {
			if isKnown {
				deletedAt := s.ReceivedAt
				if deletedAt.IsZero() {
					deletedAt = time.Now().UTC()
				}
				tombstones = append(tombstones, models.SyncObject{
					ID:           s.ID,
					Type:         s.Type,
					DataChecksum: s.DataChecksum,
					UpdatedAt:    deletedAt,
					DeletedAt:    &deletedAt,
					ReceivedAt:   &deletedAt,
				})
			}
			continue
		}
		if isKnown && record.PreviousChecksum == s.DataChecksum {
			continue
		}
		changed[s.Type] = append(changed[s.Type], s.ID)
	}

	return changed, tombstones, nil
}

// upload runs SaveAll of every manager concurrently.
func (o *syncOrchestrator) upload(ctx context.Context) error {
	managers := o.ordered()
	tracker := newProgressTracker(func(percent float64) {
		o.status.setProgress(models.StateUploading, percent)
	})

	g, gctx := errgroup.WithContext(ctx)
	for _, m := range managers {
		progress := tracker.forType(m.Type())
		g.Go(func() error {
			_, err := m.SaveAll(gctx, progress)
			return err
		})
	}
	return g.Wait()
}

func (o *syncOrchestrator) beginUpload() {
	o.pendingMu.Lock()
	defer o.pendingMu.Unlock()
	o.uploading = true
}

func (o *syncOrchestrator) endUpload() {
	o.pendingMu.Lock()
	defer o.pendingMu.Unlock()
	o.uploading = false
}

// flushLeftover saves the changes a failed pass left queued. It runs before
// the upload pass lists newer copies of the same entities.
func (o *syncOrchestrator) flushLeftover(ctx context.Context) error {
	o.pendingMu.Lock()
	leftover := o.pending
	o.pending = nil
	o.pendingMu.Unlock()

	if len(leftover) == 0 {
		return nil
	}

	err := o.saveEntities(ctx, latestByID(leftover))
	if err != nil {
		o.requeue(leftover, nil)
	}
	return err
}

// drainChanged flushes the entities changed during the upload pass until no
// more arrive. The queue is closed under the same lock that checks it is
// empty, so nothing is left behind.
func (o *syncOrchestrator) drainChanged(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		o.pendingMu.Lock()
		batch := latestByID(o.pending)
		o.pending = nil
		if len(batch) == 0 {
			o.uploading = false
			o.pendingMu.Unlock()
			return nil
		}
		o.pendingMu.Unlock()

		logger.FromContext(ctx).Debug().
			Str("func", "syncOrchestrator.drainChanged").
			Int("objects", len(batch)).
			Msg("flushing changes made during upload")

		if err := o.saveEntities(ctx, batch); err != nil {
			return err
		}
	}
}

// ObjectsChanged implements [SyncOrchestrator].
func (o *syncOrchestrator) ObjectsChanged(ctx context.Context, entities ...models.Entity) error {
	if len(entities) == 0 {
		return nil
	}

	o.pendingMu.Lock()
	if o.uploading {
		o.pending = append(o.pending, entities...)
		o.pendingMu.Unlock()
		return nil
	}
	// Changes left queued by a failed pass are flushed with these ones and
	// never after them, so an older copy cannot overwrite a newer one.
	leftover := o.pending
	o.pending = nil
	o.pendingMu.Unlock()

	if len(leftover) == 0 {
		return o.saveEntities(ctx, entities)
	}

	err := o.saveEntities(ctx, latestByID(append(leftover, entities...)))
	if err != nil {
		o.requeue(leftover, entities)
	}
	return err
}

// requeue puts back the leftover changes not superseded by entities.
func (o *syncOrchestrator) requeue(leftover, entities []models.Entity) {
	superseded := make(map[string]struct{}, len(entities))
	for _, e := range entities {
		superseded[e.ID] = struct{}{}
	}

	var keep []models.Entity
	for _, e := range leftover {
		if _, ok := superseded[e.ID]; !ok {
			keep = append(keep, e)
		}
	}
	if len(keep) == 0 {
		return
	}

	o.pendingMu.Lock()
	defer o.pendingMu.Unlock()
	o.pending = append(keep, o.pending...)
}

// latestByID keeps one entity per id, the one with the latest UpdatedAt or
// the later one on a tie, in first-seen order.
func latestByID(entities []models.Entity) []models.Entity {
	index := make(map[string]int, len(entities))
	out := make([]models.Entity, 0, len(entities))
	for _, e := range entities {
		i, seen := index[e.ID]
		if !seen {
			index[e.ID] = len(out)
			out = append(out, e)
			continue
		}
		if !out[i].UpdatedAt.After(e.UpdatedAt) {
			out[i] = e
		}
	}
	return out
}

func (o *syncOrchestrator) saveEntities(ctx context.Context, entities []models.Entity) error {
	byType := make(map[models.ObjectType][]models.Entity)
	var types []models.ObjectType
	for _, e := range entities {
		if _, ok := byType[e.Type]; !ok {
			types = append(types, e.Type)
		}
		byType[e.Type] = append(byType[e.Type], e)
	}
	models.SortByReceivePriority(types)

	var errs []error
	for _, t := range types {
		m, ok := o.Manager(t)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %s", ErrNoManager, t))
			continue
		}
		_, err := m.Save(ctx, byType[t]...)
		errs = append(errs, err)
	}
	return combine(errs...)
}

// Receive implements [SyncOrchestrator].
func (o *syncOrchestrator) Receive(ctx context.Context, objects []models.SyncObject) error {
	_, err := o.receiver.receiveSerialized(ctx, objects, false)
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "syncOrchestrator.Receive").
			Int("objects", len(objects)).
			Msg("some received objects were not applied")
	}
	return err
}
