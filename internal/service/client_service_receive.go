package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/queue"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/models"
)

// receiver is the single apply path for remote objects: full sync
// downloads, refreshes and live updates all go through it.
type receiver struct {
	lookup    func(models.ObjectType) (DomainManager, bool)
	checksums store.ChecksumStore
	codec     *objectCodec
	queue     *queue.IdentityQueue[models.SyncObject, models.SyncObject]
	logger    *logger.Logger
}

// receiveSerialized runs receive under the identity queue shared with saves,
// so a remote copy of an id is applied only once no save of that id is in
// flight, and is then compared with the checksum that save committed.
func (r *receiver) receiveSerialized(ctx context.Context, objects []models.SyncObject, force bool) (int, error) {
	if len(objects) == 0 {
		return 0, nil
	}

	var applied atomic.Int64
	_, err := r.queue.Run(ctx, objects, func(ctx context.Context, items []models.SyncObject) ([]models.SyncObject, error) {
		n, err := r.receive(ctx, items, force)
		applied.Add(int64(n))
		return nil, err
	})
	return int(applied.Load()), err
}

// receive applies objects type by type in receive priority order, never in
// parallel. Objects whose checksum matches the local record are dropped
// unless force is set. It returns the number of applied objects and the
// per-object errors.
func (r *receiver) receive(ctx context.Context, objects []models.SyncObject, force bool) (int, error) {
	if len(objects) == 0 {
		return 0, nil
	}

	byType := make(map[models.ObjectType][]models.SyncObject)
	var types []models.ObjectType
	for _, obj := range objects {
		if _, ok := byType[obj.Type]; !ok {
			types = append(types, obj.Type)
		}
		byType[obj.Type] = append(byType[obj.Type], obj)
	}
	models.SortByReceivePriority(types)

	var (
		applied int
		errs    []error
	)
	for _, t := range types {
		if err := ctx.Err(); err != nil {
			return applied, combine(append(errs, err)...)
		}

		manager, ok := r.lookup(t)
		if !ok {
			for _, obj := range byType[t] {
				errs = append(errs, &ApplyError{ID: obj.ID, Type: t, Err: ErrNoManager})
			}
			continue
		}

		n, err := r.receiveType(ctx, manager, byType[t], force)
		applied += n
		errs = append(errs, err)
	}

	return applied, combine(errs...)
}

func (r *receiver) receiveType(ctx context.Context, manager DomainManager, objects []models.SyncObject, force bool) (int, error) {
	log := logger.FromContext(ctx)

	ids := make([]string, 0, len(objects))
	for _, obj := range objects {
		ids = append(ids, obj.ID)
	}
	known, err := r.checksums.GetMany(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("load checksums: %w", err)
	}

	keepData := keepsDataSent(manager)
	keys := &PrivateKeyError{}

	var (
		live    []models.Entity
		records []models.ChecksumRecord
		removed []models.Entity
		errs    []error
	)
	for _, obj := range objects {
		record, isKnown := known[obj.ID]

		if obj.IsDeleted() {
			if isKnown || force {
				removed = append(removed, models.Entity{ID: obj.ID, Type: obj.Type, UpdatedAt: obj.UpdatedAt, DeletedAt: obj.DeletedAt})
			}
			continue
		}
		if !force && isKnown && record.PreviousChecksum == obj.DataChecksum {
			continue
		}

		entity, err := r.codec.decode(obj)
		if err != nil {
			if errors.Is(err, ErrDifferentEncryptionKey) {
				keys.Invalid = append(keys.Invalid, obj.ID)
				continue
			}
			log.Warn().Err(err).
				Str("func", "receiver.receiveType").
				Str("object_id", obj.ID).
				Msg("skipping undecodable object")
			errs = append(errs, err)
			continue
		}
		keys.Valid = append(keys.Valid, obj.ID)

		rec := models.ChecksumRecord{ID: obj.ID, Type: obj.Type, PreviousChecksum: obj.DataChecksum, UpdatedAt: obj.UpdatedAt}
		if keepData {
			rec.DataSent = obj.Data
		}
		live = append(live, entity)
		records = append(records, rec)
	}
	if len(keys.Invalid) > 0 {
		errs = append(errs, keys)
	}

	// Checksums are recorded before the manager applies the objects and
	// removed again for every object it fails to apply.
	if len(records) > 0 {
		if err = r.checksums.SetMany(ctx, records); err != nil {
			return 0, combine(append(errs, fmt.Errorf("record checksums: %w", err))...)
		}
	}

	applied, failed := r.apply(ctx, manager, live)
	if len(failed) > 0 {
		rollback := make([]string, 0, len(failed))
		for id, err := range failed {
			rollback = append(rollback, id)
			errs = append(errs, &ApplyError{ID: id, Type: manager.Type(), Err: err})
		}
		if err = r.checksums.DeleteMany(ctx, rollback); err != nil {
			errs = append(errs, fmt.Errorf("roll back checksums: %w", err))
		}
	}

	n, failed := r.apply(ctx, manager, removed)
	applied += n
	var forget []string
	for _, e := range removed {
		if err, ok := failed[e.ID]; ok {
			errs = append(errs, &ApplyError{ID: e.ID, Type: manager.Type(), Err: err})
			continue
		}
		forget = append(forget, e.ID)
	}
	if len(forget) > 0 {
		if err = r.checksums.DeleteMany(ctx, forget); err != nil {
			errs = append(errs, fmt.Errorf("forget checksums: %w", err))
		}
	}

	log.Debug().
		Str("func", "receiver.receiveType").
		Str("object_type", string(manager.Type())).
		Int("received", len(objects)).
		Int("applied", applied).
		Msg("received objects")

	return applied, combine(errs...)
}

// apply hands entities to the manager in one call. When that fails every
// entity is applied on its own so one bad object does not block the others.
func (r *receiver) apply(ctx context.Context, manager DomainManager, entities []models.Entity) (int, map[string]error) {
	if len(entities) == 0 {
		return 0, nil
	}
	if err := manager.ReceivedObjects(ctx, entities); err == nil {
		return len(entities), nil
	}

	applied := 0
	failed := make(map[string]error)
	for _, e := range entities {
		if err := manager.ReceivedObjects(ctx, []models.Entity{e}); err != nil {
			failed[e.ID] = err
			continue
		}
		applied++
	}
	return applied, failed
}

func keepsDataSent(manager DomainManager) bool {
	k, ok := manager.(DataSentKeeper)
	return ok && k.KeepDataSent()
}

// blocksCursor reports whether err contains a failure that must be retried
// on the next pass. Objects that cannot be decoded will never succeed and
// do not hold the cursor back.
func blocksCursor(err error) bool {
	if err == nil {
		return false
	}

	errs := []error{err}
	if m, ok := err.(*MultipleErrors); ok {
		errs = m.Errors()
	}
	for _, e := range errs {
		var decoding *DecodingError
		var keys *PrivateKeyError
		if !errors.As(e, &decoding) && !errors.As(e, &keys) {
			return true
		}
	}
	return false
}
