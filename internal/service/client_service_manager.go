// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-object-sync/internal/adapter"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/queue"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/models"
)

// Per-manager chunk bounds of SaveAll.
const (
	minManagerChunkSize = 1000
	maxManagerChunkSize = 10000
)

// objectManager is the sync engine of one domain type.
type objectManager struct {
	domain DomainManager

	transport adapter.Transport
	checksums store.ChecksumStore
	cursors   store.CursorRepository
	codec     *objectCodec
	queue     *queue.IdentityQueue[models.SyncObject, models.SyncObject]
	uploader  *directUploadPipeline
	receiver  *receiver

	chunkSize int
	threshold int64

	logger *logger.Logger
}

func (m *objectManager) Type() models.ObjectType {
	return m.domain.Type()
}

// Save implements [ObjectManager].
func (m *objectManager) Save(ctx context.Context, entities ...models.Entity) ([]models.SyncObject, error) {
	if len(entities) == 0 {
		return nil, nil
	}

	objects, err := m.codec.encodeAll(entities)
	if err != nil {
		return nil, err
	}

	return m.queue.Run(ctx, objects, m.saveChanged)
}

// saveChanged runs under the identity queue. It drops objects whose
// checksum matches the last synced one and attaches the previous checksum
// to the others.
func (m *objectManager) saveChanged(ctx context.Context, objects []models.SyncObject) ([]models.SyncObject, error) {
	records, err := m.checksums.GetMany(ctx, objectIDs(objects))
	if err != nil {
		return nil, fmt.Errorf("load checksums: %w", err)
	}

	changed := make([]models.SyncObject, 0, len(objects))
	for _, obj := range objects {
		record, known := records[obj.ID]
		switch {
		case known && record.PreviousChecksum == obj.DataChecksum && !obj.IsDeleted():
			continue
		case !known && obj.IsDeleted():
			continue
		case known:
			obj.PreviousChecksum = record.PreviousChecksum
		}
		changed = append(changed, obj)
	}

	if len(changed) == 0 {
		m.logger.Debug().
			Str("func", "objectManager.saveChanged").
			Str("object_type", string(m.Type())).
			Int("objects", len(objects)).
			Msg("nothing changed")
		return nil, nil
	}

	return m.save(ctx, changed, 0)
}

// save sends objects at the given recovery depth. Payloads above the
// direct upload threshold go through the direct upload pipeline first.
func (m *objectManager) save(ctx context.Context, objects []models.SyncObject, depth int) ([]models.SyncObject, error) {
	var small, large []models.SyncObject
	for _, obj := range objects {
		if m.threshold > 0 && int64(len(obj.Data)) >= m.threshold {
			large = append(large, obj)
			continue
		}
		small = append(small, obj)
	}

	var (
		saved []models.SyncObject
		errs  []error
	)
	if len(small) > 0 {
		s, err := m.saveBatch(ctx, small, byID(small), depth)
		saved = append(saved, s...)
		errs = append(errs, err)
	}

	for start := 0; start < len(large); start += m.uploader.chunkSize {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		chunk := large[start:min(start+m.uploader.chunkSize, len(large))]
		prepared, err := m.uploader.Upload(ctx, chunk)
		if err != nil {
			errs = append(errs, fmt.Errorf("direct upload: %w", err))
			break
		}

		s, err := m.saveBatch(ctx, prepared, byID(chunk), depth)
		saved = append(saved, s...)
		errs = append(errs, err)
	}

	return saved, combine(errs...)
}

// saveBatch saves sent and commits the checksums of what the server
// accepted. originals holds the objects before their payload was moved to a
// blob, keyed by id.
func (m *objectManager) saveBatch(ctx context.Context, sent []models.SyncObject, originals map[string]models.SyncObject, depth int) ([]models.SyncObject, error) {
	log := logger.FromContext(ctx)

	result, err := m.transport.SaveAll(ctx, sent)
	if err == nil {
		if err = m.commit(ctx, sent, originals); err != nil {
			return nil, err
		}
		return withReceivedAt(sent, result), nil
	}

	var apiErrs *adapter.APIErrors
	if !errors.As(err, &apiErrs) {
		log.Err(err).
			Str("func", "objectManager.saveBatch").
			Str("object_type", string(m.Type())).
			Int("objects", len(sent)).
			Int("depth", depth).
			Msg("save failed")
		return nil, fmt.Errorf("save %d %s objects: %w", len(sent), m.Type(), err)
	}

	return m.recover(ctx, sent, originals, apiErrs, depth)
}

// recover handles a partially rejected save. Objects not named by the
// server were saved and get their checksums committed. Checksum conflicts
// are resolved by policy and re-saved at depth+1, up to maxNestedDepth.
func (m *objectManager) recover(ctx context.Context, sent []models.SyncObject, originals map[string]models.SyncObject, apiErrs *adapter.APIErrors, depth int) ([]models.SyncObject, error) {
	log := logger.FromContext(ctx)

	conflictedIDs := toSet(apiErrs.InvalidChecksumIDs())
	failedIDs := make(map[string]struct{})
	var errs []error
	for _, apiErr := range apiErrs.Others() {
		failedIDs[apiErr.ObjectID] = struct{}{}
		errs = append(errs, fmt.Errorf("%s %s: %s", m.Type(), apiErr.ObjectID, apiErr.Message))
	}

	var good, conflicted []models.SyncObject
	for _, obj := range sent {
		if _, ok := conflictedIDs[obj.ID]; ok {
			conflicted = append(conflicted, originals[obj.ID])
			continue
		}
		if _, ok := failedIDs[obj.ID]; ok {
			continue
		}
		good = append(good, obj)
	}

	if len(good) > 0 {
		if err := m.commit(ctx, good, originals); err != nil {
			return nil, err
		}
	}
	if len(conflicted) == 0 {
		return good, combine(errs...)
	}

	if depth >= maxNestedDepth {
		log.Error().
			Str("func", "objectManager.recover").
			Str("object_type", string(m.Type())).
			Int("depth", depth).
			Str("objects", joinIDs(conflicted)).
			Msg("conflict recovery nested too deep")
		return good, combine(append(errs, fmt.Errorf("%w: %s", ErrNestedTooDeep, joinIDs(conflicted)))...)
	}

	remote, err := m.remoteCopies(ctx, conflicted, apiErrs.Objects)
	if err != nil {
		return good, combine(append(errs, err)...)
	}

	resubmit, after, conflictErr, resolveErrs := m.resolve(ctx, conflicted, remote)
	errs = append(errs, resolveErrs...)
	if conflictErr != nil {
		conflictErr.Good = good
		errs = append(errs, conflictErr)
	}
	if len(resubmit) == 0 {
		return good, combine(errs...)
	}

	log.Debug().
		Str("func", "objectManager.recover").
		Str("object_type", string(m.Type())).
		Int("depth", depth+1).
		Int("objects", len(resubmit)).
		Msg("re-saving resolved conflicts")

	resaved, err := m.save(ctx, resubmit, depth+1)
	errs = append(errs, err)

	var merged []models.Entity
	for _, obj := range resaved {
		if entity, ok := after[obj.ID]; ok {
			merged = append(merged, entity)
		}
	}
	if len(merged) > 0 {
		if err = m.domain.SaveObjectsAfterConflict(ctx, merged); err != nil {
			errs = append(errs, fmt.Errorf("save objects after conflict: %w", err))
		}
	}

	return append(good, resaved...), combine(errs...)
}

// resolve builds the objects to re-submit for conflicted. after maps the id
// of every re-submitted object to the entity the domain must store once the
// save succeeded.
func (m *objectManager) resolve(ctx context.Context, conflicted []models.SyncObject, remote map[string]models.SyncObject) ([]models.SyncObject, map[string]models.Entity, *ConflictError, []error) {
	var (
		resubmit  []models.SyncObject
		after     = make(map[string]models.Entity)
		conflicts *ConflictError
		errs      []error
	)

	for _, local := range conflicted {
		r, exists := remote[local.ID]
		if !exists {
			resubmit = append(resubmit, ResolveMissingRemote(local))
			continue
		}

		resolved, err := ResolveConflict(local, r, m.domain.Policy())
		var ce *ConflictError
		if errors.As(err, &ce) {
			if conflicts == nil {
				conflicts = &ConflictError{}
			}
			conflicts.Conflicted = append(conflicts.Conflicted, ce.Conflicted...)
			conflicts.Remote = append(conflicts.Remote, ce.Remote...)
			continue
		}

		if remoteWins(local, r) {
			// the local bytes are superseded and never confirmed
			m.uploader.forget([]models.SyncObject{local})
			if entity, err := m.codec.decode(r); err == nil {
				after[r.ID] = entity
			} else {
				errs = append(errs, err)
			}
			if resolved.LargeDataBlobID != "" {
				resolved.Data = nil
			}
			resubmit = append(resubmit, resolved)
			continue
		}

		merged, err := m.mergeLocal(ctx, local, r)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		obj, err := m.codec.encode(merged)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		obj.PreviousChecksum = resolved.PreviousChecksum
		resubmit = append(resubmit, obj)
		after[obj.ID] = merged
	}

	return resubmit, after, conflicts, errs
}

// mergeLocal asks the domain to merge the winning local copy with the
// remote one. A remote copy that cannot be decoded is overwritten.
func (m *objectManager) mergeLocal(ctx context.Context, local, remote models.SyncObject) (models.Entity, error) {
	localEntity, err := m.codec.decode(local)
	if err != nil {
		return models.Entity{}, err
	}

	remoteEntity, err := m.codec.decode(remote)
	if err != nil {
		m.logger.Warn().Err(err).
			Str("func", "objectManager.mergeLocal").
			Str("object_id", local.ID).
			Msg("remote copy cannot be decoded, keeping local")
		return localEntity, nil
	}

	merged, err := m.domain.ManageConflict(ctx, localEntity, remoteEntity)
	if err != nil {
		return models.Entity{}, fmt.Errorf("manage conflict of %s: %w", local.ID, err)
	}
	return merged, nil
}

// remoteCopies returns the server copies of conflicted, starting from the
// ones returned with the rejection and fetching the rest. Objects the server
// does not know are absent from the result.
func (m *objectManager) remoteCopies(ctx context.Context, conflicted []models.SyncObject, known []models.SyncObject) (map[string]models.SyncObject, error) {
	wanted := toSet(objectIDs(conflicted))
	remote := make(map[string]models.SyncObject, len(conflicted))
	for _, obj := range known {
		if _, ok := wanted[obj.ID]; ok {
			remote[obj.ID] = obj
		}
	}

	var missing []string
	for _, obj := range conflicted {
		if _, ok := remote[obj.ID]; !ok {
			missing = append(missing, obj.ID)
		}
	}
	if len(missing) == 0 {
		return remote, nil
	}

	fetched, err := m.transport.FetchAll(ctx, models.FetchRequest{IDs: missing})
	if err != nil && !errors.Is(err, adapter.ErrNotFound) {
		return nil, fmt.Errorf("fetch remote copies: %w", err)
	}
	for _, obj := range fetched {
		remote[obj.ID] = obj
	}
	return remote, nil
}

// commit records the checksums of saved objects, or forgets the records of
// saved tombstones, and releases the blobs their confirming save used.
func (m *objectManager) commit(ctx context.Context, saved []models.SyncObject, originals map[string]models.SyncObject) error {
	keepData := keepsDataSent(m.domain)

	var (
		records []models.ChecksumRecord
		deleted []string
	)
	for _, obj := range saved {
		if obj.IsDeleted() {
			deleted = append(deleted, obj.ID)
			continue
		}
		record := models.ChecksumRecord{
			ID:               obj.ID,
			Type:             obj.Type,
			PreviousChecksum: obj.DataChecksum,
			UpdatedAt:        obj.UpdatedAt,
		}
		if keepData {
			record.DataSent = originals[obj.ID].Data
		}
		records = append(records, record)
	}

	if err := m.checksums.SetMany(ctx, records); err != nil {
		return fmt.Errorf("commit checksums: %w", err)
	}
	if err := m.checksums.DeleteMany(ctx, deleted); err != nil {
		return fmt.Errorf("forget checksums: %w", err)
	}

	// Blobs of committed objects are confirmed; the others stay remembered
	// for the recovery save.
	m.uploader.forget(saved)
	return nil
}

// SaveAll implements [ObjectManager].
func (m *objectManager) SaveAll(ctx context.Context, progress ProgressFunc) (int, error) {
	log := logger.FromContext(ctx)
	scope := string(m.Type())

	since, err := m.cursors.GetCursor(ctx, scope)
	if err != nil {
		return 0, fmt.Errorf("load %s cursor: %w", scope, err)
	}

	entities, err := m.domain.AllObjects(ctx, since)
	if err != nil {
		return 0, fmt.Errorf("list %s objects: %w", scope, err)
	}

	total := len(entities)
	report(progress, 0, total)
	if total == 0 {
		return 0, nil
	}

	size := managerChunkSize(total, m.chunkSize)
	latest := since
	saved := 0
	for start := 0; start < total; start += size {
		if err = ctx.Err(); err != nil {
			return saved, err
		}

		chunk := entities[start:min(start+size, total)]
		if _, err = m.Save(ctx, chunk...); err != nil {
			log.Err(err).
				Str("func", "objectManager.SaveAll").
				Str("object_type", scope).
				Int("chunk", start/size).
				Msg("failed to save chunk")
			return saved, fmt.Errorf("save %s chunk %d: %w", scope, start/size, err)
		}

		for _, e := range chunk {
			if e.UpdatedAt.After(latest) {
				latest = e.UpdatedAt
			}
		}
		saved += len(chunk)
		report(progress, saved, total)
	}

	if latest.After(since) {
		if err = m.cursors.SetCursor(ctx, scope, latest); err != nil {
			return saved, fmt.Errorf("advance %s cursor: %w", scope, err)
		}
	}

	return saved, nil
}

// Refresh implements [ObjectManager].
func (m *objectManager) Refresh(ctx context.Context, id string, force bool) (bool, error) {
	if !force {
		sums, err := m.transport.FetchChecksums(ctx, models.FetchRequest{IDs: []string{id}, Types: []models.ObjectType{m.Type()}})
		if err != nil {
			return false, fmt.Errorf("fetch checksum of %s: %w", id, err)
		}
		if len(sums) == 0 {
			return false, nil
		}

		record, err := m.checksums.Get(ctx, id)
		switch {
		case err == nil && record.PreviousChecksum == sums[0].DataChecksum && !sums[0].Deleted:
			return false, nil
		case err != nil && !errors.Is(err, store.ErrChecksumNotFound):
			return false, err
		}
	}

	objects, err := m.transport.FetchAll(ctx, models.FetchRequest{IDs: []string{id}, Types: []models.ObjectType{m.Type()}})
	if err != nil {
		if errors.Is(err, adapter.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("fetch %s: %w", id, err)
	}
	if len(objects) == 0 {
		return false, nil
	}

	applied, err := m.receiver.receiveSerialized(ctx, objects, true)
	return applied > 0, err
}

// FetchAll implements [ObjectManager].
func (m *objectManager) FetchAll(ctx context.Context) (int, error) {
	objects, err := m.transport.FetchAll(ctx, models.FetchRequest{Types: []models.ObjectType{m.Type()}, SkipDeleted: true})
	if err != nil {
		return 0, fmt.Errorf("fetch %s objects: %w", m.Type(), err)
	}

	return m.receiver.receiveSerialized(ctx, objects, true)
}

// Delete implements [ObjectManager]. Deletes are serialised with saves of
// the same ids.
func (m *objectManager) Delete(ctx context.Context, ids ...string) error {
	if len(ids) == 0 {
		return nil
	}

	stubs := make([]models.SyncObject, 0, len(ids))
	for _, id := range ids {
		stubs = append(stubs, models.SyncObject{ID: id, Type: m.Type()})
	}

	_, err := m.queue.Run(ctx, stubs, func(ctx context.Context, items []models.SyncObject) ([]models.SyncObject, error) {
		batch := objectIDs(items)
		if _, err := m.transport.Delete(ctx, models.DeleteRequest{IDs: batch}); err != nil {
			return nil, fmt.Errorf("delete %d %s objects: %w", len(batch), m.Type(), err)
		}
		return nil, m.checksums.DeleteMany(ctx, batch)
	})
	return err
}

// DeleteAll implements [ObjectManager].
func (m *objectManager) DeleteAll(ctx context.Context) error {
	if _, err := m.transport.Delete(ctx, models.DeleteRequest{Type: m.Type()}); err != nil {
		return fmt.Errorf("delete all %s objects: %w", m.Type(), err)
	}
	return m.checksums.DeleteAll(ctx, m.Type())
}

// managerChunkSize is count/100 clamped to [1000, 10000], or configured
// when smaller.
func managerChunkSize(count, configured int) int {
	size := min(max(count/100, minManagerChunkSize), maxManagerChunkSize)
	if configured > 0 && configured < size {
		size = configured
	}
	return size
}

func report(progress ProgressFunc, done, total int) {
	if progress != nil {
		progress(done, total)
	}
}

func objectIDs(objects []models.SyncObject) []string {
	ids := make([]string, 0, len(objects))
	for _, obj := range objects {
		ids = append(ids, obj.ID)
	}
	return ids
}

func byID(objects []models.SyncObject) map[string]models.SyncObject {
	m := make(map[string]models.SyncObject, len(objects))
	for _, obj := range objects {
		m[obj.ID] = obj
	}
	return m
}

func toSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// withReceivedAt copies the server receipt time onto the sent objects.
func withReceivedAt(sent, result []models.SyncObject) []models.SyncObject {
	received := make(map[string]*time.Time, len(result))
	for _, obj := range result {
		received[obj.ID] = obj.ReceivedAt
	}

	out := make([]models.SyncObject, len(sent))
	for i, obj := range sent {
		if at := received[obj.ID]; at != nil {
			obj.ReceivedAt = at
		}
		out[i] = obj
	}
	return out
}
