package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-object-sync/models"
)

const memoryShards = 32

type checksumShard struct {
	mu      sync.RWMutex
	records map[string]models.ChecksumRecord
}

// memoryChecksumStore keeps records in sharded maps; each shard has its own
// lock so unrelated ids do not contend.
type memoryChecksumStore struct {
	shards [memoryShards]checksumShard
}

// NewMemoryChecksumStore returns an in-process [ChecksumStore]. It is used by
// tests and by commands that run without a local database.
func NewMemoryChecksumStore() ChecksumStore {
	s := &memoryChecksumStore{}
	for i := range s.shards {
		s.shards[i].records = make(map[string]models.ChecksumRecord)
	}
	return s
}

func (s *memoryChecksumStore) shard(id string) *checksumShard {
	return &s.shards[stripeOf(id)%memoryShards]
}

func (s *memoryChecksumStore) Get(_ context.Context, id string) (models.ChecksumRecord, error) {
	sh := s.shard(id)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	r, ok := sh.records[id]
	if !ok {
		return models.ChecksumRecord{}, ErrChecksumNotFound
	}
	return cloneRecord(r), nil
}

func (s *memoryChecksumStore) GetMany(ctx context.Context, ids []string) (map[string]models.ChecksumRecord, error) {
	result := make(map[string]models.ChecksumRecord, len(ids))
	for _, id := range ids {
		if r, err := s.Get(ctx, id); err == nil {
			result[id] = r
		}
	}
	return result, nil
}

func (s *memoryChecksumStore) GetByType(_ context.Context, objectType models.ObjectType) ([]models.ChecksumRecord, error) {
	var result []models.ChecksumRecord
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		for _, r := range sh.records {
			if r.Type == objectType {
				result = append(result, cloneRecord(r))
			}
		}
		sh.mu.RUnlock()
	}

	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (s *memoryChecksumStore) Set(_ context.Context, record models.ChecksumRecord) error {
	if record.UpdatedAt.IsZero() {
		record.UpdatedAt = time.Now().UTC()
	}

	sh := s.shard(record.ID)
	sh.mu.Lock()
	sh.records[record.ID] = cloneRecord(record)
	sh.mu.Unlock()
	return nil
}

// SetMany locks every touched shard in ascending order so the batch becomes
// visible at once.
func (s *memoryChecksumStore) SetMany(_ context.Context, records []models.ChecksumRecord) error {
	if len(records) == 0 {
		return nil
	}

	touched := s.lockShardsFor(records)
	defer s.unlockShards(touched)

	now := time.Now().UTC()
	for _, r := range records {
		if r.UpdatedAt.IsZero() {
			r.UpdatedAt = now
		}
		s.shard(r.ID).records[r.ID] = cloneRecord(r)
	}
	return nil
}

func (s *memoryChecksumStore) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	sh := s.shard(id)
	sh.mu.Lock()
	delete(sh.records, id)
	sh.mu.Unlock()
	return nil
}

func (s *memoryChecksumStore) DeleteMany(ctx context.Context, ids []string) error {
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *memoryChecksumStore) DeleteAll(_ context.Context, objectType models.ObjectType) error {
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		for id, r := range sh.records {
			if objectType == "" || r.Type == objectType {
				delete(sh.records, id)
			}
		}
		sh.mu.Unlock()
	}
	return nil
}

func (s *memoryChecksumStore) Count(_ context.Context) (int, error) {
	total := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		total += len(sh.records)
		sh.mu.RUnlock()
	}
	return total, nil
}

func (s *memoryChecksumStore) lockShardsFor(records []models.ChecksumRecord) []int {
	seen := make(map[int]struct{})
	var idx []int
	for _, r := range records {
		i := stripeOf(r.ID) % memoryShards
		if _, ok := seen[i]; !ok {
			seen[i] = struct{}{}
			idx = append(idx, i)
		}
	}
	sort.Ints(idx)
	for _, i := range idx {
		s.shards[i].mu.Lock()
	}
	return idx
}

func (s *memoryChecksumStore) unlockShards(idx []int) {
	for i := len(idx) - 1; i >= 0; i-- {
		s.shards[idx[i]].mu.Unlock()
	}
}

func cloneRecord(r models.ChecksumRecord) models.ChecksumRecord {
	if r.DataSent != nil {
		r.DataSent = append([]byte(nil), r.DataSent...)
	}
	return r
}
