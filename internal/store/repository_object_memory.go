// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/go-object-sync/models"
)

const defaultPageSize = 1000

type storedObject struct {
	object models.SyncObject
	seq    int64
}

type accountObjects struct {
	mu      sync.RWMutex
	objects map[string]*storedObject
}

// memoryObjectRepository keeps every account in its own locked map.
// Objects get a monotonically increasing sequence on every write which
// orders listings and serves as the pagination cursor.
type memoryObjectRepository struct {
	mu       sync.Mutex
	accounts map[string]*accountObjects
	seq      int64
	lastTime time.Time
	now      func() time.Time
}

// NewMemoryObjectRepository returns an in-memory [ObjectRepository].
func NewMemoryObjectRepository() ObjectRepository {
	return &memoryObjectRepository{
		accounts: make(map[string]*accountObjects),
		now:      time.Now,
	}
}

func (r *memoryObjectRepository) account(accountID string) *accountObjects {
	r.mu.Lock()
	defer r.mu.Unlock()

	acc, ok := r.accounts[accountID]
	if !ok {
		acc = &accountObjects{objects: make(map[string]*storedObject)}
		r.accounts[accountID] = acc
	}
	return acc
}

// stamp returns the next sequence and a receivedAt strictly after every
// previously issued one.
func (r *memoryObjectRepository) stamp() (int64, time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	ts := r.now().UTC()
	if !ts.After(r.lastTime) {
		ts = r.lastTime.Add(time.Microsecond)
	}
	r.lastTime = ts
	return r.seq, ts
}

func (r *memoryObjectRepository) Get(_ context.Context, accountID string, ids []string) (map[string]models.SyncObject, error) {
	acc := r.account(accountID)
	acc.mu.RLock()
	defer acc.mu.RUnlock()

	result := make(map[string]models.SyncObject, len(ids))
	for _, id := range ids {
		if so, ok := acc.objects[id]; ok {
			result[id] = cloneObject(so.object)
		}
	}
	return result, nil
}

func (r *memoryObjectRepository) SaveIfMatches(_ context.Context, accountID string, obj models.SyncObject) (models.SyncObject, error) {
	acc := r.account(accountID)
	acc.mu.Lock()
	defer acc.mu.Unlock()

	current, exists := acc.objects[obj.ID]
	switch {
	case exists && current.object.DataChecksum != obj.PreviousChecksum:
		return cloneObject(current.object), ErrChecksumMismatch
	case !exists && obj.PreviousChecksum != "":
		return models.SyncObject{}, ErrChecksumMismatch
	}

	seq, receivedAt := r.stamp()
	stored := cloneObject(obj)
	stored.PreviousChecksum = ""
	stored.DataURL = ""
	stored.ReceivedAt = &receivedAt
	if exists && stored.CreatedAt.IsZero() {
		stored.CreatedAt = current.object.CreatedAt
	}

	acc.objects[obj.ID] = &storedObject{object: stored, seq: seq}
	return cloneObject(stored), nil
}

func (r *memoryObjectRepository) List(_ context.Context, accountID string, filter ObjectFilter) ([]models.SyncObject, models.PageInfo, error) {
	acc := r.account(accountID)
	acc.mu.RLock()
	matched := make([]*storedObject, 0, len(acc.objects))
	for _, so := range acc.objects {
		if matchesFilter(so.object, filter) {
			matched = append(matched, so)
		}
	}
	acc.mu.RUnlock()

	slices.SortFunc(matched, func(a, b *storedObject) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})

	if filter.After != "" {
		after, err := strconv.ParseInt(filter.After, 10, 64)
		if err == nil {
			idx := 0
			for idx < len(matched) && matched[idx].seq <= after {
				idx++
			}
			matched = matched[idx:]
		}
	}

	first := filter.First
	if first <= 0 {
		first = defaultPageSize
	}

	var page models.PageInfo
	if len(matched) > first {
		matched = matched[:first]
		page.HasNextPage = true
	}

	objects := make([]models.SyncObject, 0, len(matched))
	for _, so := range matched {
		objects = append(objects, cloneObject(so.object))
	}
	if len(matched) > 0 {
		page.StartCursor = strconv.FormatInt(matched[0].seq, 10)
		page.EndCursor = strconv.FormatInt(matched[len(matched)-1].seq, 10)
	}

	return objects, page, nil
}

func (r *memoryObjectRepository) Delete(_ context.Context, accountID string, req models.DeleteRequest) ([]models.SyncObject, error) {
	acc := r.account(accountID)
	acc.mu.Lock()
	defer acc.mu.Unlock()

	wanted := make(map[string]struct{}, len(req.IDs))
	for _, id := range req.IDs {
		wanted[id] = struct{}{}
	}

	var deleted []models.SyncObject
	for id, so := range acc.objects {
		if so.object.IsDeleted() {
			continue
		}
		_, byID := wanted[id]
		if !req.All && !byID && (req.Type == "" || so.object.Type != req.Type) {
			continue
		}

		seq, ts := r.stamp()
		tomb := so.object
		tomb.Data = nil
		tomb.LargeDataBlobID = ""
		tomb.DeletedAt = &ts
		tomb.ReceivedAt = &ts
		acc.objects[id] = &storedObject{object: tomb, seq: seq}
		deleted = append(deleted, cloneObject(tomb))
	}

	return deleted, nil
}

func matchesFilter(o models.SyncObject, f ObjectFilter) bool {
	if len(f.IDs) > 0 && !slices.Contains(f.IDs, o.ID) {
		return false
	}
	if len(f.Types) > 0 && !slices.Contains(f.Types, o.Type) {
		return false
	}
	if f.ReceivedAfter != nil && (o.ReceivedAt == nil || !o.ReceivedAt.After(*f.ReceivedAfter)) {
		return false
	}
	if f.SkipDeleted && o.IsDeleted() {
		return false
	}
	return true
}

func cloneObject(o models.SyncObject) models.SyncObject {
	if o.Data != nil {
		o.Data = append([]byte(nil), o.Data...)
	}
	return o
}
