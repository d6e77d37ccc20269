package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-object-sync/models"
)

type memoryBlob struct {
	info models.BlobInfo
	data []byte
}

type memoryBlobRepository struct {
	mu    sync.RWMutex
	blobs map[string]*memoryBlob
}

// NewMemoryBlobRepository returns an in-memory [BlobRepository].
func NewMemoryBlobRepository() BlobRepository {
	return &memoryBlobRepository{blobs: make(map[string]*memoryBlob)}
}

func (r *memoryBlobRepository) Register(_ context.Context, info models.BlobInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	info.Uploaded = false
	r.blobs[info.SignedID] = &memoryBlob{info: info}
	return nil
}

func (r *memoryBlobRepository) Put(_ context.Context, signedID string, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	b, ok := r.blobs[signedID]
	if !ok {
		return ErrBlobNotFound
	}
	if int64(len(data)) != b.info.ByteSize {
		return ErrBlobSizeMismatch
	}

	b.data = append([]byte(nil), data...)
	b.info.Uploaded = true
	return nil
}

func (r *memoryBlobRepository) Get(_ context.Context, signedID string) ([]byte, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.blobs[signedID]
	if !ok {
		return nil, ErrBlobNotFound
	}
	if !b.info.Uploaded {
		return nil, ErrBlobNotUploaded
	}
	return append([]byte(nil), b.data...), nil
}

func (r *memoryBlobRepository) Lookup(_ context.Context, signedID string) (models.BlobInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.blobs[signedID]
	if !ok {
		return models.BlobInfo{}, ErrBlobNotFound
	}
	return b.info, nil
}
