// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/MKhiriev/go-object-sync/internal/adapter"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/models"
)

type blobKey struct {
	id       string
	checksum string
}

// directUploadPipeline moves large payloads out of band: it registers upload
// intents, transfers the bytes through a sliding window and hands back
// metadata-only objects referencing the uploaded blobs.
//
// Blobs that reached storage are remembered by (id, checksum) until the
// confirming save succeeded, so a retried save never transfers them again.
type directUploadPipeline struct {
	transport   adapter.Transport
	concurrency int64
	chunkSize   int

	mu       sync.Mutex
	uploaded map[blobKey]string

	logger *logger.Logger
}

func newDirectUploadPipeline(transport adapter.Transport, concurrency, chunkSize int, logger *logger.Logger) *directUploadPipeline {
	return &directUploadPipeline{
		transport:   transport,
		concurrency: int64(max(concurrency, 1)),
		chunkSize:   max(chunkSize, 1),
		uploaded:    make(map[blobKey]string),
		logger:      logger,
	}
}

// Upload transfers the payload of every object and returns copies with Data
// cleared and LargeDataBlobID set, in the input order. The first failing
// transfer aborts the pipeline.
func (p *directUploadPipeline) Upload(ctx context.Context, objects []models.SyncObject) ([]models.SyncObject, error) {
	out := make([]models.SyncObject, len(objects))
	copy(out, objects)

	var pending []models.SyncObject
	for _, obj := range objects {
		if _, ok := p.blobFor(obj); !ok {
			pending = append(pending, obj)
		}
	}

	for start := 0; start < len(pending); start += p.chunkSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		end := min(start+p.chunkSize, len(pending))
		if err := p.uploadChunk(ctx, pending[start:end]); err != nil {
			return nil, err
		}
	}

	for i := range out {
		blobID, ok := p.blobFor(out[i])
		if !ok {
			return nil, fmt.Errorf("no blob uploaded for %s", out[i].ID)
		}
		out[i].LargeDataBlobID = blobID
		out[i].Data = nil
	}

	return out, nil
}

func (p *directUploadPipeline) uploadChunk(ctx context.Context, objects []models.SyncObject) error {
	log := logger.FromContext(ctx)

	intents := make([]models.DirectUploadIntent, 0, len(objects))
	for _, obj := range objects {
		intents = append(intents, models.DirectUploadIntent{
			ID:       obj.ID,
			Checksum: obj.DataChecksum,
			ByteSize: int64(len(obj.Data)),
		})
	}

	uploads, err := p.transport.PrepareDirectUpload(ctx, intents)
	if err != nil {
		log.Err(err).
			Str("func", "directUploadPipeline.uploadChunk").
			Int("objects", len(objects)).
			Msg("failed to prepare direct upload")
		return fmt.Errorf("prepare direct upload: %w", err)
	}

	targets := make(map[string]models.DirectUpload, len(uploads))
	for _, u := range uploads {
		targets[u.ID] = u
	}

	return p.transfer(ctx, objects, targets)
}

// transfer keeps up to p.concurrency uploads in flight. A new transfer is
// issued as soon as any running one completes.
func (p *directUploadPipeline) transfer(ctx context.Context, objects []models.SyncObject, targets map[string]models.DirectUpload) error {
	for _, obj := range objects {
		if _, ok := targets[obj.ID]; !ok {
			return fmt.Errorf("%w: no upload target for %s", adapter.ErrParse, obj.ID)
		}
	}

	window := semaphore.NewWeighted(p.concurrency)
	g, gctx := errgroup.WithContext(ctx)

	for _, obj := range objects {
		target := targets[obj.ID]
		if err := window.Acquire(gctx, 1); err != nil {
			break
		}

		g.Go(func() error {
			defer window.Release(1)

			if err := p.transport.UploadBlob(gctx, target, obj.Data); err != nil {
				p.logger.Err(err).
					Str("func", "directUploadPipeline.transfer").
					Str("object_id", obj.ID).
					Msg("blob transfer failed")
				return fmt.Errorf("transfer %s: %w", obj.ID, err)
			}

			p.remember(obj, target.BlobSignedID)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (p *directUploadPipeline) blobFor(obj models.SyncObject) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	id, ok := p.uploaded[blobKey{id: obj.ID, checksum: obj.DataChecksum}]
	return id, ok
}

func (p *directUploadPipeline) remember(obj models.SyncObject, blobID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.uploaded[blobKey{id: obj.ID, checksum: obj.DataChecksum}] = blobID
}

// forget drops the blobs of objects whose confirming save succeeded.
func (p *directUploadPipeline) forget(objects []models.SyncObject) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, obj := range objects {
		delete(p.uploaded, blobKey{id: obj.ID, checksum: obj.DataChecksum})
	}
}
