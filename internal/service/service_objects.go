// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/internal/utils"
	"github.com/MKhiriev/go-object-sync/internal/validators"
	"github.com/MKhiriev/go-object-sync/models"
)

// blobIDSeparator splits a signed blob id into its key and signature.
const blobIDSeparator = "--"

// objectService is the in-memory reference implementation of ObjectService.
type objectService struct {
	objects store.ObjectRepository
	blobs   store.BlobRepository

	publisher ObjectPublisher
	validator validators.Validator
	signer    *utils.Hasher
	ids       *utils.UUIDGenerator
	publicURL string

	logger *logger.Logger
}

// NewObjectService constructs the object API on top of the server
// repositories. publisher may be nil when nobody listens for live updates.
func NewObjectService(storages *store.ServerStorages, publisher ObjectPublisher, cfg config.ServerConfig, logger *logger.Logger) ObjectService {
	return &objectService{
		objects:   storages.Objects,
		blobs:     storages.Blobs,
		publisher: publisher,
		validator: validators.NewObjectValidator(),
		signer:    utils.NewHasher(cfg.App.TokenSignKey),
		ids:       utils.NewUUIDGenerator(),
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
		logger:    logger,
	}
}

func accountFrom(ctx context.Context) (string, error) {
	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		return "", ErrNoAccountID
	}
	return accountID, nil
}

func (s *objectService) Save(ctx context.Context, req models.SaveRequest) (models.SaveResponse, error) {
	log := logger.FromContext(ctx)

	accountID, err := accountFrom(ctx)
	if err != nil {
		return models.SaveResponse{}, err
	}

	var (
		resp      = models.SaveResponse{Objects: make([]models.SyncObject, 0, len(req.Objects))}
		conflicts []models.SyncObject
		publish   []models.SyncObject
	)
	for _, obj := range req.Objects {
		if err = s.validator.Validate(ctx, obj); err != nil {
			resp.Errors = append(resp.Errors, models.APIError{ObjectID: obj.ID, Message: err.Error(), Code: models.APIErrorCodeInvalid})
			continue
		}
		if err = s.checkBlob(ctx, accountID, obj); err != nil {
			resp.Errors = append(resp.Errors, models.APIError{ObjectID: obj.ID, Message: err.Error(), Code: models.APIErrorCodeInvalid})
			continue
		}

		stored, err := s.objects.SaveIfMatches(ctx, accountID, obj)
		switch {
		case errors.Is(err, store.ErrChecksumMismatch):
			resp.Errors = append(resp.Errors, models.APIError{ObjectID: obj.ID, Message: err.Error(), Code: models.APIErrorCodeInvalidChecksum})
			if stored.ID != "" {
				if stored, err = s.materialize(ctx, stored, false); err == nil {
					conflicts = append(conflicts, stored)
				}
			}
			continue
		case err != nil:
			log.Err(err).
				Str("func", "objectService.Save").
				Str("object_id", obj.ID).
				Msg("failed to save object")
			return models.SaveResponse{}, fmt.Errorf("save %s: %w", obj.ID, err)
		}

		publish = append(publish, stored)
		confirmed := stored
		confirmed.Data = nil
		resp.Objects = append(resp.Objects, confirmed)
	}

	s.publish(ctx, accountID, publish)

	log.Debug().
		Str("func", "objectService.Save").
		Int("saved", len(publish)).
		Int("rejected", len(resp.Errors)).
		Msg("objects saved")

	// a rejected save answers with the server copies of the conflicts
	if len(resp.Errors) > 0 {
		resp.Objects = conflicts
	}
	return resp, nil
}

// checkBlob verifies that a blob-backed object references a blob uploaded
// for it with the same checksum.
func (s *objectService) checkBlob(ctx context.Context, accountID string, obj models.SyncObject) error {
	if obj.LargeDataBlobID == "" {
		return nil
	}

	info, err := s.blobs.Lookup(ctx, obj.LargeDataBlobID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBlobNotReady, err)
	}
	if !info.Uploaded || info.AccountID != accountID || info.ObjectID != obj.ID || info.Checksum != obj.DataChecksum {
		return ErrBlobNotReady
	}
	return nil
}

func (s *objectService) Fetch(ctx context.Context, req models.FetchRequest) (models.ObjectsPage, error) {
	accountID, err := accountFrom(ctx)
	if err != nil {
		return models.ObjectsPage{}, err
	}

	objects, page, err := s.objects.List(ctx, accountID, filterOf(req))
	if err != nil {
		return models.ObjectsPage{}, fmt.Errorf("list objects: %w", err)
	}

	for i := range objects {
		if objects[i], err = s.materialize(ctx, objects[i], req.WithDataURL); err != nil {
			return models.ObjectsPage{}, err
		}
	}

	return models.ObjectsPage{Objects: objects, PageInfo: page}, nil
}

// materialize inlines the bytes of a blob-backed object, or points its data
// url at the blob when withDataURL is set.
func (s *objectService) materialize(ctx context.Context, obj models.SyncObject, withDataURL bool) (models.SyncObject, error) {
	if obj.LargeDataBlobID == "" || obj.IsDeleted() {
		return obj, nil
	}
	if withDataURL {
		obj.DataURL = s.blobURL(obj.LargeDataBlobID)
		return obj, nil
	}

	data, err := s.blobs.Get(ctx, obj.LargeDataBlobID)
	if err != nil {
		return models.SyncObject{}, fmt.Errorf("load blob of %s: %w", obj.ID, err)
	}
	obj.Data = data
	return obj, nil
}

func (s *objectService) Checksums(ctx context.Context, req models.FetchRequest) (models.ChecksumsPage, error) {
	accountID, err := accountFrom(ctx)
	if err != nil {
		return models.ChecksumsPage{}, err
	}

	objects, page, err := s.objects.List(ctx, accountID, filterOf(req))
	if err != nil {
		return models.ChecksumsPage{}, fmt.Errorf("list objects: %w", err)
	}

	sums := make([]models.ObjectChecksum, 0, len(objects))
	for _, obj := range objects {
		sum := models.ObjectChecksum{
			ID:           obj.ID,
			Type:         obj.Type,
			DataChecksum: obj.DataChecksum,
			Deleted:      obj.IsDeleted(),
		}
		if obj.ReceivedAt != nil {
			sum.ReceivedAt = *obj.ReceivedAt
		}
		sums = append(sums, sum)
	}

	return models.ChecksumsPage{Checksums: sums, PageInfo: page}, nil
}

func (s *objectService) Delete(ctx context.Context, req models.DeleteRequest) (models.DeleteResponse, error) {
	accountID, err := accountFrom(ctx)
	if err != nil {
		return models.DeleteResponse{}, err
	}

	deleted, err := s.objects.Delete(ctx, accountID, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "objectService.Delete").
			Msg("failed to delete objects")
		return models.DeleteResponse{}, fmt.Errorf("delete objects: %w", err)
	}

	s.publish(ctx, accountID, deleted)
	return models.DeleteResponse{Deleted: len(deleted)}, nil
}

func (s *objectService) PrepareDirectUpload(ctx context.Context, req models.DirectUploadRequest) (models.DirectUploadResponse, error) {
	accountID, err := accountFrom(ctx)
	if err != nil {
		return models.DirectUploadResponse{}, err
	}

	uploads := make([]models.DirectUpload, 0, len(req.Objects))
	for _, intent := range req.Objects {
		signedID := s.signBlobID(s.ids.Generate())

		err = s.blobs.Register(ctx, models.BlobInfo{
			SignedID:  signedID,
			AccountID: accountID,
			ObjectID:  intent.ID,
			Checksum:  intent.Checksum,
			ByteSize:  intent.ByteSize,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			return models.DirectUploadResponse{}, fmt.Errorf("register blob of %s: %w", intent.ID, err)
		}

		uploads = append(uploads, models.DirectUpload{
			ID:           intent.ID,
			URL:          s.blobURL(signedID),
			Headers:      map[string]string{"Content-Type": "application/octet-stream"},
			BlobSignedID: signedID,
		})
	}

	return models.DirectUploadResponse{Uploads: uploads}, nil
}

func (s *objectService) PutBlob(ctx context.Context, signedID string, data []byte) error {
	if !s.verifyBlobID(signedID) {
		return ErrInvalidBlobSignature
	}
	return s.blobs.Put(ctx, signedID, data)
}

func (s *objectService) GetBlob(ctx context.Context, signedID string) ([]byte, error) {
	if !s.verifyBlobID(signedID) {
		return nil, ErrInvalidBlobSignature
	}
	return s.blobs.Get(ctx, signedID)
}

func (s *objectService) signBlobID(key string) string {
	return key + blobIDSeparator + s.signer.SumHex([]byte(key))
}

func (s *objectService) verifyBlobID(signedID string) bool {
	key, signature, ok := strings.Cut(signedID, blobIDSeparator)
	if !ok || key == "" {
		return false
	}
	return s.signer.Equal([]byte(key), signature)
}

func (s *objectService) blobURL(signedID string) string {
	return s.publicURL + "/blobs/" + signedID
}

func (s *objectService) publish(ctx context.Context, accountID string, objects []models.SyncObject) {
	if s.publisher == nil || len(objects) == 0 {
		return
	}

	out := make([]models.SyncObject, 0, len(objects))
	for _, obj := range objects {
		m, err := s.materialize(ctx, obj, true)
		if err != nil {
			continue
		}
		out = append(out, m)
	}
	s.publisher.Publish(accountID, out...)
}

func filterOf(req models.FetchRequest) store.ObjectFilter {
	return store.ObjectFilter{
		IDs:           req.IDs,
		Types:         req.Types,
		ReceivedAfter: req.ReceivedAfter,
		SkipDeleted:   req.SkipDeleted,
		First:         req.First,
		After:         req.After,
	}
}
