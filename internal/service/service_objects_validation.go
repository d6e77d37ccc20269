package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-object-sync/internal/validators"
	"github.com/MKhiriev/go-object-sync/models"
)

// ObjectValidationService rejects malformed requests before they reach the
// wrapped ObjectService. Per-object checks of a save stay in the inner
// service so one bad object does not reject the batch.
type ObjectValidationService struct {
	inner     ObjectService
	validator validators.Validator
}

func NewObjectValidationService() ObjectServiceWrapper {
	return &ObjectValidationService{
		validator: validators.NewObjectValidator(),
	}
}

func (v *ObjectValidationService) Save(ctx context.Context, req models.SaveRequest) (models.SaveResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.SaveResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Save(ctx, req)
}

func (v *ObjectValidationService) Fetch(ctx context.Context, req models.FetchRequest) (models.ObjectsPage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ObjectsPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Fetch(ctx, req)
}

func (v *ObjectValidationService) Checksums(ctx context.Context, req models.FetchRequest) (models.ChecksumsPage, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.ChecksumsPage{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Checksums(ctx, req)
}

func (v *ObjectValidationService) Delete(ctx context.Context, req models.DeleteRequest) (models.DeleteResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DeleteResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.Delete(ctx, req)
}

func (v *ObjectValidationService) PrepareDirectUpload(ctx context.Context, req models.DirectUploadRequest) (models.DirectUploadResponse, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.DirectUploadResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.PrepareDirectUpload(ctx, req)
}

func (v *ObjectValidationService) PutBlob(ctx context.Context, signedID string, data []byte) error {
	if signedID == "" || len(data) == 0 {
		return ErrInvalidDataProvided
	}
	return v.inner.PutBlob(ctx, signedID, data)
}

func (v *ObjectValidationService) GetBlob(ctx context.Context, signedID string) ([]byte, error) {
	if signedID == "" {
		return nil, ErrInvalidDataProvided
	}
	return v.inner.GetBlob(ctx, signedID)
}

func (v *ObjectValidationService) Wrap(wrapped ObjectService) ObjectService {
	v.inner = wrapped
	return v
}
