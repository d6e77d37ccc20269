// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-object-sync/models"
)

type ObjectValidator struct {
}

func NewObjectValidator() Validator {
	return &ObjectValidator{}
}

func (v *ObjectValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SyncObject:
		return v.validateSyncObject(ctx, value, fields...)
	case *models.SyncObject:
		return v.validateSyncObject(ctx, *value, fields...)

	case models.Entity:
		return v.validateEntity(ctx, value, fields...)
	case *models.Entity:
		return v.validateEntity(ctx, *value, fields...)

	case models.SaveRequest:
		return v.validateSaveRequest(ctx, value, fields...)
	case *models.SaveRequest:
		return v.validateSaveRequest(ctx, *value, fields...)

	case models.FetchRequest:
		return v.validateFetchRequest(ctx, value, fields...)
	case *models.FetchRequest:
		return v.validateFetchRequest(ctx, *value, fields...)

	case models.DeleteRequest:
		return v.validateDeleteRequest(ctx, value, fields...)
	case *models.DeleteRequest:
		return v.validateDeleteRequest(ctx, *value, fields...)

	case models.DirectUploadRequest:
		return v.validateDirectUploadRequest(ctx, value, fields...)
	case *models.DirectUploadRequest:
		return v.validateDirectUploadRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ObjectValidator) validateSyncObject(_ context.Context, obj models.SyncObject, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldType, FieldDataChecksum, FieldPreviousChecksum, FieldData, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !isValidID(obj.ID) {
				return ErrInvalidID
			}
		case FieldType:
			if !isValidObjectType(obj.Type) {
				return ErrInvalidObjectType
			}
		case FieldDataChecksum:
			if !isValidChecksum(obj.DataChecksum) {
				return ErrInvalidChecksum
			}
		case FieldPreviousChecksum:
			if obj.PreviousChecksum != "" && !isValidChecksum(obj.PreviousChecksum) {
				return ErrInvalidPrevious
			}
		case FieldData:
			if len(obj.Data) > 0 && obj.LargeDataBlobID != "" {
				return ErrDataAndBlob
			}
			// tombstones carry no payload
			if !obj.IsDeleted() && len(obj.Data) == 0 && obj.LargeDataBlobID == "" {
				return ErrEmptyData
			}
		case FieldTimestamps:
			if obj.UpdatedAt.IsZero() || (!obj.CreatedAt.IsZero() && obj.UpdatedAt.Before(obj.CreatedAt)) {
				return ErrInvalidTimestamps
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ObjectValidator) validateEntity(_ context.Context, entity models.Entity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldType, FieldPayload, FieldTimestamps}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if !isValidID(entity.ID) {
				return ErrInvalidID
			}
		case FieldType:
			if !isValidObjectType(entity.Type) {
				return ErrInvalidObjectType
			}
		case FieldPayload:
			if entity.DeletedAt != nil {
				continue
			}
			if len(entity.Payload) == 0 || !json.Valid(entity.Payload) {
				return ErrInvalidPayload
			}
		case FieldTimestamps:
			if entity.UpdatedAt.IsZero() {
				return ErrInvalidTimestamps
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ObjectValidator) validateSaveRequest(ctx context.Context, request models.SaveRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldObjects}
	}

	for _, f := range fields {
		switch f {
		case FieldObjects:
			if len(request.Objects) == 0 {
				return ErrEmptyObjects
			}
			if len(request.Objects) > MaxObjectsPerRequest {
				return ErrTooManyObjects
			}
			seen := make(map[string]struct{}, len(request.Objects))
			for i, obj := range request.Objects {
				if _, dup := seen[obj.ID]; dup {
					return fmt.Errorf("validation error at index %d: %w", i, ErrDuplicateID)
				}
				seen[obj.ID] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ObjectValidator) validateFetchRequest(_ context.Context, request models.FetchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPageSize, FieldID, FieldType}
	}

	for _, f := range fields {
		switch f {
		case FieldPageSize:
			if request.First < 0 || request.First > MaxPageSize {
				return ErrInvalidPageSize
			}
		case FieldID:
			for _, id := range request.IDs {
				if !isValidID(id) {
					return ErrInvalidID
				}
			}
		case FieldType:
			for _, t := range request.Types {
				if !isValidObjectType(t) {
					return ErrInvalidObjectType
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ObjectValidator) validateDeleteRequest(_ context.Context, request models.DeleteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSelector, FieldID}
	}

	for _, f := range fields {
		switch f {
		case FieldSelector:
			if !request.All && request.Type == "" && len(request.IDs) == 0 {
				return ErrEmptyDeleteRequest
			}
		case FieldID:
			for _, id := range request.IDs {
				if !isValidID(id) {
					return ErrInvalidID
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ObjectValidator) validateDirectUploadRequest(_ context.Context, request models.DirectUploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldObjects}
	}

	for _, f := range fields {
		switch f {
		case FieldObjects:
			if len(request.Objects) == 0 {
				return ErrEmptyObjects
			}
			if len(request.Objects) > MaxObjectsPerRequest {
				return ErrTooManyObjects
			}
			for i, intent := range request.Objects {
				switch {
				case !isValidID(intent.ID):
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidID)
				case !isValidChecksum(intent.Checksum):
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidChecksum)
				case intent.ByteSize <= 0:
					return fmt.Errorf("validation error at index %d: %w", i, ErrInvalidByteSize)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
