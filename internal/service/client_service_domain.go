package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/internal/validators"
	"github.com/MKhiriev/go-object-sync/models"
)

// repositoryDomainManager is the DomainManager of one object type whose
// entities live in the local object repository.
type repositoryDomainManager struct {
	objectType models.ObjectType
	policy     models.ConflictPolicy
	repo       store.LocalObjectRepository
	validator  validators.Validator
	logger     *logger.Logger
}

// NewRepositoryDomainManager returns a DomainManager storing entities of t in
// repo. Conflicting JSON objects are merged key by key, local keys winning.
func NewRepositoryDomainManager(t models.ObjectType, policy models.ConflictPolicy, repo store.LocalObjectRepository, logger *logger.Logger) DomainManager {
	return &repositoryDomainManager{
		objectType: t,
		policy:     policy,
		repo:       repo,
		validator:  validators.NewObjectValidator(),
		logger:     logger,
	}
}

func (d *repositoryDomainManager) Type() models.ObjectType {
	return d.objectType
}

func (d *repositoryDomainManager) Policy() models.ConflictPolicy {
	return d.policy
}

// KeepDataSent keeps the last sent payload of documents.
func (d *repositoryDomainManager) KeepDataSent() bool {
	return d.objectType == models.ObjectTypeDocument
}

func (d *repositoryDomainManager) AllObjects(ctx context.Context, updatedSince time.Time) ([]models.Entity, error) {
	return d.repo.ListUpdatedSince(ctx, d.objectType, updatedSince)
}

func (d *repositoryDomainManager) ReceivedObjects(ctx context.Context, entities []models.Entity) error {
	var (
		upserts []models.Entity
		deletes []string
	)
	for _, e := range entities {
		if e.DeletedAt != nil {
			deletes = append(deletes, e.ID)
			continue
		}
		if err := d.validator.Validate(ctx, e); err != nil {
			return fmt.Errorf("entity %s: %w", e.ID, err)
		}
		upserts = append(upserts, e)
	}

	if len(upserts) > 0 {
		if err := d.repo.Save(ctx, upserts...); err != nil {
			return fmt.Errorf("save received %s objects: %w", d.objectType, err)
		}
	}
	if len(deletes) > 0 {
		if err := d.repo.Delete(ctx, deletes...); err != nil {
			return fmt.Errorf("delete received %s objects: %w", d.objectType, err)
		}
	}
	return nil
}

// ManageConflict overlays the keys of the local payload on the remote one.
// Anything that is not a pair of JSON objects keeps the local entity.
func (d *repositoryDomainManager) ManageConflict(_ context.Context, local, remote models.Entity) (models.Entity, error) {
	if remote.DeletedAt != nil || local.DeletedAt != nil {
		return local, nil
	}

	var localFields, remoteFields map[string]json.RawMessage
	if json.Unmarshal(local.Payload, &localFields) != nil || json.Unmarshal(remote.Payload, &remoteFields) != nil {
		return local, nil
	}
	if localFields == nil || remoteFields == nil {
		return local, nil
	}

	for k, v := range localFields {
		remoteFields[k] = v
	}
	payload, err := json.Marshal(remoteFields)
	if err != nil {
		return models.Entity{}, fmt.Errorf("merge %s: %w", local.ID, err)
	}

	merged := local
	merged.Payload = payload
	if remote.CreatedAt.Before(merged.CreatedAt) && !remote.CreatedAt.IsZero() {
		merged.CreatedAt = remote.CreatedAt
	}

	d.logger.Debug().
		Str("func", "repositoryDomainManager.ManageConflict").
		Str("object_id", local.ID).
		Int("remote_fields", len(remoteFields)).
		Msg("merged conflicting payloads")

	return merged, nil
}

func (d *repositoryDomainManager) SaveObjectsAfterConflict(ctx context.Context, entities []models.Entity) error {
	return d.ReceivedObjects(ctx, entities)
}
