// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-object-sync/models"
)

// Client is what the objsync commands drive.
type Client interface {
	// Sync runs one full sync. Status changes are passed to onStatus while
	// it runs.
	Sync(ctx context.Context, onStatus func(models.SyncStatus)) error

	// Watch runs the periodic sync and live updates until ctx is done.
	Watch(ctx context.Context) error

	Status() models.SyncStatus

	// Push stores payload as the entity id of type t and saves it remotely.
	// An empty id creates a new entity.
	Push(ctx context.Context, t models.ObjectType, id string, payload json.RawMessage) (models.Entity, error)

	// Pull re-fetches every remote object of t.
	Pull(ctx context.Context, t models.ObjectType) (int, error)

	// Refresh re-fetches one object when its remote checksum differs.
	Refresh(ctx context.Context, t models.ObjectType, id string, force bool) (bool, error)

	Get(ctx context.Context, id string) (models.Entity, error)
	List(ctx context.Context, t models.ObjectType) ([]models.Entity, error)

	// Delete removes the objects remotely, then locally.
	Delete(ctx context.Context, t models.ObjectType, ids ...string) error

	ServerVersion(ctx context.Context) (models.BuildInfo, error)

	Close() error
}
