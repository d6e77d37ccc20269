package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-object-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// DomainManager is implemented by every module owning one object type. The
// sync core calls it with clear-text entities and never inspects payloads.
type DomainManager interface {
	// Type is the object type the manager owns.
	Type() models.ObjectType

	// Policy selects how checksum conflicts on this type are resolved.
	Policy() models.ConflictPolicy

	// AllObjects returns the entities changed after updatedSince. A zero
	// updatedSince returns every entity.
	AllObjects(ctx context.Context, updatedSince time.Time) ([]models.Entity, error)

	// ReceivedObjects applies remotely changed entities. Entities with
	// DeletedAt set were deleted remotely.
	ReceivedObjects(ctx context.Context, entities []models.Entity) error

	// ManageConflict merges a local entity with the newer-or-older remote
	// copy. It is only called under the replace policy when the local copy
	// wins the last-writer-wins comparison.
	ManageConflict(ctx context.Context, local, remote models.Entity) (models.Entity, error)

	// SaveObjectsAfterConflict stores the entities that were saved remotely
	// after a conflict was resolved.
	SaveObjectsAfterConflict(ctx context.Context, entities []models.Entity) error
}

// DataSentKeeper is optionally implemented by a DomainManager whose checksum
// records keep a copy of the encoded payload that was last sent.
type DataSentKeeper interface {
	KeepDataSent() bool
}

// ObjectManager runs the sync operations of one object type.
type ObjectManager interface {
	Type() models.ObjectType

	// Save encodes entities and saves the changed ones. Saves of the same id
	// never overlap.
	Save(ctx context.Context, entities ...models.Entity) ([]models.SyncObject, error)

	// SaveAll saves every entity changed since the last successful pass and
	// advances the type cursor when every chunk succeeded.
	SaveAll(ctx context.Context, progress ProgressFunc) (int, error)

	// Refresh fetches the remote copy of id and applies it when its checksum
	// differs from the local record, or always when force is set.
	Refresh(ctx context.Context, id string, force bool) (bool, error)

	// FetchAll re-fetches every remote object of the type.
	FetchAll(ctx context.Context) (int, error)

	Delete(ctx context.Context, ids ...string) error
	DeleteAll(ctx context.Context) error
}

// ProgressFunc receives the processed and total counts of a long operation.
type ProgressFunc func(done, total int)

// SyncOrchestrator runs full synchronisations and funnels remote changes
// into the managers.
type SyncOrchestrator interface {
	// Register adds the manager of a domain type.
	Register(manager DomainManager) (ObjectManager, error)

	// Manager returns the object manager of t.
	Manager(t models.ObjectType) (ObjectManager, bool)

	// FullSync downloads remote changes then uploads local ones. Only one
	// full sync runs at a time; a concurrent call fails with
	// ErrFullSyncAlreadyRunning.
	FullSync(ctx context.Context) error

	// Receive applies remotely changed objects through the receive path. An
	// object waits for any in-flight save of its id.
	Receive(ctx context.Context, objects []models.SyncObject) error

	// ObjectsChanged saves locally changed entities. During the upload phase
	// of a full sync they are queued and flushed once the pass finished.
	// Changes still queued after a failed pass are saved with the next call
	// or before the next upload pass, the latest copy of each id winning.
	ObjectsChanged(ctx context.Context, entities ...models.Entity) error

	// Status returns the current sync status.
	Status() models.SyncStatus

	// Subscribe returns a channel receiving every status change and a
	// function releasing it.
	Subscribe() (<-chan models.SyncStatus, func())
}

// ClientSyncJob runs FullSync on a ticker.
type ClientSyncJob interface {
	// Start launches the background goroutine. Any previously running job is
	// stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// terminated.
	Stop()
}

// LiveUpdateReceiver applies objects pushed on the live-update channel.
type LiveUpdateReceiver interface {
	Start(ctx context.Context)
	Stop()
	Connected() bool
}
