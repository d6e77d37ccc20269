package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-object-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ChecksumStore is the local ledger of what was last synced per object id.
// Implementations are safe for concurrent use and linearizable per id.
type ChecksumStore interface {
	// Get returns the record for id or ErrChecksumNotFound.
	Get(ctx context.Context, id string) (models.ChecksumRecord, error)
	// GetMany returns the records that exist among ids, keyed by id.
	GetMany(ctx context.Context, ids []string) (map[string]models.ChecksumRecord, error)
	GetByType(ctx context.Context, objectType models.ObjectType) ([]models.ChecksumRecord, error)
	Set(ctx context.Context, record models.ChecksumRecord) error
	// SetMany writes all records or none.
	SetMany(ctx context.Context, records []models.ChecksumRecord) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	// DeleteAll removes the records of objectType, or every record when
	// objectType is empty.
	DeleteAll(ctx context.Context, objectType models.ObjectType) error
	Count(ctx context.Context) (int, error)
}

// LocalObjectRepository keeps clear-text domain entities on the client.
type LocalObjectRepository interface {
	Save(ctx context.Context, entities ...models.Entity) error
	Get(ctx context.Context, id string) (models.Entity, error)
	// ListUpdatedSince returns entities of objectType with updated_at after
	// since, ordered by updated_at. A zero since lists everything.
	ListUpdatedSince(ctx context.Context, objectType models.ObjectType, since time.Time) ([]models.Entity, error)
	Delete(ctx context.Context, ids ...string) error
	DeleteAll(ctx context.Context, objectType models.ObjectType) error
}

// CursorRepository persists sync cursors per scope.
type CursorRepository interface {
	// GetCursor returns the zero time when the scope was never synced.
	GetCursor(ctx context.Context, scope string) (time.Time, error)
	SetCursor(ctx context.Context, scope string, ts time.Time) error
	DeleteCursors(ctx context.Context) error
}

// ObjectFilter selects stored objects of one account.
type ObjectFilter struct {
	IDs           []string
	Types         []models.ObjectType
	ReceivedAfter *time.Time
	SkipDeleted   bool
	First         int
	After         string
}

// ObjectRepository stores the server side copies of sync objects.
type ObjectRepository interface {
	// Get returns the stored objects among ids, keyed by id.
	Get(ctx context.Context, accountID string, ids []string) (map[string]models.SyncObject, error)
	// SaveIfMatches stores obj when obj.PreviousChecksum equals the stored
	// checksum, or when nothing is stored and PreviousChecksum is empty.
	// On mismatch it returns ErrChecksumMismatch and the stored copy.
	SaveIfMatches(ctx context.Context, accountID string, obj models.SyncObject) (models.SyncObject, error)
	List(ctx context.Context, accountID string, filter ObjectFilter) ([]models.SyncObject, models.PageInfo, error)
	// Delete tombstones the selected objects and returns them.
	Delete(ctx context.Context, accountID string, req models.DeleteRequest) ([]models.SyncObject, error)
}

// BlobRepository stores directly uploaded bytes.
type BlobRepository interface {
	Register(ctx context.Context, info models.BlobInfo) error
	Put(ctx context.Context, signedID string, data []byte) error
	Get(ctx context.Context, signedID string) ([]byte, error)
	Lookup(ctx context.Context, signedID string) (models.BlobInfo, error)
}
