package models

import "time"

// ChecksumRecord is the local ledger entry of what was last synced for an
// object. DataSent optionally caches the encoded payload that was sent.
type ChecksumRecord struct {
	ID               string     `db:"id"`
	Type             ObjectType `db:"object_type"`
	PreviousChecksum string     `db:"previous_checksum"`
	DataSent         []byte     `db:"data_sent"`
	UpdatedAt        time.Time  `db:"updated_at"`
}

// SyncCursor stores the last successfully synced timestamp for a scope.
// Scope is an object type or the global download scope.
type SyncCursor struct {
	Scope     string    `db:"scope"`
	Timestamp time.Time `db:"synced_at"`
}

// CursorScopeDownload is the scope of the global receivedAfter cursor.
const CursorScopeDownload = "download"
