package models

import "time"

// BlobInfo describes bytes registered for direct upload on the object API.
type BlobInfo struct {
	SignedID  string
	AccountID string
	ObjectID  string
	Checksum  string
	ByteSize  int64
	Uploaded  bool
	CreatedAt time.Time
}
