package models

import "time"

// FetchRequest selects objects (or their checksums) on the object API.
// Empty selectors are ignored; IDs and Types are combined with AND.
type FetchRequest struct {
	IDs           []string     `json:"ids,omitempty"`
	Types         []ObjectType `json:"types,omitempty"`
	ReceivedAfter *time.Time   `json:"receivedAfter,omitempty"`
	SkipDeleted   bool         `json:"skipDeleted,omitempty"`

	// First limits the page size, After is the cursor of the previous page.
	First int    `json:"first,omitempty"`
	After string `json:"after,omitempty"`

	// WithDataURL asks the server to return DataURL instead of inline Data.
	WithDataURL bool `json:"withDataUrl,omitempty"`
}

// PageInfo describes a page of a cursor-paginated listing.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	StartCursor string `json:"startCursor,omitempty"`
	EndCursor   string `json:"endCursor,omitempty"`
}

// ObjectsPage is one page of full objects.
type ObjectsPage struct {
	Objects  []SyncObject `json:"objects"`
	PageInfo PageInfo     `json:"pageInfo"`
}

// ChecksumsPage is one page of payload-less checksum records.
type ChecksumsPage struct {
	Checksums []ObjectChecksum `json:"checksums"`
	PageInfo  PageInfo         `json:"pageInfo"`
}

// SaveRequest is the body of a batch save.
type SaveRequest struct {
	Objects []SyncObject `json:"objects"`
}

// SaveResponse is returned by a batch save. On conflict Errors names the
// rejected objects and Objects carries the server copies of them.
type SaveResponse struct {
	Objects []SyncObject `json:"objects"`
	Errors  []APIError   `json:"errors,omitempty"`
}

// APIError codes returned per object.
const (
	APIErrorCodeInvalidChecksum = "invalid_checksum"
	APIErrorCodeInvalid         = "invalid"
	APIErrorCodeNotFound        = "not_found"
)

// APIError is a per-object error reported by the object API.
type APIError struct {
	ObjectID string `json:"objectId,omitempty"`
	Message  string `json:"message"`
	Code     string `json:"code,omitempty"`
}

// IsInvalidChecksum reports whether the error is an optimistic-concurrency
// rejection.
func (e APIError) IsInvalidChecksum() bool {
	return e.Code == APIErrorCodeInvalidChecksum
}

// DeleteRequest deletes by ids, by type, or everything.
type DeleteRequest struct {
	IDs  []string   `json:"ids,omitempty"`
	Type ObjectType `json:"type,omitempty"`
	All  bool       `json:"all,omitempty"`
}

// DeleteResponse reports how many objects were removed.
type DeleteResponse struct {
	Deleted int `json:"deleted"`
}

// DirectUploadIntent registers the intent to upload bytes for an object.
type DirectUploadIntent struct {
	ID       string `json:"id"`
	Checksum string `json:"checksum"`
	ByteSize int64  `json:"byteSize"`
}

// DirectUploadRequest is the body of a prepare-direct-upload call.
type DirectUploadRequest struct {
	Objects []DirectUploadIntent `json:"objects"`
}

// DirectUpload is a signed upload target for one object.
type DirectUpload struct {
	ID           string            `json:"id"`
	URL          string            `json:"url"`
	Headers      map[string]string `json:"headers,omitempty"`
	BlobSignedID string            `json:"blobSignedId"`
}

// DirectUploadResponse lists the upload targets.
type DirectUploadResponse struct {
	Uploads []DirectUpload `json:"uploads"`
}

// Live message types pushed on the live-update channel.
const (
	LiveMessageObject = "object"
	LiveMessagePing   = "ping"
)

// LiveMessage is one frame of the live-update channel.
type LiveMessage struct {
	Type   string      `json:"type"`
	Object *SyncObject `json:"object,omitempty"`
}
