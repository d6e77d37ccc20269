// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// SyncObject is the wire and storage unit exchanged with the object API.
//
// Data holds the encrypted payload. It is nil when the bytes were uploaded
// out of band and LargeDataBlobID references them instead, or when the server
// returned a DataURL to download the bytes from.
type SyncObject struct {
	ID   string     `json:"id"`
	Type ObjectType `json:"type"`

	Data         []byte `json:"data,omitempty"`
	DataChecksum string `json:"dataChecksum"`

	// PreviousChecksum is the checksum the client believes the server holds.
	// Empty means the object is new for the server.
	PreviousChecksum string `json:"previousChecksum,omitempty"`

	LargeDataBlobID     string `json:"largeDataBlobId,omitempty"`
	DataURL             string `json:"dataUrl,omitempty"`
	PrivateKeySignature string `json:"privateKeySignature,omitempty"`

	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DeletedAt  *time.Time `json:"deletedAt,omitempty"`
	ReceivedAt *time.Time `json:"receivedAt,omitempty"`
}

// Identity returns the object id. It lets SyncObject be scheduled by the
// identity queue.
func (o SyncObject) Identity() string {
	return o.ID
}

// IsDeleted reports whether the object carries a deletion timestamp.
func (o SyncObject) IsDeleted() bool {
	return o.DeletedAt != nil
}

// Entity is the clear-text domain view of a SyncObject handed to and
// received from domain managers. Payload is the domain JSON document.
type Entity struct {
	ID        string          `json:"id"`
	Type      ObjectType      `json:"type"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
	DeletedAt *time.Time      `json:"deletedAt,omitempty"`
}

// Identity returns the entity id.
func (e Entity) Identity() string {
	return e.ID
}

// ObjectChecksum is the payload-less record returned by the checksum endpoint.
type ObjectChecksum struct {
	ID           string     `json:"id"`
	Type         ObjectType `json:"type"`
	DataChecksum string     `json:"dataChecksum"`
	ReceivedAt   time.Time  `json:"receivedAt"`
	Deleted      bool       `json:"deleted,omitempty"`
}
