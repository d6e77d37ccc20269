// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync engine and
// the object API.
//
// The primary abstraction is [Transport], which decouples the sync engine
// from the wire protocol. The package ships an HTTP/REST implementation
// ([NewHTTPTransport]) built on resty and a websocket live-update client
// ([NewLiveUpdatesClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). Per-object
// rejections of a save are reported as [*APIErrors].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-object-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/transport_mock.go -package=mock

// Transport is the set of object API calls the sync engine depends on.
type Transport interface {
	// SaveAll saves objects in one request. Each object carries its
	// PreviousChecksum as the optimistic-concurrency token. On per-object
	// rejections it returns [*APIErrors] holding the rejected ids and the
	// server copies of conflicted objects.
	SaveAll(ctx context.Context, objects []models.SyncObject) ([]models.SyncObject, error)

	// FetchChecksums returns payload-less checksum records matching req,
	// following every page.
	FetchChecksums(ctx context.Context, req models.FetchRequest) ([]models.ObjectChecksum, error)

	// FetchAll returns full objects matching req, following every page.
	// Objects served by data url are downloaded before returning.
	FetchAll(ctx context.Context, req models.FetchRequest) ([]models.SyncObject, error)

	// Delete removes objects by id, by type or all of them.
	Delete(ctx context.Context, req models.DeleteRequest) (int, error)

	// PrepareDirectUpload registers upload intents and returns one signed
	// upload target per intent.
	PrepareDirectUpload(ctx context.Context, intents []models.DirectUploadIntent) ([]models.DirectUpload, error)

	// UploadBlob streams data to a signed upload target.
	UploadBlob(ctx context.Context, upload models.DirectUpload, data []byte) error

	// DownloadBlob fetches the bytes behind a data url.
	DownloadBlob(ctx context.Context, url string) ([]byte, error)

	// Version returns the build info of the object API.
	Version(ctx context.Context) (models.BuildInfo, error)
}

// LiveUpdateHandler receives objects pushed on the live-update channel.
type LiveUpdateHandler func(ctx context.Context, object models.SyncObject) error

// LiveUpdates is the push channel of remotely changed objects.
type LiveUpdates interface {
	// Subscribe connects and delivers every pushed object to handle until
	// ctx is cancelled, reconnecting with backoff on failures.
	Subscribe(ctx context.Context, handle LiveUpdateHandler) error
	// Connected reports whether a session is currently open.
	Connected() bool
}
