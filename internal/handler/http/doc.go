// Package http serves the reference object API.
//
// Routes under /api/objects save, fetch, list checksums, delete and prepare
// direct uploads for the account named by the bearer token. /blobs carries
// the raw bytes of direct uploads and /api/objects/live pushes saved objects
// to websocket subscribers of the same account.
package http
