package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrChecksumNotFound is returned when no checksum record exists for an id.
	ErrChecksumNotFound = errors.New("checksum record was not found")

	// ErrObjectNotFound is returned when an object does not exist.
	ErrObjectNotFound = errors.New("object was not found")

	// ErrChecksumMismatch is returned by a conditional object save when the
	// stored checksum differs from the previous checksum of the object.
	ErrChecksumMismatch = errors.New("previous checksum does not match stored checksum")

	// ErrBlobNotFound is returned for an unknown blob signed id.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrBlobNotUploaded is returned when a blob is registered but its bytes
	// never arrived.
	ErrBlobNotUploaded = errors.New("blob bytes were not uploaded")

	// ErrBlobSizeMismatch is returned when uploaded bytes differ in size from
	// the registered intent.
	ErrBlobSizeMismatch = errors.New("blob size does not match registered size")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
