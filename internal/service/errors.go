package service

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/MKhiriev/go-object-sync/models"
)

var (
	// ErrNestedTooDeep is returned when conflict recovery keeps conflicting
	// after maxNestedDepth recovery saves.
	ErrNestedTooDeep = errors.New("conflict recovery nested too deep")

	ErrFullSyncAlreadyRunning = errors.New("full sync already running")
	ErrDifferentEncryptionKey = errors.New("object encrypted with a different key")
	ErrNoManager              = errors.New("no manager registered for object type")
	ErrManagerAlreadyExists   = errors.New("manager already registered for object type")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidDataProvided   = errors.New("invalid data provided")
	ErrBlobNotReady          = errors.New("large data blob is not uploaded or does not match")
	ErrInvalidBlobSignature  = errors.New("invalid blob signature")

	ErrNoAccountID             = errors.New("no account id in context")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
)

// InvalidChecksumError names the objects the server rejected because their
// previous checksum did not match, with the server copies it returned.
type InvalidChecksumError struct {
	Objects       []models.SyncObject
	RemoteObjects []models.SyncObject
}

func (e *InvalidChecksumError) Error() string {
	return fmt.Sprintf("invalid checksum for %s", joinIDs(e.Objects))
}

// ConflictError is the outcome of a conflict under the fetchRemoteAndError
// policy. Good objects were saved, Conflicted were not, Remote holds the
// server copies of the conflicted ones where they exist.
type ConflictError struct {
	Conflicted []models.SyncObject
	Good       []models.SyncObject
	Remote     []models.SyncObject
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on %s (%d saved)", joinIDs(e.Conflicted), len(e.Good))
}

// DecodingError reports a remote object that cannot be decoded as its
// declared type. It never aborts the batch it belongs to.
type DecodingError struct {
	ID   string
	Type models.ObjectType
	Err  error
}

func (e *DecodingError) Error() string {
	return fmt.Sprintf("decode %s object %s: %v", e.Type, e.ID, e.Err)
}

func (e *DecodingError) Unwrap() error {
	return e.Err
}

// ApplyError reports an object the domain manager failed to apply.
type ApplyError struct {
	ID   string
	Type models.ObjectType
	Err  error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply %s object %s: %v", e.Type, e.ID, e.Err)
}

func (e *ApplyError) Unwrap() error {
	return e.Err
}

// PrivateKeyError lists received objects by whether they were encrypted with
// the current key.
type PrivateKeyError struct {
	Valid   []string
	Invalid []string
}

func (e *PrivateKeyError) Error() string {
	return fmt.Sprintf("%d objects encrypted with a different key: %s", len(e.Invalid), strings.Join(e.Invalid, ", "))
}

func (e *PrivateKeyError) Unwrap() error {
	return ErrDifferentEncryptionKey
}

// MultipleErrors aggregates the independent failures of one batch.
type MultipleErrors struct {
	errs []error
}

// combine flattens errs and returns nil, the only error, or a
// *MultipleErrors.
func combine(errs ...error) error {
	var all []error
	for _, err := range errs {
		if m, ok := err.(*MultipleErrors); ok {
			all = append(all, m.errs...)
			continue
		}
		all = append(all, multierr.Errors(err)...)
	}

	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	default:
		return &MultipleErrors{errs: all}
	}
}

func (e *MultipleErrors) Error() string {
	return multierr.Combine(e.errs...).Error()
}

// Errors returns the constituent errors.
func (e *MultipleErrors) Errors() []error {
	return e.errs
}

// Unwrap lets errors.Is and errors.As inspect every constituent.
func (e *MultipleErrors) Unwrap() []error {
	return e.errs
}

func joinIDs(objects []models.SyncObject) string {
	ids := make([]string, 0, len(objects))
	for _, o := range objects {
		ids = append(ids, o.ID)
	}
	return strings.Join(ids, ", ")
}
