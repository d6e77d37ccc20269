package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-object-sync/models"
)

// Transport errors mapped from HTTP status codes and client-side checks.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrNotAuthenticated is returned before any request is sent when no
	// token is configured or the token has expired.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNetworkUnavailable wraps transport failures where no response was
	// received.
	ErrNetworkUnavailable = errors.New("network unavailable")
	// ErrParse is returned when a response body cannot be decoded.
	ErrParse = errors.New("cannot parse server response")
)

// APIErrors carries the per-object rejections of a save. Objects holds the
// server copies of the rejected objects where the server knows them.
type APIErrors struct {
	Errors  []models.APIError
	Objects []models.SyncObject

	status error
}

func (e *APIErrors) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, apiErr := range e.Errors {
		if apiErr.ObjectID != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", apiErr.ObjectID, apiErr.Message))
		} else {
			parts = append(parts, apiErr.Message)
		}
	}
	return fmt.Sprintf("api errors: %s", strings.Join(parts, "; "))
}

// Unwrap returns the status sentinel (ErrConflict or ErrUnprocessable).
func (e *APIErrors) Unwrap() error {
	return e.status
}

// InvalidChecksumIDs returns the ids rejected with code invalid_checksum.
func (e *APIErrors) InvalidChecksumIDs() []string {
	var ids []string
	for _, apiErr := range e.Errors {
		if apiErr.IsInvalidChecksum() && apiErr.ObjectID != "" {
			ids = append(ids, apiErr.ObjectID)
		}
	}
	return ids
}

// Others returns the rejections that are not checksum conflicts.
func (e *APIErrors) Others() []models.APIError {
	var others []models.APIError
	for _, apiErr := range e.Errors {
		if !apiErr.IsInvalidChecksum() {
			others = append(others, apiErr)
		}
	}
	return others
}
