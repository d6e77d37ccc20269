package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/service"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrNoAccountID:             http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInvalidBlobSignature:    http.StatusForbidden,
	service.ErrBlobNotReady:            http.StatusUnprocessableEntity,

	store.ErrObjectNotFound:     http.StatusNotFound,
	store.ErrBlobNotFound:       http.StatusNotFound,
	store.ErrBlobNotUploaded:    http.StatusNotFound,
	store.ErrBlobSizeMismatch:   http.StatusUnprocessableEntity,
	store.ErrChecksumMismatch:   http.StatusConflict,
	store.ErrChecksumNotFound:   http.StatusNotFound,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// saveStatus picks the status of a save response: 409 when any object hit
// a checksum conflict, 422 when objects were rejected for other reasons.
func saveStatus(errs []models.APIError) int {
	if len(errs) == 0 {
		return http.StatusOK
	}
	for _, e := range errs {
		if e.IsInvalidChecksum() {
			return http.StatusConflict
		}
	}
	return http.StatusUnprocessableEntity
}

// writeError logs err and answers with the status mapped from it. Internal
// errors are not echoed to the caller.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Int("status", status).Send()
	http.Error(w, err.Error(), status)
}
