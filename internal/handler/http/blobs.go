package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-object-sync/internal/logger"
)

// maxBlobSize bounds a single uploaded blob.
const maxBlobSize = 1 << 30

// putBlob handles PUT /blobs/{signedID}.
func (h *Handler) putBlob(w http.ResponseWriter, r *http.Request) {
	signedID := chi.URLParam(r, "signedID")

	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBlobSize))
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.putBlob").Msg("failed to read blob")
		http.Error(w, "failed to read blob", http.StatusBadRequest)
		return
	}

	if err = h.services.ObjectService.PutBlob(r.Context(), signedID, data); err != nil {
		writeError(w, r, "*Handler.putBlob", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getBlob handles GET /blobs/{signedID}.
func (h *Handler) getBlob(w http.ResponseWriter, r *http.Request) {
	data, err := h.services.ObjectService.GetBlob(r.Context(), chi.URLParam(r, "signedID"))
	if err != nil {
		writeError(w, r, "*Handler.getBlob", err)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err = w.Write(data); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getBlob").Msg("failed to write blob")
	}
}
