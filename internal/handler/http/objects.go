package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/service"
	"github.com/MKhiriev/go-object-sync/internal/utils"
	"github.com/MKhiriev/go-object-sync/models"
)

// save handles POST /api/objects/save. Rejected objects do not fail the
// request: the response lists them in errors, with the stored copies of
// conflicting objects in objects.
func (h *Handler) save(w http.ResponseWriter, r *http.Request) {
	var req models.SaveRequest
	if !decodeRequest(w, r, "*Handler.save", &req) {
		return
	}

	resp, err := h.services.ObjectService.Save(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.save", err)
		return
	}

	if len(resp.Errors) > 0 {
		logger.FromRequest(r).Debug().
			Str("func", "*Handler.save").
			Int("rejected", len(resp.Errors)).
			Int("saved", len(req.Objects)-len(resp.Errors)).
			Msg("objects rejected")
	}

	writeJSON(w, r, "*Handler.save", resp, saveStatus(resp.Errors))
}

// fetch handles POST /api/objects/fetch.
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	var req models.FetchRequest
	if !decodeRequest(w, r, "*Handler.fetch", &req) {
		return
	}

	page, err := h.services.ObjectService.Fetch(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.fetch", err)
		return
	}

	writeJSON(w, r, "*Handler.fetch", page, http.StatusOK)
}

// checksums handles POST /api/objects/checksums.
func (h *Handler) checksums(w http.ResponseWriter, r *http.Request) {
	var req models.FetchRequest
	if !decodeRequest(w, r, "*Handler.checksums", &req) {
		return
	}

	page, err := h.services.ObjectService.Checksums(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.checksums", err)
		return
	}

	writeJSON(w, r, "*Handler.checksums", page, http.StatusOK)
}

// delete handles POST /api/objects/delete.
func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteRequest
	if !decodeRequest(w, r, "*Handler.delete", &req) {
		return
	}

	resp, err := h.services.ObjectService.Delete(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.delete", err)
		return
	}

	writeJSON(w, r, "*Handler.delete", resp, http.StatusOK)
}

// directUpload handles POST /api/objects/direct_upload.
func (h *Handler) directUpload(w http.ResponseWriter, r *http.Request) {
	var req models.DirectUploadRequest
	if !decodeRequest(w, r, "*Handler.directUpload", &req) {
		return
	}

	resp, err := h.services.ObjectService.PrepareDirectUpload(r.Context(), req)
	if err != nil {
		writeError(w, r, "*Handler.directUpload", err)
		return
	}

	writeJSON(w, r, "*Handler.directUpload", resp, http.StatusOK)
}

func decodeRequest(w http.ResponseWriter, r *http.Request, fn string, dst any) bool {
	if err := utils.DecodeJSON(r, dst); err != nil {
		writeError(w, r, fn, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, r *http.Request, fn string, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", fn).Msg("failed to write response")
	}
}
