package http

import (
	"net/http"
)

// version handles GET /api/version.
func (h *Handler) version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, "*Handler.version", h.services.AppInfoService.GetAppVersion(r.Context()), http.StatusOK)
}
