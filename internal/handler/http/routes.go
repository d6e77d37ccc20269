package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/api/version", h.version)

	// signed blob ids authorize themselves
	router.Group(func(r chi.Router) {
		r.Put("/blobs/{signedID}", h.putBlob)
		r.Get("/blobs/{signedID}", h.getBlob)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		if h.live != nil {
			r.Get("/api/objects/live", h.serveLive)
		}

		r.Group(func(r chi.Router) {
			r.Use(withGZip, h.withBodyHash)

			r.Post("/api/objects/save", h.save)
			r.Post("/api/objects/fetch", h.fetch)
			r.Post("/api/objects/checksums", h.checksums)
			r.Post("/api/objects/delete", h.delete)
			r.Post("/api/objects/direct_upload", h.directUpload)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
