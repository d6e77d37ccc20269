package http

import (
	"bytes"
	"io"
	"net/http"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/utils"
)

const hashHeader = "HashSHA256"

// withBodyHash checks the HashSHA256 header against the HMAC-SHA256 of the
// request body. Requests without the header pass, as do all requests when
// the handler has no hash key.
func (h *Handler) withBodyHash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		signature := r.Header.Get(hashHeader)
		if h.hasher == nil || signature == "" || r.Body == nil {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		// read bytes from body
		body, err := io.ReadAll(io.LimitReader(r.Body, utils.MaxJSONBodySize))
		if err != nil {
			log.Err(err).Str("func", "*Handler.withBodyHash").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		if !h.hasher.Equal(body, signature) {
			log.Error().Str("func", "*Handler.withBodyHash").
				Str("hash from request", signature).
				Msg("hashes are not equal")
			http.Error(w, ErrBodyHashMismatch.Error(), http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r)
	})
}
