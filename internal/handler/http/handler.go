package http

import (
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/service"
	"github.com/MKhiriev/go-object-sync/internal/utils"
)

type Handler struct {
	services *service.Services
	live     *LiveHub
	hasher   *utils.Hasher

	logger *logger.Logger
}

// NewHandler builds the object API handler. Request bodies are verified
// against the HashSHA256 header only when hashKey is set. live may be nil,
// in which case GET /api/objects/live is not served.
func NewHandler(services *service.Services, live *LiveHub, hashKey string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		live:     live,
		hasher:   utils.NewHasher(hashKey),
		logger:   logger,
	}
}
