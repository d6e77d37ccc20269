package service

import (
	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/models"
)

// Services groups the services of the reference object API.
type Services struct {
	AuthService    AuthService
	ObjectService  ObjectService
	AppInfoService AppInfoService
}

func NewServices(storages *store.ServerStorages, publisher ObjectPublisher, cfg config.ServerConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, logger)
	if err != nil {
		return nil, err
	}

	objects := NewObjectValidationService().Wrap(NewObjectService(storages, publisher, cfg, logger))

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		ObjectService:  objects,
		AppInfoService: appInfo,
	}, nil
}
