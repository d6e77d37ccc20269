package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-object-sync/internal/adapter"
	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/crypto"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/service"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/internal/utils"
	"github.com/MKhiriev/go-object-sync/internal/workers"
	"github.com/MKhiriev/go-object-sync/models"
)

var _ Client = (*App)(nil)

type App struct {
	storages  *store.ClientStorages
	transport adapter.Transport
	services  *service.ClientServices
	workers   *workers.Workers
	ids       *utils.UUIDGenerator
	now       func() time.Time

	logger *logger.Logger
}

// NewApp opens the local database and connects the sync engine to the
// object API described by cfg.
func NewApp(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	app, err := newApp(storages, cfg, logger)
	if err != nil {
		storages.Close()
		return nil, err
	}
	return app, nil
}

func newApp(storages *store.ClientStorages, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	encryptor, err := crypto.NewEncryptor(cfg.App.EncryptionKey, nil)
	if err != nil {
		return nil, fmt.Errorf("create encryptor: %w", err)
	}

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	token := cfg.App.Token
	live := adapter.NewLiveUpdatesClient(cfg.Adapter, func() string { return token }, logger)

	return assemble(storages, transport, live, encryptor, cfg, logger)
}

func assemble(storages *store.ClientStorages, transport adapter.Transport, live adapter.LiveUpdates, encryptor crypto.Encryptor, cfg *config.ClientConfig, logger *logger.Logger) (*App, error) {
	services, err := service.NewClientServices(storages, transport, live, encryptor, *cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("create services: %w", err)
	}

	return &App{
		storages:  storages,
		transport: transport,
		services:  services,
		workers:   workers.NewClientWorkers(services, cfg.Workers, logger),
		ids:       utils.NewUUIDGenerator(),
		now:       time.Now,
		logger:    logger,
	}, nil
}

func (a *App) Sync(ctx context.Context, onStatus func(models.SyncStatus)) error {
	if onStatus != nil {
		updates, cancel := a.services.Orchestrator.Subscribe()
		done := make(chan struct{})
		go func() {
			defer close(done)
			for status := range updates {
				onStatus(status)
			}
		}()
		defer func() {
			cancel()
			<-done
		}()
	}

	return a.services.Orchestrator.FullSync(ctx)
}

func (a *App) Watch(ctx context.Context) error {
	a.logger.Info().Str("func", "App.Watch").Msg("watching for changes")
	a.workers.Run(ctx)

	if err := ctx.Err(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func (a *App) Status() models.SyncStatus {
	return a.services.Orchestrator.Status()
}

func (a *App) Push(ctx context.Context, t models.ObjectType, id string, payload json.RawMessage) (models.Entity, error) {
	if !t.IsKnown() {
		return models.Entity{}, fmt.Errorf("%w: %s", service.ErrNoManager, t)
	}
	if !json.Valid(payload) {
		return models.Entity{}, fmt.Errorf("%w: payload is not valid JSON", service.ErrInvalidDataProvided)
	}

	now := a.now().UTC()
	entity := models.Entity{ID: id, Type: t, Payload: payload, CreatedAt: now, UpdatedAt: now}

	if id == "" {
		entity.ID = a.ids.Generate()
	} else {
		existing, err := a.storages.Objects.Get(ctx, id)
		switch {
		case err == nil:
			if existing.Type != t {
				return models.Entity{}, fmt.Errorf("%w: %s is a %s", service.ErrInvalidDataProvided, id, existing.Type)
			}
			entity.CreatedAt = existing.CreatedAt
		case errors.Is(err, store.ErrObjectNotFound):
		default:
			return models.Entity{}, fmt.Errorf("load %s: %w", id, err)
		}
	}

	if err := a.storages.Objects.Save(ctx, entity); err != nil {
		return models.Entity{}, fmt.Errorf("store %s: %w", entity.ID, err)
	}

	if err := a.services.Orchestrator.ObjectsChanged(ctx, entity); err != nil {
		return entity, fmt.Errorf("save %s remotely: %w", entity.ID, err)
	}
	return entity, nil
}

func (a *App) Pull(ctx context.Context, t models.ObjectType) (int, error) {
	m, err := a.manager(t)
	if err != nil {
		return 0, err
	}
	return m.FetchAll(ctx)
}

func (a *App) Refresh(ctx context.Context, t models.ObjectType, id string, force bool) (bool, error) {
	m, err := a.manager(t)
	if err != nil {
		return false, err
	}
	return m.Refresh(ctx, id, force)
}

func (a *App) Get(ctx context.Context, id string) (models.Entity, error) {
	return a.storages.Objects.Get(ctx, id)
}

func (a *App) List(ctx context.Context, t models.ObjectType) ([]models.Entity, error) {
	return a.storages.Objects.ListUpdatedSince(ctx, t, time.Time{})
}

func (a *App) Delete(ctx context.Context, t models.ObjectType, ids ...string) error {
	m, err := a.manager(t)
	if err != nil {
		return err
	}

	if len(ids) == 0 {
		if err = m.DeleteAll(ctx); err != nil {
			return err
		}
		return a.storages.Objects.DeleteAll(ctx, t)
	}

	if err = m.Delete(ctx, ids...); err != nil {
		return err
	}
	return a.storages.Objects.Delete(ctx, ids...)
}

func (a *App) ServerVersion(ctx context.Context) (models.BuildInfo, error) {
	return a.transport.Version(ctx)
}

func (a *App) Close() error {
	return a.storages.Close()
}

func (a *App) manager(t models.ObjectType) (service.ObjectManager, error) {
	m, ok := a.services.Orchestrator.Manager(t)
	if !ok {
		return nil, fmt.Errorf("%w: %s", service.ErrNoManager, t)
	}
	return m, nil
}
