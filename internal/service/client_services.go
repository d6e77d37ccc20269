package service

import (
	"fmt"

	"github.com/MKhiriev/go-object-sync/internal/adapter"
	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/crypto"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/models"
)

// ClientServices groups the sync engine of the client.
type ClientServices struct {
	Orchestrator SyncOrchestrator
	Managers     map[models.ObjectType]ObjectManager
	SyncJob      ClientSyncJob
	LiveUpdates  LiveUpdateReceiver
}

// NewClientServices builds the orchestrator and registers a repository
// backed manager for every known object type. Passwords never overwrite a
// remote change silently; every other type merges.
func NewClientServices(storages *store.ClientStorages, transport adapter.Transport, live adapter.LiveUpdates, encryptor crypto.Encryptor, cfg config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	orchestrator := NewSyncOrchestrator(storages, transport, encryptor, cfg, logger)

	managers := make(map[models.ObjectType]ObjectManager)
	for _, t := range models.KnownObjectTypes() {
		policy := models.PolicyReplace
		if t == models.ObjectTypePassword {
			policy = models.PolicyFetchRemoteAndError
		}

		m, err := orchestrator.Register(NewRepositoryDomainManager(t, policy, storages.Objects, logger))
		if err != nil {
			return nil, fmt.Errorf("register %s manager: %w", t, err)
		}
		managers[t] = m
	}

	return &ClientServices{
		Orchestrator: orchestrator,
		Managers:     managers,
		SyncJob:      NewClientSyncJob(orchestrator, logger),
		LiveUpdates:  NewLiveUpdateReceiver(live, orchestrator, logger),
	}, nil
}
