package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-object-sync/internal/config"
	"github.com/MKhiriev/go-object-sync/internal/crypto"
	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/mock"
	"github.com/MKhiriev/go-object-sync/internal/service"
	"github.com/MKhiriev/go-object-sync/internal/store"
	"github.com/MKhiriev/go-object-sync/internal/utils"
	"github.com/MKhiriev/go-object-sync/models"
)

var baseTime = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

// memCursors is an in-memory CursorRepository.
type memCursors struct {
	mu   sync.Mutex
	ts   map[string]time.Time
	sets int
}

func newMemCursors() *memCursors {
	return &memCursors{ts: make(map[string]time.Time)}
}

func (c *memCursors) GetCursor(_ context.Context, scope string) (time.Time, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ts[scope], nil
}

func (c *memCursors) SetCursor(_ context.Context, scope string, ts time.Time) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ts[scope] = ts
	c.sets++
	return nil
}

func (c *memCursors) DeleteCursors(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ts = make(map[string]time.Time)
	return nil
}

func (c *memCursors) get(scope string) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ts[scope]
}

type syncFixture struct {
	ctrl      *gomock.Controller
	transport *mock.MockTransport
	checksums store.ChecksumStore
	cursors   *memCursors
	encryptor crypto.Encryptor
	orch      service.SyncOrchestrator
}

func newSyncFixture(t *testing.T, opts ...func(*config.ClientConfig)) *syncFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	enc, err := crypto.NewEncryptorFromKey([]byte("0123456789abcdef0123456789abcdef"))
	require.NoError(t, err)

	cfg := config.ClientConfig{
		Adapter: config.ClientAdapter{TransferConcurrency: 4},
		Sync: config.Sync{
			ChunkSize:             1000,
			DirectUploadChunkSize: 100,
			DirectUploadThreshold: 1 << 20,
		},
	}
	for _, o := range opts {
		o(&cfg)
	}

	f := &syncFixture{
		ctrl:      ctrl,
		transport: mock.NewMockTransport(ctrl),
		checksums: store.NewMemoryChecksumStore(),
		cursors:   newMemCursors(),
		encryptor: enc,
	}
	storages := &store.ClientStorages{Checksums: f.checksums, Cursors: f.cursors}
	f.orch = service.NewSyncOrchestrator(storages, f.transport, enc, cfg, logger.Nop())
	return f
}

// domain registers a mocked domain manager of type t with policy.
func (f *syncFixture) domain(t *testing.T, objectType models.ObjectType, policy models.ConflictPolicy) (*mock.MockDomainManager, service.ObjectManager) {
	t.Helper()

	d := mock.NewMockDomainManager(f.ctrl)
	d.EXPECT().Type().Return(objectType).AnyTimes()
	d.EXPECT().Policy().Return(policy).AnyTimes()

	m, err := f.orch.Register(d)
	require.NoError(t, err)
	return d, m
}

func entity(id string, objectType models.ObjectType, payload string, updatedAt time.Time) models.Entity {
	return models.Entity{
		ID:        id,
		Type:      objectType,
		Payload:   json.RawMessage(payload),
		CreatedAt: baseTime,
		UpdatedAt: updatedAt,
	}
}

func entities(n int, objectType models.ObjectType) []models.Entity {
	out := make([]models.Entity, 0, n)
	for i := range n {
		out = append(out, entity(fmt.Sprintf("obj-%05d", i), objectType, fmt.Sprintf(`{"n":%d}`, i), baseTime.Add(time.Duration(i)*time.Second)))
	}
	return out
}

// remoteObject encodes e the way another client with the same key would.
func (f *syncFixture) remoteObject(t *testing.T, e models.Entity) models.SyncObject {
	t.Helper()

	canonical, err := utils.CanonicalJSON(e.Payload)
	require.NoError(t, err)
	data, err := f.encryptor.Encrypt(canonical)
	require.NoError(t, err)

	received := e.UpdatedAt.Add(time.Second)
	return models.SyncObject{
		ID:                  e.ID,
		Type:                e.Type,
		Data:                data,
		DataChecksum:        utils.Checksum(canonical),
		PrivateKeySignature: f.encryptor.Signature(),
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
		ReceivedAt:          &received,
	}
}

func checksumOf(t *testing.T, payload string) string {
	t.Helper()
	sum, err := utils.PayloadChecksum([]byte(payload))
	require.NoError(t, err)
	return sum
}

// accept echoes every saved object back as accepted.
func accept(_ context.Context, objects []models.SyncObject) ([]models.SyncObject, error) {
	out := make([]models.SyncObject, len(objects))
	for i, obj := range objects {
		received := baseTime.Add(time.Hour)
		obj.ReceivedAt = &received
		out[i] = obj
	}
	return out, nil
}
