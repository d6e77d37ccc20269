package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/internal/mock"
	"github.com/MKhiriev/go-object-sync/internal/service"
	"github.com/MKhiriev/go-object-sync/models"
)

func newRepoDomain(t *testing.T, objectType models.ObjectType) (service.DomainManager, *mock.MockLocalObjectRepository) {
	t.Helper()
	repo := mock.NewMockLocalObjectRepository(gomock.NewController(t))
	return service.NewRepositoryDomainManager(objectType, models.PolicyReplace, repo, logger.Nop()), repo
}

func TestRepositoryDomainManager_Basics(t *testing.T) {
	d, repo := newRepoDomain(t, models.ObjectTypeDocument)

	assert.Equal(t, models.ObjectTypeDocument, d.Type())
	assert.Equal(t, models.PolicyReplace, d.Policy())

	keeper, ok := d.(service.DataSentKeeper)
	require.True(t, ok)
	assert.True(t, keeper.KeepDataSent())

	links, _ := newRepoDomain(t, models.ObjectTypeLink)
	assert.False(t, links.(service.DataSentKeeper).KeepDataSent())

	want := []models.Entity{entity("a", models.ObjectTypeDocument, `{}`, baseTime)}
	repo.EXPECT().ListUpdatedSince(gomock.Any(), models.ObjectTypeDocument, baseTime).Return(want, nil)

	got, err := d.AllObjects(context.Background(), baseTime)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepositoryDomainManager_ReceivedObjects(t *testing.T) {
	deletedAt := baseTime.Add(time.Hour)
	upsert := entity("a", models.ObjectTypeLink, `{"v":1}`, baseTime)
	tombstone := models.Entity{ID: "b", Type: models.ObjectTypeLink, UpdatedAt: deletedAt, DeletedAt: &deletedAt}

	tests := []struct {
		name     string
		entities []models.Entity
		setup    func(repo *mock.MockLocalObjectRepository)
		wantErr  bool
	}{
		{
			name:     "upserts and deletes",
			entities: []models.Entity{upsert, tombstone},
			setup: func(repo *mock.MockLocalObjectRepository) {
				repo.EXPECT().Save(gomock.Any(), upsert).Return(nil)
				repo.EXPECT().Delete(gomock.Any(), "b").Return(nil)
			},
		},
		{
			name:     "invalid payload is rejected",
			entities: []models.Entity{entity("a", models.ObjectTypeLink, `not json`, baseTime)},
			setup:    func(*mock.MockLocalObjectRepository) {},
			wantErr:  true,
		},
		{
			name:     "repository error",
			entities: []models.Entity{upsert},
			setup: func(repo *mock.MockLocalObjectRepository) {
				repo.EXPECT().Save(gomock.Any(), upsert).Return(errors.New("locked"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, repo := newRepoDomain(t, models.ObjectTypeLink)
			tt.setup(repo)

			err := d.ReceivedObjects(context.Background(), tt.entities)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRepositoryDomainManager_ManageConflict(t *testing.T) {
	deletedAt := baseTime

	tests := []struct {
		name        string
		local       models.Entity
		remote      models.Entity
		wantPayload string
	}{
		{
			name:        "local keys overlay remote ones",
			local:       entity("a", models.ObjectTypeLink, `{"title":"mine","url":"x"}`, baseTime),
			remote:      entity("a", models.ObjectTypeLink, `{"title":"theirs","tags":["t"]}`, baseTime),
			wantPayload: `{"title":"mine","url":"x","tags":["t"]}`,
		},
		{
			name:        "non object payload keeps local",
			local:       entity("a", models.ObjectTypeLink, `["local"]`, baseTime),
			remote:      entity("a", models.ObjectTypeLink, `{"title":"theirs"}`, baseTime),
			wantPayload: `["local"]`,
		},
		{
			name:        "null remote keeps local",
			local:       entity("a", models.ObjectTypeLink, `{"title":"mine"}`, baseTime),
			remote:      entity("a", models.ObjectTypeLink, `null`, baseTime),
			wantPayload: `{"title":"mine"}`,
		},
		{
			name:  "deleted remote keeps local",
			local: entity("a", models.ObjectTypeLink, `{"title":"mine"}`, baseTime),
			remote: models.Entity{
				ID: "a", Type: models.ObjectTypeLink, UpdatedAt: baseTime, DeletedAt: &deletedAt,
			},
			wantPayload: `{"title":"mine"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _ := newRepoDomain(t, models.ObjectTypeLink)

			merged, err := d.ManageConflict(context.Background(), tt.local, tt.remote)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantPayload, string(merged.Payload))
			assert.Equal(t, tt.local.ID, merged.ID)
		})
	}
}

func TestRepositoryDomainManager_ManageConflict_KeepsEarliestCreatedAt(t *testing.T) {
	d, _ := newRepoDomain(t, models.ObjectTypeLink)

	local := entity("a", models.ObjectTypeLink, `{"v":1}`, baseTime)
	remote := entity("a", models.ObjectTypeLink, `{"w":2}`, baseTime)
	remote.CreatedAt = baseTime.Add(-24 * time.Hour)

	merged, err := d.ManageConflict(context.Background(), local, remote)
	require.NoError(t, err)
	assert.Equal(t, remote.CreatedAt, merged.CreatedAt)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(merged.Payload, &fields))
	assert.Len(t, fields, 2)
}
