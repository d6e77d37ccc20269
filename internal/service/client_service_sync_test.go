package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-object-sync/internal/adapter"
	"github.com/MKhiriev/go-object-sync/internal/mock"
	"github.com/MKhiriev/go-object-sync/internal/service"
	"github.com/MKhiriev/go-object-sync/models"
)

// ── Register ─────────────────────────────────────────────────────────────────

func TestSyncOrchestrator_Register(t *testing.T) {
	f := newSyncFixture(t)
	_, m := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	assert.Equal(t, models.ObjectTypeLink, m.Type())

	got, ok := f.orch.Manager(models.ObjectTypeLink)
	require.True(t, ok)
	assert.Equal(t, m, got)

	_, ok = f.orch.Manager(models.ObjectTypeContact)
	assert.False(t, ok)

	dup := mock.NewMockDomainManager(f.ctrl)
	dup.EXPECT().Type().Return(models.ObjectTypeLink).AnyTimes()
	_, err := f.orch.Register(dup)
	assert.ErrorIs(t, err, service.ErrManagerAlreadyExists)
}

// ── FullSync: download ───────────────────────────────────────────────────────

func TestSyncOrchestrator_FullSync_FetchesOnlyChangedObjects(t *testing.T) {
	f := newSyncFixture(t)
	d, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	a := f.remoteObject(t, entity("a", models.ObjectTypeLink, `{"v":"a"}`, baseTime))
	b := f.remoteObject(t, entity("b", models.ObjectTypeLink, `{"v":"b2"}`, baseTime))
	c := f.remoteObject(t, entity("c", models.ObjectTypeLink, `{"v":"c"}`, baseTime.Add(time.Minute)))

	require.NoError(t, f.checksums.SetMany(ctx, []models.ChecksumRecord{
		{ID: "a", Type: models.ObjectTypeLink, PreviousChecksum: a.DataChecksum},
		{ID: "b", Type: models.ObjectTypeLink, PreviousChecksum: checksumOf(t, `{"v":"b1"}`)},
	}))

	f.transport.EXPECT().
		FetchChecksums(gomock.Any(), models.FetchRequest{Types: []models.ObjectType{models.ObjectTypeLink}}).
		Return([]models.ObjectChecksum{
			{ID: "a", Type: models.ObjectTypeLink, DataChecksum: a.DataChecksum, ReceivedAt: *a.ReceivedAt},
			{ID: "b", Type: models.ObjectTypeLink, DataChecksum: b.DataChecksum, ReceivedAt: *b.ReceivedAt},
			{ID: "c", Type: models.ObjectTypeLink, DataChecksum: c.DataChecksum, ReceivedAt: *c.ReceivedAt},
		}, nil)
	f.transport.EXPECT().
		FetchAll(gomock.Any(), models.FetchRequest{IDs: []string{"b", "c"}, WithDataURL: true}).
		Return([]models.SyncObject{b, c}, nil)
	d.EXPECT().ReceivedObjects(gomock.Any(), gomock.Len(2)).Return(nil)
	d.EXPECT().AllObjects(gomock.Any(), time.Time{}).Return(nil, nil)

	require.NoError(t, f.orch.FullSync(ctx))

	record, err := f.checksums.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, b.DataChecksum, record.PreviousChecksum)
	assert.Equal(t, *c.ReceivedAt, f.cursors.get(models.CursorScopeDownload))
	assert.Equal(t, models.StateFinished, f.orch.Status().State)
}

func TestSyncOrchestrator_FullSync_UsesDownloadCursor(t *testing.T) {
	f := newSyncFixture(t)
	d, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	since := baseTime.Add(-time.Hour)
	require.NoError(t, f.cursors.SetCursor(ctx, models.CursorScopeDownload, since))

	f.transport.EXPECT().
		FetchChecksums(gomock.Any(), models.FetchRequest{Types: []models.ObjectType{models.ObjectTypeLink}, ReceivedAfter: &since}).
		Return(nil, nil)
	d.EXPECT().AllObjects(gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, f.orch.FullSync(ctx))
	assert.Equal(t, since, f.cursors.get(models.CursorScopeDownload))
}

func TestSyncOrchestrator_FullSync_AppliesKnownTombstones(t *testing.T) {
	f := newSyncFixture(t)
	d, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	require.NoError(t, f.checksums.Set(ctx, models.ChecksumRecord{ID: "gone", Type: models.ObjectTypeLink, PreviousChecksum: "x"}))

	f.transport.EXPECT().FetchChecksums(gomock.Any(), gomock.Any()).Return([]models.ObjectChecksum{
		{ID: "gone", Type: models.ObjectTypeLink, DataChecksum: "y", ReceivedAt: baseTime, Deleted: true},
		{ID: "never-seen", Type: models.ObjectTypeLink, DataChecksum: "z", ReceivedAt: baseTime, Deleted: true},
	}, nil)
	d.EXPECT().ReceivedObjects(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got []models.Entity) error {
			require.Len(t, got, 1)
			assert.Equal(t, "gone", got[0].ID)
			require.NotNil(t, got[0].DeletedAt)
			assert.Equal(t, baseTime, *got[0].DeletedAt)
			return nil
		})
	d.EXPECT().AllObjects(gomock.Any(), gomock.Any()).Return(nil, nil)

	require.NoError(t, f.orch.FullSync(ctx))

	_, err := f.checksums.Get(ctx, "gone")
	assert.Error(t, err)
}

func TestSyncOrchestrator_FullSync_Cursor(t *testing.T) {
	tests := []struct {
		name          string
		object        func(f *syncFixture, t *testing.T) models.SyncObject
		applyErr      error
		wantErr       bool
		wantCursorSet bool
	}{
		{
			name: "applied object advances the cursor",
			object: func(f *syncFixture, t *testing.T) models.SyncObject {
				return f.remoteObject(t, entity("a", models.ObjectTypeLink, `{"v":1}`, baseTime))
			},
			wantCursorSet: true,
		},
		{
			name: "foreign key object does not hold the cursor",
			object: func(f *syncFixture, t *testing.T) models.SyncObject {
				obj := f.remoteObject(t, entity("a", models.ObjectTypeLink, `{"v":1}`, baseTime))
				obj.PrivateKeySignature = "someone-else"
				return obj
			},
			wantCursorSet: true,
		},
		{
			name: "apply failure holds the cursor",
			object: func(f *syncFixture, t *testing.T) models.SyncObject {
				return f.remoteObject(t, entity("a", models.ObjectTypeLink, `{"v":1}`, baseTime))
			},
			applyErr: errors.New("disk full"),
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(t)
			d, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
			ctx := context.Background()
			obj := tt.object(f, t)

			f.transport.EXPECT().FetchChecksums(gomock.Any(), gomock.Any()).Return([]models.ObjectChecksum{
				{ID: obj.ID, Type: obj.Type, DataChecksum: obj.DataChecksum, ReceivedAt: *obj.ReceivedAt},
			}, nil)
			f.transport.EXPECT().FetchAll(gomock.Any(), gomock.Any()).Return([]models.SyncObject{obj}, nil)
			d.EXPECT().ReceivedObjects(gomock.Any(), gomock.Any()).Return(tt.applyErr).AnyTimes()
			d.EXPECT().AllObjects(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

			err := f.orch.FullSync(ctx)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, models.StateFailed, f.orch.Status().State)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCursorSet, !f.cursors.get(models.CursorScopeDownload).IsZero())
		})
	}
}

func TestSyncOrchestrator_FullSync_FetchFailure(t *testing.T) {
	f := newSyncFixture(t)
	f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	f.transport.EXPECT().FetchChecksums(gomock.Any(), gomock.Any()).Return(nil, adapter.ErrUnauthorized)

	err := f.orch.FullSync(ctx)
	require.ErrorIs(t, err, adapter.ErrUnauthorized)

	status := f.orch.Status()
	assert.Equal(t, models.StateFailed, status.State)
	assert.ErrorIs(t, status.Err, adapter.ErrUnauthorized)
}

// ── FullSync: upload ─────────────────────────────────────────────────────────

func TestSyncOrchestrator_FullSync_UploadsEveryType(t *testing.T) {
	f := newSyncFixture(t)
	links, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	contacts, _ := f.domain(t, models.ObjectTypeContact, models.PolicyReplace)
	ctx := context.Background()

	f.transport.EXPECT().FetchChecksums(gomock.Any(), gomock.Any()).Return(nil, nil)
	links.EXPECT().AllObjects(gomock.Any(), gomock.Any()).Return(entities(3, models.ObjectTypeLink), nil)
	contacts.EXPECT().AllObjects(gomock.Any(), gomock.Any()).
		Return([]models.Entity{entity("c1", models.ObjectTypeContact, `{"name":"x"}`, baseTime)}, nil)
	f.transport.EXPECT().SaveAll(gomock.Any(), gomock.Any()).DoAndReturn(accept).Times(2)

	updates, cancel := f.orch.Subscribe()
	defer cancel()

	require.NoError(t, f.orch.FullSync(ctx))

	count, err := f.checksums.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	// subscribers only keep the latest status
	assert.Equal(t, models.StateFinished, (<-updates).State)
}

func TestSyncOrchestrator_FullSync_ChangesDuringUploadAreDrained(t *testing.T) {
	f := newSyncFixture(t)
	d, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	changed := entity("late", models.ObjectTypeLink, `{"v":"late"}`, baseTime)

	f.transport.EXPECT().FetchChecksums(gomock.Any(), gomock.Any()).Return(nil, nil)
	d.EXPECT().AllObjects(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Time) ([]models.Entity, error) {
			// queued while the upload pass runs
			require.NoError(t, f.orch.ObjectsChanged(ctx, changed))
			return nil, nil
		})
	f.transport.EXPECT().SaveAll(gomock.Any(), gomock.Len(1)).DoAndReturn(accept).Times(1)

	require.NoError(t, f.orch.FullSync(ctx))

	_, err := f.checksums.Get(ctx, "late")
	assert.NoError(t, err)

	// after the pass changes are saved right away
	f.transport.EXPECT().SaveAll(gomock.Any(), gomock.Len(1)).DoAndReturn(accept).Times(1)
	require.NoError(t, f.orch.ObjectsChanged(ctx, entity("later", models.ObjectTypeLink, `{"v":"later"}`, baseTime)))
}

func TestSyncOrchestrator_FailedSync_QueuedChangeNeverOverwritesNewerEdit(t *testing.T) {
	f := newSyncFixture(t)
	d, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	v1 := entity("x", models.ObjectTypeLink, `{"v":1}`, baseTime)
	v2 := entity("x", models.ObjectTypeLink, `{"v":2}`, baseTime.Add(time.Minute))
	broken := errors.New("listing failed")

	f.transport.EXPECT().FetchChecksums(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	gomock.InOrder(
		d.EXPECT().AllObjects(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ time.Time) ([]models.Entity, error) {
				require.NoError(t, f.orch.ObjectsChanged(ctx, v1))
				return nil, broken
			}),
		d.EXPECT().AllObjects(gomock.Any(), gomock.Any()).Return([]models.Entity{v2}, nil),
	)

	var sent []string
	f.transport.EXPECT().SaveAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, objects []models.SyncObject) ([]models.SyncObject, error) {
			for _, obj := range objects {
				sent = append(sent, obj.DataChecksum)
			}
			return accept(ctx, objects)
		}).AnyTimes()

	require.ErrorIs(t, f.orch.FullSync(ctx), broken)

	// edited again after the failed pass, before the next one
	require.NoError(t, f.orch.ObjectsChanged(ctx, v2))
	require.NoError(t, f.orch.FullSync(ctx))

	assert.Equal(t, []string{checksumOf(t, `{"v":2}`)}, sent)

	record, err := f.checksums.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, checksumOf(t, `{"v":2}`), record.PreviousChecksum)
}

func TestSyncOrchestrator_FailedSync_QueuedChangeIsFlushedBeforeUpload(t *testing.T) {
	f := newSyncFixture(t)
	d, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	v1 := entity("x", models.ObjectTypeLink, `{"v":1}`, baseTime)
	v2 := entity("x", models.ObjectTypeLink, `{"v":2}`, baseTime.Add(time.Minute))
	broken := errors.New("listing failed")

	f.transport.EXPECT().FetchChecksums(gomock.Any(), gomock.Any()).Return(nil, nil).Times(2)
	gomock.InOrder(
		d.EXPECT().AllObjects(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ time.Time) ([]models.Entity, error) {
				require.NoError(t, f.orch.ObjectsChanged(ctx, v1))
				return nil, broken
			}),
		d.EXPECT().AllObjects(gomock.Any(), gomock.Any()).Return([]models.Entity{v2}, nil),
	)

	var sent []string
	f.transport.EXPECT().SaveAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, objects []models.SyncObject) ([]models.SyncObject, error) {
			for _, obj := range objects {
				sent = append(sent, obj.DataChecksum)
			}
			return accept(ctx, objects)
		}).AnyTimes()

	require.ErrorIs(t, f.orch.FullSync(ctx), broken)
	require.NoError(t, f.orch.FullSync(ctx))

	assert.Equal(t, []string{checksumOf(t, `{"v":1}`), checksumOf(t, `{"v":2}`)}, sent)

	record, err := f.checksums.Get(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, checksumOf(t, `{"v":2}`), record.PreviousChecksum)
}

func TestSyncOrchestrator_FullSync_AlreadyRunning(t *testing.T) {
	f := newSyncFixture(t)
	d, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	f.transport.EXPECT().FetchChecksums(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, models.FetchRequest) ([]models.ObjectChecksum, error) {
			close(entered)
			<-release
			return nil, nil
		})
	d.EXPECT().AllObjects(gomock.Any(), gomock.Any()).Return(nil, nil)

	done := make(chan error, 1)
	go func() { done <- f.orch.FullSync(ctx) }()

	<-entered
	assert.Equal(t, models.StateDownloading, f.orch.Status().State)
	assert.ErrorIs(t, f.orch.FullSync(ctx), service.ErrFullSyncAlreadyRunning)

	close(release)
	require.NoError(t, <-done)
}

func TestSyncOrchestrator_FullSync_CancelledContext(t *testing.T) {
	f := newSyncFixture(t)
	f.domain(t, models.ObjectTypeLink, models.PolicyReplace)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := f.orch.FullSync(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, models.StateFailed, f.orch.Status().State)
}

// ── Receive ──────────────────────────────────────────────────────────────────

func TestSyncOrchestrator_Receive_PriorityOrder(t *testing.T) {
	f := newSyncFixture(t)
	passwords, _ := f.domain(t, models.ObjectTypePassword, models.PolicyFetchRemoteAndError)
	databases, _ := f.domain(t, models.ObjectTypeDatabase, models.PolicyReplace)
	ctx := context.Background()

	objects := []models.SyncObject{
		f.remoteObject(t, entity("p1", models.ObjectTypePassword, `{"secret":"x"}`, baseTime)),
		f.remoteObject(t, entity("db1", models.ObjectTypeDatabase, `{"name":"main"}`, baseTime)),
	}

	gomock.InOrder(
		databases.EXPECT().ReceivedObjects(gomock.Any(), gomock.Len(1)).Return(nil),
		passwords.EXPECT().ReceivedObjects(gomock.Any(), gomock.Len(1)).Return(nil),
	)

	require.NoError(t, f.orch.Receive(ctx, objects))
}

func TestSyncOrchestrator_Receive_DuplicateIsDropped(t *testing.T) {
	f := newSyncFixture(t)
	d, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	obj := f.remoteObject(t, entity("a", models.ObjectTypeLink, `{"v":1}`, baseTime))
	d.EXPECT().ReceivedObjects(gomock.Any(), gomock.Len(1)).Return(nil).Times(1)

	require.NoError(t, f.orch.Receive(ctx, []models.SyncObject{obj}))
	require.NoError(t, f.orch.Receive(ctx, []models.SyncObject{obj}))
}

func TestSyncOrchestrator_Receive_WaitsForInFlightSave(t *testing.T) {
	f := newSyncFixture(t)
	d, m := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	local := entity("a", models.ObjectTypeLink, `{"v":1}`, baseTime)
	echo := f.remoteObject(t, local)

	received := make(chan error, 1)
	f.transport.EXPECT().SaveAll(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, objects []models.SyncObject) ([]models.SyncObject, error) {
			// the push of this very save arrives before the save returns
			go func() { received <- f.orch.Receive(ctx, []models.SyncObject{echo}) }()
			time.Sleep(50 * time.Millisecond)
			return accept(ctx, objects)
		})
	// applied after the commit, the echo matches the recorded checksum
	d.EXPECT().ReceivedObjects(gomock.Any(), gomock.Any()).Times(0)

	_, err := m.Save(ctx, local)
	require.NoError(t, err)
	require.NoError(t, <-received)

	record, err := f.checksums.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, echo.DataChecksum, record.PreviousChecksum)
}

func TestSyncOrchestrator_Receive_ApplyFailureRollsBack(t *testing.T) {
	f := newSyncFixture(t)
	d, _ := f.domain(t, models.ObjectTypeLink, models.PolicyReplace)
	ctx := context.Background()

	good := f.remoteObject(t, entity("good", models.ObjectTypeLink, `{"v":1}`, baseTime))
	bad := f.remoteObject(t, entity("bad", models.ObjectTypeLink, `{"v":2}`, baseTime))
	broken := errors.New("constraint failed")

	d.EXPECT().ReceivedObjects(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got []models.Entity) error {
			for _, e := range got {
				if e.ID == "bad" {
					return broken
				}
			}
			return nil
		}).Times(3)

	err := f.orch.Receive(ctx, []models.SyncObject{good, bad})

	var applyErr *service.ApplyError
	require.ErrorAs(t, err, &applyErr)
	assert.Equal(t, "bad", applyErr.ID)
	assert.ErrorIs(t, err, broken)

	_, err = f.checksums.Get(ctx, "good")
	assert.NoError(t, err)
	_, err = f.checksums.Get(ctx, "bad")
	assert.Error(t, err)
}

func TestSyncOrchestrator_Receive_UnknownType(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	obj := f.remoteObject(t, entity("a", models.ObjectTypeLink, `{"v":1}`, baseTime))
	err := f.orch.Receive(ctx, []models.SyncObject{obj})
	assert.ErrorIs(t, err, service.ErrNoManager)
}

// ── ObjectsChanged ───────────────────────────────────────────────────────────

func TestSyncOrchestrator_ObjectsChanged_NoManager(t *testing.T) {
	f := newSyncFixture(t)
	err := f.orch.ObjectsChanged(context.Background(), entity("a", models.ObjectTypeLink, `{}`, baseTime))
	assert.ErrorIs(t, err, service.ErrNoManager)
}
