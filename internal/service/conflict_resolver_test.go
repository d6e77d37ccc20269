package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-object-sync/models"
)

// ── ResolveConflict ──────────────────────────────────────────────────────────

func TestResolveConflict_Replace(t *testing.T) {
	t1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Minute)

	tests := []struct {
		name       string
		localAt    time.Time
		remoteAt   time.Time
		wantRemote bool
	}{
		{name: "remote newer wins", localAt: t1, remoteAt: t2, wantRemote: true},
		{name: "local newer wins", localAt: t2, remoteAt: t1, wantRemote: false},
		{name: "tie keeps local", localAt: t1, remoteAt: t1, wantRemote: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			local := models.SyncObject{ID: "a", Data: []byte("local"), DataChecksum: "c1", PreviousChecksum: "c0", UpdatedAt: tt.localAt}
			remote := models.SyncObject{ID: "a", Data: []byte("remote"), DataChecksum: "c2", UpdatedAt: tt.remoteAt}

			got, err := ResolveConflict(local, remote, models.PolicyReplace)
			require.NoError(t, err)

			assert.Equal(t, "c2", got.PreviousChecksum)
			assert.Equal(t, tt.wantRemote, remoteWins(local, remote))
			if tt.wantRemote {
				assert.Equal(t, []byte("remote"), got.Data)
				assert.Equal(t, "c2", got.DataChecksum)
			} else {
				assert.Equal(t, []byte("local"), got.Data)
				assert.Equal(t, "c1", got.DataChecksum)
			}
		})
	}
}

func TestResolveConflict_FetchRemoteAndError(t *testing.T) {
	local := models.SyncObject{ID: "a", DataChecksum: "c1"}
	remote := models.SyncObject{ID: "a", DataChecksum: "c2"}

	_, err := ResolveConflict(local, remote, models.PolicyFetchRemoteAndError)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []models.SyncObject{local}, conflict.Conflicted)
	assert.Equal(t, []models.SyncObject{remote}, conflict.Remote)
	assert.Empty(t, conflict.Good)
}

func TestResolveMissingRemote(t *testing.T) {
	got := ResolveMissingRemote(models.SyncObject{ID: "a", DataChecksum: "c1", PreviousChecksum: "c0"})
	assert.Empty(t, got.PreviousChecksum)
	assert.Equal(t, "c1", got.DataChecksum)
}

// ── errors ───────────────────────────────────────────────────────────────────

func TestCombine(t *testing.T) {
	e1 := &DecodingError{ID: "a", Err: ErrDifferentEncryptionKey}
	e2 := &ApplyError{ID: "b", Err: assert.AnError}

	assert.NoError(t, combine())
	assert.NoError(t, combine(nil, nil))
	assert.Same(t, e1, combine(nil, e1))

	err := combine(e1, combine(e2, nil))
	var multi *MultipleErrors
	require.ErrorAs(t, err, &multi)
	assert.Len(t, multi.Errors(), 2)
	assert.ErrorIs(t, err, ErrDifferentEncryptionKey)
	assert.ErrorIs(t, err, assert.AnError)

	var apply *ApplyError
	require.ErrorAs(t, err, &apply)
	assert.Equal(t, "b", apply.ID)

	assert.Len(t, combine(err, e1).(*MultipleErrors).Errors(), 3)
}
