package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-object-sync/internal/logger"
	"github.com/MKhiriev/go-object-sync/models"
)

// both implementations must satisfy the same contract
func checksumStores(t *testing.T) map[string]ChecksumStore {
	return map[string]ChecksumStore{
		"sqlite": NewSQLiteChecksumStore(newTestSQLite(t), logger.Nop()),
		"memory": NewMemoryChecksumStore(),
	}
}

func TestChecksumStore_SetGet(t *testing.T) {
	for name, s := range checksumStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := testContext()

			_, err := s.Get(ctx, "a")
			assert.ErrorIs(t, err, ErrChecksumNotFound)

			require.NoError(t, s.Set(ctx, models.ChecksumRecord{
				ID: "a", Type: models.ObjectTypeDocument, PreviousChecksum: "c1", DataSent: []byte("sent"),
			}))

			got, err := s.Get(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, "c1", got.PreviousChecksum)
			assert.Equal(t, models.ObjectTypeDocument, got.Type)
			assert.Equal(t, []byte("sent"), got.DataSent)
			assert.False(t, got.UpdatedAt.IsZero())

			require.NoError(t, s.Set(ctx, models.ChecksumRecord{ID: "a", Type: models.ObjectTypeDocument, PreviousChecksum: "c2"}))
			got, err = s.Get(ctx, "a")
			require.NoError(t, err)
			assert.Equal(t, "c2", got.PreviousChecksum)
			assert.Nil(t, got.DataSent)
		})
	}
}

func TestChecksumStore_GetManyChunksLargeInputs(t *testing.T) {
	for name, s := range checksumStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := testContext()

			records := make([]models.ChecksumRecord, 0, 1200)
			ids := make([]string, 0, 1300)
			for i := range 1200 {
				id := fmt.Sprintf("id-%04d", i)
				records = append(records, models.ChecksumRecord{ID: id, Type: models.ObjectTypePassword, PreviousChecksum: "c" + id})
				ids = append(ids, id)
			}
			for i := range 100 {
				ids = append(ids, fmt.Sprintf("missing-%d", i))
			}
			require.NoError(t, s.SetMany(ctx, records))

			got, err := s.GetMany(ctx, ids)
			require.NoError(t, err)
			assert.Len(t, got, 1200)
			assert.Equal(t, "cid-0777", got["id-0777"].PreviousChecksum)

			count, err := s.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1200, count)
		})
	}
}

func TestChecksumStore_GetByTypeAndDeleteAll(t *testing.T) {
	for name, s := range checksumStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := testContext()
			require.NoError(t, s.SetMany(ctx, []models.ChecksumRecord{
				{ID: "p1", Type: models.ObjectTypePassword, PreviousChecksum: "1"},
				{ID: "p2", Type: models.ObjectTypePassword, PreviousChecksum: "2"},
				{ID: "d1", Type: models.ObjectTypeDocument, PreviousChecksum: "3"},
			}))

			passwords, err := s.GetByType(ctx, models.ObjectTypePassword)
			require.NoError(t, err)
			require.Len(t, passwords, 2)
			assert.Equal(t, "p1", passwords[0].ID)

			require.NoError(t, s.DeleteAll(ctx, models.ObjectTypePassword))
			count, err := s.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 1, count)

			require.NoError(t, s.DeleteAll(ctx, ""))
			count, err = s.Count(ctx)
			require.NoError(t, err)
			assert.Zero(t, count)
		})
	}
}

func TestChecksumStore_Delete(t *testing.T) {
	for name, s := range checksumStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := testContext()
			require.NoError(t, s.SetMany(ctx, []models.ChecksumRecord{
				{ID: "a", Type: models.ObjectTypeLink, PreviousChecksum: "1"},
				{ID: "b", Type: models.ObjectTypeLink, PreviousChecksum: "2"},
				{ID: "c", Type: models.ObjectTypeLink, PreviousChecksum: "3"},
			}))

			require.NoError(t, s.Delete(ctx, "a"))
			require.NoError(t, s.DeleteMany(ctx, []string{"b", "nope"}))
			require.NoError(t, s.DeleteMany(ctx, nil))

			got, err := s.GetMany(ctx, []string{"a", "b", "c"})
			require.NoError(t, err)
			assert.Len(t, got, 1)
			assert.Contains(t, got, "c")
		})
	}
}

func TestMemoryChecksumStore_DeleteManyReportsFailure(t *testing.T) {
	s := NewMemoryChecksumStore()
	require.NoError(t, s.Set(testContext(), models.ChecksumRecord{ID: "a", Type: models.ObjectTypeLink, PreviousChecksum: "1"}))

	ctx, cancel := context.WithCancel(testContext())
	cancel()

	err := s.DeleteMany(ctx, []string{"a"})
	assert.ErrorIs(t, err, context.Canceled)

	_, err = s.Get(testContext(), "a")
	assert.NoError(t, err, "the record must survive a failed delete")
}

// TestChecksumStore_ConcurrentDistinctIDs writes from many goroutines; no
// write may be lost.
func TestChecksumStore_ConcurrentDistinctIDs(t *testing.T) {
	for name, s := range checksumStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := testContext()
			var wg sync.WaitGroup
			for w := range 8 {
				wg.Add(1)
				go func() {
					defer wg.Done()
					for i := range 25 {
						id := fmt.Sprintf("w%d-%d", w, i)
						assert.NoError(t, s.Set(ctx, models.ChecksumRecord{ID: id, Type: models.ObjectTypeFile, PreviousChecksum: id}))
					}
				}()
			}
			wg.Wait()

			count, err := s.Count(ctx)
			require.NoError(t, err)
			assert.Equal(t, 200, count)
		})
	}
}

func TestChecksumStore_SameIDLastWriteWins(t *testing.T) {
	for name, s := range checksumStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := testContext()
			for i := range 10 {
				require.NoError(t, s.Set(ctx, models.ChecksumRecord{
					ID: "x", Type: models.ObjectTypeFile, PreviousChecksum: fmt.Sprint(i), UpdatedAt: time.Now(),
				}))
			}
			got, err := s.Get(ctx, "x")
			require.NoError(t, err)
			assert.Equal(t, "9", got.PreviousChecksum)
		})
	}
}

// ── sql error paths ───────────────────────────────────────────────────────────

func TestSQLiteChecksumStore_GetQueryError(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewSQLiteChecksumStore(db, logger.Nop())

	mock.ExpectQuery(`SELECT id, object_type, previous_checksum, data_sent, updated_at FROM checksums`).
		WillReturnError(errors.New("disk I/O error"))

	_, err := s.Get(testContext(), "a")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteChecksumStore_SetManyRollsBackOnError(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewSQLiteChecksumStore(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO checksums`).WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := s.SetMany(testContext(), []models.ChecksumRecord{{ID: "a", Type: models.ObjectTypeLink, PreviousChecksum: "1"}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteChecksumStore_BeginError(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewSQLiteChecksumStore(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := s.DeleteMany(testContext(), []string{"a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBeginningTransaction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteChecksumStore_CountError(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewSQLiteChecksumStore(db, logger.Nop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM checksums`).WillReturnError(errors.New("boom"))

	_, err := s.Count(testContext())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLiteChecksumStore_CountRows(t *testing.T) {
	db, mock := newMockDB(t)
	s := NewSQLiteChecksumStore(db, logger.Nop())

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM checksums`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	n, err := s.Count(testContext())
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}
